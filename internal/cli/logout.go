// logout.go implements the "replog logout" command.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/replog-dev/replog/internal/log"
)

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Clear stored credentials",
	RunE: func(cmd *cobra.Command, args []string) error {
		_, _, credStore, events, err := buildEnv()
		if err != nil {
			return err
		}
		if err := credStore.Clear(); err != nil {
			return fmt.Errorf("clearing credentials: %w", err)
		}
		if events != nil {
			_ = events.Append(log.LogEvent{Event: log.EventLogout, Success: true})
		}
		fmt.Println("Logged out.")
		return nil
	},
}
