// sessions.go implements the "replog sessions" command listing sessions
// without the TUI.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/replog-dev/replog/internal/tui"
)

var sessionsAll bool

var sessionsCmd = &cobra.Command{
	Use:   "sessions",
	Short: "Show the current session, or all sessions with --all",
	RunE:  runSessions,
}

func runSessions(cmd *cobra.Command, args []string) error {
	_, client, credStore, _, err := buildEnv()
	if err != nil {
		return err
	}

	creds, err := credStore.Load()
	if err != nil {
		return fmt.Errorf("loading credentials: %w", err)
	}
	if creds == nil {
		return fmt.Errorf("not logged in; run: replog login")
	}

	if sessionsAll {
		sessions, err := client.AllSessions(*creds)
		if err != nil {
			return fmt.Errorf("listing sessions: %w", err)
		}
		if len(sessions) == 0 {
			fmt.Println("No sessions yet.")
			return nil
		}
		for _, sess := range sessions {
			line := fmt.Sprintf("%-6d  %-12s  %s", sess.ID, tui.DatePart(sess.CreatedAt), sess.Name)
			if sess.SetCount != nil {
				line = fmt.Sprintf("%s  (%d sets)", line, *sess.SetCount)
			}
			fmt.Println(line)
		}
		return nil
	}

	current, err := client.CurrentSession(*creds)
	if err != nil {
		return fmt.Errorf("fetching current session: %w", err)
	}
	if current == nil {
		fmt.Println("No current session.")
		return nil
	}

	fmt.Printf("Current session: %s (id %d)\n", current.Name, current.ID)

	sets, err := client.SessionSets(*creds, current.ID)
	if err != nil {
		return fmt.Errorf("fetching sets: %w", err)
	}
	fmt.Printf("Sets: %d\n", len(sets))
	return nil
}

func init() {
	sessionsCmd.Flags().BoolVar(&sessionsAll, "all", false, "List every session instead of the current one")
}
