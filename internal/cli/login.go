// login.go implements the "replog login" command for scripted use.
package cli

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/replog-dev/replog/internal/log"
)

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Log in and store credentials",
	Long: `Authenticate against the replog server and store the returned
credentials in ~/.replog/credentials.json for later runs.`,
	RunE: runLogin,
}

func runLogin(cmd *cobra.Command, args []string) error {
	_, client, credStore, events, err := buildEnv()
	if err != nil {
		return err
	}

	reader := bufio.NewReader(os.Stdin)
	fmt.Print("Email: ")
	email, err := reader.ReadString('\n')
	if err != nil {
		return fmt.Errorf("reading email: %w", err)
	}
	email = strings.TrimSpace(email)

	var password string
	if term.IsTerminal(int(os.Stdin.Fd())) {
		fmt.Print("Password: ")
		raw, err := term.ReadPassword(int(os.Stdin.Fd()))
		fmt.Println()
		if err != nil {
			return fmt.Errorf("reading password: %w", err)
		}
		password = string(raw)
	} else {
		raw, err := reader.ReadString('\n')
		if err != nil {
			return fmt.Errorf("reading password: %w", err)
		}
		password = strings.TrimRight(raw, "\r\n")
	}

	creds, err := client.Login(email, password)
	if err != nil {
		if events != nil {
			_ = events.Append(log.LogEvent{Event: log.EventLogin, Error: err.Error()})
		}
		return fmt.Errorf("login failed: %w", err)
	}
	if err := credStore.Save(*creds); err != nil {
		return fmt.Errorf("saving credentials: %w", err)
	}
	if events != nil {
		_ = events.Append(log.LogEvent{Event: log.EventLogin, UserID: creds.UserID, Success: true})
	}

	fmt.Println("Logged in.")
	return nil
}
