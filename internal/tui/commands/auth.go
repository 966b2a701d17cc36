// Package commands provides Bubble Tea commands for TUI operations.
package commands

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"

	"github.com/replog-dev/replog/internal/api"
	"github.com/replog-dev/replog/internal/auth"
	"github.com/replog-dev/replog/internal/tui"
)

// LoadCredentialsCmd reads the persisted identity. A missing or malformed
// record yields nil credentials, never an error.
func LoadCredentialsCmd(store *auth.Store) tea.Cmd {
	return func() tea.Msg {
		creds, err := store.Load()
		if err != nil {
			// Unreadable store: treat as logged out.
			return tui.CredentialsLoadedMsg{}
		}
		return tui.CredentialsLoadedMsg{Creds: creds}
	}
}

// LoginCmd authenticates against the backend and, on success, persists the
// identity before reporting it.
func LoginCmd(client *api.Client, store *auth.Store, email, password string) tea.Cmd {
	return func() tea.Msg {
		creds, err := client.Login(email, password)
		if err != nil {
			return tui.LoginResultMsg{Err: err}
		}
		if err := store.Save(*creds); err != nil {
			return tui.LoginResultMsg{Err: err}
		}
		return tui.LoginResultMsg{Creds: creds}
	}
}

// SignupCmd creates an account.
func SignupCmd(client *api.Client, email, password string) tea.Cmd {
	return func() tea.Msg {
		message, err := client.Signup(email, password)
		return tui.SignupResultMsg{Message: message, Err: err}
	}
}

// ForgotPasswordCmd requests a password reset email.
func ForgotPasswordCmd(client *api.Client, email string) tea.Cmd {
	return func() tea.Msg {
		message, err := client.ForgotPassword(email)
		return tui.ForgotResultMsg{Message: message, Err: err}
	}
}

// DemoLoginCmd establishes a throwaway local identity so the UI can be
// explored without a backend account.
func DemoLoginCmd(store *auth.Store) tea.Cmd {
	return func() tea.Msg {
		creds := api.Credentials{
			UserID:      uuid.NewString(),
			AccessToken: "demo-token",
		}
		if err := store.Save(creds); err != nil {
			return tui.LoginResultMsg{Err: err}
		}
		return tui.LoginResultMsg{Creds: &creds}
	}
}

// LogoutCmd clears the persisted identity.
func LogoutCmd(store *auth.Store) tea.Cmd {
	return func() tea.Msg {
		_ = store.Clear()
		return tui.LoggedOutMsg{}
	}
}
