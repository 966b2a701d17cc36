package commands

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/replog-dev/replog/internal/api"
	"github.com/replog-dev/replog/internal/tui"
)

// LoadDaySessionsCmd fetches the sessions for one calendar date.
func LoadDaySessionsCmd(client *api.Client, creds api.Credentials, date string) tea.Cmd {
	return func() tea.Msg {
		sessions, err := client.SessionsByDate(creds, date)
		return tui.DaySessionsMsg{Date: date, Sessions: sessions, Err: err}
	}
}

// LoadAllSessionsCmd fetches the complete historical session list.
func LoadAllSessionsCmd(client *api.Client, creds api.Credentials) tea.Cmd {
	return func() tea.Msg {
		sessions, err := client.AllSessions(creds)
		return tui.AllSessionsMsg{Sessions: sessions, Err: err}
	}
}

// CreateSessionCmd creates a session for the given date-time.
func CreateSessionCmd(client *api.Client, creds api.Credentials, workoutDate string) tea.Cmd {
	return func() tea.Msg {
		session, err := client.CreateSession(creds, workoutDate)
		return tui.SessionCreatedMsg{Session: session, Err: err}
	}
}

// RenameSessionCmd renames a session.
func RenameSessionCmd(client *api.Client, creds api.Credentials, sessionID int64, name string) tea.Cmd {
	return func() tea.Msg {
		err := client.RenameSession(creds, sessionID, name)
		return tui.SessionRenamedMsg{SessionID: sessionID, Name: name, Err: err}
	}
}
