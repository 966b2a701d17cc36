package commands

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/replog-dev/replog/internal/api"
	"github.com/replog-dev/replog/internal/tui"
)

// LoadSetsCmd fetches the full set list for a session. seq is echoed back
// so the caller can discard responses from superseded reloads.
func LoadSetsCmd(client *api.Client, creds api.Credentials, sessionID int64, seq int) tea.Cmd {
	return func() tea.Msg {
		sets, err := client.SessionSets(creds, sessionID)
		return tui.SetsLoadedMsg{SessionID: sessionID, Seq: seq, Sets: sets, Err: err}
	}
}

// AddSetCmd records a new set. The unit flag is always kilograms; the data
// model carries it but the form offers no toggle.
func AddSetCmd(client *api.Client, creds api.Credentials, sessionID int64, exerciseName string, reps int, weight float64) tea.Cmd {
	return func() tea.Msg {
		err := client.AddSet(creds, sessionID, exerciseName, reps, weight, true)
		return tui.AddSetResultMsg{Err: err}
	}
}

// DuplicateSetCmd asks the server to copy a set.
func DuplicateSetCmd(client *api.Client, creds api.Credentials, setID int64) tea.Cmd {
	return func() tea.Msg {
		err := client.DuplicateSet(creds, setID)
		return tui.SetMutationMsg{Action: "duplicate", Err: err}
	}
}

// EditSetCmd updates a set's reps and weight.
func EditSetCmd(client *api.Client, creds api.Credentials, setID int64, reps int, weight float64) tea.Cmd {
	return func() tea.Msg {
		err := client.EditSet(creds, setID, reps, weight)
		return tui.SetMutationMsg{Action: "edit", Err: err}
	}
}

// RemoveSetCmd deletes a set.
func RemoveSetCmd(client *api.Client, creds api.Credentials, setID int64) tea.Cmd {
	return func() tea.Msg {
		err := client.RemoveSet(creds, setID)
		return tui.SetMutationMsg{Action: "remove", Err: err}
	}
}
