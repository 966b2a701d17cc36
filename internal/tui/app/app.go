// Package app provides the main TUI application that wires all views together.
package app

import (
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/replog-dev/replog/internal/api"
	"github.com/replog-dev/replog/internal/auth"
	"github.com/replog-dev/replog/internal/config"
	"github.com/replog-dev/replog/internal/tui"
	"github.com/replog-dev/replog/internal/tui/commands"
	"github.com/replog-dev/replog/internal/tui/views"
)

// ctrlCTimeout is how long the first Ctrl+C press stays armed.
const ctrlCTimeout = 2 * time.Second

// App is the main TUI application that wires all views together.
type App struct {
	model *tui.Model

	// View models
	authView     views.AuthModel
	selectorView views.SelectorModel
	entryView    views.EntryModel
	setListView  views.SetListModel
}

// New creates a new App with the given configuration and collaborators.
func New(cfg *config.Config, client *api.Client, credStore *auth.Store) *App {
	model := tui.NewModel(cfg, client, credStore)

	return &App{
		model:    model,
		authView: views.NewAuthModel(model.Width, model.Height),
	}
}

// Init reads the persisted identity to decide the first screen.
func (a *App) Init() tea.Cmd {
	return tea.Batch(
		a.model.Spinner.Tick,
		commands.LoadCredentialsCmd(a.model.CredStore),
	)
}

// Update handles messages and updates the application state.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.model.Width = msg.Width
		a.model.Height = msg.Height
		var cmds []tea.Cmd
		var cmd tea.Cmd
		a.authView, cmd = a.authView.Update(msg)
		cmds = append(cmds, cmd)
		if a.model.State == tui.StateWorkout {
			a.selectorView, cmd = a.selectorView.Update(msg)
			cmds = append(cmds, cmd)
			a.entryView, cmd = a.entryView.Update(msg)
			cmds = append(cmds, cmd)
			a.setListView, cmd = a.setListView.Update(msg)
			cmds = append(cmds, cmd)
		}
		return a, tea.Batch(cmds...)

	case tea.KeyMsg:
		return a.handleKey(msg)

	case tui.CtrlCResetMsg:
		a.model.CtrlCPending = false
		return a, nil

	case spinner.TickMsg:
		var cmds []tea.Cmd
		if a.model.State == tui.StateLoading {
			var cmd tea.Cmd
			a.model.Spinner, cmd = a.model.Spinner.Update(msg)
			cmds = append(cmds, cmd)
		}
		var cmd tea.Cmd
		a.setListView, cmd = a.setListView.Update(msg)
		cmds = append(cmds, cmd)
		return a, tea.Batch(cmds...)
	}

	switch a.model.State {
	case tui.StateLoading, tui.StateAuth:
		return a.updateAuth(msg)
	case tui.StateWorkout:
		return a.updateWorkout(msg)
	}
	return a, nil
}

func (a *App) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, tui.DefaultKeyMap.CtrlC) {
		if a.model.CtrlCPending {
			return a, tea.Quit
		}
		a.model.CtrlCPending = true
		return a, tea.Tick(ctrlCTimeout, func(time.Time) tea.Msg {
			return tui.CtrlCResetMsg{}
		})
	}
	a.model.CtrlCPending = false

	switch a.model.State {
	case tui.StateAuth:
		var cmd tea.Cmd
		a.authView, cmd = a.authView.Update(msg)
		return a, cmd

	case tui.StateWorkout:
		switch {
		case key.Matches(msg, tui.DefaultKeyMap.SignOut):
			return a, commands.LogoutCmd(a.model.CredStore)
		case key.Matches(msg, tui.DefaultKeyMap.Tab):
			if !a.activePaneCapturing() {
				a.cyclePane()
				return a, nil
			}
		}
		return a.routeWorkoutKey(msg)
	}
	return a, nil
}

// activePaneCapturing reports whether the focused pane is consuming raw
// text, in which case Tab belongs to it rather than to pane cycling.
func (a *App) activePaneCapturing() bool {
	switch a.model.ActivePane {
	case tui.PaneSelector:
		return a.selectorView.Capturing()
	case tui.PaneSets:
		return a.setListView.Capturing()
	}
	return false
}

func (a *App) cyclePane() {
	a.model.ActivePane = (a.model.ActivePane + 1) % 3
	a.applyFocus()
}

func (a *App) applyFocus() {
	a.selectorView = a.selectorView.SetFocused(a.model.ActivePane == tui.PaneSelector)
	a.entryView = a.entryView.SetFocused(a.model.ActivePane == tui.PaneEntry)
	a.setListView = a.setListView.SetFocused(a.model.ActivePane == tui.PaneSets)
}

func (a *App) routeWorkoutKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch a.model.ActivePane {
	case tui.PaneSelector:
		a.selectorView, cmd = a.selectorView.Update(msg)
	case tui.PaneEntry:
		a.entryView, cmd = a.entryView.Update(msg)
	case tui.PaneSets:
		a.setListView, cmd = a.setListView.Update(msg)
	}
	return a, cmd
}

// updateAuth handles non-key messages while on the loading or auth screens.
func (a *App) updateAuth(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tui.CredentialsLoadedMsg:
		if msg.Creds == nil {
			a.model.State = tui.StateAuth
			return a, a.authView.Init()
		}
		a.model.Creds = msg.Creds
		return a.enterWorkout()

	case views.SubmitLoginMsg:
		return a, commands.LoginCmd(a.model.Client, a.model.CredStore, msg.Email, msg.Password)

	case views.SubmitSignupMsg:
		return a, commands.SignupCmd(a.model.Client, msg.Email, msg.Password)

	case views.SubmitForgotMsg:
		return a, commands.ForgotPasswordCmd(a.model.Client, msg.Email)

	case views.DemoLoginMsg:
		return a, commands.DemoLoginCmd(a.model.CredStore)

	case tui.LoginResultMsg:
		var cmd tea.Cmd
		a.authView, cmd = a.authView.Update(msg)
		if msg.Err == nil && msg.Creds != nil {
			a.model.Creds = msg.Creds
			_, enterCmd := a.enterWorkout()
			return a, tea.Batch(cmd, enterCmd)
		}
		return a, cmd

	case tui.SignupResultMsg, tui.ForgotResultMsg:
		var cmd tea.Cmd
		a.authView, cmd = a.authView.Update(msg)
		return a, cmd
	}
	return a, nil
}

// enterWorkout builds the workout screen and kicks off the day fetch.
func (a *App) enterWorkout() (tea.Model, tea.Cmd) {
	a.model.State = tui.StateWorkout
	a.model.ActivePane = tui.PaneSelector
	a.model.Sessions = tui.NewSessionStore()
	a.model.ActiveSessionID = 0

	debounce := time.Duration(a.model.Cfg.Suggestions.DebounceMs) * time.Millisecond
	a.selectorView = views.NewSelectorModel(a.model.Sessions, a.model.Width, a.model.Height)
	a.entryView = views.NewEntryModel(debounce, a.model.Width, a.model.Height)
	a.setListView = views.NewSetListModel(a.model.Width, a.model.Height)
	a.applyFocus()

	return a, tea.Batch(
		a.entryView.Init(),
		commands.LoadDaySessionsCmd(a.model.Client, *a.model.Creds, tui.DatePart(a.selectorView.Date())),
	)
}

// updateWorkout handles non-key messages on the workout screen.
func (a *App) updateWorkout(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tui.LoggedOutMsg:
		a.model.Creds = nil
		a.model.Sessions = tui.NewSessionStore()
		a.model.ActiveSessionID = 0
		a.model.State = tui.StateAuth
		a.authView = views.NewAuthModel(a.model.Width, a.model.Height)
		return a, a.authView.Init()

	// Session flow

	case views.SessionChosenMsg:
		return a.activateSession(msg.SessionID)

	case views.DateChangedMsg:
		// A new date starts with no active session.
		a.model.ActiveSessionID = 0
		a.selectorView = a.selectorView.SetActive(0)
		a.entryView = a.entryView.SetSessionActive(false)
		a.setListView = views.NewSetListModel(a.model.Width, a.model.Height)
		a.applyFocus()
		return a, commands.LoadDaySessionsCmd(a.model.Client, *a.model.Creds, tui.DatePart(msg.Date))

	case views.NewSessionMsg:
		return a, commands.CreateSessionCmd(a.model.Client, *a.model.Creds, msg.WorkoutDate)

	case views.RenameRequestMsg:
		return a, commands.RenameSessionCmd(a.model.Client, *a.model.Creds, msg.SessionID, msg.Name)

	case views.LoadAllRequestMsg:
		return a, commands.LoadAllSessionsCmd(a.model.Client, *a.model.Creds)

	case tui.DaySessionsMsg:
		if msg.Err == nil {
			a.model.Sessions.SetDay(msg.Sessions)
		}
		var cmd tea.Cmd
		a.selectorView, cmd = a.selectorView.Update(msg)
		return a, cmd

	case tui.AllSessionsMsg:
		if msg.Err == nil {
			a.model.Sessions.SetAll(msg.Sessions)
		}
		var cmd tea.Cmd
		a.selectorView, cmd = a.selectorView.Update(msg)
		return a, cmd

	case tui.SessionCreatedMsg:
		var cmds []tea.Cmd
		if msg.Err == nil && msg.Session != nil {
			a.model.Sessions.AppendDay(*msg.Session)
			_, cmd := a.activateSession(msg.Session.ID)
			cmds = append(cmds, cmd)
		}
		var cmd tea.Cmd
		a.selectorView, cmd = a.selectorView.Update(msg)
		cmds = append(cmds, cmd)
		return a, tea.Batch(cmds...)

	case tui.SessionRenamedMsg:
		if msg.Err == nil {
			a.model.Sessions.Rename(msg.SessionID, msg.Name)
		}
		var cmd tea.Cmd
		a.selectorView, cmd = a.selectorView.Update(msg)
		return a, cmd

	// Autocomplete flow. Debounce ticks and lookup responses only matter
	// while the entry pane is focused; a late response must not reopen the
	// dropdown after the user tabbed away.

	case tui.SuggestDebounceMsg:
		if a.model.ActivePane != tui.PaneEntry {
			return a, nil
		}
		var cmd tea.Cmd
		a.entryView, cmd = a.entryView.Update(msg)
		return a, cmd

	case views.SuggestQueryMsg:
		return a, commands.FetchSuggestionsCmd(a.model.Client, msg.Query, a.model.Cfg.Suggestions.Limit, msg.Generation)

	case tui.SuggestionsMsg:
		if a.model.ActivePane != tui.PaneEntry {
			return a, nil
		}
		var cmd tea.Cmd
		a.entryView, cmd = a.entryView.Update(msg)
		return a, cmd

	// Set flow

	case views.AddSetRequestMsg:
		return a, commands.AddSetCmd(a.model.Client, *a.model.Creds, a.model.ActiveSessionID, msg.ExerciseName, msg.Reps, msg.Weight)

	case tui.AddSetResultMsg:
		var cmd tea.Cmd
		a.entryView, cmd = a.entryView.Update(msg)
		return a, cmd

	case views.SetAddedMsg:
		return a, a.reloadSets()

	case views.DuplicateRequestMsg:
		return a, commands.DuplicateSetCmd(a.model.Client, *a.model.Creds, msg.SetID)

	case views.EditRequestMsg:
		return a, commands.EditSetCmd(a.model.Client, *a.model.Creds, msg.SetID, msg.Reps, msg.Weight)

	case views.RemoveRequestMsg:
		return a, commands.RemoveSetCmd(a.model.Client, *a.model.Creds, msg.SetID)

	case tui.SetMutationMsg:
		var cmds []tea.Cmd
		var cmd tea.Cmd
		a.setListView, cmd = a.setListView.Update(msg)
		cmds = append(cmds, cmd)
		if msg.Err == nil {
			cmds = append(cmds, a.reloadSets())
		}
		return a, tea.Batch(cmds...)

	case tui.SetsLoadedMsg:
		// Responses for a session that is no longer active, or from a
		// superseded reload, are stale.
		if msg.SessionID != a.model.ActiveSessionID || msg.Seq != a.model.RefreshSeq {
			return a, nil
		}
		var cmd tea.Cmd
		a.setListView, cmd = a.setListView.Update(msg)
		return a, cmd
	}
	return a, nil
}

func (a *App) activateSession(id int64) (tea.Model, tea.Cmd) {
	a.model.ActiveSessionID = id
	a.selectorView = a.selectorView.SetActive(id)
	a.entryView = a.entryView.SetSessionActive(true)
	return a, a.reloadSets()
}

func (a *App) reloadSets() tea.Cmd {
	if a.model.ActiveSessionID == 0 {
		return nil
	}
	a.model.RefreshSeq++
	var tick tea.Cmd
	a.setListView, tick = a.setListView.StartLoading()
	return tea.Batch(tick, commands.LoadSetsCmd(a.model.Client, *a.model.Creds, a.model.ActiveSessionID, a.model.RefreshSeq))
}

// View renders the application.
func (a *App) View() string {
	switch a.model.State {
	case tui.StateLoading:
		return lipgloss.Place(a.model.Width, a.model.Height, lipgloss.Center, lipgloss.Center,
			a.model.Spinner.View()+" Loading...")
	case tui.StateAuth:
		return a.authView.View()
	case tui.StateWorkout:
		return a.viewWorkout()
	}
	return ""
}

func (a *App) viewWorkout() string {
	header := tui.TitleStyle.Render("replog")
	if active := a.model.ActiveSession(); active != nil {
		header += tui.DimStyle.Render("  ·  ") + active.Name
	}

	paneWidth := a.model.Width/3 - 2
	if paneWidth < 20 {
		paneWidth = 20
	}
	paneHeight := a.model.Height - 6

	panes := make([]string, 3)
	contents := []string{a.selectorView.View(), a.entryView.View(), a.setListView.View()}
	for i, content := range contents {
		style := tui.PaneStyle
		if tui.Pane(i) == a.model.ActivePane {
			style = tui.FocusedPaneStyle
		}
		panes[i] = style.Width(paneWidth).Height(paneHeight).Render(content)
	}

	footer := tui.DimStyle.Render("tab switch pane · ctrl+o sign out · ctrl+c exit")
	if a.model.CtrlCPending {
		footer = tui.WarningStyle.Render("Press ctrl+c again to exit")
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		header,
		lipgloss.JoinHorizontal(lipgloss.Top, panes...),
		footer,
	)
}
