package views

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/replog-dev/replog/internal/api"
	"github.com/replog-dev/replog/internal/tui"
)

// ============================================================================
// Message Types
// ============================================================================

// SessionChosenMsg is sent when the user selects a session to work in.
type SessionChosenMsg struct {
	SessionID int64
}

// DateChangedMsg is sent when the user commits a new session date-time.
type DateChangedMsg struct {
	Date string
}

// NewSessionMsg is sent when the user asks for a new session on the
// currently selected date-time.
type NewSessionMsg struct {
	WorkoutDate string
}

// RenameRequestMsg is sent when the user commits a rename.
type RenameRequestMsg struct {
	SessionID int64
	Name      string
}

// LoadAllRequestMsg is sent the first time the all-sessions overlay opens.
type LoadAllRequestMsg struct{}

// ============================================================================
// SelectorModel
// ============================================================================

type selectorMode int

const (
	selectorModeList selectorMode = iota
	selectorModeDate
	selectorModeRename
	selectorModeAll
)

// sessionItem adapts an api.Session for the bubbles list.
type sessionItem struct {
	session api.Session
}

func (i sessionItem) Title() string { return i.session.Name }

func (i sessionItem) Description() string {
	desc := tui.DatePart(i.session.CreatedAt)
	if i.session.SetCount != nil {
		desc = fmt.Sprintf("%s · %d sets", desc, *i.session.SetCount)
	}
	return desc
}

func (i sessionItem) FilterValue() string { return i.session.Name }

// SelectorModel is the view model for the session selector pane.
type SelectorModel struct {
	store    *tui.SessionStore
	activeID int64

	mode        selectorMode
	cursor      int
	date        string // selected date-time in tui.DateTimeFormat
	loading     bool
	loadingAll  bool
	errText     string
	dateInput   textinput.Model
	renameInput textinput.Model
	renameID    int64
	allList     list.Model
	focused     bool
	width       int
	height      int
}

// NewSelectorModel creates a SelectorModel rendering the given store.
func NewSelectorModel(store *tui.SessionStore, width, height int) SelectorModel {
	dateInput := textinput.New()
	dateInput.Placeholder = tui.DateTimeFormat
	dateInput.CharLimit = len(tui.DateTimeFormat)
	dateInput.Width = 24

	renameInput := textinput.New()
	renameInput.Placeholder = "session name"
	renameInput.CharLimit = 120
	renameInput.Width = 30

	allList := list.New(nil, list.NewDefaultDelegate(), width, height)
	allList.Title = "All sessions"
	allList.SetShowStatusBar(false)
	allList.SetFilteringEnabled(false)
	allList.SetShowHelp(false)

	return SelectorModel{
		store:       store,
		date:        time.Now().Format(tui.DateTimeFormat),
		loading:     true,
		dateInput:   dateInput,
		renameInput: renameInput,
		allList:     allList,
		width:       width,
		height:      height,
	}
}

// Date returns the currently selected date-time.
func (m SelectorModel) Date() string { return m.date }

// SetFocused marks whether this pane has keyboard focus.
func (m SelectorModel) SetFocused(focused bool) SelectorModel {
	m.focused = focused
	return m
}

// SetActive records the active session id for highlighting.
func (m SelectorModel) SetActive(id int64) SelectorModel {
	m.activeID = id
	return m
}

// Capturing reports whether the view is consuming raw text input, so the
// pane-cycling Tab key must not be intercepted above it.
func (m SelectorModel) Capturing() bool {
	return m.mode != selectorModeList
}

// Init returns the initial command for the selector view.
func (m SelectorModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the selector view.
func (m SelectorModel) Update(msg tea.Msg) (SelectorModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.allList.SetSize(msg.Width-4, msg.Height-4)
		return m, nil

	case tui.DaySessionsMsg:
		m.loading = false
		if msg.Err != nil {
			m.errText = tui.FailureText(msg.Err, "Could not load sessions.")
			return m, nil
		}
		m.errText = ""
		if m.cursor >= len(msg.Sessions) {
			m.cursor = 0
		}
		return m, nil

	case tui.AllSessionsMsg:
		m.loadingAll = false
		if msg.Err != nil {
			m.errText = tui.FailureText(msg.Err, "Could not load sessions.")
			m.mode = selectorModeList
			return m, nil
		}
		items := make([]list.Item, len(msg.Sessions))
		for i, sess := range msg.Sessions {
			items[i] = sessionItem{session: sess}
		}
		return m, m.allList.SetItems(items)

	case tui.SessionCreatedMsg:
		if msg.Err != nil {
			m.errText = tui.FailureText(msg.Err, "Could not create session.")
			return m, nil
		}
		m.errText = ""
		// Move the cursor to the freshly appended session.
		m.cursor = len(m.store.DayList()) - 1
		return m, nil

	case tui.SessionRenamedMsg:
		if msg.Err != nil {
			m.errText = tui.FailureText(msg.Err, "Could not rename session.")
			return m, nil
		}
		m.errText = ""
		return m, nil
	}

	return m, nil
}

func (m SelectorModel) handleKey(msg tea.KeyMsg) (SelectorModel, tea.Cmd) {
	switch m.mode {
	case selectorModeDate:
		return m.handleDateKey(msg)
	case selectorModeRename:
		return m.handleRenameKey(msg)
	case selectorModeAll:
		return m.handleAllKey(msg)
	}

	day := m.store.DayList()

	switch msg.String() {
	case tui.KeyUp:
		if m.cursor > 0 {
			m.cursor--
		}
	case tui.KeyDown:
		if m.cursor < len(day)-1 {
			m.cursor++
		}
	case tui.KeyEnter:
		if m.cursor < len(day) {
			id := day[m.cursor].ID
			return m, func() tea.Msg { return SessionChosenMsg{SessionID: id} }
		}
	case "n":
		date := m.date
		return m, func() tea.Msg { return NewSessionMsg{WorkoutDate: date} }
	case "d":
		m.mode = selectorModeDate
		m.dateInput.SetValue(m.date)
		m.dateInput.CursorEnd()
		m.dateInput.Focus()
		return m, textinput.Blink
	case "r":
		if m.cursor < len(day) {
			m.mode = selectorModeRename
			m.renameID = day[m.cursor].ID
			m.renameInput.SetValue(day[m.cursor].Name)
			m.renameInput.CursorEnd()
			m.renameInput.Focus()
			return m, textinput.Blink
		}
	case "a":
		m.mode = selectorModeAll
		if !m.store.AllLoaded() {
			m.loadingAll = true
			return m, func() tea.Msg { return LoadAllRequestMsg{} }
		}
		items := make([]list.Item, 0)
		for _, sess := range m.store.AllList() {
			items = append(items, sessionItem{session: sess})
		}
		return m, m.allList.SetItems(items)
	}
	return m, nil
}

func (m SelectorModel) handleDateKey(msg tea.KeyMsg) (SelectorModel, tea.Cmd) {
	switch msg.String() {
	case tui.KeyEsc:
		m.mode = selectorModeList
		m.dateInput.Blur()
		return m, nil
	case tui.KeyEnter:
		value := strings.TrimSpace(m.dateInput.Value())
		if _, err := time.Parse(tui.DateTimeFormat, value); err != nil {
			m.errText = "Date must look like " + tui.DateTimeFormat + "."
			return m, nil
		}
		m.mode = selectorModeList
		m.dateInput.Blur()
		m.errText = ""
		m.date = value
		m.loading = true
		m.cursor = 0
		return m, func() tea.Msg { return DateChangedMsg{Date: value} }
	}

	var cmd tea.Cmd
	m.dateInput, cmd = m.dateInput.Update(msg)
	return m, cmd
}

func (m SelectorModel) handleRenameKey(msg tea.KeyMsg) (SelectorModel, tea.Cmd) {
	switch msg.String() {
	case tui.KeyEsc:
		m.mode = selectorModeList
		m.renameInput.Blur()
		return m, nil
	case tui.KeyEnter:
		name := strings.TrimSpace(m.renameInput.Value())
		m.mode = selectorModeList
		m.renameInput.Blur()

		current, ok := m.store.Get(m.renameID)
		// An empty or unchanged name cancels without a request.
		if name == "" || (ok && name == current.Name) {
			return m, nil
		}
		id := m.renameID
		return m, func() tea.Msg { return RenameRequestMsg{SessionID: id, Name: name} }
	}

	var cmd tea.Cmd
	m.renameInput, cmd = m.renameInput.Update(msg)
	return m, cmd
}

func (m SelectorModel) handleAllKey(msg tea.KeyMsg) (SelectorModel, tea.Cmd) {
	switch msg.String() {
	case tui.KeyEsc:
		m.mode = selectorModeList
		return m, nil
	case tui.KeyEnter:
		if item, ok := m.allList.SelectedItem().(sessionItem); ok {
			m.mode = selectorModeList
			id := item.session.ID
			return m, func() tea.Msg { return SessionChosenMsg{SessionID: id} }
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.allList, cmd = m.allList.Update(msg)
	return m, cmd
}

// View renders the selector view.
func (m SelectorModel) View() string {
	if m.mode == selectorModeAll {
		if m.loadingAll {
			return tui.DimStyle.Render("Loading all sessions...")
		}
		return m.allList.View()
	}

	var b strings.Builder
	b.WriteString(tui.TitleStyle.Render("Sessions"))
	b.WriteString(tui.DimStyle.Render("  " + tui.DatePart(m.date)))
	b.WriteString("\n\n")

	switch m.mode {
	case selectorModeDate:
		b.WriteString("Date: " + m.dateInput.View() + "\n")
	case selectorModeRename:
		b.WriteString("Name: " + m.renameInput.View() + "\n")
	default:
		day := m.store.DayList()
		if m.loading {
			b.WriteString(tui.DimStyle.Render("Loading...") + "\n")
		} else if len(day) == 0 {
			b.WriteString(tui.DimStyle.Render("No sessions on this date. Press n to start one.") + "\n")
		}
		for i, sess := range day {
			line := sess.Name
			if sess.ID == m.activeID {
				line = "● " + line
			} else {
				line = "  " + line
			}
			if i == m.cursor && m.focused {
				b.WriteString(tui.SelectedStyle.Render(line))
			} else {
				b.WriteString(line)
			}
			b.WriteString("\n")
		}
	}

	if m.errText != "" {
		b.WriteString("\n" + tui.ErrorStyle.Render(m.errText) + "\n")
	}

	if m.focused && m.mode == selectorModeList {
		b.WriteString("\n" + tui.DimStyle.Render("n new · d date · r rename · a all"))
	}

	return b.String()
}
