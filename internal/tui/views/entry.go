package views

import (
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/replog-dev/replog/internal/api"
	"github.com/replog-dev/replog/internal/tui"
	"github.com/replog-dev/replog/internal/tui/commands"
)

// ============================================================================
// Message Types
// ============================================================================

// SuggestQueryMsg is sent when a settled exercise query is ready to look up.
type SuggestQueryMsg struct {
	Query      string
	Generation int
}

// AddSetRequestMsg is sent when a validated set is ready to record.
type AddSetRequestMsg struct {
	ExerciseName string
	Reps         int
	Weight       float64
}

// SetAddedMsg is sent exactly once per successfully recorded set.
type SetAddedMsg struct{}

// ============================================================================
// EntryModel
// ============================================================================

// minQueryLen is the shortest exercise query worth a lookup.
const minQueryLen = 2

// EntryModel is the view model for the set entry form.
type EntryModel struct {
	exercise textinput.Model
	reps     textinput.Model
	weight   textinput.Model

	focusIndex    int
	sessionActive bool
	submitting    bool
	errText       string

	// Autocomplete state. generation tags the latest keystroke; debounce
	// ticks and lookup responses for older generations are dropped.
	// highlight is -1 until the user navigates into the dropdown; Enter at
	// -1 submits the form instead of committing a suggestion.
	debounce     time.Duration
	generation   int
	suggestions  []api.Suggestion
	dropdownOpen bool
	highlight    int

	focused bool
	width   int
	height  int
}

// NewEntryModel creates an EntryModel with the given debounce window.
func NewEntryModel(debounce time.Duration, width, height int) EntryModel {
	exercise := textinput.New()
	exercise.Placeholder = "exercise"
	exercise.CharLimit = 120
	exercise.Width = 28
	exercise.Focus()

	reps := textinput.New()
	reps.Placeholder = "reps"
	reps.CharLimit = 4
	reps.Width = 8

	weight := textinput.New()
	weight.Placeholder = "weight (kg)"
	weight.CharLimit = 8
	weight.Width = 12

	return EntryModel{
		exercise:  exercise,
		reps:      reps,
		weight:    weight,
		debounce:  debounce,
		highlight: -1,
		width:     width,
		height:    height,
	}
}

// SetFocused marks whether this pane has keyboard focus.
func (m EntryModel) SetFocused(focused bool) EntryModel {
	m.focused = focused
	if !focused {
		m.dropdownOpen = false
	}
	return m
}

// SetSessionActive records whether a session is active, which gates submit.
func (m EntryModel) SetSessionActive(active bool) EntryModel {
	m.sessionActive = active
	return m
}

// Init returns the initial command for the entry view.
func (m EntryModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages for the entry view.
func (m EntryModel) Update(msg tea.Msg) (EntryModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tui.SuggestDebounceMsg:
		// Only the tick armed by the last keystroke is still current.
		if msg.Generation != m.generation {
			return m, nil
		}
		query := strings.TrimSpace(m.exercise.Value())
		if len(query) < minQueryLen {
			return m, nil
		}
		gen := m.generation
		return m, func() tea.Msg { return SuggestQueryMsg{Query: query, Generation: gen} }

	case tui.SuggestionsMsg:
		// A stale response must never overwrite a newer query's results.
		if msg.Generation != m.generation {
			return m, nil
		}
		if msg.Err != nil {
			// Suggestions are best effort; typing still works without them.
			return m, nil
		}
		m.suggestions = msg.Suggestions
		m.dropdownOpen = len(m.suggestions) > 0
		m.highlight = -1
		return m, nil

	case tui.AddSetResultMsg:
		m.submitting = false
		if msg.Err != nil {
			m.errText = tui.FailureText(msg.Err, "Could not add set.")
			return m, nil
		}
		m.errText = ""
		m.exercise.SetValue("")
		m.reps.SetValue("")
		m.weight.SetValue("")
		m.generation++
		m.suggestions = nil
		m.dropdownOpen = false
		m.highlight = -1
		m = m.focusField(0)
		return m, func() tea.Msg { return SetAddedMsg{} }
	}

	return m, nil
}

func (m EntryModel) handleKey(msg tea.KeyMsg) (EntryModel, tea.Cmd) {
	if m.submitting {
		return m, nil
	}

	switch msg.String() {
	case tui.KeyEsc:
		m.dropdownOpen = false
		m.highlight = -1
		return m, nil

	case tui.KeyDown:
		if m.dropdownOpen {
			// From no highlight, Down enters the list at the top.
			if m.highlight >= len(m.suggestions)-1 {
				m.highlight = 0
			} else {
				m.highlight++
			}
			return m, nil
		}
		return m.focusField(m.focusIndex + 1), nil

	case tui.KeyUp:
		if m.dropdownOpen {
			if m.highlight <= 0 {
				m.highlight = len(m.suggestions) - 1
			} else {
				m.highlight--
			}
			return m, nil
		}
		return m.focusField(m.focusIndex - 1), nil

	case tui.KeyEnter:
		if m.dropdownOpen && m.highlight >= 0 && m.highlight < len(m.suggestions) {
			m.exercise.SetValue(m.suggestions[m.highlight].Name)
			m.exercise.CursorEnd()
			m.dropdownOpen = false
			m.suggestions = nil
			m.highlight = -1
			// The picked name must not immediately re-query.
			m.generation++
			return m, nil
		}
		// No highlighted suggestion: Enter means submit, even with the
		// dropdown showing.
		return m.submit()
	}

	return m.updateInputs(msg)
}

func (m EntryModel) submit() (EntryModel, tea.Cmd) {
	if !m.sessionActive {
		m.errText = "Select a session first."
		return m, nil
	}

	name := strings.TrimSpace(m.exercise.Value())
	if name == "" {
		m.errText = "Please enter an exercise name."
		return m, nil
	}

	reps, err := strconv.Atoi(strings.TrimSpace(m.reps.Value()))
	if err != nil || reps <= 0 {
		m.errText = "Reps must be a positive whole number."
		return m, nil
	}

	weight, err := strconv.ParseFloat(strings.TrimSpace(m.weight.Value()), 64)
	if err != nil || weight <= 0 {
		m.errText = "Weight must be a positive number."
		return m, nil
	}

	m.submitting = true
	m.errText = ""
	m.dropdownOpen = false
	return m, func() tea.Msg {
		return AddSetRequestMsg{ExerciseName: name, Reps: reps, Weight: weight}
	}
}

func (m EntryModel) focusField(index int) EntryModel {
	m.focusIndex = ((index % 3) + 3) % 3

	inputs := []*textinput.Model{&m.exercise, &m.reps, &m.weight}
	for i, input := range inputs {
		if i == m.focusIndex {
			input.Focus()
		} else {
			input.Blur()
		}
	}
	if m.focusIndex != 0 {
		m.dropdownOpen = false
	}
	return m
}

func (m EntryModel) updateInputs(msg tea.Msg) (EntryModel, tea.Cmd) {
	var cmd tea.Cmd
	switch m.focusIndex {
	case 0:
		before := m.exercise.Value()
		m.exercise, cmd = m.exercise.Update(msg)
		if m.exercise.Value() != before {
			return m.queryChanged(cmd)
		}
	case 1:
		m.reps, cmd = m.reps.Update(msg)
	case 2:
		m.weight, cmd = m.weight.Update(msg)
	}
	return m, cmd
}

// queryChanged bumps the keystroke generation and arms the debounce timer,
// or clears the dropdown outright for queries too short to look up.
func (m EntryModel) queryChanged(inputCmd tea.Cmd) (EntryModel, tea.Cmd) {
	m.generation++

	query := strings.TrimSpace(m.exercise.Value())
	if len(query) < minQueryLen {
		m.suggestions = nil
		m.dropdownOpen = false
		m.highlight = -1
		return m, inputCmd
	}

	return m, tea.Batch(inputCmd, commands.DebounceCmd(m.debounce, m.generation))
}

// View renders the entry view.
func (m EntryModel) View() string {
	var b strings.Builder
	b.WriteString(tui.TitleStyle.Render("Add set"))
	b.WriteString("\n\n")

	b.WriteString("Exercise: " + m.exercise.View() + "\n")

	if m.dropdownOpen {
		for i, s := range m.suggestions {
			if i == m.highlight {
				b.WriteString(tui.SuggestionSelectedStyle.Render(s.Name))
			} else {
				b.WriteString(tui.SuggestionStyle.Render(s.Name))
			}
			b.WriteString("\n")
		}
	}

	b.WriteString("Reps:     " + m.reps.View() + "\n")
	b.WriteString("Weight:   " + m.weight.View() + "\n")

	if m.errText != "" {
		b.WriteString("\n" + tui.ErrorStyle.Render(m.errText) + "\n")
	}

	if m.submitting {
		b.WriteString("\n" + tui.DimStyle.Render("Saving..."))
	} else if m.focused {
		b.WriteString("\n" + tui.DimStyle.Render("enter add set"))
	}

	return b.String()
}
