package views

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/replog-dev/replog/internal/api"
	"github.com/replog-dev/replog/internal/tui"
)

// ============================================================================
// Message Types
// ============================================================================

// DuplicateRequestMsg is sent when the user duplicates a set.
type DuplicateRequestMsg struct {
	SetID int64
}

// EditRequestMsg is sent when the user commits an edited set.
type EditRequestMsg struct {
	SetID  int64
	Reps   int
	Weight float64
}

// RemoveRequestMsg is sent when the user confirms removing a set.
type RemoveRequestMsg struct {
	SetID int64
}

// ============================================================================
// ExerciseGroup
// ============================================================================

// ExerciseGroup is one display block of consecutive-by-name sets.
type ExerciseGroup struct {
	Name string
	Sets []api.Set
}

// GroupSets buckets sets by exact exercise name, groups ordered by first
// appearance and sets within a group keeping their original order. "Bench
// Press" and "bench press" are distinct groups.
func GroupSets(sets []api.Set) []ExerciseGroup {
	var groups []ExerciseGroup
	index := make(map[string]int)
	for _, set := range sets {
		i, ok := index[set.ExerciseName]
		if !ok {
			i = len(groups)
			index[set.ExerciseName] = i
			groups = append(groups, ExerciseGroup{Name: set.ExerciseName})
		}
		groups[i].Sets = append(groups[i].Sets, set)
	}
	return groups
}

// ============================================================================
// SetListModel
// ============================================================================

type setListMode int

const (
	setListModeList setListMode = iota
	setListModeEditReps
	setListModeEditWeight
	setListModeConfirmRemove
)

// SetListModel is the view model for the recorded-sets pane.
type SetListModel struct {
	sets    []api.Set
	loading bool
	cursor  int
	mode    setListMode
	errText string

	editInput    textinput.Model
	pendingSetID int64
	pendingReps  int

	spinner spinner.Model
	focused bool
	width   int
	height  int
}

// NewSetListModel creates an empty SetListModel.
func NewSetListModel(width, height int) SetListModel {
	editInput := textinput.New()
	editInput.CharLimit = 8
	editInput.Width = 10

	sp := spinner.New()
	sp.Spinner = spinner.Dot

	return SetListModel{
		editInput: editInput,
		spinner:   sp,
		width:     width,
		height:    height,
	}
}

// SetFocused marks whether this pane has keyboard focus.
func (m SetListModel) SetFocused(focused bool) SetListModel {
	m.focused = focused
	return m
}

// StartLoading clears the list and shows the spinner until sets arrive.
func (m SetListModel) StartLoading() (SetListModel, tea.Cmd) {
	m.loading = true
	m.mode = setListModeList
	m.errText = ""
	return m, m.spinner.Tick
}

// Capturing reports whether the view is consuming raw text input.
func (m SetListModel) Capturing() bool {
	return m.mode != setListModeList
}

// Init returns the initial command for the set list view.
func (m SetListModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the set list view.
func (m SetListModel) Update(msg tea.Msg) (SetListModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case spinner.TickMsg:
		if !m.loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tui.SetsLoadedMsg:
		m.loading = false
		if msg.Err != nil {
			m.errText = tui.FailureText(msg.Err, "Could not load sets.")
			return m, nil
		}
		m.errText = ""
		m.sets = msg.Sets
		if m.cursor >= len(m.sets) {
			m.cursor = 0
		}
		return m, nil

	case tui.SetMutationMsg:
		if msg.Err != nil {
			m.errText = tui.FailureText(msg.Err, "Could not update set.")
			return m, nil
		}
		m.errText = ""
		return m, nil
	}

	return m, nil
}

func (m SetListModel) handleKey(msg tea.KeyMsg) (SetListModel, tea.Cmd) {
	switch m.mode {
	case setListModeEditReps, setListModeEditWeight:
		return m.handleEditKey(msg)
	case setListModeConfirmRemove:
		return m.handleConfirmKey(msg)
	}

	// The cursor indexes the grouped display order, not server order.
	flat := m.flatSets()

	switch msg.String() {
	case tui.KeyUp:
		if m.cursor > 0 {
			m.cursor--
		}
	case tui.KeyDown:
		if m.cursor < len(flat)-1 {
			m.cursor++
		}
	case "d":
		if m.cursor < len(flat) {
			id := flat[m.cursor].ID
			return m, func() tea.Msg { return DuplicateRequestMsg{SetID: id} }
		}
	case "e":
		if m.cursor < len(flat) {
			set := flat[m.cursor]
			m.mode = setListModeEditReps
			m.pendingSetID = set.ID
			m.editInput.Placeholder = "reps"
			m.editInput.SetValue(strconv.Itoa(set.Reps))
			m.editInput.CursorEnd()
			m.editInput.Focus()
			return m, textinput.Blink
		}
	case "x":
		if m.cursor < len(flat) {
			m.mode = setListModeConfirmRemove
			m.pendingSetID = flat[m.cursor].ID
		}
	}
	return m, nil
}

func (m SetListModel) handleEditKey(msg tea.KeyMsg) (SetListModel, tea.Cmd) {
	switch msg.String() {
	case tui.KeyEsc:
		// Esc at either prompt abandons the whole edit.
		m.mode = setListModeList
		m.editInput.Blur()
		return m, nil

	case tui.KeyEnter:
		value := strings.TrimSpace(m.editInput.Value())
		if m.mode == setListModeEditReps {
			reps, err := strconv.Atoi(value)
			if err != nil || reps <= 0 {
				m.errText = "Reps must be a positive whole number."
				return m, nil
			}
			m.errText = ""
			m.pendingReps = reps
			m.mode = setListModeEditWeight
			m.editInput.Placeholder = "weight (kg)"
			if set, ok := m.setByID(m.pendingSetID); ok {
				m.editInput.SetValue(strconv.FormatFloat(set.Weight, 'f', -1, 64))
			} else {
				m.editInput.SetValue("")
			}
			m.editInput.CursorEnd()
			return m, nil
		}

		weight, err := strconv.ParseFloat(value, 64)
		if err != nil || weight <= 0 {
			m.errText = "Weight must be a positive number."
			return m, nil
		}
		m.errText = ""
		m.mode = setListModeList
		m.editInput.Blur()
		id, reps := m.pendingSetID, m.pendingReps
		return m, func() tea.Msg { return EditRequestMsg{SetID: id, Reps: reps, Weight: weight} }
	}

	var cmd tea.Cmd
	m.editInput, cmd = m.editInput.Update(msg)
	return m, cmd
}

func (m SetListModel) handleConfirmKey(msg tea.KeyMsg) (SetListModel, tea.Cmd) {
	switch msg.String() {
	case "y":
		m.mode = setListModeList
		id := m.pendingSetID
		return m, func() tea.Msg { return RemoveRequestMsg{SetID: id} }
	case "n", tui.KeyEsc:
		m.mode = setListModeList
	}
	return m, nil
}

// flatSets returns the sets in the order View draws them: grouped by
// exercise, groups in first-seen order. Cursor positions index this slice.
func (m SetListModel) flatSets() []api.Set {
	flat := make([]api.Set, 0, len(m.sets))
	for _, group := range GroupSets(m.sets) {
		flat = append(flat, group.Sets...)
	}
	return flat
}

func (m SetListModel) setByID(id int64) (api.Set, bool) {
	for _, set := range m.sets {
		if set.ID == id {
			return set, true
		}
	}
	return api.Set{}, false
}

// View renders the set list view.
func (m SetListModel) View() string {
	var b strings.Builder
	b.WriteString(tui.TitleStyle.Render("Sets"))
	b.WriteString("\n\n")

	if m.loading {
		b.WriteString(m.spinner.View() + " Loading sets...")
		return b.String()
	}

	if len(m.sets) == 0 {
		b.WriteString(tui.DimStyle.Render("No sets yet."))
		return b.String()
	}

	flat := 0
	for _, group := range GroupSets(m.sets) {
		b.WriteString(tui.TitleStyle.Render(group.Name))
		b.WriteString("\n")
		for _, set := range group.Sets {
			unit := "kg"
			if !set.IsKg {
				unit = "lb"
			}
			line := fmt.Sprintf("  %d × %s %s", set.Reps, trimFloat(set.Weight), unit)
			if flat == m.cursor && m.focused {
				line = tui.SelectedStyle.Render(line)
			}
			b.WriteString(line + "\n")
			flat++
		}
	}

	switch m.mode {
	case setListModeEditReps:
		b.WriteString("\nReps: " + m.editInput.View() + "\n")
	case setListModeEditWeight:
		b.WriteString("\nWeight: " + m.editInput.View() + "\n")
	case setListModeConfirmRemove:
		b.WriteString("\n" + tui.WarningStyle.Render("Remove this set? (y/n)") + "\n")
	}

	if m.errText != "" {
		b.WriteString("\n" + tui.ErrorStyle.Render(m.errText) + "\n")
	}

	if m.focused && m.mode == setListModeList {
		b.WriteString("\n" + tui.DimStyle.Render("d duplicate · e edit · x remove"))
	}

	return b.String()
}

func trimFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
