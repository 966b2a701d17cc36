package views

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/replog-dev/replog/internal/api"
	"github.com/replog-dev/replog/internal/tui"
)

func selectorWithDay(t *testing.T) SelectorModel {
	t.Helper()
	store := tui.NewSessionStore()
	store.SetDay([]api.Session{
		{ID: 1, Name: "Morning"},
		{ID: 2, Name: "Evening"},
	})
	m := NewSelectorModel(store, 80, 24)
	m, _ = m.Update(tui.DaySessionsMsg{Date: "2026-08-28", Sessions: store.DayList()})
	return m
}

func TestSelectorEnterChoosesSession(t *testing.T) {
	m := selectorWithDay(t)
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyDown})
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("enter should choose the session under the cursor")
	}
	msg, ok := cmd().(SessionChosenMsg)
	if !ok {
		t.Fatalf("expected SessionChosenMsg, got %T", cmd())
	}
	if msg.SessionID != 2 {
		t.Errorf("SessionID: got %d, want 2", msg.SessionID)
	}
}

func TestSelectorNewSessionUsesSelectedDate(t *testing.T) {
	m := selectorWithDay(t)
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'n'}})
	if cmd == nil {
		t.Fatal("n should request a new session")
	}
	msg, ok := cmd().(NewSessionMsg)
	if !ok {
		t.Fatalf("expected NewSessionMsg, got %T", cmd())
	}
	if msg.WorkoutDate != m.Date() {
		t.Errorf("WorkoutDate: got %q, want %q", msg.WorkoutDate, m.Date())
	}
}

func TestSelectorDateEntry(t *testing.T) {
	m := selectorWithDay(t)
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'d'}})
	if !m.Capturing() {
		t.Fatal("date entry should capture input")
	}

	m.dateInput.SetValue("not a date")
	m, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if cmd != nil || m.errText == "" {
		t.Error("malformed date should be rejected with an error")
	}

	m.dateInput.SetValue("2026-09-01T07:30")
	m, cmd = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("valid date should commit")
	}
	msg, ok := cmd().(DateChangedMsg)
	if !ok {
		t.Fatalf("expected DateChangedMsg, got %T", cmd())
	}
	if msg.Date != "2026-09-01T07:30" {
		t.Errorf("Date: got %q", msg.Date)
	}
	if m.Date() != "2026-09-01T07:30" {
		t.Errorf("selected date: got %q", m.Date())
	}
	if m.Capturing() {
		t.Error("date entry should close on commit")
	}
}

func TestSelectorRenameEmptyOrUnchangedCancels(t *testing.T) {
	m := selectorWithDay(t)

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'r'}})
	m.renameInput.SetValue("   ")
	m, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if cmd != nil {
		t.Error("blank rename should cancel without a request")
	}

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'r'}})
	m.renameInput.SetValue("Morning")
	m, cmd = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if cmd != nil {
		t.Error("unchanged rename should cancel without a request")
	}
}

func TestSelectorRenameCommits(t *testing.T) {
	m := selectorWithDay(t)
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'r'}})
	m.renameInput.SetValue("Leg Day")
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("changed rename should fire a request")
	}
	msg, ok := cmd().(RenameRequestMsg)
	if !ok {
		t.Fatalf("expected RenameRequestMsg, got %T", cmd())
	}
	if msg.SessionID != 1 || msg.Name != "Leg Day" {
		t.Errorf("unexpected rename request: %+v", msg)
	}
}

func TestSelectorAllOverlayLoadsLazily(t *testing.T) {
	store := tui.NewSessionStore()
	store.SetDay([]api.Session{{ID: 1, Name: "Morning"}})
	m := NewSelectorModel(store, 80, 24)

	m, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'a'}})
	if cmd == nil {
		t.Fatal("first open should request the historical list")
	}
	if _, ok := cmd().(LoadAllRequestMsg); !ok {
		t.Fatalf("expected LoadAllRequestMsg, got %T", cmd())
	}

	store.SetAll([]api.Session{{ID: 1, Name: "Morning"}, {ID: 7, Name: "Old"}})
	m, _ = m.Update(tui.AllSessionsMsg{Sessions: store.AllList()})
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyEsc})

	// Second open reuses the cached list.
	_, cmd = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'a'}})
	if cmd != nil {
		if _, ok := cmd().(LoadAllRequestMsg); ok {
			t.Error("second open should not refetch")
		}
	}
}
