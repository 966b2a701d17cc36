// Package tui implements the terminal user interface using Bubble Tea.
package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/spinner"

	"github.com/replog-dev/replog/internal/api"
	"github.com/replog-dev/replog/internal/auth"
	"github.com/replog-dev/replog/internal/config"
)

// ViewState represents the current state of the TUI.
type ViewState int

const (
	StateLoading ViewState = iota // Reading persisted credentials
	StateAuth                     // Login / signup / password reset
	StateWorkout                  // Main workout screen
)

// Pane identifies one of the three stateful panes on the workout screen.
type Pane int

const (
	PaneSelector Pane = iota
	PaneEntry
	PaneSets
)

// DateTimeFormat is the minute-precision format used by the session date
// field, matching the backend's workout_date contract.
const DateTimeFormat = "2006-01-02T15:04"

// DatePart extracts the calendar-date portion of a DateTimeFormat value.
// Only the date is a filter; time of day is not.
func DatePart(dateTime string) string {
	if i := strings.IndexByte(dateTime, 'T'); i >= 0 {
		return dateTime[:i]
	}
	return dateTime
}

// Model is the main TUI model that holds all shared application state.
type Model struct {
	// State management
	State        ViewState
	ActivePane   Pane
	Err          error
	CtrlCPending bool // True when waiting for second Ctrl+C press

	// Configuration and collaborators
	Cfg       *config.Config
	Client    *api.Client
	CredStore *auth.Store

	// Authenticated identity; nil when logged out.
	Creds *api.Credentials

	// Normalized session state; all views render projections of it.
	Sessions *SessionStore

	// Active session id (0 = none) and the reload counter for the set
	// list. Each reload is tagged with the counter's value; a response
	// carrying an older value is dropped as stale.
	ActiveSessionID int64
	RefreshSeq      int

	// Bubbles components shared across views
	Spinner spinner.Model

	// Terminal dimensions
	Width  int
	Height int
}

// NewModel creates a new Model with the given configuration and
// collaborators.
func NewModel(cfg *config.Config, client *api.Client, credStore *auth.Store) *Model {
	sp := spinner.New()
	sp.Spinner = spinner.Dot

	return &Model{
		State:      StateLoading,
		ActivePane: PaneSelector,
		Cfg:        cfg,
		Client:     client,
		CredStore:  credStore,
		Sessions:   NewSessionStore(),
		Spinner:    sp,

		// Default dimensions (will be updated on WindowSizeMsg)
		Width:  80,
		Height: 24,
	}
}

// ActiveSession returns the active session's current record, or nil.
func (m *Model) ActiveSession() *api.Session {
	if m.ActiveSessionID == 0 {
		return nil
	}
	if s, ok := m.Sessions.Get(m.ActiveSessionID); ok {
		return &s
	}
	return nil
}

// ============================================================================
// SessionStore
// ============================================================================

// SessionStore is the single normalized home for workout sessions, keyed by
// id. The day-scoped list and the all-sessions list are kept as id
// projections, so a rename mutates exactly one record and every view that
// renders it stays consistent.
type SessionStore struct {
	byID      map[int64]api.Session
	dayOrder  []int64
	allOrder  []int64
	allLoaded bool
}

// NewSessionStore creates an empty SessionStore.
func NewSessionStore() *SessionStore {
	return &SessionStore{byID: make(map[int64]api.Session)}
}

// Get returns the session with the given id.
func (s *SessionStore) Get(id int64) (api.Session, bool) {
	sess, ok := s.byID[id]
	return sess, ok
}

// SetDay replaces the day-scoped list with the given sessions.
func (s *SessionStore) SetDay(sessions []api.Session) {
	s.dayOrder = s.dayOrder[:0]
	for _, sess := range sessions {
		s.byID[sess.ID] = sess
		s.dayOrder = append(s.dayOrder, sess.ID)
	}
}

// AppendDay adds a freshly created session to the end of the day list.
func (s *SessionStore) AppendDay(sess api.Session) {
	s.byID[sess.ID] = sess
	s.dayOrder = append(s.dayOrder, sess.ID)
}

// SetAll replaces the all-sessions list and marks it loaded. The list is
// fetched lazily the first time the overlay opens.
func (s *SessionStore) SetAll(sessions []api.Session) {
	s.allOrder = s.allOrder[:0]
	for _, sess := range sessions {
		s.byID[sess.ID] = sess
		s.allOrder = append(s.allOrder, sess.ID)
	}
	s.allLoaded = true
}

// AllLoaded reports whether the historical list has been fetched.
func (s *SessionStore) AllLoaded() bool {
	return s.allLoaded
}

// Rename updates the one canonical record for the session.
func (s *SessionStore) Rename(id int64, name string) bool {
	sess, ok := s.byID[id]
	if !ok {
		return false
	}
	sess.Name = name
	s.byID[id] = sess
	return true
}

// DayList returns the day-scoped sessions in order.
func (s *SessionStore) DayList() []api.Session {
	return s.project(s.dayOrder)
}

// AllList returns every known historical session in order.
func (s *SessionStore) AllList() []api.Session {
	return s.project(s.allOrder)
}

func (s *SessionStore) project(order []int64) []api.Session {
	sessions := make([]api.Session, 0, len(order))
	for _, id := range order {
		if sess, ok := s.byID[id]; ok {
			sessions = append(sessions, sess)
		}
	}
	return sessions
}
