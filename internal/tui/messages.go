// Package tui implements the terminal user interface using Bubble Tea.
package tui

import "github.com/replog-dev/replog/internal/api"

// ============================================================================
// Auth Messages
// ============================================================================

// CredentialsLoadedMsg carries the persisted identity read at startup.
// Creds is nil when no valid record exists.
type CredentialsLoadedMsg struct {
	Creds *api.Credentials
}

// LoginResultMsg signals the outcome of a login attempt.
type LoginResultMsg struct {
	Creds *api.Credentials
	Err   error
}

// SignupResultMsg signals the outcome of an account creation attempt.
type SignupResultMsg struct {
	Message string
	Err     error
}

// ForgotResultMsg signals the outcome of a password reset request.
type ForgotResultMsg struct {
	Message string
	Err     error
}

// LoggedOutMsg signals that the credential record has been cleared.
type LoggedOutMsg struct{}

// ============================================================================
// Suggestion Messages
// ============================================================================

// SuggestDebounceMsg fires when the debounce window for a keystroke
// generation has elapsed. Stale generations are ignored.
type SuggestDebounceMsg struct {
	Generation int
}

// SuggestionsMsg carries a suggestion lookup response. Generation tags the
// request so a stale, later-arriving response never overwrites a newer one.
type SuggestionsMsg struct {
	Generation  int
	Suggestions []api.Suggestion
	Err         error
}

// ============================================================================
// Session Messages
// ============================================================================

// DaySessionsMsg carries the sessions for one calendar date.
type DaySessionsMsg struct {
	Date     string
	Sessions []api.Session
	Err      error
}

// AllSessionsMsg carries the complete historical session list.
type AllSessionsMsg struct {
	Sessions []api.Session
	Err      error
}

// SessionCreatedMsg signals the outcome of creating a session.
type SessionCreatedMsg struct {
	Session *api.Session
	Err     error
}

// SessionRenamedMsg signals the outcome of renaming a session.
type SessionRenamedMsg struct {
	SessionID int64
	Name      string
	Err       error
}

// ============================================================================
// Set Messages
// ============================================================================

// SetsLoadedMsg carries the full set list for a session. Seq echoes the
// refresh counter at request time; a response with an older value is stale.
type SetsLoadedMsg struct {
	SessionID int64
	Seq       int
	Sets      []api.Set
	Err       error
}

// AddSetResultMsg signals the outcome of recording a new set.
type AddSetResultMsg struct {
	Err error
}

// SetMutationMsg signals the outcome of a duplicate, edit, or remove.
type SetMutationMsg struct {
	Action string // "duplicate" | "edit" | "remove"
	Err    error
}

// ============================================================================
// Utility Messages
// ============================================================================

// CtrlCResetMsg clears the Ctrl+C confirmation state after its timeout.
type CtrlCResetMsg struct{}
