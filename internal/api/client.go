// Package api is the HTTP client for the workout tracker backend.
// One method per backend operation; every response uses the uniform
// success/data/detail envelope.
package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/replog-dev/replog/internal/log"
)

// Error is a server-reported logical failure (success:false). The UI shows
// its text verbatim; transport failures are plain wrapped errors instead.
type Error struct {
	Op     string
	Detail string
}

func (e *Error) Error() string {
	if e.Detail == "" {
		return e.Op + " failed"
	}
	return e.Detail
}

// Client talks to the workout tracker backend.
// Requests carry no timeout: a hung request leaves the affected control in
// its loading state, matching the web client it replaces.
type Client struct {
	baseURL    string
	httpClient *http.Client
	events     *log.Logger
}

// NewClient creates a Client for the backend at baseURL.
// events may be nil to disable operation logging.
func NewClient(baseURL string, events *log.Logger) *Client {
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{},
		events:     events,
	}
}

// Login authenticates and returns the user's credentials.
func (c *Client) Login(email, password string) (*Credentials, error) {
	env, err := c.post("login", "/api/login", map[string]any{
		"email":    email,
		"password": password,
	})
	if err != nil {
		return nil, err
	}
	if env.UserID == "" || env.AccessToken == "" {
		return nil, &Error{Op: "login", Detail: env.reason()}
	}
	return &Credentials{UserID: env.UserID, AccessToken: env.AccessToken}, nil
}

// Signup creates an account. The returned message is the server's
// confirmation text, if any.
func (c *Client) Signup(email, password string) (string, error) {
	env, err := c.post("signup", "/api/signup", map[string]any{
		"email":    email,
		"password": password,
	})
	if err != nil {
		return "", err
	}
	return env.Message, nil
}

// ForgotPassword requests a password reset email.
func (c *Client) ForgotPassword(email string) (string, error) {
	env, err := c.post("forgot-password", "/api/forgot-password", map[string]any{
		"email": email,
	})
	if err != nil {
		return "", err
	}
	return env.Message, nil
}

// ExerciseSuggestions returns ranked exercise name suggestions for query.
func (c *Client) ExerciseSuggestions(query string, limit int) ([]Suggestion, error) {
	q := url.Values{}
	q.Set("query", query)
	q.Set("limit", strconv.Itoa(limit))

	var suggestions []Suggestion
	if err := c.get("exercise-suggestions", "/api/exercise-suggestions", q, &suggestions); err != nil {
		return nil, err
	}
	return suggestions, nil
}

// CreateSession creates a workout session for the given date-time and
// returns it.
func (c *Client) CreateSession(creds Credentials, workoutDate string) (*Session, error) {
	env, err := c.post("create-session", "/api/create-session", map[string]any{
		"user_id":      creds.UserID,
		"access_token": creds.AccessToken,
		"workout_date": workoutDate,
	})
	if err != nil {
		return nil, err
	}

	var session Session
	if err := json.Unmarshal(env.Data, &session); err != nil {
		return nil, fmt.Errorf("create-session: decoding session: %w", err)
	}
	return &session, nil
}

// RenameSession renames a workout session.
func (c *Client) RenameSession(creds Credentials, sessionID int64, name string) error {
	_, err := c.post("rename-session", "/api/rename-session", map[string]any{
		"session_id":   sessionID,
		"name":         name,
		"user_id":      creds.UserID,
		"access_token": creds.AccessToken,
	})
	return err
}

// SessionsByDate lists the user's sessions for one calendar date
// (YYYY-MM-DD; time of day is not a filter).
func (c *Client) SessionsByDate(creds Credentials, date string) ([]Session, error) {
	q := credQuery(creds)
	q.Set("date", date)

	var sessions []Session
	if err := c.get("sessions-by-date", "/api/sessions-by-date", q, &sessions); err != nil {
		return nil, err
	}
	return sessions, nil
}

// CurrentSession returns the user's most recent session, or nil if the
// server reports none.
func (c *Client) CurrentSession(creds Credentials) (*Session, error) {
	var session *Session
	if err := c.get("current-session", "/api/current-session", credQuery(creds), &session); err != nil {
		return nil, err
	}
	return session, nil
}

// AllSessions lists every session the user has recorded.
func (c *Client) AllSessions(creds Credentials) ([]Session, error) {
	var sessions []Session
	if err := c.get("all-sessions", "/api/all-sessions", credQuery(creds), &sessions); err != nil {
		return nil, err
	}
	return sessions, nil
}

// SessionSets lists all sets in a session, in server order.
func (c *Client) SessionSets(creds Credentials, sessionID int64) ([]Set, error) {
	q := credQuery(creds)
	q.Set("session_id", strconv.FormatInt(sessionID, 10))

	var sets []Set
	if err := c.get("session-sets", "/api/session-sets", q, &sets); err != nil {
		return nil, err
	}
	return sets, nil
}

// AddSet records a new set in a session.
func (c *Client) AddSet(creds Credentials, sessionID int64, exerciseName string, reps int, weight float64, isKg bool) error {
	_, err := c.post("add-set", "/api/add-set", map[string]any{
		"session_id":    sessionID,
		"exercise_name": exerciseName,
		"reps":          reps,
		"weight":        weight,
		"is_kg":         isKg,
		"user_id":       creds.UserID,
		"access_token":  creds.AccessToken,
	})
	return err
}

// DuplicateSet asks the server to copy an existing set.
func (c *Client) DuplicateSet(creds Credentials, setID int64) error {
	_, err := c.post("duplicate-set", "/api/duplicate-set", map[string]any{
		"set_id":       setID,
		"user_id":      creds.UserID,
		"access_token": creds.AccessToken,
	})
	return err
}

// EditSet updates the reps and weight of an existing set.
func (c *Client) EditSet(creds Credentials, setID int64, reps int, weight float64) error {
	_, err := c.post("edit-set", "/api/edit-set", map[string]any{
		"set_id":       setID,
		"reps":         reps,
		"weight":       weight,
		"user_id":      creds.UserID,
		"access_token": creds.AccessToken,
	})
	return err
}

// RemoveSet deletes a set.
func (c *Client) RemoveSet(creds Credentials, setID int64) error {
	_, err := c.post("remove-set", "/api/remove-set", map[string]any{
		"set_id":       setID,
		"user_id":      creds.UserID,
		"access_token": creds.AccessToken,
	})
	return err
}

// post sends a JSON body and decodes the response envelope.
func (c *Client) post(op, path string, body any) (*envelope, error) {
	data, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("%s: marshalling request: %w", op, err)
	}

	start := time.Now()
	resp, err := c.httpClient.Post(c.baseURL+path, "application/json", bytes.NewReader(data))
	if err != nil {
		err = fmt.Errorf("%s: %w", op, err)
		c.observe(op, start, err)
		return nil, err
	}

	env, err := c.decode(op, resp)
	c.observe(op, start, err)
	return env, err
}

// get sends a query-parameter request and unmarshals the envelope's data
// field into out (which may be nil).
func (c *Client) get(op, path string, query url.Values, out any) error {
	start := time.Now()
	resp, err := c.httpClient.Get(c.baseURL + path + "?" + query.Encode())
	if err != nil {
		err = fmt.Errorf("%s: %w", op, err)
		c.observe(op, start, err)
		return err
	}

	env, err := c.decode(op, resp)
	if err == nil && out != nil && len(env.Data) > 0 && string(env.Data) != "null" {
		if uerr := json.Unmarshal(env.Data, out); uerr != nil {
			err = fmt.Errorf("%s: decoding data: %w", op, uerr)
		}
	}
	c.observe(op, start, err)
	return err
}

// decode reads the uniform envelope and turns success:false into *Error.
func (c *Client) decode(op string, resp *http.Response) (*envelope, error) {
	defer resp.Body.Close()

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return nil, fmt.Errorf("%s: decoding response: %w", op, err)
	}
	if !env.Success {
		return nil, &Error{Op: op, Detail: env.reason()}
	}
	return &env, nil
}

// observe appends one api_call event per completed operation.
func (c *Client) observe(op string, start time.Time, err error) {
	if c.events == nil {
		return
	}
	event := log.LogEvent{
		Event:      log.EventAPICall,
		Op:         op,
		DurationMs: time.Since(start).Milliseconds(),
		Success:    err == nil,
	}
	if err != nil {
		event.Error = err.Error()
	}
	_ = c.events.Append(event)
}

func credQuery(creds Credentials) url.Values {
	q := url.Values{}
	q.Set("user_id", creds.UserID)
	q.Set("access_token", creds.AccessToken)
	return q
}
