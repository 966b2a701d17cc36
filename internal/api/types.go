package api

import "encoding/json"

// Credentials identify an authenticated user to the backend. They are sent
// as plain request fields (not headers), matching the server's contract.
type Credentials struct {
	UserID      string `json:"user_id"`
	AccessToken string `json:"access_token"`
}

// Session is a named, dated collection of exercise sets.
type Session struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	CreatedAt string `json:"created_at"`
	UserID    string `json:"user_id"`
	SetCount  *int   `json:"set_count,omitempty"`
}

// Set is one recorded instance of an exercise.
type Set struct {
	ID           int64   `json:"id"`
	SessionID    int64   `json:"session_id"`
	ExerciseName string  `json:"exercise_name"`
	Reps         int     `json:"reps"`
	Weight       float64 `json:"weight"`
	IsKg         bool    `json:"is_kg"`
	CreatedAt    string  `json:"created_at"`
}

// Suggestion is a candidate exercise name with a similarity score in [0,1].
type Suggestion struct {
	Name       string  `json:"name"`
	Similarity float64 `json:"similarity"`
}

// envelope is the uniform response shape returned by every backend call.
// Login responses carry the credentials at the top level rather than in data.
type envelope struct {
	Success     bool            `json:"success"`
	Data        json.RawMessage `json:"data"`
	Detail      string          `json:"detail"`
	Error       string          `json:"error"`
	Message     string          `json:"message"`
	AccessToken string          `json:"access_token"`
	UserID      string          `json:"user_id"`
}

// reason returns the server's explanation for a failed call, preferring the
// most specific field.
func (e *envelope) reason() string {
	switch {
	case e.Detail != "":
		return e.Detail
	case e.Error != "":
		return e.Error
	case e.Message != "":
		return e.Message
	}
	return ""
}
