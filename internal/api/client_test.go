package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestLoginSuccess(t *testing.T) {
	var gotBody map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/login" {
			t.Errorf("path: got %q, want /api/login", r.URL.Path)
		}
		if err := json.NewDecoder(r.Body).Decode(&gotBody); err != nil {
			t.Fatalf("decoding request body: %v", err)
		}
		json.NewEncoder(w).Encode(map[string]any{
			"success":      true,
			"user_id":      "u-123",
			"access_token": "tok-456",
		})
	}))
	defer srv.Close()

	client := NewClient(srv.URL, nil)
	creds, err := client.Login("a@b.com", "secret")
	if err != nil {
		t.Fatalf("Login failed: %v", err)
	}
	if creds.UserID != "u-123" || creds.AccessToken != "tok-456" {
		t.Errorf("credentials: got %+v", creds)
	}
	if gotBody["email"] != "a@b.com" || gotBody["password"] != "secret" {
		t.Errorf("request body: got %v", gotBody)
	}
}

func TestLoginServerFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{
			"success": false,
			"detail":  "invalid credentials",
		})
	}))
	defer srv.Close()

	client := NewClient(srv.URL, nil)
	_, err := client.Login("a@b.com", "wrong")

	var apiErr *Error
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected *api.Error, got %T: %v", err, err)
	}
	if apiErr.Detail != "invalid credentials" {
		t.Errorf("Detail: got %q, want %q", apiErr.Detail, "invalid credentials")
	}
}

func TestAddSetPayload(t *testing.T) {
	var gotBody map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/add-set" {
			t.Errorf("path: got %q, want /api/add-set", r.URL.Path)
		}
		if err := json.NewDecoder(r.Body).Decode(&gotBody); err != nil {
			t.Fatalf("decoding request body: %v", err)
		}
		json.NewEncoder(w).Encode(map[string]any{"success": true})
	}))
	defer srv.Close()

	client := NewClient(srv.URL, nil)
	creds := Credentials{UserID: "u-1", AccessToken: "tok"}
	if err := client.AddSet(creds, 42, "Bench Press", 10, 50, true); err != nil {
		t.Fatalf("AddSet failed: %v", err)
	}

	if gotBody["session_id"] != float64(42) {
		t.Errorf("session_id: got %v, want 42", gotBody["session_id"])
	}
	if gotBody["exercise_name"] != "Bench Press" {
		t.Errorf("exercise_name: got %v", gotBody["exercise_name"])
	}
	if gotBody["reps"] != float64(10) || gotBody["weight"] != float64(50) {
		t.Errorf("reps/weight: got %v/%v", gotBody["reps"], gotBody["weight"])
	}
	if gotBody["is_kg"] != true {
		t.Errorf("is_kg: got %v, want true", gotBody["is_kg"])
	}
	if gotBody["user_id"] != "u-1" || gotBody["access_token"] != "tok" {
		t.Errorf("credentials: got %v/%v", gotBody["user_id"], gotBody["access_token"])
	}
}

func TestExerciseSuggestions(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		if q.Get("query") != "bench" {
			t.Errorf("query: got %q, want %q", q.Get("query"), "bench")
		}
		if q.Get("limit") != "10" {
			t.Errorf("limit: got %q, want %q", q.Get("limit"), "10")
		}
		json.NewEncoder(w).Encode(map[string]any{
			"success": true,
			"data": []map[string]any{
				{"name": "Bench Press", "similarity": 0.92},
				{"name": "Incline Bench Press", "similarity": 0.71},
			},
		})
	}))
	defer srv.Close()

	client := NewClient(srv.URL, nil)
	suggestions, err := client.ExerciseSuggestions("bench", 10)
	if err != nil {
		t.Fatalf("ExerciseSuggestions failed: %v", err)
	}
	if len(suggestions) != 2 {
		t.Fatalf("got %d suggestions, want 2", len(suggestions))
	}
	if suggestions[0].Name != "Bench Press" || suggestions[0].Similarity != 0.92 {
		t.Errorf("suggestion 0: got %+v", suggestions[0])
	}
}

func TestSessionsByDateQueryParams(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		if q.Get("date") != "2026-08-28" {
			t.Errorf("date: got %q, want 2026-08-28", q.Get("date"))
		}
		if q.Get("user_id") != "u-1" || q.Get("access_token") != "tok" {
			t.Errorf("credentials: got %v", q)
		}
		json.NewEncoder(w).Encode(map[string]any{
			"success": true,
			"data": []map[string]any{
				{"id": 7, "name": "Morning Workout", "created_at": "2026-08-28T09:00:00", "user_id": "u-1"},
			},
		})
	}))
	defer srv.Close()

	client := NewClient(srv.URL, nil)
	sessions, err := client.SessionsByDate(Credentials{UserID: "u-1", AccessToken: "tok"}, "2026-08-28")
	if err != nil {
		t.Fatalf("SessionsByDate failed: %v", err)
	}
	if len(sessions) != 1 || sessions[0].ID != 7 || sessions[0].Name != "Morning Workout" {
		t.Errorf("sessions: got %+v", sessions)
	}
}

func TestDuplicateSetNotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{
			"success": false,
			"detail":  "not found",
		})
	}))
	defer srv.Close()

	client := NewClient(srv.URL, nil)
	err := client.DuplicateSet(Credentials{UserID: "u-1", AccessToken: "tok"}, 7)

	var apiErr *Error
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected *api.Error, got %T: %v", err, err)
	}
	if apiErr.Error() != "not found" {
		t.Errorf("error text: got %q, want %q", apiErr.Error(), "not found")
	}
}

func TestTransportFailureIsNotAPIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // connection refused from here on

	client := NewClient(srv.URL, nil)
	err := client.RemoveSet(Credentials{UserID: "u-1", AccessToken: "tok"}, 1)
	if err == nil {
		t.Fatal("expected error after server shutdown")
	}
	var apiErr *Error
	if errors.As(err, &apiErr) {
		t.Errorf("transport failure should not be an *api.Error: %v", err)
	}
}

func TestMalformedResponseBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("<html>gateway error</html>"))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, nil)
	if _, err := client.AllSessions(Credentials{UserID: "u-1", AccessToken: "tok"}); err == nil {
		t.Error("expected decode error for malformed body, got nil")
	}
}

func TestCurrentSessionNullData(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{"success": true, "data": nil})
	}))
	defer srv.Close()

	client := NewClient(srv.URL, nil)
	session, err := client.CurrentSession(Credentials{UserID: "u-1", AccessToken: "tok"})
	if err != nil {
		t.Fatalf("CurrentSession failed: %v", err)
	}
	if session != nil {
		t.Errorf("expected nil session, got %+v", session)
	}
}
