package log

import (
	"testing"
	"time"
)

func TestAppendAndReadAll(t *testing.T) {
	tmpDir := t.TempDir()

	logger, err := NewLogger(tmpDir)
	if err != nil {
		t.Fatalf("NewLogger failed: %v", err)
	}

	events := []LogEvent{
		{Event: EventClientStarted},
		{Event: EventAPICall, Op: "add-set", DurationMs: 42, Success: true},
		{Event: EventAPICall, Op: "remove-set", Success: false, Error: "not found"},
	}
	for _, e := range events {
		if err := logger.Append(e); err != nil {
			t.Fatalf("Append failed: %v", err)
		}
	}

	read, err := logger.ReadAll()
	if err != nil {
		t.Fatalf("ReadAll failed: %v", err)
	}
	if len(read) != 3 {
		t.Fatalf("ReadAll returned %d events, want 3", len(read))
	}
	if read[1].Op != "add-set" || !read[1].Success {
		t.Errorf("event 1: got %+v", read[1])
	}
	if read[2].Error != "not found" {
		t.Errorf("event 2 error: got %q, want %q", read[2].Error, "not found")
	}
}

func TestAppendFillsTimeAndRunID(t *testing.T) {
	tmpDir := t.TempDir()

	logger, err := NewLogger(tmpDir)
	if err != nil {
		t.Fatalf("NewLogger failed: %v", err)
	}

	if err := logger.Append(LogEvent{Event: EventLogin, Success: true}); err != nil {
		t.Fatalf("Append failed: %v", err)
	}

	read, err := logger.ReadAll()
	if err != nil {
		t.Fatalf("ReadAll failed: %v", err)
	}
	if len(read) != 1 {
		t.Fatalf("ReadAll returned %d events, want 1", len(read))
	}
	if read[0].Time.IsZero() {
		t.Error("Time was not filled in")
	}
	if time.Since(read[0].Time) > time.Minute {
		t.Errorf("Time looks wrong: %v", read[0].Time)
	}
	if read[0].RunID != logger.RunID() {
		t.Errorf("RunID: got %q, want %q", read[0].RunID, logger.RunID())
	}
}

func TestReadAllMissingFile(t *testing.T) {
	tmpDir := t.TempDir()

	logger, err := NewLogger(tmpDir)
	if err != nil {
		t.Fatalf("NewLogger failed: %v", err)
	}

	events, err := logger.ReadAll()
	if err != nil {
		t.Fatalf("ReadAll failed: %v", err)
	}
	if len(events) != 0 {
		t.Errorf("expected no events, got %d", len(events))
	}
}
