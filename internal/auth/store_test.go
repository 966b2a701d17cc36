package auth

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/replog-dev/replog/internal/api"
)

func TestLoadMissingFile(t *testing.T) {
	store := NewStore(t.TempDir())

	creds, err := store.Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if creds != nil {
		t.Errorf("expected nil credentials, got %+v", creds)
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	store := NewStore(t.TempDir())

	saved := api.Credentials{UserID: "u-123", AccessToken: "tok-456"}
	if err := store.Save(saved); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	loaded, err := store.Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if loaded == nil {
		t.Fatal("Load returned nil after Save")
	}
	if *loaded != saved {
		t.Errorf("round trip: got %+v, want %+v", *loaded, saved)
	}
}

func TestSaveOverwrites(t *testing.T) {
	store := NewStore(t.TempDir())

	if err := store.Save(api.Credentials{UserID: "first", AccessToken: "a"}); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	if err := store.Save(api.Credentials{UserID: "second", AccessToken: "b"}); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	loaded, err := store.Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if loaded.UserID != "second" {
		t.Errorf("UserID: got %q, want %q (last login wins)", loaded.UserID, "second")
	}
}

func TestLoadMalformedRecordIsDiscarded(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "credentials.json")
	if err := os.WriteFile(path, []byte("{not json"), 0600); err != nil {
		t.Fatalf("writing malformed record: %v", err)
	}

	store := NewStore(dir)
	creds, err := store.Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if creds != nil {
		t.Errorf("expected nil credentials for malformed record, got %+v", creds)
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Error("malformed record was not deleted")
	}
}

func TestLoadIncompleteRecordIsDiscarded(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "credentials.json")
	if err := os.WriteFile(path, []byte(`{"user_id":"u-1"}`), 0600); err != nil {
		t.Fatalf("writing incomplete record: %v", err)
	}

	store := NewStore(dir)
	creds, err := store.Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if creds != nil {
		t.Errorf("expected nil credentials for incomplete record, got %+v", creds)
	}
}

func TestClear(t *testing.T) {
	store := NewStore(t.TempDir())

	if err := store.Save(api.Credentials{UserID: "u-1", AccessToken: "tok"}); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	if err := store.Clear(); err != nil {
		t.Fatalf("Clear failed: %v", err)
	}

	creds, err := store.Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if creds != nil {
		t.Errorf("expected nil credentials after Clear, got %+v", creds)
	}

	// Clearing again is fine.
	if err := store.Clear(); err != nil {
		t.Errorf("second Clear failed: %v", err)
	}
}
