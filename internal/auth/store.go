// Package auth persists the logged-in user's identity.
// One JSON record on disk, overwritten wholesale on login and deleted on
// logout. There is no expiry or refresh: a stale token is only discovered
// when a backend call fails.
package auth

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/replog-dev/replog/internal/api"
)

const credentialsFile = "credentials.json"

// Store reads and writes the credential record inside a replog directory.
type Store struct {
	path string
}

// NewStore creates a Store rooted at the given replog directory.
func NewStore(dir string) *Store {
	return &Store{path: filepath.Join(dir, credentialsFile)}
}

// Load returns the persisted credentials, or nil if none exist.
// A malformed record is deleted and treated as logged out rather than
// surfaced as an error.
func (s *Store) Load() (*api.Credentials, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("reading credentials: %w", err)
	}

	var creds api.Credentials
	if err := json.Unmarshal(data, &creds); err != nil {
		_ = os.Remove(s.path)
		return nil, nil
	}
	if creds.UserID == "" || creds.AccessToken == "" {
		_ = os.Remove(s.path)
		return nil, nil
	}

	return &creds, nil
}

// Save overwrites the credential record. Last login wins.
func (s *Store) Save(creds api.Credentials) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0755); err != nil {
		return fmt.Errorf("creating credentials directory: %w", err)
	}

	data, err := json.Marshal(creds)
	if err != nil {
		return fmt.Errorf("marshalling credentials: %w", err)
	}

	if err := os.WriteFile(s.path, data, 0600); err != nil {
		return fmt.Errorf("writing credentials: %w", err)
	}
	return nil
}

// Clear deletes the credential record. Clearing an empty store is not an
// error.
func (s *Store) Clear() error {
	if err := os.Remove(s.path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("removing credentials: %w", err)
	}
	return nil
}
