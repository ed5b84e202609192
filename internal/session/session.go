// Package session tracks whether a Clauducky orientation has happened
// recently, so the agent re-reads the guidelines after context-clearing
// operations without being nagged on every invocation.
package session

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// MaxAge is how long an initialization stays fresh.
const MaxAge = 6 * time.Hour

const stateVersion = "1.0"

// State is the persisted session record.
type State struct {
	Initialized bool
	Timestamp   time.Time
	Version     string
}

// Store reads and writes the session-state file at the installation
// root.
type Store struct {
	root string
}

// NewStore creates a store rooted at the installation directory.
func NewStore(root string) *Store {
	return &Store{root: root}
}

func (s *Store) path() string {
	return filepath.Join(s.root, ".clauducky_session")
}

// Read loads the session state. A missing file is clean state, not an
// error.
func (s *Store) Read() (*State, error) {
	data, err := os.ReadFile(s.path())
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading session state: %w", err)
	}

	state := &State{}
	for _, line := range strings.Split(string(data), "\n") {
		key, value, found := strings.Cut(line, "=")
		if !found {
			continue
		}
		switch key {
		case "initialized":
			state.Initialized = strings.EqualFold(strings.TrimSpace(value), "true")
		case "timestamp":
			if ts, err := time.Parse(time.RFC3339, strings.TrimSpace(value)); err == nil {
				state.Timestamp = ts
			}
		case "script_version":
			state.Version = strings.TrimSpace(value)
		}
	}
	return state, nil
}

// Write persists the session state with the current timestamp.
func (s *Store) Write(initialized bool, now time.Time) error {
	content := fmt.Sprintf("initialized=%t\ntimestamp=%s\nscript_version=%s\n",
		initialized, now.Format(time.RFC3339), stateVersion)
	if err := os.WriteFile(s.path(), []byte(content), 0o644); err != nil {
		return fmt.Errorf("saving session state: %w", err)
	}
	return nil
}

// Fresh reports whether the session was initialized within MaxAge of
// now. Staleness uses the file's own modification time, matching the
// behavior of treating an old state file as uninitialized.
func (s *Store) Fresh(now time.Time) (bool, error) {
	info, err := os.Stat(s.path())
	if os.IsNotExist(err) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("checking session state: %w", err)
	}
	if now.Sub(info.ModTime()) > MaxAge {
		return false, nil
	}

	state, err := s.Read()
	if err != nil {
		return false, err
	}
	return state != nil && state.Initialized, nil
}
