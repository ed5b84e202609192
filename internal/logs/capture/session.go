// SPDX-License-Identifier: MIT

// Package capture turns the old implicit console-log buffer into an
// explicit session object. The caller owns the session, starts it, feeds
// it lines, and ends it; there is no package-level state.
package capture

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"
)

// ErrEnded is returned when lines are appended to a finished session.
var ErrEnded = errors.New("capture session already ended")

// Session writes captured console lines to w, framed by session boundary
// markers. The markers contain the word "Session" so the analyzer counts
// them as event lines.
type Session struct {
	id    string
	w     io.Writer
	ended bool
	now   func() time.Time
}

// Start opens a capture session on w and writes the start marker.
func Start(w io.Writer) (*Session, error) {
	s := &Session{
		id:  uuid.NewString(),
		w:   w,
		now: time.Now,
	}
	if err := s.writeMarker("started"); err != nil {
		return nil, err
	}
	return s, nil
}

// ID returns the session's unique identifier.
func (s *Session) ID() string { return s.id }

// Append writes one captured line to the session.
func (s *Session) Append(line string) error {
	if s.ended {
		return ErrEnded
	}
	_, err := fmt.Fprintln(s.w, line)
	return err
}

// End writes the closing marker. Further appends fail with ErrEnded.
// End is idempotent.
func (s *Session) End() error {
	if s.ended {
		return nil
	}
	if err := s.writeMarker("ended"); err != nil {
		return err
	}
	s.ended = true
	return nil
}

func (s *Session) writeMarker(verb string) error {
	ts := s.now().UTC().Format(time.RFC3339)
	_, err := fmt.Fprintf(s.w, "=== Session %s %s at %s ===\n", s.id, verb, ts)
	return err
}
