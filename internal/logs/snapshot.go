// SPDX-License-Identifier: MIT
package logs

import (
	"os"
	"strings"

	"github.com/sirupsen/logrus"
)

// Snapshot is an ordered, in-memory capture of a log file's lines at one
// read. Line order is preserved; blank lines stay in Lines but are
// excluded from set-difference and tail computations.
type Snapshot struct {
	Path  string
	Lines []string
}

// FromLines builds a snapshot from lines already in memory.
func FromLines(lines []string) Snapshot {
	return Snapshot{Lines: lines}
}

// ReadSnapshot reads a log file into a snapshot. A missing file is not an
// error: it yields an empty snapshot with an informational note, so read
// modes keep working before the first capture has happened.
func ReadSnapshot(log *logrus.Logger, path string) (Snapshot, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		log.WithField("path", path).Info("log file not found, treating as empty")
		return Snapshot{Path: path}, nil
	}
	if err != nil {
		return Snapshot{}, &IOError{Op: "read", Path: path, Err: err}
	}
	return Snapshot{Path: path, Lines: splitLines(string(data))}, nil
}

// splitLines splits file content on newlines, dropping only the empty
// slot a trailing newline produces.
func splitLines(content string) []string {
	if content == "" {
		return nil
	}
	lines := strings.Split(content, "\n")
	if len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}

// NonBlank returns the snapshot's non-blank lines in order.
func (s Snapshot) NonBlank() []string {
	var out []string
	for _, line := range s.Lines {
		if strings.TrimSpace(line) != "" {
			out = append(out, line)
		}
	}
	return out
}

// TailNonBlank returns the last n non-blank lines in original order. If
// fewer than n exist it returns all of them.
func TailNonBlank(s Snapshot, n int) []Entry {
	if n <= 0 {
		return nil
	}
	nonBlank := s.NonBlank()
	if len(nonBlank) > n {
		nonBlank = nonBlank[len(nonBlank)-n:]
	}
	entries := make([]Entry, 0, len(nonBlank))
	for _, line := range nonBlank {
		entries = append(entries, ParseEntry(line))
	}
	return entries
}

// FilterByLevel returns all lines whose classified level is in levels,
// preserving original order.
func FilterByLevel(s Snapshot, levels ...Level) []Entry {
	want := make(map[Level]bool, len(levels))
	for _, l := range levels {
		want[l] = true
	}
	var out []Entry
	for _, line := range s.Lines {
		e := ParseEntry(line)
		if want[e.Level] {
			out = append(out, e)
		}
	}
	return out
}

// FilterEvents returns all event-marker lines in original order.
func FilterEvents(s Snapshot) []Entry {
	var out []Entry
	for _, line := range s.Lines {
		if IsEvent(line) {
			out = append(out, ParseEntry(line))
		}
	}
	return out
}
