// SPDX-License-Identifier: MIT
package logs

import (
	"strings"
	"time"
)

// Level classifies a log line by its bracketed severity tag.
type Level string

const (
	LevelInfo    Level = "INFO"
	LevelLog     Level = "LOG"
	LevelWarn    Level = "WARN"
	LevelError   Level = "ERROR"
	LevelDebug   Level = "DEBUG"
	LevelUnknown Level = "UNKNOWN"
)

// Event marker substrings. A line containing any of these is an "event"
// line regardless of its severity tag. The bracketed tags are matched
// case-insensitively; "Session" is matched as written because it comes
// from the capture session boundary markers.
const (
	markerEvent   = "[EVENT]"
	markerGeneric = "[MARKER]"
	markerSession = "Session"
)

// Entry is a derived view of one log line. Entries are constructed
// transiently when a snapshot is classified; they are never persisted
// separately from the source file.
type Entry struct {
	// Timestamp is the parsed bracketed ISO-8601 prefix, zero when the
	// line has none.
	Timestamp time.Time
	Level     Level
	// Marker is the first event marker found in the line, empty when the
	// line is not an event line.
	Marker string
	Raw    string
}

// ParseEntry classifies a single raw line.
func ParseEntry(raw string) Entry {
	return Entry{
		Timestamp: parseTimestamp(raw),
		Level:     classifyLevel(raw),
		Marker:    findMarker(raw),
		Raw:       raw,
	}
}

// classifyLevel picks the single level for an entry. Severity wins over
// the residual LOG category when a line carries several tags.
func classifyLevel(raw string) Level {
	upper := strings.ToUpper(raw)
	switch {
	case strings.Contains(upper, "[ERROR]"):
		return LevelError
	case strings.Contains(upper, "[WARN]"):
		return LevelWarn
	case strings.Contains(upper, "[INFO]"):
		return LevelInfo
	case strings.Contains(upper, "[DEBUG]"):
		return LevelDebug
	case strings.Contains(upper, "[LOG]"):
		return LevelLog
	default:
		return LevelUnknown
	}
}

func findMarker(raw string) string {
	upper := strings.ToUpper(raw)
	if strings.Contains(upper, markerEvent) {
		return markerEvent
	}
	if strings.Contains(upper, markerGeneric) {
		return markerGeneric
	}
	if strings.Contains(raw, markerSession) {
		return markerSession
	}
	return ""
}

// IsEvent reports whether the line matches the event marker criteria.
func IsEvent(raw string) bool {
	return findMarker(raw) != ""
}

// parseTimestamp parses a leading "[<ISO-8601>]" prefix. Lines without
// one, or with a bracketed prefix that is not a timestamp (a level tag,
// usually), yield the zero time.
func parseTimestamp(raw string) time.Time {
	trimmed := strings.TrimLeft(raw, " \t")
	if !strings.HasPrefix(trimmed, "[") {
		return time.Time{}
	}
	end := strings.Index(trimmed, "]")
	if end < 0 {
		return time.Time{}
	}
	ts, err := time.Parse(time.RFC3339, trimmed[1:end])
	if err != nil {
		return time.Time{}
	}
	return ts
}
