package logs

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(os.Stderr)
	log.SetLevel(logrus.WarnLevel)
	return log
}

func TestReadSnapshot(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "console_log.txt")
	require.NoError(t, os.WriteFile(path, []byte("[INFO] one\n\n[ERROR] two\n"), 0o644))

	snap, err := ReadSnapshot(testLogger(), path)
	require.NoError(t, err)
	assert.Equal(t, []string{"[INFO] one", "", "[ERROR] two"}, snap.Lines)
	assert.Equal(t, path, snap.Path)
}

func TestReadSnapshotMissingFile(t *testing.T) {
	snap, err := ReadSnapshot(testLogger(), filepath.Join(t.TempDir(), "nope.txt"))
	require.NoError(t, err)
	assert.Empty(t, snap.Lines)
}

func TestTailNonBlank(t *testing.T) {
	snap := FromLines([]string{"a", "", "b", "   ", "c", "d"})

	tests := []struct {
		name     string
		n        int
		expected []string
	}{
		{name: "last two", n: 2, expected: []string{"c", "d"}},
		{name: "more than available", n: 10, expected: []string{"a", "b", "c", "d"}},
		{name: "zero", n: 0, expected: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := TailNonBlank(snap, tt.n)
			var raw []string
			for _, e := range got {
				raw = append(raw, e.Raw)
			}
			assert.Equal(t, tt.expected, raw)
			assert.LessOrEqual(t, len(got), tt.n)
		})
	}
}

func TestFilterByLevel(t *testing.T) {
	snap := FromLines([]string{
		"[INFO] one",
		"[ERROR] two",
		"[WARN] three",
		"plain",
		"[error] four",
	})

	got := FilterByLevel(snap, LevelError, LevelWarn)
	require.Len(t, got, 3)
	assert.Equal(t, "[ERROR] two", got[0].Raw)
	assert.Equal(t, "[WARN] three", got[1].Raw)
	assert.Equal(t, "[error] four", got[2].Raw)
}

func TestFilterEvents(t *testing.T) {
	snap := FromLines([]string{
		"[EVENT] click",
		"[INFO] noise",
		"=== Session abc started ===",
	})

	got := FilterEvents(snap)
	require.Len(t, got, 2)
	assert.Equal(t, "[EVENT] click", got[0].Raw)
	assert.Equal(t, "=== Session abc started ===", got[1].Raw)
}

func TestParseEntry(t *testing.T) {
	e := ParseEntry("[2025-01-01T00:00:00Z] [ERROR] boom")
	assert.Equal(t, LevelError, e.Level)
	assert.Equal(t, time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC), e.Timestamp)

	e = ParseEntry("[INFO] ok")
	assert.Equal(t, LevelInfo, e.Level)
	assert.True(t, e.Timestamp.IsZero())

	e = ParseEntry("nothing to see")
	assert.Equal(t, LevelUnknown, e.Level)
	assert.Empty(t, e.Marker)

	e = ParseEntry("[EVENT] something happened")
	assert.Equal(t, "[EVENT]", e.Marker)
}
