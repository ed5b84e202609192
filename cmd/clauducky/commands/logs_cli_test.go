package commands

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runLogsCmd(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := NewRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(append([]string{"logs"}, args...))
	err := cmd.Execute()
	return out.String(), err
}

func TestLogsSummaryCLI(t *testing.T) {
	dir := t.TempDir()
	content := "[2025-01-01T00:00:00Z] [ERROR] boom\n[INFO] ok\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "console_log.txt"), []byte(content), 0o644))

	out, err := runLogsCmd(t, "summary", "--dir", dir)
	require.NoError(t, err)
	assert.Contains(t, out, "Errors:             1")
	assert.Contains(t, out, "Info:               1")
	assert.Contains(t, out, "Total lines:        2")
}

func TestLogsSummaryJSON(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "console_log.txt"), []byte("[WARN] careful\n"), 0o644))

	out, err := runLogsCmd(t, "summary", "--dir", dir, "--format", "json")
	require.NoError(t, err)
	assert.Contains(t, out, `"warn": 1`)
	assert.Contains(t, out, `"errors_or_warnings": 1`)
}

func TestLogsSummaryDefaultsWhenMissing(t *testing.T) {
	out, err := runLogsCmd(t, "summary", "--dir", t.TempDir())
	require.NoError(t, err)
	assert.Contains(t, out, "Total lines:        0")
}

func TestLogsErrorsCLI(t *testing.T) {
	dir := t.TempDir()
	content := "[INFO] fine\n[ERROR] bad\n[WARN] iffy\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "console_log.txt"), []byte(content), 0o644))

	out, err := runLogsCmd(t, "errors", "--dir", dir)
	require.NoError(t, err)
	assert.Contains(t, out, "[ERROR] bad")
	assert.Contains(t, out, "[WARN] iffy")
	assert.NotContains(t, out, "[INFO] fine")
}

func TestLogsHistoryCLI(t *testing.T) {
	dir := t.TempDir()
	content := "one\ntwo\n\nthree\nfour\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "console_log.txt"), []byte(content), 0o644))

	out, err := runLogsCmd(t, "history", "2", "--dir", dir)
	require.NoError(t, err)
	assert.NotContains(t, out, "two")
	assert.Contains(t, out, "three")
	assert.Contains(t, out, "four")
}

func TestLogsDiffCLI(t *testing.T) {
	dir := t.TempDir()
	a := filepath.Join(dir, "a.txt")
	b := filepath.Join(dir, "b.txt")
	require.NoError(t, os.WriteFile(a, []byte("a\nb\nc\n"), 0o644))
	require.NoError(t, os.WriteFile(b, []byte("b\nc\nd\n"), 0o644))

	out, err := runLogsCmd(t, "diff", a, b, "--dir", dir)
	require.NoError(t, err)
	assert.Contains(t, out, "Only in "+a)
	assert.Contains(t, out, "  a")
	assert.Contains(t, out, "  d")
}

func TestLogsRotateCLI(t *testing.T) {
	dir := t.TempDir()
	current := filepath.Join(dir, "console_log.txt")
	require.NoError(t, os.WriteFile(current, []byte("[INFO] captured\n"), 0o644))

	_, err := runLogsCmd(t, "rotate", "--dir", dir)
	require.NoError(t, err)

	prev, err := os.ReadFile(filepath.Join(dir, "console_log_previous.txt"))
	require.NoError(t, err)
	assert.Equal(t, "[INFO] captured\n", string(prev))

	cur, err := os.ReadFile(current)
	require.NoError(t, err)
	assert.Empty(t, cur)
}

func TestLogsUnknownMode(t *testing.T) {
	_, err := runLogsCmd(t, "frobnicate", "--dir", t.TempDir())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown mode")
}
