package ducky

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/subcreation/clauducky/internal/testutil/golden"
)

func TestBuildQuickMode(t *testing.T) {
	got, err := Build(Request{
		Problem:  "Widget renders twice",
		Expected: "Widget renders once",
		Code:     "render(widget)",
	})
	require.NoError(t, err)

	golden.Assert(t, golden.TestdataDir(t), "quick_mode_report", got)
}

func TestBuildNoProblem(t *testing.T) {
	got, err := Build(Request{})
	require.NoError(t, err)
	assert.Contains(t, got, "No problem description provided")
}

func TestBuildWithFiles(t *testing.T) {
	dir := t.TempDir()
	codePath := filepath.Join(dir, "main.go")
	logPath := filepath.Join(dir, "run.log")
	require.NoError(t, os.WriteFile(codePath, []byte("func main() {}\n"), 0o644))
	require.NoError(t, os.WriteFile(logPath, []byte("[ERROR] boom\n"), 0o644))

	got, err := Build(Request{
		Problem:  "crash on start",
		CodeFile: codePath,
		LogFile:  logPath,
	})
	require.NoError(t, err)

	assert.Contains(t, got, "func main() {}")
	assert.Contains(t, got, "[ERROR] boom")
	assert.Contains(t, got, "## Code File ("+codePath+")")
	assert.Contains(t, got, "## Log File ("+logPath+")")
}

func TestBuildMissingCodeFile(t *testing.T) {
	_, err := Build(Request{
		Problem:  "crash",
		CodeFile: filepath.Join(t.TempDir(), "absent.go"),
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "reading code file")
}

func TestBuildTemplateMode(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.md")
	content := "# My filled-in session\n\nEverything is broken.\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	got, err := Build(Request{Template: path, Problem: "ignored in template mode"})
	require.NoError(t, err)
	assert.Equal(t, content, got)
}

func TestSave(t *testing.T) {
	dir := t.TempDir()

	path, err := Save("# session\n", filepath.Join(dir, "debug"))
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "debug.md"), path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "# session\n", string(data))

	// An explicit .md extension is not doubled.
	path, err = Save("x", filepath.Join(dir, "named.md"))
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "named.md"), path)
}
