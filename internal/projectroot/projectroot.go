// SPDX-License-Identifier: MIT

// Package projectroot locates the Clauducky installation root. The logs
// directory and session-state file live relative to this root, not the
// caller's working directory, so the tool behaves the same when embedded
// inside a larger project.
package projectroot

import (
	"fmt"
	"os"
	"path/filepath"
)

// Markers that identify the installation root, checked in order.
var markers = []string{".clauducky", "go.mod", ".git"}

// Find walks up from start to the nearest directory containing a root
// marker.
func Find(start string) (string, error) {
	dir, err := filepath.Abs(start)
	if err != nil {
		return "", fmt.Errorf("resolving %s: %w", start, err)
	}

	for {
		for _, marker := range markers {
			if _, err := os.Stat(filepath.Join(dir, marker)); err == nil {
				return dir, nil
			}
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", fmt.Errorf("no project root found above %s", start)
		}
		dir = parent
	}
}

// LogsDir returns the fixed logs directory under root.
func LogsDir(root string) string {
	return filepath.Join(root, "logs")
}
