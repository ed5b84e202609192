// SPDX-License-Identifier: MIT

// Package ducky assembles structured rubber-duck debugging reports. It
// builds the session document the reviewer model would receive; it never
// talks to a model API itself.
package ducky

import (
	"fmt"
	"os"
	"strings"
)

// Request carries everything a debugging session can include.
type Request struct {
	Problem  string
	Expected string
	Code     string
	CodeFile string
	LogFile  string
	// Template, when set, is a pre-filled session document used verbatim
	// instead of assembling one from the fields above.
	Template string
}

// Build assembles the markdown debugging session document.
func Build(req Request) (string, error) {
	if req.Template != "" {
		content, err := os.ReadFile(req.Template)
		if err != nil {
			return "", fmt.Errorf("reading template file: %w", err)
		}
		return string(content), nil
	}

	var b strings.Builder
	b.WriteString("# Debugging Session\n\n")

	b.WriteString("## Problem\n")
	if req.Problem != "" {
		b.WriteString(req.Problem)
	} else {
		b.WriteString("No problem description provided")
	}
	b.WriteString("\n\n")

	if req.Expected != "" {
		fmt.Fprintf(&b, "## Expected Behavior\n%s\n\n", req.Expected)
	}

	if req.Code != "" {
		fmt.Fprintf(&b, "## Code\n```\n%s\n```\n\n", req.Code)
	}

	if req.CodeFile != "" {
		code, err := os.ReadFile(req.CodeFile)
		if err != nil {
			return "", fmt.Errorf("reading code file: %w", err)
		}
		fmt.Fprintf(&b, "## Code File (%s)\n```\n%s\n```\n\n", req.CodeFile, code)
	}

	if req.LogFile != "" {
		log, err := os.ReadFile(req.LogFile)
		if err != nil {
			return "", fmt.Errorf("reading log file: %w", err)
		}
		fmt.Fprintf(&b, "## Log File (%s)\n```\n%s\n```\n\n", req.LogFile, log)
	}

	return b.String(), nil
}

// Save writes the session document to path, appending a .md extension
// when missing.
func Save(content, path string) (string, error) {
	if !strings.HasSuffix(path, ".md") {
		path += ".md"
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return "", fmt.Errorf("saving debugging session: %w", err)
	}
	return path, nil
}
