// SPDX-License-Identifier: MIT
package logs

import (
	"os"
	"path/filepath"
	"strings"
)

// Rotate copies the content of currentPath to previousPath, overwriting
// whatever was there. A missing or whitespace-only current file leaves
// previousPath untouched. The caller then writes new content to
// currentPath.
//
// The current file is read fully into memory before any write begins, so
// a failure writing previousPath can never truncate currentPath.
func Rotate(currentPath, previousPath string) error {
	data, err := os.ReadFile(currentPath)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return &IOError{Op: "read", Path: currentPath, Err: err}
	}
	if strings.TrimSpace(string(data)) == "" {
		return nil
	}
	if err := atomicWrite(previousPath, data); err != nil {
		return &IOError{Op: "rotate", Path: previousPath, Err: err}
	}
	return nil
}

// Clear truncates the file at path to empty, creating it if absent.
func Clear(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return &IOError{Op: "mkdir", Path: filepath.Dir(path), Err: err}
	}
	if err := os.WriteFile(path, nil, 0o644); err != nil {
		return &IOError{Op: "clear", Path: path, Err: err}
	}
	return nil
}

// atomicWrite writes content to path by writing a temp file in the same
// directory and renaming it over the destination, so readers never see a
// half-written file.
func atomicWrite(path string, content []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".tmp-*")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(content); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), path)
}
