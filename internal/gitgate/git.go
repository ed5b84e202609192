// SPDX-License-Identifier: MIT
package gitgate

import (
	"context"
	"errors"
	"os/exec"
	"strconv"
	"strings"
)

// Git is the subset of version-control operations the gate needs. It is
// an interface so the state machine can be tested without a repository.
type Git interface {
	Status(ctx context.Context) ([]string, error)
	StagedDiff(ctx context.Context) (string, error)
	UnstagedDiff(ctx context.Context) (string, error)
	RecentCommits(ctx context.Context, n int) (string, error)
	Add(ctx context.Context, files []string) error
	AddAll(ctx context.Context) error
	Commit(ctx context.Context, message string) error
	CurrentBranch(ctx context.Context) (string, error)
	CreateBranch(ctx context.Context, name string) error
}

// Runner runs git against a repository on disk.
type Runner struct {
	repoRoot string
}

// NewRunner creates a Runner rooted at repoRoot.
func NewRunner(repoRoot string) *Runner {
	return &Runner{repoRoot: repoRoot}
}

func (r *Runner) run(ctx context.Context, args ...string) (string, error) {
	cmd := exec.CommandContext(ctx, "git", args...)
	cmd.Dir = r.repoRoot
	out, err := cmd.Output()
	if err != nil {
		gerr := &GateError{Op: args[0], Err: err}
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			gerr.Output = strings.TrimSpace(string(exitErr.Stderr))
		}
		return "", gerr
	}
	return string(out), nil
}

// Status returns the changed paths from `git status --porcelain`.
func (r *Runner) Status(ctx context.Context) ([]string, error) {
	out, err := r.run(ctx, "status", "--porcelain")
	if err != nil {
		return nil, err
	}
	var files []string
	for _, line := range strings.Split(out, "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		// Porcelain lines are "XY <path>"; renames are "XY <old> -> <new>".
		path := strings.TrimSpace(line[2:])
		if i := strings.Index(path, " -> "); i >= 0 {
			path = path[i+len(" -> "):]
		}
		files = append(files, path)
	}
	return files, nil
}

func (r *Runner) StagedDiff(ctx context.Context) (string, error) {
	return r.run(ctx, "diff", "--staged")
}

func (r *Runner) UnstagedDiff(ctx context.Context) (string, error) {
	return r.run(ctx, "diff")
}

// RecentCommits returns the last n commits, one line each, for message
// style reference.
func (r *Runner) RecentCommits(ctx context.Context, n int) (string, error) {
	return r.run(ctx, "log", "--oneline", "-n", strconv.Itoa(n))
}

func (r *Runner) Add(ctx context.Context, files []string) error {
	args := append([]string{"add", "--"}, files...)
	_, err := r.run(ctx, args...)
	return err
}

func (r *Runner) AddAll(ctx context.Context) error {
	_, err := r.run(ctx, "add", "-A")
	return err
}

func (r *Runner) Commit(ctx context.Context, message string) error {
	_, err := r.run(ctx, "commit", "-m", message)
	return err
}

func (r *Runner) CurrentBranch(ctx context.Context) (string, error) {
	out, err := r.run(ctx, "rev-parse", "--abbrev-ref", "HEAD")
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(out), nil
}

// CreateBranch creates a branch at HEAD without switching to it.
func (r *Runner) CreateBranch(ctx context.Context, name string) error {
	_, err := r.run(ctx, "branch", name)
	return err
}
