// SPDX-License-Identifier: MIT

// Package gitgate interposes a mandatory review step between "changes
// exist" and "changes are committed". Every commit runs through a tagged
// state machine, so a commit without a prior staging step is
// unrepresentable rather than merely unlikely.
package gitgate

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
)

// State is the gate's per-invocation commit state.
type State int

const (
	StateIdle State = iota
	StateStaged
	StateConfirmed
	StateRejected
	StateCommitted
	StateAborted
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateStaged:
		return "staged"
	case StateConfirmed:
		return "confirmed"
	case StateRejected:
		return "rejected"
	case StateCommitted:
		return "committed"
	case StateAborted:
		return "aborted"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

// transitions lists the legal state machine edges:
// Idle -> Staged -> {Confirmed, Rejected} -> {Committed, Aborted}.
var transitions = map[State][]State{
	StateIdle:      {StateStaged, StateAborted},
	StateStaged:    {StateConfirmed, StateRejected},
	StateConfirmed: {StateCommitted, StateAborted},
}

// CommitRequest carries one commit attempt through the gate. It is
// consumed once and not retained.
type CommitRequest struct {
	Message  string
	Verified bool
	Tag      string
	// Files optionally restricts staging to an explicit subset; empty
	// means all changed files.
	Files []string
	// Force skips the interactive confirmation. Unattended invocations
	// must set it explicitly.
	Force bool
}

// CommitResult reports where the state machine ended up.
type CommitResult struct {
	State State
	// FullMessage is the message actually committed, with prefixes and
	// attribution applied.
	FullMessage string
}

// Gate wraps git with review, confirmation, and backup steps.
type Gate struct {
	git           Git
	confirmer     Confirmer
	out           io.Writer
	log           *logrus.Logger
	now           func() time.Time
	recentCommits int

	state State
}

// New builds a gate. confirmer may be nil when no interactive channel
// exists; commits then require Force. recentCommits is how many prior
// commits the review shows for message-style reference; non-positive
// values fall back to 3.
func New(git Git, confirmer Confirmer, out io.Writer, log *logrus.Logger, recentCommits int) *Gate {
	if recentCommits <= 0 {
		recentCommits = 3
	}
	return &Gate{
		git:           git,
		confirmer:     confirmer,
		out:           out,
		log:           log,
		now:           time.Now,
		recentCommits: recentCommits,
		state:         StateIdle,
	}
}

// State returns the gate's current commit state.
func (g *Gate) State() State { return g.state }

func (g *Gate) transition(to State) error {
	for _, allowed := range transitions[g.state] {
		if allowed == to {
			g.log.WithFields(logrus.Fields{"from": g.state.String(), "to": to.String()}).Debug("gate transition")
			g.state = to
			return nil
		}
	}
	return fmt.Errorf("invalid gate transition: %s -> %s", g.state, to)
}

// Check inspects working-tree state without mutating it.
func (g *Gate) Check(ctx context.Context) (bool, []string, error) {
	files, err := g.git.Status(ctx)
	if err != nil {
		return false, nil, err
	}
	return len(files) > 0, files, nil
}

// Prepare stages the requested files (or all changes) for a manual,
// user-driven commit. It does not commit and is idempotent: staging the
// same set twice leaves the same staged set.
func (g *Gate) Prepare(ctx context.Context, files []string) error {
	if err := g.showChanges(ctx); err != nil {
		return err
	}
	if err := g.stage(ctx, files); err != nil {
		return err
	}
	fmt.Fprintln(g.out, "Changes staged. Run the commit subcommand to create the commit.")
	return nil
}

// Commit runs the full state machine. On rejection the staged changes
// remain staged for a future retry.
func (g *Gate) Commit(ctx context.Context, req CommitRequest) (CommitResult, error) {
	// Message validation happens before any git call.
	if strings.TrimSpace(req.Message) == "" {
		return CommitResult{State: g.state}, ErrEmptyMessage
	}

	hasChanges, _, err := g.Check(ctx)
	if err != nil {
		return CommitResult{State: g.state}, err
	}
	if !hasChanges {
		_ = g.transition(StateAborted)
		return CommitResult{State: g.state}, ErrNoChanges
	}

	if err := g.stage(ctx, req.Files); err != nil {
		_ = g.transition(StateAborted)
		return CommitResult{State: g.state}, err
	}
	if err := g.transition(StateStaged); err != nil {
		return CommitResult{State: g.state}, err
	}

	// The staged diff must be presented before leaving Staged.
	if err := g.showReview(ctx); err != nil {
		return CommitResult{State: g.state}, err
	}

	fullMessage := BuildMessage(req.Message, req.Verified, req.Tag)
	fmt.Fprintf(g.out, "=== Commit Message ===\n%s\n\n", fullMessage)

	approved, err := g.confirm(req.Force)
	if err != nil {
		return CommitResult{State: g.state}, err
	}
	if !approved {
		if err := g.transition(StateRejected); err != nil {
			return CommitResult{State: g.state}, err
		}
		fmt.Fprintln(g.out, "Commit cancelled. Staged changes were left in place.")
		return CommitResult{State: g.state}, ErrRejected
	}
	if err := g.transition(StateConfirmed); err != nil {
		return CommitResult{State: g.state}, err
	}

	if err := g.git.Commit(ctx, fullMessage); err != nil {
		_ = g.transition(StateAborted)
		return CommitResult{State: g.state}, err
	}
	if err := g.transition(StateCommitted); err != nil {
		return CommitResult{State: g.state}, err
	}

	g.log.WithField("verified", req.Verified).Info("commit created")
	return CommitResult{State: g.state, FullMessage: fullMessage}, nil
}

// Backup creates a timestamped backup_<ts> branch at HEAD without
// switching branches. Uncommitted working-tree changes are NOT included
// in the backup; they are left untouched in the worktree.
func (g *Gate) Backup(ctx context.Context) (string, error) {
	name := "backup_" + g.now().Format("20060102_150405")
	if err := g.git.CreateBranch(ctx, name); err != nil {
		return "", err
	}
	branch, err := g.git.CurrentBranch(ctx)
	if err != nil {
		return "", err
	}
	fmt.Fprintf(g.out, "Backup created as branch %s (still on %s).\n", name, branch)
	return name, nil
}

func (g *Gate) stage(ctx context.Context, files []string) error {
	if len(files) > 0 {
		return g.git.Add(ctx, files)
	}
	return g.git.AddAll(ctx)
}

func (g *Gate) confirm(force bool) (bool, error) {
	if force {
		return true, nil
	}
	if g.confirmer == nil {
		return false, ErrConfirmationUnavailable
	}
	return g.confirmer.Confirm("Ready to commit these changes?")
}

func (g *Gate) showChanges(ctx context.Context) error {
	staged, err := g.git.StagedDiff(ctx)
	if err != nil {
		return err
	}
	unstaged, err := g.git.UnstagedDiff(ctx)
	if err != nil {
		return err
	}
	writeSection(g.out, "Staged Changes", staged)
	writeSection(g.out, "Unstaged Changes", unstaged)
	return nil
}

func (g *Gate) showReview(ctx context.Context) error {
	staged, err := g.git.StagedDiff(ctx)
	if err != nil {
		return err
	}
	writeSection(g.out, "Staged Changes", staged)

	recent, err := g.git.RecentCommits(ctx, g.recentCommits)
	if err != nil {
		// A repo with no commits yet has no style to match; keep going.
		g.log.WithError(err).Debug("no recent commits to show")
		return nil
	}
	writeSection(g.out, "Recent Commits", recent)
	return nil
}

func writeSection(w io.Writer, title, body string) {
	fmt.Fprintf(w, "=== %s ===\n", title)
	if strings.TrimSpace(body) == "" {
		fmt.Fprintln(w, "(none)")
	} else {
		fmt.Fprintln(w, strings.TrimRight(body, "\n"))
	}
	fmt.Fprintln(w)
}
