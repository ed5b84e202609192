// SPDX-License-Identifier: MIT

package commands

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/subcreation/clauducky/cmd/clauducky/internal/clierr"
	"github.com/subcreation/clauducky/internal/gitgate"
)

// NewGitCommand returns the `clauducky git` command group: a safer git
// workflow that never commits without a review step.
func NewGitCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "git",
		Short: "Review-gated git workflow",
		Long:  "Wraps git commit operations with a mandatory review/confirmation step, verified tagging, and backup branches.",
	}

	cmd.AddCommand(newGitCheckCommand())
	cmd.AddCommand(newGitPrepareCommand())
	cmd.AddCommand(newGitCommitCommand())
	cmd.AddCommand(newGitBackupCommand())

	return cmd
}

func newGate(cmd *cobra.Command, e *env) *gitgate.Gate {
	var confirmer gitgate.Confirmer
	if stdinIsInteractive() {
		confirmer = &gitgate.StdinConfirmer{In: cmd.InOrStdin(), Out: cmd.OutOrStdout()}
	}
	return gitgate.New(gitgate.NewRunner(e.root), confirmer, cmd.OutOrStdout(), e.log, e.cfg.Git.RecentCommits)
}

// stdinIsInteractive reports whether a human can answer a prompt.
func stdinIsInteractive() bool {
	info, err := os.Stdin.Stat()
	if err != nil {
		return false
	}
	return info.Mode()&os.ModeCharDevice != 0
}

func newGitCheckCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Check for uncommitted changes",
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := setup(cmd)
			if err != nil {
				return err
			}
			gate := newGate(cmd, e)

			hasChanges, files, err := gate.Check(cmd.Context())
			if err != nil {
				return clierr.Wrap(1, "checking working tree", err)
			}
			out := cmd.OutOrStdout()
			if !hasChanges {
				fmt.Fprintln(out, "Working directory is clean.")
				return nil
			}
			fmt.Fprintf(out, "There are %d uncommitted change(s):\n", len(files))
			for _, f := range files {
				fmt.Fprintf(out, "  %s\n", f)
			}
			return nil
		},
	}
}

func newGitPrepareCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "prepare [files...]",
		Short: "Stage changes but don't commit",
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := setup(cmd)
			if err != nil {
				return err
			}
			gate := newGate(cmd, e)

			if err := gate.Prepare(cmd.Context(), args); err != nil {
				return clierr.Wrap(1, "staging changes", err)
			}
			return nil
		},
	}
}

func newGitCommitCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "commit",
		Short: "Show changes and commit with verification",
		Long:  "Stages the requested files, presents the staged diff for review, asks for confirmation, and only then commits.",
		RunE:  runGitCommit,
	}

	cmd.Flags().StringP("message", "m", "", "Commit message")
	cmd.Flags().StringSlice("files", nil, "Specific files to stage (default: all changed files)")
	cmd.Flags().Bool("verified", false, "Mark commit as verified working state")
	cmd.Flags().String("tag", "", "Add a custom tag to the commit message")
	cmd.Flags().Bool("force", false, "Skip the interactive confirmation")

	return cmd
}

func runGitCommit(cmd *cobra.Command, args []string) error {
	e, err := setup(cmd)
	if err != nil {
		return err
	}
	gate := newGate(cmd, e)

	message, _ := cmd.Flags().GetString("message")
	files, _ := cmd.Flags().GetStringSlice("files")
	verified, _ := cmd.Flags().GetBool("verified")
	tag, _ := cmd.Flags().GetString("tag")
	force, _ := cmd.Flags().GetBool("force")

	res, err := gate.Commit(cmd.Context(), gitgate.CommitRequest{
		Message:  message,
		Verified: verified,
		Tag:      tag,
		Files:    files,
		Force:    force,
	})
	if err != nil {
		switch {
		case errors.Is(err, gitgate.ErrRejected),
			errors.Is(err, gitgate.ErrConfirmationUnavailable),
			errors.Is(err, gitgate.ErrNoChanges),
			errors.Is(err, gitgate.ErrEmptyMessage):
			return clierr.New(1, err.Error())
		default:
			return clierr.Wrap(1, "commit failed", err)
		}
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Commit created successfully (%s).\n", res.State)
	return nil
}

func newGitBackupCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "backup",
		Short: "Create a timestamped backup branch",
		Long:  "Creates a backup_<timestamp> branch at HEAD without switching branches. Uncommitted changes stay in the worktree and are not part of the backup.",
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := setup(cmd)
			if err != nil {
				return err
			}
			gate := newGate(cmd, e)

			if _, err := gate.Backup(cmd.Context()); err != nil {
				return clierr.Wrap(1, "creating backup branch", err)
			}
			return nil
		},
	}
}
