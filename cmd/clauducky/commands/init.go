// SPDX-License-Identifier: MIT

package commands

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/subcreation/clauducky/cmd/clauducky/internal/clierr"
	"github.com/subcreation/clauducky/internal/session"
)

// NewInitCommand returns the `clauducky init` command. It reloads the
// project guidelines at the start of a session or after the agent's
// context has been cleared.
func NewInitCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize a Clauducky session",
		RunE:  runInit,
	}

	cmd.Flags().Bool("check-only", false, "Only check whether the session is initialized")
	cmd.Flags().Bool("force", false, "Reinitialize even if the session is fresh")
	cmd.Flags().Bool("quiet", false, "Suppress the orientation output")

	return cmd
}

func runInit(cmd *cobra.Command, args []string) error {
	e, err := setup(cmd)
	if err != nil {
		return err
	}
	store := session.NewStore(e.root)
	out := cmd.OutOrStdout()
	now := time.Now()

	fresh, err := store.Fresh(now)
	if err != nil {
		return err
	}

	if checkOnly, _ := cmd.Flags().GetBool("check-only"); checkOnly {
		if fresh {
			fmt.Fprintln(out, "Session is initialized.")
			return nil
		}
		return clierr.New(1, "session is not initialized")
	}

	force, _ := cmd.Flags().GetBool("force")
	if fresh && !force {
		fmt.Fprintln(out, "Session already initialized. Use --force to reinitialize.")
		return nil
	}

	quiet, _ := cmd.Flags().GetBool("quiet")
	if err := printOrientation(out, e.root, quiet); err != nil {
		return err
	}

	if err := store.Write(true, now); err != nil {
		return clierr.Wrap(1, "initializing session", err)
	}
	if !quiet {
		fmt.Fprintln(out, "\nSession initialized successfully.")
	}
	return nil
}

func printOrientation(out io.Writer, root string, quiet bool) error {
	path := filepath.Join(root, "CLAUDE.md")
	content, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		fmt.Fprintf(out, "No CLAUDE.md found at %s; skipping orientation.\n", root)
		return nil
	}
	if err != nil {
		return fmt.Errorf("reading guidelines at %s: %w", path, err)
	}

	if quiet {
		fmt.Fprintln(out, "Clauducky orientation: methodology loaded.")
		return nil
	}

	rule := strings.Repeat("=", 80)
	fmt.Fprintln(out, rule)
	fmt.Fprintln(out, "CLAUDUCKY ORIENTATION - PLEASE READ CAREFULLY")
	fmt.Fprintln(out, rule)
	fmt.Fprintln(out)
	fmt.Fprintln(out, string(content))
	fmt.Fprintln(out, rule)
	return nil
}
