// SPDX-License-Identifier: MIT

package commands

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/subcreation/clauducky/cmd/clauducky/internal/clierr"
	"github.com/subcreation/clauducky/internal/logs"
)

const defaultHistoryLines = 10

// NewLogsCommand returns the `clauducky logs` command. The single
// positional mode argument selects what to do with the captured console
// log; summary is the default.
func NewLogsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "logs [summary|errors|events|history [n]|diff [a b]|clear|rotate|prune]",
		Short: "Analyze and manage captured console logs",
		Long:  "Reads the captured console log under the installation's logs/ directory and produces summaries, filters, and snapshot diffs.",
		Args:  cobra.MaximumNArgs(3),
		RunE:  runLogs,
	}

	cmd.Flags().String("dir", "", "Override the logs directory")
	cmd.Flags().String("format", "text", "Output format for summary: text (default) or json")
	cmd.Flags().Int("keep", 0, "History files to retain when pruning (0 uses the configured default)")
	cmd.Flags().Bool("all", false, "Prune every history file")

	return cmd
}

func runLogs(cmd *cobra.Command, args []string) error {
	e, err := setup(cmd)
	if err != nil {
		return err
	}

	logsCfg := e.cfg.Logs
	if dir, _ := cmd.Flags().GetString("dir"); dir != "" {
		logsCfg.Dir = dir
	}

	mode := "summary"
	if len(args) > 0 {
		mode = args[0]
	}

	out := cmd.OutOrStdout()

	switch mode {
	case "summary":
		snap, err := logs.ReadSnapshot(e.log, logsCfg.CurrentPath())
		if err != nil {
			return clierr.Wrap(1, "reading log", err)
		}
		sum := logs.Summarize(snap)

		format, _ := cmd.Flags().GetString("format")
		switch format {
		case "json":
			data, err := json.MarshalIndent(sum, "", "  ")
			if err != nil {
				return fmt.Errorf("marshaling summary: %w", err)
			}
			fmt.Fprintln(out, string(data))
		case "text":
			fmt.Fprintf(out, "Total lines:        %d\n", sum.Total)
			fmt.Fprintf(out, "Errors:             %d\n", sum.Error)
			fmt.Fprintf(out, "Warnings:           %d\n", sum.Warn)
			fmt.Fprintf(out, "Info:               %d\n", sum.Info)
			fmt.Fprintf(out, "Log:                %d\n", sum.Log)
			fmt.Fprintf(out, "Debug:              %d\n", sum.Debug)
			fmt.Fprintf(out, "Events:             %d\n", sum.Events)
			fmt.Fprintf(out, "Errors or warnings: %d\n", sum.ErrorsOrWarnings)
		default:
			return fmt.Errorf("invalid format: %s (must be 'text' or 'json')", format)
		}
		return nil

	case "errors":
		snap, err := logs.ReadSnapshot(e.log, logsCfg.CurrentPath())
		if err != nil {
			return clierr.Wrap(1, "reading log", err)
		}
		printEntries(cmd, logs.FilterByLevel(snap, logs.LevelError, logs.LevelWarn))
		return nil

	case "events":
		snap, err := logs.ReadSnapshot(e.log, logsCfg.CurrentPath())
		if err != nil {
			return clierr.Wrap(1, "reading log", err)
		}
		printEntries(cmd, logs.FilterEvents(snap))
		return nil

	case "history":
		n := defaultHistoryLines
		if len(args) > 1 {
			parsed, err := strconv.Atoi(args[1])
			if err != nil || parsed < 0 {
				return fmt.Errorf("invalid history count: %s", args[1])
			}
			n = parsed
		}
		snap, err := logs.ReadSnapshot(e.log, logsCfg.CurrentPath())
		if err != nil {
			return clierr.Wrap(1, "reading log", err)
		}
		printEntries(cmd, logs.TailNonBlank(snap, n))
		return nil

	case "diff":
		pathA, pathB := logsCfg.CurrentPath(), logsCfg.PreviousPath()
		labelA, labelB := "current", "previous"
		if len(args) == 3 {
			pathA, pathB = args[1], args[2]
			labelA, labelB = pathA, pathB
		} else if len(args) == 2 {
			return fmt.Errorf("diff needs either no paths or two")
		}

		snapA, err := logs.ReadSnapshot(e.log, pathA)
		if err != nil {
			return clierr.Wrap(1, "reading log", err)
		}
		snapB, err := logs.ReadSnapshot(e.log, pathB)
		if err != nil {
			return clierr.Wrap(1, "reading log", err)
		}
		fmt.Fprint(out, logs.FormatDiff(logs.Diff(snapA, snapB), labelA, labelB))
		return nil

	case "clear":
		if err := logs.Clear(logsCfg.CurrentPath()); err != nil {
			return clierr.Wrap(1, "clearing log", err)
		}
		fmt.Fprintln(out, "Log cleared.")
		return nil

	case "rotate":
		if err := logs.Rotate(logsCfg.CurrentPath(), logsCfg.PreviousPath()); err != nil {
			return clierr.Wrap(1, "rotating log", err)
		}
		if err := logs.Clear(logsCfg.CurrentPath()); err != nil {
			return clierr.Wrap(1, "clearing log after rotate", err)
		}
		fmt.Fprintln(out, "Log rotated; current log is now empty.")
		return nil

	case "prune":
		keep, _ := cmd.Flags().GetInt("keep")
		if keep == 0 {
			keep = logsCfg.KeepHistory
		}
		if all, _ := cmd.Flags().GetBool("all"); all {
			keep = 0
		}
		res, err := logs.PruneHistory(logsCfg.HistoryPath(), keep, "console_log_*")
		if err != nil {
			return clierr.Wrap(1, "pruning history", err)
		}
		if res.DirMissing {
			fmt.Fprintln(out, "No history directory; nothing to prune.")
		} else {
			fmt.Fprintf(out, "Deleted %d history file(s).\n", res.Deleted)
		}
		return nil

	default:
		return fmt.Errorf("unknown mode: %s", mode)
	}
}

func printEntries(cmd *cobra.Command, entries []logs.Entry) {
	out := cmd.OutOrStdout()
	if len(entries) == 0 {
		fmt.Fprintln(out, "(no matching lines)")
		return
	}
	for _, e := range entries {
		fmt.Fprintln(out, e.Raw)
	}
}
