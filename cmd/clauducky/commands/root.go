// SPDX-License-Identifier: MIT

/*
Clauducky - developer-workflow tooling for AI coding agents: console-log
analysis, a rubber-duck debugging assembler, and a safer git commit
workflow.
*/

package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// NewRootCmd constructs the clauducky root command.
func NewRootCmd() *cobra.Command {
	version := os.Getenv("CLAUDUCKY_VERSION")
	if version == "" {
		version = "0.0.0-dev"
	}

	cmd := &cobra.Command{
		Use:           "clauducky",
		Short:         "Clauducky - workflow tooling for AI coding agents",
		Long:          "Clauducky provides console-log analysis, rubber-duck debugging sessions, and a review-gated git workflow for AI-assisted development.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().BoolP("verbose", "v", false, "enable verbose output")

	cmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print the version number of Clauducky",
		Run: func(cmd *cobra.Command, args []string) {
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Clauducky version %s\n", version)
		},
	})

	cmd.AddCommand(NewLogsCommand())
	cmd.AddCommand(NewGitCommand())
	cmd.AddCommand(NewDuckyCommand())
	cmd.AddCommand(NewModelsCommand())
	cmd.AddCommand(NewInitCommand())

	return cmd
}
