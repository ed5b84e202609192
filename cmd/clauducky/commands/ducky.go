// SPDX-License-Identifier: MIT

package commands

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/subcreation/clauducky/internal/ducky"
)

// NewDuckyCommand returns the `clauducky ducky` command: a structured
// rubber-duck debugging session assembler.
func NewDuckyCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ducky [problem]",
		Short: "Assemble a rubber-duck debugging session",
		Long:  "Builds a structured debugging session document from a problem description and supporting evidence, and selects the model that would review it.",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runDucky,
	}

	cmd.Flags().String("template", "", "Path to a filled-out debugging template file")
	cmd.Flags().String("code", "", "Code snippet related to the problem")
	cmd.Flags().String("code-file", "", "Path to a file containing code to include")
	cmd.Flags().String("log", "", "Path to a log file to include")
	cmd.Flags().String("expected", "", "Description of expected behavior")
	cmd.Flags().String("provider", "", "Provider to use (auto, openai, or anthropic)")
	cmd.Flags().String("model", "", "Model to use (auto, a tier keyword, or an explicit name)")
	cmd.Flags().String("complexity", "", "Problem complexity (simple, medium, complex)")
	cmd.Flags().String("save", "", "Save the session document to a file")
	cmd.Flags().String("output", "text", "Output format: text (default) or json")

	cmd.AddCommand(&cobra.Command{
		Use:   "template",
		Short: "Print a blank debugging session template",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprint(cmd.OutOrStdout(), ducky.BlankTemplate())
		},
	})

	return cmd
}

func runDucky(cmd *cobra.Command, args []string) error {
	e, err := setup(cmd)
	if err != nil {
		return err
	}

	template, _ := cmd.Flags().GetString("template")
	problem := ""
	if len(args) == 1 {
		problem = args[0]
	}
	if template == "" && problem == "" {
		return fmt.Errorf("a problem description or --template is required")
	}

	code, _ := cmd.Flags().GetString("code")
	codeFile, _ := cmd.Flags().GetString("code-file")
	logFile, _ := cmd.Flags().GetString("log")
	expected, _ := cmd.Flags().GetString("expected")

	content, err := ducky.Build(ducky.Request{
		Problem:  problem,
		Expected: expected,
		Code:     code,
		CodeFile: codeFile,
		LogFile:  logFile,
		Template: template,
	})
	if err != nil {
		return err
	}

	if save, _ := cmd.Flags().GetString("save"); save != "" {
		path, err := ducky.Save(content, save)
		if err != nil {
			return err
		}
		e.log.WithField("path", path).Info("saved debugging session")
	}

	provider := flagOrDefault(cmd, "provider", e.cfg.Ducky.Provider)
	model := flagOrDefault(cmd, "model", e.cfg.Ducky.Model)
	complexity := flagOrDefault(cmd, "complexity", e.cfg.Ducky.Complexity)

	selectedProvider, selectedModel := ducky.SelectModel(provider, model, complexity, problem, code)

	out := cmd.OutOrStdout()
	format, _ := cmd.Flags().GetString("output")
	switch format {
	case "json":
		payload := map[string]string{
			"content":   content,
			"provider":  selectedProvider,
			"model":     selectedModel,
			"timestamp": time.Now().Format(time.RFC3339),
		}
		data, err := json.MarshalIndent(payload, "", "  ")
		if err != nil {
			return fmt.Errorf("marshaling session: %w", err)
		}
		fmt.Fprintln(out, string(data))
	case "text":
		fmt.Fprintf(out, "--- Ducky Debug Session (%s/%s) ---\n\n", selectedProvider, selectedModel)
		fmt.Fprint(out, content)
	default:
		return fmt.Errorf("invalid output format: %s (must be 'text' or 'json')", format)
	}
	return nil
}

func flagOrDefault(cmd *cobra.Command, name, fallback string) string {
	if v, _ := cmd.Flags().GetString(name); v != "" {
		return v
	}
	return fallback
}
