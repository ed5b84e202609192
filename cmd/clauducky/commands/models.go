// SPDX-License-Identifier: MIT

package commands

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/subcreation/clauducky/internal/models"
)

// NewModelsCommand returns the `clauducky models` command group.
func NewModelsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "models",
		Short: "Model reference and selection",
	}

	cmd.AddCommand(newModelsSelectCommand())
	return cmd
}

func newModelsSelectCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "select",
		Short: "Select an appropriate model for a task",
		Long:  "Selects a model from the model reference file by task, provider, and criteria, and prints the result as JSON.",
		RunE:  runModelsSelect,
	}

	cmd.Flags().String("task", "standard_research", "Task type (basic_research, standard_research, complex_research, visual_analysis)")
	cmd.Flags().String("provider", "openai", "Provider to use (openai or anthropic)")
	cmd.Flags().String("criteria", "balanced", "Selection criteria (speed, cost, quality, balanced)")

	return cmd
}

func runModelsSelect(cmd *cobra.Command, args []string) error {
	e, err := setup(cmd)
	if err != nil {
		return err
	}

	// An installation-level reference file overrides the embedded one.
	refPath := filepath.Join(e.root, "models", "model_reference.yaml")
	if _, err := os.Stat(refPath); os.IsNotExist(err) {
		refPath = ""
	}

	ref, err := models.LoadReference(refPath)
	if err != nil {
		return err
	}

	task, _ := cmd.Flags().GetString("task")
	provider, _ := cmd.Flags().GetString("provider")
	criteria, _ := cmd.Flags().GetString("criteria")

	model, err := ref.Select(task, provider, criteria)
	if err != nil {
		return err
	}

	data, err := json.Marshal(map[string]string{"model": model, "provider": provider})
	if err != nil {
		return fmt.Errorf("marshaling selection: %w", err)
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(data))
	return nil
}
