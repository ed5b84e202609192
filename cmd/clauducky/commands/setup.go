package commands

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/subcreation/clauducky/internal/config"
	"github.com/subcreation/clauducky/internal/logging"
	"github.com/subcreation/clauducky/internal/projectroot"
)

// env bundles what every subcommand needs: the installation root, its
// configuration, and a diagnostic logger.
type env struct {
	root string
	cfg  *config.Config
	log  *logrus.Logger
}

func setup(cmd *cobra.Command) (*env, error) {
	root, err := projectroot.Find(".")
	if err != nil {
		return nil, fmt.Errorf("finding project root: %w", err)
	}

	if err := config.LoadEnvFile(root); err != nil {
		return nil, err
	}

	cfg, err := config.Load(root)
	if err != nil {
		return nil, err
	}

	level := cfg.Logging.Level
	if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
		level = "debug"
	}

	log, err := logging.New(level, cfg.Logging.Format, os.Stderr)
	if err != nil {
		return nil, fmt.Errorf("configuring logging: %w", err)
	}

	return &env{root: root, cfg: cfg, log: log}, nil
}
