// Package config loads Clauducky configuration from clauducky.yaml, a
// .env file, and CLAUDUCKY_* environment variables, in increasing order
// of precedence.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"

	"github.com/subcreation/clauducky/internal/projectroot"
)

// Config holds all configuration for the toolkit.
type Config struct {
	Logs    LogsConfig    `mapstructure:"logs"`
	Git     GitConfig     `mapstructure:"git"`
	Ducky   DuckyConfig   `mapstructure:"ducky"`
	Logging LoggingConfig `mapstructure:"logging"`
}

// LogsConfig controls where the log analyzer reads and writes.
type LogsConfig struct {
	// Dir defaults to <root>/logs; paths below are relative to it.
	Dir         string `mapstructure:"dir"`
	Current     string `mapstructure:"current"`
	Previous    string `mapstructure:"previous"`
	HistoryDir  string `mapstructure:"history_dir"`
	KeepHistory int    `mapstructure:"keep_history"`
}

// GitConfig controls the safe commit gate.
type GitConfig struct {
	RecentCommits int `mapstructure:"recent_commits"`
}

// DuckyConfig carries defaults for the rubber-duck debug assembler.
type DuckyConfig struct {
	Provider   string `mapstructure:"provider"`
	Model      string `mapstructure:"model"`
	Complexity string `mapstructure:"complexity"`
}

// LoggingConfig configures the tool's own diagnostic logging.
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"` // json, text
}

// CurrentPath returns the absolute path of the current log file.
func (c LogsConfig) CurrentPath() string {
	return filepath.Join(c.Dir, c.Current)
}

// PreviousPath returns the absolute path of the previous log snapshot.
func (c LogsConfig) PreviousPath() string {
	return filepath.Join(c.Dir, c.Previous)
}

// HistoryPath returns the absolute path of the history directory.
func (c LogsConfig) HistoryPath() string {
	return filepath.Join(c.Dir, c.HistoryDir)
}

// Load reads configuration for the installation rooted at root.
func Load(root string) (*Config, error) {
	v := viper.New()
	v.SetConfigName("clauducky")
	v.SetConfigType("yaml")
	v.AddConfigPath(root)

	v.SetEnvPrefix("CLAUDUCKY")
	v.AutomaticEnv()

	setDefaults(v, root)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		// No config file is the common case; defaults and env apply.
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	if dir := os.Getenv("CLAUDUCKY_LOG_DIR"); dir != "" {
		cfg.Logs.Dir = dir
	}

	return &cfg, nil
}

func setDefaults(v *viper.Viper, root string) {
	v.SetDefault("logs.dir", projectroot.LogsDir(root))
	v.SetDefault("logs.current", "console_log.txt")
	v.SetDefault("logs.previous", "console_log_previous.txt")
	v.SetDefault("logs.history_dir", "history")
	v.SetDefault("logs.keep_history", 10)

	v.SetDefault("git.recent_commits", 3)

	v.SetDefault("ducky.provider", "auto")
	v.SetDefault("ducky.model", "auto")
	v.SetDefault("ducky.complexity", "medium")

	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "text")
}

// LoadEnvFile reads a .env file at the installation root and exports its
// values into the process environment without overriding variables that
// are already set. Missing files are fine.
func LoadEnvFile(root string) error {
	path := filepath.Join(root, ".env")
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil
	}

	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("env")
	if err := v.ReadInConfig(); err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}

	for _, key := range v.AllKeys() {
		name := toEnvName(key)
		if _, exists := os.LookupEnv(name); exists {
			continue
		}
		if err := os.Setenv(name, v.GetString(key)); err != nil {
			return fmt.Errorf("setting %s: %w", name, err)
		}
	}
	return nil
}

// toEnvName maps viper's lowercased keys back to conventional env names.
func toEnvName(key string) string {
	out := make([]rune, 0, len(key))
	for _, r := range key {
		if r >= 'a' && r <= 'z' {
			r -= 'a' - 'A'
		}
		out = append(out, r)
	}
	return string(out)
}
