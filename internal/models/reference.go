// Package models selects a language model for a task from a YAML model
// reference file.
package models

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed model_reference.yaml
var defaultReference []byte

// Profile describes one model's operational characteristics.
type Profile struct {
	ResponseTime string `yaml:"response_time"`
	CostProfile  string `yaml:"cost_profile"`
}

// Reference is the parsed model reference file.
type Reference struct {
	// Providers maps provider -> model name -> profile.
	Providers map[string]map[string]Profile `yaml:"providers"`
	// RecommendedMappings maps task -> provider -> model name.
	RecommendedMappings map[string]map[string]string `yaml:"recommended_mappings"`
}

// LoadReference parses the reference file at path. An empty path loads
// the embedded default reference.
func LoadReference(path string) (*Reference, error) {
	data := defaultReference
	if path != "" {
		var err error
		data, err = os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading model reference: %w", err)
		}
	}

	var ref Reference
	if err := yaml.Unmarshal(data, &ref); err != nil {
		return nil, fmt.Errorf("parsing model reference: %w", err)
	}
	return &ref, nil
}
