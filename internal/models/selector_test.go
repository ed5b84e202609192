package models

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadEmbeddedReference(t *testing.T) {
	ref, err := LoadReference("")
	require.NoError(t, err)

	assert.Contains(t, ref.Providers, "openai")
	assert.Contains(t, ref.Providers, "anthropic")
	assert.Contains(t, ref.RecommendedMappings, "standard_research")
}

func TestLoadReferenceFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ref.yaml")
	content := `
providers:
  openai:
    tiny-model:
      response_time: fast
      cost_profile: low
recommended_mappings:
  standard_research:
    openai: tiny-model
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	ref, err := LoadReference(path)
	require.NoError(t, err)
	assert.Equal(t, "fast", ref.Providers["openai"]["tiny-model"].ResponseTime)
}

func TestSelect(t *testing.T) {
	ref, err := LoadReference("")
	require.NoError(t, err)

	tests := []struct {
		name     string
		task     string
		provider string
		criteria string
		expected string
	}{
		{name: "direct mapping", task: "complex_research", provider: "openai", criteria: "balanced", expected: "gpt-4-turbo"},
		{name: "direct mapping anthropic", task: "complex_research", provider: "anthropic", criteria: "balanced", expected: "claude-3-7-sonnet-20250219"},
		{name: "unknown task by speed", task: "mystery", provider: "openai", criteria: CriteriaSpeed, expected: "gpt-3.5-turbo"},
		{name: "unknown task by cost", task: "mystery", provider: "openai", criteria: CriteriaCost, expected: "gpt-3.5-turbo"},
		{name: "unknown task by quality", task: "mystery", provider: "openai", criteria: CriteriaQuality, expected: "gpt-4-turbo"},
		{name: "unknown task balanced falls back to standard", task: "mystery", provider: "openai", criteria: CriteriaBalanced, expected: "gpt-4o"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ref.Select(tt.task, tt.provider, tt.criteria)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestSelectUnknownProvider(t *testing.T) {
	ref, err := LoadReference("")
	require.NoError(t, err)

	_, err = ref.Select("standard_research", "acme", CriteriaBalanced)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "acme")
}
