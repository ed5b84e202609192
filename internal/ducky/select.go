package ducky

import (
	"os"
	"strings"
)

// Model tiers per provider for ducky sessions. These are the session
// defaults; the task-based selector in internal/models serves the
// research workflow.
var modelTiers = map[string]map[string]string{
	"openai": {
		"default":  "gpt-4o",
		"advanced": "gpt-4-turbo",
		"fast":     "gpt-3.5-turbo",
	},
	"anthropic": {
		"default":  "claude-3-haiku-20240307",
		"advanced": "claude-3-7-sonnet-20250219",
		"fast":     "claude-3-haiku-20240307",
	},
}

var complexityTier = map[Complexity]string{
	ComplexitySimple:  "fast",
	ComplexityMedium:  "default",
	ComplexityComplex: "advanced",
}

// SelectModel resolves the provider and model for a session.
//
// Provider "auto" prefers OpenAI when OPENAI_API_KEY is set, then
// Anthropic, then defaults to OpenAI. An explicit model name that is not
// a tier keyword is used as-is; otherwise the complexity picks the tier.
// When both model and complexity are left on auto/medium, complexity is
// estimated from the session content.
func SelectModel(provider, model, complexity, problem, code string) (string, string) {
	provider = strings.ToLower(provider)
	model = strings.ToLower(model)
	c := Complexity(strings.ToLower(complexity))

	if c == ComplexityMedium && model == "auto" {
		c = EstimateComplexity(problem, code)
	}

	if provider == "auto" {
		switch {
		case os.Getenv("OPENAI_API_KEY") != "":
			provider = "openai"
		case os.Getenv("ANTHROPIC_API_KEY") != "":
			provider = "anthropic"
		default:
			provider = "openai"
		}
	}

	tier := ""
	switch model {
	case "auto":
		// Resolved from complexity below.
	case "default", "advanced", "fast":
		tier = model
	default:
		return provider, model
	}

	if tier == "" {
		var ok bool
		tier, ok = complexityTier[c]
		if !ok {
			tier = "default"
		}
	}
	tiers, ok := modelTiers[provider]
	if !ok {
		tiers = modelTiers["openai"]
	}
	return provider, tiers[tier]
}
