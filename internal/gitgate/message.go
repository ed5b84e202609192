package gitgate

import (
	"os"
	"strings"
)

// Attribution lines appended to commit messages. Each is governed by its
// own environment toggle; setting the variable to "false" suppresses the
// line, anything else (including unset) includes it.
const (
	EnvClauduckyAttribution = "CLAUDUCKY_ATTRIBUTION"
	EnvAgentAttribution     = "CLAUDE_ATTRIBUTION"

	clauduckyAttribution = "🦆 Powered by [Clauducky](https://github.com/subcreation/clauducky)"
	agentAttribution     = "🤖 Generated with [Claude Code](https://claude.ai/code)"
	agentCoAuthor        = "Co-Authored-By: Claude <noreply@anthropic.com>"
)

// BuildMessage formats the full commit message: optional [TAG] and
// [VERIFIED] prefixes, then the attribution block. Prefix order matches
// the original tooling: the tag ends up outermost.
func BuildMessage(message string, verified bool, tag string) string {
	full := strings.TrimSpace(message)

	if verified {
		full = "[VERIFIED] " + full
	}
	if tag != "" {
		full = "[" + tag + "] " + full
	}

	includeClauducky := attributionEnabled(EnvClauduckyAttribution)
	includeAgent := attributionEnabled(EnvAgentAttribution)

	var attributions []string
	if includeClauducky {
		attributions = append(attributions, clauduckyAttribution)
	}
	if includeAgent {
		attributions = append(attributions, agentAttribution)
	}

	if len(attributions) > 0 {
		full += "\n\n" + strings.Join(attributions, " ")
		if includeAgent {
			full += "\n\n" + agentCoAuthor
		}
	}
	return full
}

func attributionEnabled(envVar string) bool {
	return strings.ToLower(os.Getenv(envVar)) != "false"
}
