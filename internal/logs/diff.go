package logs

import (
	"fmt"
	"strings"
)

// PreviewLimit caps how many unique lines per side FormatDiff prints.
// The computed sets themselves are never truncated.
const PreviewLimit = 20

// DiffResult holds the lines unique to each snapshot, each side in its
// own original order.
type DiffResult struct {
	UniqueToA []string
	UniqueToB []string
}

// Empty reports whether the two snapshots had identical line sets.
func (d DiffResult) Empty() bool {
	return len(d.UniqueToA) == 0 && len(d.UniqueToB) == 0
}

// Diff computes, for each snapshot, the non-blank lines that do not
// appear verbatim anywhere in the other snapshot. This is set
// membership, not a positional diff: a line present once in A and twice
// in B is not unique to A. Diff(S, S) yields two empty sides, and
// swapping the arguments swaps the two outputs exactly.
func Diff(a, b Snapshot) DiffResult {
	inA := lineSet(a)
	inB := lineSet(b)

	var res DiffResult
	seenA := make(map[string]bool)
	for _, line := range a.NonBlank() {
		if !inB[line] && !seenA[line] {
			seenA[line] = true
			res.UniqueToA = append(res.UniqueToA, line)
		}
	}
	seenB := make(map[string]bool)
	for _, line := range b.NonBlank() {
		if !inA[line] && !seenB[line] {
			seenB[line] = true
			res.UniqueToB = append(res.UniqueToB, line)
		}
	}
	return res
}

func lineSet(s Snapshot) map[string]bool {
	set := make(map[string]bool)
	for _, line := range s.NonBlank() {
		set[line] = true
	}
	return set
}

// FormatDiff renders a diff for display, previewing at most PreviewLimit
// lines per side with a remainder count.
func FormatDiff(d DiffResult, labelA, labelB string) string {
	var b strings.Builder
	if d.Empty() {
		b.WriteString("No differences.\n")
		return b.String()
	}
	writeSide(&b, labelA, d.UniqueToA)
	writeSide(&b, labelB, d.UniqueToB)
	return b.String()
}

func writeSide(b *strings.Builder, label string, lines []string) {
	fmt.Fprintf(b, "Only in %s (%d lines):\n", label, len(lines))
	for i, line := range lines {
		if i == PreviewLimit {
			fmt.Fprintf(b, "  ... and %d more\n", len(lines)-PreviewLimit)
			break
		}
		fmt.Fprintf(b, "  %s\n", line)
	}
	b.WriteString("\n")
}
