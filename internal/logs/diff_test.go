package logs

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDiff(t *testing.T) {
	tests := []struct {
		name      string
		a         []string
		b         []string
		uniqueToA []string
		uniqueToB []string
	}{
		{
			name:      "disjoint tails",
			a:         []string{"a", "b", "c"},
			b:         []string{"b", "c", "d"},
			uniqueToA: []string{"a"},
			uniqueToB: []string{"d"},
		},
		{
			name: "equal snapshots",
			a:    []string{"x", "y"},
			b:    []string{"x", "y"},
		},
		{
			name:      "duplicates are set membership not counts",
			a:         []string{"once"},
			b:         []string{"once", "once", "extra"},
			uniqueToB: []string{"extra"},
		},
		{
			name:      "blank lines excluded",
			a:         []string{"", "a", "  "},
			b:         []string{""},
			uniqueToA: []string{"a"},
		},
		{
			name:      "order preserved per side",
			a:         []string{"z", "shared", "a"},
			b:         []string{"shared", "m", "k"},
			uniqueToA: []string{"z", "a"},
			uniqueToB: []string{"m", "k"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Diff(FromLines(tt.a), FromLines(tt.b))
			assert.Equal(t, tt.uniqueToA, got.UniqueToA)
			assert.Equal(t, tt.uniqueToB, got.UniqueToB)
		})
	}
}

func TestDiffSelfIsEmpty(t *testing.T) {
	snap := FromLines([]string{"a", "", "b", "c"})
	got := Diff(snap, snap)
	assert.True(t, got.Empty())
}

func TestDiffAntisymmetric(t *testing.T) {
	a := FromLines([]string{"a", "b", "c", ""})
	b := FromLines([]string{"b", "d", "e"})

	forward := Diff(a, b)
	backward := Diff(b, a)

	assert.Equal(t, forward.UniqueToA, backward.UniqueToB)
	assert.Equal(t, forward.UniqueToB, backward.UniqueToA)
}

func TestFormatDiffPreviewCap(t *testing.T) {
	var lines []string
	for i := 0; i < PreviewLimit+5; i++ {
		lines = append(lines, fmt.Sprintf("line-%02d", i))
	}
	got := Diff(FromLines(lines), FromLines(nil))
	assert.Len(t, got.UniqueToA, PreviewLimit+5) // underlying set is not truncated

	out := FormatDiff(got, "current", "previous")
	assert.Contains(t, out, "... and 5 more")
	assert.Equal(t, PreviewLimit, strings.Count(out, "  line-"))
}

func TestFormatDiffNoDifferences(t *testing.T) {
	out := FormatDiff(DiffResult{}, "a", "b")
	assert.Contains(t, out, "No differences")
}
