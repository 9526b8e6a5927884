package palette

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gitlab.com/tozd/go/errors"

	"github.com/walteh/recolor/pkg/text"
)

func TestGreenToBlue(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "hex_and_spaced_rgba",
			input: "background-color: #22c55e; box-shadow: rgba(34, 197, 94, 0.5);",
			want:  "background-color: #3b82f6; box-shadow: rgba(59, 130, 246, 0.5);",
		},
		{
			name:  "compact_hex",
			input: "color:#16a34a",
			want:  "color:#2563eb",
		},
		{
			name:  "unspaced_rgba",
			input: "border-color: rgba(34,197,94,0.2)",
			want:  "border-color: rgba(59,130,246,0.2)",
		},
		{
			name:  "light_and_dark_tints",
			input: "--soft:#bbf7d0;--deep:#022c22;",
			want:  "--soft:#93c5fd;--deep:#0c1e3d;",
		},
		{
			name:  "no_patterns",
			input: "<p style=\"color:#ef4444\">unchanged</p>",
			want:  "<p style=\"color:#ef4444\">unchanged</p>",
		},
		{
			name:  "existing_blue_is_preserved",
			input: "#3b82f6 #22c55e rgba(59, 130, 246, 1)",
			want:  "#3b82f6 #3b82f6 rgba(59, 130, 246, 1)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, _ := text.Replace(tt.input, Default().Rules())
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestGreenToBlueRemovesEveryOldPattern(t *testing.T) {
	rules := Default().Rules()

	var sb strings.Builder
	for _, r := range rules {
		sb.WriteString("x " + r.FromText + ", 0.3) y\n")
	}

	got, counts := text.Replace(sb.String(), rules)
	for i, r := range rules {
		assert.NotContains(t, got, r.FromText, "old value of rule %d should be gone", i)
		assert.Contains(t, got, r.ToText, "new value of rule %d should be present", i)
		assert.Equal(t, 1, counts[i], "rule %d should match once", i)
	}

	again, counts := text.Replace(got, rules)
	assert.Equal(t, got, again, "second run should be a no-op")
	assert.Equal(t, make([]int, len(rules)), counts)
}

func TestGreenToBlueHasNoCascades(t *testing.T) {
	assert.Empty(t, text.FindCascades(Default().Rules()))
	require.NoError(t, text.NewSimpleTextReplacer().ValidateRules(Default().Rules()))

	result, err := text.NewSimpleTextReplacer().ReplaceText(context.Background(), strings.NewReader("#022c22"), Default().Rules())
	require.NoError(t, err)
	assert.Equal(t, "#0c1e3d", string(result.ModifiedContent))
}

func TestRulesReturnsCopy(t *testing.T) {
	rules := Default().Rules()
	rules[0].ToText = "#000000"

	assert.Equal(t, "#3b82f6", Default().Rules()[0].ToText)
	assert.Len(t, Default().Rules(), 6)
}

func TestLookup(t *testing.T) {
	p, err := Lookup(DefaultName)
	require.NoError(t, err)
	assert.Same(t, Default(), p)

	_, err = Lookup("purple-to-orange")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnknownPalette))

	assert.Equal(t, []string{DefaultName}, Names())
}
