package lints

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cssverse/csslin/internal/types"
)

func TestDetectHexColorStyle(t *testing.T) {
	t.Parallel()
	tests := []struct {
		value    string
		expected int
	}{
		{"#FFFFFF", 2}, // uppercase and shortenable
		{"#AABBCC", 2},
		{"#aabbcc", 1}, // shortenable only
		{"#FFF", 1},    // uppercase only
		{"#abcdef", 0},
		{"#fff", 0},
		{"#aabbccdd", 0}, // 8-digit colors are never shortened
	}
	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			doc := parseDoc(t, fmt.Sprintf(".a {\n    color: %s;\n}", tt.value))
			issues, err := DetectHexColorStyle(doc, types.SeverityWarning)
			require.NoError(t, err)
			assert.Len(t, issues, tt.expected)
		})
	}
}

func TestDetectHexColorStyleSuggestions(t *testing.T) {
	t.Parallel()
	doc := parseDoc(t, ".a {\n    color: #FFAA00;\n}")
	issues, err := DetectHexColorStyle(doc, types.SeverityWarning)
	require.NoError(t, err)
	require.Len(t, issues, 1)
	assert.Equal(t, "#ffaa00", issues[0].Suggestion)
	assert.Equal(t, 2, issues[0].Start.Line)
	assert.Equal(t, 12, issues[0].Start.Column)
}

func TestDetectHexColorStyleIgnoresNonColors(t *testing.T) {
	t.Parallel()
	doc := parseDoc(t, ".a {\n    content: \"#ABC\";\n    background: url(#GG);\n}")
	issues, err := DetectHexColorStyle(doc, types.SeverityWarning)
	require.NoError(t, err)
	assert.Empty(t, issues)
}
