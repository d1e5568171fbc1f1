package lints

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cssverse/csslin/internal/types"
)

func TestDetectIndentation(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name     string
		src      string
		expected int
	}{
		{
			name:     "clean four space indent",
			src:      ".a {\n    color: red;\n}",
			expected: 0,
		},
		{
			name:     "three space indent",
			src:      ".a {\n   color: red;\n}",
			expected: 1,
		},
		{
			name:     "tab in indent",
			src:      ".a {\n\tcolor: red;\n}",
			expected: 1,
		},
		{
			name:     "eight spaces is fine",
			src:      "@media screen {\n    .a {\n        color: red;\n    }\n}",
			expected: 0,
		},
		{
			name:     "comment continuation is skipped",
			src:      "/*\n * block comment\n */\n.a {\n    color: red;\n}",
			expected: 0,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := parseDoc(t, tt.src)
			issues, err := DetectIndentation(doc, 4, types.SeverityError)
			require.NoError(t, err)
			assert.Len(t, issues, tt.expected)
		})
	}
}

func TestDetectIndentationTabPosition(t *testing.T) {
	t.Parallel()
	doc := parseDoc(t, ".a {\n  \tcolor: red;\n}")
	issues, err := DetectIndentation(doc, 4, types.SeverityError)
	require.NoError(t, err)
	require.Len(t, issues, 1)
	assert.Equal(t, 2, issues[0].Start.Line)
	assert.Equal(t, 3, issues[0].Start.Column)
	assert.Contains(t, issues[0].Message, "tab")
}

func TestDetectTrailingWhitespace(t *testing.T) {
	t.Parallel()
	doc := parseDoc(t, ".a {\n    color: red; \n}")
	issues, err := DetectTrailingWhitespace(doc, types.SeverityError)
	require.NoError(t, err)
	require.Len(t, issues, 1)
	assert.Equal(t, "trailing-whitespace", issues[0].Rule)
	assert.Equal(t, 2, issues[0].Start.Line)
	// the trailing space sits right after "    color: red;"
	assert.Equal(t, 16, issues[0].Start.Column)
}

func TestDetectTrailingWhitespaceCleanFile(t *testing.T) {
	t.Parallel()
	doc := parseDoc(t, ".a {\n    color: red;\n}")
	issues, err := DetectTrailingWhitespace(doc, types.SeverityError)
	require.NoError(t, err)
	assert.Empty(t, issues)
}

func TestDetectLongLines(t *testing.T) {
	t.Parallel()
	doc := parseDoc(t, ".a {\n    font-family: \"a very very very long font stack that keeps going and going\";\n}")
	issues, err := DetectLongLines(doc, 40, types.SeverityWarning)
	require.NoError(t, err)
	require.Len(t, issues, 1)
	assert.Equal(t, 2, issues[0].Start.Line)
	assert.Equal(t, 41, issues[0].Start.Column)
}
