package lints

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cssverse/csslin/internal/types"
)

func TestDetectBracePlacement(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name     string
		src      string
		expected int
		message  string
	}{
		{
			name:     "conforming ruleset",
			src:      ".a {\n    color: red;\n}",
			expected: 0,
		},
		{
			name:     "no space before opening brace",
			src:      ".a{\n    color: red;\n}",
			expected: 1,
			message:  "exactly one space",
		},
		{
			name:     "two spaces before opening brace",
			src:      ".a  {\n    color: red;\n}",
			expected: 1,
			message:  "exactly one space",
		},
		{
			name:     "opening brace on its own line",
			src:      ".a\n{\n    color: red;\n}",
			expected: 1,
			message:  "same line as the final selector",
		},
		{
			name:     "closing brace not alone",
			src:      ".a { color: red; }",
			expected: 1,
			message:  "alone on its line",
		},
		{
			name:     "closing brace misaligned",
			src:      ".a {\n    color: red;\n  }",
			expected: 1,
			message:  "expected column 1",
		},
		{
			name:     "multi selector list",
			src:      ".a,\n.b {\n    color: red;\n}",
			expected: 0,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := parseDoc(t, tt.src)
			issues, err := DetectBracePlacement(doc, types.SeverityError)
			require.NoError(t, err)
			require.Len(t, issues, tt.expected)
			if tt.message != "" {
				assert.Contains(t, issues[0].Message, tt.message)
			}
		})
	}
}

func TestDetectDeclarationSeparation(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name     string
		src      string
		expected int
		message  string
	}{
		{
			name:     "conforming block",
			src:      ".a {\n    color: red;\n    margin: 0;\n}",
			expected: 0,
		},
		{
			name:     "missing final semicolon",
			src:      ".a {\n    color: red;\n    margin: 0\n}",
			expected: 1,
			message:  "missing its terminating semicolon",
		},
		{
			name:     "two declarations on one line",
			src:      ".a {\n    color: red; margin: 0;\n}",
			expected: 1,
			message:  "more than one declaration on a line",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := parseDoc(t, tt.src)
			issues, err := DetectDeclarationSeparation(doc, types.SeverityError)
			require.NoError(t, err)
			require.Len(t, issues, tt.expected)
			if tt.message != "" {
				assert.Contains(t, issues[0].Message, tt.message)
			}
		})
	}
}
