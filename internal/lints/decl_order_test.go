package lints

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cssverse/csslin/internal/types"
)

func TestDetectDeclarationOrder(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name     string
		src      string
		expected int
	}{
		{
			name:     "conforming order",
			src:      ".a {\n    position: absolute;\n    display: block;\n    color: red;\n    background: blue;\n    cursor: pointer;\n}",
			expected: 0,
		},
		{
			name:     "same category repeated",
			src:      ".a {\n    color: red;\n    color: blue;\n}",
			expected: 0,
		},
		{
			name:     "positioning after typography",
			src:      ".a {\n    color: red;\n    position: absolute;\n}",
			expected: 1,
		},
		{
			name:     "every offender pairs against the highest rank",
			src:      ".a {\n    color: red;\n    position: absolute;\n    display: block;\n}",
			expected: 2,
		},
		{
			name:     "blocks are independent",
			src:      ".a {\n    color: red;\n}\n\n.b {\n    position: absolute;\n}",
			expected: 0,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := parseDoc(t, tt.src)
			issues, err := DetectDeclarationOrder(doc, false, types.SeverityError)
			require.NoError(t, err)
			assert.Len(t, issues, tt.expected)
		})
	}
}

func TestDetectDeclarationOrderPosition(t *testing.T) {
	t.Parallel()
	doc := parseDoc(t, ".a {\n    color: red;\n    position: absolute;\n}")
	issues, err := DetectDeclarationOrder(doc, false, types.SeverityError)
	require.NoError(t, err)
	require.Len(t, issues, 1)
	// the issue points at the out-of-place declaration, not its predecessor
	assert.Equal(t, 3, issues[0].Start.Line)
	assert.Equal(t, 5, issues[0].Start.Column)
	assert.Contains(t, issues[0].Message, `"position"`)
	assert.Contains(t, issues[0].Message, "line 2")
}

func TestDetectDeclarationOrderOncePerRuleset(t *testing.T) {
	t.Parallel()
	doc := parseDoc(t, ".a {\n    color: red;\n    position: absolute;\n    display: block;\n}")
	issues, err := DetectDeclarationOrder(doc, true, types.SeverityError)
	require.NoError(t, err)
	assert.Len(t, issues, 1)
}
