package lints

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cssverse/csslin/internal/types"
)

func TestDetectDeepNesting(t *testing.T) {
	t.Parallel()
	flat := "@media screen {\n    .a {\n        color: red;\n    }\n}"
	nested := "@media screen {\n    @supports (display: grid) {\n        .a {\n            color: red;\n        }\n    }\n}"

	tests := []struct {
		name     string
		src      string
		maxDepth int
		expected int
	}{
		{"media with ruleset under limit", flat, 3, 0},
		{"media with nested supports under limit", nested, 3, 0},
		{"media with nested supports over limit", nested, 2, 1},
		{"flat ruleset never nests", ".a {\n    color: red;\n}", 1, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := parseDoc(t, tt.src)
			issues, err := DetectDeepNesting(doc, tt.maxDepth, types.SeverityWarning)
			require.NoError(t, err)
			assert.Len(t, issues, tt.expected)
		})
	}
}

func TestDetectDeepNestingMessage(t *testing.T) {
	t.Parallel()
	doc := parseDoc(t, "@media screen {\n    @media print {\n        .a {\n            color: red;\n        }\n    }\n}")
	issues, err := DetectDeepNesting(doc, 2, types.SeverityWarning)
	require.NoError(t, err)
	require.Len(t, issues, 1)
	assert.Contains(t, issues[0].Message, "@media nests 3 levels deep")
	assert.Equal(t, 1, issues[0].Start.Line)
}
