package lints

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cssverse/csslin/internal/css"
	"github.com/cssverse/csslin/internal/types"
)

func TestDetectImportant(t *testing.T) {
	t.Parallel()
	doc := parseDoc(t, ".a {\n    color: red !important;\n    margin: 0;\n}")
	issues, err := DetectImportant(doc, nil, types.SeverityError)
	require.NoError(t, err)
	require.Len(t, issues, 1)
	assert.Equal(t, "important", issues[0].Rule)
	assert.Contains(t, issues[0].Message, `"color"`)
	assert.Equal(t, 2, issues[0].Start.Line)
}

func TestDetectImportantAllowedFiles(t *testing.T) {
	t.Parallel()
	src := ".u-hidden {\n    display: none !important;\n}"
	allow := []string{"utilities.css", "overrides-*.css"}

	tests := []struct {
		filename string
		expected int
	}{
		{"utilities.css", 0},
		{"src/utilities.css", 0}, // pattern matches the base name
		{"overrides-print.css", 0},
		{"main.css", 1},
	}
	for _, tt := range tests {
		t.Run(tt.filename, func(t *testing.T) {
			doc := css.Parse(tt.filename, src)
			issues, err := DetectImportant(doc, allow, types.SeverityError)
			require.NoError(t, err)
			assert.Len(t, issues, tt.expected)
		})
	}
}
