package lints

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cssverse/csslin/internal/types"
)

func TestDetectZeroUnit(t *testing.T) {
	t.Parallel()
	tests := []struct {
		declaration string
		expected    int
	}{
		{"margin: 0px", 1},
		{"margin: 0", 0},
		{"margin: 10px", 0},
		{"padding: 0 0px", 1},
		{"padding: 0px 0em", 2},
		{"width: 0.0rem", 1},
		{"top: -0px", 1},
		{"opacity: 0", 0},
		{"transition: width 0s", 0}, // seconds are not length units
		{"z-index: 0", 0},
	}
	for _, tt := range tests {
		t.Run(tt.declaration, func(t *testing.T) {
			doc := parseDoc(t, fmt.Sprintf(".a {\n    %s;\n}", tt.declaration))
			issues, err := DetectZeroUnit(doc, types.SeverityWarning)
			require.NoError(t, err)
			assert.Len(t, issues, tt.expected)
		})
	}
}

func TestDetectZeroUnitSuggestion(t *testing.T) {
	t.Parallel()
	doc := parseDoc(t, ".a {\n    margin: 0px;\n}")
	issues, err := DetectZeroUnit(doc, types.SeverityWarning)
	require.NoError(t, err)
	require.Len(t, issues, 1)
	assert.Equal(t, "0", issues[0].Suggestion)
	assert.Contains(t, issues[0].Message, `"px"`)
}
