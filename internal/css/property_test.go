package css

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCategoryOf(t *testing.T) {
	t.Parallel()
	tests := []struct {
		property string
		want     Category
	}{
		{"position", CategoryPositioning},
		{"z-index", CategoryPositioning},
		{"display", CategoryBoxModel},
		{"margin-top", CategoryBoxModel},
		{"font-size", CategoryTypography},
		{"color", CategoryVisual},
		{"background-color", CategoryVisual},
		{"border-radius", CategoryVisual},
		{"-webkit-box-shadow", CategoryVisual},
		{"cursor", CategoryMisc},
		{"--custom-prop", CategoryMisc},
	}
	for _, tt := range tests {
		t.Run(tt.property, func(t *testing.T) {
			assert.Equal(t, tt.want, CategoryOf(tt.property))
		})
	}
}

func TestIsLengthProperty(t *testing.T) {
	t.Parallel()
	assert.True(t, IsLengthProperty("margin"))
	assert.True(t, IsLengthProperty("padding-left"))
	assert.False(t, IsLengthProperty("opacity"))
	assert.False(t, IsLengthProperty("transition"))
}
