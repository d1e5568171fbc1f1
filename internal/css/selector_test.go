package css

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSelectorSpecificity(t *testing.T) {
	t.Parallel()
	tests := []struct {
		selector string
		want     Specificity
	}{
		{"ul", Specificity{Types: 1}},
		{".nav", Specificity{Classes: 1}},
		{"#header", Specificity{IDs: 1}},
		{"ul li.item", Specificity{Classes: 1, Types: 2}},
		{"a:hover", Specificity{Classes: 1, Types: 1}},
		{"p::before", Specificity{Types: 2}},
		{"input[type=\"text\"]", Specificity{Classes: 1, Types: 1}},
		{"#nav .item > a", Specificity{IDs: 1, Classes: 1, Types: 1}},
		{".a.b.c", Specificity{Classes: 3}},
	}
	for _, tt := range tests {
		t.Run(tt.selector, func(t *testing.T) {
			sel := newSelector(tt.selector, Span{})
			assert.Equal(t, tt.want, sel.Specificity)
		})
	}
}

func TestSelectorDerivedAttributes(t *testing.T) {
	t.Parallel()
	tests := []struct {
		selector  string
		compounds int
		hasID     bool
		hasType   bool
		hasAttr   bool
		classes   []string
	}{
		{".nav", 1, false, false, false, []string{"nav"}},
		{"ul.nav li", 2, false, true, false, []string{"nav"}},
		{"#widget", 1, true, false, false, nil},
		{"[data-state]", 1, false, false, true, nil},
		{".menu.is-open", 1, false, false, false, []string{"menu", "is-open"}},
	}
	for _, tt := range tests {
		t.Run(tt.selector, func(t *testing.T) {
			sel := newSelector(tt.selector, Span{})
			assert.Equal(t, tt.compounds, sel.CompoundSize)
			assert.Equal(t, tt.hasID, sel.HasID)
			assert.Equal(t, tt.hasType, sel.HasType)
			assert.Equal(t, tt.hasAttr, sel.HasAttribute)
			assert.Equal(t, tt.classes, sel.Classes)
		})
	}
}

func TestSelectorIsQualified(t *testing.T) {
	t.Parallel()
	tests := []struct {
		selector string
		want     bool
	}{
		{"ul.nav", true},
		{"div#main", true},
		{".nav", false},
		{"ul .nav", false},
		{"ul li", false},
		{"a:hover", false},
	}
	for _, tt := range tests {
		t.Run(tt.selector, func(t *testing.T) {
			sel := newSelector(tt.selector, Span{})
			assert.Equal(t, tt.want, sel.IsQualified())
		})
	}
}

func TestSelectorIDNames(t *testing.T) {
	t.Parallel()
	sel := newSelector("#header .nav #logo", Span{})
	assert.Equal(t, []string{"header", "logo"}, sel.IDNames())
}
