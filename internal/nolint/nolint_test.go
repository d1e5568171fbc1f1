package nolint

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/cssverse/csslin/internal/css"
)

func TestParseComments(t *testing.T) {
	t.Parallel()
	src := `.a {
    color: red;
    /* csslin:disable declaration-order */
    position: absolute;
}

/* csslin:disable */
.b {
    color: blue;
}`
	doc := css.Parse("test.css", src)
	m := ParseComments(doc)

	// named scope covers the comment line and the next line
	assert.True(t, m.IsSuppressed(3, "declaration-order"))
	assert.True(t, m.IsSuppressed(4, "declaration-order"))
	assert.False(t, m.IsSuppressed(4, "hex-color"))
	assert.False(t, m.IsSuppressed(5, "declaration-order"))
	assert.False(t, m.IsSuppressed(2, "declaration-order"))

	// bare disable suppresses every rule
	assert.True(t, m.IsSuppressed(7, "hex-color"))
	assert.True(t, m.IsSuppressed(8, "indentation"))
	assert.False(t, m.IsSuppressed(9, "indentation"))
}

func TestParseCommentsRuleList(t *testing.T) {
	t.Parallel()
	doc := css.Parse("test.css", "/* csslin:disable hex-color, zero-unit */\n.a {\n    color: #FFF;\n}")
	m := ParseComments(doc)

	assert.True(t, m.IsSuppressed(1, "hex-color"))
	assert.True(t, m.IsSuppressed(2, "zero-unit"))
	assert.False(t, m.IsSuppressed(2, "quote-style"))
}

func TestParseCommentsIgnoresOrdinaryComments(t *testing.T) {
	t.Parallel()
	doc := css.Parse("test.css", "/* header styles */\n.a {\n    color: red;\n}")
	m := ParseComments(doc)
	assert.False(t, m.IsSuppressed(1, "hex-color"))
	assert.False(t, m.IsSuppressed(2, "hex-color"))
}
