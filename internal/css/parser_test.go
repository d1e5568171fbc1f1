package css

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseBasicRuleset(t *testing.T) {
	t.Parallel()
	src := `.widget {
    position: relative;
    color: #fff;
}`
	doc := Parse("test.css", src)
	require.Empty(t, doc.Errors)
	require.Len(t, doc.Stylesheet.Nodes, 1)

	rs, ok := doc.Stylesheet.Nodes[0].(*Ruleset)
	require.True(t, ok)

	require.Len(t, rs.Selectors, 1)
	assert.Equal(t, ".widget", rs.Selectors[0].Text)
	assert.Equal(t, 1, rs.Selectors[0].Span().Start.Line)
	assert.Equal(t, 1, rs.Selectors[0].Span().Start.Column)
	assert.Equal(t, 7, rs.Selectors[0].Span().End.Column)

	assert.Equal(t, 1, rs.LBrace.Line)
	assert.Equal(t, 9, rs.LBrace.Column)
	assert.Equal(t, 4, rs.RBrace.Line)
	assert.Equal(t, 1, rs.RBrace.Column)

	require.Len(t, rs.Declarations, 2)
	first := rs.Declarations[0]
	assert.Equal(t, "position", first.Property)
	assert.Equal(t, "relative", first.Value)
	assert.True(t, first.Terminated)
	assert.Equal(t, CategoryPositioning, first.Category)
	assert.Equal(t, 2, first.Span().Start.Line)
	assert.Equal(t, 5, first.Span().Start.Column)

	second := rs.Declarations[1]
	assert.Equal(t, "color", second.Property)
	assert.Equal(t, "#fff", second.Value)
	require.Len(t, second.Parts, 1)
	assert.Equal(t, "#fff", second.Parts[0].Text)
	assert.Equal(t, 3, second.Parts[0].Span.Start.Line)
	assert.Equal(t, 12, second.Parts[0].Span.Start.Column)
}

func TestParseSelectorList(t *testing.T) {
	t.Parallel()
	doc := Parse("test.css", ".a, .b > .c {\n    color: red;\n}")
	require.Empty(t, doc.Errors)
	rs := doc.Stylesheet.Nodes[0].(*Ruleset)
	require.Len(t, rs.Selectors, 2)
	assert.Equal(t, ".a", rs.Selectors[0].Text)
	assert.Equal(t, ".b > .c", rs.Selectors[1].Text)
}

func TestParseImportantAndMissingSemicolon(t *testing.T) {
	t.Parallel()
	doc := Parse("test.css", ".a {\n    color: red !important;\n    display: block\n}")
	require.Empty(t, doc.Errors)
	rs := doc.Stylesheet.Nodes[0].(*Ruleset)
	require.Len(t, rs.Declarations, 2)
	assert.True(t, rs.Declarations[0].Important)
	assert.Equal(t, "red", rs.Declarations[0].Value)
	assert.True(t, rs.Declarations[0].Terminated)
	assert.False(t, rs.Declarations[1].Terminated)
}

func TestParseNestedAtRule(t *testing.T) {
	t.Parallel()
	src := `@media screen {
    @media (min-width: 600px) {
        .nav {
            color: red;
        }
    }
}`
	doc := Parse("test.less", src)
	require.Empty(t, doc.Errors)
	require.Len(t, doc.Stylesheet.Nodes, 1)

	outer, ok := doc.Stylesheet.Nodes[0].(*AtRule)
	require.True(t, ok)
	assert.Equal(t, "media", outer.Name)
	assert.Equal(t, "screen", outer.Params)
	require.Len(t, outer.Children, 1)

	inner, ok := outer.Children[0].(*AtRule)
	require.True(t, ok)
	assert.Equal(t, "(min-width: 600px)", inner.Params)

	assert.Equal(t, 3, outer.Depth())
	rulesets := doc.Stylesheet.Rulesets()
	require.Len(t, rulesets, 1)
	assert.Equal(t, ".nav", rulesets[0].Selectors[0].Text)
}

func TestParseAtRuleWithDeclarations(t *testing.T) {
	t.Parallel()
	doc := Parse("test.css", "@font-face {\n    font-family: \"Icons\";\n    src: url(\"icons.woff\");\n}")
	require.Empty(t, doc.Errors)
	at := doc.Stylesheet.Nodes[0].(*AtRule)
	assert.Equal(t, "font-face", at.Name)
	require.Len(t, at.Declarations, 2)
	assert.Equal(t, "font-family", at.Declarations[0].Property)
}

func TestParseComments(t *testing.T) {
	t.Parallel()
	doc := Parse("test.css", "/* header */\n.a {\n    /* inner */\n    color: red;\n}")
	require.Empty(t, doc.Errors)
	comments := doc.Stylesheet.Comments()
	require.Len(t, comments, 2)
	assert.Equal(t, "header", comments[0].Trimmed())
	assert.Equal(t, "inner", comments[1].Trimmed())
	assert.Equal(t, 3, comments[1].Span().Start.Line)
}

func TestParseRecoversFromMalformedInput(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		src  string
	}{
		{"unclosed block", ".a { color: red;"},
		{"stray closing brace", "} .a { color: red; }"},
		{"missing colon", ".a { color red; display: block; }"},
		{"garbage", "@@ ??? {{{{"},
		{"unterminated string", ".a { content: \"oops\n}"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := Parse("bad.css", tt.src)
			require.NotNil(t, doc.Stylesheet)
			assert.NotEmpty(t, doc.Errors)
		})
	}
}

func TestParsePartialTreeAfterError(t *testing.T) {
	t.Parallel()
	doc := Parse("bad.css", ".a { color red; display: block; }")
	require.Len(t, doc.Stylesheet.Nodes, 1)
	rs := doc.Stylesheet.Nodes[0].(*Ruleset)
	// the malformed declaration is dropped, the rest survives
	require.Len(t, rs.Declarations, 1)
	assert.Equal(t, "display", rs.Declarations[0].Property)
}

func TestParseIsDeterministic(t *testing.T) {
	t.Parallel()
	src := "/* c */\n@media screen {\n    .a, .b {\n        color: #ABC;\n    }\n}\n.c {\n    margin: 0;\n}"
	a := Parse("x.css", src)
	b := Parse("x.css", src)
	assert.True(t, reflect.DeepEqual(a, b))
}

func TestParseBytesEncodingFallback(t *testing.T) {
	t.Parallel()
	valid := []byte(".a {\n    color: red;\n}")
	doc := ParseBytes("ok.css", valid)
	assert.True(t, doc.EncodingValid)

	invalid := []byte(".a {\n    color: r\xffd;\n}")
	doc = ParseBytes("bad.css", invalid)
	assert.False(t, doc.EncodingValid)
	// line structure survives the fallback decode
	assert.Len(t, doc.Lines, 3)
}

func TestStringEscapes(t *testing.T) {
	t.Parallel()
	doc := Parse("test.css", `.a {
    content: "say \"hi\"";
}`)
	require.Empty(t, doc.Errors)
	rs := doc.Stylesheet.Nodes[0].(*Ruleset)
	require.Len(t, rs.Declarations, 1)
	assert.Equal(t, `"say \"hi\""`, rs.Declarations[0].Value)
}
