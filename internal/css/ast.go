package css

import (
	"strings"

	"github.com/cssverse/csslin/internal/types"
)

// Span is the source range covered by a node, inclusive on both ends.
type Span struct {
	Start types.Position
	End   types.Position
}

// Node is implemented by every element of the stylesheet tree.
type Node interface {
	Span() Span
}

// Document is one parsed stylesheet file. It is immutable once returned
// by Parse; rules only ever read from it.
type Document struct {
	Filename string
	Source   string

	// Lines holds the raw source split on newlines, for the
	// line-oriented whitespace rules that do not need a parse.
	Lines []string

	Stylesheet *Stylesheet

	// Errors collects recoverable parse errors. The tree is still a
	// best-effort representation of everything that did parse.
	Errors []ParseError

	// EncodingValid is false when the raw bytes were not valid UTF-8
	// and the text was recovered with a fallback decode. Content-based
	// rules skip such documents; line-based rules still run.
	EncodingValid bool
}

// ParseError is a recoverable syntax error found while parsing.
type ParseError struct {
	Message string
	Pos     types.Position
}

// Stylesheet is the root of the node tree.
type Stylesheet struct {
	Nodes []Node
	span  Span
}

func (s *Stylesheet) Span() Span { return s.span }

// Rulesets returns every ruleset in the tree, including those nested
// inside at-rules, in source order. Traversal is iterative; deeply
// nested Less/Sass input must not grow the call stack.
func (s *Stylesheet) Rulesets() []*Ruleset {
	var out []*Ruleset
	stack := make([]Node, len(s.Nodes))
	for i := range s.Nodes {
		// reverse so the stack pops in source order
		stack[len(s.Nodes)-1-i] = s.Nodes[i]
	}
	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		switch v := n.(type) {
		case *Ruleset:
			out = append(out, v)
		case *AtRule:
			for i := len(v.Children) - 1; i >= 0; i-- {
				stack = append(stack, v.Children[i])
			}
		}
	}
	return out
}

// Comments returns every comment in the tree in source order,
// including comments inside rulesets and at-rule blocks.
func (s *Stylesheet) Comments() []*Comment {
	var out []*Comment
	stack := make([]Node, len(s.Nodes))
	for i := range s.Nodes {
		stack[len(s.Nodes)-1-i] = s.Nodes[i]
	}
	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		switch v := n.(type) {
		case *Comment:
			out = append(out, v)
		case *Ruleset:
			out = append(out, v.Comments...)
		case *AtRule:
			for i := len(v.Children) - 1; i >= 0; i-- {
				stack = append(stack, v.Children[i])
			}
		}
	}
	return out
}

// Ruleset is a selector list plus its declaration block.
type Ruleset struct {
	Selectors    []*Selector
	Declarations []*Declaration
	Comments     []*Comment

	// LBrace and RBrace are the exact positions of the braces, kept
	// for the brace-placement checks.
	LBrace types.Position
	RBrace types.Position

	span Span
}

func (r *Ruleset) Span() Span { return r.span }

// AtRule is an at-rule such as @media or @supports. When it has a
// block, Children holds the nested rulesets and at-rules (a recursive
// tree) and Declarations holds any directly contained declarations
// (e.g. @font-face).
type AtRule struct {
	Name         string
	Params       string
	Children     []Node
	Declarations []*Declaration

	span Span
}

func (a *AtRule) Span() Span { return a.span }

// Depth returns the maximum nesting depth of at-rules and rulesets
// under (and including) this at-rule.
func (a *AtRule) Depth() int {
	type frame struct {
		node  Node
		depth int
	}
	max := 1
	stack := []frame{{a, 1}}
	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if f.depth > max {
			max = f.depth
		}
		if at, ok := f.node.(*AtRule); ok {
			for _, c := range at.Children {
				stack = append(stack, frame{c, f.depth + 1})
			}
		}
	}
	return max
}

// Selector is a single selector from a ruleset's selector list, with
// the attributes derived for the selector-discipline rules.
type Selector struct {
	// Text is the selector source with runs of whitespace collapsed
	// to single spaces.
	Text string

	Specificity  Specificity
	CompoundSize int  // number of compound parts (combinator-separated)
	HasID        bool // contains a bare #id selector
	HasType      bool // contains a bare element type selector
	HasAttribute bool // contains an [attr] selector
	Classes      []string

	span Span
}

func (s *Selector) Span() Span { return s.span }

// Specificity is the (ID, class/attribute/pseudo-class, type) tuple.
type Specificity struct {
	IDs     int
	Classes int
	Types   int
}

// ValuePart is one token of a declaration value with its exact source
// range, so value-level rules can point at the precise offender.
type ValuePart struct {
	Text string
	Span Span
}

// Declaration is one property:value pair inside a ruleset.
type Declaration struct {
	Property  string
	Value     string
	Parts     []ValuePart
	Important bool

	// Terminated is false when the declaration was not closed with a
	// semicolon (relevant for the last declaration of a block).
	Terminated bool

	Category Category

	span Span
}

func (d *Declaration) Span() Span { return d.span }

// Comment is a /* ... */ comment. Text excludes the delimiters.
type Comment struct {
	Text string
	span Span
}

func (c *Comment) Span() Span { return c.span }

// Trimmed returns the comment text with surrounding whitespace removed.
func (c *Comment) Trimmed() string { return strings.TrimSpace(c.Text) }
