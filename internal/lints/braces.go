package lints

import (
	"fmt"
	"strings"

	"github.com/cssverse/csslin/internal/css"
	"github.com/cssverse/csslin/internal/types"
)

// DetectBracePlacement checks ruleset brace formatting: the opening
// brace sits on the final selector's line, preceded by exactly one
// space; the closing brace sits alone on its line, at the column of the
// first selector's first character.
func DetectBracePlacement(doc *css.Document, severity types.Severity) ([]types.Issue, error) {
	var issues []types.Issue
	if doc.Stylesheet == nil {
		return nil, nil
	}
	for _, rs := range doc.Stylesheet.Rulesets() {
		if len(rs.Selectors) == 0 || rs.LBrace.Line == 0 {
			continue
		}
		issues = append(issues, checkOpenBrace(doc, rs, severity)...)
		issues = append(issues, checkCloseBrace(doc, rs, severity)...)
	}
	return issues, nil
}

func checkOpenBrace(doc *css.Document, rs *css.Ruleset, severity types.Severity) []types.Issue {
	last := rs.Selectors[len(rs.Selectors)-1]
	selEnd := last.Span().End

	if rs.LBrace.Line != selEnd.Line {
		return []types.Issue{{
			Rule:       "brace-placement",
			Filename:   doc.Filename,
			Message:    "opening brace must be on the same line as the final selector",
			Suggestion: fmt.Sprintf("%s {", last.Text),
			Start:      rs.LBrace,
			End:        rs.LBrace,
			Severity:   severity,
		}}
	}
	if rs.LBrace.Column != selEnd.Column+2 || hasTabBeforeBrace(doc, rs.LBrace) {
		return []types.Issue{{
			Rule:     "brace-placement",
			Filename: doc.Filename,
			Message:  "opening brace must be preceded by exactly one space",
			Start:    rs.LBrace,
			End:      rs.LBrace,
			Severity: severity,
		}}
	}
	return nil
}

func checkCloseBrace(doc *css.Document, rs *css.Ruleset, severity types.Severity) []types.Issue {
	if rs.RBrace.Line == 0 {
		return nil
	}
	first := rs.Selectors[0]
	wantColumn := first.Span().Start.Column

	if rs.RBrace.Line-1 < len(doc.Lines) {
		line := doc.Lines[rs.RBrace.Line-1]
		if strings.TrimSpace(line) != "}" {
			return []types.Issue{{
				Rule:     "brace-placement",
				Filename: doc.Filename,
				Message:  "closing brace must be alone on its line",
				Start:    rs.RBrace,
				End:      rs.RBrace,
				Severity: severity,
			}}
		}
	}
	if rs.RBrace.Column != wantColumn {
		return []types.Issue{{
			Rule:     "brace-placement",
			Filename: doc.Filename,
			Message: fmt.Sprintf("closing brace at column %d, expected column %d to align with the first selector",
				rs.RBrace.Column, wantColumn),
			Start:    rs.RBrace,
			End:      rs.RBrace,
			Severity: severity,
		}}
	}
	return nil
}

func hasTabBeforeBrace(doc *css.Document, brace types.Position) bool {
	if brace.Line-1 >= len(doc.Lines) {
		return false
	}
	runes := []rune(doc.Lines[brace.Line-1])
	idx := brace.Column - 2 // rune before the brace
	return idx >= 0 && idx < len(runes) && runes[idx] == '\t'
}

// DetectDeclarationSeparation enforces one semicolon-terminated
// declaration per line, including the last declaration of a block.
func DetectDeclarationSeparation(doc *css.Document, severity types.Severity) ([]types.Issue, error) {
	var issues []types.Issue
	if doc.Stylesheet == nil {
		return nil, nil
	}
	for _, rs := range doc.Stylesheet.Rulesets() {
		var prev *css.Declaration
		for _, d := range rs.Declarations {
			if !d.Terminated {
				issues = append(issues, types.Issue{
					Rule:       "declaration-separation",
					Filename:   doc.Filename,
					Message:    fmt.Sprintf("declaration %q is missing its terminating semicolon", d.Property),
					Suggestion: fmt.Sprintf("%s: %s;", d.Property, d.Value),
					Start:      d.Span().End,
					End:        d.Span().End,
					Severity:   severity,
				})
			}
			if prev != nil && prev.Span().End.Line == d.Span().Start.Line {
				issues = append(issues, types.Issue{
					Rule:     "declaration-separation",
					Filename: doc.Filename,
					Message:  "more than one declaration on a line",
					Start:    d.Span().Start,
					End:      d.Span().End,
					Severity: severity,
				})
			}
			prev = d
		}
	}
	return issues, nil
}
