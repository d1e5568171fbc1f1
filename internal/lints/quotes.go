package lints

import (
	"strings"

	"github.com/cssverse/csslin/internal/css"
	"github.com/cssverse/csslin/internal/types"
)

// DetectQuoteStyle flags single-quoted strings in declaration values
// and in attribute selectors; the guide requires double quotes.
func DetectQuoteStyle(doc *css.Document, severity types.Severity) ([]types.Issue, error) {
	var issues []types.Issue
	if doc.Stylesheet == nil {
		return nil, nil
	}
	for _, rs := range doc.Stylesheet.Rulesets() {
		for _, d := range rs.Declarations {
			for _, part := range d.Parts {
				if !strings.HasPrefix(part.Text, "'") {
					continue
				}
				issues = append(issues, types.Issue{
					Rule:       "quote-style",
					Filename:   doc.Filename,
					Message:    "string values must use double quotes",
					Suggestion: rewriteQuotes(part.Text),
					Start:      part.Span.Start,
					End:        part.Span.End,
					Severity:   severity,
				})
			}
		}
		for _, sel := range rs.Selectors {
			if !sel.HasAttribute || !strings.Contains(sel.Text, "'") {
				continue
			}
			start, end := singleQuotePos(doc, sel)
			issues = append(issues, types.Issue{
				Rule:     "quote-style",
				Filename: doc.Filename,
				Message:  "attribute selector values must use double quotes",
				Start:    start,
				End:      end,
				Severity: severity,
			})
		}
	}
	return issues, nil
}

func rewriteQuotes(lit string) string {
	inner := strings.TrimSuffix(strings.TrimPrefix(lit, "'"), "'")
	return `"` + strings.ReplaceAll(inner, `\'`, "'") + `"`
}

// singleQuotePos locates the first single quote inside the selector's
// source range so the issue points at the quote itself.
func singleQuotePos(doc *css.Document, sel *css.Selector) (types.Position, types.Position) {
	span := sel.Span()
	for line := span.Start.Line; line <= span.End.Line && line-1 < len(doc.Lines); line++ {
		text := doc.Lines[line-1]
		if idx := strings.IndexByte(text, '\''); idx >= 0 {
			pos := types.Position{Line: line, Column: runeColumn(text, idx)}
			return pos, pos
		}
	}
	return span.Start, span.Start
}
