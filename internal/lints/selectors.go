package lints

import (
	"fmt"
	"strings"

	"github.com/cssverse/csslin/internal/css"
	"github.com/cssverse/csslin/internal/types"
)

// DetectIDSelector flags selectors containing a bare ID selector and
// suggests the attribute-equality form of equivalent effect.
func DetectIDSelector(doc *css.Document, severity types.Severity) ([]types.Issue, error) {
	var issues []types.Issue
	if doc.Stylesheet == nil {
		return nil, nil
	}
	for _, rs := range doc.Stylesheet.Rulesets() {
		for _, sel := range rs.Selectors {
			if !sel.HasID {
				continue
			}
			ids := sel.IDNames()
			suggestion := ""
			if len(ids) > 0 {
				suggestion = fmt.Sprintf("[id=%q]", ids[0])
			}
			issues = append(issues, types.Issue{
				Rule:       "id-selector",
				Filename:   doc.Filename,
				Message:    fmt.Sprintf("avoid ID selectors in %q", sel.Text),
				Suggestion: suggestion,
				Note:       "an attribute-equality selector keeps specificity manageable",
				Start:      sel.Span().Start,
				End:        sel.Span().End,
				Severity:   severity,
			})
		}
	}
	return issues, nil
}

// DetectQualifiedSelector flags compounds that qualify a class or ID
// with a type selector (e.g. "ul.nav") unless the compound is on the
// configured allow list.
func DetectQualifiedSelector(doc *css.Document, allow []string, severity types.Severity) ([]types.Issue, error) {
	allowed := make(map[string]bool, len(allow))
	for _, a := range allow {
		allowed[strings.TrimSpace(a)] = true
	}

	var issues []types.Issue
	if doc.Stylesheet == nil {
		return nil, nil
	}
	for _, rs := range doc.Stylesheet.Rulesets() {
		for _, sel := range rs.Selectors {
			for _, compound := range qualifiedCompounds(sel) {
				if allowed[compound] {
					continue
				}
				issues = append(issues, types.Issue{
					Rule:       "qualified-selector",
					Filename:   doc.Filename,
					Message:    fmt.Sprintf("selector %q qualifies a class with a type selector", compound),
					Suggestion: strings.TrimLeft(compound, "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789_-"),
					Start:      sel.Span().Start,
					End:        sel.Span().End,
					Severity:   severity,
				})
			}
		}
	}
	return issues, nil
}

// qualifiedCompounds returns the compound parts of a selector that
// combine a type selector with a class or ID.
func qualifiedCompounds(sel *css.Selector) []string {
	var out []string
	for _, part := range strings.FieldsFunc(sel.Text, func(r rune) bool {
		return r == ' ' || r == '>' || r == '+' || r == '~'
	}) {
		if part == "" {
			continue
		}
		first := part[0]
		if first == '.' || first == '#' || first == ':' || first == '[' || first == '*' || first == '&' {
			continue
		}
		if strings.ContainsAny(part, ".#") {
			out = append(out, part)
		}
	}
	return out
}
