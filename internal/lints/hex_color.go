package lints

import (
	"fmt"
	"strings"

	"github.com/cssverse/csslin/internal/css"
	"github.com/cssverse/csslin/internal/types"
)

// DetectHexColorStyle flags hex colors written with uppercase digits
// and 6-digit colors whose channel pairs would shorten to 3 digits.
func DetectHexColorStyle(doc *css.Document, severity types.Severity) ([]types.Issue, error) {
	var issues []types.Issue
	if doc.Stylesheet == nil {
		return nil, nil
	}
	for _, rs := range doc.Stylesheet.Rulesets() {
		for _, d := range rs.Declarations {
			for _, part := range d.Parts {
				issues = append(issues, checkHexPart(doc, part, severity)...)
			}
		}
	}
	return issues, nil
}

func checkHexPart(doc *css.Document, part css.ValuePart, severity types.Severity) []types.Issue {
	if !strings.HasPrefix(part.Text, "#") {
		return nil
	}
	hex := part.Text[1:]
	if !isHexDigits(hex) {
		return nil
	}
	switch len(hex) {
	case 3, 4, 6, 8:
	default:
		return nil
	}

	var issues []types.Issue
	if hex != strings.ToLower(hex) {
		issues = append(issues, types.Issue{
			Rule:       "hex-color",
			Filename:   doc.Filename,
			Message:    fmt.Sprintf("hex color %s must be lowercase", part.Text),
			Suggestion: strings.ToLower(part.Text),
			Start:      part.Span.Start,
			End:        part.Span.End,
			Severity:   severity,
		})
	}
	if len(hex) == 6 && hex[0] == hex[1] && hex[2] == hex[3] && hex[4] == hex[5] {
		short := strings.ToLower("#" + string(hex[0]) + string(hex[2]) + string(hex[4]))
		issues = append(issues, types.Issue{
			Rule:       "hex-color",
			Filename:   doc.Filename,
			Message:    fmt.Sprintf("hex color %s can be shortened to %s", part.Text, short),
			Suggestion: short,
			Start:      part.Span.Start,
			End:        part.Span.End,
			Severity:   severity,
		})
	}
	return issues
}

func isHexDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, ch := range s {
		switch {
		case ch >= '0' && ch <= '9':
		case ch >= 'a' && ch <= 'f':
		case ch >= 'A' && ch <= 'F':
		default:
			return false
		}
	}
	return true
}
