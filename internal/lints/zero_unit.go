package lints

import (
	"fmt"
	"strings"

	"github.com/cssverse/csslin/internal/css"
	"github.com/cssverse/csslin/internal/types"
)

var lengthUnits = map[string]bool{
	"px": true, "em": true, "rem": true, "ex": true, "ch": true,
	"vw": true, "vh": true, "vmin": true, "vmax": true,
	"cm": true, "mm": true, "in": true, "pt": true, "pc": true, "q": true,
}

// DetectZeroUnit flags values like "0px" on properties where a bare 0
// is spec-legal; the unit is superfluous.
func DetectZeroUnit(doc *css.Document, severity types.Severity) ([]types.Issue, error) {
	var issues []types.Issue
	if doc.Stylesheet == nil {
		return nil, nil
	}
	for _, rs := range doc.Stylesheet.Rulesets() {
		for _, d := range rs.Declarations {
			if !css.IsLengthProperty(d.Property) {
				continue
			}
			for _, part := range d.Parts {
				unit, ok := zeroWithUnit(part.Text)
				if !ok {
					continue
				}
				issues = append(issues, types.Issue{
					Rule:       "zero-unit",
					Filename:   doc.Filename,
					Message:    fmt.Sprintf("unit %q is superfluous on zero value", unit),
					Suggestion: "0",
					Start:      part.Span.Start,
					End:        part.Span.End,
					Severity:   severity,
				})
			}
		}
	}
	return issues, nil
}

// zeroWithUnit reports whether a value token is a zero length carrying
// a unit, e.g. "0px" or "0.0em".
func zeroWithUnit(text string) (string, bool) {
	rest := strings.TrimPrefix(text, "-")
	i := 0
	digits := false
	for i < len(rest) && (rest[i] >= '0' && rest[i] <= '9' || rest[i] == '.') {
		if rest[i] != '.' {
			if rest[i] != '0' {
				return "", false
			}
			digits = true
		}
		i++
	}
	if !digits || i == len(rest) {
		return "", false
	}
	unit := strings.ToLower(rest[i:])
	if !lengthUnits[unit] {
		return "", false
	}
	return unit, true
}
