package lints

import (
	"fmt"

	"github.com/cssverse/csslin/internal/css"
	"github.com/cssverse/csslin/internal/types"
)

// DetectDeclarationOrder checks that declaration categories within a
// ruleset are non-decreasing in rank (Positioning, Box-model,
// Typography, Visual, Misc). By default every offending pair is
// reported; oncePerRuleset reduces that to the first pair per block.
func DetectDeclarationOrder(doc *css.Document, oncePerRuleset bool, severity types.Severity) ([]types.Issue, error) {
	var issues []types.Issue
	if doc.Stylesheet == nil {
		return nil, nil
	}
	for _, rs := range doc.Stylesheet.Rulesets() {
		var prev *css.Declaration
		for _, d := range rs.Declarations {
			if prev != nil && d.Category < prev.Category {
				issues = append(issues, types.Issue{
					Rule:     "declaration-order",
					Filename: doc.Filename,
					Message: fmt.Sprintf("%s declaration %q must come before %s declaration %q (line %d)",
						d.Category, d.Property, prev.Category, prev.Property, prev.Span().Start.Line),
					Note: fmt.Sprintf("expected category order: Positioning, Box-model, Typography, Visual, Misc; %q is at %s",
						prev.Property, prev.Span().Start),
					Start:    d.Span().Start,
					End:      d.Span().End,
					Severity: severity,
				})
				if oncePerRuleset {
					break
				}
				// keep prev so every out-of-order declaration pairs
				// against the highest rank seen so far
				continue
			}
			prev = d
		}
	}
	return issues, nil
}
