package lints

import (
	"fmt"

	"github.com/cssverse/csslin/internal/css"
	"github.com/cssverse/csslin/internal/types"
)

// DetectDeepNesting flags at-rules whose nesting depth exceeds the
// configured maximum. Depth is measured on the tree, so Less/Sass
// media-query nesting is counted structurally, not textually.
func DetectDeepNesting(doc *css.Document, maxDepth int, severity types.Severity) ([]types.Issue, error) {
	var issues []types.Issue
	if doc.Stylesheet == nil {
		return nil, nil
	}
	for _, node := range doc.Stylesheet.Nodes {
		at, ok := node.(*css.AtRule)
		if !ok {
			continue
		}
		depth := at.Depth()
		if depth <= maxDepth {
			continue
		}
		issues = append(issues, types.Issue{
			Rule:     "max-nesting-depth",
			Filename: doc.Filename,
			Message:  fmt.Sprintf("@%s nests %d levels deep, limit is %d", at.Name, depth, maxDepth),
			Start:    at.Span().Start,
			End:      at.Span().Start,
			Severity: severity,
		})
	}
	return issues, nil
}
