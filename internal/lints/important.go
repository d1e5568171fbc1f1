package lints

import (
	"fmt"
	"path/filepath"

	"github.com/cssverse/csslin/internal/css"
	"github.com/cssverse/csslin/internal/types"
)

// DetectImportant flags !important declarations outside the configured
// utility/override file patterns. Patterns match the file's base name
// with filepath.Match semantics.
func DetectImportant(doc *css.Document, allowIn []string, severity types.Severity) ([]types.Issue, error) {
	base := filepath.Base(doc.Filename)
	for _, pattern := range allowIn {
		if ok, err := filepath.Match(pattern, base); err == nil && ok {
			return nil, nil
		}
	}

	var issues []types.Issue
	if doc.Stylesheet == nil {
		return nil, nil
	}
	for _, rs := range doc.Stylesheet.Rulesets() {
		for _, d := range rs.Declarations {
			if !d.Important {
				continue
			}
			issues = append(issues, types.Issue{
				Rule:     "important",
				Filename: doc.Filename,
				Message:  fmt.Sprintf("!important on %q", d.Property),
				Note:     "!important belongs in designated utility/override files only",
				Start:    d.Span().Start,
				End:      d.Span().End,
				Severity: severity,
			})
		}
	}
	return issues, nil
}
