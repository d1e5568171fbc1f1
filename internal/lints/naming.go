package lints

import (
	"fmt"
	"strings"

	"github.com/cssverse/csslin/internal/css"
	"github.com/cssverse/csslin/internal/types"
)

// NamingOptions configures the naming-convention rule.
type NamingOptions struct {
	// RootModuleAllowHyphen permits hyphens in root module names.
	RootModuleAllowHyphen bool

	// RootModuleExceptions lists hyphenated class names accepted as
	// root modules despite the single-word rule.
	RootModuleExceptions []string
}

// DetectNamingConvention checks class names against the module naming
// tiers: a root module is a single hyphen-free word; sub-modules and
// modifiers extend a root with hyphenated suffixes; js-* classes are
// behavior hooks and must carry no styling; is-* state classes must be
// chained with a non-state class, never used alone.
func DetectNamingConvention(doc *css.Document, opts NamingOptions, severity types.Severity) ([]types.Issue, error) {
	if doc.Stylesheet == nil {
		return nil, nil
	}

	exceptions := make(map[string]bool, len(opts.RootModuleExceptions))
	for _, e := range opts.RootModuleExceptions {
		exceptions[strings.TrimSpace(e)] = true
	}

	rulesets := doc.Stylesheet.Rulesets()
	roots := knownRootModules(rulesets)

	var issues []types.Issue
	for _, rs := range rulesets {
		for _, sel := range rs.Selectors {
			for _, class := range sel.Classes {
				switch {
				case strings.HasPrefix(class, "js-"):
					if len(rs.Declarations) == 0 {
						continue
					}
					issues = append(issues, types.Issue{
						Rule:     "naming-convention",
						Filename: doc.Filename,
						Message:  fmt.Sprintf("js-prefixed class %q must not be styled", "."+class),
						Note:     "js-* classes are JavaScript hooks; bind styles to a separate class",
						Start:    sel.Span().Start,
						End:      sel.Span().End,
						Severity: severity,
					})
				case strings.HasPrefix(class, "is-"):
					if !soleStateSelector(sel, class) {
						continue
					}
					issues = append(issues, types.Issue{
						Rule:       "naming-convention",
						Filename:   doc.Filename,
						Message:    fmt.Sprintf("state class %q used as a sole selector", "."+class),
						Suggestion: fmt.Sprintf(".module.%s", class),
						Note:       "is-* classes describe state and must be chained with the class they modify",
						Start:      sel.Span().Start,
						End:        sel.Span().End,
						Severity:   severity,
					})
				case strings.Contains(class, "-"):
					if opts.RootModuleAllowHyphen || exceptions[class] {
						continue
					}
					root := class[:strings.Index(class, "-")]
					if roots[root] {
						continue
					}
					issues = append(issues, types.Issue{
						Rule:     "naming-convention",
						Filename: doc.Filename,
						Message:  fmt.Sprintf("class %q has no root module %q", "."+class, "."+root),
						Note:     "root modules are single words; hyphenated names must extend a defined root module",
						Start:    sel.Span().Start,
						End:      sel.Span().End,
						Severity: severity,
					})
				}
			}
		}
	}
	return issues, nil
}

// knownRootModules collects every hyphen-free class defined anywhere
// in the document; hyphenated sub-module and modifier names are valid
// only when they extend one of these.
func knownRootModules(rulesets []*css.Ruleset) map[string]bool {
	roots := make(map[string]bool)
	for _, rs := range rulesets {
		for _, sel := range rs.Selectors {
			for _, class := range sel.Classes {
				if !strings.Contains(class, "-") {
					roots[class] = true
				}
			}
		}
	}
	return roots
}

// soleStateSelector reports whether the selector consists of nothing
// but the given state class.
func soleStateSelector(sel *css.Selector, class string) bool {
	if sel.HasID || sel.HasType || sel.HasAttribute {
		return false
	}
	if sel.CompoundSize != 1 {
		return false
	}
	return len(sel.Classes) == 1 && sel.Classes[0] == class &&
		sel.Specificity == (css.Specificity{Classes: 1})
}
