// Package nolint implements csslin's override comments. A comment of
// the form
//
//	/* csslin:disable rule-a,rule-b */
//
// suppresses the named rules on the comment's own line and the line
// below it, so a violation can be acknowledged right where it happens.
// Omitting the rule list suppresses every rule for that scope.
package nolint

import (
	"strings"

	"github.com/cssverse/csslin/internal/css"
)

const disablePrefix = "csslin:disable"

// Manager holds the override scopes parsed from one document.
type Manager struct {
	scopes []scope
}

type scope struct {
	// rules is nil when the comment disables everything
	rules map[string]struct{}
	start int // first suppressed line
	end   int // last suppressed line
}

// ParseComments collects the override comments of a document.
func ParseComments(doc *css.Document) *Manager {
	m := &Manager{}
	if doc.Stylesheet == nil {
		return m
	}
	for _, c := range doc.Stylesheet.Comments() {
		text := c.Trimmed()
		if !strings.HasPrefix(text, disablePrefix) {
			continue
		}
		rest := strings.TrimSpace(strings.TrimPrefix(text, disablePrefix))
		sc := scope{
			start: c.Span().Start.Line,
			end:   c.Span().End.Line + 1,
		}
		if rest != "" {
			sc.rules = make(map[string]struct{})
			for _, name := range strings.Split(rest, ",") {
				name = strings.TrimSpace(name)
				if name != "" {
					sc.rules[name] = struct{}{}
				}
			}
		}
		m.scopes = append(m.scopes, sc)
	}
	return m
}

// IsSuppressed reports whether the rule is disabled at the given line.
func (m *Manager) IsSuppressed(line int, rule string) bool {
	for _, sc := range m.scopes {
		if line < sc.start || line > sc.end {
			continue
		}
		if sc.rules == nil {
			return true
		}
		if _, ok := sc.rules[rule]; ok {
			return true
		}
	}
	return false
}
