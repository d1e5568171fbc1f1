package css

import (
	"strings"
)

// newSelector builds a Selector and derives the attributes the
// selector-discipline rules need: the specificity tuple, the number of
// compound parts, and what kinds of simple selectors appear.
func newSelector(text string, span Span) *Selector {
	sel := &Selector{Text: text, span: span}
	analyzeSelector(sel)
	return sel
}

// pseudo-elements count as type selectors for specificity; the single
// colon forms are the legacy CSS2 spellings.
var pseudoElements = map[string]bool{
	"before":       true,
	"after":        true,
	"first-line":   true,
	"first-letter": true,
	"selection":    true,
	"placeholder":  true,
	"backdrop":     true,
	"marker":       true,
}

func analyzeSelector(sel *Selector) {
	parts := splitCompounds(sel.Text)
	sel.CompoundSize = len(parts)
	for _, part := range parts {
		analyzeCompound(sel, part)
	}
}

// splitCompounds splits a selector on combinators (space, >, +, ~)
// into its compound parts. Bracket and paren contents are opaque.
func splitCompounds(text string) []string {
	var parts []string
	var cur strings.Builder
	depth := 0
	flush := func() {
		if cur.Len() > 0 {
			parts = append(parts, cur.String())
			cur.Reset()
		}
	}
	for _, ch := range text {
		switch {
		case ch == '[' || ch == '(':
			depth++
			cur.WriteRune(ch)
		case ch == ']' || ch == ')':
			depth--
			cur.WriteRune(ch)
		case depth == 0 && (ch == ' ' || ch == '>' || ch == '+' || ch == '~'):
			flush()
		default:
			cur.WriteRune(ch)
		}
	}
	flush()
	return parts
}

// analyzeCompound walks one compound part and tallies its simple
// selectors into the specificity tuple and the derived flags.
func analyzeCompound(sel *Selector, part string) {
	runes := []rune(part)
	i := 0
	for i < len(runes) {
		switch ch := runes[i]; {
		case ch == '#':
			name, n := readName(runes[i+1:])
			sel.Specificity.IDs++
			sel.HasID = true
			_ = name
			i += 1 + n
		case ch == '.':
			name, n := readName(runes[i+1:])
			sel.Specificity.Classes++
			sel.Classes = append(sel.Classes, name)
			i += 1 + n
		case ch == '[':
			depth := 1
			j := i + 1
			for j < len(runes) && depth > 0 {
				if runes[j] == '[' {
					depth++
				} else if runes[j] == ']' {
					depth--
				}
				j++
			}
			sel.Specificity.Classes++
			sel.HasAttribute = true
			i = j
		case ch == ':':
			double := i+1 < len(runes) && runes[i+1] == ':'
			start := i + 1
			if double {
				start++
			}
			name, n := readName(runes[start:])
			lower := strings.ToLower(name)
			switch {
			case lower == "not", lower == "is", lower == "where":
				// functional pseudo-class; the argument is counted
				// through its own compound split, keep this simple
				sel.Specificity.Classes++
			case double || pseudoElements[lower]:
				sel.Specificity.Types++
			default:
				sel.Specificity.Classes++
			}
			i = start + n
			// skip a functional argument
			if i < len(runes) && runes[i] == '(' {
				depth := 1
				i++
				for i < len(runes) && depth > 0 {
					if runes[i] == '(' {
						depth++
					} else if runes[i] == ')' {
						depth--
					}
					i++
				}
			}
		case ch == '*' || ch == '&':
			i++
		default:
			name, n := readName(runes[i:])
			if n == 0 {
				i++
				continue
			}
			_ = name
			sel.Specificity.Types++
			sel.HasType = true
			i += n
		}
	}
}

// readName reads an identifier prefix and returns it with its length.
func readName(runes []rune) (string, int) {
	i := 0
	for i < len(runes) && (isNameChar(runes[i]) || runes[i] == '\\') {
		if runes[i] == '\\' && i+1 < len(runes) {
			i++
		}
		i++
	}
	return string(runes[:i]), i
}

// IsQualified reports whether the selector's final compound combines a
// type selector with a class or ID (e.g. "ul.nav"), the pattern the
// qualified-selector rule flags.
func (s *Selector) IsQualified() bool {
	parts := splitCompounds(s.Text)
	for _, part := range parts {
		if len(part) == 0 {
			continue
		}
		first := rune(part[0])
		if first != '.' && first != '#' && first != ':' && first != '[' && first != '*' && first != '&' {
			if strings.ContainsAny(part, ".#") {
				return true
			}
		}
	}
	return false
}

// IDNames returns the names of the bare ID selectors in the selector.
func (s *Selector) IDNames() []string {
	var ids []string
	runes := []rune(s.Text)
	for i := 0; i < len(runes); i++ {
		if runes[i] == '#' {
			name, n := readName(runes[i+1:])
			if n > 0 {
				ids = append(ids, name)
			}
			i += n
		}
	}
	return ids
}
