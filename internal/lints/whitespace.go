package lints

import (
	"fmt"
	"strings"

	"github.com/cssverse/csslin/internal/css"
	"github.com/cssverse/csslin/internal/types"
)

// DetectIndentation flags lines whose leading whitespace contains tabs
// or is not an exact multiple of the configured indent width.
func DetectIndentation(doc *css.Document, indentWidth int, severity types.Severity) ([]types.Issue, error) {
	var issues []types.Issue
	for i, line := range doc.Lines {
		if strings.TrimSpace(line) == "" {
			continue
		}
		if isCommentContinuation(line) {
			continue
		}
		indent := leadingWhitespace(line)
		if indent == "" {
			continue
		}
		if idx := strings.IndexByte(indent, '\t'); idx >= 0 {
			start, end := lineSpan(i+1, runeColumn(line, idx))
			issues = append(issues, types.Issue{
				Rule:       "indentation",
				Filename:   doc.Filename,
				Message:    "tab character in indentation",
				Suggestion: fmt.Sprintf("indent with %d spaces per level", indentWidth),
				Start:      start,
				End:        end,
				Severity:   severity,
			})
			continue
		}
		if len(indent)%indentWidth != 0 {
			start, end := lineSpan(i+1, 1)
			issues = append(issues, types.Issue{
				Rule:     "indentation",
				Filename: doc.Filename,
				Message: fmt.Sprintf("indentation of %d spaces is not a multiple of %d",
					len(indent), indentWidth),
				Start:    start,
				End:      end,
				Severity: severity,
			})
		}
	}
	return issues, nil
}

// DetectTrailingWhitespace flags lines ending in spaces or tabs. The
// issue points at the first trailing whitespace character.
func DetectTrailingWhitespace(doc *css.Document, severity types.Severity) ([]types.Issue, error) {
	var issues []types.Issue
	for i, line := range doc.Lines {
		trimmed := strings.TrimRight(line, " \t")
		if trimmed == line {
			continue
		}
		if strings.TrimSpace(line) == "" {
			// whitespace-only line: point at its first character
			trimmed = ""
		}
		start, _ := lineSpan(i+1, runeColumn(line, len(trimmed)))
		end := types.Position{Line: i + 1, Column: runeColumn(line, len(line)) - 1}
		issues = append(issues, types.Issue{
			Rule:     "trailing-whitespace",
			Filename: doc.Filename,
			Message:  "trailing whitespace",
			Start:    start,
			End:      end,
			Severity: severity,
		})
	}
	return issues, nil
}

// DetectLongLines flags lines longer than the configured maximum.
func DetectLongLines(doc *css.Document, maxLength int, severity types.Severity) ([]types.Issue, error) {
	var issues []types.Issue
	for i, line := range doc.Lines {
		width := len([]rune(strings.TrimSuffix(line, "\r")))
		if width <= maxLength {
			continue
		}
		issues = append(issues, types.Issue{
			Rule:     "max-line-length",
			Filename: doc.Filename,
			Message:  fmt.Sprintf("line is %d characters, limit is %d", width, maxLength),
			Start:    types.Position{Line: i + 1, Column: maxLength + 1},
			End:      types.Position{Line: i + 1, Column: width},
			Severity: severity,
		})
	}
	return issues, nil
}
