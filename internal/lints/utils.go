package lints

import (
	"strings"

	"github.com/cssverse/csslin/internal/types"
)

// leadingWhitespace returns the run of spaces and tabs at the start of
// a line.
func leadingWhitespace(line string) string {
	for i, ch := range line {
		if ch != ' ' && ch != '\t' {
			return line[:i]
		}
	}
	return line
}

// isCommentContinuation reports whether a line is the body of a
// multi-line comment written in the conventional star-aligned form,
// which the indentation rule must not flag.
func isCommentContinuation(line string) bool {
	trimmed := strings.TrimLeft(line, " \t")
	return strings.HasPrefix(trimmed, "*")
}

// lineSpan builds a single-position span on the given line/column.
func lineSpan(line, column int) (types.Position, types.Position) {
	pos := types.Position{Line: line, Column: column}
	return pos, pos
}

// runeColumn converts a byte offset within a line to a 1-based rune
// column, matching the parser's position accounting.
func runeColumn(line string, byteOffset int) int {
	if byteOffset > len(line) {
		byteOffset = len(line)
	}
	return len([]rune(line[:byteOffset])) + 1
}
