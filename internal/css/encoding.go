package css

import (
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
)

// DecodeSource turns raw file bytes into text. Valid UTF-8 passes
// through untouched. Anything else is decoded as ISO 8859-1, which
// cannot fail and keeps line structure intact, so the whitespace rules
// still see the file; valid reports which path was taken.
func DecodeSource(data []byte) (text string, valid bool) {
	if utf8.Valid(data) {
		return string(data), true
	}
	decoded, err := charmap.ISO8859_1.NewDecoder().Bytes(data)
	if err != nil {
		// ISO 8859-1 maps every byte; this is unreachable in practice
		return string(data), false
	}
	return string(decoded), false
}
