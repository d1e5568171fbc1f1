package css

import (
	"github.com/cssverse/csslin/internal/types"
)

type tokenType int

const (
	tEOF tokenType = iota
	tWhitespace
	tComment
	tIdent
	tAtKeyword
	tHash
	tString
	tBadString
	tNumber
	tColon
	tSemicolon
	tComma
	tLBrace
	tRBrace
	tLParen
	tRParen
	tLBrack
	tRBrack
	tDelim
)

type token struct {
	typ tokenType
	lit string
	pos types.Position // first rune of the token
	end types.Position // last rune of the token, inclusive
}

// scanner is a position-tracking CSS tokenizer. Columns count runes,
// 1-based; a newline resets the column and advances the line.
type scanner struct {
	src  []rune
	i    int
	line int
	col  int

	// position of the most recently consumed rune
	last types.Position
}

func newScanner(src string) *scanner {
	return &scanner{src: []rune(src), line: 1, col: 1}
}

const eof rune = -1

func (s *scanner) peek() rune {
	if s.i >= len(s.src) {
		return eof
	}
	return s.src[s.i]
}

func (s *scanner) peekAt(n int) rune {
	if s.i+n >= len(s.src) {
		return eof
	}
	return s.src[s.i+n]
}

func (s *scanner) next() rune {
	if s.i >= len(s.src) {
		return eof
	}
	ch := s.src[s.i]
	s.last = types.Position{Line: s.line, Column: s.col}
	s.i++
	if ch == '\n' {
		s.line++
		s.col = 1
	} else {
		s.col++
	}
	return ch
}

func (s *scanner) pos() types.Position {
	return types.Position{Line: s.line, Column: s.col}
}

// scan returns the next token. Comments and whitespace are returned as
// tokens so the parser can attach comments to the tree and the
// formatting rules can see exact layout.
func (s *scanner) scan() token {
	start := s.pos()
	ch := s.next()

	switch {
	case ch == eof:
		return token{typ: tEOF, pos: start, end: start}
	case isSpace(ch):
		return s.scanWhitespace(start, ch)
	case ch == '/' && s.peek() == '*':
		return s.scanComment(start)
	case ch == '"' || ch == '\'':
		return s.scanString(start, ch)
	case ch == '@' && isNameStart(s.peek()):
		return s.scanName(start, ch, tAtKeyword)
	case ch == '#' && isNameChar(s.peek()):
		return s.scanName(start, ch, tHash)
	case ch == '{':
		return token{typ: tLBrace, lit: "{", pos: start, end: start}
	case ch == '}':
		return token{typ: tRBrace, lit: "}", pos: start, end: start}
	case ch == '(':
		return token{typ: tLParen, lit: "(", pos: start, end: start}
	case ch == ')':
		return token{typ: tRParen, lit: ")", pos: start, end: start}
	case ch == '[':
		return token{typ: tLBrack, lit: "[", pos: start, end: start}
	case ch == ']':
		return token{typ: tRBrack, lit: "]", pos: start, end: start}
	case ch == ':':
		return token{typ: tColon, lit: ":", pos: start, end: start}
	case ch == ';':
		return token{typ: tSemicolon, lit: ";", pos: start, end: start}
	case ch == ',':
		return token{typ: tComma, lit: ",", pos: start, end: start}
	case isDigit(ch), ch == '.' && isDigit(s.peek()):
		return s.scanNumeric(start, ch)
	case ch == '-' && (isDigit(s.peek()) || s.peek() == '.' && isDigit(s.peekAt(1))):
		return s.scanNumeric(start, ch)
	case isNameStart(ch), ch == '-' && isNameChar(s.peek()):
		return s.scanName(start, ch, tIdent)
	default:
		return token{typ: tDelim, lit: string(ch), pos: start, end: start}
	}
}

func (s *scanner) scanWhitespace(start types.Position, first rune) token {
	lit := []rune{first}
	for isSpace(s.peek()) {
		lit = append(lit, s.next())
	}
	return token{typ: tWhitespace, lit: string(lit), pos: start, end: s.last}
}

// scanComment consumes a /* ... */ comment; the leading '/' has already
// been read. An unterminated comment runs to EOF.
func (s *scanner) scanComment(start types.Position) token {
	lit := []rune{'/', s.next()} // consume '*'
	for {
		ch := s.next()
		if ch == eof {
			break
		}
		lit = append(lit, ch)
		if ch == '*' && s.peek() == '/' {
			lit = append(lit, s.next())
			break
		}
	}
	return token{typ: tComment, lit: string(lit), pos: start, end: s.last}
}

// scanString consumes a quoted string, honoring backslash escapes.
// A newline before the closing quote yields a bad-string token, per
// CSS error recovery.
func (s *scanner) scanString(start types.Position, quote rune) token {
	lit := []rune{quote}
	for {
		ch := s.peek()
		if ch == eof {
			return token{typ: tBadString, lit: string(lit), pos: start, end: s.last}
		}
		if ch == '\n' {
			return token{typ: tBadString, lit: string(lit), pos: start, end: s.last}
		}
		lit = append(lit, s.next())
		if ch == '\\' {
			// escaped code point, including an escaped quote
			if s.peek() != eof && s.peek() != '\n' {
				lit = append(lit, s.next())
			}
			continue
		}
		if ch == quote {
			return token{typ: tString, lit: string(lit), pos: start, end: s.last}
		}
	}
}

// scanNumeric consumes a number together with any unit or percent sign
// attached to it, e.g. "0px", "1.5em", "100%".
func (s *scanner) scanNumeric(start types.Position, first rune) token {
	lit := []rune{first}
	for isDigit(s.peek()) || s.peek() == '.' {
		lit = append(lit, s.next())
	}
	if s.peek() == '%' {
		lit = append(lit, s.next())
	} else {
		for isNameChar(s.peek()) {
			lit = append(lit, s.next())
		}
	}
	return token{typ: tNumber, lit: string(lit), pos: start, end: s.last}
}

func (s *scanner) scanName(start types.Position, first rune, typ tokenType) token {
	lit := []rune{first}
	for isNameChar(s.peek()) || s.peek() == '\\' {
		ch := s.next()
		lit = append(lit, ch)
		if ch == '\\' && s.peek() != eof {
			lit = append(lit, s.next())
		}
	}
	return token{typ: typ, lit: string(lit), pos: start, end: s.last}
}

func isSpace(ch rune) bool {
	return ch == ' ' || ch == '\t' || ch == '\n' || ch == '\r' || ch == '\f'
}

func isDigit(ch rune) bool { return ch >= '0' && ch <= '9' }

func isNameStart(ch rune) bool {
	return ch == '_' || ch >= 'a' && ch <= 'z' || ch >= 'A' && ch <= 'Z' || ch >= 0x80
}

func isNameChar(ch rune) bool {
	return isNameStart(ch) || isDigit(ch) || ch == '-'
}
