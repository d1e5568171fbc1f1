package css

import (
	"fmt"
	"strings"

	"github.com/cssverse/csslin/internal/types"
)

// Parse turns stylesheet source into a Document. It never fails hard:
// unparseable constructs are recorded in Document.Errors and skipped,
// and the returned tree covers everything that did parse, so the
// line-oriented rules can always run.
//
// Parse is a pure function of its input; parsing the same text twice
// yields structurally identical documents.
func Parse(filename, src string) *Document {
	doc := &Document{
		Filename:      filename,
		Source:        src,
		Lines:         strings.Split(src, "\n"),
		EncodingValid: true,
	}

	p := &parser{doc: doc}
	s := newScanner(src)
	for {
		tok := s.scan()
		p.toks = append(p.toks, tok)
		if tok.typ == tEOF {
			break
		}
	}

	doc.Stylesheet = p.parseStylesheet()
	return doc
}

// ParseBytes decodes raw file content and parses it. Invalid UTF-8 is
// recovered with a Latin-1 fallback so that the whitespace rules still
// have lines to inspect; the document is marked accordingly.
func ParseBytes(filename string, data []byte) *Document {
	text, valid := DecodeSource(data)
	doc := Parse(filename, text)
	doc.EncodingValid = valid
	return doc
}

type parser struct {
	doc  *Document
	toks []token
	i    int
}

func (p *parser) cur() token  { return p.toks[p.i] }
func (p *parser) atEnd() bool { return p.cur().typ == tEOF }

func (p *parser) advance() token {
	tok := p.toks[p.i]
	if tok.typ != tEOF {
		p.i++
	}
	return tok
}

func (p *parser) errorf(pos types.Position, format string, args ...interface{}) {
	p.doc.Errors = append(p.doc.Errors, ParseError{
		Message: fmt.Sprintf(format, args...),
		Pos:     pos,
	})
}

// skipSpace consumes whitespace and returns any comments passed over.
func (p *parser) skipSpace() []*Comment {
	var comments []*Comment
	for {
		switch p.cur().typ {
		case tWhitespace:
			p.advance()
		case tComment:
			tok := p.advance()
			comments = append(comments, newComment(tok))
		default:
			return comments
		}
	}
}

func newComment(tok token) *Comment {
	text := strings.TrimPrefix(tok.lit, "/*")
	text = strings.TrimSuffix(text, "*/")
	return &Comment{Text: text, span: Span{Start: tok.pos, End: tok.end}}
}

func (p *parser) parseStylesheet() *Stylesheet {
	sheet := &Stylesheet{}
	if len(p.toks) > 0 {
		sheet.span = Span{Start: p.toks[0].pos, End: p.toks[len(p.toks)-1].end}
	}
	for !p.atEnd() {
		for _, c := range p.skipSpace() {
			sheet.Nodes = append(sheet.Nodes, c)
		}
		if p.atEnd() {
			break
		}
		if node := p.parseNode(); node != nil {
			sheet.Nodes = append(sheet.Nodes, node)
		}
	}
	return sheet
}

// parseNode parses one top-level or block-level construct: an at-rule
// or a ruleset. On an unexpected token it records a parse error and
// resynchronizes.
func (p *parser) parseNode() Node {
	switch tok := p.cur(); tok.typ {
	case tAtKeyword:
		return p.parseAtRule()
	case tIdent, tHash, tDelim, tColon, tLBrack, tNumber:
		return p.parseRuleset()
	case tRBrace:
		p.errorf(tok.pos, "unexpected %q", tok.lit)
		p.advance()
		return nil
	default:
		p.errorf(tok.pos, "unexpected %q", tok.lit)
		p.advance()
		p.syncTo(tLBrace, tSemicolon)
		if p.cur().typ == tLBrace {
			p.skipBlock()
		} else if p.cur().typ == tSemicolon {
			p.advance()
		}
		return nil
	}
}

// parseAtRule parses "@name params ;" or "@name params { ... }".
// Block contents may be nested rulesets and at-rules (@media and the
// Less/Sass nesting forms) or plain declarations (@font-face).
func (p *parser) parseAtRule() Node {
	nameTok := p.advance()
	at := &AtRule{
		Name: strings.TrimPrefix(nameTok.lit, "@"),
		span: Span{Start: nameTok.pos, End: nameTok.end},
	}

	var params []string
	pendingSpace := false
	for {
		tok := p.cur()
		switch tok.typ {
		case tEOF:
			p.errorf(nameTok.pos, "unterminated @%s rule", at.Name)
			at.Params = strings.Join(params, "")
			return at
		case tSemicolon:
			end := p.advance()
			at.Params = strings.TrimSpace(strings.Join(params, ""))
			at.span.End = end.end
			return at
		case tLBrace:
			p.advance()
			at.Params = strings.TrimSpace(strings.Join(params, ""))
			p.parseAtRuleBlock(at)
			return at
		case tWhitespace:
			p.advance()
			pendingSpace = true
		case tComment:
			p.advance()
		default:
			if pendingSpace && len(params) > 0 {
				params = append(params, " ")
			}
			pendingSpace = false
			params = append(params, tok.lit)
			p.advance()
		}
	}
}

func (p *parser) parseAtRuleBlock(at *AtRule) {
	for {
		comments := p.skipSpace()
		for _, c := range comments {
			at.Children = append(at.Children, c)
		}
		tok := p.cur()
		switch {
		case tok.typ == tEOF:
			p.errorf(at.span.Start, "unclosed block in @%s rule", at.Name)
			at.span.End = tok.pos
			return
		case tok.typ == tRBrace:
			end := p.advance()
			at.span.End = end.end
			return
		case tok.typ == tAtKeyword:
			if child := p.parseAtRule(); child != nil {
				at.Children = append(at.Children, child)
			}
		case p.looksLikeDeclaration():
			if d := p.parseDeclaration(); d != nil {
				at.Declarations = append(at.Declarations, d)
			}
		default:
			if node := p.parseNode(); node != nil {
				at.Children = append(at.Children, node)
			}
		}
	}
}

// looksLikeDeclaration reports whether the upcoming tokens read as
// "ident : ..." with no '{' before the colon, distinguishing a
// declaration from a nested ruleset whose selector starts with a type
// name (e.g. "a:hover { ... }" vs "color: red;").
func (p *parser) looksLikeDeclaration() bool {
	if p.cur().typ != tIdent {
		return false
	}
	j := p.i + 1
	for j < len(p.toks) && (p.toks[j].typ == tWhitespace || p.toks[j].typ == tComment) {
		j++
	}
	if j >= len(p.toks) || p.toks[j].typ != tColon {
		return false
	}
	// scan past the colon: a '{' before ';' or '}' means a selector
	for k := j + 1; k < len(p.toks); k++ {
		switch p.toks[k].typ {
		case tLBrace:
			return false
		case tSemicolon, tRBrace, tEOF:
			return true
		}
	}
	return true
}

// parseRuleset parses "selector[, selector...] { declarations }".
func (p *parser) parseRuleset() Node {
	rs := &Ruleset{}
	startTok := p.cur()
	rs.span.Start = startTok.pos

	sel, ok := p.parseSelectorList(rs)
	if !ok {
		return nil
	}
	rs.Selectors = sel

	// current token is '{'
	lbrace := p.advance()
	rs.LBrace = lbrace.pos

	p.parseDeclarationBlock(rs)
	return rs
}

// parseSelectorList consumes tokens up to the opening brace, splitting
// the list on commas. It returns false when no brace is found before a
// semicolon or EOF, in which case an error has been recorded and the
// parser resynchronized.
func (p *parser) parseSelectorList(rs *Ruleset) ([]*Selector, bool) {
	var (
		sels    []*Selector
		text    []string
		start   types.Position
		end     types.Position
		started bool
		pending bool
	)
	flush := func() {
		if !started {
			return
		}
		raw := strings.TrimSpace(strings.Join(text, ""))
		if raw != "" {
			sels = append(sels, newSelector(raw, Span{Start: start, End: end}))
		}
		text = nil
		started = false
		pending = false
	}

	for {
		tok := p.cur()
		switch tok.typ {
		case tEOF:
			p.errorf(tok.pos, "expected '{' before end of file")
			flush()
			return nil, false
		case tSemicolon:
			p.errorf(tok.pos, "expected '{', found ';'")
			p.advance()
			return nil, false
		case tRBrace:
			p.errorf(tok.pos, "expected '{', found '}'")
			p.advance()
			return nil, false
		case tLBrace:
			flush()
			if len(sels) == 0 {
				p.errorf(tok.pos, "ruleset with empty selector")
			}
			return sels, true
		case tComma:
			flush()
			p.advance()
		case tWhitespace:
			if started {
				pending = true
			}
			p.advance()
		case tComment:
			p.advance()
		default:
			if !started {
				start = tok.pos
				started = true
			} else if pending {
				text = append(text, " ")
			}
			pending = false
			text = append(text, tok.lit)
			end = tok.end
			p.advance()
		}
	}
}

func (p *parser) parseDeclarationBlock(rs *Ruleset) {
	for {
		comments := p.skipSpace()
		rs.Comments = append(rs.Comments, comments...)

		tok := p.cur()
		switch {
		case tok.typ == tEOF:
			p.errorf(rs.span.Start, "unclosed declaration block")
			rs.span.End = tok.pos
			return
		case tok.typ == tRBrace:
			end := p.advance()
			rs.RBrace = end.pos
			rs.span.End = end.end
			return
		case tok.typ == tSemicolon:
			// stray semicolon
			p.advance()
		case tok.typ == tIdent:
			if d := p.parseDeclaration(); d != nil {
				rs.Declarations = append(rs.Declarations, d)
			}
		case tok.typ == tLBrace:
			// nested ruleset inside a ruleset (Sass-style); the model
			// only nests through at-rules, so skip it balanced
			p.errorf(tok.pos, "nested block inside declaration block")
			p.skipBlock()
		default:
			p.errorf(tok.pos, "expected property name, found %q", tok.lit)
			p.advance()
			p.syncTo(tSemicolon, tRBrace, tLBrace)
			if p.cur().typ == tSemicolon {
				p.advance()
			} else if p.cur().typ == tLBrace {
				p.skipBlock()
			}
		}
	}
}

// parseDeclaration parses "property : value [!important] [;]".
func (p *parser) parseDeclaration() *Declaration {
	propTok := p.advance()
	d := &Declaration{
		Property: propTok.lit,
		span:     Span{Start: propTok.pos, End: propTok.end},
		Category: CategoryOf(propTok.lit),
	}

	p.skipSpace()
	if p.cur().typ != tColon {
		p.errorf(p.cur().pos, "expected ':' after %q", d.Property)
		p.syncTo(tSemicolon, tRBrace)
		if p.cur().typ == tSemicolon {
			p.advance()
		}
		return nil
	}
	p.advance() // ':'

	var value []string
	pendingSpace := false
	bang := false
loop:
	for {
		tok := p.cur()
		switch tok.typ {
		case tEOF, tRBrace:
			break loop
		case tSemicolon:
			d.Terminated = true
			end := p.advance()
			d.span.End = end.end
			break loop
		case tWhitespace:
			if len(value) > 0 {
				pendingSpace = true
			}
			p.advance()
		case tComment:
			p.advance()
		case tBadString:
			p.errorf(tok.pos, "unterminated string")
			fallthrough
		case tDelim:
			if tok.lit == "!" {
				bang = true
				p.advance()
				continue
			}
			fallthrough
		default:
			if bang && tok.typ == tIdent && strings.EqualFold(tok.lit, "important") {
				d.Important = true
				bang = false
				d.span.End = tok.end
				p.advance()
				continue
			}
			if pendingSpace {
				value = append(value, " ")
			}
			pendingSpace = false
			value = append(value, tok.lit)
			d.Parts = append(d.Parts, ValuePart{
				Text: tok.lit,
				Span: Span{Start: tok.pos, End: tok.end},
			})
			d.span.End = tok.end
			p.advance()
		}
	}

	d.Value = strings.Join(value, "")
	return d
}

// syncTo advances until one of the given token types (or EOF) is the
// current token.
func (p *parser) syncTo(types ...tokenType) {
	for !p.atEnd() {
		cur := p.cur().typ
		for _, t := range types {
			if cur == t {
				return
			}
		}
		p.advance()
	}
}

// skipBlock consumes a balanced brace block starting at the current
// '{' token.
func (p *parser) skipBlock() {
	if p.cur().typ != tLBrace {
		return
	}
	depth := 0
	for !p.atEnd() {
		switch p.advance().typ {
		case tLBrace:
			depth++
		case tRBrace:
			depth--
			if depth == 0 {
				return
			}
		}
	}
}
