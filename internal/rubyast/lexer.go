package rubyast

import "fmt"

type tokenKind int

const (
	tokEOF tokenKind = iota
	tokNewline
	tokIdent
	tokConst
	tokInt
	tokString
	tokSymbol
	tokLt     // <
	tokAssign // =
	tokScope  // ::
	tokDot    // .
	tokLParen // (
	tokRParen // )
	tokComma  // ,
	tokKwClass
	tokKwModule
	tokKwDef
	tokKwEnd
	tokOther // any operator or punctuation the parser does not care about
)

type token struct {
	kind tokenKind
	text string
	loc  Span
}

var keywords = map[string]tokenKind{
	"class":  tokKwClass,
	"module": tokKwModule,
	"def":    tokKwDef,
	"end":    tokKwEnd,
}

type lexer struct {
	src  []byte
	pos  int
	line int
	col  int

	tokens   []token
	comments []Comment

	// lineHasCode tracks whether a code token was emitted on the current
	// line, so comments can be marked as trailing.
	lineHasCode bool
}

func lex(src []byte) ([]token, []Comment, error) {
	l := &lexer{src: src, line: 1, col: 1}
	for {
		tok, err := l.next()
		if err != nil {
			return nil, nil, err
		}
		l.tokens = append(l.tokens, tok)
		if tok.kind == tokEOF {
			return l.tokens, l.comments, nil
		}
	}
}

func (l *lexer) position() Position {
	return Position{Offset: l.pos, Line: l.line, Column: l.col}
}

func (l *lexer) peek() byte {
	if l.pos >= len(l.src) {
		return 0
	}
	return l.src[l.pos]
}

func (l *lexer) advance() byte {
	c := l.src[l.pos]
	l.pos++
	if c == '\n' {
		l.line++
		l.col = 1
	} else {
		l.col++
	}
	return c
}

func (l *lexer) emit(kind tokenKind, start Position) token {
	if kind != tokNewline {
		l.lineHasCode = true
	}
	return token{
		kind: kind,
		text: string(l.src[start.Offset:l.pos]),
		loc:  Span{Start: start, End: l.position()},
	}
}

func (l *lexer) next() (token, error) {
	for l.pos < len(l.src) {
		c := l.peek()
		switch {
		case c == ' ' || c == '\t' || c == '\r':
			l.advance()
		case c == '\\' && l.pos+1 < len(l.src) && l.src[l.pos+1] == '\n':
			// line continuation
			l.advance()
			l.advance()
		case c == '#':
			l.scanComment()
		default:
			return l.scanToken()
		}
	}
	return token{kind: tokEOF, loc: Span{Start: l.position(), End: l.position()}}, nil
}

func (l *lexer) scanComment() {
	start := l.position()
	for l.pos < len(l.src) && l.peek() != '\n' {
		l.advance()
	}
	text := string(l.src[start.Offset+1 : l.pos])
	l.comments = append(l.comments, Comment{
		Text:     text,
		Trailing: l.lineHasCode,
		Loc:      Span{Start: start, End: l.position()},
	})
}

func (l *lexer) scanToken() (token, error) {
	start := l.position()
	c := l.advance()
	switch {
	case c == '\n' || c == ';':
		l.lineHasCode = false
		return l.emit(tokNewline, start), nil
	case c == '<':
		return l.emit(tokLt, start), nil
	case c == '=':
		if l.peek() == '=' {
			l.advance()
			return l.emit(tokOther, start), nil
		}
		return l.emit(tokAssign, start), nil
	case c == ':':
		if l.peek() == ':' {
			l.advance()
			return l.emit(tokScope, start), nil
		}
		if isIdentStart(l.peek()) {
			l.scanIdentTail()
			return l.emit(tokSymbol, start), nil
		}
		return l.emit(tokOther, start), nil
	case c == '.':
		return l.emit(tokDot, start), nil
	case c == '(':
		return l.emit(tokLParen, start), nil
	case c == ')':
		return l.emit(tokRParen, start), nil
	case c == ',':
		return l.emit(tokComma, start), nil
	case c == '"' || c == '\'':
		if err := l.scanStringTail(c, start); err != nil {
			return token{}, err
		}
		return l.emit(tokString, start), nil
	case c >= '0' && c <= '9':
		for isDigit(l.peek()) || l.peek() == '_' {
			l.advance()
		}
		return l.emit(tokInt, start), nil
	case isIdentStart(c):
		l.scanIdentTail()
		text := string(l.src[start.Offset:l.pos])
		if kw, ok := keywords[text]; ok {
			return l.emit(kw, start), nil
		}
		if isUpper(text[0]) {
			return l.emit(tokConst, start), nil
		}
		return l.emit(tokIdent, start), nil
	default:
		return l.emit(tokOther, start), nil
	}
}

func (l *lexer) scanIdentTail() {
	for isIdentPart(l.peek()) {
		l.advance()
	}
	// Ruby method names may end with ? or !
	if l.peek() == '?' || l.peek() == '!' {
		l.advance()
	}
}

func (l *lexer) scanStringTail(quote byte, start Position) error {
	for l.pos < len(l.src) {
		c := l.advance()
		if c == '\\' && l.pos < len(l.src) {
			l.advance()
			continue
		}
		if c == quote {
			return nil
		}
	}
	return fmt.Errorf("unterminated string literal at line %d", start.Line)
}

func isIdentStart(c byte) bool {
	return c == '_' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isIdentPart(c byte) bool {
	return isIdentStart(c) || isDigit(c)
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }

func isUpper(c byte) bool { return c >= 'A' && c <= 'Z' }
