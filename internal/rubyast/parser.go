package rubyast

// The parser covers the Ruby subset the lint rules inspect: class and
// module declarations (with optional superclass), method definitions,
// constant paths, assignments, and method calls with or without
// parentheses. Parsing is best-effort: statements outside the subset are
// skipped rather than reported as errors, so rules only ever see nodes
// that satisfied their shape exactly.

type parser struct {
	toks []token
	pos  int
}

// Parse builds a syntax tree for the given source. The returned error
// only reflects lexical problems (for example an unterminated string);
// unrecognized statements are silently dropped.
func Parse(filename string, src []byte) (*File, error) {
	toks, comments, err := lex(src)
	if err != nil {
		return nil, err
	}
	p := &parser{toks: toks}
	stmts := p.parseStatements()
	return &File{
		Filename:   filename,
		Source:     src,
		Statements: stmts,
		Comments:   comments,
	}, nil
}

// blockKeywords introduce `end`-terminated blocks the parser does not
// model. They are skipped wholesale to keep `end` matching balanced.
var blockKeywords = map[string]bool{
	"if":     true,
	"unless": true,
	"while":  true,
	"until":  true,
	"case":   true,
	"begin":  true,
	"for":    true,
}

func (p *parser) cur() token { return p.toks[p.pos] }

func (p *parser) at(kind tokenKind) bool { return p.cur().kind == kind }

func (p *parser) peekKind(n int) tokenKind {
	if p.pos+n >= len(p.toks) {
		return tokEOF
	}
	return p.toks[p.pos+n].kind
}

func (p *parser) advance() token {
	tok := p.cur()
	if tok.kind != tokEOF {
		p.pos++
	}
	return tok
}

func (p *parser) skipNewlines() {
	for p.at(tokNewline) {
		p.advance()
	}
}

// skipLine consumes the remainder of the current statement, stopping
// before newline, `end`, or EOF.
func (p *parser) skipLine() {
	for !p.at(tokNewline) && !p.at(tokKwEnd) && !p.at(tokEOF) {
		p.advance()
	}
}

// parseStatements parses until `end` or EOF, leaving the terminator for
// the caller.
func (p *parser) parseStatements() []Node {
	var stmts []Node
	for {
		p.skipNewlines()
		if p.at(tokEOF) || p.at(tokKwEnd) {
			return stmts
		}
		if stmt := p.parseStatement(); stmt != nil {
			stmts = append(stmts, stmt)
		}
	}
}

func (p *parser) parseStatement() Node {
	switch {
	case p.at(tokKwClass):
		return p.parseClass()
	case p.at(tokKwModule):
		return p.parseModule()
	case p.at(tokKwDef):
		return p.parseDef()
	case p.at(tokIdent) && blockKeywords[p.cur().text]:
		p.skipBlock()
		return nil
	}

	expr, ok := p.parseExpr()
	if !ok {
		p.skipLine()
		return nil
	}

	if p.at(tokAssign) {
		p.advance()
		value, ok := p.parseExpr()
		if !ok {
			p.skipLine()
			return nil
		}
		switch expr.(type) {
		case *ConstNode, *IdentNode:
			expr = &AssignNode{
				Target: expr,
				Value:  value,
				Loc:    Span{Start: expr.Span().Start, End: value.Span().End},
			}
		default:
			p.skipLine()
			return nil
		}
	}

	p.skipLine()
	return expr
}

func (p *parser) parseClass() Node {
	start := p.advance().loc.Start // class keyword

	var name *ConstNode
	var superclass Node
	switch {
	case p.at(tokLt):
		// singleton class body: class << self
		p.advance()
		if p.at(tokLt) {
			p.advance()
		}
		p.skipLine()
	case p.at(tokConst) || p.at(tokScope):
		name = p.parseConstPath()
		if p.at(tokLt) {
			p.advance()
			superclass, _ = p.parseExpr()
		}
		p.skipLine()
	default:
		p.skipLine()
	}

	body := p.parseStatements()
	end := p.cur().loc.End
	if p.at(tokKwEnd) {
		p.advance()
	}
	return &ClassNode{
		Name:       name,
		Superclass: superclass,
		Body:       body,
		Loc:        Span{Start: start, End: end},
	}
}

func (p *parser) parseModule() Node {
	start := p.advance().loc.Start

	var name *ConstNode
	if p.at(tokConst) || p.at(tokScope) {
		name = p.parseConstPath()
	}
	p.skipLine()

	body := p.parseStatements()
	end := p.cur().loc.End
	if p.at(tokKwEnd) {
		p.advance()
	}
	return &ModuleNode{Name: name, Body: body, Loc: Span{Start: start, End: end}}
}

func (p *parser) parseDef() Node {
	start := p.advance().loc.Start

	var method string
	if p.at(tokIdent) || p.at(tokConst) {
		method = p.cur().text
		p.advance()
	}
	p.skipLine() // parameter list

	body := p.parseStatements()
	end := p.cur().loc.End
	if p.at(tokKwEnd) {
		p.advance()
	}
	return &DefNode{MethodName: method, Body: body, Loc: Span{Start: start, End: end}}
}

// skipBlock consumes an `end`-terminated construct the tree does not
// model (if/while/case/...), keeping nesting balanced.
func (p *parser) skipBlock() {
	depth := 1
	p.advance()
	atStmtStart := false
	for depth > 0 && !p.at(tokEOF) {
		switch p.cur().kind {
		case tokNewline:
			atStmtStart = true
		case tokKwEnd:
			depth--
			atStmtStart = false
		case tokKwClass, tokKwModule, tokKwDef:
			depth++
			atStmtStart = false
		case tokIdent:
			if atStmtStart && blockKeywords[p.cur().text] {
				depth++
			}
			atStmtStart = false
		default:
			atStmtStart = false
		}
		p.advance()
	}
}

func (p *parser) parseExpr() (Node, bool) {
	node, ok := p.parsePrimary()
	if !ok {
		return nil, false
	}

	for p.at(tokDot) {
		p.advance()
		if !p.at(tokIdent) && !p.at(tokConst) {
			return node, true
		}
		method := p.advance()
		args, end := p.parseCallArgs(method.loc.End)
		node = &SendNode{
			Receiver: node,
			Method:   method.text,
			Args:     args,
			Loc:      Span{Start: node.Span().Start, End: end},
		}
	}
	return node, true
}

func (p *parser) parsePrimary() (Node, bool) {
	switch p.cur().kind {
	case tokScope, tokConst:
		if c := p.parseConstPath(); c != nil {
			return c, true
		}
		return nil, false
	case tokIdent:
		name := p.advance()
		if p.at(tokLParen) || p.startsExpr() {
			args, end := p.parseCallArgs(name.loc.End)
			return &SendNode{
				Method: name.text,
				Args:   args,
				Loc:    Span{Start: name.loc.Start, End: end},
			}, true
		}
		return &IdentNode{Name: name.text, Loc: name.loc}, true
	case tokString:
		tok := p.advance()
		return &LiteralNode{Kind: LiteralString, Raw: tok.text, Loc: tok.loc}, true
	case tokInt:
		tok := p.advance()
		return &LiteralNode{Kind: LiteralInt, Raw: tok.text, Loc: tok.loc}, true
	case tokSymbol:
		tok := p.advance()
		return &LiteralNode{Kind: LiteralSymbol, Raw: tok.text, Loc: tok.loc}, true
	case tokLParen:
		p.advance()
		expr, ok := p.parseExpr()
		if p.at(tokRParen) {
			p.advance()
		}
		return expr, ok
	default:
		return nil, false
	}
}

func (p *parser) parseConstPath() *ConstNode {
	start := p.cur().loc.Start
	topLevel := false
	if p.at(tokScope) {
		topLevel = true
		p.advance()
	}
	if !p.at(tokConst) {
		return nil
	}

	first := p.advance()
	path := []string{first.text}
	end := first.loc.End
	for p.at(tokScope) && p.peekKind(1) == tokConst {
		p.advance()
		seg := p.advance()
		path = append(path, seg.text)
		end = seg.loc.End
	}
	return &ConstNode{TopLevel: topLevel, Path: path, Loc: Span{Start: start, End: end}}
}

// parseCallArgs parses an argument list, parenthesized or command style.
// The returned position is the end of the call expression.
func (p *parser) parseCallArgs(defaultEnd Position) ([]Node, Position) {
	if p.at(tokLParen) {
		p.advance()
		var args []Node
		end := defaultEnd
		for !p.at(tokRParen) && !p.at(tokNewline) && !p.at(tokEOF) {
			arg, ok := p.parseExpr()
			if !ok {
				p.advance()
				continue
			}
			args = append(args, arg)
			end = arg.Span().End
			if p.at(tokComma) {
				p.advance()
			}
		}
		if p.at(tokRParen) {
			end = p.advance().loc.End
		}
		return args, end
	}

	if !p.startsExpr() {
		return nil, defaultEnd
	}

	// command-style call: raise Exception, "boom"
	var args []Node
	end := defaultEnd
	for {
		arg, ok := p.parseExpr()
		if !ok {
			break
		}
		args = append(args, arg)
		end = arg.Span().End
		if !p.at(tokComma) {
			break
		}
		p.advance()
	}
	return args, end
}

// startsExpr reports whether the current token can begin an expression,
// used to detect command-style argument lists.
func (p *parser) startsExpr() bool {
	switch p.cur().kind {
	case tokConst, tokScope, tokInt, tokString, tokSymbol:
		return true
	case tokIdent:
		return !blockKeywords[p.cur().text]
	default:
		return false
	}
}
