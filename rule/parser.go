package rule

// parser is a one-token-lookahead recursive descent parser for the rule
// grammar described in doc.go.
type parser struct {
	lex   *lexer
	input string
	cur   token
}

// Parse compiles a rule string into a Rule tree. Parsing is pure: the same
// input always yields the same tree (or the same error), so callers may
// cache Parse by input string.
func Parse(input string) (Rule, error) {
	p := &parser{lex: newLexer(input), input: input}
	if err := p.advance(); err != nil {
		return nil, err
	}
	if p.cur.kind == tokEOF {
		return nil, ErrEmptyInput
	}

	r, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	if p.cur.kind != tokEOF {
		return nil, &ParseError{
			Input:    p.input,
			Pos:      p.cur.pos,
			Expected: []string{tokEOF.String()},
			Found:    p.cur.text,
		}
	}
	return r, nil
}

func (p *parser) advance() error {
	tok, ok := p.lex.next()
	if !ok {
		return &ParseError{
			Input:    p.input,
			Pos:      p.lex.pos,
			Expected: []string{"identifier or operator"},
			Found:    string([]byte{p.input[p.lex.pos]}),
		}
	}
	p.cur = tok
	return nil
}

func (p *parser) foundText() string {
	if p.cur.kind == tokEOF {
		return ""
	}
	return p.cur.text
}

// parseExpr := compound ('|' compound)*
func (p *parser) parseExpr() (Rule, error) {
	first, err := p.parseCompound()
	if err != nil {
		return nil, err
	}
	if p.cur.kind != tokPipe {
		return first, nil
	}

	options := []Rule{first}
	for p.cur.kind == tokPipe {
		if err := p.advance(); err != nil {
			return nil, err
		}
		next, err := p.parseCompound()
		if err != nil {
			return nil, err
		}
		options = append(options, next)
	}
	return Choice{Options: options}, nil
}

// parseCompound := primary ('+' primary)*
func (p *parser) parseCompound() (Rule, error) {
	first, err := p.parsePrimary()
	if err != nil {
		return nil, err
	}
	if p.cur.kind != tokPlus {
		return first, nil
	}

	parts := []Rule{first}
	for p.cur.kind == tokPlus {
		if err := p.advance(); err != nil {
			return nil, err
		}
		next, err := p.parsePrimary()
		if err != nil {
			return nil, err
		}
		parts = append(parts, next)
	}
	return Compound{Parts: parts}, nil
}

// parsePrimary := IDENT | '(' expr ')' | '[' expr '>' expr ']' | '^' primary
func (p *parser) parsePrimary() (Rule, error) {
	switch p.cur.kind {
	case tokIdent:
		tok := p.cur
		if err := p.advance(); err != nil {
			return nil, err
		}
		return Simple{Token: tok.text}, nil

	case tokCaret:
		if err := p.advance(); err != nil {
			return nil, err
		}
		inner, err := p.parsePrimary()
		if err != nil {
			return nil, err
		}
		return Negated{Inner: inner}, nil

	case tokLParen:
		if err := p.advance(); err != nil {
			return nil, err
		}
		inner, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		if p.cur.kind != tokRParen {
			return nil, p.unexpected("')'")
		}
		if err := p.advance(); err != nil {
			return nil, err
		}
		return inner, nil

	case tokLBracket:
		if err := p.advance(); err != nil {
			return nil, err
		}
		origin, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		if p.cur.kind != tokGT {
			return nil, p.unexpected("'>'")
		}
		if err := p.advance(); err != nil {
			return nil, err
		}
		destination, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		if p.cur.kind != tokRBracket {
			return nil, p.unexpected("']'")
		}
		if err := p.advance(); err != nil {
			return nil, err
		}
		return Directional{Origin: origin, Destination: destination}, nil

	default:
		return nil, p.unexpected("identifier, '(', '[', or '^'")
	}
}

func (p *parser) unexpected(expected string) error {
	return &ParseError{
		Input:    p.input,
		Pos:      p.cur.pos,
		Expected: []string{expected},
		Found:    p.foundText(),
	}
}
