package expr

import "fmt"

type node interface{ isNode() }

type nodeNumber struct{ text string }

type nodeUnary struct {
	op byte
	x  node
}

// nodeBinary uses '^' as op for exponentiation regardless of how the
// operator was spelled in the source.
type nodeBinary struct {
	op          byte
	left, right node
}

func (nodeNumber) isNode() {}
func (nodeUnary) isNode()  {}
func (nodeBinary) isNode() {}

type parser struct {
	l   lexer
	cur token
}

// parse builds the syntax tree for src. Precedence follows the usual
// calculator conventions: unary minus binds looser than exponentiation
// (-2**2 is -4) and exponentiation is right associative.
func parse(src string) (node, error) {
	p := &parser{l: lexer{s: src}}
	if err := p.next(); err != nil {
		return nil, err
	}
	if p.cur.kind == tokEOF {
		return nil, fmt.Errorf("%w: empty expression", ErrSyntax)
	}
	n, err := p.parseSum()
	if err != nil {
		return nil, err
	}
	if p.cur.kind != tokEOF {
		return nil, p.unexpected()
	}
	return n, nil
}

func (p *parser) next() error {
	t, err := p.l.next()
	if err != nil {
		return err
	}
	p.cur = t
	return nil
}

func (p *parser) unexpected() error {
	if p.cur.kind == tokEOF {
		return fmt.Errorf("%w: unexpected end of expression", ErrSyntax)
	}
	return fmt.Errorf("%w: unexpected %q at offset %d", ErrSyntax, p.cur.text, p.cur.pos)
}

func (p *parser) parseSum() (node, error) {
	left, err := p.parseProduct()
	if err != nil {
		return nil, err
	}
	for p.cur.kind == tokPlus || p.cur.kind == tokMinus {
		op := p.cur.text[0]
		if err := p.next(); err != nil {
			return nil, err
		}
		right, err := p.parseProduct()
		if err != nil {
			return nil, err
		}
		left = nodeBinary{op: op, left: left, right: right}
	}
	return left, nil
}

func (p *parser) parseProduct() (node, error) {
	left, err := p.parseUnary()
	if err != nil {
		return nil, err
	}
	for p.cur.kind == tokStar || p.cur.kind == tokSlash {
		op := p.cur.text[0]
		if err := p.next(); err != nil {
			return nil, err
		}
		right, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		left = nodeBinary{op: op, left: left, right: right}
	}
	return left, nil
}

func (p *parser) parseUnary() (node, error) {
	if p.cur.kind == tokPlus || p.cur.kind == tokMinus {
		op := p.cur.text[0]
		if err := p.next(); err != nil {
			return nil, err
		}
		x, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		return nodeUnary{op: op, x: x}, nil
	}
	return p.parsePower()
}

func (p *parser) parsePower() (node, error) {
	base, err := p.parsePrimary()
	if err != nil {
		return nil, err
	}
	if p.cur.kind != tokPow {
		return base, nil
	}
	if err := p.next(); err != nil {
		return nil, err
	}
	// The exponent may carry its own sign: 2**-1.
	exp, err := p.parseUnary()
	if err != nil {
		return nil, err
	}
	return nodeBinary{op: '^', left: base, right: exp}, nil
}

func (p *parser) parsePrimary() (node, error) {
	switch p.cur.kind {
	case tokNumber:
		n := nodeNumber{text: p.cur.text}
		if err := p.next(); err != nil {
			return nil, err
		}
		return n, nil
	case tokLParen:
		open := p.cur.pos
		if err := p.next(); err != nil {
			return nil, err
		}
		n, err := p.parseSum()
		if err != nil {
			return nil, err
		}
		if p.cur.kind != tokRParen {
			return nil, fmt.Errorf("%w: unclosed '(' at offset %d", ErrSyntax, open)
		}
		if err := p.next(); err != nil {
			return nil, err
		}
		return n, nil
	default:
		return nil, p.unexpected()
	}
}
