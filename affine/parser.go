package affine

import (
	"fmt"
	"strings"
)

type parser struct {
	src  string
	toks []token
	pos  int
}

func newParser(src string) (*parser, error) {
	toks, err := tokenize(src)
	if err != nil {
		return nil, err
	}

	return &parser{src: src, toks: toks}, nil
}

func (p *parser) peek() token {
	return p.toks[p.pos]
}

func (p *parser) next() token {
	t := p.toks[p.pos]
	if t.kind != tokEOF {
		p.pos++
	}
	return t
}

func (p *parser) isOp(text string) bool {
	t := p.peek()
	return t.kind == tokOp && t.text == text
}

func (p *parser) isKeyword(word string) bool {
	t := p.peek()
	return t.kind == tokIdent && t.text == word
}

func (p *parser) accept(text string) bool {
	if p.isOp(text) {
		p.pos++
		return true
	}
	return false
}

func (p *parser) expect(text string) error {
	if p.accept(text) {
		return nil
	}
	return p.errorf("expected %q, found %s", text, p.peek())
}

func (p *parser) expectEOF() error {
	if p.peek().kind != tokEOF {
		return p.errorf("unexpected %s", p.peek())
	}
	return nil
}

func (p *parser) errorf(format string, args ...any) error {
	return fmt.Errorf("%w: %s in %q at %d",
		ErrSyntax, fmt.Sprintf(format, args...), p.src, p.peek().pos)
}

// ParseExpr parses a single expression.
func ParseExpr(src string) (Expr, error) {
	p, err := newParser(src)
	if err != nil {
		return nil, err
	}

	e, err := p.parseExpr()
	if err != nil {
		return nil, err
	}

	if err := p.expectEOF(); err != nil {
		return nil, err
	}

	return e, nil
}

func (p *parser) parseExpr() (Expr, error) {
	left, err := p.parseTerm()
	if err != nil {
		return nil, err
	}

	for p.isOp("+") || p.isOp("-") {
		op := p.next().text[0]
		right, err := p.parseTerm()
		if err != nil {
			return nil, err
		}
		left = binary{op: op, l: left, r: right}
	}

	return left, nil
}

func (p *parser) parseTerm() (Expr, error) {
	left, err := p.parseUnary()
	if err != nil {
		return nil, err
	}

	for p.isOp("*") || p.isOp("/") || p.isOp("%") {
		op := p.next().text[0]
		right, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		left = binary{op: op, l: left, r: right}
	}

	return left, nil
}

func (p *parser) parseUnary() (Expr, error) {
	if p.accept("-") {
		x, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		if n, ok := x.(num); ok {
			return num{v: -n.v}, nil
		}
		return neg{x: x}, nil
	}

	return p.parsePrimary()
}

func (p *parser) parsePrimary() (Expr, error) {
	t := p.peek()

	switch {
	case t.kind == tokInt:
		p.next()
		return num{v: t.val}, nil

	case t.kind == tokIdent:
		p.next()
		if !p.isOp("(") {
			return ident{name: t.text}, nil
		}
		return p.parseCall(t)

	case p.accept("("):
		e, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		if err := p.expect(")"); err != nil {
			return nil, err
		}
		return e, nil
	}

	return nil, p.errorf("unexpected %s", t)
}

func (p *parser) parseCall(name token) (Expr, error) {
	arity, ok := functions[name.text]
	if !ok {
		return nil, p.errorf("unknown function %q", name.text)
	}

	if err := p.expect("("); err != nil {
		return nil, err
	}

	args, err := p.parseExprList(")")
	if err != nil {
		return nil, err
	}

	if (arity >= 0 && len(args) != arity) || (arity < 0 && len(args) < -arity) {
		return nil, p.errorf("wrong number of arguments to %s: %d", name.text, len(args))
	}

	return call{fn: name.text, args: args}, nil
}

// parseExprList parses a comma-separated list up to and including the closing
// token.
func (p *parser) parseExprList(closing string) ([]Expr, error) {
	var list []Expr
	if p.accept(closing) {
		return list, nil
	}

	for {
		e, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		list = append(list, e)

		if p.accept(closing) {
			return list, nil
		}
		if err := p.expect(","); err != nil {
			return nil, err
		}
	}
}

// parseTupleHead parses Name[v1, ..., vn] where every entry is a plain
// identifier.
func (p *parser) parseTupleHead() (string, []string, error) {
	name := p.next()
	if name.kind != tokIdent {
		return "", nil, p.errorf("expected tuple name, found %s", name)
	}

	if err := p.expect("["); err != nil {
		return "", nil, err
	}

	var vars []string
	if p.accept("]") {
		return name.text, vars, nil
	}

	for {
		v := p.next()
		if v.kind != tokIdent {
			return "", nil, p.errorf("expected iterator name, found %s", v)
		}
		vars = append(vars, v.text)

		if p.accept("]") {
			return name.text, vars, nil
		}
		if err := p.expect(","); err != nil {
			return "", nil, err
		}
	}
}

// stripBraces removes one pair of surrounding ISL-style braces.
func stripBraces(src string) string {
	s := strings.TrimSpace(src)
	if strings.HasPrefix(s, "{") && strings.HasSuffix(s, "}") {
		return strings.TrimSpace(s[1 : len(s)-1])
	}
	return s
}
