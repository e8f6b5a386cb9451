package affine

import "fmt"

// Constraint is a single comparison L op R.
type Constraint struct {
	L  Expr
	Op string
	R  Expr
}

var comparisons = map[string]bool{
	"<":  true,
	"<=": true,
	">":  true,
	">=": true,
	"==": true,
}

// Holds evaluates the constraint under env.
func (c Constraint) Holds(env Env) (bool, error) {
	l, err := c.L.Eval(env)
	if err != nil {
		return false, err
	}

	r, err := c.R.Eval(env)
	if err != nil {
		return false, err
	}

	switch c.Op {
	case "<":
		return l < r, nil
	case "<=":
		return l <= r, nil
	case ">":
		return l > r, nil
	case ">=":
		return l >= r, nil
	case "==":
		return l == r, nil
	default:
		panic("invalid comparison " + c.Op)
	}
}

// Vars returns the identifiers the constraint refers to.
func (c Constraint) Vars() []string {
	return Vars(binary{op: '+', l: c.L, r: c.R})
}

func (c Constraint) String() string {
	return fmt.Sprintf("%s %s %s", c.L, c.Op, c.R)
}

// ParseConstraints parses comparisons joined with "and". Chains such as
// 0 <= i < N are split into one Constraint per comparison.
func ParseConstraints(src string) ([]Constraint, error) {
	p, err := newParser(src)
	if err != nil {
		return nil, err
	}

	out, err := p.parseConstraints()
	if err != nil {
		return nil, err
	}

	if err := p.expectEOF(); err != nil {
		return nil, err
	}

	return out, nil
}

func (p *parser) parseConstraints() ([]Constraint, error) {
	var out []Constraint

	for {
		chain, err := p.parseChain()
		if err != nil {
			return nil, err
		}
		out = append(out, chain...)

		if !p.isKeyword("and") {
			return out, nil
		}
		p.next()
	}
}

func (p *parser) parseChain() ([]Constraint, error) {
	left, err := p.parseExpr()
	if err != nil {
		return nil, err
	}

	var out []Constraint
	for {
		t := p.peek()
		if t.kind != tokOp || !comparisons[t.text] {
			break
		}
		p.next()

		right, err := p.parseExpr()
		if err != nil {
			return nil, err
		}

		out = append(out, Constraint{L: left, Op: t.text, R: right})
		left = right
	}

	if len(out) == 0 {
		return nil, p.errorf("expected comparison, found %s", p.peek())
	}

	return out, nil
}

func allHold(cs []Constraint, env Env) (bool, error) {
	for _, c := range cs {
		ok, err := c.Holds(env)
		if err != nil || !ok {
			return false, err
		}
	}

	return true, nil
}
