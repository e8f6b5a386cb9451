package affine

import (
	"fmt"
	"strings"

	"github.com/sarchlab/tenet/iset"
)

// MaxPoints caps the number of points a loop nest may enumerate.
var MaxPoints = 1 << 24

// Iterator is one loop of a nest with inclusive bounds.
type Iterator struct {
	Name         string
	Lower, Upper Expr
}

// LoopNest describes an iteration domain such as
// S[i, j] : 0 <= i < N and 0 <= j <= i.
type LoopNest struct {
	Name      string
	Iterators []Iterator
	Where     []Constraint
}

// ParseLoopNest parses a domain description. Every iterator needs a lower and
// an upper bound expressed through parameters and outer iterators; the
// remaining constraints filter points.
func ParseLoopNest(src string) (*LoopNest, error) {
	p, err := newParser(stripBraces(src))
	if err != nil {
		return nil, err
	}

	name, vars, err := p.parseTupleHead()
	if err != nil {
		return nil, err
	}

	var cs []Constraint
	if p.accept(":") {
		cs, err = p.parseConstraints()
		if err != nil {
			return nil, err
		}
	}

	if err := p.expectEOF(); err != nil {
		return nil, err
	}

	return deriveBounds(name, vars, cs)
}

func deriveBounds(name string, vars []string, cs []Constraint) (*LoopNest, error) {
	nest := &LoopNest{Name: name}
	used := make([]bool, len(cs))

	for idx, v := range vars {
		later := make(map[string]bool)
		for _, w := range vars[idx:] {
			later[w] = true
		}

		var lowers, uppers []Expr
		for ci, c := range cs {
			if used[ci] {
				continue
			}

			lo, hi, ok := boundOf(v, c, later)
			if !ok {
				continue
			}
			used[ci] = true
			if lo != nil {
				lowers = append(lowers, lo)
			}
			if hi != nil {
				uppers = append(uppers, hi)
			}
		}

		if len(lowers) == 0 || len(uppers) == 0 {
			return nil, fmt.Errorf("%w: %s in %s", ErrUnbounded, v, name)
		}

		nest.Iterators = append(nest.Iterators, Iterator{
			Name:  v,
			Lower: combine("max", lowers),
			Upper: combine("min", uppers),
		})
	}

	for ci, c := range cs {
		if !used[ci] {
			nest.Where = append(nest.Where, c)
		}
	}

	return nest, nil
}

// boundOf reads c as a bound on v. The other side of the comparison must not
// refer to v or to any inner iterator.
func boundOf(v string, c Constraint, later map[string]bool) (lo, hi Expr, ok bool) {
	isV := func(e Expr) bool {
		id, ok := e.(ident)
		return ok && id.name == v
	}
	free := func(e Expr) bool {
		for _, n := range Vars(e) {
			if later[n] {
				return false
			}
		}
		return true
	}
	plus := func(e Expr, d int) Expr {
		if n, ok := e.(num); ok {
			return num{v: n.v + d}
		}
		return binary{op: '+', l: e, r: num{v: d}}
	}

	op, other := c.Op, c.R
	switch {
	case isV(c.L) && free(c.R):
	case isV(c.R) && free(c.L):
		op, other = mirror(c.Op), c.L
	default:
		return nil, nil, false
	}

	switch op {
	case ">=":
		return other, nil, true
	case ">":
		return plus(other, 1), nil, true
	case "<=":
		return nil, other, true
	case "<":
		return nil, plus(other, -1), true
	case "==":
		return other, other, true
	}

	return nil, nil, false
}

func mirror(op string) string {
	switch op {
	case "<":
		return ">"
	case "<=":
		return ">="
	case ">":
		return "<"
	case ">=":
		return "<="
	}
	return op
}

func combine(fn string, es []Expr) Expr {
	if len(es) == 1 {
		return es[0]
	}
	return call{fn: fn, args: es}
}

// Dim returns the number of iterators.
func (n *LoopNest) Dim() int {
	return len(n.Iterators)
}

func (n *LoopNest) freeVars() []string {
	var exprs []Expr
	for _, it := range n.Iterators {
		exprs = append(exprs, it.Lower, it.Upper)
	}
	for _, c := range n.Where {
		exprs = append(exprs, c.L, c.R)
	}

	iters := make(map[string]bool)
	for _, it := range n.Iterators {
		iters[it.Name] = true
	}

	var out []string
	seen := make(map[string]bool)
	for _, e := range exprs {
		for _, v := range Vars(e) {
			if !iters[v] && !seen[v] {
				seen[v] = true
				out = append(out, v)
			}
		}
	}

	return out
}

// Enumerate lists the points of the nest. If a bound depends on a declared
// but unbound parameter, the result is a symbolic set.
func (n *LoopNest) Enumerate(params Params) (iset.Set, error) {
	unresolved, unknown := params.classify(n.freeVars(), nil)
	if len(unknown) > 0 {
		return iset.Set{}, fmt.Errorf("%w: %s in %s",
			ErrUnboundIdentifier, strings.Join(unknown, ", "), n.Name)
	}
	if len(unresolved) > 0 {
		return iset.SymbolicSet(unresolved...), nil
	}

	env := params.Env()
	coords := make([]int, len(n.Iterators))
	var points []iset.Tuple

	var walk func(level int) error
	walk = func(level int) error {
		if level == len(n.Iterators) {
			ok, err := allHold(n.Where, env)
			if err != nil || !ok {
				return err
			}
			if len(points) >= MaxPoints {
				return fmt.Errorf("%w: %s", ErrTooLarge, n.Name)
			}
			points = append(points, iset.NewTuple(n.Name, coords...))
			return nil
		}

		it := n.Iterators[level]
		lo, err := it.Lower.Eval(env)
		if err != nil {
			return err
		}
		hi, err := it.Upper.Eval(env)
		if err != nil {
			return err
		}

		for v := lo; v <= hi; v++ {
			env[it.Name] = v
			coords[level] = v
			if err := walk(level + 1); err != nil {
				return err
			}
		}
		delete(env, it.Name)

		return nil
	}

	if err := walk(0); err != nil {
		return iset.Set{}, fmt.Errorf("enumerating %s: %w", n.Name, err)
	}

	return iset.NewSet(points...), nil
}

func (n *LoopNest) String() string {
	names := make([]string, len(n.Iterators))
	parts := make([]string, 0, len(n.Iterators)+len(n.Where))
	for i, it := range n.Iterators {
		names[i] = it.Name
		parts = append(parts, fmt.Sprintf("%s <= %s <= %s", it.Lower, it.Name, it.Upper))
	}
	for _, c := range n.Where {
		parts = append(parts, c.String())
	}

	return fmt.Sprintf("{ %s[%s] : %s }",
		n.Name, strings.Join(names, ", "), strings.Join(parts, " and "))
}
