package affine

import (
	"fmt"
	"strings"

	"github.com/sarchlab/tenet/iset"
)

// TupleFunc maps tuples of one space to tuples of another, for example
// S[i, j] -> A[i + j] or PE[x, y] -> PE[x + 1, y] : x < 3.
type TupleFunc struct {
	InName  string
	InVars  []string
	OutName string
	Out     []Expr
	Where   []Constraint
}

// ParseTupleFunc parses a function description.
func ParseTupleFunc(src string) (*TupleFunc, error) {
	p, err := newParser(stripBraces(src))
	if err != nil {
		return nil, err
	}

	f := &TupleFunc{}
	f.InName, f.InVars, err = p.parseTupleHead()
	if err != nil {
		return nil, err
	}

	if err := p.expect("->"); err != nil {
		return nil, err
	}

	out := p.next()
	if out.kind != tokIdent {
		return nil, p.errorf("expected tuple name, found %s", out)
	}
	f.OutName = out.text

	if err := p.expect("["); err != nil {
		return nil, err
	}
	f.Out, err = p.parseExprList("]")
	if err != nil {
		return nil, err
	}

	if p.accept(":") {
		f.Where, err = p.parseConstraints()
		if err != nil {
			return nil, err
		}
	}

	if err := p.expectEOF(); err != nil {
		return nil, err
	}

	return f, nil
}

func (f *TupleFunc) freeVars() []string {
	exprs := append([]Expr(nil), f.Out...)
	for _, c := range f.Where {
		exprs = append(exprs, c.L, c.R)
	}

	var out []string
	seen := make(map[string]bool)
	for _, e := range exprs {
		for _, v := range Vars(e) {
			if !seen[v] {
				seen[v] = true
				out = append(out, v)
			}
		}
	}

	return out
}

// Over instantiates the function on every point of domain that lives in the
// function's input space. Points of other spaces are ignored.
func (f *TupleFunc) Over(domain iset.Set, params Params) (iset.Map, error) {
	if domain.IsSymbolic() {
		return iset.SymbolicMap(domain.Params()...), nil
	}

	bound := make(map[string]bool, len(f.InVars))
	for _, v := range f.InVars {
		bound[v] = true
	}

	unresolved, unknown := params.classify(f.freeVars(), bound)
	if len(unknown) > 0 {
		return iset.Map{}, fmt.Errorf("%w: %s in %s",
			ErrUnboundIdentifier, strings.Join(unknown, ", "), f)
	}
	if len(unresolved) > 0 {
		return iset.SymbolicMap(unresolved...), nil
	}

	env := params.Env()
	b := iset.NewMapBuilder()
	coords := make([]int, len(f.Out))

	for _, t := range domain.Tuples() {
		if t.Name != f.InName || t.Dim() != len(f.InVars) {
			continue
		}

		for i, v := range f.InVars {
			env[v] = t.Coords[i]
		}

		ok, err := allHold(f.Where, env)
		if err != nil {
			return iset.Map{}, fmt.Errorf("applying %s to %s: %w", f, t, err)
		}
		if !ok {
			continue
		}

		for i, e := range f.Out {
			coords[i], err = e.Eval(env)
			if err != nil {
				return iset.Map{}, fmt.Errorf("applying %s to %s: %w", f, t, err)
			}
		}

		b.Add(t, iset.NewTuple(f.OutName, coords...))
	}

	return b.Build(), nil
}

func (f *TupleFunc) String() string {
	outs := make([]string, len(f.Out))
	for i, e := range f.Out {
		outs[i] = e.String()
	}

	s := fmt.Sprintf("%s[%s] -> %s[%s]",
		f.InName, strings.Join(f.InVars, ", "), f.OutName, strings.Join(outs, ", "))
	if len(f.Where) > 0 {
		cs := make([]string, len(f.Where))
		for i, c := range f.Where {
			cs[i] = c.String()
		}
		s += " : " + strings.Join(cs, " and ")
	}

	return "{ " + s + " }"
}
