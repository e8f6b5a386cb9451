// Package affine implements the small quasi-affine language used to describe
// iteration domains, access functions, mappings and interconnect links.
//
// Expressions combine integers, identifiers, +, -, * and the floor-division
// operators / and %. The functions min, max, floord and ceild are available.
// Constraints compare expressions with <, <=, >, >= and ==, may be chained
// (0 <= i < N) and are joined with "and".
//
//	S[i, j, k] : 0 <= i < N and 0 <= j < N and 0 <= k < N
//	S[i, j, k] -> PE[i % 8, j % 8]
package affine

import (
	"fmt"
	"strconv"
)

// Env binds identifiers to values.
type Env map[string]int

// Expr is an integer expression.
type Expr interface {
	// Eval computes the expression under env.
	Eval(env Env) (int, error)

	fmt.Stringer

	collectVars(add func(string))
}

// Vars returns the identifiers an expression refers to, in first-use order.
func Vars(e Expr) []string {
	var out []string
	seen := make(map[string]bool)
	e.collectVars(func(name string) {
		if !seen[name] {
			seen[name] = true
			out = append(out, name)
		}
	})

	return out
}

type num struct {
	v int
}

func (n num) Eval(Env) (int, error) { return n.v, nil }
func (n num) String() string { return strconv.Itoa(n.v) }
func (n num) collectVars(func(string)) {}

type ident struct {
	name string
}

func (id ident) Eval(env Env) (int, error) {
	v, ok := env[id.name]
	if !ok {
		return 0, fmt.Errorf("%w: %s", ErrUnboundIdentifier, id.name)
	}
	return v, nil
}

func (id ident) String() string { return id.name }
func (id ident) collectVars(add func(string)) { add(id.name) }

type neg struct {
	x Expr
}

func (n neg) Eval(env Env) (int, error) {
	v, err := n.x.Eval(env)
	return -v, err
}

func (n neg) String() string { return "-(" + n.x.String() + ")" }
func (n neg) collectVars(add func(string)) { n.x.collectVars(add) }

type binary struct {
	op   byte
	l, r Expr
}

func (b binary) Eval(env Env) (int, error) {
	l, err := b.l.Eval(env)
	if err != nil {
		return 0, err
	}

	r, err := b.r.Eval(env)
	if err != nil {
		return 0, err
	}

	switch b.op {
	case '+':
		return l + r, nil
	case '-':
		return l - r, nil
	case '*':
		return l * r, nil
	case '/':
		return floorDiv(l, r)
	case '%':
		q, err := floorDiv(l, r)
		if err != nil {
			return 0, err
		}
		return l - q*r, nil
	default:
		panic("invalid operator " + string(b.op))
	}
}

func (b binary) String() string {
	return "(" + b.l.String() + " " + string(b.op) + " " + b.r.String() + ")"
}

func (b binary) collectVars(add func(string)) {
	b.l.collectVars(add)
	b.r.collectVars(add)
}

type call struct {
	fn   string
	args []Expr
}

func (c call) Eval(env Env) (int, error) {
	vals := make([]int, len(c.args))
	for i, a := range c.args {
		v, err := a.Eval(env)
		if err != nil {
			return 0, err
		}
		vals[i] = v
	}

	switch c.fn {
	case "min":
		return minOf(vals), nil
	case "max":
		return maxOf(vals), nil
	case "floord":
		return floorDiv(vals[0], vals[1])
	case "ceild":
		q, err := floorDiv(-vals[0], vals[1])
		return -q, err
	default:
		panic("invalid function " + c.fn)
	}
}

func (c call) String() string {
	s := c.fn + "("
	for i, a := range c.args {
		if i > 0 {
			s += ", "
		}
		s += a.String()
	}

	return s + ")"
}

func (c call) collectVars(add func(string)) {
	for _, a := range c.args {
		a.collectVars(add)
	}
}

// functions lists the callable functions with their arity. A negative arity
// means at least that many arguments.
var functions = map[string]int{
	"min":    -2,
	"max":    -2,
	"floord": 2,
	"ceild":  2,
}

func floorDiv(a, b int) (int, error) {
	if b == 0 {
		return 0, ErrDivisionByZero
	}

	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}

	return q, nil
}

func minOf(vals []int) int {
	m := vals[0]
	for _, v := range vals[1:] {
		if v < m {
			m = v
		}
	}
	return m
}

func maxOf(vals []int) int {
	m := vals[0]
	for _, v := range vals[1:] {
		if v > m {
			m = v
		}
	}
	return m
}
