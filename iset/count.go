package iset

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

type countPoint struct {
	at Tuple
	n  int64
}

// Count is the result of counting a set or a relation. It is one of
//
//   - a constant, produced by Set.Card or by Sum;
//   - a function of domain points, produced by Map.Card;
//   - a symbolic value, produced by counting anything symbolic.
//
// Only a constant converts into a scalar with Value.
type Count struct {
	params []string
	points map[string]countPoint
	value  int64
}

// Constant creates a constant count.
func Constant(v int64) Count {
	return Count{value: v}
}

func symbolicCount(params []string) Count {
	return Count{params: append([]string(nil), params...)}
}

// IsSymbolic reports whether the count depends on unresolved parameters.
func (c Count) IsSymbolic() bool {
	return len(c.params) > 0
}

// Params returns the residual parameters of a symbolic count.
func (c Count) Params() []string {
	return append([]string(nil), c.params...)
}

// At returns the value of a per-point count at t.
func (c Count) At(t Tuple) (int64, bool) {
	p, ok := c.points[t.Key()]
	return p.n, ok
}

// Sum adds up a per-point count over all domain points. Constants and
// symbolic counts are returned unchanged.
func (c Count) Sum() Count {
	if c.IsSymbolic() || c.points == nil {
		return c
	}

	var total int64
	for _, p := range c.points {
		total += p.n
	}

	return Constant(total)
}

// Value extracts the scalar of a constant count.
func (c Count) Value() (int64, error) {
	if c.IsSymbolic() {
		return 0, fmt.Errorf("%w: [%s]", ErrSymbolicCount, strings.Join(c.params, ", "))
	}

	if c.points != nil {
		return 0, fmt.Errorf("%w: %d domain points", ErrNotReduced, len(c.points))
	}

	return c.value, nil
}

// String prints the count.
func (c Count) String() string {
	switch {
	case c.IsSymbolic():
		return "[" + strings.Join(c.params, ", ") + "] -> { ? }"
	case c.points == nil:
		return "{ " + strconv.FormatInt(c.value, 10) + " }"
	}

	pts := make([]countPoint, 0, len(c.points))
	for _, p := range c.points {
		pts = append(pts, p)
	}
	sort.Slice(pts, func(i, j int) bool {
		return Compare(pts[i].at, pts[j].at) < 0
	})

	parts := make([]string, len(pts))
	for i, p := range pts {
		parts[i] = p.at.String() + " -> " + strconv.FormatInt(p.n, 10)
	}

	return "{ " + strings.Join(parts, "; ") + " }"
}
