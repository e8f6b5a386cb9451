// Package iset provides the integer set algebra that the dataflow analysis is
// built on.
//
// Sets and maps (relations) are explicit collections of named integer tuples.
// A set may span several named spaces, so it plays the role of a union set. All
// values are immutable: every operation returns a fresh value and never
// modifies its operands, so values can be shared freely.
//
// A set built while a loop-nest parameter is still unresolved is symbolic. It
// carries the names of the residual parameters instead of points, and every
// operation that touches it yields another symbolic value. Counting a symbolic
// value produces a symbolic Count, which refuses to convert into a scalar.
package iset

import (
	"strconv"
	"strings"
)

// Tuple is a point in a named integer space, such as S[1, 2] or PE[0, 3].
type Tuple struct {
	Name   string
	Coords []int

	parts []Tuple
}

// NewTuple creates a tuple in the space called name.
func NewTuple(name string, coords ...int) Tuple {
	c := make([]int, len(coords))
	copy(c, coords)

	return Tuple{Name: name, Coords: c}
}

// Wrap pairs two tuples into the wrapped tuple [a -> b]. Wrapped tuples are
// how space-time coordinates are represented.
func Wrap(a, b Tuple) Tuple {
	coords := make([]int, 0, len(a.Coords)+len(b.Coords))
	coords = append(coords, a.Coords...)
	coords = append(coords, b.Coords...)

	return Tuple{
		Name:   "[" + a.Name + "->" + b.Name + "]",
		Coords: coords,
		parts:  []Tuple{a, b},
	}
}

// IsWrapped reports whether the tuple was built by Wrap.
func (t Tuple) IsWrapped() bool {
	return len(t.parts) == 2
}

// Unwrap returns the two factors of a wrapped tuple.
func (t Tuple) Unwrap() (Tuple, Tuple, bool) {
	if !t.IsWrapped() {
		return Tuple{}, Tuple{}, false
	}

	return t.parts[0], t.parts[1], true
}

// Dim returns the number of coordinates of the tuple.
func (t Tuple) Dim() int {
	return len(t.Coords)
}

// SameSpace reports whether two tuples live in the same space.
func (t Tuple) SameSpace(o Tuple) bool {
	return t.Name == o.Name && len(t.Coords) == len(o.Coords)
}

// Key returns a string that uniquely identifies the tuple.
func (t Tuple) Key() string {
	var sb strings.Builder
	t.writeKey(&sb)

	return sb.String()
}

func (t Tuple) writeKey(sb *strings.Builder) {
	if t.IsWrapped() {
		sb.WriteByte('[')
		t.parts[0].writeKey(sb)
		sb.WriteString("->")
		t.parts[1].writeKey(sb)
		sb.WriteByte(']')

		return
	}

	sb.WriteString(t.Name)
	sb.WriteByte('[')
	for i, c := range t.Coords {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(strconv.Itoa(c))
	}
	sb.WriteByte(']')
}

// String prints the tuple in the S[1, 2] notation.
func (t Tuple) String() string {
	if t.IsWrapped() {
		return "[" + t.parts[0].String() + " -> " + t.parts[1].String() + "]"
	}

	parts := make([]string, len(t.Coords))
	for i, c := range t.Coords {
		parts[i] = strconv.Itoa(c)
	}

	return t.Name + "[" + strings.Join(parts, ", ") + "]"
}

// Compare orders tuples by space name, then arity, then lexicographically by
// coordinates. It returns -1, 0 or 1.
func Compare(a, b Tuple) int {
	if a.Name != b.Name {
		if a.Name < b.Name {
			return -1
		}
		return 1
	}

	if len(a.Coords) != len(b.Coords) {
		if len(a.Coords) < len(b.Coords) {
			return -1
		}
		return 1
	}

	return lexCompare(a.Coords, b.Coords)
}

func lexCompare(a, b []int) int {
	for i := range a {
		switch {
		case a[i] < b[i]:
			return -1
		case a[i] > b[i]:
			return 1
		}
	}

	return 0
}
