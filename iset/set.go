package iset

import (
	"sort"
	"strings"
)

// Set is an immutable set of tuples. The zero value is the empty set.
type Set struct {
	elems  map[string]Tuple
	params []string
}

// NewSet creates a set holding the given tuples. Duplicates are merged.
func NewSet(tuples ...Tuple) Set {
	s := Set{elems: make(map[string]Tuple, len(tuples))}
	for _, t := range tuples {
		s.elems[t.Key()] = t
	}

	return s
}

// SymbolicSet creates a set whose points depend on the named unresolved
// parameters.
func SymbolicSet(params ...string) Set {
	return Set{params: mergeParams(nil, params)}
}

// IsSymbolic reports whether the set still depends on unresolved parameters.
func (s Set) IsSymbolic() bool {
	return len(s.params) > 0
}

// Params returns the residual parameters of a symbolic set.
func (s Set) Params() []string {
	return append([]string(nil), s.params...)
}

// Len returns the number of points. It is zero for symbolic sets; use Card to
// tell the two apart.
func (s Set) Len() int {
	return len(s.elems)
}

// IsEmpty reports whether the set has no points. A symbolic set is never
// known to be empty.
func (s Set) IsEmpty() bool {
	return !s.IsSymbolic() && len(s.elems) == 0
}

// Contains reports whether t is a point of the set.
func (s Set) Contains(t Tuple) bool {
	_, ok := s.elems[t.Key()]
	return ok
}

// Tuples returns the points of the set in Compare order.
func (s Set) Tuples() []Tuple {
	out := make([]Tuple, 0, len(s.elems))
	for _, t := range s.elems {
		out = append(out, t)
	}

	sort.Slice(out, func(i, j int) bool {
		return Compare(out[i], out[j]) < 0
	})

	return out
}

// Union returns the points in either set.
func (s Set) Union(o Set) Set {
	if s.IsSymbolic() || o.IsSymbolic() {
		return SymbolicSet(mergeParams(s.params, o.params)...)
	}

	out := Set{elems: make(map[string]Tuple, len(s.elems)+len(o.elems))}
	for k, t := range s.elems {
		out.elems[k] = t
	}
	for k, t := range o.elems {
		out.elems[k] = t
	}

	return out
}

// Intersect returns the points in both sets.
func (s Set) Intersect(o Set) Set {
	if s.IsSymbolic() || o.IsSymbolic() {
		return SymbolicSet(mergeParams(s.params, o.params)...)
	}

	small, large := s, o
	if len(small.elems) > len(large.elems) {
		small, large = large, small
	}

	out := Set{elems: make(map[string]Tuple)}
	for k, t := range small.elems {
		if _, ok := large.elems[k]; ok {
			out.elems[k] = t
		}
	}

	return out
}

// Subtract returns the points of s that are not in o.
func (s Set) Subtract(o Set) Set {
	if s.IsSymbolic() || o.IsSymbolic() {
		return SymbolicSet(mergeParams(s.params, o.params)...)
	}

	out := Set{elems: make(map[string]Tuple)}
	for k, t := range s.elems {
		if _, ok := o.elems[k]; !ok {
			out.elems[k] = t
		}
	}

	return out
}

// IsSubset reports whether every point of s is in o. It is false whenever
// either set is symbolic.
func (s Set) IsSubset(o Set) bool {
	if s.IsSymbolic() || o.IsSymbolic() {
		return false
	}

	for k := range s.elems {
		if _, ok := o.elems[k]; !ok {
			return false
		}
	}

	return true
}

// IsEqual reports whether both sets hold the same points.
func (s Set) IsEqual(o Set) bool {
	return len(s.elems) == len(o.elems) && s.IsSubset(o)
}

// Identity returns the relation mapping every point to itself.
func (s Set) Identity() Map {
	if s.IsSymbolic() {
		return SymbolicMap(s.params...)
	}

	b := NewMapBuilder()
	for _, t := range s.elems {
		b.Add(t, t)
	}

	return b.Build()
}

// Apply returns the image of the set under m.
func (s Set) Apply(m Map) Set {
	if s.IsSymbolic() || m.IsSymbolic() {
		return SymbolicSet(mergeParams(s.params, m.params)...)
	}

	out := Set{elems: make(map[string]Tuple)}
	for k := range s.elems {
		r, ok := m.rows[k]
		if !ok {
			continue
		}
		for tk, t := range r.to {
			out.elems[tk] = t
		}
	}

	return out
}

// Card counts the points of the set. The result is a constant unless the set
// is symbolic.
func (s Set) Card() Count {
	if s.IsSymbolic() {
		return symbolicCount(s.params)
	}

	return Constant(int64(len(s.elems)))
}

// String prints the set in the { S[0]; S[1] } notation.
func (s Set) String() string {
	if s.IsSymbolic() {
		return "[" + strings.Join(s.params, ", ") + "] -> { ? }"
	}

	if len(s.elems) == 0 {
		return "{ }"
	}

	tuples := s.Tuples()
	parts := make([]string, len(tuples))
	for i, t := range tuples {
		parts[i] = t.String()
	}

	return "{ " + strings.Join(parts, "; ") + " }"
}

func mergeParams(a, b []string) []string {
	if len(a) == 0 && len(b) == 0 {
		return nil
	}

	seen := make(map[string]bool, len(a)+len(b))
	out := make([]string, 0, len(a)+len(b))
	for _, list := range [][]string{a, b} {
		for _, p := range list {
			if !seen[p] {
				seen[p] = true
				out = append(out, p)
			}
		}
	}
	sort.Strings(out)

	return out
}
