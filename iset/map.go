package iset

import (
	"sort"
	"strconv"
	"strings"
)

// Pair is one element of a relation.
type Pair struct {
	From, To Tuple
}

type row struct {
	from Tuple
	to   map[string]Tuple
}

// Map is an immutable binary relation between tuples. The zero value is the
// empty relation.
type Map struct {
	rows   map[string]*row
	params []string
}

// MapBuilder accumulates pairs into a Map. A builder must not be used after
// Build.
type MapBuilder struct {
	rows map[string]*row
}

// NewMapBuilder creates an empty builder.
func NewMapBuilder() *MapBuilder {
	return &MapBuilder{rows: make(map[string]*row)}
}

// Add inserts the pair from -> to.
func (b *MapBuilder) Add(from, to Tuple) {
	b.add(from.Key(), from, to.Key(), to)
}

func (b *MapBuilder) add(fk string, from Tuple, tk string, to Tuple) {
	r, ok := b.rows[fk]
	if !ok {
		r = &row{from: from, to: make(map[string]Tuple)}
		b.rows[fk] = r
	}
	r.to[tk] = to
}

func (b *MapBuilder) addRow(fk string, from Tuple, to map[string]Tuple) {
	for tk, t := range to {
		b.add(fk, from, tk, t)
	}
}

// Build returns the accumulated relation.
func (b *MapBuilder) Build() Map {
	m := Map{rows: b.rows}
	b.rows = nil

	return m
}

// NewMap creates a relation from pairs.
func NewMap(pairs ...Pair) Map {
	b := NewMapBuilder()
	for _, p := range pairs {
		b.Add(p.From, p.To)
	}

	return b.Build()
}

// SymbolicMap creates a relation that depends on unresolved parameters.
func SymbolicMap(params ...string) Map {
	return Map{params: mergeParams(nil, params)}
}

// IsSymbolic reports whether the relation depends on unresolved parameters.
func (m Map) IsSymbolic() bool {
	return len(m.params) > 0
}

// Params returns the residual parameters of a symbolic relation.
func (m Map) Params() []string {
	return append([]string(nil), m.params...)
}

// Len returns the number of pairs.
func (m Map) Len() int {
	n := 0
	for _, r := range m.rows {
		n += len(r.to)
	}

	return n
}

// IsEmpty reports whether the relation has no pairs.
func (m Map) IsEmpty() bool {
	return !m.IsSymbolic() && m.Len() == 0
}

// Contains reports whether from -> to is in the relation.
func (m Map) Contains(from, to Tuple) bool {
	r, ok := m.rows[from.Key()]
	if !ok {
		return false
	}
	_, ok = r.to[to.Key()]

	return ok
}

// Pairs returns all pairs, sorted by source and then by target.
func (m Map) Pairs() []Pair {
	out := make([]Pair, 0, m.Len())
	for _, r := range m.rows {
		for _, t := range r.to {
			out = append(out, Pair{From: r.from, To: t})
		}
	}

	sort.Slice(out, func(i, j int) bool {
		if c := Compare(out[i].From, out[j].From); c != 0 {
			return c < 0
		}
		return Compare(out[i].To, out[j].To) < 0
	})

	return out
}

// Domain returns the set of sources.
func (m Map) Domain() Set {
	if m.IsSymbolic() {
		return SymbolicSet(m.params...)
	}

	out := Set{elems: make(map[string]Tuple, len(m.rows))}
	for k, r := range m.rows {
		if len(r.to) > 0 {
			out.elems[k] = r.from
		}
	}

	return out
}

// Range returns the set of targets.
func (m Map) Range() Set {
	if m.IsSymbolic() {
		return SymbolicSet(m.params...)
	}

	out := Set{elems: make(map[string]Tuple)}
	for _, r := range m.rows {
		for k, t := range r.to {
			out.elems[k] = t
		}
	}

	return out
}

// Reverse swaps sources and targets.
func (m Map) Reverse() Map {
	if m.IsSymbolic() {
		return m
	}

	b := NewMapBuilder()
	for fk, r := range m.rows {
		for tk, t := range r.to {
			b.add(tk, t, fk, r.from)
		}
	}

	return b.Build()
}

// Union returns the pairs in either relation.
func (m Map) Union(o Map) Map {
	if m.IsSymbolic() || o.IsSymbolic() {
		return SymbolicMap(mergeParams(m.params, o.params)...)
	}

	b := NewMapBuilder()
	for fk, r := range m.rows {
		b.addRow(fk, r.from, r.to)
	}
	for fk, r := range o.rows {
		b.addRow(fk, r.from, r.to)
	}

	return b.Build()
}

// Intersect returns the pairs in both relations.
func (m Map) Intersect(o Map) Map {
	if m.IsSymbolic() || o.IsSymbolic() {
		return SymbolicMap(mergeParams(m.params, o.params)...)
	}

	b := NewMapBuilder()
	for fk, r := range m.rows {
		other, ok := o.rows[fk]
		if !ok {
			continue
		}
		for tk, t := range r.to {
			if _, ok := other.to[tk]; ok {
				b.add(fk, r.from, tk, t)
			}
		}
	}

	return b.Build()
}

// Subtract returns the pairs of m that are not in o.
func (m Map) Subtract(o Map) Map {
	if m.IsSymbolic() || o.IsSymbolic() {
		return SymbolicMap(mergeParams(m.params, o.params)...)
	}

	b := NewMapBuilder()
	for fk, r := range m.rows {
		other := o.rows[fk]
		for tk, t := range r.to {
			if other != nil {
				if _, ok := other.to[tk]; ok {
					continue
				}
			}
			b.add(fk, r.from, tk, t)
		}
	}

	return b.Build()
}

// IsSubset reports whether every pair of m is in o.
func (m Map) IsSubset(o Map) bool {
	if m.IsSymbolic() || o.IsSymbolic() {
		return false
	}

	for fk, r := range m.rows {
		if len(r.to) == 0 {
			continue
		}
		other, ok := o.rows[fk]
		if !ok {
			return false
		}
		for tk := range r.to {
			if _, ok := other.to[tk]; !ok {
				return false
			}
		}
	}

	return true
}

// IsEqual reports whether both relations hold the same pairs.
func (m Map) IsEqual(o Map) bool {
	return m.Len() == o.Len() && m.IsSubset(o)
}

// IntersectDomain keeps the pairs whose source is in s.
func (m Map) IntersectDomain(s Set) Map {
	if m.IsSymbolic() || s.IsSymbolic() {
		return SymbolicMap(mergeParams(m.params, s.params)...)
	}

	b := NewMapBuilder()
	for fk, r := range m.rows {
		if _, ok := s.elems[fk]; ok {
			b.addRow(fk, r.from, r.to)
		}
	}

	return b.Build()
}

// IntersectRange keeps the pairs whose target is in s.
func (m Map) IntersectRange(s Set) Map {
	if m.IsSymbolic() || s.IsSymbolic() {
		return SymbolicMap(mergeParams(m.params, s.params)...)
	}

	b := NewMapBuilder()
	for fk, r := range m.rows {
		for tk, t := range r.to {
			if _, ok := s.elems[tk]; ok {
				b.add(fk, r.from, tk, t)
			}
		}
	}

	return b.Build()
}

// ApplyRange composes the relations: the result maps a to c whenever m maps a
// to some b and o maps b to c.
func (m Map) ApplyRange(o Map) Map {
	if m.IsSymbolic() || o.IsSymbolic() {
		return SymbolicMap(mergeParams(m.params, o.params)...)
	}

	b := NewMapBuilder()
	for fk, r := range m.rows {
		for mid := range r.to {
			next, ok := o.rows[mid]
			if !ok {
				continue
			}
			b.addRow(fk, r.from, next.to)
		}
	}

	return b.Build()
}

// Product pairs two relations: [a -> c] maps to [b -> d] whenever m maps a to
// b and o maps c to d.
func (m Map) Product(o Map) Map {
	if m.IsSymbolic() || o.IsSymbolic() {
		return SymbolicMap(mergeParams(m.params, o.params)...)
	}

	b := NewMapBuilder()
	for _, r1 := range m.rows {
		for _, r2 := range o.rows {
			from := Wrap(r1.from, r2.from)
			fk := from.Key()
			for _, t1 := range r1.to {
				for _, t2 := range r2.to {
					to := Wrap(t1, t2)
					b.add(fk, from, to.Key(), to)
				}
			}
		}
	}

	return b.Build()
}

// RangeProduct maps a to [b -> c] whenever m maps a to b and o maps a to c.
func (m Map) RangeProduct(o Map) Map {
	if m.IsSymbolic() || o.IsSymbolic() {
		return SymbolicMap(mergeParams(m.params, o.params)...)
	}

	b := NewMapBuilder()
	for fk, r1 := range m.rows {
		r2, ok := o.rows[fk]
		if !ok {
			continue
		}
		for _, t1 := range r1.to {
			for _, t2 := range r2.to {
				to := Wrap(t1, t2)
				b.add(fk, r1.from, to.Key(), to)
			}
		}
	}

	return b.Build()
}

// LexMax keeps, for every source and every target space, only the
// lexicographically largest target.
func (m Map) LexMax() Map {
	if m.IsSymbolic() {
		return m
	}

	b := NewMapBuilder()
	for fk, r := range m.rows {
		best := make(map[string]Tuple)
		for _, t := range r.to {
			space := spaceKey(t)
			cur, ok := best[space]
			if !ok || lexCompare(t.Coords, cur.Coords) > 0 {
				best[space] = t
			}
		}
		for _, t := range best {
			b.add(fk, r.from, t.Key(), t)
		}
	}

	return b.Build()
}

// Card counts, for every source, the number of targets. Sum reduces the
// result to a single total.
func (m Map) Card() Count {
	if m.IsSymbolic() {
		return symbolicCount(m.params)
	}

	points := make(map[string]countPoint, len(m.rows))
	for fk, r := range m.rows {
		if len(r.to) == 0 {
			continue
		}
		points[fk] = countPoint{at: r.from, n: int64(len(r.to))}
	}

	return Count{points: points}
}

// String prints the relation in the { S[0] -> A[0]; ... } notation.
func (m Map) String() string {
	if m.IsSymbolic() {
		return "[" + strings.Join(m.params, ", ") + "] -> { ? }"
	}

	pairs := m.Pairs()
	if len(pairs) == 0 {
		return "{ }"
	}

	parts := make([]string, len(pairs))
	for i, p := range pairs {
		parts[i] = p.From.String() + " -> " + p.To.String()
	}

	return "{ " + strings.Join(parts, "; ") + " }"
}

func spaceKey(t Tuple) string {
	return t.Name + "/" + strconv.Itoa(len(t.Coords))
}
