package iset

import "sort"

// LexGT relates every point of a to every point of b in the same space that
// is lexicographically smaller.
func LexGT(a, b Set) Map {
	if a.IsSymbolic() || b.IsSymbolic() {
		return SymbolicMap(mergeParams(a.params, b.params)...)
	}

	bld := NewMapBuilder()
	for ak, x := range a.elems {
		for bk, y := range b.elems {
			if x.SameSpace(y) && lexCompare(x.Coords, y.Coords) > 0 {
				bld.add(ak, x, bk, y)
			}
		}
	}

	return bld.Build()
}

// LexPredecessor relates every point of a to the largest point of b in the
// same space that is lexicographically smaller. It equals LexGT(a, b).LexMax()
// but only sorts b instead of building the full comparison.
func LexPredecessor(a, b Set) Map {
	if a.IsSymbolic() || b.IsSymbolic() {
		return SymbolicMap(mergeParams(a.params, b.params)...)
	}

	spaces := make(map[string][]Tuple)
	for _, y := range b.elems {
		k := spaceKey(y)
		spaces[k] = append(spaces[k], y)
	}
	for _, list := range spaces {
		sort.Slice(list, func(i, j int) bool {
			return lexCompare(list[i].Coords, list[j].Coords) < 0
		})
	}

	bld := NewMapBuilder()
	for ak, x := range a.elems {
		list := spaces[spaceKey(x)]
		i := sort.Search(len(list), func(i int) bool {
			return lexCompare(list[i].Coords, x.Coords) >= 0
		})
		if i == 0 {
			continue
		}
		prev := list[i-1]
		bld.add(ak, x, prev.Key(), prev)
	}

	return bld.Build()
}
