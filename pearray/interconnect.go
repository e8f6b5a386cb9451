package pearray

import (
	"fmt"

	"github.com/sarchlab/tenet/iset"
)

// connect builds the neighbor relation of a topology over the PE domain.
func connect(domain iset.Set, t Topology) (iset.Map, error) {
	if domain.IsSymbolic() {
		return iset.SymbolicMap(domain.Params()...), nil
	}

	switch t {
	case Custom:
		return iset.Map{}, nil
	case Mesh:
		return connectSides(domain, Sides, false)
	case Torus:
		return connectSides(domain, Sides, true)
	case Systolic:
		return connectSides(domain, []Side{West, South}, false)
	case Linear:
		if dimOf(domain) != 1 {
			return iset.Map{}, fmt.Errorf("%w: %s needs a 1-D domain", ErrTopologyDim, t)
		}
		return connectSides(domain, []Side{East, West}, false)
	default:
		return iset.Map{}, fmt.Errorf("%w: %q", ErrUnknownTopology, t)
	}
}

// connectSides links every PE to the neighbor on each of the given sides when
// that neighbor exists. A 1-D domain only uses the East and West steps. With
// wrap set, steps past an edge continue from the opposite edge.
func connectSides(domain iset.Set, sides []Side, wrap bool) (iset.Map, error) {
	dim := dimOf(domain)
	if dim < 1 || dim > 2 {
		return iset.Map{}, fmt.Errorf("%w: %d-D domain", ErrTopologyDim, dim)
	}

	lo, hi := extent(domain, dim)
	b := iset.NewMapBuilder()

	for _, pe := range domain.Tuples() {
		for _, side := range sides {
			dx, dy := side.Offset()
			if dim == 1 && dy != 0 {
				continue
			}

			coords := []int{pe.Coords[0] + dx}
			if dim == 2 {
				coords = append(coords, pe.Coords[1]+dy)
			}
			if wrap {
				for i := range coords {
					size := hi[i] - lo[i] + 1
					coords[i] = lo[i] + ((coords[i]-lo[i])%size+size)%size
				}
			}

			n := iset.NewTuple(pe.Name, coords...)
			if n.Key() != pe.Key() && domain.Contains(n) {
				b.Add(pe, n)
			}
		}
	}

	return b.Build(), nil
}

func dimOf(domain iset.Set) int {
	for _, t := range domain.Tuples() {
		return t.Dim()
	}
	return 0
}

func extent(domain iset.Set, dim int) (lo, hi []int) {
	lo = make([]int, dim)
	hi = make([]int, dim)

	for i, t := range domain.Tuples() {
		for d := 0; d < dim; d++ {
			if i == 0 || t.Coords[d] < lo[d] {
				lo[d] = t.Coords[d]
			}
			if i == 0 || t.Coords[d] > hi[d] {
				hi[d] = t.Coords[d]
			}
		}
	}

	return lo, hi
}
