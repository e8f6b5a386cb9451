package pearray

// Side names one of the four directions of a 2-D PE mesh.
type Side int

const (
	North Side = iota
	East
	South
	West
)

// Sides lists all directions in the order a mesh connects them.
var Sides = []Side{North, East, South, West}

// Offset returns the coordinate step towards the neighbor on this side. North
// increases y and East increases x.
func (s Side) Offset() (dx, dy int) {
	switch s {
	case North:
		return 0, 1
	case South:
		return 0, -1
	case East:
		return 1, 0
	case West:
		return -1, 0
	default:
		panic("invalid side")
	}
}
