package gridgraph

import (
	"strconv"
)

// Point is a grid coordinate. Y grows downwards: "top" is the smaller Y.
type Point struct {
	X, Y int
}

// NodeID returns the plain node identifier "node_<x>_<y>" used when no
// element occupies p.
func (p Point) NodeID() string {
	return "node_" + strconv.Itoa(p.X) + "_" + strconv.Itoa(p.Y)
}

func (p Point) String() string {
	return strconv.Itoa(p.X) + "," + strconv.Itoa(p.Y)
}

// Side is the face of a coordinate a wire approaches from.
type Side uint8

const (
	// Left is the face towards smaller X.
	Left Side = iota
	// Right is the face towards larger X.
	Right
	// Top is the face towards smaller Y.
	Top
	// Bottom is the face towards larger Y.
	Bottom
)

func (s Side) String() string {
	switch s {
	case Left:
		return "left"
	case Right:
		return "right"
	case Top:
		return "top"
	case Bottom:
		return "bottom"
	default:
		return "side(" + strconv.Itoa(int(s)) + ")"
	}
}

// UnitSegment is a wire of length one between adjacent grid points.
// A is always the left (horizontal) or upper (vertical) endpoint, so a
// segment drawn either way round has a single representation.
type UnitSegment struct {
	A, B Point
}

// Horizontal reports whether the segment runs along X.
func (u UnitSegment) Horizontal() bool { return u.A.Y == u.B.Y }

// Key returns the canonical "x1,y1-x2,y2" form.
func (u UnitSegment) Key() string { return u.A.String() + "-" + u.B.String() }

func (u UnitSegment) String() string { return u.Key() }

// unitSegment builds a canonical segment from two adjacent points.
func unitSegment(p, q Point) UnitSegment {
	if q.X < p.X || q.Y < p.Y {
		p, q = q, p
	}

	return UnitSegment{A: p, B: q}
}
