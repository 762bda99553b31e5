package stickercube

import (
	"fmt"
	"math"
)

// Vector is a point or direction in cube space.
//
// The cube is centered on the origin. Cubie centers sit on {-1, 0, 1} and
// facets sit half a unit further out, at ±1.5 along their face normal.
type Vector struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

// Principal axes.
var (
	XAxis = Vector{X: 1}
	YAxis = Vector{Y: 1}
	ZAxis = Vector{Z: 1}
)

// Neg returns the vector pointing the opposite way.
func (v Vector) Neg() Vector {
	return Vector{X: -v.X, Y: -v.Y, Z: -v.Z}
}

func (v Vector) String() string {
	return fmt.Sprintf("(%g, %g, %g)", v.X, v.Y, v.Z)
}

// Rotation is the angle of a single turn.
type Rotation int

const (
	Clockwise        Rotation = iota // -90 degrees
	CounterClockwise                 // +90 degrees
	HalfTurn                         // 180 degrees
)

func (r Rotation) String() string {
	switch r {
	case Clockwise:
		return "cw"
	case CounterClockwise:
		return "ccw"
	case HalfTurn:
		return "half"
	default:
		return "?"
	}
}

// Radians returns the mathematical angle of the rotation. Clockwise is
// negative because turns are viewed looking at the face from outside.
func (r Rotation) Radians() float64 {
	switch r {
	case Clockwise:
		return -math.Pi / 2
	case CounterClockwise:
		return math.Pi / 2
	case HalfTurn:
		return math.Pi
	default:
		panic(fmt.Errorf("stickercube: invalid rotation %d", int(r)))
	}
}

// Rotate turns v by r about axis, which must be a principal axis or its
// negation. The component along the axis is kept; the other two rotate in
// the perpendicular plane. Rotating about a negated axis is the same as
// rotating the opposite way about the positive one.
//
// Results are snapped to the nearest 0.5 so repeated turns never drift.
// Any other axis panics with ErrInvalidAxis.
func Rotate(v, axis Vector, r Rotation) Vector {
	theta := r.Radians()
	switch axis {
	case XAxis, XAxis.Neg():
		theta *= axis.X
		v.Y, v.Z = rotate2D(v.Y, v.Z, theta)
	case YAxis, YAxis.Neg():
		theta *= axis.Y
		v.Z, v.X = rotate2D(v.Z, v.X, theta)
	case ZAxis, ZAxis.Neg():
		theta *= axis.Z
		v.X, v.Y = rotate2D(v.X, v.Y, theta)
	default:
		panic(fmt.Errorf("%w: %v", ErrInvalidAxis, axis))
	}
	return v
}

// rotate2D rotates (a, b) counter-clockwise by theta and snaps the result.
func rotate2D(a, b, theta float64) (float64, float64) {
	sin, cos := math.Sincos(theta)
	return snap(a*cos - b*sin), snap(a*sin + b*cos)
}

// snapped returns v with every component snapped.
func (v Vector) snapped() Vector {
	return Vector{X: snap(v.X), Y: snap(v.Y), Z: snap(v.Z)}
}

// snap rounds to the nearest half unit. Negative zero is folded to zero so
// snapped vectors compare and encode cleanly.
func snap(f float64) float64 {
	r := math.Round(f*2) / 2
	if r == 0 {
		return 0
	}
	return r
}
