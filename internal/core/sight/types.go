// Package sight computes 2-D line-of-sight geometry: it truncates rays
// against opaque wall segments so that only the portion visible from the
// ray's origin remains.
package sight

import (
	"errors"
	"fmt"
	"math"
)

var (
	// ErrInvalidCoordinate is returned when a coordinate is NaN or a length
	// is out of range.
	ErrInvalidCoordinate = errors.New("invalid coordinate")

	// ErrDegenerateSegment is returned when a segment's endpoints are identical.
	ErrDegenerateSegment = errors.New("degenerate segment")
)

// Point represents a 2D point in space. Construct points from untrusted
// input with NewPoint so NaN coordinates are rejected.
type Point struct {
	X, Y float32
}

// Vector is a displacement used to translate points and segments.
type Vector struct {
	X, Y float32
}

// NewPoint creates a point, failing with ErrInvalidCoordinate if either
// coordinate is NaN. Infinities are accepted.
func NewPoint(x, y float32) (Point, error) {
	p := Point{X: x, Y: y}
	if err := p.validate(); err != nil {
		return Point{}, err
	}
	return p, nil
}

func (p Point) validate() error {
	if isNaN(p.X) || isNaN(p.Y) {
		return fmt.Errorf("point (%g, %g): %w", p.X, p.Y, ErrInvalidCoordinate)
	}
	return nil
}

// Translate returns p shifted by v.
func (p Point) Translate(v Vector) (Point, error) {
	return NewPoint(p.X+v.X, p.Y+v.Y)
}

func (p Point) String() string {
	return fmt.Sprintf("(%g, %g)", p.X, p.Y)
}

// Leftmost returns whichever point has the smaller x. Ties go to a.
func Leftmost(a, b Point) Point {
	if b.X < a.X {
		return b
	}
	return a
}

// between reports whether min <= v <= max.
func between(v, min, max float32) bool {
	return min <= v && v <= max
}

func isNaN(v float32) bool {
	return math.IsNaN(float64(v))
}
