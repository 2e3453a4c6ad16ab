package sight

import (
	"fmt"
	"slices"
)

// Scene is an append-only collection of walls. It also remembers the end of
// the most recently added wall so walls can be chained from it.
//
// The zero Scene is empty and ready to use. A Scene is not safe for
// concurrent modification.
type Scene struct {
	walls   []Segment
	last    Point
	hasLast bool
}

// NewScene creates an empty scene.
func NewScene() *Scene {
	return &Scene{}
}

// AddSegment adds a wall from start to end and records end as the point the
// next continuous wall starts from. Nothing is recorded if the wall is
// invalid.
func (s *Scene) AddSegment(start, end Point) error {
	wall, err := NewSegment(start, end)
	if err != nil {
		return fmt.Errorf("add wall: %w", err)
	}
	s.walls = append(s.walls, wall)
	s.last, s.hasLast = end, true
	return nil
}

// AddContinuous adds a wall from the end of the previous wall to next. It
// does nothing if no wall has been added yet.
func (s *Scene) AddContinuous(next Point) error {
	if !s.hasLast {
		return nil
	}
	return s.AddSegment(s.last, next)
}

// LastPoint returns the end of the most recently added wall.
func (s *Scene) LastPoint() (Point, bool) {
	return s.last, s.hasLast
}

// Walls returns a copy of the walls in insertion order.
func (s *Scene) Walls() []Segment {
	return slices.Clone(s.walls)
}

// Len returns the number of walls.
func (s *Scene) Len() int {
	return len(s.walls)
}
