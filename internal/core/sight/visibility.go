package sight

import (
	"fmt"
	"math"
	"slices"
)

// fanEpsilon is the angular offset, in radians, of the extra rays cast just
// either side of each wall vertex so they can slip past corners.
const fanEpsilon = 0.0001

// Fan builds the rays needed to outline everything visible from origin: for
// every distinct wall vertex, one ray aimed straight at it and one just
// either side, each reach units long. Rays are ordered by angle in [0, 2π).
// Casting them with CastInScene or CastAll yields the visibility outline.
// reach must be positive and finite.
func Fan(scene *Scene, origin Point, reach float32) ([]Segment, error) {
	if err := origin.validate(); err != nil {
		return nil, err
	}
	if !(reach > 0) || math.IsInf(float64(reach), 1) {
		return nil, fmt.Errorf("fan reach %g: %w", reach, ErrInvalidCoordinate)
	}

	angles := make([]float64, 0, 6*len(scene.walls))
	for _, v := range scene.vertices() {
		if v == origin {
			continue
		}
		angle := math.Atan2(float64(v.Y-origin.Y), float64(v.X-origin.X))
		angles = append(angles,
			normalizeAngle(angle-fanEpsilon),
			normalizeAngle(angle),
			normalizeAngle(angle+fanEpsilon),
		)
	}
	slices.Sort(angles)
	angles = slices.Compact(angles)

	rays := make([]Segment, 0, len(angles))
	for _, angle := range angles {
		end := Point{
			X: origin.X + reach*float32(math.Cos(angle)),
			Y: origin.Y + reach*float32(math.Sin(angle)),
		}
		ray, err := NewSegment(origin, end)
		if err != nil {
			return nil, err
		}
		rays = append(rays, ray)
	}
	return rays, nil
}

// vertices returns the distinct wall endpoints in insertion order.
func (s *Scene) vertices() []Point {
	seen := make(map[Point]bool, 2*len(s.walls))
	var out []Point
	for _, w := range s.walls {
		lo, hi := w.Endpoints()
		for _, p := range []Point{lo, hi} {
			if !seen[p] {
				seen[p] = true
				out = append(out, p)
			}
		}
	}
	return out
}

// normalizeAngle maps an angle to [0, 2π).
func normalizeAngle(angle float64) float64 {
	normalized := math.Mod(angle, 2*math.Pi)
	if normalized < 0 {
		normalized += 2 * math.Pi
	}
	return normalized
}
