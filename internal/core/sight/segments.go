package sight

import "fmt"

// Kind identifies which representation a Segment uses.
type Kind int

const (
	// KindSloped segments are stored as y = slope*x + yIntercept over [minX, maxX].
	KindSloped Kind = iota
	// KindVertical segments share a single x and span [minY, maxY].
	KindVertical
)

func (k Kind) String() string {
	switch k {
	case KindSloped:
		return "sloped"
	case KindVertical:
		return "vertical"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Segment is a finite piece of a 2D line with a logical origin at one of
// its endpoints. Walls and rays are both segments.
//
// The zero Segment is not valid; build segments with NewSegment.
type Segment struct {
	shape shape
}

// shape is implemented by sloped and vertical.
type shape interface {
	kind() Kind
	// ends returns the endpoints ordered by x (sloped) or y (vertical).
	ends() (lo, hi Point)
	origin() Point
	far() Point
}

// sloped is a segment of the line y = slope*x + yIntercept.
type sloped struct {
	slope        float32
	yIntercept   float32
	minX, maxX   float32
	originIsLeft bool
}

// vertical is a segment of the line x = x.
type vertical struct {
	x           float32
	minY, maxY  float32
	originIsLow bool
}

// NewSegment builds a segment whose origin is start. Endpoints sharing an x
// produce a vertical segment; any other pair produces a sloped one.
func NewSegment(start, end Point) (Segment, error) {
	if err := start.validate(); err != nil {
		return Segment{}, err
	}
	if err := end.validate(); err != nil {
		return Segment{}, err
	}
	if start == end {
		return Segment{}, fmt.Errorf("segment %v-%v: %w", start, end, ErrDegenerateSegment)
	}

	if start.X == end.X {
		return Segment{shape: newVertical(start, end)}, nil
	}
	return Segment{shape: newSloped(start, end)}, nil
}

func newSloped(start, end Point) sloped {
	slope := (end.Y - start.Y) / (end.X - start.X)
	left := Leftmost(start, end)
	right := end
	if left == end {
		right = start
	}
	return sloped{
		slope:        slope,
		yIntercept:   end.Y - float32(slope*end.X),
		minX:         left.X,
		maxX:         right.X,
		originIsLeft: start.X < end.X,
	}
}

func newVertical(start, end Point) vertical {
	return vertical{
		x:           start.X,
		minY:        min(start.Y, end.Y),
		maxY:        max(start.Y, end.Y),
		originIsLow: start.Y < end.Y,
	}
}

// collapsed is the zero-length segment left when a wall blocks a ray right
// at its origin.
func collapsed(p Point) Segment {
	return Segment{shape: vertical{x: p.X, minY: p.Y, maxY: p.Y, originIsLow: true}}
}

// Kind reports the segment's representation.
func (s Segment) Kind() Kind {
	return s.shape.kind()
}

// Endpoints returns the two boundary points, lowest x first for sloped
// segments and lowest y first for vertical ones.
func (s Segment) Endpoints() (Point, Point) {
	return s.shape.ends()
}

// Origin returns the endpoint the segment was cast from.
func (s Segment) Origin() Point {
	return s.shape.origin()
}

// IsPoint reports whether the segment has been truncated to zero length.
func (s Segment) IsPoint() bool {
	lo, hi := s.shape.ends()
	return lo == hi
}

// Translate returns the segment shifted by v, keeping its origin end.
func (s Segment) Translate(v Vector) (Segment, error) {
	origin, err := s.shape.origin().Translate(v)
	if err != nil {
		return Segment{}, err
	}
	if s.IsPoint() {
		return collapsed(origin), nil
	}
	far, err := s.shape.far().Translate(v)
	if err != nil {
		return Segment{}, err
	}
	return NewSegment(origin, far)
}

func (s Segment) String() string {
	lo, hi := s.shape.ends()
	return fmt.Sprintf("%v-%v", lo, hi)
}

func (s sloped) kind() Kind { return KindSloped }

// yAt evaluates the line at x. The product is rounded before the add so a
// fused multiply-add cannot change the result.
func (s sloped) yAt(x float32) float32 {
	return float32(s.slope*x) + s.yIntercept
}

// pointAt returns the point on the segment at x, if x is within its domain.
func (s sloped) pointAt(x float32) (Point, bool) {
	if !between(x, s.minX, s.maxX) {
		return Point{}, false
	}
	y := s.yAt(x)
	if isNaN(y) {
		return Point{}, false
	}
	return Point{X: x, Y: y}, true
}

func (s sloped) ends() (Point, Point) {
	return Point{X: s.minX, Y: s.yAt(s.minX)}, Point{X: s.maxX, Y: s.yAt(s.maxX)}
}

func (s sloped) origin() Point {
	lo, hi := s.ends()
	if s.originIsLeft {
		return lo
	}
	return hi
}

func (s sloped) far() Point {
	lo, hi := s.ends()
	if s.originIsLeft {
		return hi
	}
	return lo
}

func (v vertical) kind() Kind { return KindVertical }

func (v vertical) ends() (Point, Point) {
	return Point{X: v.x, Y: v.minY}, Point{X: v.x, Y: v.maxY}
}

func (v vertical) origin() Point {
	if v.originIsLow {
		return Point{X: v.x, Y: v.minY}
	}
	return Point{X: v.x, Y: v.maxY}
}

func (v vertical) far() Point {
	if v.originIsLow {
		return Point{X: v.x, Y: v.maxY}
	}
	return Point{X: v.x, Y: v.minY}
}
