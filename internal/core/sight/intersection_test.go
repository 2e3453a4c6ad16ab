package sight_test

import (
	"math/rand/v2"
	"testing"

	"chosenoffset.com/tracy/internal/core/sight"
	"github.com/stretchr/testify/require"
)

func TestIntersection(t *testing.T) {
	tests := []struct {
		name string
		a, b [4]float32
		want *sight.Point
	}{
		{
			name: "collinear touching",
			a:    [4]float32{0, 0, 1, 1},
			b:    [4]float32{1, 1, 2, 2},
			want: &sight.Point{X: 1, Y: 1},
		},
		{
			name: "parallel offset",
			a:    [4]float32{0, 1, 1, 2},
			b:    [4]float32{1, 1, 2, 2},
		},
		{
			name: "crossing",
			a:    [4]float32{0, -1, 1, 1},
			b:    [4]float32{0, 0, 2, 2},
			want: &sight.Point{X: 1, Y: 1},
		},
		{
			name: "would cross but wall too short",
			a:    [4]float32{0, -1, 5, 9},
			b:    [4]float32{0, 1, 1, 2},
		},
		{
			name: "crossing outside first segment",
			a:    [4]float32{0, 0, 1, 0},
			b:    [4]float32{2, -1, 4, 1},
		},
		{
			name: "collinear disjoint",
			a:    [4]float32{0, 0, 1, 1},
			b:    [4]float32{2, 2, 3, 3},
		},
		{
			name: "vertical through sloped",
			a:    [4]float32{1, -5, 1, 5},
			b:    [4]float32{0, 0, 2, 2},
			want: &sight.Point{X: 1, Y: 1},
		},
		{
			name: "vertical above sloped",
			a:    [4]float32{1, 3, 1, 5},
			b:    [4]float32{0, 0, 2, 2},
		},
		{
			name: "vertical beside sloped domain",
			a:    [4]float32{3, -5, 3, 5},
			b:    [4]float32{0, 0, 2, 2},
		},
		{
			name: "sloped domain ends on vertical",
			a:    [4]float32{0, 0, 1, 1},
			b:    [4]float32{1, 0, 1, 2},
			want: &sight.Point{X: 1, Y: 1},
		},
		{
			name: "parallel verticals",
			a:    [4]float32{0, 0, 0, 2},
			b:    [4]float32{1, 0, 1, 2},
		},
		{
			name: "stacked verticals touching",
			a:    [4]float32{4, 0, 4, 2},
			b:    [4]float32{4, 2, 4, 6},
			want: &sight.Point{X: 4, Y: 2},
		},
		{
			name: "stacked verticals apart",
			a:    [4]float32{4, 0, 4, 2},
			b:    [4]float32{4, 3, 4, 6},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := seg(t, tt.a[0], tt.a[1], tt.a[2], tt.a[3])
			b := seg(t, tt.b[0], tt.b[1], tt.b[2], tt.b[3])

			got, ok := a.Intersection(b)
			if tt.want == nil {
				require.False(t, ok, "unexpected intersection at %v", got)
				return
			}
			require.True(t, ok)
			require.Equal(t, *tt.want, got)
		})
	}
}

func TestIntersectionArgumentOrder(t *testing.T) {
	pairs := [][2]sight.Segment{
		{seg(t, 0, -1, 1, 1), seg(t, 0, 0, 2, 2)},
		{seg(t, 1, 1, 0, -1), seg(t, 2, 2, 0, 0)},
		{seg(t, 1, -5, 1, 5), seg(t, 0, 0, 2, 2)},
		{seg(t, 0, 0, 1, 1), seg(t, 1, 2, 1, 0)},
		{seg(t, -2, 4, 2, -4), seg(t, -3, 0, 3, 0)},
	}

	for _, p := range pairs {
		ab, okAB := p[0].Intersection(p[1])
		ba, okBA := p[1].Intersection(p[0])
		require.True(t, okAB, "%v x %v", p[0], p[1])
		require.True(t, okBA, "%v x %v", p[1], p[0])
		require.Equal(t, ab, ba)
	}
}

func TestIntersectionArgumentOrderRandom(t *testing.T) {
	r := rand.New(rand.NewPCG(13, 2))

	var hits int
	for range 20000 {
		a, b := randomSegment(r), randomSegment(r)
		ab, okAB := a.Intersection(b)
		ba, okBA := b.Intersection(a)
		require.Equal(t, okAB, okBA, "%v x %v", a, b)
		if okAB {
			hits++
			require.Equal(t, ab, ba, "%v x %v", a, b)
		}
	}
	require.Positive(t, hits)
}

// Overlapping segments may report either end of the overlap depending on
// argument order; both must lie inside it.
func TestIntersectionCollinearOverlap(t *testing.T) {
	tests := []struct {
		name     string
		a, b     sight.Segment
		min, max sight.Point
	}{
		{"sloped", seg(t, 0, 0, 2, 2), seg(t, 1, 1, 3, 3), pt(1, 1), pt(2, 2)},
		{"sloped reversed", seg(t, 2, 2, 0, 0), seg(t, 3, 3, 1, 1), pt(1, 1), pt(2, 2)},
		{"vertical", seg(t, 0, 0, 0, 2), seg(t, 0, 1, 0, 3), pt(0, 1), pt(0, 2)},
		{"vertical reversed", seg(t, 0, 2, 0, 0), seg(t, 0, 3, 0, 1), pt(0, 1), pt(0, 2)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, order := range [][2]sight.Segment{{tt.a, tt.b}, {tt.b, tt.a}} {
				got, ok := order[0].Intersection(order[1])
				require.True(t, ok)
				require.GreaterOrEqual(t, got.X, tt.min.X)
				require.LessOrEqual(t, got.X, tt.max.X)
				require.GreaterOrEqual(t, got.Y, tt.min.Y)
				require.LessOrEqual(t, got.Y, tt.max.Y)
			}
		})
	}
}

// The overlap rule takes the low end first regardless of direction.
func TestIntersectionOverlapEndpointRule(t *testing.T) {
	got, ok := seg(t, 0, 0, 2, 2).Intersection(seg(t, 1, 1, 3, 3))
	require.True(t, ok)
	require.Equal(t, pt(2, 2), got)

	got, ok = seg(t, 1, 1, 3, 3).Intersection(seg(t, 0, 0, 2, 2))
	require.True(t, ok)
	require.Equal(t, pt(1, 1), got)

	got, ok = seg(t, 0, 0, 0, 2).Intersection(seg(t, 0, 3, 0, 1))
	require.True(t, ok)
	require.Equal(t, pt(0, 1), got)
}

// Strict containment is seen in one argument order only: sloped pairs probe
// the receiver's ends, vertical pairs probe the argument's.
func TestIntersectionContainedOverlap(t *testing.T) {
	outer, inner := seg(t, 0, 1, 8, 5), seg(t, 2, 2, 4, 3)
	_, ok := outer.Intersection(inner)
	require.False(t, ok)
	got, ok := inner.Intersection(outer)
	require.True(t, ok)
	require.Equal(t, pt(2, 2), got)

	outer, inner = seg(t, 5, -4, 5, 4), seg(t, 5, -1, 5, 1)
	got, ok = outer.Intersection(inner)
	require.True(t, ok)
	require.Equal(t, pt(5, -1), got)
	_, ok = inner.Intersection(outer)
	require.False(t, ok)
}
