package sight_test

import (
	"context"
	"math"
	"testing"

	"chosenoffset.com/tracy/internal/core/sight"
	"github.com/stretchr/testify/require"
)

func TestFan(t *testing.T) {
	scene := sceneOf(t, seg(t, 2, -1, 2, 1))

	rays, err := sight.Fan(scene, pt(0, 0), 10)
	require.NoError(t, err)
	require.Len(t, rays, 6)

	for _, ray := range rays {
		origin := ray.Origin()
		require.InDelta(t, 0, origin.X, 1e-5)
		require.InDelta(t, 0, origin.Y, 1e-5)
	}

	// Sorted by angle: the upper vertex (angle ~0.46) comes before the lower
	// one (angle ~5.82).
	_, far := rays[0].Endpoints()
	require.Positive(t, far.Y)
	_, far = rays[5].Endpoints()
	require.Negative(t, far.Y)

	visible, err := sight.CastAll(context.Background(), scene, rays, 0)
	require.NoError(t, err)

	var blocked int
	for i, v := range visible {
		if v == rays[i] {
			_, far := v.Endpoints()
			require.InDelta(t, 10, math.Hypot(float64(far.X), float64(far.Y)), 1e-3)
			continue
		}
		blocked++
		_, far := v.Endpoints()
		require.Equal(t, float32(2), far.X)
	}
	require.GreaterOrEqual(t, blocked, 2)
	require.LessOrEqual(t, blocked, 4)
}

func TestFanSkipsOriginVertex(t *testing.T) {
	scene := sceneOf(t, seg(t, 0, 0, 1, 5))
	rays, err := sight.Fan(scene, pt(0, 0), 3)
	require.NoError(t, err)
	require.Len(t, rays, 3)
}

func TestFanEmptyScene(t *testing.T) {
	rays, err := sight.Fan(sight.NewScene(), pt(4, 4), 3)
	require.NoError(t, err)
	require.Empty(t, rays)
}

func TestFanInvalid(t *testing.T) {
	scene := sceneOf(t, seg(t, 2, -1, 2, 1))

	_, err := sight.Fan(scene, pt(float32(math.NaN()), 0), 3)
	require.ErrorIs(t, err, sight.ErrInvalidCoordinate)

	for _, reach := range []float32{0, -3, float32(math.Inf(1)), float32(math.NaN())} {
		_, err = sight.Fan(scene, pt(0, 0), reach)
		require.ErrorIs(t, err, sight.ErrInvalidCoordinate, "reach %v", reach)
	}
}
