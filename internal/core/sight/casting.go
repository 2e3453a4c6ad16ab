package sight

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// CastTo truncates s at wall. If the two meet, the result runs from s's
// origin to the meeting point; otherwise s is returned unchanged. The result
// is never longer than s and lies on the same line.
func (s Segment) CastTo(wall Segment) Segment {
	hit, ok := s.Intersection(wall)
	if !ok {
		return s
	}
	return s.cutAt(hit)
}

// CastInScene truncates s at the wall nearest its origin and returns the
// part visible from the origin. Every wall is tested against s itself, so
// the result does not depend on the order the walls were added in.
func (s Segment) CastInScene(scene *Scene) Segment {
	var nearest Point
	found := false
	for _, wall := range scene.walls {
		hit, ok := s.Intersection(wall)
		if ok && (!found || s.nearer(hit, nearest)) {
			nearest, found = hit, true
		}
	}
	if !found {
		return s
	}
	return s.cutAt(nearest)
}

// nearer reports whether p lies closer to s's origin than q. Both points
// must lie within s. Distance is measured along the axis s is stored
// against, so points on s compare exactly.
func (s Segment) nearer(p, q Point) bool {
	switch sh := s.shape.(type) {
	case sloped:
		if sh.originIsLeft {
			return p.X < q.X
		}
		return p.X > q.X
	case vertical:
		if sh.originIsLow {
			return p.Y < q.Y
		}
		return p.Y > q.Y
	}
	return false
}

// cutAt shortens s so its far end sits at hit, which must lie within s.
// The line itself is kept, so the origin never moves.
func (s Segment) cutAt(hit Point) Segment {
	switch sh := s.shape.(type) {
	case sloped:
		if hit.X == sh.origin().X {
			return collapsed(sh.origin())
		}
		if sh.originIsLeft {
			sh.maxX = hit.X
		} else {
			sh.minX = hit.X
		}
		return Segment{shape: sh}
	case vertical:
		origin := sh.origin()
		if hit.Y == origin.Y {
			return collapsed(origin)
		}
		if sh.originIsLow {
			sh.maxY = hit.Y
		} else {
			sh.minY = hit.Y
		}
		return Segment{shape: sh}
	}
	return s
}

// CastAll casts every ray in scene concurrently, using at most workers
// goroutines (GOMAXPROCS when workers <= 0). Results are in ray order.
// The scene must not be modified until CastAll returns.
func CastAll(ctx context.Context, scene *Scene, rays []Segment, workers int) ([]Segment, error) {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	out := make([]Segment, len(rays))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for i, ray := range rays {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			out[i] = ray.CastInScene(scene)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	// Cancellation that stopped the loop before any goroutine saw it.
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
