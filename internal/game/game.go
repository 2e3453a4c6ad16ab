package game

import (
	"context"
	"fmt"
	"log/slog"
	"math"

	"chosenoffset.com/tracy/internal/config"
	"chosenoffset.com/tracy/internal/core/sight"
	"chosenoffset.com/tracy/internal/render"
)

// Game holds the scene being edited and the rays cast through it.
type Game struct {
	ScreenWidth  int
	ScreenHeight int
	Renderer     render.Renderer
	InputMgr     render.InputManager
	Log          *slog.Logger

	Scene  *sight.Scene
	Rays   []Ray
	Corner Corner

	// UI state
	ShowHelp  bool
	WallWidth float32
	RayWidth  float32
	Workers   int

	// dirty is set when rays need re-casting against the scene.
	dirty bool
}

// New creates a game with a freshly seeded scene.
func New(cfg *config.Config, r render.Renderer, input render.InputManager, logger *slog.Logger) (*Game, error) {
	g := &Game{
		ScreenWidth:  cfg.Width,
		ScreenHeight: cfg.Height,
		Renderer:     r,
		InputMgr:     input,
		Log:          logger,
		ShowHelp:     true,
		WallWidth:    cfg.WallWidth,
		RayWidth:     cfg.RayWidth,
		Workers:      cfg.Workers,
	}
	if err := g.Reset(); err != nil {
		return nil, err
	}
	return g, nil
}

// Reset drops every ray and replaces the scene with one holding only the
// seed wall, which hangs from the middle of the top edge.
func (g *Game) Reset() error {
	scene := sight.NewScene()
	midX := float32(g.ScreenWidth) / 2
	start := sight.Point{X: midX, Y: 0}
	end := sight.Point{X: midX + 0.1, Y: float32(g.ScreenHeight) / 2}
	if err := scene.AddSegment(start, end); err != nil {
		return fmt.Errorf("seed wall: %w", err)
	}

	g.Scene = scene
	g.Rays = nil
	g.dirty = false
	g.Log.Info("scene reset", "walls", scene.Len())
	return nil
}

// Update handles input and re-casts rays when the scene has changed.
func (g *Game) Update() error {
	if g.InputMgr.IsKeyJustPressed(render.KeyEscape) {
		return render.ErrQuit
	}

	if g.InputMgr.IsKeyJustPressed(render.KeyC) {
		if err := g.Reset(); err != nil {
			return err
		}
	}

	if g.InputMgr.IsKeyJustPressed(render.KeyS) {
		if g.Corner == BottomLeft {
			g.Corner = TopRight
		} else {
			g.Corner = BottomLeft
		}
		g.Log.Debug("ray origin switched", "corner", g.Corner)
	}

	if g.InputMgr.IsKeyJustPressed(render.KeyH) {
		g.ShowHelp = !g.ShowHelp
	}

	if g.InputMgr.IsKeyJustPressed(render.KeyF) {
		g.castFan()
	}

	if g.InputMgr.IsMouseButtonJustPressed(render.MouseButtonLeft) {
		g.castFromCorner()
	}

	if g.InputMgr.IsMouseButtonJustPressed(render.MouseButtonRight) {
		g.extendWall()
	}

	if g.dirty {
		if err := g.recast(context.Background()); err != nil {
			return fmt.Errorf("recast rays: %w", err)
		}
	}

	return nil
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.ScreenWidth, g.ScreenHeight
}

// Origin returns the point new rays start from.
func (g *Game) Origin() sight.Point {
	return g.Corner.point(g.ScreenWidth, g.ScreenHeight)
}

func (g *Game) cursor() (sight.Point, error) {
	x, y := g.InputMgr.GetCursorPosition()
	return sight.NewPoint(float32(x), float32(y))
}

// castFromCorner adds a ray from the current corner to the cursor.
func (g *Game) castFromCorner() {
	target, err := g.cursor()
	if err != nil {
		g.Log.Warn("ignoring click", "error", err)
		return
	}

	full, err := sight.NewSegment(g.Origin(), target)
	if err != nil {
		g.Log.Warn("ignoring ray", "error", err)
		return
	}

	g.Rays = append(g.Rays, Ray{Full: full, Visible: full})
	g.dirty = true
}

// castFan adds rays from the current corner past every wall vertex, long
// enough to cross the whole screen.
func (g *Game) castFan() {
	reach := float32(math.Hypot(float64(g.ScreenWidth), float64(g.ScreenHeight)))
	rays, err := sight.Fan(g.Scene, g.Origin(), reach)
	if err != nil {
		g.Log.Warn("ignoring fan", "error", err)
		return
	}

	for _, ray := range rays {
		g.Rays = append(g.Rays, Ray{Full: ray, Visible: ray})
	}
	g.Log.Debug("fan cast", "rays", len(rays))
	g.dirty = true
}

// extendWall chains a wall from the end of the previous one to the cursor.
func (g *Game) extendWall() {
	next, err := g.cursor()
	if err != nil {
		g.Log.Warn("ignoring click", "error", err)
		return
	}

	if err := g.Scene.AddContinuous(next); err != nil {
		g.Log.Warn("ignoring wall", "error", err)
		return
	}

	g.Log.Debug("wall added", "to", next.String(), "walls", g.Scene.Len())
	g.dirty = true
}

// recast casts every ray through the scene again.
func (g *Game) recast(ctx context.Context) error {
	full := make([]sight.Segment, len(g.Rays))
	for i, r := range g.Rays {
		full[i] = r.Full
	}

	visible, err := sight.CastAll(ctx, g.Scene, full, g.Workers)
	if err != nil {
		return err
	}

	for i := range g.Rays {
		g.Rays[i].Visible = visible[i]
		g.Log.Debug("ray cast",
			"ray", g.Rays[i].Full.String(),
			"visible", visible[i].String(),
			"blocked", visible[i] != g.Rays[i].Full)
	}

	g.dirty = false
	return nil
}
