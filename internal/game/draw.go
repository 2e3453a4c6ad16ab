package game

import (
	"fmt"
	"image/color"

	"chosenoffset.com/tracy/internal/core/sight"
	"chosenoffset.com/tracy/internal/render"
)

const helpText = "LMB: cast ray  RMB: add wall  F: fan  S: switch origin  C: clear  H: help  Esc: quit"

// Draw renders walls, visible rays and the help overlay.
func (g *Game) Draw(screen render.Image) {
	screen.Fill(BackgroundColor)

	for _, wall := range g.Scene.Walls() {
		g.drawSegment(screen, wall, g.WallWidth, WallColor)
	}

	for _, r := range g.Rays {
		if r.Visible.IsPoint() {
			continue
		}
		g.drawSegment(screen, r.Visible, g.RayWidth, RayColor)
	}

	if g.ShowHelp {
		g.drawUI(screen)
	}
}

func (g *Game) drawSegment(screen render.Image, s sight.Segment, width float32, clr color.Color) {
	lo, hi := s.Endpoints()
	g.Renderer.StrokeLine(screen, lo.X, lo.Y, hi.X, hi.Y, width, clr)
}

func (g *Game) drawUI(screen render.Image) {
	g.Renderer.DrawText(screen, helpText, 8, 8)
	status := fmt.Sprintf("origin: %s  walls: %d  rays: %d", g.Corner, g.Scene.Len(), len(g.Rays))
	g.Renderer.DrawText(screen, status, 8, 24)
}
