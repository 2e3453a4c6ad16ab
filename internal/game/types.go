package game

import (
	"image/color"

	"chosenoffset.com/tracy/internal/core/sight"
)

// Colors used for scene elements.
var (
	BackgroundColor = color.RGBA{0, 0, 0, 255}
	WallColor       = color.RGBA{0, 255, 0, 255}
	RayColor        = color.RGBA{255, 0, 0, 255}
)

// Corner is the screen corner rays are cast from.
type Corner int

const (
	BottomLeft Corner = iota
	TopRight
)

func (c Corner) String() string {
	if c == TopRight {
		return "top-right"
	}
	return "bottom-left"
}

// point returns the corner's position on a width x height screen.
func (c Corner) point(width, height int) sight.Point {
	if c == TopRight {
		return sight.Point{X: float32(width), Y: 0}
	}
	return sight.Point{X: 0, Y: float32(height)}
}

// Ray pairs a cast ray with the part of it left visible by the scene.
type Ray struct {
	Full    sight.Segment
	Visible sight.Segment
}
