package game

import (
	"math"

	"github.com/puffgame/puff/internal/core"
)

// Soft focus margins: how close the focus point may get to the viewport
// edge before the camera moves.
const (
	softMarginW = 120.0
	softMarginH = 80.0
)

// Camera is a movable viewport over the map, tracked by its top-left
// corner in world units.
type Camera struct {
	pos    core.Vec2
	width  float64
	height float64
	halfW  float64
	halfH  float64
}

// NewCamera returns a camera with the given viewport size. Dimensions
// must be positive.
func NewCamera(pos core.Vec2, width, height float64) *Camera {
	if width <= 0 || height <= 0 {
		panic("game: camera dimensions must be positive")
	}
	return &Camera{
		pos:    pos,
		width:  width,
		height: height,
		halfW:  width / 2,
		halfH:  height / 2,
	}
}

// Position returns the camera's top-left corner.
func (c *Camera) Position() core.Vec2 {
	return c.pos
}

// SetViewport resizes the viewport in place, keeping its center fixed.
// Non-positive dimensions are ignored.
func (c *Camera) SetViewport(width, height float64) {
	if width <= 0 || height <= 0 {
		return
	}
	center := core.V(c.pos.X+c.halfW, c.pos.Y+c.halfH)
	c.width = width
	c.height = height
	c.halfW = width / 2
	c.halfH = height / 2
	c.pos = core.V(center.X-c.halfW, center.Y-c.halfH)
}

// Width returns the viewport width in world units.
func (c *Camera) Width() float64 {
	return c.width
}

// Height returns the viewport height in world units.
func (c *Camera) Height() float64 {
	return c.height
}

// RoundPosition snaps the camera to whole world units, so a panned view
// does not shimmer between cells.
func (c *Camera) RoundPosition() {
	c.pos = core.V(math.Round(c.pos.X), math.Round(c.pos.Y))
}

// FocusOn centers the viewport on the focus point, except near the map
// boundaries where the view stops following.
func (c *Camera) FocusOn(focus, mapDim core.Vec2) {
	point := c.focusPoint(focus, mapDim)
	c.pos = core.V(point.X-c.halfW, point.Y-c.halfH)
}

// SoftFocusOn moves the camera just enough to keep the focus point
// comfortably inside the viewport, without crossing the map boundaries.
func (c *Camera) SoftFocusOn(focus, mapDim core.Vec2) {
	rx := focus.X - c.pos.X - softMarginW
	if rx < 0 {
		c.pos.X += rx
	}
	rx = focus.X - (c.pos.X + c.width - softMarginW)
	if rx > 0 {
		c.pos.X += rx
	}

	ry := focus.Y - c.pos.Y - softMarginH
	if ry < 0 {
		c.pos.Y += ry
	}
	ry = focus.Y - (c.pos.Y + c.height - softMarginH)
	if ry > 0 {
		c.pos.Y += ry
	}

	c.ClampToBounds(mapDim)
}

// Pan translates the camera.
func (c *Camera) Pan(v core.Vec2) {
	c.pos = c.pos.Add(v)
}

// ClampToBounds keeps the camera from drifting more than half a viewport
// past the map.
func (c *Camera) ClampToBounds(mapDim core.Vec2) {
	c.pos.X = core.ClampF(c.pos.X, 0, mapDim.X-c.halfW)
	c.pos.Y = core.ClampF(c.pos.Y, 0, mapDim.Y-c.halfH)
}

// focusPoint clamps the focus so that centering on it keeps the viewport
// inside the map.
func (c *Camera) focusPoint(focus, dim core.Vec2) core.Vec2 {
	return core.V(
		core.ClampF(focus.X, c.halfW, dim.X-c.halfW),
		core.ClampF(focus.Y, c.halfH, dim.Y-c.halfH),
	)
}
