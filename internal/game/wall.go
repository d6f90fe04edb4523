package game

import (
	"math"

	"github.com/puffgame/puff/internal/assets"
	"github.com/puffgame/puff/internal/core"
	"github.com/puffgame/puff/internal/level"
	"github.com/puffgame/puff/internal/physics"
)

// Wall is one solid tile. Overlaps feed the actor's bounce accumulator
// instead of correcting its position directly, so a ball wedged between
// tiles resolves against their averaged push.
type Wall struct {
	pos    core.Vec2
	dim    core.Vec2
	sprite *assets.Sprite
}

// NewWall builds a wall from its level record. The wall fails to build
// when its texture is not in the library.
func NewWall(info level.WallInfo, lib *assets.Library) (*Wall, error) {
	sprite, err := lib.Sprite(assets.Other(info.TextureID))
	if err != nil {
		return nil, err
	}
	return &Wall{
		pos:    info.Pos.Vec(),
		dim:    info.Dim.Vec(),
		sprite: sprite,
	}, nil
}

// Position returns the wall's top-left corner, which also buckets it in
// the scene index.
func (w *Wall) Position() core.Vec2 {
	return w.pos
}

// Dimensions returns the wall extent in world units.
func (w *Wall) Dimensions() core.Vec2 {
	return w.dim
}

// Sprite returns the texture the wall tiles itself with.
func (w *Wall) Sprite() *assets.Sprite {
	return w.sprite
}

// CircleHit clamps the circle center to the wall rectangle and measures
// the push needed to separate the two.
func (w *Wall) CircleHit(center core.Vec2, radius float64) physics.CollisionInfo {
	br := w.pos.Add(w.dim)
	nearest := core.V(
		math.Max(w.pos.X, math.Min(center.X, br.X)),
		math.Max(w.pos.Y, math.Min(center.Y, br.Y)),
	)
	delta := center.Sub(nearest)
	distSq := delta.LenSq()
	if distSq > radius*radius {
		return physics.NoCollision()
	}
	if distSq == 0 {
		return physics.CollisionAt(w.escape(center, radius))
	}
	dist := math.Sqrt(distSq)
	return physics.CollisionAt(delta.Scale((radius - dist) / dist))
}

// escape resolves a circle whose center lies exactly on the wall, where
// the contact normal degenerates. The push runs through the nearest face;
// ties resolve upward.
func (w *Wall) escape(center core.Vec2, radius float64) core.Vec2 {
	br := w.pos.Add(w.dim)
	top := center.Y - w.pos.Y
	bottom := br.Y - center.Y
	left := center.X - w.pos.X
	right := br.X - center.X

	min := top
	push := core.V(0, -(top + radius))
	if bottom < min {
		min = bottom
		push = core.V(0, bottom+radius)
	}
	if left < min {
		min = left
		push = core.V(-(left + radius), 0)
	}
	if right < min {
		push = core.V(right+radius, 0)
	}
	return push
}

// OnCollision queues the overlap on the actor's bounce accumulator.
func (w *Wall) OnCollision(a physics.Actor, overlap core.Vec2) {
	a.IssueBounce(overlap)
}

// ContainsPoint reports whether pos lies on the wall tile, edges
// included. The editor removes walls by this test.
func (w *Wall) ContainsPoint(pos core.Vec2) bool {
	br := w.pos.Add(w.dim)
	return pos.X >= w.pos.X && pos.X <= br.X && pos.Y >= w.pos.Y && pos.Y <= br.Y
}
