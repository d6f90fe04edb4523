package physics

import "github.com/puffgame/puff/internal/core"

// PointRadius is the probe radius used when testing a bare point against
// a collidable.
const PointRadius = 1e-2

// CollisionInfo reports the outcome of a full collision test. When Hit is
// set, adding Overlap to the circle's center separates the shapes; the
// vector also works as the normal of the collision plane.
type CollisionInfo struct {
	Hit     bool
	Overlap core.Vec2
}

// NoCollision reports a miss.
func NoCollision() CollisionInfo {
	return CollisionInfo{}
}

// CollisionAt reports a hit with the given overlap vector.
func CollisionAt(overlap core.Vec2) CollisionInfo {
	return CollisionInfo{Hit: true, Overlap: overlap}
}

// Collidable is anything the ball may collide with that can describe the
// collision with an overlap vector.
type Collidable interface {
	// CircleHit tests the collidable against a circle.
	CircleHit(center core.Vec2, radius float64) CollisionInfo

	// OnCollision acts on the actor after CircleHit reported the overlap.
	OnCollision(a Actor, overlap core.Vec2)
}

// SimpleCollidable is anything the ball may touch where a boolean answer
// suffices.
type SimpleCollidable interface {
	// CircleTouch tests the collidable against a circle.
	CircleTouch(center core.Vec2, radius float64) bool

	// OnContact acts on the actor after CircleTouch reported a touch.
	OnContact(a Actor)
}

// PointHit tests a bare point against a full collidable.
func PointHit(c Collidable, pos core.Vec2) bool {
	return c.CircleHit(pos, PointRadius).Hit
}

// PointTouch tests a bare point against a simple collidable.
func PointTouch(c SimpleCollidable, pos core.Vec2) bool {
	return c.CircleTouch(pos, PointRadius)
}

// Map borders. Each border guards one side of the map at a fixed
// coordinate and, on collision, corrects the actor's position directly and
// flips its velocity on that axis. No bounce accumulation is involved.

// LeftBorder is the boundary at the given minimum x.
type LeftBorder float64

// CircleHit reports a hit whenever the circle crosses the border, with the
// overlap pointing back inside.
func (b LeftBorder) CircleHit(center core.Vec2, radius float64) CollisionInfo {
	dx := float64(b) + radius - center.X
	if dx <= 0 {
		return NoCollision()
	}
	return CollisionAt(core.V(dx, 0))
}

// OnCollision pushes the actor inside and reverses its horizontal velocity.
func (b LeftBorder) OnCollision(a Actor, overlap core.Vec2) {
	a.CorrectAndFlipX(overlap.X)
}

// RightBorder is the boundary at the given maximum x.
type RightBorder float64

// CircleHit reports a hit whenever the circle crosses the border, with the
// overlap pointing back inside.
func (b RightBorder) CircleHit(center core.Vec2, radius float64) CollisionInfo {
	dx := float64(b) - center.X - radius
	if dx > 0 {
		return NoCollision()
	}
	return CollisionAt(core.V(dx, 0))
}

// OnCollision pushes the actor inside and reverses its horizontal velocity.
func (b RightBorder) OnCollision(a Actor, overlap core.Vec2) {
	a.CorrectAndFlipX(overlap.X)
}

// UpBorder is the boundary at the given minimum y.
type UpBorder float64

// CircleHit reports a hit whenever the circle crosses the border, with the
// overlap pointing back inside.
func (b UpBorder) CircleHit(center core.Vec2, radius float64) CollisionInfo {
	dy := float64(b) + radius - center.Y
	if dy <= 0 {
		return NoCollision()
	}
	return CollisionAt(core.V(0, dy))
}

// OnCollision pushes the actor inside and reverses its vertical velocity.
func (b UpBorder) OnCollision(a Actor, overlap core.Vec2) {
	a.CorrectAndFlipY(overlap.Y)
}

// DownBorder is the boundary at the given maximum y.
type DownBorder float64

// CircleHit reports a hit whenever the circle crosses the border, with the
// overlap pointing back inside.
func (b DownBorder) CircleHit(center core.Vec2, radius float64) CollisionInfo {
	dy := float64(b) - center.Y - radius
	if dy > 0 {
		return NoCollision()
	}
	return CollisionAt(core.V(0, dy))
}

// OnCollision pushes the actor inside and reverses its vertical velocity.
func (b DownBorder) OnCollision(a Actor, overlap core.Vec2) {
	a.CorrectAndFlipY(overlap.Y)
}
