package game

import (
	"github.com/puffgame/puff/internal/core"
	"github.com/puffgame/puff/internal/physics"
)

const (
	// BallCapacity is the size at which the ball is full. Inflating past
	// capacity plus a small tolerance bursts it.
	BallCapacity = 34.0

	// BallDefaultSize is the diameter a ball spawns with.
	BallDefaultSize = 28.0

	// Squared speed beyond which extra drag kicks in.
	tooMuchSpeedSq = 22.0
)

// Ball is the player avatar. Its diameter doubles as its health: venting
// gas to thrust shrinks it, mines shrink it faster, pumps reinflate it.
// Too small and it is spent; overinflated and it bursts.
type Ball struct {
	pos  core.Vec2
	vel  core.Vec2
	size float64
}

// NewBall returns a ball at pos with the given diameter.
func NewBall(pos core.Vec2, size float64) *Ball {
	return &Ball{pos: pos, size: size}
}

// NewDefaultBall returns a ball at pos with the default diameter.
func NewDefaultBall(pos core.Vec2) *Ball {
	return NewBall(pos, BallDefaultSize)
}

func (b *Ball) Position() core.Vec2 {
	return b.pos
}

func (b *Ball) Velocity() core.Vec2 {
	return b.vel
}

func (b *Ball) SetPosition(pos core.Vec2) {
	b.pos = pos
}

func (b *Ball) AddPosition(delta core.Vec2) {
	b.pos = b.pos.Add(delta)
}

func (b *Ball) SpeedSq() float64 {
	return b.vel.LenSq()
}

// Size returns the ball's diameter.
func (b *Ball) Size() float64 {
	return b.size
}

// Capacity returns the diameter at which the ball is full.
func (b *Ball) Capacity() float64 {
	return BallCapacity
}

// Thrust adds an impulse to the ball's velocity.
func (b *Ball) Thrust(impulse core.Vec2) {
	b.vel = b.vel.Add(impulse)
}

// DecayVelocity removes the given fraction of the current velocity.
func (b *Ball) DecayVelocity(fraction float64) {
	b.vel = b.vel.Sub(b.vel.Scale(fraction))
}

func (b *Ball) SetVelocity(vel core.Vec2) {
	b.vel = vel
}

func (b *Ball) AddVelocity(delta core.Vec2) {
	b.vel = b.vel.Add(delta)
}

func (b *Ball) FlipVX() {
	b.vel.X = -b.vel.X
}

func (b *Ball) FlipVY() {
	b.vel.Y = -b.vel.Y
}

// AddSize inflates or deflates the ball. The size never drops below zero.
func (b *Ball) AddSize(delta float64) {
	b.size = b.size + delta
	if b.size < 0 {
		b.size = 0
	}
}

// IsDead reports whether the ball is spent or burst.
func (b *Ball) IsDead() bool {
	return b.size < 4 || b.size > BallCapacity+2
}

// UpdatePosition advances the ball along its velocity.
func (b *Ball) UpdatePosition(factor float64) {
	b.pos = b.pos.Add(b.vel.Scale(factor))
}

// MaximizeSize inflates the ball to capacity.
func (b *Ball) MaximizeSize() {
	b.size = BallCapacity
}

// TickEvents records what the collision callbacks did to the ball during
// one tick, so the caller can fire matching sound cues.
type TickEvents struct {
	Bounced  bool
	Damaged  bool
	Healed   bool
	PickedUp bool
}

// BallController drives a ball from held thrust directions and applies
// the collision feedback the rest of the world reports through the
// physics.Actor interface.
type BallController struct {
	ball *Ball

	thrustRight bool
	thrustLeft  bool
	thrustUp    bool
	thrustDown  bool

	accOverlaps core.Vec2
	numOverlaps int
	numGems     int

	events TickEvents
}

// NewBallController wraps a ball for simulation.
func NewBallController(ball *Ball) *BallController {
	return &BallController{ball: ball}
}

// SetThrusts updates which directions vent gas this tick. Up is towards
// negative y.
func (c *BallController) SetThrusts(up, down, left, right bool) {
	c.thrustUp = up
	c.thrustDown = down
	c.thrustLeft = left
	c.thrustRight = right
}

// Update advances the ball by one tick: queued wall overlaps resolve into
// a single averaged bounce, held thrusters fire, hard drag applies past
// the speed limit and the spent gas shrinks the ball.
func (c *BallController) Update(factor float64) {
	if c.IsDead() {
		return
	}

	if c.numOverlaps > 0 {
		overlap := c.accOverlaps.Scale(1 / float64(c.numOverlaps))
		c.correctAndRigidBounce(overlap)
		c.ball.DecayVelocity(6e-3)
		c.accOverlaps = core.Vec2{}
		c.numOverlaps = 0
	}

	thrust := 6.0e-2 * factor
	effort := 0
	if c.thrustRight {
		c.ball.Thrust(core.V(thrust, 0))
		effort++
	}
	if c.thrustLeft {
		c.ball.Thrust(core.V(-thrust, 0))
		effort++
	}
	if c.thrustUp {
		c.ball.Thrust(core.V(0, -thrust))
		effort++
	}
	if c.thrustDown {
		c.ball.Thrust(core.V(0, thrust))
		effort++
	}

	if c.ball.SpeedSq() > tooMuchSpeedSq {
		c.ball.DecayVelocity(5e-3)
	}

	c.ball.UpdatePosition(factor)
	c.ball.AddSize(float64(effort) * -1.2e-2 * factor)
}

func (c *BallController) correctAndRigidBounce(overlap core.Vec2) {
	c.ball.AddPosition(overlap)
	c.ball.SetVelocity(physics.RigidBounce(c.ball.Velocity(), overlap))
}

// HandleCollision tests the ball against a full collidable and lets the
// object react to any overlap.
func (c *BallController) HandleCollision(object physics.Collidable) {
	info := object.CircleHit(c.ball.Position(), c.ball.Size()/2)
	if info.Hit {
		object.OnCollision(c, info.Overlap)
	}
}

// HandleContact tests the ball against a simple collidable and lets the
// object react to a touch.
func (c *BallController) HandleContact(object physics.SimpleCollidable) {
	if object.CircleTouch(c.ball.Position(), c.ball.Size()/2) {
		object.OnContact(c)
	}
}

// ConsumeEvents returns what the collision callbacks did since the last
// call and clears the record.
func (c *BallController) ConsumeEvents() TickEvents {
	ev := c.events
	c.events = TickEvents{}
	return ev
}

func (c *BallController) Position() core.Vec2 {
	return c.ball.Position()
}

func (c *BallController) Velocity() core.Vec2 {
	return c.ball.Velocity()
}

func (c *BallController) SetPosition(pos core.Vec2) {
	c.ball.SetPosition(pos)
}

func (c *BallController) SetVelocity(vel core.Vec2) {
	c.ball.SetVelocity(vel)
}

// Size returns the ball's diameter.
func (c *BallController) Size() float64 {
	return c.ball.Size()
}

// AddSize inflates or deflates the ball.
func (c *BallController) AddSize(delta float64) {
	c.ball.AddSize(delta)
}

// IsDead reports whether the ball is spent or burst.
func (c *BallController) IsDead() bool {
	return c.ball.IsDead()
}

// Ball exposes the controlled ball for rendering.
func (c *BallController) Ball() *Ball {
	return c.ball
}

// IssueBounce queues a wall overlap for the next update.
func (c *BallController) IssueBounce(overlap core.Vec2) {
	c.accOverlaps = c.accOverlaps.Add(overlap)
	c.numOverlaps++
	c.events.Bounced = true
}

// CorrectAndFlipX shifts the ball out of a vertical border and reverses
// its horizontal velocity.
func (c *BallController) CorrectAndFlipX(dx float64) {
	c.ball.AddPosition(core.V(dx, 0))
	c.ball.FlipVX()
	c.events.Bounced = true
}

// CorrectAndFlipY shifts the ball out of a horizontal border and reverses
// its vertical velocity.
func (c *BallController) CorrectAndFlipY(dy float64) {
	c.ball.AddPosition(core.V(0, dy))
	c.ball.FlipVY()
	c.events.Bounced = true
}

func (c *BallController) AddVelocity(delta core.Vec2) {
	c.ball.AddVelocity(delta)
}

func (c *BallController) AddPosition(delta core.Vec2) {
	c.ball.AddPosition(delta)
}

// Damage deflates the ball.
func (c *BallController) Damage(amount float64) {
	c.ball.AddSize(-amount)
	c.events.Damaged = true
}

// Heal inflates the ball.
func (c *BallController) Heal(amount float64) {
	c.ball.AddSize(amount)
	c.events.Healed = true
}

// PickUp stores a collected item.
func (c *BallController) PickUp(item physics.Item) {
	c.numGems++
	c.events.PickedUp = true
}

// Items reports how many gems the ball carries.
func (c *BallController) Items() int {
	return c.numGems
}
