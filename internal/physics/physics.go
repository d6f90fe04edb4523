// Package physics defines the collision model between the ball and
// everything it can touch. Full collisions report an overlap vector that
// both separates the shapes and serves as the contact normal; simple
// contacts only report that a touch happened. Both act back on the moving
// object through the Actor interface.
package physics

import "github.com/puffgame/puff/internal/core"

// Item identifies a pickup kind carried by PickUp.
type Item int

const (
	// ItemGem is the collectible counted against a level's finish flag.
	ItemGem Item = iota
)

// Actor is the contract for an object that moves through the level and
// reacts to collisions. Walls request a bounce through IssueBounce;
// requests accumulate and are resolved once per tick. Map borders correct
// the position immediately and flip one velocity axis.
type Actor interface {
	// IssueBounce records a wall overlap to be resolved on the next update.
	IssueBounce(overlap core.Vec2)

	// CorrectAndFlipX shifts the actor by dx and reverses its horizontal
	// velocity.
	CorrectAndFlipX(dx float64)

	// CorrectAndFlipY shifts the actor by dy and reverses its vertical
	// velocity.
	CorrectAndFlipY(dy float64)

	// AddVelocity adds to the actor's velocity.
	AddVelocity(delta core.Vec2)

	// AddPosition translates the actor.
	AddPosition(delta core.Vec2)

	// Damage shrinks the actor by the given amount.
	Damage(amount float64)

	// Heal grows the actor by the given amount.
	Heal(amount float64)

	// PickUp hands an item to the actor.
	PickUp(item Item)

	// Items reports how many gems the actor holds.
	Items() int
}

// Positioned is implemented by props that occupy a single world position,
// which spatial indices use as the bucketing key.
type Positioned interface {
	Position() core.Vec2
}
