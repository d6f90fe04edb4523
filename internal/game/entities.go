package game

import (
	"math"

	"github.com/puffgame/puff/internal/assets"
	"github.com/puffgame/puff/internal/core"
	"github.com/puffgame/puff/internal/level"
	"github.com/puffgame/puff/internal/physics"
)

// Entity diameters in world units.
const (
	PumpSize   = 34.0
	MineSize   = 6.0
	GemSize    = 24.0
	FinishSize = 24.0
)

// Pump refills a touching ball, then needs a short while to build
// pressure again. Its wheel spins constantly.
type Pump struct {
	pos        core.Vec2
	sprite     *assets.Sprite
	timeToPump float64
	rot        float64
}

// NewPump builds a pump from its level record.
func NewPump(info level.PumpInfo, lib *assets.Library) (*Pump, error) {
	sprite, err := lib.Sprite(assets.Pump)
	if err != nil {
		return nil, err
	}
	return &Pump{pos: info.Pos.Vec(), sprite: sprite}, nil
}

func (p *Pump) Position() core.Vec2 {
	return p.pos
}

func (p *Pump) Sprite() *assets.Sprite {
	return p.sprite
}

// Rotation returns the wheel angle in radians, within [0, 2pi).
func (p *Pump) Rotation() float64 {
	return p.rot
}

// Update spins the wheel and cools the pump down.
func (p *Pump) Update(factor float64) {
	p.rot += 0.025 * factor
	if p.rot > 2*math.Pi {
		p.rot -= 2 * math.Pi
	}
	if p.timeToPump > 0 {
		p.timeToPump -= factor
	}
}

func (p *Pump) CircleTouch(center core.Vec2, radius float64) bool {
	d := PumpSize/2 + radius - 2
	return p.pos.Sub(center).LenSq() <= d*d
}

// OnContact refills the ball by one unit if the pump has pressure, then
// starts the cooldown.
func (p *Pump) OnContact(a physics.Actor) {
	if p.timeToPump <= 0 {
		a.Heal(1.0)
		p.timeToPump += 22
	}
}

// Mine deflates the ball on every tick of contact. It never runs out.
type Mine struct {
	pos    core.Vec2
	sprite *assets.Sprite
}

// NewMine builds a mine from its level record.
func NewMine(info level.MineInfo, lib *assets.Library) (*Mine, error) {
	sprite, err := lib.Sprite(assets.Mine)
	if err != nil {
		return nil, err
	}
	return &Mine{pos: info.Pos.Vec(), sprite: sprite}, nil
}

func (m *Mine) Position() core.Vec2 {
	return m.pos
}

func (m *Mine) Sprite() *assets.Sprite {
	return m.sprite
}

func (m *Mine) CircleTouch(center core.Vec2, radius float64) bool {
	d := MineSize/2 + radius + 1
	return m.pos.Sub(center).LenSq() <= d*d
}

func (m *Mine) OnContact(a physics.Actor) {
	a.Damage(2.5)
}

// Gem is a one-shot pickup. Once taken it stops touching anything and is
// no longer drawn.
type Gem struct {
	pos      core.Vec2
	sprite   *assets.Sprite
	pickedUp bool
}

// NewGem builds a gem from its level record.
func NewGem(info level.GemInfo, lib *assets.Library) (*Gem, error) {
	sprite, err := lib.Sprite(assets.Gem)
	if err != nil {
		return nil, err
	}
	return &Gem{pos: info.Pos.Vec(), sprite: sprite}, nil
}

func (g *Gem) Position() core.Vec2 {
	return g.pos
}

func (g *Gem) Sprite() *assets.Sprite {
	return g.sprite
}

// PickedUp reports whether the gem has been collected.
func (g *Gem) PickedUp() bool {
	return g.pickedUp
}

func (g *Gem) CircleTouch(center core.Vec2, radius float64) bool {
	if g.pickedUp {
		return false
	}
	d := GemSize/2 + radius + 1
	return g.pos.Sub(center).LenSq() <= d*d
}

func (g *Gem) OnContact(a physics.Actor) {
	if g.pickedUp {
		return
	}
	a.PickUp(physics.ItemGem)
	g.pickedUp = true
}

// Finish is the level's goal flag. It triggers only for a ball carrying
// exactly the required number of gems, and only once.
type Finish struct {
	pos          core.Vec2
	sprite       *assets.Sprite
	checkSprite  *assets.Sprite
	reached      bool
	gemsRequired int
}

// NewFinish builds the finish flag from its level record.
func NewFinish(info level.FinishInfo, lib *assets.Library) (*Finish, error) {
	sprite, err := lib.Sprite(assets.Flag)
	if err != nil {
		return nil, err
	}
	check, err := lib.Sprite(assets.Check)
	if err != nil {
		return nil, err
	}
	return &Finish{
		pos:          info.Pos.Vec(),
		sprite:       sprite,
		checkSprite:  check,
		gemsRequired: info.GemsRequired,
	}, nil
}

func (f *Finish) Position() core.Vec2 {
	return f.pos
}

// Sprite returns the flag, or the check mark once the flag is reached.
func (f *Finish) Sprite() *assets.Sprite {
	if f.reached {
		return f.checkSprite
	}
	return f.sprite
}

// Reached reports whether the level has been completed.
func (f *Finish) Reached() bool {
	return f.reached
}

// GemsRequired reports how many gems the ball must carry to finish.
func (f *Finish) GemsRequired() int {
	return f.gemsRequired
}

func (f *Finish) CircleTouch(center core.Vec2, radius float64) bool {
	if f.reached {
		return false
	}
	d := FinishSize/2 + radius + 1
	return f.pos.Sub(center).LenSq() <= d*d
}

func (f *Finish) OnContact(a physics.Actor) {
	if !f.reached && a.Items() == f.gemsRequired {
		f.reached = true
	}
}
