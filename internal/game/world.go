// Package game implements the playable simulation: the ball and its
// physics, the props it collides with, the camera and the per-tick world
// update. Screens in this package and its siblings plug into the platform
// through the app contract.
package game

import (
	"math"

	"github.com/puffgame/puff/internal/assets"
	"github.com/puffgame/puff/internal/audio"
	"github.com/puffgame/puff/internal/core"
	"github.com/puffgame/puff/internal/level"
	"github.com/puffgame/puff/internal/scene"
)

// TicksPerSecond is the canonical simulation rate all tuning constants
// are written for. Other tick rates scale their per-tick step so one
// simulated second covers the same ground.
const TicksPerSecond = 60

// World is one level being simulated: the ball, the props built from the
// level records and the camera over the map.
type World struct {
	level  *level.Level
	ball   *BallController
	camera *Camera
	player audio.Player

	walls  scene.Scene[*Wall]
	pumps  []*Pump
	mines  scene.Scene[*Mine]
	gems   scene.Scene[*Gem]
	finish *Finish

	elapsed     float64
	wasDead     bool
	wasFinished bool
}

// NewWorld builds the simulation for one level. Scene indexing follows
// the runtime configuration.
func NewWorld(lvl *level.Level, lib *assets.Library, cfg core.RuntimeConfig, player audio.Player) (*World, error) {
	if player == nil {
		player = audio.NullPlayer{}
	}

	ball := NewBallController(NewDefaultBall(lvl.BallPosition()))
	camera := NewCamera(core.V(0, 0), cfg.ViewportW(), cfg.ViewportH())
	camera.FocusOn(lvl.BallPosition(), lvl.Map.Dimensions())

	w := &World{
		level:  lvl,
		ball:   ball,
		camera: camera,
		player: player,
		walls:  scene.New[*Wall](cfg.Scene, cfg.GridCell),
		mines:  scene.New[*Mine](cfg.Scene, cfg.GridCell),
		gems:   scene.New[*Gem](cfg.Scene, cfg.GridCell),
	}

	for _, info := range lvl.Walls {
		wall, err := NewWall(info, lib)
		if err != nil {
			return nil, err
		}
		w.walls.Insert(wall)
	}
	for _, info := range lvl.Pumps {
		pump, err := NewPump(info, lib)
		if err != nil {
			return nil, err
		}
		w.pumps = append(w.pumps, pump)
	}
	for _, info := range lvl.Mines {
		mine, err := NewMine(info, lib)
		if err != nil {
			return nil, err
		}
		w.mines.Insert(mine)
	}
	for _, info := range lvl.Gems {
		gem, err := NewGem(info, lib)
		if err != nil {
			return nil, err
		}
		w.gems.Insert(gem)
	}
	if lvl.Finish != nil {
		finish, err := NewFinish(*lvl.Finish, lib)
		if err != nil {
			return nil, err
		}
		w.finish = finish
	}

	return w, nil
}

// Update advances the simulation by dt seconds. One tick runs the pumps,
// the border and prop collision passes, the ball and finally the camera.
func (w *World) Update(dt float64) {
	factor := TicksPerSecond * dt
	if !w.ball.IsDead() && !w.Completed() {
		w.elapsed += dt
	}

	for _, pump := range w.pumps {
		pump.Update(factor)
	}

	m := w.level.Map
	w.ball.HandleCollision(m.LeftBorder())
	w.ball.HandleCollision(m.RightBorder())
	w.ball.HandleCollision(m.UpBorder())
	w.ball.HandleCollision(m.DownBorder())

	for _, wall := range w.walls.At(w.ball.Position()) {
		w.ball.HandleCollision(wall)
	}
	for _, pump := range w.pumps {
		w.ball.HandleContact(pump)
	}
	for _, mine := range w.mines.At(w.ball.Position()) {
		w.ball.HandleContact(mine)
	}
	for _, gem := range w.gems.At(w.ball.Position()) {
		w.ball.HandleContact(gem)
	}
	if w.finish != nil {
		w.ball.HandleContact(w.finish)
	}

	w.ball.Update(factor)
	w.camera.SoftFocusOn(w.ball.Position(), m.Dimensions())

	w.fireCues()
}

// fireCues turns this tick's collision feedback and state transitions
// into sound cues.
func (w *World) fireCues() {
	ev := w.ball.ConsumeEvents()
	if ev.Bounced {
		w.player.Play(audio.CueBounce)
	}
	if ev.Damaged {
		w.player.Play(audio.CueDamage)
	}
	if ev.Healed {
		w.player.Play(audio.CuePump)
	}
	if ev.PickedUp {
		w.player.Play(audio.CuePickUp)
	}
	if dead := w.ball.IsDead(); dead && !w.wasDead {
		w.player.Play(audio.CueDeath)
		w.wasDead = dead
	}
	if done := w.Completed(); done && !w.wasFinished {
		w.player.Play(audio.CueFinish)
		w.wasFinished = done
	}
}

// Ball returns the controlled ball.
func (w *World) Ball() *BallController {
	return w.ball
}

// Camera returns the world's camera.
func (w *World) Camera() *Camera {
	return w.camera
}

// Level returns the level being played.
func (w *World) Level() *level.Level {
	return w.level
}

// Finish returns the finish flag, or nil for levels without one.
func (w *World) Finish() *Finish {
	return w.finish
}

// Completed reports whether the finish flag has been reached.
func (w *World) Completed() bool {
	return w.finish != nil && w.finish.Reached()
}

// Ticks reports the run's length in canonical ticks, regardless of the
// configured tick rate. The clock freezes once the ball dies or the
// finish is reached, so stored times compare across sessions.
func (w *World) Ticks() int {
	return int(math.Round(w.elapsed * TicksPerSecond))
}

// SetViewport resizes the camera viewport, in world units, and clamps
// it back inside the map.
func (w *World) SetViewport(width, height float64) {
	w.camera.SetViewport(width, height)
	w.camera.ClampToBounds(w.level.Map.Dimensions())
}

// GemsTotal reports how many gems the level started with.
func (w *World) GemsTotal() int {
	return w.gems.Len()
}

// EachWall visits every wall for rendering.
func (w *World) EachWall(fn func(*Wall)) {
	w.walls.Each(fn)
}

// EachPump visits every pump for rendering.
func (w *World) EachPump(fn func(*Pump)) {
	for _, p := range w.pumps {
		fn(p)
	}
}

// EachMine visits every mine for rendering.
func (w *World) EachMine(fn func(*Mine)) {
	w.mines.Each(fn)
}

// EachGem visits every gem for rendering.
func (w *World) EachGem(fn func(*Gem)) {
	w.gems.Each(fn)
}
