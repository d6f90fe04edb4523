package game

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/puffgame/puff/internal/app"
	"github.com/puffgame/puff/internal/core"
)

const hudGaugeWidth = 10

// RunRecord is the outcome of one play-through, ready for persistence.
type RunRecord struct {
	Level     string
	Completed bool
	Gems      int
	Ticks     int
	FinalSize float64
}

// PlayScreen runs one level until the player leaves, the ball dies or
// the finish flag is reached.
type PlayScreen struct {
	world *World

	// note is an extra line under the end-of-run banner, set by the
	// platform after the run is recorded.
	note string
}

// NewPlayScreen wraps a world for interactive play.
func NewPlayScreen(w *World) *PlayScreen {
	return &PlayScreen{world: w}
}

// World returns the simulated world.
func (p *PlayScreen) World() *World {
	return p.world
}

// Over reports whether the run has ended, by death or by finish.
func (p *PlayScreen) Over() bool {
	return p.world.Ball().IsDead() || p.world.Completed()
}

// Record captures the run's outcome for persistence.
func (p *PlayScreen) Record() RunRecord {
	return RunRecord{
		Level:     p.world.Level().Name,
		Completed: p.world.Completed(),
		Gems:      p.world.Ball().Items(),
		Ticks:     p.world.Ticks(),
		FinalSize: p.world.Ball().Size(),
	}
}

// SetResultNote sets the line shown under the end-of-run banner.
func (p *PlayScreen) SetResultNote(note string) {
	p.note = note
}

// SetViewport resizes the world's camera, in world units.
func (p *PlayScreen) SetViewport(width, height float64) {
	p.world.SetViewport(width, height)
}

func (p *PlayScreen) HandleInput(frame core.InputFrame) *app.Action {
	if frame.Has(core.ActionBack) {
		return app.OpenTitle()
	}
	if frame.Has(core.ActionEditor) {
		return app.OpenEditor("")
	}
	if frame.Has(core.ActionConfirm) && (p.world.Ball().IsDead() || p.world.Completed()) {
		return app.OpenTitle()
	}

	p.world.Ball().SetThrusts(
		frame.IsHeld(core.ActionUp),
		frame.IsHeld(core.ActionDown),
		frame.IsHeld(core.ActionLeft),
		frame.IsHeld(core.ActionRight),
	)
	return nil
}

func (p *PlayScreen) Update(dt float64) *app.Action {
	p.world.Update(dt)
	return nil
}

func (p *PlayScreen) Render(s *core.Screen) {
	RenderWorld(s, p.world)
	p.drawHUD(s)
}

func (p *PlayScreen) drawHUD(s *core.Screen) {
	ball := p.world.Ball()
	s.DrawText(1, 0, p.world.Level().Name, core.ColorWhite)

	filled := int(float64(hudGaugeWidth) * ball.Size() / BallCapacity)
	filled = core.Clamp(filled, 0, hudGaugeWidth)
	bar := strings.Repeat("█", filled) + strings.Repeat("·", hudGaugeWidth-filled)
	hud := fmt.Sprintf("◆ %d/%d  [%s]", ball.Items(), p.world.GemsTotal(), bar)

	color := core.ColorBrightCyan
	switch {
	case ball.Size() < 5.5:
		color = core.ColorMagenta
	case ball.Size() > BallCapacity-2.5:
		color = core.ColorBrightWhite
	}
	s.DrawText(s.Width()-utf8.RuneCountInString(hud)-1, 0, hud, color)

	switch {
	case ball.IsDead():
		s.DrawTextCentered(s.Height()/2, "THE BALL IS GONE - PRESS ENTER", core.ColorBrightRed)
	case p.world.Completed():
		s.DrawTextCentered(s.Height()/2, "LEVEL COMPLETE - PRESS ENTER", core.ColorBrightGreen)
	}
	if p.note != "" && p.Over() {
		s.DrawTextCentered(s.Height()/2+1, p.note, core.ColorGray)
	}
}
