package game

import (
	"testing"

	"github.com/puffgame/puff/internal/assets"
	"github.com/puffgame/puff/internal/audio"
	"github.com/puffgame/puff/internal/core"
	"github.com/puffgame/puff/internal/level"
)

const tickDt = 1.0 / 60

// cueRecorder captures played cues for assertions.
type cueRecorder struct {
	cues []audio.Cue
}

func (r *cueRecorder) Play(c audio.Cue) {
	r.cues = append(r.cues, c)
}

func (r *cueRecorder) count(c audio.Cue) int {
	n := 0
	for _, cue := range r.cues {
		if cue == c {
			n++
		}
	}
	return n
}

func testLevel() *level.Level {
	lvl := level.New()
	lvl.Name = "arena"
	lvl.Map = level.Map{Width: 640, Height: 400}
	lvl.BallPos = level.Pt(100, 100)
	return lvl
}

func mustWorld(t *testing.T, lvl *level.Level, player audio.Player) *World {
	t.Helper()
	w, err := NewWorld(lvl, assets.Builtin(), core.DefaultConfig(), player)
	if err != nil {
		t.Fatalf("NewWorld: %v", err)
	}
	return w
}

func TestWorldGemPickup(t *testing.T) {
	lvl := testLevel()
	lvl.Gems = []level.GemInfo{{Pos: level.Pt(100, 100)}, {Pos: level.Pt(500, 100)}}

	rec := &cueRecorder{}
	w := mustWorld(t, lvl, rec)

	if w.GemsTotal() != 2 {
		t.Fatalf("GemsTotal() = %d, want 2", w.GemsTotal())
	}

	w.Update(tickDt)
	if got := w.Ball().Items(); got != 1 {
		t.Fatalf("ball carries %d gems after sitting on one, want 1", got)
	}
	if rec.count(audio.CuePickUp) != 1 {
		t.Errorf("pickup cue played %d times, want 1", rec.count(audio.CuePickUp))
	}

	// The taken gem is spent; nothing more to pick up here.
	w.Update(tickDt)
	if got := w.Ball().Items(); got != 1 {
		t.Errorf("ball carries %d gems, the spent gem fired again", got)
	}
}

func TestWorldFinishTransition(t *testing.T) {
	lvl := testLevel()
	lvl.Finish = &level.FinishInfo{Pos: level.Pt(100, 100), GemsRequired: 0}

	rec := &cueRecorder{}
	w := mustWorld(t, lvl, rec)

	if w.Completed() {
		t.Fatal("world completed before the first tick")
	}
	w.Update(tickDt)
	if !w.Completed() {
		t.Fatal("ball on the flag with the exact gem count did not finish")
	}

	w.Update(tickDt)
	w.Update(tickDt)
	if got := rec.count(audio.CueFinish); got != 1 {
		t.Errorf("finish cue played %d times, want 1", got)
	}
}

func TestWorldFinishRejectsWrongGemCount(t *testing.T) {
	lvl := testLevel()
	lvl.Finish = &level.FinishInfo{Pos: level.Pt(100, 100), GemsRequired: 1}

	w := mustWorld(t, lvl, nil)
	w.Update(tickDt)
	if w.Completed() {
		t.Error("finished while a gem was still missing")
	}
}

func TestWorldMineGrindsBallDown(t *testing.T) {
	lvl := testLevel()
	lvl.Mines = []level.MineInfo{{Pos: level.Pt(100, 100)}}

	rec := &cueRecorder{}
	w := mustWorld(t, lvl, rec)

	// 2.5 damage per tick: ten ticks take the default 28 below 4.
	for i := 0; i < 10; i++ {
		if w.Ball().IsDead() {
			t.Fatalf("ball died early on tick %d", i)
		}
		w.Update(tickDt)
	}

	if !w.Ball().IsDead() {
		t.Fatalf("ball alive at size %v after ten ticks on a mine", w.Ball().Size())
	}
	if got := rec.count(audio.CueDamage); got != 10 {
		t.Errorf("damage cue played %d times, want 10", got)
	}
	if got := rec.count(audio.CueDeath); got != 1 {
		t.Errorf("death cue played %d times, want 1", got)
	}

	// Staying on the mine does not announce death twice.
	w.Update(tickDt)
	if got := rec.count(audio.CueDeath); got != 1 {
		t.Errorf("death cue replayed, %d times total", got)
	}
}

func TestWorldBorderBouncesBall(t *testing.T) {
	lvl := testLevel()
	lvl.BallPos = level.Pt(10, 100)

	rec := &cueRecorder{}
	w := mustWorld(t, lvl, rec)
	w.Ball().SetVelocity(core.V(-4, 0))

	w.Update(tickDt)

	if got := w.Ball().Velocity().X; got <= 0 {
		t.Errorf("velocity x = %v after hitting the left border, want positive", got)
	}
	if rec.count(audio.CueBounce) != 1 {
		t.Errorf("bounce cue played %d times, want 1", rec.count(audio.CueBounce))
	}
}

func TestWorldPumpRefillsBall(t *testing.T) {
	lvl := testLevel()
	lvl.Pumps = []level.PumpInfo{{Pos: level.Pt(100, 100)}}

	rec := &cueRecorder{}
	w := mustWorld(t, lvl, rec)
	w.Ball().AddSize(-10)

	w.Update(tickDt)
	if want := BallDefaultSize - 10 + 1; !near(w.Ball().Size(), want, 1e-9) {
		t.Errorf("size = %v after one pump stroke, want %v", w.Ball().Size(), want)
	}

	// The pump is under cooldown for the next 22 ticks.
	w.Update(tickDt)
	if got := rec.count(audio.CuePump); got != 1 {
		t.Errorf("pump cue played %d times, want 1", got)
	}
}

func TestWorldTicksCountCanonicalTime(t *testing.T) {
	w := mustWorld(t, testLevel(), nil)

	// 30 ticks at the canonical rate are half a second.
	for i := 0; i < 30; i++ {
		w.Update(tickDt)
	}
	if got := w.Ticks(); got != 30 {
		t.Errorf("Ticks() = %d after 30 canonical updates, want 30", got)
	}

	// A slower tick rate takes bigger steps; the clock still counts
	// simulated time.
	w2 := mustWorld(t, testLevel(), nil)
	for i := 0; i < 15; i++ {
		w2.Update(1.0 / 30)
	}
	if got := w2.Ticks(); got != 30 {
		t.Errorf("Ticks() = %d after half a second at 30 ups, want 30", got)
	}
}

func TestWorldClockFreezesOnDeath(t *testing.T) {
	lvl := testLevel()
	lvl.Mines = []level.MineInfo{{Pos: level.Pt(100, 100)}}

	w := mustWorld(t, lvl, nil)
	for i := 0; i < 10; i++ {
		w.Update(tickDt)
	}
	if !w.Ball().IsDead() {
		t.Fatalf("ball alive at size %v, the mine should have spent it", w.Ball().Size())
	}

	frozen := w.Ticks()
	w.Update(tickDt)
	w.Update(tickDt)
	if got := w.Ticks(); got != frozen {
		t.Errorf("Ticks() = %d after death, want frozen at %d", got, frozen)
	}
}

func TestWorldCameraStartsOnBall(t *testing.T) {
	lvl := testLevel()
	lvl.BallPos = level.Pt(320, 200)

	w := mustWorld(t, lvl, nil)
	if want := core.V(160, 100); !vecNear(w.Camera().Position(), want, 1e-12) {
		t.Errorf("camera = %v, want centered at %v", w.Camera().Position(), want)
	}
}

func TestWorldRejectsUnknownWallTexture(t *testing.T) {
	lvl := testLevel()
	lvl.Walls = []level.WallInfo{{Pos: level.Pt(0, 0), Dim: level.Pt(48, 48), TextureID: 42}}

	if _, err := NewWorld(lvl, assets.Builtin(), core.DefaultConfig(), nil); err == nil {
		t.Fatal("expected an error for a wall texture the library does not have")
	}
}

func TestWorldGridSceneBehavesLikeFlat(t *testing.T) {
	lvl := testLevel()
	lvl.Gems = []level.GemInfo{{Pos: level.Pt(100, 100)}}

	cfg := core.DefaultConfig()
	cfg.Scene = core.SceneGrid
	w, err := NewWorld(lvl, assets.Builtin(), cfg, nil)
	if err != nil {
		t.Fatalf("NewWorld: %v", err)
	}

	w.Update(tickDt)
	if got := w.Ball().Items(); got != 1 {
		t.Errorf("grid-indexed world missed the gem under the ball, items = %d", got)
	}
}
