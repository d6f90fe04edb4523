package game

import (
	"math"
	"testing"

	"github.com/puffgame/puff/internal/assets"
	"github.com/puffgame/puff/internal/core"
	"github.com/puffgame/puff/internal/level"
	"github.com/puffgame/puff/internal/physics"
)

// stubActor records collision feedback without a ball behind it.
type stubActor struct {
	bounces []core.Vec2
	damaged float64
	healed  float64
	items   int
}

func (a *stubActor) IssueBounce(overlap core.Vec2) { a.bounces = append(a.bounces, overlap) }
func (a *stubActor) CorrectAndFlipX(dx float64)    {}
func (a *stubActor) CorrectAndFlipY(dy float64)    {}
func (a *stubActor) AddVelocity(delta core.Vec2)   {}
func (a *stubActor) AddPosition(delta core.Vec2)   {}
func (a *stubActor) Damage(amount float64)         { a.damaged += amount }
func (a *stubActor) Heal(amount float64)           { a.healed += amount }
func (a *stubActor) PickUp(item physics.Item)      { a.items++ }
func (a *stubActor) Items() int                    { return a.items }

func TestPumpHealsThenCoolsDown(t *testing.T) {
	pump, err := NewPump(level.PumpInfo{Pos: level.Pt(0, 0)}, assets.Builtin())
	if err != nil {
		t.Fatalf("NewPump: %v", err)
	}
	actor := &stubActor{}

	pump.OnContact(actor)
	if actor.healed != 1.0 {
		t.Fatalf("healed = %v after first contact, want 1", actor.healed)
	}

	// Still under pressure cooldown.
	pump.OnContact(actor)
	pump.Update(10)
	pump.OnContact(actor)
	if actor.healed != 1.0 {
		t.Fatalf("pump healed again during cooldown, healed = %v", actor.healed)
	}

	// Cooldown of 22 runs out after another 12+ ticks.
	pump.Update(12.1)
	pump.OnContact(actor)
	if actor.healed != 2.0 {
		t.Errorf("healed = %v after cooldown expired, want 2", actor.healed)
	}
}

func TestPumpWheelSpinsAndWraps(t *testing.T) {
	pump, err := NewPump(level.PumpInfo{Pos: level.Pt(0, 0)}, assets.Builtin())
	if err != nil {
		t.Fatalf("NewPump: %v", err)
	}

	pump.Update(100)
	if want := 2.5; !near(pump.Rotation(), want, 1e-12) {
		t.Fatalf("rotation = %v, want %v", pump.Rotation(), want)
	}

	pump.Update(100)
	pump.Update(100)
	if want := 7.5 - 2*math.Pi; !near(pump.Rotation(), want, 1e-9) {
		t.Errorf("rotation did not wrap, got %v, want %v", pump.Rotation(), want)
	}
}

func TestPumpTouchRange(t *testing.T) {
	pump, err := NewPump(level.PumpInfo{Pos: level.Pt(100, 100)}, assets.Builtin())
	if err != nil {
		t.Fatalf("NewPump: %v", err)
	}

	// Reach is half the pump size plus the ball radius, pulled in by 2.
	if !pump.CircleTouch(core.V(129, 100), 14) {
		t.Error("ball at the edge of reach not touched")
	}
	if pump.CircleTouch(core.V(129.1, 100), 14) {
		t.Error("ball beyond reach touched")
	}
}

func TestMineKeepsDamaging(t *testing.T) {
	mine, err := NewMine(level.MineInfo{Pos: level.Pt(100, 100)}, assets.Builtin())
	if err != nil {
		t.Fatalf("NewMine: %v", err)
	}
	actor := &stubActor{}

	mine.OnContact(actor)
	mine.OnContact(actor)
	if actor.damaged != 5.0 {
		t.Errorf("damage after two contacts = %v, want 5", actor.damaged)
	}

	if !mine.CircleTouch(core.V(118, 100), 14) {
		t.Error("ball at the edge of the blast not touched")
	}
	if mine.CircleTouch(core.V(118.1, 100), 14) {
		t.Error("ball beyond the blast touched")
	}
}

func TestGemSingleUse(t *testing.T) {
	gem, err := NewGem(level.GemInfo{Pos: level.Pt(100, 100)}, assets.Builtin())
	if err != nil {
		t.Fatalf("NewGem: %v", err)
	}
	actor := &stubActor{}

	if !gem.CircleTouch(core.V(100, 100), 14) {
		t.Fatal("overlapping gem not touched")
	}
	gem.OnContact(actor)
	if actor.items != 1 {
		t.Fatalf("items = %d after pickup, want 1", actor.items)
	}
	if !gem.PickedUp() {
		t.Fatal("gem not marked as picked up")
	}

	if gem.CircleTouch(core.V(100, 100), 14) {
		t.Error("picked up gem still touches")
	}
	gem.OnContact(actor)
	if actor.items != 1 {
		t.Errorf("items = %d after second contact, want 1", actor.items)
	}
}

func TestFinishNeedsExactGemCount(t *testing.T) {
	lib := assets.Builtin()

	tests := []struct {
		name    string
		carried int
		reached bool
	}{
		{"too few", 1, false},
		{"exact", 2, true},
		{"too many", 3, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			finish, err := NewFinish(level.FinishInfo{Pos: level.Pt(0, 0), GemsRequired: 2}, lib)
			if err != nil {
				t.Fatalf("NewFinish: %v", err)
			}
			finish.OnContact(&stubActor{items: tc.carried})
			if got := finish.Reached(); got != tc.reached {
				t.Errorf("Reached() with %d gems = %v, want %v", tc.carried, got, tc.reached)
			}
		})
	}
}

func TestFinishStopsCollidingOnceReached(t *testing.T) {
	lib := assets.Builtin()
	finish, err := NewFinish(level.FinishInfo{Pos: level.Pt(100, 100), GemsRequired: 0}, lib)
	if err != nil {
		t.Fatalf("NewFinish: %v", err)
	}

	flag := finish.Sprite()
	if !finish.CircleTouch(core.V(100, 100), 14) {
		t.Fatal("unreached finish not touched")
	}
	finish.OnContact(&stubActor{})
	if !finish.Reached() {
		t.Fatal("finish not reached with the exact gem count")
	}

	if finish.CircleTouch(core.V(100, 100), 14) {
		t.Error("reached finish still touches")
	}
	if finish.Sprite() == flag {
		t.Error("reached finish still shows the flag sprite")
	}
}
