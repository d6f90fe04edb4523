package physics

import (
	"testing"

	"github.com/puffgame/puff/internal/core"
)

// recordingActor captures Actor callbacks so tests can assert on dispatch.
type recordingActor struct {
	bounces  []core.Vec2
	flipsX   []float64
	flipsY   []float64
	velAdds  []core.Vec2
	posAdds  []core.Vec2
	damage   float64
	healed   float64
	items    []Item
	gemCount int
}

func (r *recordingActor) IssueBounce(overlap core.Vec2)  { r.bounces = append(r.bounces, overlap) }
func (r *recordingActor) CorrectAndFlipX(shift float64)  { r.flipsX = append(r.flipsX, shift) }
func (r *recordingActor) CorrectAndFlipY(shift float64)  { r.flipsY = append(r.flipsY, shift) }
func (r *recordingActor) AddVelocity(delta core.Vec2)    { r.velAdds = append(r.velAdds, delta) }
func (r *recordingActor) AddPosition(delta core.Vec2)    { r.posAdds = append(r.posAdds, delta) }
func (r *recordingActor) Damage(amount float64)          { r.damage += amount }
func (r *recordingActor) Heal(amount float64)            { r.healed += amount }
func (r *recordingActor) PickUp(item Item)               { r.items = append(r.items, item); r.gemCount++ }
func (r *recordingActor) Items() int                     { return r.gemCount }

func TestBorderCircleHit(t *testing.T) {
	tests := []struct {
		name    string
		border  Collidable
		center  core.Vec2
		radius  float64
		hit     bool
		overlap core.Vec2
	}{
		{"left overlapping", LeftBorder(0), core.V(10, 50), 14, true, core.V(4, 0)},
		{"left clear", LeftBorder(0), core.V(20, 50), 14, false, core.Vec2{}},
		{"left touching", LeftBorder(0), core.V(14, 50), 14, false, core.Vec2{}},
		{"right overlapping", RightBorder(320), core.V(310, 50), 14, true, core.V(-4, 0)},
		{"right clear", RightBorder(320), core.V(300, 50), 14, false, core.Vec2{}},
		{"right touching", RightBorder(320), core.V(306, 50), 14, true, core.V(0, 0)},
		{"up overlapping", UpBorder(0), core.V(50, 10), 14, true, core.V(0, 4)},
		{"up clear", UpBorder(0), core.V(50, 20), 14, false, core.Vec2{}},
		{"up touching", UpBorder(0), core.V(50, 14), 14, false, core.Vec2{}},
		{"down overlapping", DownBorder(200), core.V(50, 190), 14, true, core.V(0, -4)},
		{"down clear", DownBorder(200), core.V(50, 180), 14, false, core.Vec2{}},
		{"down touching", DownBorder(200), core.V(50, 186), 14, true, core.V(0, 0)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			info := tc.border.CircleHit(tc.center, tc.radius)
			if info.Hit != tc.hit {
				t.Fatalf("CircleHit(%v, %v) hit = %v, expected %v", tc.center, tc.radius, info.Hit, tc.hit)
			}
			if info.Hit && info.Overlap != tc.overlap {
				t.Errorf("CircleHit(%v, %v) overlap = %v, expected %v", tc.center, tc.radius, info.Overlap, tc.overlap)
			}
		})
	}
}

func TestBorderOnCollisionDispatch(t *testing.T) {
	t.Run("horizontal borders correct x", func(t *testing.T) {
		actor := &recordingActor{}
		LeftBorder(0).OnCollision(actor, core.V(4, 0))
		RightBorder(320).OnCollision(actor, core.V(-6, 0))
		if len(actor.flipsX) != 2 || actor.flipsX[0] != 4 || actor.flipsX[1] != -6 {
			t.Errorf("flipsX = %v, expected [4 -6]", actor.flipsX)
		}
		if len(actor.flipsY) != 0 || len(actor.bounces) != 0 {
			t.Errorf("unexpected callbacks: flipsY=%v bounces=%v", actor.flipsY, actor.bounces)
		}
	})

	t.Run("vertical borders correct y", func(t *testing.T) {
		actor := &recordingActor{}
		UpBorder(0).OnCollision(actor, core.V(0, 3))
		DownBorder(200).OnCollision(actor, core.V(0, -5))
		if len(actor.flipsY) != 2 || actor.flipsY[0] != 3 || actor.flipsY[1] != -5 {
			t.Errorf("flipsY = %v, expected [3 -5]", actor.flipsY)
		}
		if len(actor.flipsX) != 0 || len(actor.bounces) != 0 {
			t.Errorf("unexpected callbacks: flipsX=%v bounces=%v", actor.flipsX, actor.bounces)
		}
	})
}
