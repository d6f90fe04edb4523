package game

import (
	"math"

	"github.com/puffgame/puff/internal/assets"
	"github.com/puffgame/puff/internal/core"
)

// CellOf projects a world position through the camera into screen cell
// coordinates.
func (c *Camera) CellOf(p core.Vec2) (int, int) {
	rel := p.Sub(c.pos)
	return int(math.Floor(rel.X / core.CellW)), int(math.Floor(rel.Y / core.CellH))
}

// DrawSprite draws one sprite frame with its top-left corner at the given
// world position.
func DrawSprite(s *core.Screen, cam *Camera, spr *assets.Sprite, frame int, topLeft core.Vec2) {
	x, y := cam.CellOf(topLeft)
	spr.Blit(s, frame, x, y)
}

// DrawSpriteAt draws one sprite frame centered on a world position.
func DrawSpriteAt(s *core.Screen, cam *Camera, spr *assets.Sprite, frame int, center core.Vec2) {
	DrawSprite(s, cam, spr, frame, center.Sub(spr.Dimensions().Scale(0.5)))
}

// DrawWall tiles the wall's texture across its extent.
func DrawWall(s *core.Screen, cam *Camera, w *Wall) {
	spr := w.Sprite()
	frame := spr.Frame(0)
	if len(frame) == 0 {
		return
	}
	x0, y0 := cam.CellOf(w.Position())
	cols := int(math.Round(w.Dimensions().X / core.CellW))
	rows := int(math.Round(w.Dimensions().Y / core.CellH))
	for j := 0; j < rows; j++ {
		row := []rune(frame[j%len(frame)])
		if len(row) == 0 {
			continue
		}
		for i := 0; i < cols; i++ {
			if r := row[i%len(row)]; r != ' ' {
				s.Set(x0+i, y0+j, r, spr.Color())
			}
		}
	}
}

// DrawBall draws the ball as a filled ellipse. Color follows its state:
// nearly spent, nearly bursting or healthy.
func DrawBall(s *core.Screen, cam *Camera, b *Ball) {
	if b.IsDead() {
		return
	}
	color := core.ColorBrightCyan
	switch {
	case b.Size() < 5.5:
		color = core.ColorMagenta
	case b.Size() > BallCapacity-2.5:
		color = core.ColorBrightWhite
	}

	// Drawn slightly larger than the collision size, like a soft shell.
	half := b.Size()/2 + 2
	topLeft := b.Position().Sub(core.V(half, half))
	x0, y0 := cam.CellOf(topLeft)
	x1, y1 := cam.CellOf(topLeft.Add(core.V(2*half, 2*half)))
	r := core.NewRect(x0, y0, core.Max(x1-x0, 1), core.Max(y1-y0, 1))
	s.DrawEllipse(r, '█', color)
}

// DrawPump draws a pump with its wheel frame chosen by rotation.
func DrawPump(s *core.Screen, cam *Camera, p *Pump) {
	spr := p.Sprite()
	frame := int(p.Rotation() / (2 * math.Pi) * float64(spr.FrameCount()))
	DrawSpriteAt(s, cam, spr, frame, p.Position())
}

// RenderWorld draws the visible slice of the world in back-to-front
// order: walls, mines, gems, finish, ball, pumps.
func RenderWorld(s *core.Screen, w *World) {
	s.Clear()
	cam := w.Camera()
	w.EachWall(func(wall *Wall) {
		DrawWall(s, cam, wall)
	})
	w.EachMine(func(m *Mine) {
		DrawSpriteAt(s, cam, m.Sprite(), 0, m.Position())
	})
	w.EachGem(func(g *Gem) {
		if g.PickedUp() {
			return
		}
		DrawSpriteAt(s, cam, g.Sprite(), 0, g.Position())
	})
	if f := w.Finish(); f != nil {
		DrawSpriteAt(s, cam, f.Sprite(), 0, f.Position())
	}
	DrawBall(s, cam, w.Ball().Ball())
	w.EachPump(func(p *Pump) {
		DrawPump(s, cam, p)
	})
}
