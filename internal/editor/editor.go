// Package editor implements the level editor screen. A cursor moves
// over the map placing and removing objects; the result is saved into
// the levels directory in the current file format.
package editor

import (
	"fmt"
	"math"
	"unicode/utf8"

	"github.com/puffgame/puff/internal/app"
	"github.com/puffgame/puff/internal/assets"
	"github.com/puffgame/puff/internal/core"
	"github.com/puffgame/puff/internal/game"
	"github.com/puffgame/puff/internal/level"
	"github.com/puffgame/puff/internal/physics"
)

// Camera pan per key press, in world units.
const panStep = 16.0

// Editor mutates one level in place. Entity slices run parallel to the
// level's info slices so removal by index keeps both in sync.
type Editor struct {
	level *level.Level
	lib   *assets.Library
	cfg   core.RuntimeConfig

	ball   *game.BallController
	walls  []*game.Wall
	pumps  []*game.Pump
	mines  []*game.Mine
	gems   []*game.Gem
	finish *game.Finish

	camera      *game.Camera
	cursor      core.Vec2
	placeholder Placeholder
	status      string
}

// New opens the editor on a fresh default level.
func New(lib *assets.Library, cfg core.RuntimeConfig) (*Editor, error) {
	lvl := level.New()
	lvl.Version = level.CurrentVersion
	return withLevel(lvl, lib, cfg)
}

// Load opens the editor on an existing level file.
func Load(path string, lib *assets.Library, cfg core.RuntimeConfig) (*Editor, error) {
	lvl, err := level.Load(path)
	if err != nil {
		return nil, err
	}
	return withLevel(lvl, lib, cfg)
}

func withLevel(lvl *level.Level, lib *assets.Library, cfg core.RuntimeConfig) (*Editor, error) {
	e := &Editor{
		level:       lvl,
		lib:         lib,
		cfg:         cfg,
		ball:        game.NewBallController(game.NewDefaultBall(lvl.BallPosition())),
		camera:      game.NewCamera(core.V(0, 0), cfg.ViewportW(), cfg.ViewportH()),
		cursor:      lvl.BallPosition(),
		placeholder: defaultWall(),
	}
	e.camera.FocusOn(lvl.BallPosition(), lvl.Map.Dimensions())

	for _, info := range lvl.Walls {
		wall, err := game.NewWall(info, lib)
		if err != nil {
			return nil, err
		}
		e.walls = append(e.walls, wall)
	}
	for _, info := range lvl.Pumps {
		pump, err := game.NewPump(info, lib)
		if err != nil {
			return nil, err
		}
		e.pumps = append(e.pumps, pump)
	}
	for _, info := range lvl.Mines {
		mine, err := game.NewMine(info, lib)
		if err != nil {
			return nil, err
		}
		e.mines = append(e.mines, mine)
	}
	for _, info := range lvl.Gems {
		gem, err := game.NewGem(info, lib)
		if err != nil {
			return nil, err
		}
		e.gems = append(e.gems, gem)
	}
	if lvl.Finish != nil {
		finish, err := game.NewFinish(*lvl.Finish, lib)
		if err != nil {
			return nil, err
		}
		e.finish = finish
	}
	e.refreshWallDims()
	return e, nil
}

// Level exposes the level being edited.
func (e *Editor) Level() *level.Level {
	return e.level
}

// Cursor returns the logical cursor position on the map.
func (e *Editor) Cursor() core.Vec2 {
	return e.cursor
}

// SetViewport resizes the camera viewport, in world units.
func (e *Editor) SetViewport(width, height float64) {
	e.camera.SetViewport(width, height)
	e.camera.ClampToBounds(e.level.Map.Dimensions())
}

func (e *Editor) HandleInput(frame core.InputFrame) *app.Action {
	if frame.Has(core.ActionBack) {
		return app.OpenTitle()
	}
	if frame.Has(core.ActionSave) {
		e.saveLevel()
	}
	if frame.Has(core.ActionCycleNext) {
		e.placeholder = e.placeholder.Next()
		e.refreshWallDims()
	}
	if frame.Has(core.ActionCyclePrev) {
		e.placeholder = e.placeholder.Prev()
		e.refreshWallDims()
	}
	if frame.Has(core.ActionTexPrev) {
		e.rollTexture(-1)
	}
	if frame.Has(core.ActionTexNext) {
		e.rollTexture(+1)
	}
	if frame.Has(core.ActionConfirm) {
		if err := e.place(); err != nil {
			e.status = "cannot place: " + err.Error()
		}
	}
	if frame.Has(core.ActionRemove) {
		e.removeAt(e.cursor)
	}
	e.moveCursor(frame)
	e.panCamera(frame)
	return nil
}

func (e *Editor) Update(dt float64) *app.Action {
	return nil
}

func (e *Editor) moveCursor(frame core.InputFrame) {
	var d core.Vec2
	if frame.Has(core.ActionLeft) {
		d.X -= core.CellW
	}
	if frame.Has(core.ActionRight) {
		d.X += core.CellW
	}
	if frame.Has(core.ActionUp) {
		d.Y -= core.CellH
	}
	if frame.Has(core.ActionDown) {
		d.Y += core.CellH
	}
	if d == (core.Vec2{}) {
		return
	}
	e.cursor = e.cursor.Add(d)
	e.camera.SoftFocusOn(e.cursor, e.level.Map.Dimensions())
}

func (e *Editor) panCamera(frame core.InputFrame) {
	var d core.Vec2
	if frame.Has(core.ActionPanLeft) {
		d.X -= panStep
	}
	if frame.Has(core.ActionPanRight) {
		d.X += panStep
	}
	if frame.Has(core.ActionPanUp) {
		d.Y -= panStep
	}
	if frame.Has(core.ActionPanDown) {
		d.Y += panStep
	}
	if d == (core.Vec2{}) {
		return
	}
	e.camera.Pan(d)
	e.camera.ClampToBounds(e.level.Map.Dimensions())
	e.camera.RoundPosition()
}

// snapToGrid aligns a position to the 4 unit grid walls sit on.
func snapToGrid(p core.Vec2) core.Vec2 {
	return core.V(math.Round(p.X/4)*4, math.Round(p.Y/4)*4)
}

// place stamps the current placeholder onto the level at the cursor.
func (e *Editor) place() error {
	pos := e.cursor

	switch e.placeholder.Kind {
	case KindWall:
		info := level.WallInfo{
			Pos:       level.PointFromVec(snapToGrid(pos)),
			Dim:       level.PointFromVec(e.placeholder.WallDim),
			TextureID: e.placeholder.WallTexture,
		}
		wall, err := game.NewWall(info, e.lib)
		if err != nil {
			return err
		}
		e.level.Map.ExpandToFit(info.Pos.Vec().Add(info.Dim.Vec()))
		e.walls = append(e.walls, wall)
		e.level.Walls = append(e.level.Walls, info)

	case KindMine:
		info := level.MineInfo{Pos: level.PointFromVec(pos)}
		mine, err := game.NewMine(info, e.lib)
		if err != nil {
			return err
		}
		e.mines = append(e.mines, mine)
		e.level.Mines = append(e.level.Mines, info)

	case KindPump:
		info := level.PumpInfo{Pos: level.PointFromVec(pos)}
		pump, err := game.NewPump(info, e.lib)
		if err != nil {
			return err
		}
		e.pumps = append(e.pumps, pump)
		e.level.Pumps = append(e.level.Pumps, info)

	case KindGem:
		info := level.GemInfo{Pos: level.PointFromVec(pos)}
		gem, err := game.NewGem(info, e.lib)
		if err != nil {
			return err
		}
		e.gems = append(e.gems, gem)
		e.level.Gems = append(e.level.Gems, info)
		// A placed gem raises the bar for finishing the level.
		if e.level.Finish != nil {
			e.level.Finish.GemsRequired++
		}

	case KindBall:
		e.ball.SetPosition(pos)
		e.level.SetBallPosition(pos)

	case KindFinish:
		if e.finish != nil {
			e.level.Finish.Pos = level.PointFromVec(pos)
			finish, err := game.NewFinish(*e.level.Finish, e.lib)
			if err != nil {
				return err
			}
			e.finish = finish
			return nil
		}
		info := level.FinishInfo{
			Pos:          level.PointFromVec(pos),
			GemsRequired: len(e.level.Gems),
		}
		finish, err := game.NewFinish(info, e.lib)
		if err != nil {
			return err
		}
		e.finish = finish
		e.level.Finish = &info
	}
	return nil
}

// removeAt deletes the topmost object under pos, walls first, the
// finish flag last. Reports whether anything was removed.
func (e *Editor) removeAt(pos core.Vec2) bool {
	for i, wall := range e.walls {
		if wall.ContainsPoint(pos) {
			e.walls = append(e.walls[:i], e.walls[i+1:]...)
			e.level.Walls = append(e.level.Walls[:i], e.level.Walls[i+1:]...)
			return true
		}
	}
	for i, mine := range e.mines {
		if physics.PointTouch(mine, pos) {
			e.mines = append(e.mines[:i], e.mines[i+1:]...)
			e.level.Mines = append(e.level.Mines[:i], e.level.Mines[i+1:]...)
			return true
		}
	}
	for i, pump := range e.pumps {
		if physics.PointTouch(pump, pos) {
			e.pumps = append(e.pumps[:i], e.pumps[i+1:]...)
			e.level.Pumps = append(e.level.Pumps[:i], e.level.Pumps[i+1:]...)
			return true
		}
	}
	for i, gem := range e.gems {
		if physics.PointTouch(gem, pos) {
			e.gems = append(e.gems[:i], e.gems[i+1:]...)
			e.level.Gems = append(e.level.Gems[:i], e.level.Gems[i+1:]...)
			if fin := e.level.Finish; fin != nil && fin.GemsRequired > 0 {
				fin.GemsRequired--
			}
			return true
		}
	}
	if e.finish != nil && physics.PointTouch(e.finish, pos) {
		e.finish = nil
		e.level.Finish = nil
		return true
	}
	return false
}

// rollTexture steps the wall placeholder through the library's numbered
// textures, wrapping at both ends.
func (e *Editor) rollTexture(delta int) {
	if e.placeholder.Kind != KindWall {
		return
	}
	max := e.lib.MaxTextureID()
	t := e.placeholder.WallTexture
	if delta < 0 {
		if t == 0 {
			t = core.Max(max-1, 0)
		} else {
			t--
		}
	} else {
		t++
		if t >= max {
			t = 0
		}
	}
	e.placeholder.WallTexture = t
	e.refreshWallDims()
}

// refreshWallDims sizes the wall placeholder to its texture, falling
// back to texture 0 at 48x48 when the texture is unknown.
func (e *Editor) refreshWallDims() {
	if e.placeholder.Kind != KindWall {
		return
	}
	dim, ok := e.lib.Dimensions(assets.Other(e.placeholder.WallTexture))
	if !ok {
		e.placeholder.WallTexture = 0
		e.placeholder.WallDim = core.V(48, 48)
		return
	}
	e.placeholder.WallDim = dim
}

// saveLevel stamps the current version and writes the level to the first
// free slot in the levels directory, naming it after its path.
func (e *Editor) saveLevel() {
	e.level.Version = level.CurrentVersion
	path, err := level.NextFreePath(e.cfg.LevelsDir)
	if err != nil {
		e.status = "cannot save: " + err.Error()
		return
	}
	e.level.Name = path
	if err := e.level.Save(path); err != nil {
		e.status = "cannot save: " + err.Error()
		return
	}
	e.status = "saved " + path
}

func (e *Editor) Render(s *core.Screen) {
	s.Clear()
	cam := e.camera

	for _, wall := range e.walls {
		game.DrawWall(s, cam, wall)
	}
	for _, mine := range e.mines {
		game.DrawSpriteAt(s, cam, mine.Sprite(), 0, mine.Position())
	}
	for _, gem := range e.gems {
		game.DrawSpriteAt(s, cam, gem.Sprite(), 0, gem.Position())
	}
	game.DrawBall(s, cam, e.ball.Ball())
	for _, pump := range e.pumps {
		game.DrawPump(s, cam, pump)
	}
	if e.finish != nil {
		game.DrawSpriteAt(s, cam, e.finish.Sprite(), 0, e.finish.Position())
	}

	e.drawGhost(s)
	cx, cy := cam.CellOf(e.cursor)
	s.Set(cx, cy, '+', core.ColorBrightWhite)
	e.drawStatus(s)
}

// drawGhost previews the placeholder at the cursor.
func (e *Editor) drawGhost(s *core.Screen) {
	switch e.placeholder.Kind {
	case KindWall:
		x, y := e.camera.CellOf(snapToGrid(e.cursor))
		cols := int(math.Round(e.placeholder.WallDim.X / core.CellW))
		rows := int(math.Round(e.placeholder.WallDim.Y / core.CellH))
		s.DrawRect(core.NewRect(x, y, cols, rows), '░', core.ColorGray)
	case KindMine:
		e.ghostEllipse(s, game.MineSize+4, core.ColorBrightRed)
	case KindPump:
		e.ghostEllipse(s, game.PumpSize, core.ColorBrightYellow)
	case KindGem:
		e.ghostEllipse(s, game.GemSize, core.ColorBrightMagenta)
	case KindBall:
		e.ghostEllipse(s, game.BallDefaultSize, core.ColorBrightCyan)
	case KindFinish:
		e.ghostEllipse(s, 24, core.ColorBrightWhite)
	}
}

func (e *Editor) ghostEllipse(s *core.Screen, size float64, color core.Color) {
	half := core.V(size/2, size/2)
	x0, y0 := e.camera.CellOf(e.cursor.Sub(half))
	x1, y1 := e.camera.CellOf(e.cursor.Add(half))
	r := core.NewRect(x0, y0, core.Max(x1-x0, 1), core.Max(y1-y0, 1))
	s.DrawEllipse(r, '░', color)
}

func (e *Editor) drawStatus(s *core.Screen) {
	label := e.placeholder.Kind.String()
	if e.placeholder.Kind == KindWall {
		label = fmt.Sprintf("wall #%d", e.placeholder.WallTexture)
	}
	left := fmt.Sprintf("%s  (%d,%d)", label, int(e.cursor.X), int(e.cursor.Y))
	s.DrawText(1, s.Height()-1, left, core.ColorBrightWhite)

	right := "tab kind  ,/. tex  enter place  x remove  ^s save  esc back"
	if e.status != "" {
		right = e.status
	}
	s.DrawText(s.Width()-utf8.RuneCountInString(right)-1, s.Height()-1, right, core.ColorGray)
}
