package editor

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/puffgame/puff/internal/app"
	"github.com/puffgame/puff/internal/assets"
	"github.com/puffgame/puff/internal/core"
	"github.com/puffgame/puff/internal/level"
)

func press(a core.Action) core.InputFrame {
	frame := core.NewInputFrame()
	frame.Press(a)
	return frame
}

// testEditor saves lvl into a temp dir and opens the editor on it, so
// saves land next to it.
func testEditor(t *testing.T, lvl *level.Level) *Editor {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "edit.json")
	if err := lvl.Save(path); err != nil {
		t.Fatalf("Save: %v", err)
	}

	cfg := core.DefaultConfig()
	cfg.LevelsDir = dir
	ed, err := Load(path, assets.Builtin(), cfg)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	return ed
}

func TestPlaceholderCycle(t *testing.T) {
	order := []Kind{KindWall, KindMine, KindPump, KindGem, KindBall, KindFinish}

	p := defaultWall()
	for i, want := range order {
		if p.Kind != want {
			t.Fatalf("cycle step %d = %v, want %v", i, p.Kind, want)
		}
		p = p.Next()
	}
	if p.Kind != KindWall {
		t.Errorf("cycle does not wrap, ended on %v", p.Kind)
	}

	for i := len(order) - 1; i >= 0; i-- {
		p = p.Prev()
		if p.Kind != order[i] {
			t.Fatalf("reverse cycle at %d = %v, want %v", i, p.Kind, order[i])
		}
	}
}

func TestEditorPlacesSnappedWall(t *testing.T) {
	lvl := level.New()
	lvl.BallPos = level.Pt(37, 35)
	ed := testEditor(t, lvl)

	ed.HandleInput(press(core.ActionConfirm))

	if len(ed.Level().Walls) != 1 {
		t.Fatalf("walls = %d, want 1", len(ed.Level().Walls))
	}
	wall := ed.Level().Walls[0]
	if wall.Pos != level.Pt(36, 36) {
		t.Errorf("wall pos = %v, want snapped (36,36)", wall.Pos)
	}
	if wall.Dim != level.Pt(48, 48) {
		t.Errorf("wall dim = %v, want (48,48)", wall.Dim)
	}
}

func TestEditorWallGrowsMap(t *testing.T) {
	lvl := level.New()
	lvl.BallPos = level.Pt(300, 190)
	ed := testEditor(t, lvl)

	ed.HandleInput(press(core.ActionConfirm))

	m := ed.Level().Map
	if m.Width < 300+48 {
		t.Errorf("map width = %d, want at least %d", m.Width, 300+48)
	}
	if m.Height < 190+48 {
		t.Errorf("map height = %d, want at least %d", m.Height, 190+48)
	}
}

func TestEditorGemCountTracksFinish(t *testing.T) {
	lvl := level.New()
	lvl.Finish = &level.FinishInfo{Pos: level.Pt(300, 100), GemsRequired: 0}
	ed := testEditor(t, lvl)

	// Cycle wall -> mine -> pump -> gem, then drop two gems.
	ed.HandleInput(press(core.ActionCycleNext))
	ed.HandleInput(press(core.ActionCycleNext))
	ed.HandleInput(press(core.ActionCycleNext))
	ed.HandleInput(press(core.ActionConfirm))
	ed.HandleInput(press(core.ActionConfirm))

	if got := ed.Level().Finish.GemsRequired; got != 2 {
		t.Fatalf("gems required = %d after placing two gems, want 2", got)
	}

	ed.HandleInput(press(core.ActionRemove))
	if got := ed.Level().Finish.GemsRequired; got != 1 {
		t.Errorf("gems required = %d after removing a gem, want 1", got)
	}
	if got := len(ed.Level().Gems); got != 1 {
		t.Errorf("gems = %d after removal, want 1", got)
	}
}

func TestEditorGemRemovalNeverGoesNegative(t *testing.T) {
	lvl := level.New()
	lvl.Gems = []level.GemInfo{{Pos: level.Pt(36, 36)}}
	lvl.Finish = &level.FinishInfo{Pos: level.Pt(300, 100), GemsRequired: 0}
	ed := testEditor(t, lvl)

	ed.HandleInput(press(core.ActionRemove))
	if got := ed.Level().Finish.GemsRequired; got != 0 {
		t.Errorf("gems required = %d, want 0", got)
	}
}

func TestEditorFinishKeepsRequirementWhenMoved(t *testing.T) {
	lvl := level.New()
	lvl.Gems = []level.GemInfo{{Pos: level.Pt(200, 100)}}
	ed := testEditor(t, lvl)

	// Select the finish placeholder and drop it: requirement comes from
	// the existing gem count.
	ed.HandleInput(press(core.ActionCyclePrev))
	ed.HandleInput(press(core.ActionConfirm))

	fin := ed.Level().Finish
	if fin == nil {
		t.Fatal("finish not placed")
	}
	if fin.GemsRequired != 1 {
		t.Fatalf("gems required = %d on a fresh finish, want 1", fin.GemsRequired)
	}
	if fin.Pos != level.Pt(36, 36) {
		t.Fatalf("finish pos = %v, want (36,36)", fin.Pos)
	}

	// Placing again moves the flag without touching the requirement.
	ed.HandleInput(press(core.ActionRight))
	ed.HandleInput(press(core.ActionConfirm))
	fin = ed.Level().Finish
	if fin.Pos != level.Pt(40, 36) {
		t.Errorf("finish pos = %v after move, want (40,36)", fin.Pos)
	}
	if fin.GemsRequired != 1 {
		t.Errorf("gems required = %d after move, want 1", fin.GemsRequired)
	}
}

func TestEditorBallPlacementMovesSpawn(t *testing.T) {
	ed := testEditor(t, level.New())

	// Wall -> ... -> ball is four steps forward, or two back.
	ed.HandleInput(press(core.ActionCyclePrev))
	ed.HandleInput(press(core.ActionCyclePrev))
	ed.HandleInput(press(core.ActionDown))
	ed.HandleInput(press(core.ActionConfirm))

	if got := ed.Level().BallPos; got != level.Pt(36, 44) {
		t.Errorf("ball spawn = %v, want (36,44)", got)
	}
}

func TestEditorRemovalPriority(t *testing.T) {
	lvl := level.New()
	// A mine hidden under a wall at the spawn point.
	lvl.Walls = []level.WallInfo{{Pos: level.Pt(16, 16), Dim: level.Pt(48, 48)}}
	lvl.Mines = []level.MineInfo{{Pos: level.Pt(36, 36)}}
	ed := testEditor(t, lvl)

	ed.HandleInput(press(core.ActionRemove))
	if len(ed.Level().Walls) != 0 {
		t.Fatal("wall not removed first")
	}
	if len(ed.Level().Mines) != 1 {
		t.Fatal("mine removed together with the wall")
	}

	ed.HandleInput(press(core.ActionRemove))
	if len(ed.Level().Mines) != 0 {
		t.Error("mine not removed on the second pass")
	}
}

func TestEditorTextureRoll(t *testing.T) {
	ed := testEditor(t, level.New())

	if ed.placeholder.WallTexture != 0 {
		t.Fatalf("initial texture = %d, want 0", ed.placeholder.WallTexture)
	}

	ed.HandleInput(press(core.ActionTexNext))
	if ed.placeholder.WallTexture != 1 {
		t.Errorf("texture after next = %d, want 1", ed.placeholder.WallTexture)
	}

	ed.HandleInput(press(core.ActionTexPrev))
	ed.HandleInput(press(core.ActionTexPrev))
	if got := ed.placeholder.WallTexture; got != ed.lib.MaxTextureID()-1 {
		t.Errorf("texture after wrapping back = %d, want %d", got, ed.lib.MaxTextureID()-1)
	}

	ed.HandleInput(press(core.ActionTexNext))
	if ed.placeholder.WallTexture != 0 {
		t.Errorf("texture after wrapping forward = %d, want 0", ed.placeholder.WallTexture)
	}
}

func TestEditorSaveClaimsFreeSlot(t *testing.T) {
	ed := testEditor(t, level.New())
	dir := ed.cfg.LevelsDir

	ed.HandleInput(press(core.ActionSave))
	first := filepath.Join(dir, "0.json")
	if _, err := os.Stat(first); err != nil {
		t.Fatalf("first save missing: %v", err)
	}
	if got := ed.Level().Name; got != first {
		t.Errorf("level name = %q, want its path %q", got, first)
	}

	ed.HandleInput(press(core.ActionSave))
	second := filepath.Join(dir, "1.json")
	if _, err := os.Stat(second); err != nil {
		t.Fatalf("second save missing: %v", err)
	}

	// The written file loads back in the current format.
	lvl, err := level.Load(first)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if lvl.Version != level.CurrentVersion {
		t.Errorf("saved version = %q, want %q", lvl.Version, level.CurrentVersion)
	}
}

func TestEditorEscapeReturnsToTitle(t *testing.T) {
	ed := testEditor(t, level.New())
	got := ed.HandleInput(press(core.ActionBack))
	if got == nil || got.Kind != app.ActionOpenTitle {
		t.Errorf("escape returned %+v, want open title", got)
	}
}

func TestEditorRoundTripsLoadedLevel(t *testing.T) {
	lvl := level.New()
	lvl.Walls = []level.WallInfo{{Pos: level.Pt(100, 100), Dim: level.Pt(48, 48), TextureID: 1}}
	lvl.Pumps = []level.PumpInfo{{Pos: level.Pt(200, 50)}}
	lvl.Gems = []level.GemInfo{{Pos: level.Pt(250, 150)}}
	lvl.Finish = &level.FinishInfo{Pos: level.Pt(300, 100), GemsRequired: 1}
	ed := testEditor(t, lvl)

	if len(ed.walls) != 1 || len(ed.pumps) != 1 || len(ed.gems) != 1 || ed.finish == nil {
		t.Fatal("loaded level entities incomplete")
	}

	ed.HandleInput(press(core.ActionSave))
	saved, err := level.Load(filepath.Join(ed.cfg.LevelsDir, "0.json"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(saved.Walls) != 1 || saved.Walls[0].TextureID != 1 {
		t.Errorf("saved walls = %+v", saved.Walls)
	}
	if saved.Finish == nil || saved.Finish.GemsRequired != 1 {
		t.Errorf("saved finish = %+v", saved.Finish)
	}
}
