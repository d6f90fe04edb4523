package title

import (
	"fmt"
	"path/filepath"
	"strings"
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

// levelsDir writes n numbered levels into a temp dir.
func levelsDir(t *testing.T, n int) string {
	t.Helper()
	dir := t.TempDir()
	for i := 0; i < n; i++ {
		lvl := level.New()
		lvl.Name = fmt.Sprintf("level %d", i)
		if err := lvl.Save(filepath.Join(dir, fmt.Sprintf("%d.json", i))); err != nil {
			t.Fatalf("Save: %v", err)
		}
	}
	return dir
}

func testTitle(dir string) *Title {
	cfg := core.DefaultConfig()
	cfg.LevelsDir = dir
	return New(assets.Builtin(), cfg)
}

func TestTitleEscapeAlwaysExits(t *testing.T) {
	ti := testTitle(t.TempDir())
	if got := ti.HandleInput(press(core.ActionBack)); got == nil || got.Kind != app.ActionExit {
		t.Errorf("escape returned %+v, want exit", got)
	}
}

func TestTitleEditorShortcut(t *testing.T) {
	ti := testTitle(t.TempDir())
	got := ti.HandleInput(press(core.ActionEditor))
	if got == nil || got.Kind != app.ActionOpenEditor {
		t.Fatalf("editor key returned %+v, want open editor", got)
	}
	if got.EditPath != "" {
		t.Errorf("editor action carries path %q, want a fresh level", got.EditPath)
	}
}

func TestTitleFirstKeyLoadsList(t *testing.T) {
	ti := testTitle(levelsDir(t, 3))

	if ti.Selected() != -1 {
		t.Fatalf("selected = %d before any key, want -1", ti.Selected())
	}

	// The first press only wakes the list up.
	if got := ti.HandleInput(press(core.ActionConfirm)); got != nil {
		t.Fatalf("first key returned %+v, want nil", got)
	}
	if ti.Selected() != 0 {
		t.Fatalf("selected = %d after first key, want 0", ti.Selected())
	}

	got := ti.HandleInput(press(core.ActionConfirm))
	if got == nil || got.Kind != app.ActionPlayLevel || got.Level != 0 {
		t.Errorf("confirm returned %+v, want play level 0", got)
	}
}

func TestTitleEmptyDirStaysAsleep(t *testing.T) {
	ti := testTitle(t.TempDir())

	ti.HandleInput(press(core.ActionConfirm))
	if ti.Selected() != -1 {
		t.Fatalf("selected = %d with no levels, want -1", ti.Selected())
	}

	// Navigation and confirm stay inert instead of indexing nothing.
	if got := ti.HandleInput(press(core.ActionDown)); got != nil {
		t.Errorf("down returned %+v", got)
	}
	if ti.Selected() != -1 {
		t.Errorf("selected = %d after down, want -1", ti.Selected())
	}
}

func TestTitleMissingDirIsFreshInstall(t *testing.T) {
	ti := testTitle(filepath.Join(t.TempDir(), "nope"))
	ti.HandleInput(press(core.ActionConfirm))
	if ti.Selected() != -1 {
		t.Errorf("selected = %d for a missing dir, want -1", ti.Selected())
	}
}

func TestTitleNavigation(t *testing.T) {
	ti := testTitle(levelsDir(t, 10))
	ti.HandleInput(press(core.ActionConfirm))

	steps := []struct {
		action core.Action
		want   int
	}{
		{core.ActionDown, 1},
		{core.ActionDown, 2},
		{core.ActionUp, 1},
		{core.ActionUp, 0},
		{core.ActionUp, 0},
		{core.ActionRight, 8},
		{core.ActionRight, 9},
		{core.ActionLeft, 1},
		{core.ActionLeft, 0},
	}
	for i, st := range steps {
		ti.HandleInput(press(st.action))
		if ti.Selected() != st.want {
			t.Fatalf("step %d (%v): selected = %d, want %d", i, st.action, ti.Selected(), st.want)
		}
	}
}

func TestTitleRenderPagesAndHighlight(t *testing.T) {
	ti := testTitle(levelsDir(t, 10))
	ti.HandleInput(press(core.ActionConfirm))
	for i := 0; i < 9; i++ {
		ti.HandleInput(press(core.ActionDown))
	}

	s := core.NewScreen(80, 25)
	ti.Render(s)

	// Selected 9 lives on the second page: rows show levels 8 and 9.
	if got := s.Row(listRow); !strings.Contains(got, "level 8") {
		t.Errorf("first page row = %q, want level 8", got)
	}
	if got := s.Row(listRow + 1); !strings.Contains(got, "level 9") {
		t.Errorf("second row = %q, want level 9", got)
	}
	if c := s.GetCell(listCol, listRow+1); c.Color != core.ColorBrightWhite {
		t.Errorf("selected entry color = %v, want bright white", c.Color)
	}
	if c := s.GetCell(listCol, listRow); c.Color != core.ColorYellow {
		t.Errorf("unselected entry color = %v, want yellow", c.Color)
	}
}

func TestTitleLogoSlidesInAndStops(t *testing.T) {
	ti := testTitle(t.TempDir())

	s := core.NewScreen(80, 25)
	ti.Render(s)
	if got := s.Get(25, logoRow); got == '█' {
		t.Fatal("logo already parked before any update")
	}

	// One second of updates caps the slide at x = 100, cell 25.
	ti.Update(1.0)
	ti.Update(1.0)
	ti.Render(s)
	if got := s.Get(25, logoRow); got != '█' {
		t.Errorf("logo cell = %q, want the parked logo edge", got)
	}
}
