// Package title implements the title screen: the sliding logo, the
// level list and the jump-off points into the game and the editor.
package title

import (
	"errors"
	"io/fs"
	"math"

	"github.com/puffgame/puff/internal/app"
	"github.com/puffgame/puff/internal/assets"
	"github.com/puffgame/puff/internal/core"
	"github.com/puffgame/puff/internal/level"
)

// pageSize is how many levels one page of the list shows; left/right
// jump by a whole page.
const pageSize = 8

// Screen layout, in cells.
const (
	logoRow    = 2
	listRow    = 13
	listCol    = 6
	promptRow  = 22
	logoSlideW = 4.0
)

// Title is the entry screen. The level list is loaded lazily on the
// first key press, like the rest of the game it only ever reads the
// levels directory.
type Title struct {
	lib *assets.Library
	cfg core.RuntimeConfig

	logoPos  float64
	list     []level.Header
	selected int
	note     string
}

// New returns the title screen with the logo parked off the left edge.
func New(lib *assets.Library, cfg core.RuntimeConfig) *Title {
	return &Title{
		lib:      lib,
		cfg:      cfg,
		logoPos:  -120,
		selected: -1,
	}
}

func (t *Title) HandleInput(frame core.InputFrame) *app.Action {
	if frame.Has(core.ActionBack) || frame.Has(core.ActionQuit) {
		return app.Exit()
	}
	if frame.Has(core.ActionEditor) {
		return app.OpenEditor("")
	}

	if t.selected < 0 {
		if frame.AnyPressed() {
			t.loadList()
		}
		return nil
	}

	if frame.Has(core.ActionConfirm) {
		return app.PlayLevel(t.selected)
	}

	last := len(t.list) - 1
	if frame.Has(core.ActionDown) {
		t.selected = core.Min(t.selected+1, last)
	}
	if frame.Has(core.ActionUp) {
		t.selected = core.Max(t.selected-1, 0)
	}
	if frame.Has(core.ActionRight) {
		t.selected = core.Min(t.selected+pageSize, last)
	}
	if frame.Has(core.ActionLeft) {
		t.selected = core.Max(t.selected-pageSize, 0)
	}
	return nil
}

// loadList reads the level headers. A missing directory is the fresh
// install case, not an error.
func (t *Title) loadList() {
	list, err := level.LoadHeaders(t.cfg.LevelsDir)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		t.note = "cannot list levels: " + err.Error()
		return
	}
	if len(list) == 0 {
		t.note = "no levels yet, shift+e opens the editor"
		return
	}
	t.list = list
	t.selected = 0
}

// Selected returns the highlighted level index, or -1 before the list
// is loaded.
func (t *Title) Selected() int {
	return t.selected
}

// SetNote replaces the start prompt, so the platform can surface
// navigation errors on the way back to the title.
func (t *Title) SetNote(note string) {
	t.note = note
}

func (t *Title) Update(dt float64) *app.Action {
	ticks := 60 * dt
	t.logoPos = math.Min(t.logoPos+logoSlideW*ticks, 100)
	return nil
}

func (t *Title) Render(s *core.Screen) {
	s.Clear()
	if bg, err := t.lib.Sprite(assets.Background); err == nil {
		bg.Tile(s)
	}
	if logo, err := t.lib.Sprite(assets.Logo); err == nil {
		logo.Blit(s, 0, int(math.Floor(t.logoPos/core.CellW)), logoRow)
	}

	if t.selected < 0 {
		prompt := "press enter"
		if t.note != "" {
			prompt = t.note
		}
		s.DrawTextCentered(promptRow, prompt, core.ColorBrightYellow)
		return
	}

	page := t.selected / pageSize * pageSize
	for i := page; i < len(t.list) && i < page+pageSize; i++ {
		color := core.ColorYellow
		if i == t.selected {
			color = core.ColorBrightWhite
		}
		s.DrawText(listCol, listRow+i-page, t.list[i].Name, color)
	}

	s.DrawTextCentered(s.Height()-1, "shift+e opens the level editor", core.ColorGray)
}
