package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/puffgame/puff/internal/app"
	"github.com/puffgame/puff/internal/assets"
	"github.com/puffgame/puff/internal/audio"
	"github.com/puffgame/puff/internal/core"
	"github.com/puffgame/puff/internal/editor"
	"github.com/puffgame/puff/internal/game"
	"github.com/puffgame/puff/internal/level"
	"github.com/puffgame/puff/internal/storage"
	"github.com/puffgame/puff/internal/title"
)

// Model is the Bubble Tea model driving Puff: one active screen at a
// time, a fixed tick loop and a shared cell buffer. Screens request
// navigation through app.Action; the model builds their successors.
type Model struct {
	active app.Screen
	lib    *assets.Library
	store  *storage.Store
	screen *core.Screen
	config core.RuntimeConfig

	keys  *KeyMapper
	frame core.InputFrame
	holds *holdTracker

	recorded bool // Whether the current run's result has been saved
	quitting bool
}

// NewModel creates the program model and opens the screen the initial
// action names. The store may be nil; results are then not recorded.
func NewModel(initial *app.Action, lib *assets.Library, store *storage.Store, cfg core.RuntimeConfig) (Model, error) {
	m := Model{
		lib:    lib,
		store:  store,
		screen: core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		config: cfg,
		keys:   NewKeyMapper(),
		frame:  core.NewInputFrame(),
		holds:  newHoldTracker(),
	}

	scr, err := m.buildScreen(initial)
	if err != nil {
		return Model{}, err
	}
	m.active = scr
	return m, nil
}

// buildScreen constructs the screen a navigation action names.
func (m *Model) buildScreen(a *app.Action) (app.Screen, error) {
	switch a.Kind {
	case app.ActionOpenTitle:
		return title.New(m.lib, m.config), nil

	case app.ActionPlayLevel:
		lvl, err := level.LoadByIndex(m.config.LevelsDir, a.Level)
		if err != nil {
			return nil, err
		}
		world, err := game.NewWorld(lvl, m.lib, m.config, audio.NullPlayer{})
		if err != nil {
			return nil, err
		}
		return game.NewPlayScreen(world), nil

	case app.ActionOpenEditor:
		if a.EditPath != "" {
			return editor.Load(a.EditPath, m.lib, m.config)
		}
		return editor.New(m.lib, m.config)
	}
	return nil, fmt.Errorf("tui: no screen for action %v", a.Kind)
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey folds a key press into the frame for the next tick.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action := m.keys.MapKey(msg)
	switch action {
	case core.ActionNone:
		return m, nil
	case core.ActionQuit:
		// Quit keys work everywhere, not only where a screen polls
		// for them.
		m.quitting = true
		return m, tea.Quit
	}

	m.frame.Press(action)
	if IsDirection(action) {
		m.holds.Refresh(action, m.config.HoldTicks)
	}
	return m, nil
}

// handleResize follows the terminal size with the cell buffer and the
// active screen's camera viewport.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)
	if s, ok := m.active.(app.Sizable); ok {
		s.SetViewport(m.config.ViewportW(), m.config.ViewportH())
	}
	return m, nil
}

// handleTick runs one simulation tick: input, update, result recording.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	m.holds.Apply(&m.frame)

	action := m.active.HandleInput(m.frame)
	if action == nil {
		dt := 1.0 / float64(m.config.TickRate)
		action = m.active.Update(dt)
	}

	m.frame.Clear()
	m.holds.Tick()

	if action != nil {
		next, cmd := m.apply(action)
		if next.quitting {
			return next, cmd
		}
		return next, tickCmd(next.config.TickRate)
	}

	m.recordRun()
	return m, tickCmd(m.config.TickRate)
}

// apply performs a screen's navigation request. A failed screen build
// falls back to the title so the session survives a bad level file.
func (m Model) apply(a *app.Action) (Model, tea.Cmd) {
	if a.Kind == app.ActionExit {
		m.quitting = true
		return m, tea.Quit
	}

	next, err := m.buildScreen(a)
	if err != nil {
		t := title.New(m.lib, m.config)
		t.SetNote(err.Error())
		next = t
	}
	m.active = next
	m.recorded = false
	return m, nil
}

// recordRun persists the outcome of a finished play-through, once, and
// annotates the end-of-run banner with the level's best time.
func (m *Model) recordRun() {
	play, ok := m.active.(*game.PlayScreen)
	if !ok || m.recorded || !play.Over() {
		return
	}
	m.recorded = true
	if m.store == nil {
		return
	}

	rec := play.Record()
	//nolint:errcheck // Best-effort save, play continues regardless
	m.store.SaveResult(storage.Result{
		Level:     rec.Level,
		Completed: rec.Completed,
		Gems:      rec.Gems,
		Ticks:     rec.Ticks,
		FinalSize: rec.FinalSize,
	})
	play.SetResultNote(m.resultNote(rec))
}

// resultNote builds the line shown under the end-of-run banner. The
// best time is read back after the save, so a record run compares
// against itself.
func (m *Model) resultNote(rec game.RunRecord) string {
	secs := float64(rec.Ticks) / game.TicksPerSecond
	if !rec.Completed {
		return fmt.Sprintf("survived %.1fs", secs)
	}

	best, ok, err := m.store.BestTicks(rec.Level)
	if err != nil || !ok {
		return fmt.Sprintf("cleared in %.1fs", secs)
	}
	if rec.Ticks <= best {
		return fmt.Sprintf("cleared in %.1fs - new best", secs)
	}
	return fmt.Sprintf("cleared in %.1fs - best %.1fs", secs, float64(best)/game.TicksPerSecond)
}

// View renders the active screen to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.active.Render(m.screen)
	return RenderScreen(m.screen)
}

// Run starts the Bubble Tea program with the given model.
func Run(m Model) error {
	p := tea.NewProgram(
		m,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
