// Package app defines the contract between the platform layer and the
// game's screens. The platform owns the terminal loop; each screen turns
// input frames and ticks into optional navigation actions and draws
// itself into a shared cell buffer.
package app

import "github.com/puffgame/puff/internal/core"

// ActionKind enumerates the navigation requests a screen can make.
type ActionKind int

const (
	// ActionExit quits the program.
	ActionExit ActionKind = iota
	// ActionOpenTitle returns to the title screen.
	ActionOpenTitle
	// ActionPlayLevel starts the level with the given index.
	ActionPlayLevel
	// ActionOpenEditor opens the level editor, optionally on an existing
	// level file.
	ActionOpenEditor
)

// Action is a navigation request from a screen to the platform.
type Action struct {
	Kind ActionKind

	// Level is the level index for ActionPlayLevel.
	Level int

	// EditPath is the level file for ActionOpenEditor; empty starts a
	// fresh level.
	EditPath string
}

// Exit requests quitting the program.
func Exit() *Action {
	return &Action{Kind: ActionExit}
}

// OpenTitle requests the title screen.
func OpenTitle() *Action {
	return &Action{Kind: ActionOpenTitle}
}

// PlayLevel requests starting the level with the given index.
func PlayLevel(id int) *Action {
	return &Action{Kind: ActionPlayLevel, Level: id}
}

// OpenEditor requests the editor, optionally on an existing level file.
func OpenEditor(path string) *Action {
	return &Action{Kind: ActionOpenEditor, EditPath: path}
}

// Screen is one mode of the program: the title, a level being played or
// the editor. The platform calls HandleInput once per input frame, Update
// once per tick and Render once per frame.
type Screen interface {
	// HandleInput reacts to the tick's input frame.
	HandleInput(frame core.InputFrame) *Action

	// Update advances the screen by dt seconds.
	Update(dt float64) *Action

	// Render draws the screen into the cell buffer.
	Render(s *core.Screen)
}

// Sizable is implemented by screens whose camera viewport follows the
// terminal size. The platform calls SetViewport on resize, in world
// units.
type Sizable interface {
	SetViewport(width, height float64)
}
