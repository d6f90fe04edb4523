package core

// Action represents a semantic input action, abstracted from physical key
// presses. Screens work with high-level intents rather than raw input.
type Action int

const (
	ActionNone Action = iota
	ActionUp          // thrust up / move selection or cursor up
	ActionDown        // thrust down / move selection or cursor down
	ActionLeft        // thrust left / previous page / cursor left
	ActionRight       // thrust right / next page / cursor right
	ActionConfirm     // enter, space - select, place object
	ActionBack        // escape - leave the current screen
	ActionEditor      // E - open the level editor
	ActionRemove      // editor: delete the object at the cursor
	ActionCycleNext   // editor: next placeholder kind
	ActionCyclePrev   // editor: previous placeholder kind
	ActionTexNext     // editor: next wall texture
	ActionTexPrev     // editor: previous wall texture
	ActionSave        // editor: save the level
	ActionPanUp       // editor: pan the camera up
	ActionPanDown     // editor: pan the camera down
	ActionPanLeft     // editor: pan the camera left
	ActionPanRight    // editor: pan the camera right
	ActionQuit        // q, ctrl+c - exit the program
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionUp:
		return "Up"
	case ActionDown:
		return "Down"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionConfirm:
		return "Confirm"
	case ActionBack:
		return "Back"
	case ActionEditor:
		return "Editor"
	case ActionRemove:
		return "Remove"
	case ActionCycleNext:
		return "CycleNext"
	case ActionCyclePrev:
		return "CyclePrev"
	case ActionTexNext:
		return "TexNext"
	case ActionTexPrev:
		return "TexPrev"
	case ActionSave:
		return "Save"
	case ActionPanUp:
		return "PanUp"
	case ActionPanDown:
		return "PanDown"
	case ActionPanLeft:
		return "PanLeft"
	case ActionPanRight:
		return "PanRight"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// InputFrame is the input state delivered to a screen for one simulation
// tick. Pressed holds one-shot actions triggered since the previous tick;
// Held carries directions that are currently held down. Terminals report
// no key-release events, so the platform keeps a direction "held" for a
// short window after its last press and relies on auto-repeat to refresh
// it.
type InputFrame struct {
	Pressed map[Action]bool
	Held    map[Action]bool
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Pressed: make(map[Action]bool),
		Held:    make(map[Action]bool),
	}
}

// Press marks a one-shot action as triggered for this frame.
func (f *InputFrame) Press(a Action) {
	if f.Pressed == nil {
		f.Pressed = make(map[Action]bool)
	}
	f.Pressed[a] = true
}

// Hold marks a direction as held for this frame.
func (f *InputFrame) Hold(a Action) {
	if f.Held == nil {
		f.Held = make(map[Action]bool)
	}
	f.Held[a] = true
}

// Has returns true if the one-shot action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	return f.Pressed[a]
}

// AnyPressed reports whether any one-shot action fired this frame.
func (f InputFrame) AnyPressed() bool {
	return len(f.Pressed) > 0
}

// IsHeld returns true if the direction is currently held.
func (f InputFrame) IsHeld(a Action) bool {
	return f.Held[a]
}

// Clear empties the frame for the next tick.
func (f *InputFrame) Clear() {
	clear(f.Pressed)
	clear(f.Held)
}
