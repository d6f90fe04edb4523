package editor

import "github.com/puffgame/puff/internal/core"

// Kind enumerates what the editor can place.
type Kind int

const (
	KindWall Kind = iota
	KindMine
	KindPump
	KindGem
	KindBall
	KindFinish
)

// String returns the label shown in the editor's status bar.
func (k Kind) String() string {
	switch k {
	case KindWall:
		return "wall"
	case KindMine:
		return "mine"
	case KindPump:
		return "pump"
	case KindGem:
		return "gem"
	case KindBall:
		return "ball"
	case KindFinish:
		return "finish"
	default:
		return "unknown"
	}
}

// Placeholder is the object waiting under the cursor to be placed. Wall
// placeholders additionally carry the tile dimensions and texture to
// stamp.
type Placeholder struct {
	Kind        Kind
	WallDim     core.Vec2
	WallTexture int
}

func defaultWall() Placeholder {
	return Placeholder{Kind: KindWall, WallDim: core.V(48, 48)}
}

// Next cycles forward through the placeable kinds.
func (p Placeholder) Next() Placeholder {
	switch p.Kind {
	case KindWall:
		return Placeholder{Kind: KindMine}
	case KindMine:
		return Placeholder{Kind: KindPump}
	case KindPump:
		return Placeholder{Kind: KindGem}
	case KindGem:
		return Placeholder{Kind: KindBall}
	case KindBall:
		return Placeholder{Kind: KindFinish}
	default:
		return defaultWall()
	}
}

// Prev cycles backward through the placeable kinds.
func (p Placeholder) Prev() Placeholder {
	switch p.Kind {
	case KindWall:
		return Placeholder{Kind: KindFinish}
	case KindMine:
		return defaultWall()
	case KindPump:
		return Placeholder{Kind: KindMine}
	case KindGem:
		return Placeholder{Kind: KindPump}
	case KindBall:
		return Placeholder{Kind: KindGem}
	default:
		return Placeholder{Kind: KindBall}
	}
}
