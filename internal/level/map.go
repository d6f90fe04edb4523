package level

import (
	"math"

	"github.com/puffgame/puff/internal/core"
	"github.com/puffgame/puff/internal/physics"
)

// Default playfield dimensions in world units.
const (
	DefaultMapWidth  = 320
	DefaultMapHeight = 200
)

// Map bounds the playfield. Its four borders take part in the collision
// pass so the ball can never leave the map.
type Map struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}

// DefaultMap returns a map with the default playfield dimensions.
func DefaultMap() Map {
	return Map{Width: DefaultMapWidth, Height: DefaultMapHeight}
}

// Dimensions returns the map size as a world vector.
func (m Map) Dimensions() core.Vec2 {
	return core.V(float64(m.Width), float64(m.Height))
}

// ExpandToFit grows the map so that dim fits inside it. The map never
// shrinks.
func (m *Map) ExpandToFit(dim core.Vec2) {
	m.Width = core.Max(m.Width, int(math.Ceil(dim.X)))
	m.Height = core.Max(m.Height, int(math.Ceil(dim.Y)))
}

func (m Map) LeftBorder() physics.LeftBorder {
	return physics.LeftBorder(0)
}

func (m Map) RightBorder() physics.RightBorder {
	return physics.RightBorder(float64(m.Width))
}

func (m Map) UpBorder() physics.UpBorder {
	return physics.UpBorder(0)
}

func (m Map) DownBorder() physics.DownBorder {
	return physics.DownBorder(float64(m.Height))
}
