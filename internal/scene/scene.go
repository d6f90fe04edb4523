// Package scene provides spatial indices for collision candidate lookup.
//
// A Scene stores positioned items and answers neighborhood queries around a
// point. FlatScene scans every item on each query and suits the small maps
// the game ships with; HashGridScene buckets items into fixed-size cells and
// scales to dense maps. Both return the same candidates for any query as
// long as the grid cell size exceeds the extent of the largest item.
package scene

import (
	"github.com/puffgame/puff/internal/core"
	"github.com/puffgame/puff/internal/physics"
)

// DefaultCellSize is the grid cell edge used when the configured size is
// missing or invalid. It comfortably covers the largest wall tiles.
const DefaultCellSize = 64

// Scene indexes positioned items for collision candidate queries.
type Scene[P physics.Positioned] interface {
	// Insert adds an item to the index.
	Insert(item P)
	// At returns collision candidates near pos. The returned slice is
	// shared and only valid until the next call on the scene.
	At(pos core.Vec2) []P
	// Each calls fn for every item in insertion order.
	Each(fn func(P))
	// Len reports the number of stored items.
	Len() int
}

// New builds the scene index selected by the runtime configuration.
func New[P physics.Positioned](index core.SceneIndex, cellSize float64) Scene[P] {
	if index == core.SceneGrid {
		return NewHashGrid[P](cellSize)
	}
	return NewFlat[P]()
}
