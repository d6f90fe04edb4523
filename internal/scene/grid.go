package scene

import (
	"github.com/puffgame/puff/internal/core"
	"github.com/puffgame/puff/internal/physics"
)

type gridCell struct {
	X, Y int
}

// HashGridScene buckets items into square cells keyed by truncated
// coordinates. A query gathers the 3x3 cell neighborhood around the query
// point, so anything whose anchor lies within one cell of the point is
// always reported.
type HashGridScene[P physics.Positioned] struct {
	cellSize float64
	items    []P
	cells    map[gridCell][]int
	scratch  []P
}

// NewHashGrid returns an empty grid scene with the given cell edge.
// Non-positive sizes fall back to DefaultCellSize.
func NewHashGrid[P physics.Positioned](cellSize float64) *HashGridScene[P] {
	if cellSize <= 0 {
		cellSize = DefaultCellSize
	}
	return &HashGridScene[P]{
		cellSize: cellSize,
		cells:    make(map[gridCell][]int),
	}
}

// cellOf truncates toward zero, so the zero cell spans both sides of the
// origin. The 3x3 query neighborhood covers the seam either way.
func (s *HashGridScene[P]) cellOf(pos core.Vec2) gridCell {
	return gridCell{int(pos.X / s.cellSize), int(pos.Y / s.cellSize)}
}

func (s *HashGridScene[P]) Insert(item P) {
	idx := len(s.items)
	s.items = append(s.items, item)
	key := s.cellOf(item.Position())
	s.cells[key] = append(s.cells[key], idx)
}

func (s *HashGridScene[P]) At(pos core.Vec2) []P {
	home := s.cellOf(pos)
	s.scratch = s.scratch[:0]
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			key := gridCell{home.X + dx, home.Y + dy}
			for _, idx := range s.cells[key] {
				s.scratch = append(s.scratch, s.items[idx])
			}
		}
	}
	return s.scratch
}

func (s *HashGridScene[P]) Each(fn func(P)) {
	for _, item := range s.items {
		fn(item)
	}
}

func (s *HashGridScene[P]) Len() int {
	return len(s.items)
}
