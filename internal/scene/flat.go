package scene

import (
	"github.com/puffgame/puff/internal/core"
	"github.com/puffgame/puff/internal/physics"
)

// FlatScene keeps items in a single slice and reports every item as a
// candidate for any query.
type FlatScene[P physics.Positioned] struct {
	items []P
}

// NewFlat returns an empty flat scene.
func NewFlat[P physics.Positioned]() *FlatScene[P] {
	return &FlatScene[P]{}
}

func (s *FlatScene[P]) Insert(item P) {
	s.items = append(s.items, item)
}

func (s *FlatScene[P]) At(core.Vec2) []P {
	return s.items
}

func (s *FlatScene[P]) Each(fn func(P)) {
	for _, item := range s.items {
		fn(item)
	}
}

func (s *FlatScene[P]) Len() int {
	return len(s.items)
}
