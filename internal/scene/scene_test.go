package scene

import (
	"testing"

	"github.com/puffgame/puff/internal/core"
)

type marker struct {
	name string
	pos  core.Vec2
}

func (m *marker) Position() core.Vec2 { return m.pos }

func names(items []*marker) map[string]bool {
	set := make(map[string]bool, len(items))
	for _, it := range items {
		set[it.name] = true
	}
	return set
}

func TestHashGridNeighborhood(t *testing.T) {
	grid := NewHashGrid[*marker](64)
	items := []*marker{
		{"home", core.V(32, 32)},
		{"right", core.V(100, 32)},
		{"left", core.V(-40, 32)},
		{"below", core.V(32, 100)},
		{"diagonal", core.V(100, 100)},
		{"far", core.V(500, 500)},
	}
	for _, it := range items {
		grid.Insert(it)
	}

	got := names(grid.At(core.V(32, 32)))
	for _, want := range []string{"home", "right", "left", "below", "diagonal"} {
		if !got[want] {
			t.Errorf("At(32,32) missing %q, got %v", want, got)
		}
	}
	if got["far"] {
		t.Errorf("At(32,32) returned item two cells away")
	}
}

func TestHashGridNegativeCoordinates(t *testing.T) {
	grid := NewHashGrid[*marker](64)
	grid.Insert(&marker{"neg", core.V(-100, -100)})

	if got := names(grid.At(core.V(-32, -32))); !got["neg"] {
		t.Errorf("query near origin missed item in negative cell, got %v", got)
	}
}

func TestHashGridFallbackCellSize(t *testing.T) {
	grid := NewHashGrid[*marker](0)
	if grid.cellSize != DefaultCellSize {
		t.Errorf("cellSize = %v, expected %v", grid.cellSize, DefaultCellSize)
	}
}

func TestFlatSceneReturnsEverything(t *testing.T) {
	flat := NewFlat[*marker]()
	flat.Insert(&marker{"a", core.V(0, 0)})
	flat.Insert(&marker{"b", core.V(1000, 1000)})

	if flat.Len() != 2 {
		t.Fatalf("Len = %d, expected 2", flat.Len())
	}
	if got := names(flat.At(core.V(0, 0))); !got["a"] || !got["b"] {
		t.Errorf("flat At = %v, expected both items", got)
	}
}

func TestSceneImplementationsAgree(t *testing.T) {
	build := func(s Scene[*marker]) {
		for i, pos := range []core.Vec2{
			{X: 10, Y: 10}, {X: 70, Y: 10}, {X: 10, Y: 70}, {X: 70, Y: 70},
		} {
			s.Insert(&marker{name: string(rune('a' + i)), pos: pos})
		}
	}

	flat := New[*marker](core.SceneFlat, 64)
	grid := New[*marker](core.SceneGrid, 64)
	build(flat)
	build(grid)

	queries := []core.Vec2{{X: 10, Y: 10}, {X: 40, Y: 40}, {X: 70, Y: 70}}
	for _, q := range queries {
		flatHits := names(flat.At(q))
		for name := range names(grid.At(q)) {
			if !flatHits[name] {
				t.Errorf("grid At(%v) returned %q which flat scene lacks", q, name)
			}
		}
		// All four items sit within one cell of every query point here,
		// so the grid must report each of them too.
		gridHits := names(grid.At(q))
		for name := range flatHits {
			if !gridHits[name] {
				t.Errorf("grid At(%v) missing %q reported by flat scene", q, name)
			}
		}
	}

	each := 0
	grid.Each(func(*marker) { each++ })
	if each != grid.Len() || each != 4 {
		t.Errorf("Each visited %d items, Len = %d, expected 4", each, grid.Len())
	}
}
