package level

import (
	"encoding/json"

	"github.com/puffgame/puff/internal/core"
)

// Point is an integer coordinate pair, stored on disk as a two-element
// JSON array.
type Point struct {
	X, Y int
}

// Pt is shorthand for Point{x, y}.
func Pt(x, y int) Point {
	return Point{X: x, Y: y}
}

// PointFromVec truncates a world vector to an integer point.
func PointFromVec(v core.Vec2) Point {
	return Point{X: int(v.X), Y: int(v.Y)}
}

// Vec returns the point as a world vector.
func (p Point) Vec() core.Vec2 {
	return core.V(float64(p.X), float64(p.Y))
}

func (p Point) MarshalJSON() ([]byte, error) {
	return json.Marshal([2]int{p.X, p.Y})
}

func (p *Point) UnmarshalJSON(data []byte) error {
	var pair [2]int
	if err := json.Unmarshal(data, &pair); err != nil {
		return err
	}
	p.X, p.Y = pair[0], pair[1]
	return nil
}

// WallInfo places one wall tile. Dim usually mirrors the dimensions of
// the sprite named by TextureID.
type WallInfo struct {
	Pos       Point `json:"pos"`
	Dim       Point `json:"dim"`
	TextureID int   `json:"texture_id"`
}

// PumpInfo places one air pump.
type PumpInfo struct {
	Pos Point `json:"pos"`
}

// MineInfo places one mine.
type MineInfo struct {
	Pos Point `json:"pos"`
}

// GemInfo places one gem.
type GemInfo struct {
	Pos Point `json:"pos"`
}

// FinishInfo places the finish flag. The flag only triggers once the
// player carries exactly GemsRequired gems.
type FinishInfo struct {
	Pos          Point `json:"pos"`
	GemsRequired int   `json:"gems_required"`
}
