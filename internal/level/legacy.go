package level

import "encoding/json"

// pointF is the legacy float coordinate pair, a two-element JSON array.
type pointF struct {
	X, Y float64
}

func (p *pointF) UnmarshalJSON(data []byte) error {
	var pair [2]float64
	if err := json.Unmarshal(data, &pair); err != nil {
		return err
	}
	p.X, p.Y = pair[0], pair[1]
	return nil
}

func (p pointF) truncate() Point {
	return Point{X: int(p.X), Y: int(p.Y)}
}

// legacyLevel is the "0.1" on-disk schema. It stored float positions and
// carried no version field.
type legacyLevel struct {
	Name    string             `json:"name"`
	Map     legacyMap          `json:"map"`
	BallPos pointF             `json:"ball_pos"`
	Walls   []legacyWallInfo   `json:"walls"`
	Pumps   []legacyEntityInfo `json:"pumps"`
	Mines   []legacyEntityInfo `json:"mines"`
	Gems    []legacyEntityInfo `json:"gems"`
	Finish  *legacyFinishInfo  `json:"finish"`
}

type legacyMap struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

type legacyWallInfo struct {
	Pos       pointF `json:"pos"`
	Dim       pointF `json:"dim"`
	TextureID int    `json:"texture_id"`
}

type legacyEntityInfo struct {
	Pos pointF `json:"pos"`
}

type legacyFinishInfo struct {
	Pos          pointF `json:"pos"`
	GemsRequired int    `json:"gems_required"`
}

// upgrade converts a legacy level to the current format. Positions
// truncate to integers and the version is stamped to CurrentVersion;
// nothing else changes.
func (l *legacyLevel) upgrade() *Level {
	lvl := &Level{
		Name:    l.Name,
		Version: CurrentVersion,
		Map:     Map{Width: int(l.Map.Width), Height: int(l.Map.Height)},
		BallPos: l.BallPos.truncate(),
		Walls:   make([]WallInfo, 0, len(l.Walls)),
		Pumps:   make([]PumpInfo, 0, len(l.Pumps)),
		Mines:   make([]MineInfo, 0, len(l.Mines)),
		Gems:    make([]GemInfo, 0, len(l.Gems)),
	}
	for _, w := range l.Walls {
		lvl.Walls = append(lvl.Walls, WallInfo{
			Pos:       w.Pos.truncate(),
			Dim:       w.Dim.truncate(),
			TextureID: w.TextureID,
		})
	}
	for _, p := range l.Pumps {
		lvl.Pumps = append(lvl.Pumps, PumpInfo{Pos: p.Pos.truncate()})
	}
	for _, m := range l.Mines {
		lvl.Mines = append(lvl.Mines, MineInfo{Pos: m.Pos.truncate()})
	}
	for _, g := range l.Gems {
		lvl.Gems = append(lvl.Gems, GemInfo{Pos: g.Pos.truncate()})
	}
	if l.Finish != nil {
		lvl.Finish = &FinishInfo{
			Pos:          l.Finish.Pos.truncate(),
			GemsRequired: l.Finish.GemsRequired,
		}
	}
	return lvl
}
