// Package level defines the on-disk level format and its directory store.
//
// Levels are JSON files. Every file carries a format version; the loader
// probes a minimal header first and dispatches on it, upgrading legacy
// files transparently. The game only ever works with the current format
// in memory.
package level

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/puffgame/puff/internal/core"
)

// CurrentVersion is the format version this package writes.
const CurrentVersion = "1.0"

// legacyVersion marked float-position files; it is also assumed for
// files written before versioning existed, which carry no version field.
const legacyVersion = "0.1"

// ErrUnsupportedVersion reports a level file with a version this package
// cannot read.
var ErrUnsupportedVersion = errors.New("unsupported version")

// Header is the minimal subset shared by every level version. It is
// decoded first to pick the full schema, and it is all the title screen
// needs to list levels.
type Header struct {
	Name    string `json:"name"`
	Version string `json:"version"`
}

// ReadHeader probes path for the level name and format version without
// decoding the full level.
func ReadHeader(path string) (Header, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Header{}, fmt.Errorf("level: cannot read %s: %w", path, err)
	}
	var h Header
	if err := json.Unmarshal(data, &h); err != nil {
		return Header{}, fmt.Errorf("level: cannot parse header of %s: %w", path, err)
	}
	if h.Version == "" {
		h.Version = legacyVersion
	}
	return h, nil
}

// Level is a complete level in the current format.
type Level struct {
	Name    string      `json:"name"`
	Version string      `json:"version"`
	Map     Map         `json:"map"`
	BallPos Point       `json:"ball_pos"`
	Walls   []WallInfo  `json:"walls"`
	Pumps   []PumpInfo  `json:"pumps"`
	Mines   []MineInfo  `json:"mines"`
	Gems    []GemInfo   `json:"gems"`
	Finish  *FinishInfo `json:"finish"`
}

// New returns an empty level with the default map and ball spawn.
func New() *Level {
	return &Level{
		Name:    "No Name",
		Version: CurrentVersion,
		Map:     DefaultMap(),
		BallPos: Pt(36, 36),
		Walls:   []WallInfo{},
		Pumps:   []PumpInfo{},
		Mines:   []MineInfo{},
		Gems:    []GemInfo{},
	}
}

// Load reads one level file, upgrading legacy formats to the current one.
func Load(path string) (*Level, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("level: cannot read %s: %w", path, err)
	}
	var h Header
	if err := json.Unmarshal(data, &h); err != nil {
		return nil, fmt.Errorf("level: cannot parse header of %s: %w", path, err)
	}
	if h.Version == "" {
		h.Version = legacyVersion
	}

	switch h.Version {
	case legacyVersion:
		var legacy legacyLevel
		if err := json.Unmarshal(data, &legacy); err != nil {
			return nil, fmt.Errorf("level: cannot parse legacy %s: %w", path, err)
		}
		return legacy.upgrade(), nil
	case CurrentVersion:
		var lvl Level
		if err := json.Unmarshal(data, &lvl); err != nil {
			return nil, fmt.Errorf("level: cannot parse %s: %w", path, err)
		}
		return &lvl, nil
	default:
		return nil, fmt.Errorf("level: %w %q in %s", ErrUnsupportedVersion, h.Version, path)
	}
}

// Save writes the level as indented JSON, creating the directory if
// needed.
func (l *Level) Save(path string) error {
	data, err := json.MarshalIndent(l, "", "  ")
	if err != nil {
		return fmt.Errorf("level: cannot encode %q: %w", l.Name, err)
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("level: cannot create %s: %w", dir, err)
		}
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("level: cannot write %s: %w", path, err)
	}
	return nil
}

// BallPosition returns the ball spawn as a world vector.
func (l *Level) BallPosition() core.Vec2 {
	return l.BallPos.Vec()
}

// SetBallPosition truncates pos to the stored integer spawn point.
func (l *Level) SetBallPosition(pos core.Vec2) {
	l.BallPos = PointFromVec(pos)
}
