// Package assets holds the rune art the game draws and the library that
// serves it. Sprites are text files embedded into the binary; each rune
// covers one screen cell, so a sprite of C columns and R rows occupies
// C*core.CellW by R*core.CellH world units.
package assets

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/puffgame/puff/internal/core"
)

// ErrNoSprite reports a lookup for an id without a loaded sprite.
var ErrNoSprite = errors.New("no such sprite")

// AssetID identifies a sprite. Fixed ids name the unique game pieces;
// numbered wall textures live above otherBase and come from Other.
type AssetID int

const (
	Background AssetID = iota
	Logo
	Pump
	Mine
	Gem
	Flag
	Check

	otherBase AssetID = 100
)

// Other returns the id of wall texture n.
func Other(n int) AssetID {
	return otherBase + AssetID(n)
}

// OtherIndex reports the wall texture number for ids produced by Other.
func (id AssetID) OtherIndex() (int, bool) {
	if id < otherBase {
		return 0, false
	}
	return int(id - otherBase), true
}

func (id AssetID) String() string {
	switch id {
	case Background:
		return "background"
	case Logo:
		return "logo"
	case Pump:
		return "pump"
	case Mine:
		return "mine"
	case Gem:
		return "gem"
	case Flag:
		return "flag"
	case Check:
		return "check"
	}
	if n, ok := id.OtherIndex(); ok {
		return fmt.Sprintf("other/%d", n)
	}
	return fmt.Sprintf("asset(%d)", int(id))
}

// Sprite is rune art with a color. Animated sprites carry several frames
// of identical size.
type Sprite struct {
	frames [][]string
	color  core.Color
	cols   int
	rows   int
}

// NewSprite builds a sprite from parsed frames. Dimensions are the
// maximum row count and rune width across all frames.
func NewSprite(c core.Color, frames ...[]string) *Sprite {
	s := &Sprite{frames: frames, color: c}
	for _, frame := range frames {
		if len(frame) > s.rows {
			s.rows = len(frame)
		}
		for _, row := range frame {
			if w := utf8.RuneCountInString(row); w > s.cols {
				s.cols = w
			}
		}
	}
	return s
}

// parseArt splits rune art text into frames. Frames are separated by a
// line containing only "==".
func parseArt(c core.Color, text string) *Sprite {
	var frames [][]string
	var cur []string
	for _, line := range strings.Split(strings.TrimRight(text, "\n"), "\n") {
		if strings.TrimSpace(line) == "==" {
			frames = append(frames, cur)
			cur = nil
			continue
		}
		cur = append(cur, line)
	}
	if len(cur) > 0 {
		frames = append(frames, cur)
	}
	return NewSprite(c, frames...)
}

// Frame returns frame i, wrapping out-of-range indices.
func (s *Sprite) Frame(i int) []string {
	if len(s.frames) == 0 {
		return nil
	}
	i %= len(s.frames)
	if i < 0 {
		i += len(s.frames)
	}
	return s.frames[i]
}

// FrameCount reports the number of animation frames.
func (s *Sprite) FrameCount() int {
	return len(s.frames)
}

// Color returns the sprite's foreground color.
func (s *Sprite) Color() core.Color {
	return s.color
}

// Cols reports the sprite width in screen cells.
func (s *Sprite) Cols() int {
	return s.cols
}

// Rows reports the sprite height in screen cells.
func (s *Sprite) Rows() int {
	return s.rows
}

// Dimensions returns the world-unit area the sprite covers when drawn.
func (s *Sprite) Dimensions() core.Vec2 {
	return core.V(float64(s.cols*core.CellW), float64(s.rows*core.CellH))
}

// Blit draws frame i with its top-left corner at screen cell (x, y).
// Space runes are transparent.
func (s *Sprite) Blit(scr *core.Screen, i, x, y int) {
	for dy, row := range s.Frame(i) {
		dx := 0
		for _, r := range row {
			if r != ' ' {
				scr.Set(x+dx, y+dy, r, s.color)
			}
			dx++
		}
	}
}

// Tile fills the whole screen with frame 0, repeating it in both
// directions. Used for backdrops.
func (s *Sprite) Tile(scr *core.Screen) {
	frame := s.Frame(0)
	if len(frame) == 0 {
		return
	}
	rows := make([][]rune, len(frame))
	for i, row := range frame {
		rows[i] = []rune(row)
	}
	for y := 0; y < scr.Height(); y++ {
		row := rows[y%len(rows)]
		if len(row) == 0 {
			continue
		}
		for x := 0; x < scr.Width(); x++ {
			if r := row[x%len(row)]; r != ' ' {
				scr.Set(x, y, r, s.color)
			}
		}
	}
}

// Library serves sprites by id.
type Library struct {
	sprites map[AssetID]*Sprite
	maxID   int
}

// NewLibrary returns an empty library.
func NewLibrary() *Library {
	return &Library{sprites: make(map[AssetID]*Sprite)}
}

// Add registers a sprite under id, replacing any previous one. Adding
// wall textures raises MaxTextureID.
func (l *Library) Add(id AssetID, s *Sprite) {
	l.sprites[id] = s
	if n, ok := id.OtherIndex(); ok && n+1 > l.maxID {
		l.maxID = n + 1
	}
}

// Sprite returns the sprite for id, or an error wrapping ErrNoSprite.
func (l *Library) Sprite(id AssetID) (*Sprite, error) {
	s, ok := l.sprites[id]
	if !ok {
		return nil, fmt.Errorf("assets: %w: %s", ErrNoSprite, id)
	}
	return s, nil
}

// Dimensions reports the world-unit size of the sprite for id.
func (l *Library) Dimensions(id AssetID) (core.Vec2, bool) {
	s, ok := l.sprites[id]
	if !ok {
		return core.Vec2{}, false
	}
	return s.Dimensions(), true
}

// MaxTextureID reports one past the highest wall texture number added.
// The editor cycles texture ids modulo this value.
func (l *Library) MaxTextureID() int {
	return l.maxID
}
