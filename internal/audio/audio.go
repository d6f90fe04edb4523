// Package audio defines the sound cues the simulation emits. Terminal
// sessions have no audio device, so the default player drops every cue;
// the interface keeps the call sites in place for a future backend.
package audio

// Cue identifies one game sound.
type Cue int

const (
	CueBounce Cue = iota
	CueDamage
	CuePickUp
	CuePump
	CueFinish
	CueDeath
)

// Player receives cues as the simulation emits them.
type Player interface {
	Play(c Cue)
}

// NullPlayer drops every cue.
type NullPlayer struct{}

func (NullPlayer) Play(Cue) {}
