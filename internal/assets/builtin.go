package assets

import (
	_ "embed"

	"github.com/puffgame/puff/internal/core"
)

//go:embed art/background.txt
var backgroundArt string

//go:embed art/logo.txt
var logoArt string

//go:embed art/pump.txt
var pumpArt string

//go:embed art/mine.txt
var mineArt string

//go:embed art/gem.txt
var gemArt string

//go:embed art/flag.txt
var flagArt string

//go:embed art/check.txt
var checkArt string

//go:embed art/wall0.txt
var wall0Art string

//go:embed art/wall1.txt
var wall1Art string

//go:embed art/wall2.txt
var wall2Art string

// Builtin returns a library preloaded with the shipped art.
func Builtin() *Library {
	l := NewLibrary()
	l.Add(Background, parseArt(core.ColorGray, backgroundArt))
	l.Add(Logo, parseArt(core.ColorBrightCyan, logoArt))
	l.Add(Pump, parseArt(core.ColorBrightBlue, pumpArt))
	l.Add(Mine, parseArt(core.ColorBrightRed, mineArt))
	l.Add(Gem, parseArt(core.ColorTeal, gemArt))
	l.Add(Flag, parseArt(core.ColorBrightGreen, flagArt))
	l.Add(Check, parseArt(core.ColorGreen, checkArt))
	l.Add(Other(0), parseArt(core.ColorGray, wall0Art))
	l.Add(Other(1), parseArt(core.ColorRed, wall1Art))
	l.Add(Other(2), parseArt(core.ColorBlue, wall2Art))
	return l
}
