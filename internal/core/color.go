package core

// Color identifies a foreground color for a screen cell. The platform
// layer maps these to ANSI palette entries.
type Color uint8

// Palette for game elements: the ball, hazards, pickups and map dressing.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorBrightRed
	ColorBrightGreen
	ColorBrightYellow
	ColorBrightBlue
	ColorBrightMagenta
	ColorBrightCyan
	ColorBrightWhite
	ColorOrange
	ColorGray
	ColorTeal
)
