package core

// SceneIndex selects the spatial index used for static props.
type SceneIndex string

const (
	SceneFlat SceneIndex = "flat"
	SceneGrid SceneIndex = "grid"
)

// RuntimeConfig contains configuration passed to screens at initialization.
// Screens use it to size their camera viewport and find level files.
type RuntimeConfig struct {
	ScreenW   int        // Screen width in characters
	ScreenH   int        // Screen height in characters
	TickRate  int        // Simulation ticks per second (default 60)
	HoldTicks int        // Ticks a direction stays held after its last press
	LevelsDir string     // Directory containing level files
	Scene     SceneIndex // Active spatial index for walls and props
	GridCell  float64    // Cell size for the grid index, in world units
}

// DefaultConfig returns a RuntimeConfig with sensible defaults: an 80x25
// cell screen covering the full 320x200 logical viewport.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:   80,
		ScreenH:   25,
		TickRate:  60,
		HoldTicks: 12,
		LevelsDir: "levels",
		Scene:     SceneFlat,
		GridCell:  64,
	}
}

// ViewportW returns the camera viewport width in world units.
func (c RuntimeConfig) ViewportW() float64 {
	return float64(c.ScreenW * CellW)
}

// ViewportH returns the camera viewport height in world units.
func (c RuntimeConfig) ViewportH() float64 {
	return float64(c.ScreenH * CellH)
}
