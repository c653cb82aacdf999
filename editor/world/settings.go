// Package world holds the authoritative terrain state of a tabletop map:
// the committed and working height grids, the brush that paints them and
// the edit session that moves changes between the two.
package world

// Height level bounds. Levels are small signed integers; negative levels
// render as water or pits, positive as raised terrain.
const (
	MinHeight     = -3
	MaxHeight     = 5
	DefaultHeight = 0
)

// Brush limits and the fixed per-application height increment.
const (
	MinBrushSize = 1
	MaxBrushSize = 7
	HeightStep   = 1
)

// clampHeight forces a level into [MinHeight, MaxHeight].
func clampHeight(h int) int {
	if h < MinHeight {
		return MinHeight
	}
	if h > MaxHeight {
		return MaxHeight
	}
	return h
}
