// Package generator turns a (biome, seed) pair into a height field and,
// through its populate subpackage, a deterministic flora scatter over it.
// Everything here is a pure function of its inputs: the same seed must
// reproduce the same map on every run and platform.
package generator

import (
	"math"

	"github.com/aquilax/go-perlin"

	"github.com/mossdale/tabletop/editor/world"
	"github.com/mossdale/tabletop/editor/world/generator/biome"
	"github.com/mossdale/tabletop/editor/world/generator/rand"
)

// Stream salts. Each independent random decision of a generation pass owns
// one, so decisions never correlate through a shared stream. The values
// are arbitrary but frozen: changing any of them changes every world.
const (
	saltShape  = 0x5e17
	saltDetail = 0xd374
)

// perlin octave parameters, matched to grids of tens by tens of cells.
const (
	perlinAlpha   = 2
	perlinBeta    = 2
	perlinOctaves = 3
)

// Elevation generates the height field for a biome: perlin landforms
// mapped into the biome's elevation band, a per-cell detail dither, one
// neighbour smoothing pass, then rounding and clamping into the global
// height range. Same inputs, same field. Invalid dimensions return an
// error.
func Elevation(biomeKey string, cols, rows int, seed int64) (*world.Grid, error) {
	grid, err := world.NewGrid(cols, rows)
	if err != nil {
		return nil, err
	}
	p := biome.ByKey(biomeKey)
	base := rand.KeySeed(seed, p.ID)
	shape := perlin.NewPerlin(perlinAlpha, perlinBeta, perlinOctaves, rand.SubSeed(base, saltShape))
	detail := rand.NewSalted(base, saltDetail)

	centre := float64(p.MinLevel+p.MaxLevel) / 2
	half := float64(p.MaxLevel-p.MinLevel) / 2

	raw := make([]float64, cols*rows)
	for y := 0; y < rows; y++ {
		for x := 0; x < cols; x++ {
			// Noise2D stays within roughly ±0.7 for these octave
			// parameters; normalise so the band is actually reachable.
			n := shape.Noise2D(float64(x)*p.NoiseScale, float64(y)*p.NoiseScale) / 0.7
			dither := (detail.Float64() - 0.5) * 0.4
			raw[y*cols+x] = centre + n*p.Roughness*half + dither
		}
	}

	smoothed := smooth(raw, cols, rows)
	for y := 0; y < rows; y++ {
		for x := 0; x < cols; x++ {
			lvl := int(math.Round(smoothed[y*cols+x]))
			if lvl < p.MinLevel {
				lvl = p.MinLevel
			} else if lvl > p.MaxLevel {
				lvl = p.MaxLevel
			}
			grid.Set(x, y, lvl)
		}
	}
	return grid, nil
}

// smooth averages each cell with its 4-neighbourhood, centre weighted
// double. One pass is enough to stop single-cell spikes from rounding.
func smooth(raw []float64, cols, rows int) []float64 {
	out := make([]float64, len(raw))
	at := func(x, y int) float64 {
		if x < 0 {
			x = 0
		} else if x >= cols {
			x = cols - 1
		}
		if y < 0 {
			y = 0
		} else if y >= rows {
			y = rows - 1
		}
		return raw[y*cols+x]
	}
	for y := 0; y < rows; y++ {
		for x := 0; x < cols; x++ {
			sum := 2*at(x, y) + at(x-1, y) + at(x+1, y) + at(x, y-1) + at(x, y+1)
			out[y*cols+x] = sum / 6
		}
	}
	return out
}

// IsAllDefaultHeight reports whether every cell of the grid sits at
// DefaultHeight. Callers use it to generate only onto untouched maps, so
// user edits are never silently overwritten.
func IsAllDefaultHeight(g *world.Grid) bool {
	for y := 0; y < g.Rows(); y++ {
		for x := 0; x < g.Cols(); x++ {
			if g.At(x, y) != world.DefaultHeight {
				return false
			}
		}
	}
	return true
}

// ScaleHint returns the advisory vertical exaggeration for a biome's
// renderer. Height logic does not consume it.
func ScaleHint(biomeKey string) float64 {
	return biome.ByKey(biomeKey).ScaleHint
}
