// Package biome holds the static per-biome generation profiles: the
// elevation band and roughness a biome's height field is shaped with, and
// the density, spacing and weighted flora palette its scatter is drawn
// from. Profiles are configuration, loaded once and never mutated at
// runtime.
package biome

import "regexp"

// Profile describes how one biome generates terrain and flora.
type Profile struct {
	// ID is the canonical biome id the profile registered under.
	ID string

	// MinLevel and MaxLevel bound the elevation band height shaping aims
	// for, before clamping into the global height range.
	MinLevel, MaxLevel int
	// Roughness scales the noise amplitude within the band: 0 is flat at
	// the band centre, 1 uses the full band.
	Roughness float64
	// NoiseScale is the perlin sampling frequency per cell; smaller values
	// make broader landforms.
	NoiseScale float64
	// ScaleHint is an advisory vertical exaggeration for renderers. Height
	// logic never reads it.
	ScaleHint float64

	// Density is the fraction of eligible cells the scatter strategy aims
	// to plant. Ignored when Lattice is set.
	Density float64
	// Spacing is the minimum Manhattan distance between accepted
	// placements. Zero disables the constraint.
	Spacing int
	// Flora maps item ids to positive scatter weights.
	Flora map[string]float64
	// MinFloraLevel, when non-zero, rejects candidate cells below it on
	// top of the basic elevation gate.
	MinFloraLevel int
	// CandidateFilter names an additional eligibility policy implemented
	// by the placer ("nearWater", "swampWetness"). Empty means the basic
	// "above water" gate only.
	CandidateFilter string
	// Reweight names a position-local weight adjustment implemented by the
	// placer ("palmNearWater"). Empty means the shared palette is used
	// everywhere.
	Reweight string

	// Lattice, when set, replaces random scatter with a regular planting
	// layout.
	Lattice *Lattice
}

// Lattice configures the regular planting strategy used by orchards and
// similar tended layouts.
type Lattice struct {
	// ColSpacing is the fixed distance between planted columns.
	ColSpacing int
	// RowSpacings is cycled to give the distance from each planted row to
	// the next.
	RowSpacings []int
	// RowDensity is cycled per planted row; it scales how many of the
	// row's lattice points are actually planted.
	RowDensity []float64
	// Jitter is the base magnitude, in cells, of per-row horizontal
	// offset. The effective jitter of a row grows as its density factor
	// shrinks; sparse rows wander more.
	Jitter float64
	// UniformRowCounts forces every planted row to carry the same number
	// of items, within one.
	UniformRowCounts bool
}

type registration struct {
	pattern *regexp.Regexp
	profile Profile
}

// registry is matched in registration order; the first pattern matching a
// biome key wins. The order is part of the seed compatibility contract:
// reordering it would re-resolve keys that match several patterns and
// silently change worlds generated from existing seeds.
var registry []registration

// Register appends a profile under a key pattern. Called from init only;
// the registry is read-only afterwards.
func Register(pattern string, p Profile) {
	registry = append(registry, registration{pattern: regexp.MustCompile(pattern), profile: p})
}

// ByKey resolves a biome key to its profile by ordered pattern matching.
// Unknown keys fall back to the grassland profile so that a misconfigured
// key degrades to a sensible map instead of failing the generation pass.
func ByKey(key string) Profile {
	for _, reg := range registry {
		if reg.pattern.MatchString(key) {
			return reg.profile
		}
	}
	return Grassland()
}

// Known returns the canonical ids of all registered profiles, in
// registration order.
func Known() []string {
	ids := make([]string, len(registry))
	for i, reg := range registry {
		ids[i] = reg.profile.ID
	}
	return ids
}

func init() {
	Register(`^(grassland|meadow|plains?)`, Grassland())
	Register(`forest|woods`, Forest())
	Register(`oasis`, Oasis())
	Register(`^(desert|dunes?|badlands)`, Desert())
	Register(`swamp|marsh|bog`, Swamp())
	Register(`^(tundra|snow|ice|glacier)`, Tundra())
	Register(`orchard|grove`, Orchard())
	Register(`mountain|highland|crag`, Highland())
}
