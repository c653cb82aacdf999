package populate

import (
	"github.com/mossdale/tabletop/editor/world"
	"github.com/mossdale/tabletop/editor/world/generator/biome"
	"github.com/mossdale/tabletop/editor/world/generator/rand"
)

// Scatter is the default placement strategy: rejection-sampled random
// scatter over the profile's eligible cells, with a minimum Manhattan
// spacing between accepted placements.
type Scatter struct{}

// attemptFactor bounds the rejection sampling loop at target*attemptFactor
// draws. This is a termination heuristic, not a guarantee: small or dense
// grids may legitimately end up short of the target.
const attemptFactor = 20

// Place computes the scatter for one profile. The pass draws from streams
// derived from the biome-keyed seed: one for candidate draws, one for item
// picks, plus position-salted streams for per-cell filter and reweighting
// decisions, so no two unrelated decisions share a sequence.
func (Scatter) Place(src HeightSource, cols, rows int, p biome.Profile, seed int64) []Placement {
	if p.Density <= 0 {
		return nil
	}
	base := rand.KeySeed(seed, p.ID)
	candidates := collectCandidates(src, cols, rows, p, base)
	if len(candidates) == 0 {
		return nil
	}

	target := int(float64(len(candidates)) * p.Density)
	if target < 1 {
		target = 1
	}

	draw := rand.NewSalted(base, saltScatterDraw)
	accepted := make([]world.Cell, 0, target)
	for attempts := 0; len(accepted) < target && attempts < target*attemptFactor; attempts++ {
		c := candidates[draw.Intn(len(candidates))]
		if !farEnough(c, accepted, p.Spacing) {
			continue
		}
		accepted = append(accepted, c)
	}

	items := rand.NewSalted(base, saltItems)
	picker, err := rand.NewWeightedPicker(p.Flora, items)
	if err != nil {
		// A profile without a valid palette places nothing; the heights
		// are already generated and must not be discarded over it.
		return nil
	}

	placements := make([]Placement, 0, len(accepted))
	for _, c := range accepted {
		flora := pickItem(picker, src, c, p, base)
		placements = append(placements, Placement{
			ID:    placementID(seed, c, flora),
			Cell:  c,
			Flora: flora,
			Pos:   cellPos(c, src.Height(c.X, c.Y)),
		})
	}
	return placements
}

// collectCandidates gathers every cell passing the profile's eligibility
// gates: the elevation gate (above water unless the candidate filter
// brings its own policy), the minimum flora level, and the named candidate
// filter over the cell's neighbourhood.
func collectCandidates(src HeightSource, cols, rows int, p biome.Profile, base int64) []world.Cell {
	filter := candidateFilters[p.CandidateFilter]
	var out []world.Cell
	for y := 0; y < rows; y++ {
		for x := 0; x < cols; x++ {
			h := src.Height(x, y)
			if filter == nil {
				if h <= 0 {
					continue
				}
			} else if !filter(src, x, y, h, rand.NewSalted(rand.SubSeed(base, saltWetness), posSalt(x, y))) {
				continue
			}
			if p.MinFloraLevel != 0 && h < p.MinFloraLevel {
				continue
			}
			out = append(out, world.Cell{X: x, Y: y})
		}
	}
	return out
}

// pickItem chooses the flora id for one accepted cell. Profiles with a
// local reweight get a position-salted picker when the cell qualifies;
// everything else draws from the shared item stream.
func pickItem(picker *rand.WeightedPicker, src HeightSource, c world.Cell, p biome.Profile, base int64) string {
	if rw := reweights[p.Reweight]; rw != nil {
		if overrides := rw(src, c.X, c.Y); overrides != nil {
			local := rand.NewSalted(rand.SubSeed(base, saltReweight), posSalt(c.X, c.Y))
			if boosted, err := picker.Reweighted(overrides, local); err == nil {
				return boosted.Pick()
			}
		}
	}
	return picker.Pick()
}

func farEnough(c world.Cell, accepted []world.Cell, spacing int) bool {
	if spacing <= 0 {
		return true
	}
	for _, a := range accepted {
		if manhattan(c, a) < spacing {
			return false
		}
	}
	return true
}
