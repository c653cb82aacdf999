package populate

import "github.com/mossdale/tabletop/editor/world/generator/rand"

// candidateFilter decides whether a cell is eligible for flora, given its
// height and a position-salted stream for probabilistic policies. A filter
// replaces the default "above water" gate entirely.
type candidateFilter func(src HeightSource, x, y, h int, r *rand.Random) bool

// reweight returns weight overrides for a cell's item pick, or nil when
// the shared palette applies unchanged.
type reweight func(src HeightSource, x, y int) map[string]float64

// candidateFilters and reweights map the names biome profiles refer to
// onto their implementations. Profiles stay pure data this way.
var candidateFilters = map[string]candidateFilter{
	"nearWater":    nearWater,
	"swampWetness": swampWetness,
}

var reweights = map[string]reweight{
	"palmNearWater": palmNearWater,
}

// nearWater accepts dry cells with at least one flooded 4-neighbour; the
// waterline is where oasis growth concentrates.
func nearWater(src HeightSource, x, y, h int, _ *rand.Random) bool {
	return h > 0 && wetNeighbours(src, x, y) > 0
}

// swampWetness accepts all dry cells and, probabilistically, shallow
// flooded ones: the wetter a cell's surroundings and the shallower the
// water, the likelier it grows reeds anyway. Depths below -1 never do.
func swampWetness(src HeightSource, x, y, h int, r *rand.Random) bool {
	if h > 0 {
		return true
	}
	if h < -1 {
		return false
	}
	wet := wetNeighbours(src, x, y)
	if wet == 0 {
		return false
	}
	var chance float64
	if h == 0 {
		chance = 0.35 + 0.1*float64(wet)
	} else {
		chance = 0.15 * float64(wet)
	}
	return r.Float64() < chance
}

// palmNearWater boosts palms on cells actually touching water, leaving
// everything else on the shared palette.
func palmNearWater(src HeightSource, x, y int) map[string]float64 {
	if wetNeighbours(src, x, y) == 0 {
		return nil
	}
	return map[string]float64{"palm": 12}
}

// wetNeighbours counts flooded cells in the 4-neighbourhood.
func wetNeighbours(src HeightSource, x, y int) int {
	n := 0
	for _, d := range [4][2]int{{1, 0}, {-1, 0}, {0, 1}, {0, -1}} {
		if src.Height(x+d[0], y+d[1]) < 0 {
			n++
		}
	}
	return n
}
