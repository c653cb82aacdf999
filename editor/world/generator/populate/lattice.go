package populate

import (
	"sort"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/mossdale/tabletop/editor/world"
	"github.com/mossdale/tabletop/editor/world/generator/biome"
	"github.com/mossdale/tabletop/editor/world/generator/rand"
)

// Lattice places items on a regular planting layout instead of random
// scatter: fixed column spacing, a cycling sequence of row gaps, and
// per-row horizontal jitter that grows as a row's density factor shrinks.
// Every planted row gets its own layout, jitter and item streams, salted
// with the row index, so rows are independent yet reproducible.
type Lattice struct{}

// Place computes the lattice for one profile. With UniformRowCounts set,
// per-row item counts stay within one of each other: each row's column
// offset is drawn from [0, ColSpacing), which can only shift the number of
// lattice points fitting the grid by one.
func (Lattice) Place(src HeightSource, cols, rows int, p biome.Profile, seed int64) []Placement {
	l := p.Lattice
	if l == nil || l.ColSpacing <= 0 || len(l.RowSpacings) == 0 {
		return nil
	}
	base := rand.KeySeed(seed, p.ID)

	items := rand.NewSalted(base, saltItems)
	picker, err := rand.NewWeightedPicker(p.Flora, items)
	if err != nil {
		return nil
	}

	firstRow := rand.NewSalted(base, saltLatticeOffset).Intn(l.RowSpacings[0])

	var placements []Placement
	cycle := 0
	for row := firstRow; row < rows; row += l.RowSpacings[cycle%len(l.RowSpacings)] {
		placements = append(placements, plantRow(src, cols, row, cycle, l, p, base, picker, seed)...)
		cycle++
	}
	return placements
}

// plantRow plants one lattice row. Jitter draws advance for every lattice
// point, planted or not, so a flooded cell never shifts the jitter of the
// cells after it.
func plantRow(src HeightSource, cols, row, cycle int, l *biome.Lattice, p biome.Profile, base int64, shared *rand.WeightedPicker, seed int64) []Placement {
	layout := rand.NewSalted(rand.SubSeed(base, saltLatticeOffset), int64(row))
	jitterStream := rand.NewSalted(rand.SubSeed(base, saltRowJitter), int64(row))
	rowItems := rand.NewSalted(rand.SubSeed(base, saltRowItems), int64(row))
	picker, err := shared.Reweighted(nil, rowItems)
	if err != nil {
		return nil
	}

	density := 1.0
	if len(l.RowDensity) > 0 {
		density = l.RowDensity[cycle%len(l.RowDensity)]
	}
	if density <= 0 {
		return nil
	}

	offset := layout.Intn(l.ColSpacing)
	var xs []int
	for x := offset; x < cols; x += l.ColSpacing {
		xs = append(xs, x)
	}
	if !l.UniformRowCounts {
		xs = thin(xs, density, layout)
	}

	jitterMag := l.Jitter / density
	placements := make([]Placement, 0, len(xs))
	for _, x := range xs {
		dx := (jitterStream.Float64()*2 - 1) * jitterMag
		h := src.Height(x, row)
		if h < 0 {
			continue
		}
		c := world.Cell{X: x, Y: row}
		flora := picker.Pick()
		placements = append(placements, Placement{
			ID:    placementID(seed, c, flora),
			Cell:  c,
			Flora: flora,
			Pos:   mgl64.Vec3{float64(x) + dx, float64(row), float64(h)},
		})
	}
	return placements
}

// thin keeps floor(len*density) of the row's points, at least one, chosen
// by a partial shuffle of the layout stream and replanted in column order.
func thin(xs []int, density float64, layout *rand.Random) []int {
	if density >= 1 {
		return xs
	}
	keep := int(float64(len(xs)) * density)
	if keep < 1 {
		keep = 1
	}
	idx := make([]int, len(xs))
	for i := range idx {
		idx[i] = i
	}
	for i := 0; i < keep; i++ {
		j := i + layout.Intn(len(idx)-i)
		idx[i], idx[j] = idx[j], idx[i]
	}
	idx = idx[:keep]
	sort.Ints(idx)
	out := make([]int, keep)
	for i, j := range idx {
		out[i] = xs[j]
	}
	return out
}
