package biome

// Orchard is flat tended ground planted on a regular lattice rather than
// random scatter: fixed column spacing, a cycling pattern of row gaps, and
// small horizontal jitter that grows on the sparser rows.
func Orchard() Profile {
	return Profile{
		ID:         "orchard",
		MinLevel:   0,
		MaxLevel:   1,
		Roughness:  0.25,
		NoiseScale: 0.07,
		ScaleHint:  1.0,
		Spacing:    1,
		Flora: map[string]float64{
			"apple": 5,
			"pear":  3,
			"plum":  2,
		},
		Lattice: &Lattice{
			ColSpacing:       3,
			RowSpacings:      []int{2, 3},
			RowDensity:       []float64{1.0, 0.7},
			Jitter:           0.35,
			UniformRowCounts: true,
		},
	}
}
