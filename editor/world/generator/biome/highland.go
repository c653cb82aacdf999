package biome

// Highland is steep rocky terrain using most of the height range. Flora
// only takes hold above the foothills.
func Highland() Profile {
	return Profile{
		ID:            "highland",
		MinLevel:      1,
		MaxLevel:      5,
		Roughness:     0.9,
		NoiseScale:    0.13,
		ScaleHint:     1.5,
		Density:       0.05,
		Spacing:       3,
		MinFloraLevel: 2,
		Flora: map[string]float64{
			"pine":    4,
			"boulder": 3,
			"shrub":   1,
		},
	}
}
