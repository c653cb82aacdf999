package biome

// Desert is broad dune fields with very sparse hardy growth.
func Desert() Profile {
	return Profile{
		ID:         "desert",
		MinLevel:   0,
		MaxLevel:   3,
		Roughness:  0.5,
		NoiseScale: 0.08,
		ScaleHint:  1.2,
		Density:    0.015,
		Spacing:    4,
		Flora: map[string]float64{
			"cactus":   5,
			"deadbush": 3,
			"boulder":  2,
		},
	}
}
