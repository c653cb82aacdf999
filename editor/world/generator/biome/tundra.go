package biome

// Tundra is near-flat frozen plains with scattered rock and stunted trees.
func Tundra() Profile {
	return Profile{
		ID:         "tundra",
		MinLevel:   0,
		MaxLevel:   1,
		Roughness:  0.3,
		NoiseScale: 0.09,
		ScaleHint:  0.9,
		Density:    0.03,
		Spacing:    3,
		Flora: map[string]float64{
			"pine":    2,
			"boulder": 4,
			"stump":   1,
		},
	}
}
