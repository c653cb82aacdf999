package biome

// Forest is dense mixed woodland on uneven ground.
func Forest() Profile {
	return Profile{
		ID:         "forest",
		MinLevel:   0,
		MaxLevel:   3,
		Roughness:  0.6,
		NoiseScale: 0.14,
		ScaleHint:  1.0,
		Density:    0.22,
		Spacing:    2,
		Flora: map[string]float64{
			"oak":   5,
			"birch": 3,
			"pine":  2,
			"shrub": 2,
			"stump": 1,
		},
	}
}
