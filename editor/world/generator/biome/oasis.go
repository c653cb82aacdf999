package biome

// Oasis is desert terrain around pockets of water. Flora clusters at the
// waterline: candidates must touch a water cell, and palms are boosted on
// cells that do.
func Oasis() Profile {
	return Profile{
		ID:              "oasis",
		MinLevel:        -2,
		MaxLevel:        2,
		Roughness:       0.8,
		NoiseScale:      0.16,
		ScaleHint:       1.0,
		Density:         0.3,
		Spacing:         2,
		CandidateFilter: "nearWater",
		Reweight:        "palmNearWater",
		Flora: map[string]float64{
			"palm":     4,
			"reeds":    3,
			"deadbush": 1,
		},
	}
}
