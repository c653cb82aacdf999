package biome

// Swamp is low wet ground. Its candidate filter accepts shallow flooded
// cells as well as dry ones, weighted by how wet their surroundings are.
func Swamp() Profile {
	return Profile{
		ID:              "swamp",
		MinLevel:        -2,
		MaxLevel:        1,
		Roughness:       0.7,
		NoiseScale:      0.18,
		ScaleHint:       0.8,
		Density:         0.18,
		Spacing:         2,
		CandidateFilter: "swampWetness",
		Flora: map[string]float64{
			"willow":   3,
			"mangrove": 3,
			"reeds":    4,
			"deadbush": 1,
		},
	}
}
