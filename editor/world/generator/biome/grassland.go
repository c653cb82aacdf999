package biome

// Grassland is gently rolling open terrain with sparse trees and shrubs.
// It doubles as the fallback profile for unknown biome keys.
func Grassland() Profile {
	return Profile{
		ID:         "grassland",
		MinLevel:   0,
		MaxLevel:   2,
		Roughness:  0.45,
		NoiseScale: 0.11,
		ScaleHint:  1.0,
		Density:    0.04,
		Spacing:    3,
		Flora: map[string]float64{
			"oak":        3,
			"shrub":      4,
			"boulder":    1,
			"wildflower": 2,
		},
	}
}
