package rand

import "testing"

// TestWeightedPickerDeterminism ensures pickers over the same table and
// stream produce identical pick sequences. The item order must come from
// sorting, never from map iteration.
func TestWeightedPickerDeterminism(t *testing.T) {
	t.Parallel()

	weights := map[string]float64{"oak": 3, "shrub": 4, "boulder": 1}
	a, err := NewWeightedPicker(weights, NewSalted(42, 1))
	if err != nil {
		t.Fatalf("picker: %v", err)
	}
	b, err := NewWeightedPicker(map[string]float64{"boulder": 1, "oak": 3, "shrub": 4}, NewSalted(42, 1))
	if err != nil {
		t.Fatalf("picker: %v", err)
	}
	for i := 0; i < 500; i++ {
		if av, bv := a.Pick(), b.Pick(); av != bv {
			t.Fatalf("pick %d diverged: %q != %q", i, av, bv)
		}
	}
}

// TestWeightedPickerProportions sanity-checks that picks roughly follow
// the configured weights.
func TestWeightedPickerProportions(t *testing.T) {
	t.Parallel()

	p, err := NewWeightedPicker(map[string]float64{"common": 9, "rare": 1}, NewRandom(7))
	if err != nil {
		t.Fatalf("picker: %v", err)
	}
	counts := map[string]int{}
	for i := 0; i < 10000; i++ {
		counts[p.Pick()]++
	}
	if counts["common"] < 8500 || counts["common"] > 9500 {
		t.Fatalf("common picked %d of 10000, want near 9000", counts["common"])
	}
	if counts["rare"] == 0 {
		t.Fatal("rare never picked")
	}
}

func TestWeightedPickerRejectsBadTables(t *testing.T) {
	t.Parallel()

	if _, err := NewWeightedPicker(nil, NewRandom(1)); err == nil {
		t.Fatal("empty table accepted")
	}
	if _, err := NewWeightedPicker(map[string]float64{"oak": 0}, NewRandom(1)); err == nil {
		t.Fatal("zero weight accepted")
	}
	if _, err := NewWeightedPicker(map[string]float64{"oak": -2}, NewRandom(1)); err == nil {
		t.Fatal("negative weight accepted")
	}
}

// TestReweightedOverrides ensures overrides replace weights for known
// items only and leave the source picker untouched.
func TestReweightedOverrides(t *testing.T) {
	t.Parallel()

	p, err := NewWeightedPicker(map[string]float64{"palm": 1, "reeds": 1}, NewRandom(3))
	if err != nil {
		t.Fatalf("picker: %v", err)
	}
	boosted, err := p.Reweighted(map[string]float64{"palm": 1000, "unknown": 50}, NewRandom(4))
	if err != nil {
		t.Fatalf("reweighted: %v", err)
	}
	palms := 0
	for i := 0; i < 1000; i++ {
		if boosted.Pick() == "palm" {
			palms++
		}
	}
	if palms < 990 {
		t.Fatalf("palm picked only %d of 1000 with weight 1000:1", palms)
	}
}
