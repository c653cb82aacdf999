package generator

import (
	"testing"

	"github.com/mossdale/tabletop/editor/world"
	"github.com/mossdale/tabletop/editor/world/generator/biome"
)

// TestElevationDeterminism generates the same grassland field twice with
// one seed and requires element-wise identical results.
func TestElevationDeterminism(t *testing.T) {
	t.Parallel()

	a, err := Elevation("grassland", 20, 20, 42)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	b, err := Elevation("grassland", 20, 20, 42)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	for y := 0; y < 20; y++ {
		for x := 0; x < 20; x++ {
			if a.At(x, y) != b.At(x, y) {
				t.Fatalf("(%d, %d) diverged: %d != %d", x, y, a.At(x, y), b.At(x, y))
			}
		}
	}
}

func TestElevationSeedsDiffer(t *testing.T) {
	t.Parallel()

	a, _ := Elevation("highland", 20, 20, 1)
	b, _ := Elevation("highland", 20, 20, 2)
	same := true
	for y := 0; y < 20 && same; y++ {
		for x := 0; x < 20; x++ {
			if a.At(x, y) != b.At(x, y) {
				same = false
				break
			}
		}
	}
	if same {
		t.Fatal("different seeds produced identical fields")
	}
}

// TestElevationStaysInBand ensures every generated level lies within the
// biome's band and the global height range.
func TestElevationStaysInBand(t *testing.T) {
	t.Parallel()

	for _, key := range biome.Known() {
		p := biome.ByKey(key)
		g, err := Elevation(key, 25, 25, 7)
		if err != nil {
			t.Fatalf("%s: %v", key, err)
		}
		for y := 0; y < 25; y++ {
			for x := 0; x < 25; x++ {
				h := g.At(x, y)
				if h < p.MinLevel || h > p.MaxLevel {
					t.Fatalf("%s (%d, %d) = %d outside band [%d, %d]", key, x, y, h, p.MinLevel, p.MaxLevel)
				}
				if h < world.MinHeight || h > world.MaxHeight {
					t.Fatalf("%s (%d, %d) = %d outside global range", key, x, y, h)
				}
			}
		}
	}
}

func TestElevationRejectsBadDimensions(t *testing.T) {
	t.Parallel()

	if _, err := Elevation("grassland", 0, 10, 1); err == nil {
		t.Fatal("zero cols accepted")
	}
	if _, err := Elevation("grassland", 10, -1, 1); err == nil {
		t.Fatal("negative rows accepted")
	}
}

// TestElevationUnknownBiomeFallsBack ensures unknown keys generate with
// the fallback profile instead of failing the pass.
func TestElevationUnknownBiomeFallsBack(t *testing.T) {
	t.Parallel()

	g, err := Elevation("no-such-biome", 10, 10, 3)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	p := biome.Grassland()
	for y := 0; y < 10; y++ {
		for x := 0; x < 10; x++ {
			if h := g.At(x, y); h < p.MinLevel || h > p.MaxLevel {
				t.Fatalf("fallback field has level %d outside grassland band", h)
			}
		}
	}
}

func TestIsAllDefaultHeight(t *testing.T) {
	t.Parallel()

	g, _ := world.NewGrid(5, 5)
	if !IsAllDefaultHeight(g) {
		t.Fatal("fresh grid not all default")
	}
	g.Set(4, 4, 1)
	if IsAllDefaultHeight(g) {
		t.Fatal("edited grid reported all default")
	}
}

func TestScaleHint(t *testing.T) {
	t.Parallel()

	if ScaleHint("highland") != biome.Highland().ScaleHint {
		t.Fatal("highland hint mismatch")
	}
	if ScaleHint("no-such-biome") != biome.Grassland().ScaleHint {
		t.Fatal("unknown key did not fall back to grassland hint")
	}
}
