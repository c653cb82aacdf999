package editor

import (
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/mossdale/tabletop/editor/world"
	"github.com/mossdale/tabletop/editor/world/generator/populate"
)

func discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestEditor(t *testing.T, sink populate.Sink) *Editor {
	t.Helper()
	ed, err := Config{Log: discard(), Cols: 20, Rows: 20, Sink: sink}.New()
	if err != nil {
		t.Fatalf("editor: %v", err)
	}
	return ed
}

// countingSink records placements and can reenter the editor, to exercise
// the generation guard.
type countingSink struct {
	placed  int
	removed int
	reenter func() (bool, error)
}

func (s *countingSink) Place(populate.Placement) error {
	s.placed++
	if s.reenter != nil {
		ok, err := s.reenter()
		if err != nil {
			return err
		}
		if ok {
			return errors.New("reentrant generation ran")
		}
	}
	return nil
}

func (s *countingSink) Remove(populate.Placement) error {
	s.removed++
	return nil
}

// TestGenerateDeterminism runs the full pipeline twice with one seed and
// requires identical committed heights and placement lists.
func TestGenerateDeterminism(t *testing.T) {
	t.Parallel()

	a := newTestEditor(t, nil)
	b := newTestEditor(t, nil)
	for _, ed := range []*Editor{a, b} {
		ok, err := ed.Generate("grassland", GenerateOptions{Seed: 42})
		if err != nil || !ok {
			t.Fatalf("generate: ok=%v err=%v", ok, err)
		}
	}
	for y := 0; y < 20; y++ {
		for x := 0; x < 20; x++ {
			if a.Height(x, y) != b.Height(x, y) {
				t.Fatalf("heights diverged at (%d, %d)", x, y)
			}
		}
	}
	ap, bp := a.Flora().Placements(), b.Flora().Placements()
	if len(ap) != len(bp) {
		t.Fatalf("placement counts diverged: %d != %d", len(ap), len(bp))
	}
	for i := range ap {
		if ap[i] != bp[i] {
			t.Fatalf("placement %d diverged", i)
		}
	}
}

// TestGenerateHeadlessParity requires the headless pass to record the
// identical heights and placements while leaving the sink untouched.
func TestGenerateHeadlessParity(t *testing.T) {
	t.Parallel()

	sink := &countingSink{}
	visual := newTestEditor(t, sink)
	if _, err := visual.Generate("forest", GenerateOptions{Seed: 7, WithVisuals: true}); err != nil {
		t.Fatalf("generate: %v", err)
	}
	if sink.placed == 0 {
		t.Fatal("visual pass realised no placements")
	}

	muted := &countingSink{}
	headless := newTestEditor(t, muted)
	if _, err := headless.Generate("forest", GenerateOptions{Seed: 7}); err != nil {
		t.Fatalf("generate: %v", err)
	}
	if muted.placed != 0 {
		t.Fatalf("headless pass realised %d placements", muted.placed)
	}

	vp, hp := visual.Flora().Placements(), headless.Flora().Placements()
	if len(vp) != len(hp) {
		t.Fatalf("placement counts diverged: %d != %d", len(vp), len(hp))
	}
	for i := range vp {
		if vp[i] != hp[i] {
			t.Fatalf("placement %d diverged between modes", i)
		}
	}
	for y := 0; y < 20; y++ {
		for x := 0; x < 20; x++ {
			if visual.Height(x, y) != headless.Height(x, y) {
				t.Fatalf("heights diverged at (%d, %d)", x, y)
			}
		}
	}
}

// TestGenerateOnlyIfFlat ensures generation never overwrites a field the
// user has edited when the gate is on.
func TestGenerateOnlyIfFlat(t *testing.T) {
	t.Parallel()

	ed := newTestEditor(t, nil)
	if err := ed.Session().Enter(); err != nil {
		t.Fatalf("enter: %v", err)
	}
	ed.Brush().Apply(5, 5)
	if _, err := ed.Session().Commit(); err != nil {
		t.Fatalf("commit: %v", err)
	}
	before := ed.Height(5, 5)

	ok, err := ed.Generate("desert", GenerateOptions{Seed: 3, OnlyIfFlat: true})
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if ok {
		t.Fatal("generation ran over user edits")
	}
	if ed.Height(5, 5) != before {
		t.Fatal("gated generation still changed heights")
	}
}

// TestGenerateGuardBlocksReentry triggers Generate from inside a sink
// callback; the inner pass must be refused by the guard.
func TestGenerateGuardBlocksReentry(t *testing.T) {
	t.Parallel()

	sink := &countingSink{}
	ed := newTestEditor(t, sink)
	sink.reenter = func() (bool, error) {
		return ed.Generate("forest", GenerateOptions{Seed: 99, WithVisuals: true})
	}
	ok, err := ed.Generate("grassland", GenerateOptions{Seed: 1, WithVisuals: true})
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if !ok {
		t.Fatal("outer pass did not run")
	}
}

func TestGenerateUnknownBiome(t *testing.T) {
	t.Parallel()

	ed := newTestEditor(t, nil)
	ok, err := ed.Generate("no-such-biome", GenerateOptions{Seed: 5})
	if err != nil || !ok {
		t.Fatalf("unknown biome: ok=%v err=%v", ok, err)
	}
}

func TestResizeDelegates(t *testing.T) {
	t.Parallel()

	ed := newTestEditor(t, nil)
	if err := ed.Resize(25, 10); err != nil {
		t.Fatalf("resize: %v", err)
	}
	if ed.Store().Cols() != 25 || ed.Store().Rows() != 10 {
		t.Fatal("resize did not apply")
	}
	if err := ed.Resize(0, 10); err == nil {
		t.Fatal("invalid resize accepted")
	}
}

func TestUserConfigValidation(t *testing.T) {
	t.Parallel()

	uc := DefaultConfig()
	if _, err := uc.Config(discard()); err != nil {
		t.Fatalf("default config rejected: %v", err)
	}
	uc.Map.Cols = 0
	if _, err := uc.Config(discard()); err == nil {
		t.Fatal("zero cols accepted")
	}
}

func TestHeightAccessorSafeOutOfRange(t *testing.T) {
	t.Parallel()

	ed := newTestEditor(t, nil)
	if h := ed.Height(-5, 100); h != world.DefaultHeight {
		t.Fatalf("out-of-range height %d, want default", h)
	}
}
