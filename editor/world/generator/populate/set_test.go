package populate

import (
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/google/uuid"

	"github.com/mossdale/tabletop/editor/world"
	"github.com/mossdale/tabletop/editor/world/generator/biome"
)

func discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// recordingSink tracks the visuals a pass realised and can fail selected
// cells.
type recordingSink struct {
	placed   map[uuid.UUID]Placement
	removed  int
	failCell map[world.Cell]bool
}

func newRecordingSink() *recordingSink {
	return &recordingSink{placed: map[uuid.UUID]Placement{}, failCell: map[world.Cell]bool{}}
}

func (s *recordingSink) Place(p Placement) error {
	if s.failCell[p.Cell] {
		return errors.New("sink rejected placement")
	}
	s.placed[p.ID] = p
	return nil
}

func (s *recordingSink) Remove(p Placement) error {
	if _, ok := s.placed[p.ID]; !ok {
		return errors.New("unknown id")
	}
	delete(s.placed, p.ID)
	s.removed++
	return nil
}

// TestSetRegenerateClears ensures a new pass removes every previously
// placed item before placing the new ones, so stale flora never survives
// a biome or seed change.
func TestSetRegenerateClears(t *testing.T) {
	t.Parallel()

	sink := newRecordingSink()
	set := NewSet(sink, discard())
	first := set.Regenerate(flat(1), 15, 15, biome.Forest(), 1, true)
	if len(first) == 0 {
		t.Fatal("first pass placed nothing")
	}
	second := set.Regenerate(flat(1), 15, 15, biome.Desert(), 2, true)
	if sink.removed != len(first) {
		t.Fatalf("second pass removed %d visuals, want %d", sink.removed, len(first))
	}
	if len(sink.placed) != len(second) {
		t.Fatalf("sink holds %d visuals, want %d", len(sink.placed), len(second))
	}
}

// TestSetHeadlessParity runs the same pass with and without visuals and
// requires identical logical results, with the sink untouched in the
// headless run.
func TestSetHeadlessParity(t *testing.T) {
	t.Parallel()

	sink := newRecordingSink()
	visual := NewSet(sink, discard()).Regenerate(flat(1), 18, 18, biome.Forest(), 42, true)
	headless := NewSet(newRecordingSink(), discard()).Regenerate(flat(1), 18, 18, biome.Forest(), 42, false)
	if !samePlacements(visual, headless) {
		t.Fatal("headless pass diverged from the visual pass")
	}

	muted := newRecordingSink()
	NewSet(muted, discard()).Regenerate(flat(1), 18, 18, biome.Forest(), 42, false)
	if len(muted.placed) != 0 {
		t.Fatalf("headless pass realised %d visuals", len(muted.placed))
	}
}

// TestSetSkipsFailedPlacements ensures a sink failure drops that single
// placement and releases its cell without aborting the pass.
func TestSetSkipsFailedPlacements(t *testing.T) {
	t.Parallel()

	probe := NewSet(nil, discard()).Regenerate(flat(1), 15, 15, biome.Forest(), 3, true)
	if len(probe) < 2 {
		t.Fatal("need at least two placements for this test")
	}
	sink := newRecordingSink()
	sink.failCell[probe[0].Cell] = true
	got := NewSet(sink, discard()).Regenerate(flat(1), 15, 15, biome.Forest(), 3, true)
	if len(got) != len(probe)-1 {
		t.Fatalf("pass kept %d placements, want %d", len(got), len(probe)-1)
	}
	for _, pl := range got {
		if pl.Cell == probe[0].Cell {
			t.Fatal("failed placement recorded anyway")
		}
	}
}

func TestSetClearEmpties(t *testing.T) {
	t.Parallel()

	sink := newRecordingSink()
	set := NewSet(sink, discard())
	set.Regenerate(flat(1), 10, 10, biome.Grassland(), 4, true)
	set.Clear()
	if len(set.Placements()) != 0 {
		t.Fatal("clear left placements behind")
	}
	if len(sink.placed) != 0 {
		t.Fatal("clear left visuals behind")
	}
}

// TestPlacementIDsDeterministic ensures ids derive from (seed, cell, item)
// so collaborators can correlate rendered objects across identical runs.
func TestPlacementIDsDeterministic(t *testing.T) {
	t.Parallel()

	a := NewSet(nil, discard()).Regenerate(flat(1), 12, 12, biome.Forest(), 8, false)
	b := NewSet(nil, discard()).Regenerate(flat(1), 12, 12, biome.Forest(), 8, false)
	for i := range a {
		if a[i].ID != b[i].ID {
			t.Fatalf("placement %d id diverged", i)
		}
	}
}
