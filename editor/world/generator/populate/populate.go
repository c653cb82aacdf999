// Package populate scatters discrete flora items over a generated or
// edited height field. Placement is a pure function of (heights, profile,
// seed); visual side effects are pushed through a Sink so that headless
// and rendered generation share one code path and one result.
package populate

import (
	"fmt"
	"log/slog"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/google/uuid"
	"github.com/segmentio/fasthash/fnv1a"

	"github.com/mossdale/tabletop/editor/world"
	"github.com/mossdale/tabletop/editor/world/generator/biome"
)

// Stream salts, one per independent random decision of a placement pass.
// Frozen: changing any of them reshuffles every world generated so far.
const (
	saltScatterDraw   = 0xa11c
	saltItems         = 0x17e5
	saltWetness       = 0x3e77
	saltReweight      = 0x9c3d
	saltLatticeOffset = 0x61a7
	saltRowJitter     = 0x44d1
	saltRowItems      = 0x52bb
)

// floraNamespace namespaces the deterministic placement ids below.
var floraNamespace = uuid.MustParse("7b0dcb7e-2a3f-4aa1-9e6c-55d1c8b8a4f2")

// HeightSource is the read-only height accessor placers consume. Out of
// range it returns the default height and never fails.
type HeightSource interface {
	Height(x, y int) int
}

// Placement is one placed flora item. Pos is the render-space position:
// X may carry fractional lattice jitter, Z is the cell's height level.
// ID is derived deterministically from (seed, cell, item) so the same
// seed yields the same ids, letting collaborators track rendered objects
// across regenerations.
type Placement struct {
	ID    uuid.UUID
	Cell  world.Cell
	Flora string
	Pos   mgl64.Vec3
}

// Placer computes the ordered placement list for one biome profile.
type Placer interface {
	Place(src HeightSource, cols, rows int, p biome.Profile, seed int64) []Placement
}

// For returns the placer implementing the profile's strategy.
func For(p biome.Profile) Placer {
	if p.Lattice != nil {
		return Lattice{}
	}
	return Scatter{}
}

// Sink receives the visual side effects of placement. Implementations are
// owned by rendering collaborators; NopSink runs the identical logical
// pass without visuals.
type Sink interface {
	// Place realises one placement visually. An error marks this single
	// placement failed; the pass continues.
	Place(p Placement) error
	// Remove tears down the visual for a previously placed item.
	Remove(p Placement) error
}

// NopSink is a Sink without visual output.
type NopSink struct{}

func (NopSink) Place(Placement) error  { return nil }
func (NopSink) Remove(Placement) error { return nil }

// Set owns the flora category on one map: the current placements, their
// wholesale clearing before a regeneration, and the visual side effects.
// Other categories (tokens, props) are untouched by anything here.
type Set struct {
	sink Sink
	log  *slog.Logger

	placements []Placement
}

// NewSet returns an empty flora set pushing visuals into sink. A nil sink
// is headless; a nil logger defaults to slog.Default().
func NewSet(sink Sink, log *slog.Logger) *Set {
	if sink == nil {
		sink = NopSink{}
	}
	if log == nil {
		log = slog.Default()
	}
	return &Set{sink: sink, log: log}
}

// Placements returns the current placements in placement order.
func (s *Set) Placements() []Placement { return s.placements }

// Regenerate clears every previously placed flora item, computes the new
// placement list for the profile and seed, and realises it through the
// sink. A placement whose cell is already exclusively occupied or whose
// visual realisation fails is skipped without aborting the pass. With
// visuals disabled the pass records the identical logical result, only
// the sink's side effects are skipped; clearing still tears down any
// visuals left by an earlier pass.
func (s *Set) Regenerate(src HeightSource, cols, rows int, p biome.Profile, seed int64, visuals bool) []Placement {
	s.Clear()

	sink := s.sink
	if !visuals {
		sink = NopSink{}
	}
	occupied := newOccupancy(cols)
	var kept []Placement
	for _, pl := range For(p).Place(src, cols, rows, p, seed) {
		if !occupied.claim(pl.Cell) {
			s.log.Debug("flora: cell already occupied", "x", pl.Cell.X, "y", pl.Cell.Y)
			continue
		}
		if err := sink.Place(pl); err != nil {
			s.log.Debug("flora: placement failed", "x", pl.Cell.X, "y", pl.Cell.Y, "item", pl.Flora, "err", err)
			occupied.release(pl.Cell)
			continue
		}
		kept = append(kept, pl)
	}
	s.placements = kept
	return kept
}

// Clear removes every current flora placement, visuals included. Removal
// failures are logged and skipped; the logical set always empties.
func (s *Set) Clear() {
	for _, pl := range s.placements {
		if err := s.sink.Remove(pl); err != nil {
			s.log.Debug("flora: remove failed", "x", pl.Cell.X, "y", pl.Cell.Y, "err", err)
		}
	}
	s.placements = nil
}

// placementID derives the deterministic id for one placement.
func placementID(seed int64, c world.Cell, flora string) uuid.UUID {
	return uuid.NewSHA1(floraNamespace, []byte(fmt.Sprintf("%d/%d,%d/%s", seed, c.X, c.Y, flora)))
}

// posSalt hashes a cell coordinate into a stream salt, so per-cell
// decisions are independent of the order cells are visited in.
func posSalt(x, y int) int64 {
	h := fnv1a.Init64
	h = fnv1a.AddUint64(h, uint64(int64(x)))
	h = fnv1a.AddUint64(h, uint64(int64(y)))
	return int64(h)
}

// cellPos is the render-space position of a placement without jitter.
func cellPos(c world.Cell, h int) mgl64.Vec3 {
	return mgl64.Vec3{float64(c.X), float64(c.Y), float64(h)}
}

func manhattan(a, b world.Cell) int {
	return abs(a.X-b.X) + abs(a.Y-b.Y)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
