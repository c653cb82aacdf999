// Package editor ties the terrain editing core together: the dual-buffer
// height store, the brush, the edit session state machine and the
// procedural generation pipeline, behind one facade the rendering and
// input collaborators talk to.
package editor

import (
	"log/slog"

	"github.com/mossdale/tabletop/editor/world"
	"github.com/mossdale/tabletop/editor/world/generator"
	"github.com/mossdale/tabletop/editor/world/generator/biome"
	"github.com/mossdale/tabletop/editor/world/generator/populate"
)

// Editor is the facade over one map's terrain state. It is
// single-threaded by design: all methods run to completion on the
// caller's goroutine, cooperating with the host event loop.
type Editor struct {
	conf Config
	log  *slog.Logger

	store   *world.Store
	brush   *world.Brush
	session *world.Session
	flora   *populate.Set

	// generating guards against a generation pass being started while a
	// prior pass's deferred visual work is still settling. A flag, not a
	// lock: execution is synchronous, reentrancy is the only concern.
	generating bool
}

// Store returns the height store. Collaborators read heights through it;
// mutation goes through the brush and session only.
func (e *Editor) Store() *world.Store { return e.store }

// Brush returns the brush painting into the working grid.
func (e *Editor) Brush() *world.Brush { return e.brush }

// Session returns the edit session state machine.
func (e *Editor) Session() *world.Session { return e.session }

// Flora returns the flora placement set of the map.
func (e *Editor) Flora() *populate.Set { return e.flora }

// Height is the read-only height accessor handed to collaborators:
// committed level at (x, y), DefaultHeight out of range, never fails.
func (e *Editor) Height(x, y int) int { return e.store.Height(x, y) }

// Resize changes the grid dimensions, preserving the overlapping region
// and filling new cells with the default height. Invalid dimensions
// return an error.
func (e *Editor) Resize(cols, rows int) error { return e.store.Resize(cols, rows) }

// GenerateOptions parametrises one generation pass. The zero value
// generates with seed 0, visuals on, onto any field.
type GenerateOptions struct {
	// Seed drives every random decision of the pass.
	Seed int64
	// WithVisuals selects whether visual side effects are emitted. The
	// logical heights and placements are identical either way.
	WithVisuals bool
	// OnlyIfFlat skips the pass when the committed field has been edited,
	// so user terrain is never silently overwritten.
	OnlyIfFlat bool
}

// Generate runs the full generation pipeline for a biome key: elevation
// field, commit through the edit session, then flora placement over the
// committed heights. It reports whether the pass ran; a pass skipped by
// the reentrancy guard or the OnlyIfFlat gate returns false without
// error. Unknown biome keys resolve to the fallback profile rather than
// failing.
func (e *Editor) Generate(biomeKey string, opts GenerateOptions) (bool, error) {
	if e.generating {
		e.log.Debug("generate: pass already in progress", "biome", biomeKey)
		return false, nil
	}
	e.generating = true
	defer func() { e.generating = false }()

	if opts.OnlyIfFlat && !generator.IsAllDefaultHeight(e.store.Base()) {
		return false, nil
	}

	field, err := generator.Elevation(biomeKey, e.store.Cols(), e.store.Rows(), opts.Seed)
	if err != nil {
		return false, err
	}

	// The field goes through the same enter/paint/commit path user edits
	// take, so commit stays the single write path into the base grid.
	session := e.session
	if !opts.WithVisuals {
		session = world.NewSession(e.store, world.NopViewer{}, e.log)
	}
	if err := session.Enter(); err != nil {
		return false, err
	}
	for y := 0; y < e.store.Rows(); y++ {
		for x := 0; x < e.store.Cols(); x++ {
			e.store.SetWorking(x, y, field.At(x, y))
		}
	}
	if _, err := session.Commit(); err != nil {
		return false, err
	}

	profile := biome.ByKey(biomeKey)
	e.flora.Regenerate(e.store, e.store.Cols(), e.store.Rows(), profile, opts.Seed, opts.WithVisuals)
	return true, nil
}

// ScaleHint returns the advisory vertical exaggeration for a biome's
// renderer.
func (e *Editor) ScaleHint(biomeKey string) float64 {
	return generator.ScaleHint(biomeKey)
}
