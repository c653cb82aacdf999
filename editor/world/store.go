package world

// Store owns the two height grids of the edit model: base, the committed
// authoritative field everything derived (tiles, meshes, flora) reads
// from, and working, the buffer an active edit session paints into. Commit
// is the single write path from working into base, which keeps reasoning
// about consistency with derived state simple. Store's methods are the
// only code that mutates either grid.
type Store struct {
	base    *Grid
	working *Grid
}

// NewStore returns a store with both grids at the passed dimensions, all
// cells at DefaultHeight. Invalid dimensions return an error.
func NewStore(cols, rows int) (*Store, error) {
	base, err := NewGrid(cols, rows)
	if err != nil {
		return nil, err
	}
	return &Store{base: base, working: base.Clone()}, nil
}

// Cols returns the current number of columns.
func (s *Store) Cols() int { return s.base.cols }

// Rows returns the current number of rows.
func (s *Store) Rows() int { return s.base.rows }

// Height returns the committed level at (x, y). Out-of-range coordinates
// return DefaultHeight and never fail: collaborators probe freely around
// the map edge.
func (s *Store) Height(x, y int) int {
	return s.base.At(x, y)
}

// WorkingHeight returns the in-progress level at (x, y), DefaultHeight out
// of range.
func (s *Store) WorkingHeight(x, y int) int {
	return s.working.At(x, y)
}

// SetWorking writes a clamped level into the working grid only. The base
// grid is untouched until Commit.
func (s *Store) SetWorking(x, y, h int) {
	s.working.Set(x, y, h)
}

// Reload discards uncommitted edits by copying base back into working.
func (s *Store) Reload() {
	s.working.CopyFrom(s.base)
}

// Commit copies the working grid into the base grid. The copy is
// unconditional and completes before any caller-side visual refresh, so
// the height model can never be left inconsistent by downstream failures.
// It returns the number of cells not at DefaultHeight after the commit.
func (s *Store) Commit() int {
	s.base.CopyFrom(s.working)
	n := 0
	for _, h := range s.base.cells {
		if h != DefaultHeight {
			n++
		}
	}
	return n
}

// Resize reallocates both grids at the new dimensions, preserving the
// overlapping min(oldRows,newRows) × min(oldCols,newCols) region and
// filling new cells with DefaultHeight. Invalid dimensions return an
// error; unlike a bad paint coordinate this signals caller misuse.
func (s *Store) Resize(cols, rows int) error {
	base, err := s.base.resized(cols, rows)
	if err != nil {
		return err
	}
	working, err := s.working.resized(cols, rows)
	if err != nil {
		return err
	}
	s.base, s.working = base, working
	return nil
}

// ResetAll forces every cell of both grids to DefaultHeight, independent
// of any edit session state. This is the explicit "clear terrain"
// operation.
func (s *Store) ResetAll() {
	s.base.Fill(DefaultHeight)
	s.working.Fill(DefaultHeight)
}

// Base returns the committed grid for read-only iteration by generators.
func (s *Store) Base() *Grid { return s.base }
