package world

// Tool selects the direction a brush application moves height levels in.
type Tool int

const (
	// Raise increases the level of every footprint cell by HeightStep.
	Raise Tool = iota
	// Lower decreases the level of every footprint cell by HeightStep.
	Lower
)

// Cell is a single grid coordinate.
type Cell struct {
	X, Y int
}

// Brush paints square footprints of height deltas into a Store's working
// grid. Its state (tool, size) persists for the editing session and is
// mutated only through the setters.
type Brush struct {
	store *Store
	tool  Tool
	size  int
	step  int
}

// NewBrush returns a brush painting into the passed store, starting with
// the Raise tool at the minimum size.
func NewBrush(store *Store) *Brush {
	return &Brush{store: store, tool: Raise, size: MinBrushSize, step: HeightStep}
}

// Tool returns the currently selected tool.
func (b *Brush) Tool() Tool { return b.tool }

// SetTool selects the tool used by subsequent applications.
func (b *Brush) SetTool(t Tool) { b.tool = t }

// Size returns the current footprint edge length.
func (b *Brush) Size() int { return b.size }

// SetSize sets the footprint edge length, clamped into
// [MinBrushSize, MaxBrushSize].
func (b *Brush) SetSize(size int) {
	if size < MinBrushSize {
		size = MinBrushSize
	} else if size > MaxBrushSize {
		size = MaxBrushSize
	}
	b.size = size
}

// Footprint returns the cells of the size×size square centred on (cx, cy),
// clipped to the grid. Odd sizes centre exactly. Even sizes keep the
// historical bias towards the top-left quadrant: the footprint starts at
// c-floor(size/2) on both axes. Maps painted under that bias exist, so it
// is part of the contract.
func (b *Brush) Footprint(cx, cy int) []Cell {
	margin := b.size / 2
	cells := make([]Cell, 0, b.size*b.size)
	for y := cy - margin; y < cy-margin+b.size; y++ {
		for x := cx - margin; x < cx-margin+b.size; x++ {
			if b.store.working.Contains(x, y) {
				cells = append(cells, Cell{X: x, Y: y})
			}
		}
	}
	return cells
}

// Apply paints one brush application centred on (cx, cy) into the working
// grid and reports whether any cell actually changed, so callers can skip
// scheduling a visual refresh for saturated strokes. An unknown tool value
// applies nothing; stale UI state must not corrupt the grid.
func (b *Brush) Apply(cx, cy int) bool {
	var delta int
	switch b.tool {
	case Raise:
		delta = b.step
	case Lower:
		delta = -b.step
	default:
		return false
	}

	changed := false
	for _, c := range b.Footprint(cx, cy) {
		cur := b.store.WorkingHeight(c.X, c.Y)
		next := clampHeight(cur + delta)
		if next != cur {
			b.store.SetWorking(c.X, c.Y, next)
			changed = true
		}
	}
	return changed
}
