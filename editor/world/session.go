package world

import (
	"errors"
	"log/slog"
)

// SessionState is the phase a terrain edit session is in.
type SessionState int

const (
	// Inactive means no edit pass is running; base is authoritative and
	// working holds no meaningful divergence.
	Inactive SessionState = iota
	// Active means the user is painting into the working grid.
	Active
	// Committing means a commit pass is copying working into base and
	// refreshing derived visuals. It is never observable across calls;
	// execution is synchronous.
	Committing
)

// ErrSessionNotReady is returned by Enter when the session has no store to
// edit. This is caller misuse, fatal for that attempt only.
var ErrSessionNotReady = errors.New("world: edit session has no height store")

// ErrNotEditing is returned by Commit when no edit pass is active.
var ErrNotEditing = errors.New("world: commit outside an active edit session")

// Viewer is the derived visual representation of the height grid, owned by
// a rendering collaborator. UpdateTile refreshes one cell in place;
// ReplaceTile rebuilds it from scratch and is the fallback when the
// in-place path fails.
type Viewer interface {
	UpdateTile(x, y, height int) error
	ReplaceTile(x, y, height int) error
}

// NopViewer is a Viewer without visual output. Sessions run against it in
// headless mode; all height state changes identically.
type NopViewer struct{}

func (NopViewer) UpdateTile(int, int, int) error  { return nil }
func (NopViewer) ReplaceTile(int, int, int) error { return nil }

// Session is the state machine of one terrain editing pass. Entering loads
// the working grid from base, painting goes through Brush into working
// only, and Commit is the sole transition that writes base. There is no
// cancel transition: re-entering reloads working from base, discarding
// whatever was not committed.
type Session struct {
	store  *Store
	viewer Viewer
	log    *slog.Logger
	state  SessionState
}

// NewSession returns an inactive session over the passed store. A nil
// viewer disables visual refresh entirely, which is valid: the logical
// commit never depends on it. A nil logger defaults to slog.Default().
func NewSession(store *Store, viewer Viewer, log *slog.Logger) *Session {
	if log == nil {
		log = slog.Default()
	}
	if viewer == nil {
		viewer = NopViewer{}
	}
	return &Session{store: store, viewer: viewer, log: log}
}

// State returns the current session state.
func (s *Session) State() SessionState { return s.state }

// Enter begins an edit pass: the working grid is reloaded from base and
// the session becomes Active. Entering while already Active is the
// implicit cancel: uncommitted edits are discarded.
func (s *Session) Enter() error {
	if s.store == nil {
		s.state = Inactive
		return ErrSessionNotReady
	}
	s.store.Reload()
	s.state = Active
	return nil
}

// Commit copies every working cell into base, then refreshes each cell's
// visual tile. The logical copy is unconditional and completes first; a
// cell whose visual refresh fails — even after the replace fallback — is
// logged and skipped, never aborting the remaining cells. Returns the
// number of cells not at DefaultHeight after the commit. The session ends
// Inactive regardless of visual outcomes.
func (s *Session) Commit() (int, error) {
	if s.state != Active {
		return 0, ErrNotEditing
	}
	s.state = Committing

	n := s.store.Commit()

	for y := 0; y < s.store.Rows(); y++ {
		for x := 0; x < s.store.Cols(); x++ {
			h := s.store.Height(x, y)
			if err := s.viewer.UpdateTile(x, y, h); err != nil {
				if err = s.viewer.ReplaceTile(x, y, h); err != nil {
					s.log.Error("commit: tile refresh failed", "x", x, "y", y, "height", h, "err", err)
				}
			}
		}
	}

	s.state = Inactive
	return n, nil
}

// ResetAll clears every cell of both grids to DefaultHeight, in whatever
// state the session is in, and refreshes the visuals the same way Commit
// does.
func (s *Session) ResetAll() {
	s.store.ResetAll()
	for y := 0; y < s.store.Rows(); y++ {
		for x := 0; x < s.store.Cols(); x++ {
			if err := s.viewer.UpdateTile(x, y, DefaultHeight); err != nil {
				if err = s.viewer.ReplaceTile(x, y, DefaultHeight); err != nil {
					s.log.Error("reset: tile refresh failed", "x", x, "y", y, "err", err)
				}
			}
		}
	}
}
