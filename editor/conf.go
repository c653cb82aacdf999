package editor

import (
	"fmt"
	"log/slog"

	"github.com/mossdale/tabletop/editor/world"
	"github.com/mossdale/tabletop/editor/world/generator/biome"
	"github.com/mossdale/tabletop/editor/world/generator/populate"
)

// Config contains options for constructing a terrain Editor.
type Config struct {
	// Log is the Logger used for everything the editor reports, such as
	// per-cell visual refresh failures during a commit. If nil, Log is set
	// to slog.Default().
	Log *slog.Logger
	// Cols and Rows are the initial grid dimensions.
	Cols, Rows int
	// Viewer receives per-cell visual refreshes on commit. Nil disables
	// visual output for the height grid; all logical state is unaffected.
	Viewer world.Viewer
	// Sink receives flora placement visuals. Nil disables them likewise.
	Sink populate.Sink
}

// New constructs an Editor from the config. Invalid dimensions return an
// error.
func (conf Config) New() (*Editor, error) {
	if conf.Log == nil {
		conf.Log = slog.Default()
	}
	store, err := world.NewStore(conf.Cols, conf.Rows)
	if err != nil {
		return nil, err
	}
	return &Editor{
		conf:    conf,
		log:     conf.Log,
		store:   store,
		brush:   world.NewBrush(store),
		session: world.NewSession(store, conf.Viewer, conf.Log),
		flora:   populate.NewSet(conf.Sink, conf.Log),
	}, nil
}

// UserConfig is the configuration users change in the config file. It is
// written to and read from disk as TOML; Config turns it into a runtime
// Config.
type UserConfig struct {
	Map struct {
		// Cols and Rows are the grid dimensions of a new map.
		Cols int `toml:"cols"`
		Rows int `toml:"rows"`
	} `toml:"map"`
	Generator struct {
		// Biome is the biome key passed to generation by default.
		Biome string `toml:"biome"`
		// Seed seeds generation. Zero picks a seed at startup.
		Seed int64 `toml:"seed"`
	} `toml:"generator"`
	Biomes struct {
		// Overrides is the path of an optional TOML file adjusting the
		// built-in biome profiles. Empty disables overrides.
		Overrides string `toml:"overrides"`
	} `toml:"biomes"`
}

// DefaultConfig returns a UserConfig with sensible defaults: a 24x24 grid
// and grassland generation.
func DefaultConfig() UserConfig {
	c := UserConfig{}
	c.Map.Cols, c.Map.Rows = 24, 24
	c.Generator.Biome = "grassland"
	return c
}

// Config converts the user configuration to a runtime Config, loading
// biome overrides if configured.
func (uc UserConfig) Config(log *slog.Logger) (Config, error) {
	if uc.Map.Cols <= 0 || uc.Map.Rows <= 0 {
		return Config{}, fmt.Errorf("editor: invalid map dimensions %dx%d", uc.Map.Cols, uc.Map.Rows)
	}
	if uc.Biomes.Overrides != "" {
		if err := biome.LoadOverrides(uc.Biomes.Overrides); err != nil {
			return Config{}, err
		}
	}
	return Config{Log: log, Cols: uc.Map.Cols, Rows: uc.Map.Rows}, nil
}
