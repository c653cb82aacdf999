package biome

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/pelletier/go-toml"
)

// Override adjusts the tunable parts of one registered profile. Fields
// left nil or empty keep the built-in value. Filters, strategies and
// elevation shaping are code, not configuration, and cannot be overridden.
type Override struct {
	Density *float64           `toml:"density"`
	Spacing *int               `toml:"spacing"`
	Flora   map[string]float64 `toml:"flora"`
}

type overridesFile struct {
	Biome map[string]Override `toml:"biome"`
}

// LoadOverrides applies the per-biome overrides stored in the TOML file at
// the passed path to the registered profiles. A missing file is not an
// error; the built-in table simply stands. Overrides are keyed by
// canonical profile id, not by pattern.
func LoadOverrides(path string) error {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	} else if err != nil {
		return fmt.Errorf("biome: read overrides: %w", err)
	}
	var file overridesFile
	if err := toml.Unmarshal(data, &file); err != nil {
		return fmt.Errorf("biome: decode overrides: %w", err)
	}
	for id, ov := range file.Biome {
		if err := apply(id, ov); err != nil {
			return err
		}
	}
	return nil
}

func apply(id string, ov Override) error {
	for i := range registry {
		p := &registry[i].profile
		if p.ID != id {
			continue
		}
		if ov.Density != nil {
			if *ov.Density < 0 {
				return fmt.Errorf("biome: override for %q: negative density", id)
			}
			p.Density = *ov.Density
		}
		if ov.Spacing != nil {
			if *ov.Spacing < 0 {
				return fmt.Errorf("biome: override for %q: negative spacing", id)
			}
			p.Spacing = *ov.Spacing
		}
		if len(ov.Flora) > 0 {
			flora := make(map[string]float64, len(ov.Flora))
			for item, w := range ov.Flora {
				if w <= 0 {
					return fmt.Errorf("biome: override for %q: weight for %q must be positive", id, item)
				}
				flora[item] = w
			}
			p.Flora = flora
		}
		return nil
	}
	return fmt.Errorf("biome: override for unknown profile %q", id)
}
