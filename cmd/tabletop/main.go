// Command tabletop generates a map for a (biome, seed) pair and prints an
// ASCII relief with its flora overlay. It drives the headless generation
// path, which records the identical heights and placements the rendered
// editor would.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"time"

	"github.com/pelletier/go-toml"

	"github.com/mossdale/tabletop/editor"
	"github.com/mossdale/tabletop/editor/world"
)

func main() {
	confPath := flag.String("config", "tabletop.toml", "path of the config file")
	biomeKey := flag.String("biome", "", "biome key to generate (overrides config)")
	seed := flag.Int64("seed", 0, "generation seed (overrides config)")
	flag.Parse()

	log := slog.Default()

	uc, err := readConfig(*confPath)
	if err != nil {
		log.Error("read config", "err", err)
		os.Exit(1)
	}
	if *biomeKey != "" {
		uc.Generator.Biome = *biomeKey
	}
	if *seed != 0 {
		uc.Generator.Seed = *seed
	}
	if uc.Generator.Seed == 0 {
		uc.Generator.Seed = time.Now().UnixNano()
	}

	conf, err := uc.Config(log)
	if err != nil {
		log.Error("load config", "err", err)
		os.Exit(1)
	}
	ed, err := conf.New()
	if err != nil {
		log.Error("create editor", "err", err)
		os.Exit(1)
	}

	ok, err := ed.Generate(uc.Generator.Biome, editor.GenerateOptions{Seed: uc.Generator.Seed})
	if err != nil {
		log.Error("generate", "err", err)
		os.Exit(1)
	}
	if !ok {
		log.Error("generate: pass skipped")
		os.Exit(1)
	}

	fmt.Printf("biome %s, seed %d, %dx%d\n", uc.Generator.Biome, uc.Generator.Seed, ed.Store().Cols(), ed.Store().Rows())
	render(ed)
}

// render prints the map: flora item initials over a height relief, water
// as '~', rising ground as denser glyphs.
func render(ed *editor.Editor) {
	glyphs := []byte(" .:-=+*#%")
	flora := make(map[world.Cell]byte)
	for _, p := range ed.Flora().Placements() {
		flora[p.Cell] = p.Flora[0]
	}
	for y := 0; y < ed.Store().Rows(); y++ {
		line := make([]byte, ed.Store().Cols())
		for x := 0; x < ed.Store().Cols(); x++ {
			if ch, ok := flora[world.Cell{X: x, Y: y}]; ok {
				line[x] = ch
				continue
			}
			h := ed.Height(x, y)
			if h < 0 {
				line[x] = '~'
				continue
			}
			if h >= len(glyphs) {
				h = len(glyphs) - 1
			}
			line[x] = glyphs[h]
		}
		fmt.Println(string(line))
	}
}

// readConfig reads the TOML config at path, writing the default config
// there first if no file exists yet.
func readConfig(path string) (editor.UserConfig, error) {
	uc := editor.DefaultConfig()
	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		data, err := toml.Marshal(uc)
		if err != nil {
			return uc, fmt.Errorf("encode default config: %w", err)
		}
		return uc, os.WriteFile(path, data, 0644)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return uc, fmt.Errorf("read config: %w", err)
	}
	if err := toml.Unmarshal(data, &uc); err != nil {
		return uc, fmt.Errorf("decode config: %w", err)
	}
	return uc, nil
}
