package main

import (
	"fmt"
	"image"
	"os"
	"path/filepath"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/mitchellh/go-homedir"

	"github.com/voidshard/tileset"
)

const desc = `Generates a pixel-art tile atlas, a debug preview of it & the mapping table describing each tile.

The atlas is a fixed grid of square tiles (16x16 tiles of 32px by default). Each populated slot is painted by
the painter of its tile family (floor, wall, water ..) & animated families are baked as 4 consecutive frames.
Slots not in the manifest are left fully transparent.

Alongside the atlas we write
 - a preview (checkerboard background, grid lines & the index of every slot)
 - a CSV mapping table (Index, Name, Char, Properties) that level tooling reads
 - a Tiled .tsx tileset with typed tile properties & animations
 - a sqlite catalog of the same data`

var cli struct {
	// yaml config, flags below override it
	Config string `short:"c" help:"yaml config file"`

	// where to write everything
	Out string `short:"o" help:"output directory (overrides config)"`

	// write enlarged copies of the atlas & preview
	Scale int `short:"s" help:"also write atlas & preview enlarged by this factor"`

	// cut out each tile into it's own image
	TilesDir string `help:"also write one png per manifest tile into this directory"`

	// label font
	Font string `help:"ttf font for preview labels (default: built in 7x13 bitmap font)"`

	NoCatalog bool `help:"don't write the sqlite catalog"`

	// tell us it's ok to overwrite existing stuff (default: no)
	Overwrite bool `help:"overwrite existing file(s) if found"`

	// don't write anything
	DryRun bool `help:"print out what you're planning"`
}

// fileExists checks if file exists
func fileExists(filename string) bool {
	info, err := os.Stat(filename)
	if os.IsNotExist(err) {
		return false
	}
	return !info.IsDir()
}

func config() *tileset.Config {
	cfg := tileset.DefaultConfig()
	if cli.Config != "" {
		var err error
		cfg, err = tileset.LoadConfig(cli.Config)
		if err != nil {
			panic(err)
		}
	}

	if cli.Out != "" {
		out, err := homedir.Expand(cli.Out)
		if err != nil {
			panic(err)
		}
		cfg.OutputDir = out
	}
	if cli.Scale > 0 {
		cfg.Scale = cli.Scale
	}
	if cli.Font != "" {
		cfg.FontPath = cli.Font
	}

	if err := cfg.Validate(); err != nil {
		panic(err)
	}
	return cfg
}

// writable returns if we should write `fname`, telling the user if not
func writable(fname string) bool {
	if fileExists(fname) && !cli.Overwrite {
		fmt.Println("skipping", fname, "exists")
		return false
	}
	return true
}

// scaledName turns tiles.png into tiles@2x.png
func scaledName(fname string, factor int) string {
	ext := filepath.Ext(fname)
	return fmt.Sprintf("%s@%dx%s", strings.TrimSuffix(fname, ext), factor, ext)
}

func main() {
	kong.Parse(
		&cli,
		kong.Name("tilegen"),
		kong.Description(desc),
	)

	cfg := config()

	m, err := tileset.DefaultManifest(cfg)
	if err != nil {
		panic(err)
	}

	fmt.Printf("atlas %dx%d tiles of %dpx (%dx%d px), %d of %d slots populated\n",
		cfg.GridWidth, cfg.GridHeight, cfg.TileSize, cfg.Width(), cfg.Height(), m.Len(), cfg.Tiles())

	if cli.DryRun {
		for _, e := range m.Entries() {
			fmt.Printf("%4d %-10s %c %s\n", e.Index, e.Name, e.Char, e.Properties)
		}
		fmt.Printf("dry-run detected: doing nothing\n")
		return
	}

	if err := os.MkdirAll(cfg.OutputDir, 0755); err != nil {
		panic(err)
	}

	atlas, err := tileset.BuildAtlas(cfg, m)
	if err != nil {
		panic(err)
	}

	tf := tileset.DefaultTypeface()
	if cfg.FontPath != "" {
		tf, err = tileset.LoadTypeface(cfg.FontPath, cfg.FontPoints)
		if err != nil {
			panic(err)
		}
	}
	preview, err := tileset.BuildPreview(cfg, m, tf)
	if err != nil {
		panic(err)
	}

	outputs := []struct {
		name string
		img  image.Image
	}{
		{cfg.Atlas, atlas.Image()},
		{cfg.Preview, preview.Image},
	}
	for _, out := range outputs {
		fname := cfg.Path(out.name)
		if writable(fname) {
			if err := tileset.SavePNG(fname, out.img); err != nil {
				panic(err)
			}
			fmt.Println("wrote", fname)
		}

		if cfg.Scale > 1 {
			fname = cfg.Path(scaledName(out.name, cfg.Scale))
			if writable(fname) {
				if err := tileset.SavePNG(fname, tileset.Upscale(out.img, cfg.Scale)); err != nil {
					panic(err)
				}
				fmt.Println("wrote", fname)
			}
		}
	}

	fname := cfg.Path(cfg.CSV)
	if writable(fname) {
		if err := tileset.WriteCSV(fname, m); err != nil {
			panic(err)
		}
		fmt.Println("wrote", fname)
	}

	fname = cfg.Path(cfg.TSX)
	if writable(fname) {
		name := strings.TrimSuffix(filepath.Base(cfg.Atlas), filepath.Ext(cfg.Atlas))
		if err := tileset.WriteTSX(fname, name, filepath.Base(cfg.Atlas), cfg, m); err != nil {
			panic(err)
		}
		fmt.Println("wrote", fname)
	}

	if !cli.NoCatalog {
		fname = cfg.Path(cfg.Catalog)
		if writable(fname) {
			cat, err := tileset.OpenCatalog(fname)
			if err != nil {
				panic(err)
			}
			err = cat.Export(m)
			cat.Close()
			if err != nil {
				panic(err)
			}
			fmt.Println("wrote", fname)
		}
	}

	if cli.TilesDir != "" {
		dir, err := homedir.Expand(cli.TilesDir)
		if err != nil {
			panic(err)
		}
		if err := os.MkdirAll(dir, 0755); err != nil {
			panic(err)
		}
		numtiles := 0
		for _, e := range m.Entries() {
			fname := filepath.Join(dir, fmt.Sprintf("%d_%s.png", e.Index, e.Name))
			if !writable(fname) {
				continue
			}
			if err := tileset.SavePNG(fname, tileset.SliceTile(atlas.Image(), e.Index, cfg)); err != nil {
				panic(err)
			}
			numtiles++
		}
		fmt.Printf("wrote %d tile images to %s\n", numtiles, dir)
	}
}
