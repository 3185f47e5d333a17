package tileset

import (
	"fmt"
	"io/ioutil"
	"path/filepath"

	"github.com/go-yaml/yaml"
	"github.com/mitchellh/go-homedir"
)

// AnimationFrames is the number of pre-rendered frames of every animated
// tile family.
const AnimationFrames = 4

// PaintedTileSize is the tile size in pixels the painters draw for.
const PaintedTileSize = 32

// Config includes settings for a tileset build
type Config struct {
	// in tiles
	GridWidth  int `yaml:"grid_width"`
	GridHeight int `yaml:"grid_height"`

	// in pixels
	TileSize int `yaml:"tile_size"`

	// where outputs are written, file names are relative to this
	OutputDir string `yaml:"output_dir"`
	Atlas     string `yaml:"atlas"`
	Preview   string `yaml:"preview"`
	CSV       string `yaml:"csv"`
	TSX       string `yaml:"tsx"`
	Catalog   string `yaml:"catalog"`

	// preview images are additionally written enlarged by this factor (if > 1)
	Scale int `yaml:"scale"`

	// optional TTF used for preview labels (basicfont if unset)
	FontPath   string  `yaml:"font_path"`
	FontPoints float64 `yaml:"font_points"`
}

// DefaultConfig returns a config with the default 16x16 grid of 32px tiles.
func DefaultConfig() *Config {
	return &Config{
		GridWidth:  16,
		GridHeight: 16,
		TileSize:   PaintedTileSize,
		OutputDir:  ".",
		Atlas:      "tileset_16x16_32px.png",
		Preview:    "tileset_16x16_32px_preview.png",
		CSV:        "tileset_mapping.csv",
		TSX:        "tileset.tsx",
		Catalog:    "tileset.sqlite",
		Scale:      1,
		FontPoints: 10,
	}
}

// LoadConfig reads a YAML config file over the defaults.
func LoadConfig(fname string) (*Config, error) {
	cfg := DefaultConfig()

	path, err := homedir.Expand(fname)
	if err != nil {
		return nil, err
	}

	data, err := ioutil.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config %s: %w", fname, err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", fname, err)
	}

	cfg.OutputDir, err = homedir.Expand(cfg.OutputDir)
	if err != nil {
		return nil, err
	}
	cfg.FontPath, err = homedir.Expand(cfg.FontPath)
	if err != nil {
		return nil, err
	}

	return cfg, cfg.Validate()
}

// Validate checks the grid geometry is usable.
func (c *Config) Validate() error {
	if c.GridWidth <= 0 || c.GridHeight <= 0 {
		return fmt.Errorf("grid must be at least 1x1 tiles, got %dx%d", c.GridWidth, c.GridHeight)
	}
	if c.TileSize != PaintedTileSize {
		return fmt.Errorf("tile size must be %dpx, got %d", PaintedTileSize, c.TileSize)
	}
	if c.Scale < 1 {
		return fmt.Errorf("scale must be >= 1, got %d", c.Scale)
	}
	return nil
}

// Tiles returns the number of tile slots in the grid.
func (c *Config) Tiles() int {
	return c.GridWidth * c.GridHeight
}

// Width of the atlas in pixels
func (c *Config) Width() int {
	return c.GridWidth * c.TileSize
}

// Height of the atlas in pixels
func (c *Config) Height() int {
	return c.GridHeight * c.TileSize
}

// Path joins the given file name onto the output directory.
func (c *Config) Path(name string) string {
	if filepath.IsAbs(name) {
		return name
	}
	return filepath.Join(c.OutputDir, name)
}
