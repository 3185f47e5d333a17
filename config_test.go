package tileset

import (
	"io/ioutil"
	"path/filepath"
	"testing"

	"github.com/mitchellh/go-homedir"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, data string) string {
	fname := filepath.Join(t.TempDir(), "tileset.yaml")
	require.NoError(t, ioutil.WriteFile(fname, []byte(data), 0644))
	return fname
}

func TestLoadConfig(t *testing.T) {
	fname := writeConfig(t, `
grid_width: 8
tile_size: 32
output_dir: ~/tiles
atlas: dungeon.png
scale: 4
`)

	cfg, err := LoadConfig(fname)
	require.NoError(t, err)

	home, err := homedir.Dir()
	require.NoError(t, err)

	assert.Equal(t, 8, cfg.GridWidth)
	assert.Equal(t, 16, cfg.GridHeight) // default
	assert.Equal(t, 32, cfg.TileSize)
	assert.Equal(t, filepath.Join(home, "tiles"), cfg.OutputDir)
	assert.Equal(t, filepath.Join(home, "tiles", "dungeon.png"), cfg.Path(cfg.Atlas))
	assert.Equal(t, "tileset_mapping.csv", cfg.CSV) // default
	assert.Equal(t, 4, cfg.Scale)
	assert.Equal(t, 256, cfg.Width())
	assert.Equal(t, 512, cfg.Height())
}

func TestLoadConfigInvalid(t *testing.T) {
	_, err := LoadConfig(writeConfig(t, "tile_size: 0\n"))
	assert.Error(t, err)

	_, err = LoadConfig(writeConfig(t, "tile_size: 16\n"))
	assert.Error(t, err)

	_, err = LoadConfig(writeConfig(t, "grid_width: [1, 2\n"))
	assert.Error(t, err)

	_, err = LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.NoError(t, cfg.Validate())
	assert.Equal(t, 256, cfg.Tiles())
	assert.Equal(t, 512, cfg.Width())
	assert.Equal(t, 512, cfg.Height())
	assert.Equal(t, "/abs/out.png", cfg.Path("/abs/out.png"))
}

func TestValidateTileSize(t *testing.T) {
	for _, size := range []int{-32, 0, 16, 31, 64} {
		cfg := DefaultConfig()
		cfg.TileSize = size

		assert.Error(t, cfg.Validate(), "tile size %d", size)
	}

	cfg := DefaultConfig()
	cfg.GridWidth = 4
	cfg.GridHeight = 2
	assert.NoError(t, cfg.Validate())
}
