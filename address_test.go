package tileset

import (
	"github.com/stretchr/testify/assert"

	"testing"
)

func TestIndexToXY(t *testing.T) {
	cfg := DefaultConfig()

	for r := 0; r < cfg.GridHeight; r++ {
		for c := 0; c < cfg.GridWidth; c++ {
			x, y := IndexToXY(r*cfg.GridWidth+c, cfg.GridWidth, cfg.TileSize)
			assert.Equal(t, c*cfg.TileSize, x)
			assert.Equal(t, r*cfg.TileSize, y)
		}
	}
}

func TestXYToIndexRoundTrip(t *testing.T) {
	cfg := DefaultConfig()

	for i := 0; i < cfg.Tiles(); i++ {
		x, y := cfg.Origin(i)
		assert.Equal(t, i, XYToIndex(x, y, cfg.GridWidth, cfg.TileSize))

		// any pixel inside the tile maps back to it
		assert.Equal(t, i, XYToIndex(x+cfg.TileSize-1, y+cfg.TileSize-1, cfg.GridWidth, cfg.TileSize))
	}
}

func TestRegion(t *testing.T) {
	cfg := DefaultConfig()

	r := cfg.Region(17)

	assert.Equal(t, 32, r.Min.X)
	assert.Equal(t, 32, r.Min.Y)
	assert.Equal(t, 64, r.Max.X)
	assert.Equal(t, 64, r.Max.Y)
}

func TestInRange(t *testing.T) {
	cfg := DefaultConfig()

	assert.True(t, cfg.InRange(0))
	assert.True(t, cfg.InRange(255))
	assert.False(t, cfg.InRange(256))
	assert.False(t, cfg.InRange(-1))
}
