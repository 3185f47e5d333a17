package tileset

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTileset(t *testing.T) {
	cfg := DefaultConfig()
	m, err := DefaultManifest(cfg)
	require.NoError(t, err)

	ts := NewTileset("dungeon", "tileset.png", cfg, m)

	assert.Equal(t, 32, ts.TileWidth)
	assert.Equal(t, 256, ts.TileCount)
	assert.Equal(t, 16, ts.Columns)
	assert.Equal(t, &Image{Source: "tileset.png", Width: 512, Height: 512}, ts.Image)
	require.Len(t, ts.Tiles, m.Len())

	water := ts.Tiles[8]
	assert.IsType(t, &TilesetTile{}, water)
	assert.Equal(t, 45, water.ID)
	assert.Equal(t, "water", water.Type)
	assert.Equal(t, []*Frame{
		{TileID: 45, Duration: 500},
		{TileID: 46, Duration: 500},
		{TileID: 47, Duration: 500},
		{TileID: 48, Duration: 500},
	}, water.Animation)

	// only the first frame carries the animation
	assert.Empty(t, ts.Tiles[9].Animation)
	assert.Empty(t, ts.Tiles[0].Animation)
}

func TestTilesetEncodeDecode(t *testing.T) {
	cfg := DefaultConfig()
	m, err := DefaultManifest(cfg)
	require.NoError(t, err)

	buf := bytes.Buffer{}
	require.NoError(t, (&TSXExporter{W: &buf, Config: cfg, Name: "dungeon", Image: "tileset.png"}).Export(m))

	assert.Contains(t, buf.String(), `<tileset name="dungeon" tilewidth="32" tileheight="32" tilecount="256" columns="16">`)

	ts, err := DecodeTileset(&buf)
	require.NoError(t, err)

	door := ts.Properties(33)
	require.NotNil(t, door)
	name, _ := door.String("name")
	assert.Equal(t, "Door", name)
	walkable, _ := door.Bool("walkable")
	assert.True(t, walkable)
	interactive, _ := door.Bool("interactive")
	assert.True(t, interactive)
	solid, ok := door.Bool("solid")
	assert.True(t, ok)
	assert.False(t, solid)

	lava := ts.Properties(50)
	require.NotNil(t, lava)
	frame, _ := lava.Int("frame")
	assert.Equal(t, 1, frame)
	layer, _ := lava.String("layer")
	assert.Equal(t, "background", layer)

	assert.Nil(t, ts.Properties(0))
}

func TestDecodeTilesetNoImage(t *testing.T) {
	_, err := DecodeTileset(bytes.NewBufferString(`<tileset name="x"></tileset>`))
	assert.Error(t, err)
}
