package tileset

import (
	"image"
)

// IndexToXY returns the top left pixel of the tile at `index`.
// index = row * gridWidth + col
func IndexToXY(index, gridWidth, tileSize int) (int, int) {
	return (index % gridWidth) * tileSize, (index / gridWidth) * tileSize
}

// XYToIndex returns the index of the tile containing pixel (x,y).
func XYToIndex(x, y, gridWidth, tileSize int) int {
	return (y/tileSize)*gridWidth + x/tileSize
}

// Origin of the tile at `index` in pixels.
func (c *Config) Origin(index int) (int, int) {
	return IndexToXY(index, c.GridWidth, c.TileSize)
}

// Region is the pixel rectangle covered by the tile at `index`.
func (c *Config) Region(index int) image.Rectangle {
	x, y := c.Origin(index)
	return image.Rect(x, y, x+c.TileSize, y+c.TileSize)
}

// InRange returns if index addresses a slot in the grid.
func (c *Config) InRange(index int) bool {
	return index >= 0 && index < c.Tiles()
}
