package tileset

import (
	"image"
	"math"
	"strconv"

	"github.com/fogleman/gg"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
)

const checkerSize = 16

var (
	checkerA   = rgba(220, 220, 220, 255)
	checkerB   = rgba(255, 255, 255, 255)
	gridColour = rgba(0, 0, 0, 120)
	labelBg    = rgba(255, 255, 255, 255)
	labelFg    = rgba(0, 0, 0, 255)
)

// Typeface is the font preview labels are measured & drawn with.
type Typeface struct {
	face font.Face
}

// DefaultTypeface is the 7x13 bitmap font.
func DefaultTypeface() *Typeface {
	return &Typeface{face: basicfont.Face7x13}
}

// LoadTypeface loads a TTF font at the given point size.
func LoadTypeface(path string, points float64) (*Typeface, error) {
	face, err := gg.LoadFontFace(path, points)
	if err != nil {
		return nil, err
	}
	return &Typeface{face: face}, nil
}

// PaintManifest paints every entry in manifest order.
// The first painter to fail aborts the run.
func (c *Canvas) PaintManifest(m *Manifest) error {
	for _, e := range m.entries {
		if err := Paint(c, e.Index, e.Tile); err != nil {
			return &RenderError{Index: e.Index, Name: e.Name, Err: err}
		}
	}
	return nil
}

// BuildAtlas renders the clean atlas: every manifest tile painted, all other
// slots fully transparent.
func BuildAtlas(cfg *Config, m *Manifest) (*Canvas, error) {
	c := NewCanvas(cfg)
	return c, c.PaintManifest(m)
}

// Label is an index label stamped on the preview.
type Label struct {
	Index int
	Text  string
	// background box, in atlas pixels
	Rect  image.Rectangle
}

// Preview is the debug rendering of an atlas.
type Preview struct {
	Image  *image.RGBA
	Labels []Label
}

// BuildPreview renders the debug atlas; checkerboard under everything, the
// manifest tiles on top, a grid at tile edges & an index label in every slot.
func BuildPreview(cfg *Config, m *Manifest, tf *Typeface) (*Preview, error) {
	if tf == nil {
		tf = DefaultTypeface()
	}

	c := NewCanvas(cfg)
	c.checkerboard()

	if err := c.PaintManifest(m); err != nil {
		return nil, err
	}

	c.grid()

	return &Preview{Image: c.im, Labels: c.labels(tf)}, nil
}

func (c *Canvas) checkerboard() {
	w, h := c.cfg.Width(), c.cfg.Height()
	for yy := 0; yy < h; yy += checkerSize {
		for xx := 0; xx < w; xx += checkerSize {
			c.dc.DrawRectangle(float64(xx), float64(yy), checkerSize, checkerSize)
			if (xx/checkerSize+yy/checkerSize)%2 == 0 {
				c.dc.SetColor(checkerA)
			} else {
				c.dc.SetColor(checkerB)
			}
			c.dc.Fill()
		}
	}
}

func (c *Canvas) grid() {
	w, h := c.cfg.Width(), c.cfg.Height()
	c.dc.SetColor(gridColour)
	for gx := 0; gx <= w; gx += c.cfg.TileSize {
		c.dc.DrawRectangle(float64(gx), 0, 1, float64(h))
		c.dc.Fill()
	}
	for gy := 0; gy <= h; gy += c.cfg.TileSize {
		c.dc.DrawRectangle(0, float64(gy), float64(w), 1)
		c.dc.Fill()
	}
}

// labels stamps the index of every slot in the grid, populated or not.
func (c *Canvas) labels(tf *Typeface) []Label {
	c.dc.SetFontFace(tf.face)

	labels := make([]Label, 0, c.cfg.Tiles())
	for idx := 0; idx < c.cfg.Tiles(); idx++ {
		x, y := c.cfg.Origin(idx)
		text := strconv.Itoa(idx)

		tw, th := c.dc.MeasureString(text)
		tile := c.cfg.Region(idx)
		box := image.Rect(x+1, y+1, x+int(math.Ceil(tw))+4, y+int(math.Ceil(th))+4)
		overflow := !box.In(tile)
		box = box.Intersect(tile)

		c.dc.DrawRectangle(float64(box.Min.X), float64(box.Min.Y), float64(box.Dx()), float64(box.Dy()))
		c.dc.SetColor(labelBg)
		c.dc.Fill()

		// oversized text is clipped to its own tile
		if overflow {
			c.dc.DrawRectangle(float64(tile.Min.X), float64(tile.Min.Y), float64(tile.Dx()), float64(tile.Dy()))
			c.dc.Clip()
		}
		c.dc.SetColor(labelFg)
		c.dc.DrawStringAnchored(text, float64(x+2), float64(y+2), 0, 1)
		if overflow {
			c.dc.ResetClip()
		}

		labels = append(labels, Label{Index: idx, Text: text, Rect: box})
	}
	return labels
}
