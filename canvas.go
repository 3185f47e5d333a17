package tileset

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"

	"github.com/fogleman/gg"
)

// Canvas is the RGBA atlas image being painted, sized to the full grid.
type Canvas struct {
	cfg *Config
	im  *image.RGBA
	dc  *gg.Context
}

// NewCanvas returns a fully transparent canvas covering cfg's grid.
func NewCanvas(cfg *Config) *Canvas {
	im := image.NewRGBA(image.Rect(0, 0, cfg.Width(), cfg.Height()))
	return &Canvas{cfg: cfg, im: im, dc: gg.NewContextForRGBA(im)}
}

// Image returns the underlying image (not a copy).
func (c *Canvas) Image() *image.RGBA {
	return c.im
}

// Config the canvas was sized by.
func (c *Canvas) Config() *Config {
	return c.cfg
}

// brush returns a painter scoped to the tile at `index`.
// Everything drawn through it is clipped to the tile region. Callers must
// call done() when finished.
func (c *Canvas) brush(index int) (*brush, error) {
	if c == nil || c.dc == nil {
		return nil, fmt.Errorf("canvas is not initialised")
	}
	r := c.cfg.Region(index)
	if !r.In(c.im.Bounds()) {
		return nil, fmt.Errorf("tile region %v outside canvas %v", r, c.im.Bounds())
	}

	// the tile owns its region; start from transparent
	draw.Draw(c.im, r, image.Transparent, image.Point{}, draw.Src)

	c.dc.ResetClip()
	c.dc.ClearPath()
	c.dc.DrawRectangle(float64(r.Min.X), float64(r.Min.Y), float64(r.Dx()), float64(r.Dy()))
	c.dc.Clip()
	c.dc.SetLineWidth(1)
	c.dc.SetLineCapSquare()

	return &brush{dc: c.dc, r: r, x: r.Min.X, y: r.Min.Y, size: c.cfg.TileSize}, nil
}

// brush draws in tile-local coordinates. Rectangles & ellipses take
// inclusive corner coordinates (x0,y0)-(x1,y1).
type brush struct {
	dc   *gg.Context
	r    image.Rectangle
	x, y int
	size int
}

func (b *brush) done() {
	b.dc.ClearPath()
	b.dc.ResetClip()
}

// fill the whole tile
func (b *brush) fill(col color.Color) {
	b.rect(0, 0, b.size-1, b.size-1, col, nil)
}

func (b *brush) rect(x0, y0, x1, y1 int, fill, outline color.Color) {
	if fill != nil {
		b.dc.DrawRectangle(float64(b.x+x0), float64(b.y+y0), float64(x1-x0+1), float64(y1-y0+1))
		b.dc.SetColor(fill)
		b.dc.Fill()
	}
	if outline != nil {
		b.dc.DrawRectangle(float64(b.x+x0)+0.5, float64(b.y+y0)+0.5, float64(x1-x0), float64(y1-y0))
		b.dc.SetColor(outline)
		b.dc.Stroke()
	}
}

func (b *brush) roundedRect(x0, y0, x1, y1 int, radius float64, fill, outline color.Color) {
	if fill != nil {
		b.dc.DrawRoundedRectangle(float64(b.x+x0), float64(b.y+y0), float64(x1-x0+1), float64(y1-y0+1), radius)
		b.dc.SetColor(fill)
		b.dc.Fill()
	}
	if outline != nil {
		b.dc.DrawRoundedRectangle(float64(b.x+x0)+0.5, float64(b.y+y0)+0.5, float64(x1-x0), float64(y1-y0), radius)
		b.dc.SetColor(outline)
		b.dc.Stroke()
	}
}

func (b *brush) ellipse(x0, y0, x1, y1 int, fill, outline color.Color) {
	cx := float64(b.x) + float64(x0+x1+1)/2
	cy := float64(b.y) + float64(y0+y1+1)/2
	rx := float64(x1-x0+1) / 2
	ry := float64(y1-y0+1) / 2
	if fill != nil {
		b.dc.DrawEllipse(cx, cy, rx, ry)
		b.dc.SetColor(fill)
		b.dc.Fill()
	}
	if outline != nil {
		b.dc.DrawEllipse(cx, cy, rx-0.5, ry-0.5)
		b.dc.SetColor(outline)
		b.dc.Stroke()
	}
}

func (b *brush) polygon(pts []image.Point, fill, outline color.Color) {
	path := func(off float64) {
		for i, p := range pts {
			x, y := float64(b.x+p.X)+off, float64(b.y+p.Y)+off
			if i == 0 {
				b.dc.MoveTo(x, y)
			} else {
				b.dc.LineTo(x, y)
			}
		}
		b.dc.ClosePath()
	}
	if fill != nil {
		path(0)
		b.dc.SetColor(fill)
		b.dc.Fill()
	}
	if outline != nil {
		path(0.5)
		b.dc.SetColor(outline)
		b.dc.Stroke()
	}
}

func (b *brush) line(x0, y0, x1, y1 int, col color.Color) {
	b.dc.DrawLine(
		float64(b.x+x0)+0.5, float64(b.y+y0)+0.5,
		float64(b.x+x1)+0.5, float64(b.y+y1)+0.5,
	)
	b.dc.SetColor(col)
	b.dc.Stroke()
}

// point replaces a single pixel. Pixels outside the tile are dropped.
func (b *brush) point(x, y int, col color.Color) {
	p := image.Pt(b.x+x, b.y+y)
	if !p.In(b.r) {
		return
	}
	b.dc.SetColor(col)
	b.dc.SetPixel(p.X, p.Y)
}
