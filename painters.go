package tileset

import (
	"fmt"
	"image"
	"image/color"
	"math"
)

func rgba(r, g, b, a uint8) color.NRGBA {
	return color.NRGBA{R: r, G: g, B: b, A: a}
}

var (
	floorBase  = rgba(188, 188, 188, 255)
	floorLight = rgba(210, 210, 210, 255)
	floorDark  = rgba(160, 160, 160, 255)
)

// Paint the given tile into the slot `index` of the canvas.
// Painters only ever touch their own tile region & depend on nothing but
// (index, tile) so repeated calls produce identical pixels.
func Paint(c *Canvas, index int, t Tile) error {
	b, err := c.brush(index)
	if err != nil {
		return err
	}
	defer b.done()

	switch t.Family {
	case Floor:
		paintFloor(b)
	case Grass:
		paintGrass(b)
	case Stone:
		paintStone(b)
	case Wood:
		paintWood(b)
	case Wall:
		paintWall(b)
	case Door:
		paintDoor(b)
	case Chest:
		paintChest(b)
	case Spike:
		paintSpike(b)
	case Water:
		paintWater(b, t.normalFrame())
	case Lava:
		paintLava(b, t.normalFrame())
	case Portal:
		paintPortal(b, t.normalFrame())
	default:
		return fmt.Errorf("no painter for %v", t.Family)
	}
	return nil
}

// dither lays a diagonal checker over the tile, every `step` pixels.
func dither(b *brush, c1, c2 color.Color, step int) {
	for yy := 0; yy < b.size; yy++ {
		for xx := 0; xx < b.size; xx++ {
			// on absolute pixel coords
			switch (b.x + xx + b.y + yy) % step {
			case 0:
				b.point(xx, yy, c1)
			case 2:
				b.point(xx, yy, c2)
			}
		}
	}
}

func paintFloor(b *brush) {
	b.fill(floorBase)
	dither(b, floorLight, floorDark, 4)
}

func paintGrass(b *brush) {
	b.fill(rgba(60, 160, 50, 255))
	dither(b, rgba(80, 190, 70, 255), rgba(40, 130, 40, 255), 4)
}

// cobbles, 3 across 2 down with every other row nudged right
func paintStone(b *brush) {
	b.fill(rgba(150, 150, 150, 255))
	for i := 0; i < 3; i++ {
		for j := 0; j < 2; j++ {
			rx := 4 + i*9 + (j%2)*3
			ry := 5 + j*14
			b.roundedRect(rx, ry, rx+7, ry+10, 2, rgba(170, 170, 170, 255), rgba(120, 120, 120, 255))
		}
	}
}

func paintWood(b *brush) {
	b.fill(rgba(146, 101, 60, 255))
	for i := 0; i < b.size; i += 10 {
		b.rect(i, 0, i+8, b.size-1, nil, rgba(100, 70, 40, 255))
		for gy := 4; gy < b.size-2; gy += 7 {
			b.line(i+2, gy, i+6, gy, rgba(120, 85, 50, 255))
		}
	}
}

// bricks, alternate rows offset by half a brick
func paintWall(b *brush) {
	const bw, bh = 12, 6
	b.fill(rgba(60, 60, 70, 255))
	mortar := rgba(40, 40, 45, 255)
	for row := 0; row < b.size; row += bh {
		offset := 0
		if (row/bh)%2 == 1 {
			offset = bw / 2
		}
		for col := -offset; col < b.size; col += bw {
			x0 := col
			if x0 < 0 {
				x0 = 0
			}
			x1 := col + bw - 1
			if x1 > b.size-1 {
				x1 = b.size - 1
			}
			if x0 <= x1 {
				b.rect(x0, row, x1, row+bh-1, nil, mortar)
			}
		}
	}
}

func paintDoor(b *brush) {
	s := b.size
	b.rect(2, 2, s-3, s-3, rgba(125, 84, 45, 255), rgba(80, 50, 30, 255))
	for gy := 6; gy < s-4; gy += 6 {
		b.line(4, gy, s-5, gy, rgba(90, 60, 35, 255))
	}
	// handle
	b.ellipse(s-10, s/2-2, s-7, s/2+1, rgba(230, 210, 80, 255), nil)
}

func paintChest(b *brush) {
	s := b.size
	b.rect(3, 8, s-4, s-4, rgba(140, 90, 40, 255), rgba(80, 50, 25, 255))
	// lid
	b.rect(3, 3, s-4, 10, rgba(160, 105, 50, 255), rgba(90, 60, 30, 255))
	// band
	b.rect(s/2-2, 3, s/2+2, s-4, rgba(190, 190, 190, 255), nil)
	// lock
	b.rect(s/2-2, 12, s/2+2, 16, rgba(220, 210, 90, 255), nil)
}

func paintSpike(b *brush) {
	const spikeW = 8
	b.fill(floorBase)
	for i := 0; i < b.size; i += spikeW {
		b.polygon(
			[]image.Point{image.Pt(i+4, 24), image.Pt(i, 30), image.Pt(i+8, 30)},
			rgba(200, 200, 210, 255),
			rgba(120, 120, 130, 255),
		)
	}
	dither(b, floorLight, floorDark, 4)
}

// waves: highlight pixels displaced by a sine wave whose phase moves with
// the frame.
func paintWater(b *brush, frame int) {
	b.fill(rgba(40, 120, 200, 200))
	crest := rgba(180, 220, 255, 255)
	trough := rgba(120, 180, 240, 255)
	for yy := 6; yy < b.size; yy += 8 {
		for xx := 0; xx < b.size; xx += 4 {
			dx := int(2 * math.Sin(float64(xx+frame*4+yy)*0.3))
			b.point(xx+dx, yy, crest)
			if xx%8 == 0 {
				b.point(xx+dx, yy+1, trough)
			}
		}
	}
}

var lavaBubbles = []image.Point{image.Pt(8, 20), image.Pt(20, 12), image.Pt(12, 8)}

func paintLava(b *brush, frame int) {
	b.fill(rgba(200, 60, 20, 255))
	for yy := 0; yy < b.size; yy += 6 {
		b.line(0, yy, b.size-1, yy, rgba(230, 120, 20, 255))
	}
	for i, p := range lavaBubbles {
		bx := (p.X + frame*3 + i*4) % b.size
		b.ellipse(bx-2, p.Y-2, bx+2, p.Y+2, rgba(255, 200, 80, 255), rgba(120, 40, 10, 255))
	}
}

func paintPortal(b *brush, frame int) {
	b.fill(rgba(30, 20, 40, 255))
	cx, cy := b.size/2, b.size/2
	for r := 12; r > 2; r -= 3 {
		alpha := 180 + int(60*math.Sin(float64(r)+float64(frame)*1.7))
		col := rgba(uint8(150+(r*5)%100), uint8(100+(r*3)%120), 220, uint8(alpha))
		b.ellipse(cx-r, cy-r, cx+r, cy+r, nil, col)
	}
	// sparkle
	b.point(cx+frame%3-1, cy, rgba(255, 255, 255, 255))
	b.point(cx, cy+(frame*2)%3-1, rgba(220, 220, 255, 255))
}
