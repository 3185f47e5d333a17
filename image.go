package tileset

import (
	"bytes"
	"image"
	"image/png"
	"io/ioutil"

	"github.com/nfnt/resize"
)

// SliceTile cuts the tile at `index` out of an atlas.
func SliceTile(in image.Image, index int, cfg *Config) image.Image {
	r := cfg.Region(index)
	out := image.NewRGBA(image.Rect(0, 0, r.Dx(), r.Dy()))

	for dx := r.Min.X; dx < r.Max.X; dx++ {
		for dy := r.Min.Y; dy < r.Max.Y; dy++ {
			out.Set(dx-r.Min.X, dy-r.Min.Y, in.At(dx, dy))
		}
	}

	return out
}

// Upscale enlarges an image by an integer factor without smoothing, so pixel
// art stays sharp.
func Upscale(in image.Image, factor int) image.Image {
	if factor <= 1 {
		return in
	}
	b := in.Bounds()
	return resize.Resize(uint(b.Dx()*factor), uint(b.Dy()*factor), in, resize.NearestNeighbor)
}

// SavePNG to disk
func SavePNG(fpath string, in image.Image) error {
	buff := new(bytes.Buffer)
	err := png.Encode(buff, in)
	if err != nil {
		return err
	}
	return ioutil.WriteFile(fpath, buff.Bytes(), 0644)
}
