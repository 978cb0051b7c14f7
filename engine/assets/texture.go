// Package assets loads and generates the textures the renderer samples.
package assets

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"

	xdraw "golang.org/x/image/draw"
)

// MaxTextureSize is the largest edge kept after loading; bigger images are
// scaled down preserving aspect ratio
const MaxTextureSize = 512

// Texture is a decoded RGBA image sampled with nearest-neighbour lookup
type Texture struct {
	W, H int
	Pix  []uint8
}

// FromImage converts img, downscaling it when an edge exceeds maxSize
func FromImage(img image.Image, maxSize int) *Texture {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	if maxSize > 0 && (w > maxSize || h > maxSize) {
		if w >= h {
			h = max(1, h*maxSize/w)
			w = maxSize
		} else {
			w = max(1, w*maxSize/h)
			h = maxSize
		}
	}
	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	if w == b.Dx() && h == b.Dy() {
		xdraw.Draw(dst, dst.Bounds(), img, b.Min, xdraw.Src)
	} else {
		xdraw.ApproxBiLinear.Scale(dst, dst.Bounds(), img, b, xdraw.Src, nil)
	}
	return &Texture{W: w, H: h, Pix: dst.Pix}
}

// LoadPNG decodes a PNG file into a texture
func LoadPNG(path string) (*Texture, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open texture %s: %w", path, err)
	}
	defer f.Close()
	img, err := png.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("failed to decode texture %s: %w", path, err)
	}
	return FromImage(img, MaxTextureSize), nil
}

// At returns the texel at (x, y), clamped to the edges
func (t *Texture) At(x, y int) color.RGBA {
	x = min(max(x, 0), t.W-1)
	y = min(max(y, 0), t.H-1)
	i := 4 * (y*t.W + x)
	return color.RGBA{t.Pix[i], t.Pix[i+1], t.Pix[i+2], t.Pix[i+3]}
}

// Sample returns the nearest texel for u, v in [0,1)
func (t *Texture) Sample(u, v float64) color.RGBA {
	return t.At(int(u*float64(t.W)), int(v*float64(t.H)))
}
