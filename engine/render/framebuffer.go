// Package render draws the first-person view and minimap into a CPU framebuffer.
package render

import "image/color"

// Framebuffer is an RGBA pixel buffer. Distinct columns may be written
// from different goroutines.
type Framebuffer struct {
	W, H int
	pix  []byte
}

func NewFramebuffer(w, h int) *Framebuffer {
	return &Framebuffer{W: w, H: h, pix: make([]byte, 4*w*h)}
}

// SetPixel writes c at (x, y); out of range writes are dropped
func (fb *Framebuffer) SetPixel(x, y int, c color.RGBA) {
	if x < 0 || y < 0 || x >= fb.W || y >= fb.H {
		return
	}
	i := 4 * (y*fb.W + x)
	fb.pix[i] = c.R
	fb.pix[i+1] = c.G
	fb.pix[i+2] = c.B
	fb.pix[i+3] = c.A
}

// At returns the pixel at (x, y)
func (fb *Framebuffer) At(x, y int) color.RGBA {
	if x < 0 || y < 0 || x >= fb.W || y >= fb.H {
		return color.RGBA{}
	}
	i := 4 * (y*fb.W + x)
	return color.RGBA{fb.pix[i], fb.pix[i+1], fb.pix[i+2], fb.pix[i+3]}
}

// FillRect fills [x0,x1) x [y0,y1), clipped to the buffer
func (fb *Framebuffer) FillRect(x0, y0, x1, y1 int, c color.RGBA) {
	x0, x1 = max(x0, 0), min(x1, fb.W)
	y0, y1 = max(y0, 0), min(y1, fb.H)
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			fb.SetPixel(x, y, c)
		}
	}
}

// Pix exposes the raw RGBA bytes for presentation
func (fb *Framebuffer) Pix() []byte {
	return fb.pix
}
