package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

var (
	menuBG      = color.RGBA{8, 8, 16, 255}
	menuPanel   = color.RGBA{15, 15, 30, 230}
	menuBorder  = color.RGBA{0, 140, 200, 255}
	menuAccent  = color.RGBA{0, 200, 255, 255}
	menuBtnNorm = color.RGBA{25, 35, 55, 240}
	menuBtnHov  = color.RGBA{35, 55, 90, 255}
	menuText    = color.RGBA{200, 220, 255, 255}
	menuTextDim = color.RGBA{100, 120, 150, 255}
	menuGold    = color.RGBA{255, 200, 50, 255}
	menuRed     = color.RGBA{220, 50, 50, 255}
	menuGreen   = color.RGBA{50, 220, 80, 255}
)

func drawRoundedRect(dst *ebiten.Image, x, y, w, h, r float32, clr color.Color) {
	r = min(r, w/2, h/2)
	vector.DrawFilledRect(dst, x+r, y, w-2*r, h, clr, true)
	vector.DrawFilledRect(dst, x, y+r, r, h-2*r, clr, true)
	vector.DrawFilledRect(dst, x+w-r, y+r, r, h-2*r, clr, true)
	for _, c := range [][2]float32{{x + r, y + r}, {x + w - r, y + r}, {x + r, y + h - r}, {x + w - r, y + h - r}} {
		vector.DrawFilledCircle(dst, c[0], c[1], r, clr, true)
	}
}

func drawText(dst *ebiten.Image, s string, face text.Face, x, y float64, clr color.Color, align text.Align) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	op.PrimaryAlign = align
	text.Draw(dst, s, face, op)
}

// drawBar draws a filled bar with a border; ratio is clamped to [0,1]
func drawBar(dst *ebiten.Image, x, y, w, h float32, ratio float64, fill, back color.Color) {
	vector.DrawFilledRect(dst, x, y, w, h, back, false)
	if fw := float32(BarFill(ratio, float64(w))); fw > 0 {
		vector.DrawFilledRect(dst, x, y, fw, h, fill, false)
	}
	vector.StrokeRect(dst, x, y, w, h, 1, color.RGBA{255, 255, 255, 120}, false)
}

// BarFill returns the filled width of a bar of the given width
func BarFill(ratio, width float64) float64 {
	if ratio <= 0 {
		return 0
	}
	if ratio >= 1 {
		return width
	}
	return ratio * width
}
