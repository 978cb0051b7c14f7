package render

import (
	"image/color"

	"github.com/1siamBot/mazecaster/engine/maze"
)

// TextureSource samples wall textures by the maze symbol that was hit.
// u and v are in [0,1).
type TextureSource interface {
	Sample(sym maze.Symbol, u, v float64) color.RGBA
	Dimensions(sym maze.Symbol) (w, h int)
}

// SpriteSource samples billboard textures by sprite key
type SpriteSource interface {
	SampleSprite(key string, u, v float64) color.RGBA
	SpriteDimensions(key string) (w, h int)
}

// Sprite keys for non-enemy billboards. Enemies use their Kind.
const (
	KeyMedkit     = "medkit"
	KeyKey        = "key"
	KeyBinoculars = "binoculars"
	KeyDoor       = "door"
)

var fallbackGrey = color.RGBA{128, 128, 128, 255}

func shade(c color.RGBA, f float64) color.RGBA {
	return color.RGBA{uint8(float64(c.R) * f), uint8(float64(c.G) * f), uint8(float64(c.B) * f), c.A}
}

func lerpColor(a, b color.RGBA, t float64) color.RGBA {
	l := func(x, y uint8) uint8 { return uint8(float64(x) + (float64(y)-float64(x))*t) }
	return color.RGBA{l(a.R, b.R), l(a.G, b.G), l(a.B, b.B), 255}
}
