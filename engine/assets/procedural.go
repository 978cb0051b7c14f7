package assets

import (
	"image"
	"image/color"
	"math"
	"math/rand"
)

// FileMimic is the default enemy sprite file
const FileMimic = "mimic.png"

// PixelFunc paints one texel of a generated texture
type PixelFunc func(x, y int, rng *rand.Rand) color.RGBA

type generator struct {
	size int
	seed int64
	fn   PixelFunc
}

var transparent = color.RGBA{}

func clamp8(v float64) uint8 {
	return uint8(math.Max(0, math.Min(255, v)))
}

var generators = map[string]generator{
	FileWall: {64, 1, func(x, y int, rng *rand.Rand) color.RGBA {
		// Brick courses, every other row offset by half a brick
		row := y / 16
		bx := x
		if row%2 == 1 {
			bx += 16
		}
		if y%16 == 0 || bx%32 == 0 {
			v := 60 + rng.Float64()*10
			return color.RGBA{clamp8(v), clamp8(v), clamp8(v * 1.05), 255}
		}
		v := 110 + rng.Float64()*20 - 10 + 6*math.Sin(float64(x)*0.7+float64(y)*0.3)
		return color.RGBA{clamp8(v * 1.1), clamp8(v * 0.55), clamp8(v * 0.45), 255}
	}},
	FileGoal: {64, 2, func(x, y int, rng *rand.Rand) color.RGBA {
		cx, cy := float64(x-32), float64(y-32)
		d := math.Sqrt(cx*cx+cy*cy) / 32
		glow := math.Max(0, 1-d)
		v := 40 + rng.Float64()*10 + glow*170
		return color.RGBA{clamp8(v * 0.4), clamp8(v), clamp8(v * 0.55), 255}
	}},
	FileDoor: {64, 3, func(x, y int, rng *rand.Rand) color.RGBA {
		// Vertical planks with a dark frame and an iron band
		if x < 3 || x > 60 || y < 3 {
			return color.RGBA{50, 32, 20, 255}
		}
		if y > 28 && y < 34 {
			v := 70 + rng.Float64()*15
			return color.RGBA{clamp8(v), clamp8(v), clamp8(v * 1.1), 255}
		}
		if x%12 == 0 {
			return color.RGBA{70, 45, 25, 255}
		}
		v := 120 + rng.Float64()*16 - 8 + 8*math.Sin(float64(y)*0.25+float64(x))
		return color.RGBA{clamp8(v * 1.05), clamp8(v * 0.7), clamp8(v * 0.4), 255}
	}},
	FileMimic: {64, 4, func(x, y int, rng *rand.Rand) color.RGBA {
		// A chest with teeth along the lid seam
		if x < 6 || x > 57 || y < 14 || y > 60 {
			return transparent
		}
		if y >= 30 && y <= 36 {
			if (x/4)%2 == 0 && y <= 33 {
				return color.RGBA{240, 235, 220, 255}
			}
			return color.RGBA{90, 10, 20, 255}
		}
		if (x-20)*(x-20)+(y-22)*(y-22) < 10 || (x-43)*(x-43)+(y-22)*(y-22) < 10 {
			return color.RGBA{255, 220, 40, 255}
		}
		if x < 9 || x > 54 || y < 17 || y > 57 {
			return color.RGBA{160, 130, 40, 255}
		}
		v := 100 + rng.Float64()*14
		return color.RGBA{clamp8(v * 1.1), clamp8(v * 0.65), clamp8(v * 0.35), 255}
	}},
	FileMedkit: {32, 5, func(x, y int, rng *rand.Rand) color.RGBA {
		if x < 4 || x > 27 || y < 8 || y > 27 {
			return transparent
		}
		if (x >= 13 && x <= 18 && y >= 11 && y <= 24) || (y >= 15 && y <= 20 && x >= 8 && x <= 23) {
			return color.RGBA{210, 20, 30, 255}
		}
		v := 225 + rng.Float64()*20
		return color.RGBA{clamp8(v), clamp8(v), clamp8(v), 255}
	}},
	FileKey: {32, 6, func(x, y int, rng *rand.Rand) color.RGBA {
		gold := color.RGBA{clamp8(220 + rng.Float64()*30), clamp8(180 + rng.Float64()*20), 40, 255}
		dx, dy := x-9, y-16
		r2 := dx*dx + dy*dy
		if r2 <= 36 && r2 >= 9 {
			return gold
		}
		if y >= 15 && y <= 17 && x > 14 && x < 29 {
			return gold
		}
		if (x == 22 || x == 26) && y > 17 && y < 22 {
			return gold
		}
		return transparent
	}},
	FileBinoculars: {32, 7, func(x, y int, rng *rand.Rand) color.RGBA {
		for _, cx := range []int{9, 22} {
			dx, dy := x-cx, y-18
			r2 := dx*dx + dy*dy
			if r2 <= 9 {
				return color.RGBA{80, 140, 200, 255}
			}
			if r2 <= 36 {
				v := 40 + rng.Float64()*12
				return color.RGBA{clamp8(v), clamp8(v), clamp8(v), 255}
			}
		}
		if y >= 15 && y <= 20 && x > 9 && x < 22 {
			return color.RGBA{30, 30, 30, 255}
		}
		return transparent
	}},
}

// ProceduralImages renders every built-in texture, keyed by file name.
// Output is deterministic.
func ProceduralImages() map[string]*image.RGBA {
	out := make(map[string]*image.RGBA, len(generators))
	for name, g := range generators {
		out[name] = Render(g.size, g.seed, g.fn)
	}
	return out
}

// Render paints a size x size image with fn
func Render(size int, seed int64, fn PixelFunc) *image.RGBA {
	rng := rand.New(rand.NewSource(seed))
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			img.SetRGBA(x, y, fn(x, y, rng))
		}
	}
	return img
}
