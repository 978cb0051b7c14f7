package render

import (
	"math"
	"sort"

	"github.com/1siamBot/mazecaster/engine/core"
	"github.com/1siamBot/mazecaster/engine/maze"
)

// Sprite is a billboard in view, ready to composite
type Sprite struct {
	Key   string
	X, Y  float64
	Scale float64 // fraction of a wall's projected height
	Dist  float64 // fisheye-corrected distance
	Rel   float64 // angle relative to the view direction
}

var pickupSprites = map[core.PickupKind]struct {
	key   string
	scale float64
}{
	core.PickupMedkit:     {KeyMedkit, 0.6},
	core.PickupKey:        {KeyKey, 0.5},
	core.PickupBinoculars: {KeyBinoculars, 0.5},
}

// CollectSprites gathers enemies, untaken pickups and door cells inside the
// field of view, sorted farthest first
func CollectSprites(w *core.World) []Sprite {
	p := w.Player
	var out []Sprite
	add := func(key string, x, y, scale float64) {
		dx, dy := x-p.X, y-p.Y
		dist := math.Hypot(dx, dy)
		if dist < 1e-6 {
			return
		}
		rel := core.NormalizeAngle(math.Atan2(dy, dx) - p.Angle)
		if math.Abs(rel) > p.FOV/2 {
			return
		}
		out = append(out, Sprite{
			Key:   key,
			X:     x,
			Y:     y,
			Scale: scale,
			Dist:  dist * math.Max(math.Cos(rel), 1e-6),
			Rel:   rel,
		})
	}

	for _, e := range w.Enemies {
		add(e.Kind, e.X, e.Y, 1.0)
	}
	for _, pk := range w.Pickups {
		if pk.Taken {
			continue
		}
		ps := pickupSprites[pk.Kind]
		x, y := w.CellCenter(pk.Cell)
		add(ps.key, x, y, ps.scale)
	}
	for i, s := range w.Maze.Cells {
		if s == maze.Door {
			x, y := w.CellCenter(maze.Cell{X: i % w.Maze.Width, Y: i / w.Maze.Width})
			add(KeyDoor, x, y, 0.9)
		}
	}

	// Painter's order: far to near
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Dist > out[j].Dist
	})
	return out
}

func (r *Renderer) drawSprites(fb *Framebuffer, w *core.World, sprites []Sprite, n int, ppd float64) {
	half := float64(n) / 2
	for _, s := range sprites {
		h := WallHeight(w.CellSize, s.Dist, ppd) * s.Scale
		aspect := 1.0
		textured := false
		if r.Sprites != nil {
			if tw, th := r.Sprites.SpriteDimensions(s.Key); tw > 1 || th > 1 {
				aspect = float64(tw) / float64(th)
				textured = true
			}
		}
		widthCols := h * aspect / float64(r.Scale)
		if widthCols <= 0 {
			continue
		}
		center := s.Rel/(w.Player.FOV/2)*half + half
		c0 := center - widthCols/2
		top := float64(fb.H)/2 - h/2
		y0 := max(0, int(math.Floor(top)))
		y1 := min(fb.H, int(math.Ceil(top+h)))

		for col := max(0, int(math.Floor(c0))); col < min(n, int(math.Ceil(c0+widthCols))); col++ {
			if s.Dist > r.depth[col] {
				continue
			}
			u := (float64(col) + 0.5 - c0) / widthCols
			if u < 0 || u >= 1 {
				continue
			}
			x0 := col * r.Scale
			x1 := min(fb.W, x0+r.Scale)
			for y := y0; y < y1; y++ {
				c := fallbackGrey
				if textured {
					v := math.Min(math.Max((float64(y)+0.5-top)/h, 0), 0.999999)
					c = r.Sprites.SampleSprite(s.Key, u, v)
					if c.A < 128 {
						continue
					}
				}
				for x := x0; x < x1; x++ {
					fb.SetPixel(x, y, c)
				}
			}
		}
	}
}
