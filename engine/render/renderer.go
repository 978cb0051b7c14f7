package render

import (
	"fmt"
	"image/color"
	"math"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/1siamBot/mazecaster/engine/core"
	"github.com/1siamBot/mazecaster/engine/raycast"
)

// Renderer casts one ray per column and composites walls, sprites and the minimap
type Renderer struct {
	Scale   int // framebuffer pixels per column
	Walls   TextureSource
	Sprites SpriteSource
	Minimap *Minimap
	Workers int // column bands cast in parallel; 0 uses GOMAXPROCS

	SkyTop    color.RGBA
	SkyBottom color.RGBA
	Floor     color.RGBA
	SideShade float64 // brightness of north/south faces

	depth []float64
}

func NewRenderer(scale int, walls TextureSource, sprites SpriteSource) *Renderer {
	if scale < 1 {
		scale = 1
	}
	return &Renderer{
		Scale:     scale,
		Walls:     walls,
		Sprites:   sprites,
		SkyTop:    color.RGBA{40, 10, 60, 255},
		SkyBottom: color.RGBA{140, 50, 160, 255},
		Floor:     color.RGBA{90, 45, 20, 255},
		SideShade: 0.75,
	}
}

// Columns returns how many rays are cast for a framebuffer width
func (r *Renderer) Columns(fbWidth int) int {
	return max(1, fbWidth/r.Scale)
}

// Depth returns the corrected wall distance per column from the last Render
func (r *Renderer) Depth() []float64 {
	return r.depth
}

// ProjectionPlaneDistance is the distance, in columns, from the eye to the
// projection plane for n columns spanning fov
func ProjectionPlaneDistance(n int, fov float64) float64 {
	return (float64(n) / 2) / math.Tan(fov/2)
}

// ColumnAngle returns the ray angle for column col of n
func ColumnAngle(facing, fov float64, col, n int) float64 {
	if n <= 1 {
		return facing
	}
	return facing - fov/2 + fov*float64(col)/float64(n-1)
}

// WallHeight is the projected height of a wall slice at corrected distance
func WallHeight(cellSize, corrected, ppd float64) float64 {
	return cellSize / corrected * ppd
}

// Render draws the world as seen by the player
func (r *Renderer) Render(fb *Framebuffer, w *core.World) error {
	r.drawBackground(fb)

	n := r.Columns(fb.W)
	if len(r.depth) != n {
		r.depth = make([]float64, n)
	}
	ppd := ProjectionPlaneDistance(n, w.Player.FOV)

	workers := r.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	band := (n + workers - 1) / workers

	var g errgroup.Group
	for start := 0; start < n; start += band {
		end := min(start+band, n)
		g.Go(func() error {
			for col := start; col < end; col++ {
				r.drawColumn(fb, w, col, n, ppd)
			}
			return nil
		})
	}
	// sprites need every depth slot
	if err := g.Wait(); err != nil {
		return fmt.Errorf("failed to cast columns: %w", err)
	}

	r.drawSprites(fb, w, CollectSprites(w), n, ppd)
	if r.Minimap != nil {
		r.Minimap.Draw(fb, w)
	}
	return nil
}

func (r *Renderer) drawBackground(fb *Framebuffer) {
	half := fb.H / 2
	for y := 0; y < half; y++ {
		c := lerpColor(r.SkyTop, r.SkyBottom, float64(y)/float64(max(1, half-1)))
		fb.FillRect(0, y, fb.W, y+1, c)
	}
	fb.FillRect(0, half, fb.W, fb.H, r.Floor)
}

func (r *Renderer) drawColumn(fb *Framebuffer, w *core.World, col, n int, ppd float64) {
	p := w.Player
	angle := ColumnAngle(p.Angle, p.FOV, col, n)
	hit := raycast.Cast(w.Maze, p.X, p.Y, angle, w.CellSize)

	corrected := hit.Distance * math.Max(math.Abs(math.Cos(angle-p.Angle)), 1e-6)
	r.depth[col] = corrected
	if !hit.Hit {
		return
	}

	h := WallHeight(w.CellSize, corrected, ppd)
	top := float64(fb.H)/2 - h/2
	y0 := max(0, int(math.Floor(top)))
	y1 := min(fb.H, int(math.Ceil(top+h)))
	x0 := col * r.Scale
	x1 := min(fb.W, x0+r.Scale)

	var u float64
	if hit.Side == raycast.SideX {
		u = frac(hit.HitY / w.CellSize)
	} else {
		u = frac(hit.HitX / w.CellSize)
	}

	textured := r.Walls != nil
	if textured {
		tw, th := r.Walls.Dimensions(hit.Impact)
		textured = tw > 1 || th > 1
	}

	for y := y0; y < y1; y++ {
		c := fallbackGrey
		if textured {
			v := math.Min(math.Max((float64(y)+0.5-top)/h, 0), 0.999999)
			c = r.Walls.Sample(hit.Impact, u, v)
		}
		if hit.Side == raycast.SideY {
			c = shade(c, r.SideShade)
		}
		for x := x0; x < x1; x++ {
			fb.SetPixel(x, y, c)
		}
	}
}

func frac(v float64) float64 {
	return v - math.Floor(v)
}
