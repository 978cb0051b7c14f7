// Package raycast walks a ray through the maze grid with a DDA traversal.
package raycast

import (
	"math"

	"github.com/1siamBot/mazecaster/engine/maze"
)

// MaxSteps bounds the traversal so a ray through an open region terminates
const MaxSteps = 2000

// Side identifies which family of grid lines a ray crossed when it hit
type Side uint8

const (
	SideX Side = iota // crossed a vertical grid line (east/west face)
	SideY             // crossed a horizontal grid line (north/south face)
)

// Hit describes where a ray stopped
type Hit struct {
	Distance float64 // along the ray, reconstructed from the struck axis
	Impact   maze.Symbol
	Cell     maze.Cell
	HitX     float64
	HitY     float64
	Side     Side
	Hit      bool
}

// Cast shoots a ray from world position (ox, oy) at angle radians.
// One grid cell spans cellSize world units.
func Cast(g *maze.Grid, ox, oy, angle, cellSize float64) Hit {
	dirX, dirY := math.Cos(angle), math.Sin(angle)

	px, py := ox/cellSize, oy/cellSize
	mapX, mapY := int(math.Floor(px)), int(math.Floor(py))

	deltaX, deltaY := math.Inf(1), math.Inf(1)
	if math.Abs(dirX) >= 1e-6 {
		deltaX = 1 / math.Abs(dirX)
	}
	if math.Abs(dirY) >= 1e-6 {
		deltaY = 1 / math.Abs(dirY)
	}

	stepX, sideX := 1, (float64(mapX)+1-px)*deltaX
	if dirX < 0 {
		stepX, sideX = -1, (px-float64(mapX))*deltaX
	}
	stepY, sideY := 1, (float64(mapY)+1-py)*deltaY
	if dirY < 0 {
		stepY, sideY = -1, (py-float64(mapY))*deltaY
	}

	miss := Hit{
		Distance: float64(g.Width+g.Height) * cellSize,
		Impact:   maze.Corner,
	}

	var side Side
	for i := 0; i < MaxSteps; i++ {
		if sideX < sideY {
			sideX += deltaX
			mapX += stepX
			side = SideX
		} else {
			sideY += deltaY
			mapY += stepY
			side = SideY
		}

		if !g.InBounds(mapX, mapY) {
			miss.Cell = maze.Cell{X: mapX, Y: mapY}
			miss.Side = side
			miss.HitX = ox + dirX*miss.Distance
			miss.HitY = oy + dirY*miss.Distance
			return miss
		}
		sym := g.At(mapX, mapY)
		if sym == maze.Open {
			continue
		}

		var dist float64
		if side == SideX {
			dist = math.Abs((float64(mapX)-px+float64(1-stepX)/2)/dirX) * cellSize
		} else {
			dist = math.Abs((float64(mapY)-py+float64(1-stepY)/2)/dirY) * cellSize
		}
		return Hit{
			Distance: dist,
			Impact:   sym,
			Cell:     maze.Cell{X: mapX, Y: mapY},
			HitX:     ox + dirX*dist,
			HitY:     oy + dirY*dist,
			Side:     side,
			Hit:      true,
		}
	}

	miss.Cell = maze.Cell{X: mapX, Y: mapY}
	miss.HitX = ox + dirX*miss.Distance
	miss.HitY = oy + dirY*miss.Distance
	return miss
}
