package render

import (
	"image/color"

	"github.com/1siamBot/mazecaster/engine/core"
	"github.com/1siamBot/mazecaster/engine/maze"
)

// Minimap palette
var (
	MapHidden     = color.RGBA{0, 0, 0, 255}
	MapWall       = color.RGBA{80, 80, 80, 255}
	MapOpen       = color.RGBA{245, 245, 245, 255}
	MapDoor       = color.RGBA{150, 75, 0, 255}
	MapGoal       = color.RGBA{0, 228, 48, 255}
	MapSpawn      = color.RGBA{230, 41, 55, 255}
	MapMedkit     = color.RGBA{102, 191, 255, 255}
	MapKey        = color.RGBA{255, 203, 0, 255}
	MapBinoculars = color.RGBA{200, 122, 255, 255}
	MapEnemy      = color.RGBA{255, 161, 0, 255}
	MapEnemyFar   = color.RGBA{253, 249, 0, 255} // seen through binoculars only
	MapPlayer     = color.RGBA{255, 0, 255, 255}
)

// Minimap draws the explored maze in a corner of the framebuffer
type Minimap struct {
	X, Y int
	W, H int
}

// Block returns the pixel size of one cell for a maze of cols x rows
func (m *Minimap) Block(cols, rows int) int {
	return max(1, min(m.W/cols, m.H/rows))
}

func (m *Minimap) Draw(fb *Framebuffer, w *core.World) {
	g := w.Maze
	b := m.Block(g.Width, g.Height)
	fog := w.Fog
	farSight := w.Player.BinocularTimer > 0

	cellRect := func(c maze.Cell, inset int, col color.RGBA) {
		x := m.X + c.X*b
		y := m.Y + c.Y*b
		fb.FillRect(x+inset, y+inset, x+b-inset, y+b-inset, col)
	}
	marker := func(c maze.Cell, col color.RGBA) {
		cellRect(c, b/4, col)
	}

	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			c := MapHidden
			if fog.Revealed(x, y) {
				c = cellColor(g.At(x, y))
			}
			cellRect(maze.Cell{X: x, Y: y}, 0, c)
		}
	}

	for _, pk := range w.Pickups {
		if pk.Taken {
			continue
		}
		switch pk.Kind {
		case core.PickupMedkit:
			if fog.Revealed(pk.Cell.X, pk.Cell.Y) || farSight {
				marker(pk.Cell, MapMedkit)
			}
		case core.PickupKey:
			marker(pk.Cell, MapKey)
		case core.PickupBinoculars:
			marker(pk.Cell, MapBinoculars)
		}
	}

	marker(w.Goal, MapGoal)

	for _, e := range w.Enemies {
		c := e.Cell(w.CellSize)
		switch {
		case fog.Revealed(c.X, c.Y):
			marker(c, MapEnemy)
		case farSight:
			marker(c, MapEnemyFar)
		}
	}

	if pc := w.PlayerCell(); fog.Revealed(pc.X, pc.Y) {
		marker(pc, MapPlayer)
	}
}

func cellColor(s maze.Symbol) color.RGBA {
	switch s {
	case maze.Open:
		return MapOpen
	case maze.Spawn:
		return MapSpawn
	case maze.Goal:
		return MapGoal
	case maze.Door:
		return MapDoor
	}
	return MapWall
}
