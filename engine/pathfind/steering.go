package pathfind

import (
	"math"

	"github.com/1siamBot/mazecaster/engine/maze"
)

// CellCenter returns the world position of the centre of c
func CellCenter(c maze.Cell, cellSize float64) (float64, float64) {
	return (float64(c.X) + 0.5) * cellSize, (float64(c.Y) + 0.5) * cellSize
}

// Seek moves (ux, uy) toward (tx, ty) by at most maxStep without overshooting.
// It returns the new position and the distance that remained before the move.
func Seek(ux, uy, tx, ty, maxStep float64) (nx, ny, dist float64) {
	dx, dy := tx-ux, ty-uy
	dist = math.Sqrt(dx*dx + dy*dy)
	if dist <= maxStep {
		return tx, ty, dist
	}
	return ux + dx/dist*maxStep, uy + dy/dist*maxStep, dist
}
