package systems

import (
	"github.com/1siamBot/mazecaster/engine/core"
)

// FogSystem reveals the maze around the player each tick
type FogSystem struct {
	Radius int // in cells
}

func (s *FogSystem) Priority() int { return 10 }

func (s *FogSystem) Update(w *core.World, _ float64) {
	c := w.PlayerCell()
	w.Fog.Reveal(c.X, c.Y, s.Radius)
}
