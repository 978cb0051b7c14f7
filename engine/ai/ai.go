// Package ai drives the maze chasers.
package ai

import (
	"github.com/1siamBot/mazecaster/engine/core"
	"github.com/1siamBot/mazecaster/engine/pathfind"
)

// Tuning controls chaser behaviour
type Tuning struct {
	RepathInterval float64 // seconds between forced path recomputations
	AttackCooldown float64 // seconds between attacks
	AttackRadius   float64 // fraction of a cell
	ArriveRadius   float64 // world units within which a waypoint counts as reached
	Damage         float64
}

// DefaultTuning mirrors the shipped game balance
func DefaultTuning() Tuning {
	return Tuning{
		RepathInterval: 1.0,
		AttackCooldown: 1.0,
		AttackRadius:   0.5,
		ArriveRadius:   1.0,
		Damage:         50,
	}
}

// AISystem updates every enemy and applies their attacks to the player
type AISystem struct {
	Tuning Tuning
}

func NewAISystem(t Tuning) *AISystem {
	return &AISystem{Tuning: t}
}

func (s *AISystem) Priority() int { return 20 }

func (s *AISystem) Update(w *core.World, dt float64) {
	ng := pathfind.NewNavGrid(w.Maze)
	for _, e := range w.Enemies {
		if Think(e, w, ng, s.Tuning, dt) {
			w.Player.ApplyDamage(s.Tuning.Damage)
			w.Events.Emit(core.Event{Type: core.EvtPlayerHurt, Tick: w.TickCount, Payload: s.Tuning.Damage})
		}
	}
}

// Think advances one enemy by dt and reports whether it landed an attack.
// An attack sends the enemy back to its spawn.
func Think(e *core.Enemy, w *core.World, ng *pathfind.NavGrid, t Tuning, dt float64) bool {
	e.Cooldown -= dt
	e.PathTimer -= dt

	if e.PathTimer <= 0 || !e.HasWaypoint() {
		// stale paths are replaced wholesale
		e.Path = pathfind.FindPath(ng, e.Cell(w.CellSize), w.PlayerCell())
		e.PathIdx = 1
		e.PathTimer = t.RepathInterval
	}

	if e.HasWaypoint() {
		tx, ty := pathfind.CellCenter(e.Path[e.PathIdx], w.CellSize)
		if e.DistanceTo(tx, ty) <= t.ArriveRadius {
			e.PathIdx++
		} else {
			e.X, e.Y, _ = pathfind.Seek(e.X, e.Y, tx, ty, e.Speed*dt)
		}
	}

	if e.Cooldown <= 0 && e.DistanceTo(w.Player.X, w.Player.Y) < w.CellSize*t.AttackRadius {
		e.Cooldown = t.AttackCooldown
		e.Reset(w.CellSize)
		return true
	}
	return false
}
