package systems

import (
	"math"

	"github.com/1siamBot/mazecaster/engine/core"
	"github.com/1siamBot/mazecaster/engine/maze"
)

// MovementTuning controls how the player walks, runs and turns
type MovementTuning struct {
	Speed          float64 // world units per second
	RunMultiplier  float64
	RotationSpeed  float64 // radians per second
	StaminaDrain   float64 // per second while running
	RunThreshold   float64 // stamina needed to start running
	TiredThreshold float64 // at or below this stamina running speed is halved
	MaxDt          float64
	WalkStep       float64 // seconds between footsteps
	RunStep        float64
}

func DefaultMovementTuning() MovementTuning {
	return MovementTuning{
		Speed:          80,
		RunMultiplier:  1.6,
		RotationSpeed:  math.Pi,
		StaminaDrain:   60,
		RunThreshold:   5,
		TiredThreshold: 10,
		MaxDt:          0.05,
		WalkStep:       0.45,
		RunStep:        0.3,
	}
}

// MovementSystem turns and moves the player from the sampled controls,
// opening doors when the player carries the key
type MovementSystem struct {
	Tuning MovementTuning
}

func NewMovementSystem(t MovementTuning) *MovementSystem {
	return &MovementSystem{Tuning: t}
}

func (s *MovementSystem) Priority() int { return 0 }

func (s *MovementSystem) Update(w *core.World, dt float64) {
	t := s.Tuning
	dt = math.Min(dt, t.MaxDt)
	p := w.Player
	c := w.Controls

	if c.TurnLeft {
		p.Angle -= t.RotationSpeed * dt
	}
	if c.TurnRight {
		p.Angle += t.RotationSpeed * dt
	}
	p.Angle = core.NormalizeAngle(p.Angle)

	speed := t.Speed
	running := c.Run && p.Stamina > t.RunThreshold && (c.Forward || c.Back)
	if running {
		speed *= t.RunMultiplier
		p.DrainStamina(t.StaminaDrain * dt)
		if p.Stamina <= t.TiredThreshold {
			speed *= 0.5
		}
	}

	var dist float64
	if c.Forward {
		dist += speed * dt
	}
	if c.Back {
		dist -= speed * dt
	}
	if dist == 0 {
		return
	}

	if Move(w, math.Cos(p.Angle)*dist, math.Sin(p.Angle)*dist) && p.StepTimer == 0 {
		p.StepTimer = t.WalkStep
		if running {
			p.StepTimer = t.RunStep
		}
		w.Events.Emit(core.Event{Type: core.EvtFootstep, Tick: w.TickCount})
	}
}

// Move displaces the player by (dx, dy) in sub-steps no longer than a
// quarter cell, stopping at the first blocked cell. A locked door is opened
// (consuming the key) by the sub-step that reaches it; later sub-steps walk
// through. Reports whether the player moved at all.
func Move(w *core.World, dx, dy float64) bool {
	p := w.Player
	maxStep := w.CellSize / 4
	n := int(math.Ceil(math.Hypot(dx, dy) / maxStep))
	if n < 1 {
		n = 1
	}
	sx, sy := dx/float64(n), dy/float64(n)

	moved := false
	for i := 0; i < n; i++ {
		nx, ny := p.X+sx, p.Y+sy
		cx, cy := int(math.Floor(nx/w.CellSize)), int(math.Floor(ny/w.CellSize))
		sym := w.Maze.At(cx, cy)
		switch {
		case w.Maze.InBounds(cx, cy) && sym.Walkable():
			p.X, p.Y = nx, ny
			moved = true
			continue
		case sym == maze.Door && w.Maze.InBounds(cx, cy) && p.HasKey:
			openDoor(w, maze.Cell{X: cx, Y: cy})
			continue
		}
		break
	}
	return moved
}

func openDoor(w *core.World, c maze.Cell) {
	w.Maze.Set(c.X, c.Y, maze.Open)
	w.Player.HasKey = false
	text := "Door opened"
	for _, n := range c.Neighbors4() {
		if w.Maze.At(n.X, n.Y) == maze.Goal && w.Maze.InBounds(n.X, n.Y) {
			w.GoalUnlocked = true
			text = "Door opened: the exit is unlocked"
			break
		}
	}
	w.Notify(core.EvtDoorOpened, text, 3)
}
