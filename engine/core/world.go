package core

import (
	"github.com/1siamBot/mazecaster/engine/maze"
)

// Outcome is the terminal result a step may produce
type Outcome uint8

const (
	OutcomeNone Outcome = iota
	OutcomeWon
	OutcomeLost
)

// World holds everything the simulation mutates during a run
type World struct {
	Maze     *maze.Grid
	CellSize float64
	Goal     maze.Cell

	Player  *Player
	Enemies []*Enemy
	Pickups []*Pickup
	Fog     *FogOfWar

	GoalUnlocked bool
	Controls     Controls
	Message      Message
	Outcome      Outcome

	Events    *EventBus
	TickCount uint64
	systems   []System
}

// System processes the world each tick
type System interface {
	Update(w *World, dt float64)
	Priority() int
}

// NewWorld wraps a prepared maze. The player spawns at the centre of spawn.
func NewWorld(g *maze.Grid, cellSize float64, spawn, goal maze.Cell, fov float64) *World {
	return &World{
		Maze:     g,
		CellSize: cellSize,
		Goal:     goal,
		Player:   NewPlayer((float64(spawn.X)+0.5)*cellSize, (float64(spawn.Y)+0.5)*cellSize, fov),
		Fog:      NewFogOfWar(g.Width, g.Height),
		Events:   NewEventBus(),
	}
}

// AddSystem registers a system
func (w *World) AddSystem(s System) {
	w.systems = append(w.systems, s)
	// Sort by priority (simple insertion)
	for i := len(w.systems) - 1; i > 0; i-- {
		if w.systems[i].Priority() < w.systems[i-1].Priority() {
			w.systems[i], w.systems[i-1] = w.systems[i-1], w.systems[i]
		}
	}
}

// Tick runs all systems once. Systems stop running for the rest of the
// tick once an outcome has been decided.
func (w *World) Tick(dt float64) {
	for _, s := range w.systems {
		if w.Outcome != OutcomeNone {
			break
		}
		s.Update(w, dt)
	}
	w.TickCount++
}

// Notify sets the HUD message and queues an event carrying it
func (w *World) Notify(t EventType, text string, ttl float64) {
	if text != "" {
		w.Message = Message{Text: text, TTL: ttl}
	}
	w.Events.Emit(Event{Type: t, Tick: w.TickCount, Payload: text})
}

// PlayerCell returns the maze cell under the player
func (w *World) PlayerCell() maze.Cell {
	x, y := w.Player.Cell(w.CellSize)
	return maze.Cell{X: x, Y: y}
}

// CellCenter returns the world position of the centre of c
func (w *World) CellCenter(c maze.Cell) (float64, float64) {
	return (float64(c.X) + 0.5) * w.CellSize, (float64(c.Y) + 0.5) * w.CellSize
}
