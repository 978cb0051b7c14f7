package core

import (
	"math"

	"github.com/1siamBot/mazecaster/engine/maze"
)

// ---- Enemies ----

// Enemy is a maze chaser. It never dies; a successful attack sends it back
// to its spawn cell.
type Enemy struct {
	Kind  string // sprite key
	Spawn maze.Cell
	X, Y  float64
	Speed float64

	Path      []maze.Cell
	PathIdx   int
	PathTimer float64 // seconds until the next forced repath
	Cooldown  float64 // seconds until it may attack again
}

// NewEnemy places an enemy at the centre of its spawn cell
func NewEnemy(kind string, spawn maze.Cell, cellSize, speed float64) *Enemy {
	e := &Enemy{Kind: kind, Spawn: spawn, Speed: speed}
	e.Reset(cellSize)
	return e
}

// Reset teleports the enemy to its spawn and drops its path
func (e *Enemy) Reset(cellSize float64) {
	e.X = (float64(e.Spawn.X) + 0.5) * cellSize
	e.Y = (float64(e.Spawn.Y) + 0.5) * cellSize
	e.Path = nil
	e.PathIdx = 0
	e.PathTimer = 0
}

// Cell returns the grid cell the enemy occupies
func (e *Enemy) Cell(cellSize float64) maze.Cell {
	return maze.Cell{X: int(math.Floor(e.X / cellSize)), Y: int(math.Floor(e.Y / cellSize))}
}

// HasWaypoint reports whether there is still somewhere to walk on the current path
func (e *Enemy) HasWaypoint() bool {
	return e.PathIdx < len(e.Path)
}

// DistanceTo returns euclidean distance to a world point
func (e *Enemy) DistanceTo(x, y float64) float64 {
	dx, dy := e.X-x, e.Y-y
	return math.Sqrt(dx*dx + dy*dy)
}

// ---- Pickups ----

type PickupKind uint8

const (
	PickupMedkit PickupKind = iota
	PickupKey
	PickupBinoculars
)

func (k PickupKind) String() string {
	switch k {
	case PickupMedkit:
		return "medkit"
	case PickupKey:
		return "key"
	case PickupBinoculars:
		return "binoculars"
	}
	return "unknown"
}

// Pickup is a collectible bound to a cell
type Pickup struct {
	Kind  PickupKind
	Cell  maze.Cell
	Taken bool
}

// ---- HUD message ----

// Message is a transient line of text shown on the HUD
type Message struct {
	Text string
	TTL  float64
}

func (m Message) Active() bool {
	return m.TTL > 0 && m.Text != ""
}
