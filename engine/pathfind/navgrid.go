// Package pathfind answers grid reachability questions for maze actors.
package pathfind

import "github.com/1siamBot/mazecaster/engine/maze"

// NavGrid is a navigation view over a live maze. It reads the maze on every
// query so doors opened during play become traversable immediately.
type NavGrid struct {
	Maze *maze.Grid
}

// NewNavGrid builds a navigation view over g
func NewNavGrid(g *maze.Grid) *NavGrid {
	return &NavGrid{Maze: g}
}

// Width of the underlying maze
func (ng *NavGrid) Width() int { return ng.Maze.Width }

// Height of the underlying maze
func (ng *NavGrid) Height() int { return ng.Maze.Height }

// Passable reports whether an enemy may path through (x, y).
// Open, spawn and goal cells are traversable; walls and closed doors are not.
func (ng *NavGrid) Passable(x, y int) bool {
	return ng.Maze.Walkable(x, y)
}
