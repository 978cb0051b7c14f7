package maze

import (
	"strings"
)

// Symbol is a single maze cell
type Symbol byte

const (
	Open   Symbol = ' '
	Corner Symbol = '+'
	HWall  Symbol = '-'
	VWall  Symbol = '|'
	Spawn  Symbol = 'p'
	Goal   Symbol = 'g'
	Door   Symbol = 'D'
)

// Walkable reports whether an actor may stand on the symbol.
// Doors are not walkable until opened.
func (s Symbol) Walkable() bool {
	return s == Open || s == Spawn || s == Goal
}

// IsWall reports whether the symbol is one of the wall glyphs
func (s Symbol) IsWall() bool {
	return s == Corner || s == HWall || s == VWall
}

// Cell is an integer grid coordinate
type Cell struct {
	X, Y int
}

// Neighbors4 returns the 4-connected neighbours in N, E, S, W order
func (c Cell) Neighbors4() [4]Cell {
	return [4]Cell{
		{c.X, c.Y - 1},
		{c.X + 1, c.Y},
		{c.X, c.Y + 1},
		{c.X - 1, c.Y},
	}
}

// Manhattan returns the taxicab distance between two cells
func (c Cell) Manhattan(o Cell) int {
	return abs(c.X-o.X) + abs(c.Y-o.Y)
}

// Grid is a rectangular maze stored row-major
type Grid struct {
	Width  int
	Height int
	Cells  []Symbol
}

// NewGrid creates a grid filled with sym
func NewGrid(width, height int, sym Symbol) *Grid {
	g := &Grid{
		Width:  width,
		Height: height,
		Cells:  make([]Symbol, width*height),
	}
	for i := range g.Cells {
		g.Cells[i] = sym
	}
	return g
}

// FromRows builds a grid from equal-length strings. It panics on ragged
// input; use Parse for untrusted text.
func FromRows(rows ...string) *Grid {
	g, err := parseRows(rows)
	if err != nil {
		panic(err)
	}
	return g
}

// InBounds checks if coordinates are within the grid
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && y >= 0 && x < g.Width && y < g.Height
}

// At returns the symbol at (x, y). Out of bounds reads as a corner wall.
func (g *Grid) At(x, y int) Symbol {
	if !g.InBounds(x, y) {
		return Corner
	}
	return g.Cells[y*g.Width+x]
}

// Set writes a symbol; out of bounds writes are ignored
func (g *Grid) Set(x, y int, s Symbol) {
	if g.InBounds(x, y) {
		g.Cells[y*g.Width+x] = s
	}
}

// Walkable is At(x, y).Walkable() with bounds checking
func (g *Grid) Walkable(x, y int) bool {
	return g.InBounds(x, y) && g.At(x, y).Walkable()
}

// Find returns the first cell holding s in row-major order
func (g *Grid) Find(s Symbol) (Cell, bool) {
	for i, c := range g.Cells {
		if c == s {
			return Cell{i % g.Width, i / g.Width}, true
		}
	}
	return Cell{}, false
}

// Count returns how many cells hold s
func (g *Grid) Count(s Symbol) int {
	n := 0
	for _, c := range g.Cells {
		if c == s {
			n++
		}
	}
	return n
}

// Clone returns a deep copy
func (g *Grid) Clone() *Grid {
	cp := &Grid{Width: g.Width, Height: g.Height, Cells: make([]Symbol, len(g.Cells))}
	copy(cp.Cells, g.Cells)
	return cp
}

// Row returns row y as a string
func (g *Grid) Row(y int) string {
	b := make([]byte, g.Width)
	for x := 0; x < g.Width; x++ {
		b[x] = byte(g.At(x, y))
	}
	return string(b)
}

func (g *Grid) String() string {
	var sb strings.Builder
	for y := 0; y < g.Height; y++ {
		sb.WriteString(g.Row(y))
		sb.WriteByte('\n')
	}
	return sb.String()
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
