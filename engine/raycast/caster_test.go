package raycast

import (
	"math"
	"testing"

	"github.com/1siamBot/mazecaster/engine/maze"
)

const cell = 10.0

func corridor() *maze.Grid {
	return maze.FromRows(
		"+-----+",
		"|     |",
		"+-----+",
	)
}

func near(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestCastAxisAligned(t *testing.T) {
	g := corridor()
	// centre of cell (1,1)
	ox, oy := 15.0, 15.0

	tests := []struct {
		name   string
		angle  float64
		dist   float64
		impact maze.Symbol
		side   Side
		cell   maze.Cell
	}{
		{"east down the corridor", 0, 45, maze.VWall, SideX, maze.Cell{X: 6, Y: 1}},
		{"west into the end wall", math.Pi, 5, maze.VWall, SideX, maze.Cell{X: 0, Y: 1}},
		{"south", math.Pi / 2, 5, maze.HWall, SideY, maze.Cell{X: 1, Y: 2}},
		{"north", -math.Pi / 2, 5, maze.HWall, SideY, maze.Cell{X: 1, Y: 0}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := Cast(g, ox, oy, tt.angle, cell)
			if !h.Hit {
				t.Fatal("expected a hit")
			}
			if math.IsNaN(h.Distance) || math.IsInf(h.Distance, 0) {
				t.Fatalf("distance = %v", h.Distance)
			}
			if !near(h.Distance, tt.dist) {
				t.Errorf("distance = %v, want %v", h.Distance, tt.dist)
			}
			if h.Impact != tt.impact || h.Side != tt.side || h.Cell != tt.cell {
				t.Errorf("hit = %+v", h)
			}
		})
	}
}

func TestCastOnGridLine(t *testing.T) {
	g := maze.FromRows(
		"+---+",
		"|   |",
		"|   |",
		"|   |",
		"+---+",
	)
	// origin exactly on a vertical grid line, ray straight up and down
	for _, a := range []float64{math.Pi / 2, 3 * math.Pi / 2, -math.Pi / 2} {
		h := Cast(g, 20, 25, a, cell)
		if !h.Hit || math.IsNaN(h.Distance) || math.IsInf(h.Distance, 0) {
			t.Errorf("angle %v: hit = %+v", a, h)
		}
		if !near(h.Distance, 15) {
			t.Errorf("angle %v: distance = %v, want 15", a, h.Distance)
		}
	}
}

func TestCastDiagonalHitPoint(t *testing.T) {
	g := maze.FromRows(
		"+---+",
		"|   |",
		"|   |",
		"|   |",
		"+---+",
	)
	h := Cast(g, 25, 25, math.Pi/4, cell)
	if !h.Hit {
		t.Fatal("expected a hit")
	}
	// the wall faces are at x=40 and y=40; the ray leaves the room at the corner
	want := 15 * math.Sqrt2
	if !near(h.Distance, want) {
		t.Errorf("distance = %v, want %v", h.Distance, want)
	}
	if !near(h.HitX, 40) || !near(h.HitY, 40) {
		t.Errorf("hit point = (%v, %v)", h.HitX, h.HitY)
	}
}

func TestCastEscapesGrid(t *testing.T) {
	g := maze.FromRows(
		"   ",
		"   ",
	)
	h := Cast(g, 5, 5, 0, cell)
	if h.Hit {
		t.Fatal("ray leaving the grid should not report a hit")
	}
	if h.Distance != float64(g.Width+g.Height)*cell {
		t.Errorf("distance = %v", h.Distance)
	}
	if h.Impact != maze.Corner {
		t.Errorf("impact = %q", h.Impact)
	}
}

func TestCastStopsOnMarkersAndDoors(t *testing.T) {
	g := maze.FromRows(
		"+-----+",
		"|  D g|",
		"+-----+",
	)
	h := Cast(g, 15, 15, 0, cell)
	if h.Impact != maze.Door || !near(h.Distance, 15) {
		t.Errorf("hit = %+v, want door at 15", h)
	}
}
