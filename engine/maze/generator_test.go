package maze

import (
	"math/rand"
	"testing"
)

func TestGenerateDimensions(t *testing.T) {
	tests := []struct {
		w, h         int
		cols, rows   int
	}{
		{1, 1, 3, 3},
		{4, 3, 9, 7},
		{12, 10, 25, 21},
		{0, -2, 3, 3},
	}
	for _, tt := range tests {
		g := Generate(tt.w, tt.h, rand.New(rand.NewSource(1)))
		if g.Width != tt.cols || g.Height != tt.rows {
			t.Errorf("Generate(%d,%d) = %dx%d, want %dx%d", tt.w, tt.h, g.Width, g.Height, tt.cols, tt.rows)
		}
		if len(g.Cells) != g.Width*g.Height {
			t.Errorf("cell count %d does not match %dx%d", len(g.Cells), g.Width, g.Height)
		}
	}
}

func TestGenerateIsPerfectMaze(t *testing.T) {
	for seed := int64(0); seed < 20; seed++ {
		w, h := 7, 5
		g := Generate(w, h, rand.New(rand.NewSource(seed)))

		// corners stay closed, rooms stay open
		for y := 0; y < g.Height; y++ {
			for x := 0; x < g.Width; x++ {
				s := g.At(x, y)
				if x%2 == 0 && y%2 == 0 && s != Corner {
					t.Fatalf("seed %d: corner (%d,%d) = %q", seed, x, y, s)
				}
				if x%2 == 1 && y%2 == 1 && !s.Walkable() {
					t.Fatalf("seed %d: room (%d,%d) = %q", seed, x, y, s)
				}
			}
		}

		opened := 0
		for y := 0; y < g.Height; y++ {
			for x := 0; x < g.Width; x++ {
				if (x+y)%2 == 1 && g.At(x, y) == Open {
					opened++
				}
			}
		}
		if opened != w*h-1 {
			t.Errorf("seed %d: opened %d walls, want %d", seed, opened, w*h-1)
		}

		seen := flood(g, Cell{1, 1})
		for ry := 0; ry < h; ry++ {
			for rx := 0; rx < w; rx++ {
				if !seen[(2*ry+1)*g.Width+2*rx+1] {
					t.Errorf("seed %d: room (%d,%d) unreachable", seed, rx, ry)
				}
			}
		}
	}
}

func TestGenerateMarkers(t *testing.T) {
	g := Generate(5, 4, rand.New(rand.NewSource(3)))
	if g.At(1, 1) != Spawn {
		t.Errorf("spawn marker = %q", g.At(1, 1))
	}
	if g.At(g.Width-2, g.Height-2) != Goal {
		t.Errorf("goal marker = %q", g.At(g.Width-2, g.Height-2))
	}
}

func TestGenerateDeterministic(t *testing.T) {
	a := Generate(9, 9, rand.New(rand.NewSource(42)))
	b := Generate(9, 9, rand.New(rand.NewSource(42)))
	if a.String() != b.String() {
		t.Fatal("same seed produced different mazes")
	}
}

func TestExpand(t *testing.T) {
	g := FromRows(
		"+-+",
		"|p|",
		"+-+",
	)
	e := Expand(g, 2)
	if e.Width != 6 || e.Height != 6 {
		t.Fatalf("expanded size %dx%d", e.Width, e.Height)
	}
	want := []string{
		"++--++",
		"++--++",
		"||pp||",
		"||pp||",
		"++--++",
		"++--++",
	}
	for y, row := range want {
		if got := e.Row(y); got != row {
			t.Errorf("row %d = %q, want %q", y, got, row)
		}
	}
	if same := Expand(g, 1); same.String() != g.String() || same == g {
		t.Error("factor 1 should return an equal copy")
	}
}

func flood(g *Grid, start Cell) []bool {
	seen := make([]bool, len(g.Cells))
	seen[start.Y*g.Width+start.X] = true
	queue := []Cell{start}
	for len(queue) > 0 {
		c := queue[0]
		queue = queue[1:]
		for _, n := range c.Neighbors4() {
			if g.Walkable(n.X, n.Y) && !seen[n.Y*g.Width+n.X] {
				seen[n.Y*g.Width+n.X] = true
				queue = append(queue, n)
			}
		}
	}
	return seen
}
