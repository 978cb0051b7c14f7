package maze

import "math/rand"

// Generate carves a perfect maze over a width x height grid of rooms using an
// iterative randomized depth-first search. The result has 2*height+1 rows and
// 2*width+1 columns; rooms sit on odd/odd cells and walls between them are
// opened as they are carved. Room (0,0) is stamped with the spawn marker and
// the last room with the goal marker.
func Generate(width, height int, rng *rand.Rand) *Grid {
	if width < 1 {
		width = 1
	}
	if height < 1 {
		height = 1
	}

	g := NewGrid(2*width+1, 2*height+1, Open)
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			switch {
			case y%2 == 0 && x%2 == 0:
				g.Set(x, y, Corner)
			case y%2 == 0:
				g.Set(x, y, HWall)
			case x%2 == 0:
				g.Set(x, y, VWall)
			}
		}
	}

	visited := make([]bool, width*height)
	visited[0] = true
	stack := []Cell{{0, 0}}
	var candidates []Cell

	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		candidates = candidates[:0]
		for _, n := range cur.Neighbors4() {
			if n.X >= 0 && n.Y >= 0 && n.X < width && n.Y < height && !visited[n.Y*width+n.X] {
				candidates = append(candidates, n)
			}
		}
		if len(candidates) == 0 {
			stack = stack[:len(stack)-1]
			continue
		}
		next := candidates[rng.Intn(len(candidates))]
		visited[next.Y*width+next.X] = true
		// the wall sits halfway between the two room cells
		g.Set(cur.X+next.X+1, cur.Y+next.Y+1, Open)
		stack = append(stack, next)
	}

	g.Set(1, 1, Spawn)
	g.Set(g.Width-2, g.Height-2, Goal)
	return g
}

// Expand scales every symbol into a factor x factor block, widening corridors
func Expand(g *Grid, factor int) *Grid {
	if factor <= 1 {
		return g.Clone()
	}
	out := NewGrid(g.Width*factor, g.Height*factor, Open)
	for y := 0; y < out.Height; y++ {
		for x := 0; x < out.Width; x++ {
			out.Cells[y*out.Width+x] = g.At(x/factor, y/factor)
		}
	}
	return out
}
