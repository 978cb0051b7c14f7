package maze

// Level is the result of preparing a grid for play
type Level struct {
	Spawn Cell
	Goal  Cell
	// Relocated is set when the nominal spawn was unreachable from the border
	Relocated bool
}

// Reachable flood-fills open cells from every open border cell and returns
// a row-major mask of the cells it reached. Spawn and goal markers neither
// seed nor carry the fill.
func Reachable(g *Grid) []bool {
	seen := make([]bool, len(g.Cells))
	var queue []Cell
	push := func(c Cell) {
		if !g.InBounds(c.X, c.Y) || g.At(c.X, c.Y) != Open || seen[c.Y*g.Width+c.X] {
			return
		}
		seen[c.Y*g.Width+c.X] = true
		queue = append(queue, c)
	}
	for x := 0; x < g.Width; x++ {
		push(Cell{x, 0})
		push(Cell{x, g.Height - 1})
	}
	for y := 0; y < g.Height; y++ {
		push(Cell{0, y})
		push(Cell{g.Width - 1, y})
	}
	for len(queue) > 0 {
		c := queue[0]
		queue = queue[1:]
		for _, n := range c.Neighbors4() {
			push(n)
		}
	}
	return seen
}

// PrepareLevel repairs reachability and places the goal in place.
//
// The nominal spawn is the first spawn marker (or (1,1)). If the flood fill
// from the border reached anything and the spawn neither lies in it nor
// borders it, the spawn
// moves to the nearest reached cell by Manhattan distance, ties broken by
// row-major order. With nothing reachable the spawn falls back to the first
// walkable cell. The spawn cell is cleared to open.
//
// Every goal marker is cleared, the goal is fixed at (cols-2, rows-2) and
// each of its in-bounds 4-neighbours becomes a locked door.
func PrepareLevel(g *Grid) Level {
	var lv Level

	spawn, ok := g.Find(Spawn)
	if !ok {
		spawn = Cell{clamp(1, 0, g.Width-1), clamp(1, 0, g.Height-1)}
	}

	reach := Reachable(g)
	anyReached := false
	for _, r := range reach {
		if r {
			anyReached = true
			break
		}
	}

	switch {
	case anyReached && !touches(g, reach, spawn):
		best, bestDist := Cell{}, -1
		for i, r := range reach {
			if !r {
				continue
			}
			c := Cell{i % g.Width, i / g.Width}
			if d := c.Manhattan(spawn); bestDist < 0 || d < bestDist {
				best, bestDist = c, d
			}
		}
		spawn = best
		lv.Relocated = true
	case !anyReached && !g.Walkable(spawn.X, spawn.Y):
		for i, s := range g.Cells {
			if s.Walkable() {
				spawn = Cell{i % g.Width, i / g.Width}
				lv.Relocated = true
				break
			}
		}
	}

	for i, s := range g.Cells {
		if s == Spawn || s == Goal {
			g.Cells[i] = Open
		}
	}
	g.Set(spawn.X, spawn.Y, Open)
	lv.Spawn = spawn

	goal := Cell{clamp(g.Width-2, 0, g.Width-1), clamp(g.Height-2, 0, g.Height-1)}
	if goal == spawn {
		// a 1x1 maze has nowhere else to put it
		goal = Cell{g.Width - 1, g.Height - 1}
	}
	g.Set(goal.X, goal.Y, Goal)
	for _, n := range goal.Neighbors4() {
		if g.InBounds(n.X, n.Y) && n != spawn {
			g.Set(n.X, n.Y, Door)
		}
	}
	lv.Goal = goal
	return lv
}

// touches reports whether c was reached or borders a reached cell. A spawn
// marker is never reached itself but is connected when a neighbour is.
func touches(g *Grid, reach []bool, c Cell) bool {
	if reach[c.Y*g.Width+c.X] {
		return true
	}
	if !g.Walkable(c.X, c.Y) {
		return false
	}
	for _, n := range c.Neighbors4() {
		if g.InBounds(n.X, n.Y) && reach[n.Y*g.Width+n.X] {
			return true
		}
	}
	return false
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
