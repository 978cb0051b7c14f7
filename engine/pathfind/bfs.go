package pathfind

import "github.com/1siamBot/mazecaster/engine/maze"

// FindPath returns the shortest 4-connected path from start to goal,
// inclusive of both ends. An impassable endpoint or an unreachable goal
// yields nil.
func FindPath(ng *NavGrid, start, goal maze.Cell) []maze.Cell {
	if !ng.Passable(start.X, start.Y) || !ng.Passable(goal.X, goal.Y) {
		return nil
	}
	if start == goal {
		return []maze.Cell{start}
	}

	w := ng.Width()
	came := make([]int, w*ng.Height())
	for i := range came {
		came[i] = -1
	}
	startIdx := start.Y*w + start.X
	came[startIdx] = startIdx

	queue := []maze.Cell{start}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		curIdx := cur.Y*w + cur.X
		for _, n := range cur.Neighbors4() {
			if !ng.Passable(n.X, n.Y) {
				continue
			}
			idx := n.Y*w + n.X
			if came[idx] >= 0 {
				continue
			}
			came[idx] = curIdx
			if n == goal {
				return reconstructPath(came, w, startIdx, idx)
			}
			queue = append(queue, n)
		}
	}
	return nil
}

func reconstructPath(came []int, w, startIdx, goalIdx int) []maze.Cell {
	var path []maze.Cell
	for idx := goalIdx; ; idx = came[idx] {
		path = append(path, maze.Cell{X: idx % w, Y: idx / w})
		if idx == startIdx {
			break
		}
	}
	// Reverse
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}
