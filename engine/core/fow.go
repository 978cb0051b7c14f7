package core

// FogOfWar remembers which maze cells the player has seen. Cells are only
// ever revealed, never hidden again.
type FogOfWar struct {
	Width, Height int
	Grid          []bool
}

func NewFogOfWar(w, h int) *FogOfWar {
	return &FogOfWar{
		Width:  w,
		Height: h,
		Grid:   make([]bool, w*h),
	}
}

// Revealed reports whether (x, y) has been seen. Out of bounds is never revealed.
func (f *FogOfWar) Revealed(x, y int) bool {
	if x < 0 || y < 0 || x >= f.Width || y >= f.Height {
		return false
	}
	return f.Grid[y*f.Width+x]
}

// Reveal marks every in-bounds cell within euclidean distance r of (cx, cy)
func (f *FogOfWar) Reveal(cx, cy, r int) {
	for dy := -r; dy <= r; dy++ {
		for dx := -r; dx <= r; dx++ {
			if dx*dx+dy*dy > r*r {
				continue
			}
			tx, ty := cx+dx, cy+dy
			if tx >= 0 && ty >= 0 && tx < f.Width && ty < f.Height {
				f.Grid[ty*f.Width+tx] = true
			}
		}
	}
}

// RevealedCount returns the number of cells seen so far
func (f *FogOfWar) RevealedCount() int {
	n := 0
	for _, v := range f.Grid {
		if v {
			n++
		}
	}
	return n
}
