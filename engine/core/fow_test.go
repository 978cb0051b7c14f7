package core

import "testing"

func TestRevealDisk(t *testing.T) {
	f := NewFogOfWar(11, 11)
	f.Reveal(5, 5, 2)

	for y := 0; y < 11; y++ {
		for x := 0; x < 11; x++ {
			dx, dy := x-5, y-5
			want := dx*dx+dy*dy <= 4
			if f.Revealed(x, y) != want {
				t.Errorf("(%d,%d) revealed=%v, want %v", x, y, f.Revealed(x, y), want)
			}
		}
	}
	if n := f.RevealedCount(); n != 13 {
		t.Errorf("revealed %d cells, want 13", n)
	}
}

func TestRevealNeverClears(t *testing.T) {
	f := NewFogOfWar(8, 8)
	f.Reveal(1, 1, 1)
	before := append([]bool(nil), f.Grid...)
	f.Reveal(6, 6, 1)
	f.Reveal(6, 6, 0)
	for i, v := range before {
		if v && !f.Grid[i] {
			t.Fatalf("cell %d was hidden again", i)
		}
	}
	if !f.Revealed(6, 6) {
		t.Error("second reveal missing")
	}
}

func TestRevealClipsToGrid(t *testing.T) {
	f := NewFogOfWar(3, 3)
	f.Reveal(0, 0, 5)
	if f.RevealedCount() != 9 {
		t.Errorf("revealed %d, want whole grid", f.RevealedCount())
	}
	if f.Revealed(-1, 0) || f.Revealed(3, 3) {
		t.Error("out of bounds should read as hidden")
	}
}
