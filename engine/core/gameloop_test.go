package core

import "testing"

func TestAdvanceFixedSteps(t *testing.T) {
	gl := NewGameLoop(4) // 0.25s steps, exact in binary
	var dts []float64
	step := func(dt float64) { dts = append(dts, dt) }

	if n := gl.Advance(0.125, step); n != 0 {
		t.Fatalf("first half step ran %d", n)
	}
	if n := gl.Advance(0.125, step); n != 1 {
		t.Fatalf("second half step ran %d", n)
	}
	if len(dts) != 1 || dts[0] != 0.25 {
		t.Errorf("dts = %v", dts)
	}
}

func TestAdvanceClampsLongFrames(t *testing.T) {
	gl := NewGameLoop(8) // 0.125s steps
	n := gl.Advance(5, func(float64) {})
	if n != 2 {
		t.Errorf("ran %d steps for a 5s frame, want 2 (clamped to 0.25s)", n)
	}
	if gl.Alpha() != 0 {
		t.Errorf("alpha = %v", gl.Alpha())
	}
	if gl.CurrentTick() != 2 {
		t.Errorf("ticks = %d", gl.CurrentTick())
	}
}

func TestAdvanceReset(t *testing.T) {
	gl := NewGameLoop(4)
	gl.Advance(0.125, func(float64) {})
	gl.Reset()
	if n := gl.Advance(0.125, func(float64) {}); n != 0 {
		t.Errorf("reset should drop accumulated time, ran %d", n)
	}
}

func TestAdvanceIgnoresNegativeFrames(t *testing.T) {
	gl := NewGameLoop(4)
	if n := gl.Advance(-1, func(float64) {}); n != 0 || gl.Alpha() != 0 {
		t.Errorf("negative frame ran %d, alpha %v", n, gl.Alpha())
	}
}
