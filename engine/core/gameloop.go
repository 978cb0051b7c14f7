package core

import "time"

// GameLoop converts variable frame times into fixed simulation steps
type GameLoop struct {
	TickRate    float64 // fixed ticks per second
	MaxFrame    float64 // longest frame time accepted, in seconds
	accumulator float64
	lastTime    time.Time
	ticks       uint64
}

// NewGameLoop creates a game loop with fixed tick rate
func NewGameLoop(tickRate float64) *GameLoop {
	return &GameLoop{
		TickRate: tickRate,
		MaxFrame: 0.25,
		lastTime: time.Now(),
	}
}

// Step returns the fixed timestep in seconds
func (gl *GameLoop) Step() float64 {
	return 1.0 / gl.TickRate
}

// Measure returns the wall-clock seconds since the previous call
func (gl *GameLoop) Measure() float64 {
	now := time.Now()
	frameTime := now.Sub(gl.lastTime).Seconds()
	gl.lastTime = now
	return frameTime
}

// Advance accumulates frameTime and runs step zero or more times at the
// fixed timestep. It returns how many steps ran.
func (gl *GameLoop) Advance(frameTime float64, step func(dt float64)) int {
	// Cap frame time to avoid spiral of death
	if frameTime > gl.MaxFrame {
		frameTime = gl.MaxFrame
	}
	if frameTime < 0 {
		frameTime = 0
	}

	dt := gl.Step()
	gl.accumulator += frameTime

	n := 0
	for gl.accumulator >= dt {
		step(dt)
		gl.accumulator -= dt
		gl.ticks++
		n++
	}
	return n
}

// Alpha returns the interpolation fraction left in the accumulator
func (gl *GameLoop) Alpha() float64 {
	return gl.accumulator / gl.Step()
}

// Reset drops any accumulated time, e.g. when a run starts
func (gl *GameLoop) Reset() {
	gl.accumulator = 0
	gl.lastTime = time.Now()
}

// CurrentTick returns the number of steps run so far
func (gl *GameLoop) CurrentTick() uint64 {
	return gl.ticks
}
