package ai

import (
	"math"
	"testing"

	"github.com/1siamBot/mazecaster/engine/core"
	"github.com/1siamBot/mazecaster/engine/maze"
	"github.com/1siamBot/mazecaster/engine/pathfind"
)

func corridorWorld() *core.World {
	g := maze.FromRows(
		"+-------+",
		"|       |",
		"+-------+",
	)
	return core.NewWorld(g, 10, maze.Cell{X: 1, Y: 1}, maze.Cell{X: 7, Y: 1}, math.Pi/3)
}

func TestThinkRepathsAndMovesTowardPlayer(t *testing.T) {
	w := corridorWorld()
	e := core.NewEnemy("mimic", maze.Cell{X: 6, Y: 1}, w.CellSize, 18)
	ng := pathfind.NewNavGrid(w.Maze)

	startX := e.X
	Think(e, w, ng, DefaultTuning(), 0.1)

	if len(e.Path) != 6 {
		t.Fatalf("path = %v, want 6 cells from (6,1) to (1,1)", e.Path)
	}
	if e.PathTimer != 1.0 {
		t.Errorf("path timer = %v", e.PathTimer)
	}
	if got := startX - e.X; math.Abs(got-1.8) > 1e-9 {
		t.Errorf("moved %v units, want 1.8", got)
	}
}

func TestThinkKeepsPathUntilTimerExpires(t *testing.T) {
	w := corridorWorld()
	e := core.NewEnemy("mimic", maze.Cell{X: 6, Y: 1}, w.CellSize, 18)
	ng := pathfind.NewNavGrid(w.Maze)
	tun := DefaultTuning()

	Think(e, w, ng, tun, 0.1)
	first := e.Path
	w.Player.X = 25 // player moves to (2,1)
	Think(e, w, ng, tun, 0.1)
	if &e.Path[0] != &first[0] {
		t.Error("path was recomputed before the timer expired")
	}
	for i := 0; i < 10; i++ {
		Think(e, w, ng, tun, 0.1)
	}
	if last := e.Path[len(e.Path)-1]; last != (maze.Cell{X: 2, Y: 1}) {
		t.Errorf("after repath target = %v, want (2,1)", last)
	}
}

func TestThinkAttackResetsEnemy(t *testing.T) {
	w := corridorWorld()
	e := core.NewEnemy("mimic", maze.Cell{X: 6, Y: 1}, w.CellSize, 18)
	ng := pathfind.NewNavGrid(w.Maze)
	tun := DefaultTuning()

	e.X, e.Y = w.Player.X+2, w.Player.Y
	if !Think(e, w, ng, tun, 0.01) {
		t.Fatal("expected an attack")
	}
	if e.Cell(w.CellSize) != e.Spawn || e.Path != nil || e.Cooldown != tun.AttackCooldown {
		t.Errorf("enemy not reset: %+v", e)
	}

	e.X, e.Y = w.Player.X+2, w.Player.Y
	if Think(e, w, ng, tun, 0.01) {
		t.Error("attack should respect the cooldown")
	}
}

func TestAISystemDamagesPlayer(t *testing.T) {
	w := corridorWorld()
	e := core.NewEnemy("mimic", maze.Cell{X: 1, Y: 1}, w.CellSize, 18)
	w.Enemies = append(w.Enemies, e)

	hurt := 0
	w.Events.On(core.EvtPlayerHurt, func(core.Event) { hurt++ })
	NewAISystem(DefaultTuning()).Update(w, 1.0/60)
	w.Events.Dispatch()

	if w.Player.Health != 50 {
		t.Errorf("health = %v, want 50", w.Player.Health)
	}
	if hurt != 1 {
		t.Errorf("hurt events = %d", hurt)
	}
}

func TestThinkUnreachablePlayer(t *testing.T) {
	g := maze.FromRows(
		"+---+",
		"| | |",
		"+---+",
	)
	w := core.NewWorld(g, 10, maze.Cell{X: 1, Y: 1}, maze.Cell{X: 3, Y: 1}, 1)
	e := core.NewEnemy("mimic", maze.Cell{X: 3, Y: 1}, w.CellSize, 18)
	x, y := e.X, e.Y
	Think(e, w, pathfind.NewNavGrid(g), DefaultTuning(), 0.1)
	if e.X != x || e.Y != y || e.HasWaypoint() {
		t.Errorf("enemy with no path moved to (%v, %v)", e.X, e.Y)
	}
}
