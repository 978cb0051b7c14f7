package systems

import (
	"math"
	"testing"

	"github.com/1siamBot/mazecaster/engine/core"
	"github.com/1siamBot/mazecaster/engine/maze"
)

const cell = 10.0

// player at (1,1) facing east down a corridor that ends in a door guarding the goal
func doorWorld() *core.World {
	g := maze.FromRows(
		"+-------+",
		"|    Dg |",
		"+-------+",
	)
	return core.NewWorld(g, cell, maze.Cell{X: 1, Y: 1}, maze.Cell{X: 6, Y: 1}, math.Pi/3)
}

func events(w *core.World, t core.EventType) *int {
	n := new(int)
	w.Events.On(t, func(core.Event) { *n++ })
	return n
}

func TestMoveStopsAtWall(t *testing.T) {
	w := doorWorld()
	w.Player.Angle = math.Pi // west
	if !Move(w, -30, 0) {
		t.Fatal("player should move a little before the wall")
	}
	if w.Player.X < cell || w.Player.X >= 15 {
		t.Errorf("x = %v, want inside cell 1", w.Player.X)
	}
	if w.PlayerCell() != (maze.Cell{X: 1, Y: 1}) {
		t.Errorf("walked into the wall: %v", w.PlayerCell())
	}
}

func TestMoveDoorWithoutKeyBlocks(t *testing.T) {
	w := doorWorld()
	Move(w, 60, 0)
	if got := w.PlayerCell(); got != (maze.Cell{X: 4, Y: 1}) {
		t.Errorf("player cell = %v, want stopped at (4,1)", got)
	}
	if w.Maze.At(5, 1) != maze.Door {
		t.Error("door opened without a key")
	}
}

func TestMoveDoorWithKeyOpensAndUnlocks(t *testing.T) {
	w := doorWorld()
	opened := events(w, core.EvtDoorOpened)
	w.Player.HasKey = true
	Move(w, 60, 0)
	w.Events.Dispatch()

	if w.Maze.At(5, 1) != maze.Open {
		t.Fatal("door should be open")
	}
	if w.Player.HasKey {
		t.Error("key should be consumed")
	}
	if !w.GoalUnlocked {
		t.Error("door next to the goal should unlock it")
	}
	if *opened != 1 {
		t.Errorf("door events = %d", *opened)
	}
	// the rest of the move carries the player through the door up to the far wall
	if got := w.PlayerCell(); got != (maze.Cell{X: 7, Y: 1}) {
		t.Errorf("player cell = %v", got)
	}
}

func TestMoveOpensDoorAndStepsThrough(t *testing.T) {
	w := doorWorld()
	w.Player.HasKey = true
	w.Player.X = 49
	if !Move(w, 6, 0) {
		t.Fatal("player should move after opening the door")
	}
	// three sub-steps of 2: the first opens the door, the other two walk in
	if got := w.PlayerCell(); got != (maze.Cell{X: 5, Y: 1}) {
		t.Errorf("player cell = %v, want (5,1)", got)
	}
	if math.Abs(w.Player.X-53) > 1e-9 {
		t.Errorf("x = %v, want 53", w.Player.X)
	}
}

func TestMovementSystemTurnsAndRuns(t *testing.T) {
	w := doorWorld()
	s := NewMovementSystem(DefaultMovementTuning())
	steps := events(w, core.EvtFootstep)

	w.Controls = core.Controls{TurnRight: true}
	s.Update(w, 0.05)
	if math.Abs(w.Player.Angle-math.Pi*0.05) > 1e-9 {
		t.Errorf("angle = %v", w.Player.Angle)
	}

	w.Player.Angle = 0
	w.Controls = core.Controls{Forward: true, Run: true}
	x := w.Player.X
	s.Update(w, 0.02)
	w.Events.Dispatch()
	if got := w.Player.X - x; math.Abs(got-80*1.6*0.02) > 1e-9 {
		t.Errorf("ran %v units", got)
	}
	if math.Abs(w.Player.Stamina-(100-60*0.02)) > 1e-9 {
		t.Errorf("stamina = %v", w.Player.Stamina)
	}
	if *steps != 1 || w.Player.StepTimer != 0.3 {
		t.Errorf("footsteps = %d timer = %v", *steps, w.Player.StepTimer)
	}
}

func TestMovementSystemTiredAndClamped(t *testing.T) {
	w := doorWorld()
	s := NewMovementSystem(DefaultMovementTuning())
	w.Player.Stamina = 4
	w.Controls = core.Controls{Forward: true, Run: true}
	x := w.Player.X
	s.Update(w, 1) // clamped to 0.05
	if got := w.Player.X - x; math.Abs(got-80*0.05) > 1e-9 {
		t.Errorf("walk below the run threshold moved %v", got)
	}
	if w.Player.Stamina != 4 {
		t.Error("cannot run below the threshold, stamina should not drain")
	}
}

func TestMovementSystemTiredWalkKeepsFullSpeed(t *testing.T) {
	w := doorWorld()
	s := NewMovementSystem(DefaultMovementTuning())
	w.Player.Stamina = 8
	w.Controls = core.Controls{Forward: true}
	x := w.Player.X
	s.Update(w, 1.0/60)
	if got := w.Player.X - x; math.Abs(got-80.0/60) > 1e-9 {
		t.Errorf("tired walk moved %v, want %v", got, 80.0/60)
	}
}

func TestMovementSystemRunDrainsIntoTiredSpeed(t *testing.T) {
	w := doorWorld()
	s := NewMovementSystem(DefaultMovementTuning())
	w.Player.Stamina = 12
	w.Controls = core.Controls{Forward: true, Run: true}
	x := w.Player.X
	s.Update(w, 0.05) // drains 3, leaving 9
	if math.Abs(w.Player.Stamina-9) > 1e-9 {
		t.Fatalf("stamina = %v, want 9", w.Player.Stamina)
	}
	if got := w.Player.X - x; math.Abs(got-80*1.6*0.5*0.05) > 1e-9 {
		t.Errorf("tired run moved %v, want %v", got, 80*1.6*0.5*0.05)
	}
}

func TestPickupSystem(t *testing.T) {
	w := doorWorld()
	w.Player.Health = 60
	here := maze.Cell{X: 1, Y: 1}
	w.Pickups = []*core.Pickup{
		{Kind: core.PickupMedkit, Cell: here},
		{Kind: core.PickupKey, Cell: here},
		{Kind: core.PickupBinoculars, Cell: here},
		{Kind: core.PickupMedkit, Cell: maze.Cell{X: 3, Y: 1}},
	}
	picked := events(w, core.EvtPickup)
	s := &PickupSystem{MedkitAmount: 25, BinocularSeconds: 60}
	s.Update(w, 0)
	s.Update(w, 0)
	w.Events.Dispatch()

	if w.Player.Health != 85 || !w.Player.HasKey || w.Player.BinocularTimer != 60 {
		t.Errorf("player = %+v", w.Player)
	}
	if *picked != 3 {
		t.Errorf("pickup events = %d, want 3", *picked)
	}
	if w.Pickups[3].Taken {
		t.Error("pickup in another cell was taken")
	}
}

func TestRulesGoalWithoutKey(t *testing.T) {
	w := doorWorld()
	w.Player.X, w.Player.Y = w.CellCenter(w.Goal)
	need := events(w, core.EvtNeedKey)
	(&RulesSystem{}).Update(w, 0)
	w.Events.Dispatch()

	if w.Outcome != core.OutcomeNone {
		t.Errorf("outcome = %v, want none", w.Outcome)
	}
	if *need != 1 || w.Message.Text == "" {
		t.Errorf("need-key events = %d, message %q", *need, w.Message.Text)
	}
}

func TestRulesOutcomes(t *testing.T) {
	tests := []struct {
		name     string
		setup    func(w *core.World)
		want     core.Outcome
	}{
		{"unlocked goal wins", func(w *core.World) {
			w.Player.X, w.Player.Y = w.CellCenter(w.Goal)
			w.GoalUnlocked = true
		}, core.OutcomeWon},
		{"key in hand wins", func(w *core.World) {
			w.Player.X, w.Player.Y = w.CellCenter(w.Goal)
			w.Player.HasKey = true
		}, core.OutcomeWon},
		{"death beats the goal", func(w *core.World) {
			w.Player.X, w.Player.Y = w.CellCenter(w.Goal)
			w.GoalUnlocked = true
			w.Player.Health = 0
		}, core.OutcomeLost},
		{"alive elsewhere", func(w *core.World) {}, core.OutcomeNone},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := doorWorld()
			tt.setup(w)
			(&RulesSystem{}).Update(w, 0)
			if w.Outcome != tt.want {
				t.Errorf("outcome = %v, want %v", w.Outcome, tt.want)
			}
		})
	}
}

func TestVitalsAndFog(t *testing.T) {
	w := doorWorld()
	w.Message = core.Message{Text: "hi", TTL: 0.01}
	w.Player.Stamina = 50
	(&VitalsSystem{StaminaRegen: 12}).Update(w, 0.5)
	if w.Player.Stamina != 56 || w.Message.Active() {
		t.Errorf("stamina %v message %+v", w.Player.Stamina, w.Message)
	}

	(&FogSystem{Radius: 2}).Update(w, 0)
	if !w.Fog.Revealed(1, 1) || !w.Fog.Revealed(3, 1) || w.Fog.Revealed(4, 1) {
		t.Error("fog reveal around the player is wrong")
	}
}
