package systems

import (
	"github.com/1siamBot/mazecaster/engine/core"
)

// RulesSystem decides whether the run is over. Death is checked first.
type RulesSystem struct{}

func (s *RulesSystem) Priority() int { return 40 }

func (s *RulesSystem) Update(w *core.World, _ float64) {
	if w.Player.Dead() {
		w.Outcome = core.OutcomeLost
		w.Events.Emit(core.Event{Type: core.EvtGameOver, Tick: w.TickCount})
		return
	}
	if w.PlayerCell() != w.Goal {
		return
	}
	if w.Player.HasKey || w.GoalUnlocked {
		w.Outcome = core.OutcomeWon
		w.Events.Emit(core.Event{Type: core.EvtVictory, Tick: w.TickCount})
		return
	}
	w.Notify(core.EvtNeedKey, "You need the key to get out", 2.5)
}
