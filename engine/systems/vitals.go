package systems

import (
	"math"

	"github.com/1siamBot/mazecaster/engine/core"
)

// VitalsSystem regenerates stamina and runs down the player's timers
type VitalsSystem struct {
	StaminaRegen float64 // per second
}

func (s *VitalsSystem) Priority() int { return 5 }

func (s *VitalsSystem) Update(w *core.World, dt float64) {
	w.Player.UpdateTimers(dt, s.StaminaRegen)
	if w.Message.TTL > 0 {
		w.Message.TTL = math.Max(0, w.Message.TTL-dt)
	}
}
