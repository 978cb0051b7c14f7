package systems

import (
	"fmt"

	"github.com/1siamBot/mazecaster/engine/core"
)

// PickupSystem collects whatever lies in the player's cell
type PickupSystem struct {
	MedkitAmount     float64
	BinocularSeconds float64
}

func (s *PickupSystem) Priority() int { return 30 }

func (s *PickupSystem) Update(w *core.World, _ float64) {
	cell := w.PlayerCell()
	for _, pk := range w.Pickups {
		if pk.Taken || pk.Cell != cell {
			continue
		}
		pk.Taken = true
		switch pk.Kind {
		case core.PickupMedkit:
			w.Player.PickupMedkit(s.MedkitAmount)
			w.Notify(core.EvtPickup, "Medkit collected", 2)
		case core.PickupKey:
			w.Player.PickupKey()
			w.Notify(core.EvtPickup, "You found the key", 3)
		case core.PickupBinoculars:
			w.Player.PickupBinoculars(s.BinocularSeconds)
			w.Notify(core.EvtPickup, fmt.Sprintf("Binoculars: map revealed for %.0fs", s.BinocularSeconds), 3)
		}
	}
}
