// Package input maps keyboard state to the game's logical actions.
package input

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/1siamBot/mazecaster/engine/core"
)

// Bindings lists the physical keys for each action
type Bindings [core.ActionCount][]ebiten.Key

// DefaultBindings is arrows or WASD, Shift to run, Enter or Space to confirm
func DefaultBindings() Bindings {
	var b Bindings
	b[core.ActUp] = []ebiten.Key{ebiten.KeyUp, ebiten.KeyW}
	b[core.ActDown] = []ebiten.Key{ebiten.KeyDown, ebiten.KeyS}
	b[core.ActLeft] = []ebiten.Key{ebiten.KeyLeft, ebiten.KeyA}
	b[core.ActRight] = []ebiten.Key{ebiten.KeyRight, ebiten.KeyD}
	b[core.ActRun] = []ebiten.Key{ebiten.KeyShiftLeft, ebiten.KeyShiftRight}
	b[core.ActConfirm] = []ebiten.Key{ebiten.KeyEnter, ebiten.KeyNumpadEnter, ebiten.KeySpace}
	return b
}

// Keyboard is a per-frame snapshot of the bound keys
type Keyboard struct {
	Bindings Bindings
	down     [core.ActionCount]bool
	pressed  [core.ActionCount]bool
}

func NewKeyboard(b Bindings) *Keyboard {
	return &Keyboard{Bindings: b}
}

// Update should be called once per frame before the session reads input
func (k *Keyboard) Update() {
	for a, keys := range k.Bindings {
		k.down[a], k.pressed[a] = false, false
		for _, key := range keys {
			if ebiten.IsKeyPressed(key) {
				k.down[a] = true
			}
			if inpututil.IsKeyJustPressed(key) {
				k.pressed[a] = true
			}
		}
	}
}

func (k *Keyboard) IsDown(a core.Action) bool      { return k.down[a] }
func (k *Keyboard) JustPressed(a core.Action) bool { return k.pressed[a] }

var _ core.Input = (*Keyboard)(nil)
