package audio

import "github.com/1siamBot/mazecaster/engine/core"

// clips are the procedural sound effects, one per mixer clip id
var clips = map[core.SoundID]func() []byte{
	core.SndHurt: func() []byte {
		return Synth([]Note{{220, 0.08}, {160, 0.08}, {110, 0.12}}, WaveSquare, 0.5)
	},
	core.SndVictory: func() []byte {
		return Synth([]Note{{523, 0.12}, {659, 0.12}, {784, 0.12}, {1047, 0.35}}, WaveTriangle, 0.6)
	},
	core.SndGameOver: func() []byte {
		return Synth([]Note{{392, 0.2}, {330, 0.2}, {262, 0.2}, {196, 0.5}}, WaveSquare, 0.4)
	},
	core.SndPickup: func() []byte {
		return Synth([]Note{{880, 0.06}, {0, 0.02}, {1320, 0.1}}, WaveSine, 0.6)
	},
	core.SndDoor: func() []byte {
		return Synth([]Note{{1, 0.25}}, WaveNoise, 0.35)
	},
	core.SndStep: func() []byte {
		return Synth([]Note{{70, 0.05}}, WaveTriangle, 0.5)
	},
	core.SndSelect: func() []byte {
		return Synth([]Note{{660, 0.04}}, WaveSquare, 0.3)
	},
}
