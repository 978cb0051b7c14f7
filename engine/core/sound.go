package core

// SoundID names a clip or track known to the mixer
type SoundID string

const (
	TrackMusic  SoundID = "music"
	SndHurt     SoundID = "hurt"
	SndVictory  SoundID = "victory"
	SndGameOver SoundID = "gameover"
	SndPickup   SoundID = "pickup"
	SndDoor     SoundID = "door"
	SndStep     SoundID = "step"
	SndSelect   SoundID = "select"
)

// Channel groups sounds for volume control
type Channel uint8

const (
	ChannelMusic Channel = iota
	ChannelSFX
)

// Mixer accepts fire-and-forget audio commands
type Mixer interface {
	PlayLooped(track SoundID, volume float64)
	PlayOneShot(clip SoundID, volume float64)
	SetVolume(ch Channel, volume float64)
	Pause(ch Channel)
	Resume(ch Channel)
	Stop(ch Channel)
}

// NopMixer discards every command
type NopMixer struct{}

func (NopMixer) PlayLooped(SoundID, float64) {}
func (NopMixer) PlayOneShot(SoundID, float64) {}
func (NopMixer) SetVolume(Channel, float64)   {}
func (NopMixer) Pause(Channel)                {}
func (NopMixer) Resume(Channel)               {}
func (NopMixer) Stop(Channel)                 {}
