package core

import "fmt"

// State is the top-level game phase. The set of variants is closed; switch
// over it with a type switch.
type State interface {
	state()
	String() string
}

// MenuState is the title menu with the highlighted entry (0 play, 1 sound, 2 exit)
type MenuState struct {
	Selected int
}

// SoundMenuState adjusts music volume and returns to the menu entry it came from
type SoundMenuState struct {
	Volume      float64
	ReturnIndex int
}

type PlayingState struct{}

type VictoryState struct{}

type GameOverState struct{}

// ExitingState is terminal
type ExitingState struct{}

const MenuEntries = 3

func (MenuState) state()      {}
func (SoundMenuState) state() {}
func (PlayingState) state()   {}
func (VictoryState) state()   {}
func (GameOverState) state()  {}
func (ExitingState) state()   {}

func (s MenuState) String() string      { return fmt.Sprintf("menu(%d)", s.Selected) }
func (s SoundMenuState) String() string { return fmt.Sprintf("sound(%.2f)", s.Volume) }
func (PlayingState) String() string     { return "playing" }
func (VictoryState) String() string     { return "victory" }
func (GameOverState) String() string    { return "gameover" }
func (ExitingState) String() string     { return "exiting" }
