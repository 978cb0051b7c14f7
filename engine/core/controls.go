package core

// Action is a logical input, independent of the physical key bound to it
type Action uint8

const (
	ActUp Action = iota
	ActDown
	ActLeft
	ActRight
	ActRun
	ActConfirm
	actionCount
)

// ActionCount is the number of logical actions
const ActionCount = int(actionCount)

// Input exposes level (held) and edge (pressed this frame) state per action
type Input interface {
	IsDown(a Action) bool
	JustPressed(a Action) bool
}

// Controls is the held movement state sampled for the current frame
type Controls struct {
	Forward, Back bool
	TurnLeft      bool
	TurnRight     bool
	Run           bool
}

// SampleControls reads the movement actions from in
func SampleControls(in Input) Controls {
	return Controls{
		Forward:   in.IsDown(ActUp),
		Back:      in.IsDown(ActDown),
		TurnLeft:  in.IsDown(ActLeft),
		TurnRight: in.IsDown(ActRight),
		Run:       in.IsDown(ActRun),
	}
}
