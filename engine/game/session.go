package game

import (
	"fmt"
	"math"
	"math/rand"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/1siamBot/mazecaster/engine/config"
	"github.com/1siamBot/mazecaster/engine/core"
	"github.com/1siamBot/mazecaster/engine/logger"
)

// VolumeRate is how fast held left/right changes the music volume, per second
const VolumeRate = 0.6

// Session owns one program run: the current phase, the active world and the
// collaborators the phases talk to.
type Session struct {
	State  core.State
	World  *core.World
	Loop   *core.GameLoop
	Events *core.EventBus
	Mixer  core.Mixer
	Volume float64
	RunID  string

	cfg config.Config
	rng *rand.Rand
	log *log.Entry
}

// NewSession starts in the main menu with the music playing
func NewSession(cfg config.Config, mixer core.Mixer, l log.FieldLogger) *Session {
	if mixer == nil {
		mixer = core.NopMixer{}
	}
	seed := cfg.Maze.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	loop := core.NewGameLoop(cfg.Sim.TickRate)
	loop.MaxFrame = cfg.Sim.MaxFrame

	s := &Session{
		State:  core.MenuState{},
		Loop:   loop,
		Events: core.NewEventBus(),
		Mixer:  mixer,
		Volume: cfg.Audio.MusicVolume,
		cfg:    cfg,
		rng:    rand.New(rand.NewSource(seed)),
		log:    logger.Component(l, "session").WithField("seed", seed),
	}
	s.wireSounds()
	s.Mixer.PlayLooped(core.TrackMusic, s.Volume)
	return s
}

func (s *Session) wireSounds() {
	sfx := map[core.EventType]core.SoundID{
		core.EvtPlayerHurt: core.SndHurt,
		core.EvtPickup:     core.SndPickup,
		core.EvtDoorOpened: core.SndDoor,
		core.EvtFootstep:   core.SndStep,
		core.EvtVictory:    core.SndVictory,
		core.EvtGameOver:   core.SndGameOver,
	}
	for evt, id := range sfx {
		id := id
		s.Events.On(evt, func(core.Event) {
			s.Mixer.PlayOneShot(id, s.cfg.Audio.SFXVolume)
		})
	}
}

// Done reports whether the program should quit
func (s *Session) Done() bool {
	_, ok := s.State.(core.ExitingState)
	return ok
}

// Frame handles one rendered frame: discrete transitions on key presses,
// held controls, zero or more fixed simulation steps, then event dispatch.
func (s *Session) Frame(in core.Input, frameDt float64) error {
	switch st := s.State.(type) {
	case core.MenuState:
		sel := st.Selected
		if in.JustPressed(core.ActDown) {
			sel = (sel + 1) % core.MenuEntries
		}
		if in.JustPressed(core.ActUp) {
			sel = (sel + core.MenuEntries - 1) % core.MenuEntries
		}
		if sel != st.Selected {
			s.Mixer.PlayOneShot(core.SndSelect, s.cfg.Audio.SFXVolume)
		}
		if !in.JustPressed(core.ActConfirm) {
			s.State = core.MenuState{Selected: sel}
			break
		}
		switch sel {
		case 0:
			if err := s.StartRun(); err != nil {
				return err
			}
		case 1:
			s.setState(core.SoundMenuState{Volume: s.Volume, ReturnIndex: sel})
		default:
			s.setState(core.ExitingState{})
		}

	case core.SoundMenuState:
		v := st.Volume
		if in.IsDown(core.ActLeft) {
			v -= VolumeRate * frameDt
		}
		if in.IsDown(core.ActRight) {
			v += VolumeRate * frameDt
		}
		v = math.Max(0, math.Min(1, v))
		if v != st.Volume {
			s.Volume = v
			s.Mixer.SetVolume(core.ChannelMusic, v)
		}
		if in.JustPressed(core.ActConfirm) {
			s.setState(core.MenuState{Selected: st.ReturnIndex})
		} else {
			s.State = core.SoundMenuState{Volume: v, ReturnIndex: st.ReturnIndex}
		}

	case core.PlayingState:
		s.World.Controls = core.SampleControls(in)
		s.Loop.Advance(frameDt, s.step)

	case core.VictoryState, core.GameOverState:
		if in.JustPressed(core.ActConfirm) {
			s.setState(core.MenuState{Selected: 0})
		}

	case core.ExitingState:

	default:
		panic(fmt.Sprintf("game: unhandled state %T", st))
	}

	s.Events.Dispatch()
	return nil
}

// StartRun builds a fresh level and enters play
func (s *Session) StartRun() error {
	s.RunID = logger.NewRunID()
	w, err := BuildLevel(s.cfg, s.rng, s.log.WithField("run", s.RunID))
	if err != nil {
		return fmt.Errorf("failed to start run: %w", err)
	}
	w.Events = s.Events
	s.World = w
	s.Loop.Reset()
	s.Events.Emit(core.Event{Type: core.EvtLevelStart, Payload: s.RunID})
	s.setState(core.PlayingState{})
	return nil
}

func (s *Session) step(dt float64) {
	if _, ok := s.State.(core.PlayingState); !ok {
		return
	}
	s.World.Tick(dt)
	switch s.World.Outcome {
	case core.OutcomeLost:
		s.setState(core.GameOverState{})
	case core.OutcomeWon:
		s.setState(core.VictoryState{})
	}
}

func (s *Session) setState(next core.State) {
	l := s.log.WithFields(log.Fields{"from": s.State, "to": next})
	if s.RunID != "" {
		l = l.WithField("run", s.RunID)
	}
	l.Info("state change")
	s.State = next
	s.Events.Emit(core.Event{Type: core.EvtStateChanged, Payload: next})
}
