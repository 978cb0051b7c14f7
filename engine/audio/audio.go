// Package audio plays the soundtrack and sound effects through ebiten's
// audio context.
package audio

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/audio/vorbis"
	log "github.com/sirupsen/logrus"

	"github.com/1siamBot/mazecaster/engine/core"
)

// MusicFile is looked up inside the audio directory
const MusicFile = "music.ogg"

const droneSeconds = 8

// Manager implements core.Mixer. It owns the process-wide audio context.
type Manager struct {
	ctx    *audio.Context
	music  *audio.Player
	sfx    map[core.SoundID]*audio.Player
	volume [2]float64 // per channel
	paused [2]bool
	log    *log.Entry
}

var (
	ctxOnce sync.Once
	ctx     *audio.Context
)

// sharedContext returns the single audio context ebiten allows per process
func sharedContext() *audio.Context {
	ctxOnce.Do(func() {
		ctx = audio.NewContext(SampleRate)
	})
	return ctx
}

// New builds the mixer. With a dir the music is dir/music.ogg, otherwise a
// generated drone loops.
func New(dir string, l *log.Entry) (*Manager, error) {
	m := &Manager{
		ctx:    sharedContext(),
		sfx:    make(map[core.SoundID]*audio.Player, len(clips)),
		volume: [2]float64{1, 1},
		log:    l,
	}

	if err := m.loadMusic(dir); err != nil {
		return nil, err
	}
	for id, gen := range clips {
		m.sfx[id] = m.ctx.NewPlayerFromBytes(gen())
	}
	l.WithField("clips", len(m.sfx)).Info("audio ready")
	return m, nil
}

func (m *Manager) loadMusic(dir string) error {
	var loop *audio.InfiniteLoop
	if dir == "" {
		pcm := Drone(droneSeconds)
		loop = audio.NewInfiniteLoopF32(bytes.NewReader(pcm), int64(len(pcm)))
		m.log.Debug("using generated music")
	} else {
		path := filepath.Join(dir, MusicFile)
		data, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("failed to read music %s: %w", path, err)
		}
		stream, err := vorbis.DecodeF32(bytes.NewReader(data))
		if err != nil {
			return fmt.Errorf("failed to decode music %s: %w", path, err)
		}
		loop = audio.NewInfiniteLoopF32(stream, stream.Length())
		m.log.WithField("file", path).Info("music loaded")
	}

	p, err := m.ctx.NewPlayerF32(loop)
	if err != nil {
		return fmt.Errorf("failed to create music player: %w", err)
	}
	m.music = p
	return nil
}

// PlayLooped starts the music track from wherever it was
func (m *Manager) PlayLooped(track core.SoundID, volume float64) {
	if track != core.TrackMusic {
		m.log.WithField("track", track).Warn("unknown track")
		return
	}
	m.volume[core.ChannelMusic] = ClampVolume(volume)
	m.music.SetVolume(m.volume[core.ChannelMusic])
	if !m.paused[core.ChannelMusic] {
		m.music.Play()
	}
}

// PlayOneShot restarts clip from the beginning
func (m *Manager) PlayOneShot(clip core.SoundID, volume float64) {
	p, ok := m.sfx[clip]
	if !ok {
		m.log.WithField("clip", clip).Warn("unknown clip")
		return
	}
	if m.paused[core.ChannelSFX] {
		return
	}
	p.SetVolume(ClampVolume(volume) * m.volume[core.ChannelSFX])
	if err := p.Rewind(); err != nil {
		m.log.WithError(err).WithField("clip", clip).Warn("rewind failed")
		return
	}
	p.Play()
}

// SetVolume sets the channel level. For SFX it scales each clip's own volume.
func (m *Manager) SetVolume(ch core.Channel, volume float64) {
	m.volume[ch] = ClampVolume(volume)
	if ch == core.ChannelMusic {
		m.music.SetVolume(m.volume[ch])
	}
}

func (m *Manager) Pause(ch core.Channel) {
	m.paused[ch] = true
	for _, p := range m.players(ch) {
		p.Pause()
	}
}

func (m *Manager) Resume(ch core.Channel) {
	m.paused[ch] = false
	if ch == core.ChannelMusic {
		m.music.Play()
	}
}

// Stop pauses the channel and rewinds its players
func (m *Manager) Stop(ch core.Channel) {
	for _, p := range m.players(ch) {
		p.Pause()
		if err := p.Rewind(); err != nil {
			m.log.WithError(err).Debug("rewind failed")
		}
	}
}

func (m *Manager) players(ch core.Channel) []*audio.Player {
	if ch == core.ChannelMusic {
		return []*audio.Player{m.music}
	}
	out := make([]*audio.Player, 0, len(m.sfx))
	for _, p := range m.sfx {
		out = append(out, p)
	}
	return out
}

// ClampVolume limits v to [0,1]
func ClampVolume(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

var _ core.Mixer = (*Manager)(nil)
