package audio

import (
	"encoding/binary"
	"math"
	"math/rand"
)

// SampleRate is the rate shared by the context and every generated clip
const SampleRate = 44100

// Wave is an oscillator shape
type Wave uint8

const (
	WaveSine Wave = iota
	WaveSquare
	WaveTriangle
	WaveNoise
)

// Note is one segment of a clip; a Freq of 0 is silence
type Note struct {
	Freq float64
	Dur  float64 // seconds
}

func oscillate(w Wave, phase float64, rng *rand.Rand) float64 {
	switch w {
	case WaveSquare:
		if math.Mod(phase, 1) < 0.5 {
			return 1
		}
		return -1
	case WaveTriangle:
		p := math.Mod(phase, 1)
		return 4*math.Abs(p-0.5) - 1
	case WaveNoise:
		return rng.Float64()*2 - 1
	default:
		return math.Sin(2 * math.Pi * phase)
	}
}

// Synth renders notes as 16-bit little-endian stereo PCM. Each note gets a
// short linear attack and release so segments do not click.
func Synth(notes []Note, w Wave, gain float64) []byte {
	rng := rand.New(rand.NewSource(1))
	var total int
	for _, n := range notes {
		total += int(n.Dur * SampleRate)
	}
	buf := make([]byte, 0, total*4)
	for _, n := range notes {
		count := int(n.Dur * SampleRate)
		ramp := min(count/2, SampleRate/200)
		for i := 0; i < count; i++ {
			var v float64
			if n.Freq > 0 {
				env := 1.0
				if i < ramp {
					env = float64(i) / float64(ramp)
				} else if i >= count-ramp {
					env = float64(count-i) / float64(ramp)
				}
				v = oscillate(w, n.Freq*float64(i)/SampleRate, rng) * env * gain
			}
			s := int16(math.Max(-1, math.Min(1, v)) * math.MaxInt16)
			buf = binary.LittleEndian.AppendUint16(buf, uint16(s))
			buf = binary.LittleEndian.AppendUint16(buf, uint16(s))
		}
	}
	return buf
}

// Drone renders a seamless loop of two detuned sines as 32-bit float
// stereo PCM, seconds long.
func Drone(seconds float64) []byte {
	count := int(seconds * SampleRate)
	// round both partials to whole cycles per loop
	f1 := math.Round(55*seconds) / seconds
	f2 := math.Round(82.5*seconds) / seconds
	buf := make([]byte, 0, count*8)
	for i := 0; i < count; i++ {
		t := float64(i) / SampleRate
		swell := 0.5 + 0.5*math.Sin(2*math.Pi*t/seconds)
		v := float32(0.25*math.Sin(2*math.Pi*f1*t) + 0.12*swell*math.Sin(2*math.Pi*f2*t))
		bits := math.Float32bits(v)
		buf = binary.LittleEndian.AppendUint32(buf, bits)
		buf = binary.LittleEndian.AppendUint32(buf, bits)
	}
	return buf
}
