// Package sound generates the engine drone as raw PCM so it can be streamed
// by any audio backend.
package sound

import (
	"encoding/binary"
	"math"
	"sync"
)

const (
	bytesPerFrame = 4 // 16-bit little-endian stereo
	maxAmplitude  = math.MaxInt16
)

// Oscillator is an endless 16-bit stereo PCM stream of a sawtooth blended
// with a sine an octave below. Pitch and volume may change while it plays.
type Oscillator struct {
	mu sync.Mutex

	sampleRate int
	phase      float64 // 0..1 through the current saw period
	subPhase   float64 // 0..1 through the sub-octave sine period

	freq   float64
	target float64
	volume float64
	blend  float64 // Share of the saw in the mix
}

// NewOscillator returns a silent oscillator at hz
func NewOscillator(sampleRate int, hz float64) *Oscillator {
	if sampleRate <= 0 {
		sampleRate = 44100
	}
	return &Oscillator{
		sampleRate: sampleRate,
		freq:       hz,
		target:     hz,
		blend:      0.6,
	}
}

// SetPitch glides to hz over the next buffer so changes do not click
func (o *Oscillator) SetPitch(hz float64) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.target = math.Max(0, hz)
}

// SetVolume clamps v to 0..1
func (o *Oscillator) SetVolume(v float64) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.volume = math.Max(0, math.Min(1, v))
}

func (o *Oscillator) Pitch() float64 {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.target
}

func (o *Oscillator) Volume() float64 {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.volume
}

// Read fills p with whole frames. It never returns io.EOF.
func (o *Oscillator) Read(p []byte) (int, error) {
	o.mu.Lock()
	defer o.mu.Unlock()

	frames := len(p) / bytesPerFrame
	if frames == 0 {
		return 0, nil
	}

	step := (o.target - o.freq) / float64(frames)
	rate := float64(o.sampleRate)
	for i := 0; i < frames; i++ {
		o.freq += step
		saw := 2*o.phase - 1
		sub := math.Sin(2 * math.Pi * o.subPhase)
		v := o.volume * (o.blend*saw + (1-o.blend)*sub)
		s := int16(v * maxAmplitude)

		binary.LittleEndian.PutUint16(p[i*bytesPerFrame:], uint16(s))
		binary.LittleEndian.PutUint16(p[i*bytesPerFrame+2:], uint16(s))

		o.phase = advance(o.phase, o.freq/rate)
		o.subPhase = advance(o.subPhase, o.freq/2/rate)
	}
	o.freq = o.target
	return frames * bytesPerFrame, nil
}

func advance(phase, delta float64) float64 {
	phase += delta
	return phase - math.Floor(phase)
}

// Blip renders a short decaying sine, used for UI clicks
func Blip(sampleRate int, hz float64, seconds float64, volume float64) []byte {
	frames := int(float64(sampleRate) * seconds)
	out := make([]byte, frames*bytesPerFrame)
	for i := 0; i < frames; i++ {
		t := float64(i) / float64(sampleRate)
		env := 1 - float64(i)/float64(frames)
		v := volume * env * env * math.Sin(2*math.Pi*hz*t)
		s := int16(v * maxAmplitude)
		binary.LittleEndian.PutUint16(out[i*bytesPerFrame:], uint16(s))
		binary.LittleEndian.PutUint16(out[i*bytesPerFrame+2:], uint16(s))
	}
	return out
}
