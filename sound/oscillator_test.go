package sound

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func samples(p []byte) (left, right []int16) {
	for i := 0; i+3 < len(p); i += bytesPerFrame {
		left = append(left, int16(binary.LittleEndian.Uint16(p[i:])))
		right = append(right, int16(binary.LittleEndian.Uint16(p[i+2:])))
	}
	return left, right
}

func TestOscillator_SilentUntilVolumeSet(t *testing.T) {
	o := NewOscillator(44100, 110)
	buf := make([]byte, 4096)

	n, err := o.Read(buf)
	require.NoError(t, err)
	assert.Equal(t, len(buf), n)
	left, _ := samples(buf)
	for _, s := range left {
		assert.Zero(t, s)
	}
}

func TestOscillator_ReadsWholeFrames(t *testing.T) {
	o := NewOscillator(44100, 110)
	n, err := o.Read(make([]byte, 10))
	require.NoError(t, err)
	assert.Equal(t, 8, n)

	n, err = o.Read(make([]byte, 3))
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestOscillator_StereoAndBounded(t *testing.T) {
	o := NewOscillator(44100, 220)
	o.SetVolume(2)
	assert.Equal(t, 1.0, o.Volume())

	buf := make([]byte, 44100*bytesPerFrame/10)
	_, err := o.Read(buf)
	require.NoError(t, err)

	left, right := samples(buf)
	assert.Equal(t, left, right)
	var peak int16
	for _, s := range left {
		if s > peak {
			peak = s
		}
	}
	assert.Greater(t, peak, int16(maxAmplitude/4))
}

// The saw wraps once per period, so counting its downward jumps measures pitch.
func countWraps(left []int16) int {
	wraps := 0
	for i := 1; i < len(left); i++ {
		if int(left[i])-int(left[i-1]) < -maxAmplitude/2 {
			wraps++
		}
	}
	return wraps
}

func TestOscillator_PitchFollowsSetPitch(t *testing.T) {
	const rate = 8000
	o := NewOscillator(rate, 100)
	o.SetVolume(1)

	second := make([]byte, rate*bytesPerFrame)
	_, _ = o.Read(second)
	left, _ := samples(second)
	assert.InDelta(t, 100, countWraps(left), 2)

	o.SetPitch(200)
	assert.Equal(t, 200.0, o.Pitch())
	_, _ = o.Read(second) // glide
	_, _ = o.Read(second)
	left, _ = samples(second)
	assert.InDelta(t, 200, countWraps(left), 2)
}

func TestOscillator_NegativePitchClamped(t *testing.T) {
	o := NewOscillator(0, 100)
	o.SetPitch(-5)
	assert.Equal(t, 0.0, o.Pitch())
}

func TestBlip(t *testing.T) {
	b := Blip(8000, 880, 0.05, 0.5)
	assert.Len(t, b, 400*bytesPerFrame)

	left, right := samples(b)
	assert.Equal(t, left, right)
	assert.Zero(t, left[0])
	// decays to near silence
	assert.Less(t, abs(left[len(left)-1]), int16(100))
}

func abs(v int16) int16 {
	if v < 0 {
		return -v
	}
	return v
}
