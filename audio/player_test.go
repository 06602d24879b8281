package audio

import (
	"errors"
	"testing"

	"github.com/gopxl/beep"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errNoSound = errors.New("no such sound")

type mapSource map[string]*beep.Buffer

func (m mapSource) Sound(id string) (*beep.Buffer, error) {
	if b, ok := m[id]; ok {
		return b, nil
	}
	return nil, errNoSound
}

func tone(rate beep.SampleRate, n int) *beep.Buffer {
	buf := beep.NewBuffer(beep.Format{SampleRate: rate, NumChannels: 2, Precision: 2})
	samples := make([][2]float64, n)
	for i := range samples {
		samples[i] = [2]float64{0.5, -0.5}
	}
	buf.Append(&sliceStreamer{samples: samples})
	return buf
}

type sliceStreamer struct {
	samples [][2]float64
}

func (s *sliceStreamer) Stream(out [][2]float64) (int, bool) {
	if len(s.samples) == 0 {
		return 0, false
	}
	n := copy(out, s.samples)
	s.samples = s.samples[n:]
	return n, true
}

func (s *sliceStreamer) Err() error { return nil }

func newTestPlayer(src Source) (*Player, *int) {
	p := NewPlayer(src)
	opened := 0
	p.startSpeaker = func(*beep.Mixer) error {
		opened++
		return nil
	}
	return p, &opened
}

func TestInitializeOnce(t *testing.T) {
	p, opened := newTestPlayer(mapSource{})
	require.NoError(t, p.Initialize())
	require.NoError(t, p.Initialize())
	assert.Equal(t, 1, *opened)
}

func TestInitializeFailure(t *testing.T) {
	p := NewPlayer(mapSource{"click": tone(sampleRate, 10)})
	p.startSpeaker = func(*beep.Mixer) error { return errors.New("no device") }

	require.Error(t, p.Initialize())
	// sounds still resolve but are dropped
	require.NoError(t, p.Play("click"))
	assert.Zero(t, p.Playing())
}

func TestPlay(t *testing.T) {
	src := mapSource{
		"click": tone(sampleRate, 100),
		"slow":  tone(22050, 100),
	}
	p, _ := newTestPlayer(src)
	require.NoError(t, p.Initialize())

	require.NoError(t, p.Play("click"))
	require.NoError(t, p.Play("slow"))
	assert.Equal(t, 2, p.Playing())

	require.ErrorIs(t, p.Play("missing"), errNoSound)
	assert.Equal(t, 2, p.Playing())

	p.Cleanup()
	assert.Zero(t, p.Playing())
}

func TestPlayStreamsBufferedSamples(t *testing.T) {
	p, _ := newTestPlayer(mapSource{"click": tone(sampleRate, 8)})
	require.NoError(t, p.Initialize())
	require.NoError(t, p.Play("click"))

	out := make([][2]float64, 8)
	n, ok := p.mixer.Stream(out)
	require.True(t, ok)
	assert.Equal(t, 8, n)
	assert.InDelta(t, 0.5, out[0][0], 0.01)
	assert.InDelta(t, -0.5, out[0][1], 0.01)
}
