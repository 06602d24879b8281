// Package audio plays sounds from the asset library through the system
// speaker.
package audio

import (
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

const (
	sampleRate      = beep.SampleRate(48000)
	resampleQuality = 4
)

// Source resolves sound ids. *assets.Library satisfies it.
type Source interface {
	Sound(id string) (*beep.Buffer, error)
}

// Player mixes one-shot sounds into a single speaker stream.
type Player struct {
	mu          sync.Mutex
	source      Source
	mixer       *beep.Mixer
	initialized bool

	// startSpeaker opens the output device and starts streaming the mixer.
	startSpeaker func(m *beep.Mixer) error
}

// NewPlayer creates a player reading sounds from source.
func NewPlayer(source Source) *Player {
	return &Player{
		source:       source,
		mixer:        &beep.Mixer{},
		startSpeaker: openSpeaker,
	}
}

func openSpeaker(m *beep.Mixer) error {
	if err := speaker.Init(sampleRate, sampleRate.N(time.Millisecond*100)); err != nil {
		return err
	}
	speaker.Play(m)
	return nil
}

// Initialize opens the speaker. Calling it again is a no-op.
func (p *Player) Initialize() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.initialized {
		return nil
	}
	if err := p.startSpeaker(p.mixer); err != nil {
		return fmt.Errorf("failed to open speaker: %w", err)
	}
	p.initialized = true
	return nil
}

// Play starts sound id. Unknown ids are an error. Before Initialize,
// or after it failed, the sound is resolved and dropped.
func (p *Player) Play(id string) error {
	buf, err := p.source.Sound(id)
	if err != nil {
		return err
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		slog.Debug("audio not initialized, dropping sound", "sound", id)
		return nil
	}

	var s beep.Streamer = buf.Streamer(0, buf.Len())
	if from := buf.Format().SampleRate; from != sampleRate {
		s = beep.Resample(resampleQuality, from, sampleRate, s)
	}
	speaker.Lock()
	p.mixer.Add(s)
	speaker.Unlock()
	return nil
}

// Playing returns the number of sounds still streaming.
func (p *Player) Playing() int {
	speaker.Lock()
	defer speaker.Unlock()
	return p.mixer.Len()
}

// Cleanup stops every sound. The speaker stays open.
func (p *Player) Cleanup() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}
	speaker.Lock()
	p.mixer.Clear()
	speaker.Unlock()
	p.initialized = false
}
