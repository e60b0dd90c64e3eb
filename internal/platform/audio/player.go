// Package audio plays synthesised sound effects for run events through
// the system speaker. The speaker is only linked into builds tagged sfx;
// other builds get a player that stays silent.
package audio

import (
	"sync"

	"github.com/charmbracelet/log"
	"github.com/gopxl/beep"

	"github.com/vovakirdan/tui-runner/internal/core"
)

const sampleRate = beep.SampleRate(44100)

// maxVoices caps how many effects play at once; extra ones are dropped.
const maxVoices = 8

// output is the device the mixer plays through. Lock guards the mixer
// against the device's playback goroutine.
type output interface {
	sync.Locker
	Open(rate beep.SampleRate, s beep.Streamer) error
	Close()
}

// Player turns run events into sound. Until Init succeeds it is silent and
// every call is a no-op.
type Player struct {
	mu      sync.Mutex
	out     output
	mixer   *beep.Mixer
	volume  float64
	enabled bool
	logger  *log.Logger
}

// New creates a silent player. volume is linear, 1 is full scale.
func New(logger *log.Logger, volume float64) *Player {
	if logger == nil {
		logger = log.Default()
	}
	return &Player{
		out:    defaultOutput(),
		mixer:  &beep.Mixer{},
		volume: volume,
		logger: logger,
	}
}

// Init opens the speaker. On failure the player stays silent and the error
// is returned for the caller to report.
func (p *Player) Init() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.enabled {
		return nil
	}
	if err := p.out.Open(sampleRate, p.mixer); err != nil {
		p.logger.Warn("sound disabled", "error", err)
		return err
	}
	p.enabled = true
	p.logger.Debug("speaker ready", "rate", int(sampleRate))
	return nil
}

// Enabled reports whether sound is playing.
func (p *Player) Enabled() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.enabled
}

// Observe plays the sound for each event.
func (p *Player) Observe(events []core.Event) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.enabled {
		return
	}
	for _, ev := range events {
		s := Build(SoundFor(ev), sampleRate)
		if s == nil {
			continue
		}
		p.out.Lock()
		if p.mixer.Len() < maxVoices {
			p.mixer.Add(gain(s, p.volume))
		}
		p.out.Unlock()
	}
}

// voices returns the number of effects still playing.
func (p *Player) voices() int {
	p.out.Lock()
	defer p.out.Unlock()
	return p.mixer.Len()
}

// Close stops playback and releases the speaker.
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.enabled {
		return
	}
	p.out.Lock()
	p.mixer.Clear()
	p.out.Unlock()
	p.out.Close()
	p.enabled = false
}
