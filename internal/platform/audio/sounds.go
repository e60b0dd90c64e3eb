package audio

import (
	"time"

	"github.com/gopxl/beep"

	"github.com/vovakirdan/tui-runner/internal/core"
)

// Sound is a sound effect.
type Sound int

const (
	SoundNone Sound = iota
	SoundCoin
	SoundPowerup
	SoundPowerdown
	SoundCrash
	SoundShield
	SoundLand
	SoundBest
)

func (s Sound) String() string {
	switch s {
	case SoundCoin:
		return "coin"
	case SoundPowerup:
		return "powerup"
	case SoundPowerdown:
		return "powerdown"
	case SoundCrash:
		return "crash"
	case SoundShield:
		return "shield"
	case SoundLand:
		return "land"
	case SoundBest:
		return "best"
	default:
		return "none"
	}
}

// SoundFor picks the effect for a run event, SoundNone if it is silent.
func SoundFor(ev core.Event) Sound {
	switch ev.Kind {
	case core.EventCoinCollected:
		return SoundCoin
	case core.EventPowerupActivated:
		return SoundPowerup
	case core.EventPowerupExpired:
		return SoundPowerdown
	case core.EventCrash:
		return SoundCrash
	case core.EventShieldBlocked:
		return SoundShield
	case core.EventLanded:
		return SoundLand
	case core.EventNewBest:
		return SoundBest
	default:
		return SoundNone
	}
}

// Build synthesises s at rate. It returns nil for SoundNone.
func Build(s Sound, rate beep.SampleRate) beep.Streamer {
	ms := time.Millisecond
	switch s {
	case SoundCoin:
		return beep.Seq(
			note(1318.5, 50*ms, WaveSquare, rate),
			note(1760, 90*ms, WaveSquare, rate),
		)
	case SoundPowerup:
		return arpeggio(rate, 60*ms, WaveSquare, 523.3, 659.3, 784, 1046.5)
	case SoundPowerdown:
		return arpeggio(rate, 60*ms, WaveSine, 784, 659.3, 523.3)
	case SoundCrash:
		return beep.Mix(
			gain(Shape(Tone(0, 300*ms, WaveNoise, rate), 300*ms, 2*ms, 250*ms, rate), 0.5),
			gain(Shape(Tone(90, 300*ms, WaveSaw, rate), 300*ms, 2*ms, 200*ms, rate), 0.45),
		)
	case SoundShield:
		return beep.Seq(
			note(440, 40*ms, WaveSquare, rate),
			note(330, 80*ms, WaveSquare, rate),
		)
	case SoundLand:
		return gain(note(110, 60*ms, WaveSine, rate), 0.7)
	case SoundBest:
		return arpeggio(rate, 90*ms, WaveSine, 784, 988, 1175, 1568)
	default:
		return nil
	}
}

func arpeggio(rate beep.SampleRate, step time.Duration, wave Wave, freqs ...float64) beep.Streamer {
	notes := make([]beep.Streamer, len(freqs))
	for i, f := range freqs {
		notes[i] = note(f, step, wave, rate)
	}
	return beep.Seq(notes...)
}
