//go:build sfx

package audio

import (
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

// speakerOutput plays through the system speaker.
type speakerOutput struct{}

func defaultOutput() output { return speakerOutput{} }

func (speakerOutput) Lock()   { speaker.Lock() }
func (speakerOutput) Unlock() { speaker.Unlock() }

func (speakerOutput) Open(rate beep.SampleRate, s beep.Streamer) error {
	if err := speaker.Init(rate, rate.N(50*time.Millisecond)); err != nil {
		return err
	}
	speaker.Play(s)
	return nil
}

func (speakerOutput) Close() { speaker.Close() }
