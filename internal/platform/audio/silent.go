//go:build !sfx

package audio

import (
	"errors"
	"sync"

	"github.com/gopxl/beep"
)

// ErrNoSpeaker is returned by Init in builds without the sfx tag.
var ErrNoSpeaker = errors.New("audio: built without speaker support (rebuild with -tags sfx)")

// silentOutput never opens, so the player stays silent.
type silentOutput struct{ sync.Mutex }

func defaultOutput() output { return &silentOutput{} }

func (*silentOutput) Open(beep.SampleRate, beep.Streamer) error { return ErrNoSpeaker }

func (*silentOutput) Close() {}
