//go:build !sfx

package audio

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultPlayerWithoutSpeaker(t *testing.T) {
	p := New(nil, 0.6)
	err := p.Init()
	assert.True(t, errors.Is(err, ErrNoSpeaker))
	assert.False(t, p.Enabled())
	p.Close()
}
