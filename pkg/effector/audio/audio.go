// Package audio keys a sine tone on the default sound output.
package audio

import (
	"fmt"
	"sync"
	"time"

	"github.com/ebitengine/oto/v3"

	"github.com/bft-labs/morsekey/pkg/schedule"
)

const (
	// DefaultFrequency is the tone pitch in Hz (G5).
	DefaultFrequency = 784.0
	SampleRate       = 48000
	ChannelCount     = 2
)

// Tone plays a sine tone for the length of every ON event. Only one Tone
// may exist per process because the audio device is opened once.
type Tone struct {
	ctx  *oto.Context
	freq float64

	mu     sync.Mutex
	player *oto.Player
}

// New opens the audio device and waits until it is ready.
func New(freq float64) (*Tone, error) {
	if freq <= 0 {
		freq = DefaultFrequency
	}
	ctx, ready, err := oto.NewContext(&oto.NewContextOptions{
		SampleRate:   SampleRate,
		ChannelCount: ChannelCount,
		Format:       oto.FormatSignedInt16LE,
	})
	if err != nil {
		return nil, fmt.Errorf("open audio device: %w", err)
	}
	<-ready
	return &Tone{ctx: ctx, freq: freq}, nil
}

// On starts a tone lasting duration. Playback is asynchronous; the
// scheduler keeps time.
func (t *Tone) On(duration, offset time.Duration) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	if err := t.release(); err != nil {
		return err
	}
	if duration <= 0 {
		return nil
	}
	t.player = t.ctx.NewPlayer(NewSineWave(t.freq, duration, SampleRate, ChannelCount))
	t.player.Play()
	return nil
}

// Off silences any tone still playing.
func (t *Tone) Off(duration, offset time.Duration) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.release()
}

// Close stops playback.
func (t *Tone) Close() error {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.release()
}

func (t *Tone) release() error {
	if t.player == nil {
		return nil
	}
	p := t.player
	t.player = nil
	if p.IsPlaying() {
		p.Pause()
	}
	return p.Close()
}

var _ schedule.Effector = (*Tone)(nil)
