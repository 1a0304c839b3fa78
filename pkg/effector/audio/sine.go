package audio

import (
	"io"
	"math"
	"time"
)

const (
	bytesPerSample = 2 // signed 16-bit little endian
	amplitude      = 0.3 * math.MaxInt16
	// rampFrames fades the tone in and out to avoid clicks at the edges.
	rampFrames = 300
)

// SineWave is an io.Reader producing a fixed-length sine tone as
// interleaved signed 16-bit little endian PCM.
type SineWave struct {
	freq       float64
	sampleRate int
	channels   int
	frames     int64
	pos        int64 // in frames
	remaining  []byte
}

// NewSineWave returns a tone of freq Hz lasting duration.
func NewSineWave(freq float64, duration time.Duration, sampleRate, channels int) *SineWave {
	frames := int64(sampleRate) * int64(duration) / int64(time.Second)
	return &SineWave{
		freq:       freq,
		sampleRate: sampleRate,
		channels:   channels,
		frames:     frames,
	}
}

// Len returns the total size of the tone in bytes.
func (s *SineWave) Len() int64 {
	return s.frames * int64(s.frameSize())
}

func (s *SineWave) frameSize() int {
	return bytesPerSample * s.channels
}

func (s *SineWave) Read(buf []byte) (int, error) {
	if len(s.remaining) > 0 {
		n := copy(buf, s.remaining)
		s.remaining = s.remaining[n:]
		return n, nil
	}
	if s.pos >= s.frames {
		return 0, io.EOF
	}

	fs := s.frameSize()
	want := len(buf) / fs
	if want == 0 {
		// caller buffer smaller than one frame; render one and keep the rest
		frame := make([]byte, fs)
		s.render(frame, 1)
		n := copy(buf, frame)
		s.remaining = frame[n:]
		return n, nil
	}
	if left := s.frames - s.pos; int64(want) > left {
		want = int(left)
	}
	s.render(buf, want)
	return want * fs, nil
}

func (s *SineWave) render(buf []byte, frames int) {
	fs := s.frameSize()
	period := float64(s.sampleRate) / s.freq
	ramp := int64(rampFrames)
	if half := s.frames / 2; ramp > half {
		ramp = half
	}
	for i := 0; i < frames; i++ {
		p := s.pos
		gain := 1.0
		switch {
		case ramp > 0 && p < ramp:
			gain = float64(p) / float64(ramp)
		case ramp > 0 && p >= s.frames-ramp:
			gain = float64(s.frames-p) / float64(ramp)
		}
		v := int16(math.Sin(2*math.Pi*float64(p)/period) * amplitude * gain)
		for ch := 0; ch < s.channels; ch++ {
			off := i*fs + ch*bytesPerSample
			buf[off] = byte(v)
			buf[off+1] = byte(v >> 8)
		}
		s.pos++
	}
}
