package audio

import (
	"io"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSineWave_Length(t *testing.T) {
	s := NewSineWave(DefaultFrequency, 100*time.Millisecond, SampleRate, ChannelCount)
	data, err := io.ReadAll(s)
	require.NoError(t, err)
	assert.Equal(t, int64(len(data)), s.Len())
	assert.Equal(t, 4800*ChannelCount*bytesPerSample, len(data))
}

func TestSineWave_FadesAtEdges(t *testing.T) {
	s := NewSineWave(DefaultFrequency, 50*time.Millisecond, SampleRate, 1)
	data, err := io.ReadAll(s)
	require.NoError(t, err)

	sample := func(i int) int16 { return int16(uint16(data[2*i]) | uint16(data[2*i+1])<<8) }
	assert.Zero(t, sample(0))

	var peak int16
	for i := 0; i < len(data)/2; i++ {
		if v := sample(i); v > peak {
			peak = v
		}
	}
	assert.InDelta(t, amplitude, float64(peak), amplitude*0.01)
}

func TestSineWave_SmallBuffer(t *testing.T) {
	s := NewSineWave(DefaultFrequency, time.Millisecond, SampleRate, ChannelCount)
	var total int
	buf := make([]byte, 3)
	for {
		n, err := s.Read(buf)
		total += n
		if err == io.EOF {
			break
		}
		require.NoError(t, err)
	}
	assert.Equal(t, int(s.Len()), total)
}

func TestSineWave_Empty(t *testing.T) {
	s := NewSineWave(DefaultFrequency, 0, SampleRate, ChannelCount)
	n, err := s.Read(make([]byte, 16))
	assert.Zero(t, n)
	assert.Equal(t, io.EOF, err)
}
