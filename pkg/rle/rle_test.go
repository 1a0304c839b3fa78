package rle

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bft-labs/morsekey/pkg/signal"
)

var sosBits = signal.FromInts([]int{1, 0, 1, 0, 1, 0, 0, 0, 1, 1, 1, 0, 1, 1, 1, 0, 1, 1, 1, 0, 0, 0, 1, 0, 1, 0, 1})

func TestCompress_SOS(t *testing.T) {
	runs := Compress(sosBits)

	assert.Equal(t, []int{1, 1, 1, 1, 1, 3, 3, 1, 3, 1, 3, 3, 1, 1, 1, 1, 1}, Lengths(runs))
	assert.Equal(t, signal.On, runs[0].State)
	assert.Equal(t, len(sosBits), Units(runs))
}

func TestCompress_Empty(t *testing.T) {
	assert.Empty(t, Compress(nil))
	assert.Empty(t, Compress(signal.Bits{}))
	assert.Empty(t, Expand(nil))
}

func TestCompress_SingleState(t *testing.T) {
	runs := Compress(signal.Bits{signal.Off, signal.Off, signal.Off})
	require.Len(t, runs, 1)
	assert.Equal(t, Run{State: signal.Off, Length: 3}, runs[0])
}

func TestRoundTrip_Random(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	for i := 0; i < 500; i++ {
		bits := make(signal.Bits, rng.Intn(64))
		for j := range bits {
			if rng.Intn(2) == 1 {
				bits[j] = signal.On
			}
		}

		runs := Compress(bits)
		assert.True(t, bits.Equal(Expand(runs)), "round trip of %s", bits)

		for j, r := range runs {
			assert.GreaterOrEqual(t, r.Length, 1)
			if j > 0 {
				assert.NotEqual(t, runs[j-1].State, r.State, "adjacent runs share state in %v", runs)
			}
		}
	}
}

func TestNormalize(t *testing.T) {
	in := []Run{
		{State: signal.On, Length: 1},
		{State: signal.On, Length: 2},
		{State: signal.Off, Length: 0},
		{State: signal.Off, Length: 1},
		{State: signal.On, Length: 1},
	}
	got := Normalize(in)
	assert.Equal(t, []Run{
		{State: signal.On, Length: 3},
		{State: signal.Off, Length: 1},
		{State: signal.On, Length: 1},
	}, got)
	assert.Equal(t, got, Compress(Expand(in)))
}

func TestRun_String(t *testing.T) {
	assert.Equal(t, "ON×3", Run{State: signal.On, Length: 3}.String())
}
