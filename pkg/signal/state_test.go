package signal

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestState_String(t *testing.T) {
	assert.Equal(t, "ON", On.String())
	assert.Equal(t, "OFF", Off.String())
	assert.Equal(t, "State(7)", State(7).String())
}

func TestState_Opposite(t *testing.T) {
	assert.Equal(t, Off, On.Opposite())
	assert.Equal(t, On, Off.Opposite())
}

func TestState_TextRoundTrip(t *testing.T) {
	for _, s := range []State{On, Off} {
		b, err := s.MarshalText()
		require.NoError(t, err)

		var got State
		require.NoError(t, got.UnmarshalText(b))
		assert.Equal(t, s, got)
	}

	var s State
	assert.Error(t, s.UnmarshalText([]byte("maybe")))
	_, err := State(3).MarshalText()
	assert.Error(t, err)
}

func TestParseBits(t *testing.T) {
	b, err := ParseBits("10111")
	require.NoError(t, err)
	assert.Equal(t, Bits{On, Off, On, On, On}, b)
	assert.Equal(t, "10111", b.String())
	assert.Equal(t, []int{1, 0, 1, 1, 1}, b.Ints())

	_, err = ParseBits("10x")
	assert.Error(t, err)
}

func TestFromInts(t *testing.T) {
	b := FromInts([]int{1, 0, 0, 2})
	assert.True(t, b.Equal(Bits{On, Off, Off, On}))
	assert.False(t, b.Equal(Bits{On, Off}))
}
