package codec

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bft-labs/morsekey/pkg/signal"
)

func TestEncodeBits_SOS(t *testing.T) {
	want := []int{1, 0, 1, 0, 1, 0, 0, 0, 1, 1, 1, 0, 1, 1, 1, 0, 1, 1, 1, 0, 0, 0, 1, 0, 1, 0, 1}
	assert.Equal(t, want, EncodeBits("SOS").Ints())
	assert.Equal(t, want, EncodeBits("sos").Ints(), "encoding is case-insensitive")
}

func TestEncodeMorse(t *testing.T) {
	assert.Equal(t, []string{"...", "---", "..."}, EncodeMorse("SOS"))
	assert.Equal(t, []string{".-", " ", "-..."}, EncodeMorse("  a   b "))
}

func TestEncodeSymbols(t *testing.T) {
	got := EncodeSymbols("E T")
	assert.Equal(t, []Symbol{Dit, CharGap, WordGap, CharGap, Dah}, got)
	assert.Equal(t, "WORD_GAP", WordGap.String())
}

func TestEncodeBits_Gaps(t *testing.T) {
	tests := []struct {
		name    string
		message string
		want    string
	}{
		{"single dit", "E", "1"},
		{"single dah", "T", "111"},
		{"element gap", "I", "101"},
		{"character gap", "EE", "10001"},
		{"word gap", "E E", "100000001"},
		{"whitespace collapsed", "  E \t  E  ", "100000001"},
		{"empty", "", ""},
		{"only spaces", "   ", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, EncodeBits(tt.message).String())
		})
	}
}

func TestEncodeBits_StartsAndEndsOn(t *testing.T) {
	for _, msg := range []string{"SOS", " hello world ", "73 de f4xyz", "a?b"} {
		bits := EncodeBits(msg)
		require.NotEmpty(t, bits, msg)
		assert.Equal(t, signal.On, bits[0], msg)
		assert.Equal(t, signal.On, bits[len(bits)-1], msg)
	}
}

func TestEncode_UnknownCharacter(t *testing.T) {
	assert.Equal(t, []string{UnknownCode}, EncodeMorse("#"))
	assert.Equal(t, EncodeBits("?").String(), EncodeBits("#").String())
	assert.Equal(t, EncodeBits("A?B").String(), EncodeBits("A#B").String())
}

func TestEncodeBits_PARIS(t *testing.T) {
	assert.Equal(t, 43, len(EncodeBits("PARIS")))
}

func TestFormat(t *testing.T) {
	assert.Equal(t,
		"--   ---   .-.   ...   .       -.-.   ---   -..   .",
		Format("MORSE CODE"))
	assert.Equal(t, "", Format(""))
}

func TestFormat_DecodeRoundTrip(t *testing.T) {
	for _, msg := range []string{"SOS", "MORSE CODE", "hello, world!"} {
		assert.Equal(t, Normalize(msg), DecodeMorse(Format(msg)))
	}
}

func TestLookup(t *testing.T) {
	code, ok := Lookup('q')
	require.True(t, ok)
	assert.Equal(t, "--.-", code)

	_, ok = Lookup('#')
	assert.False(t, ok)
}

func TestTree_DecodesWholeAlphabet(t *testing.T) {
	for _, r := range Characters() {
		code, ok := Lookup(r)
		require.True(t, ok)
		got, ok := defaultTree.Walk(code)
		require.True(t, ok, "pattern %q", code)
		assert.Equal(t, r, got)
	}
}

func TestTree_Walk(t *testing.T) {
	_, ok := defaultTree.Walk("")
	assert.False(t, ok)
	_, ok = defaultTree.Walk("........")
	assert.False(t, ok)
	_, ok = defaultTree.Walk(".x")
	assert.False(t, ok)
	assert.Equal(t, UnknownRune, Decode("........"))
}

func TestNewTree_Errors(t *testing.T) {
	_, err := NewTree(map[rune]string{'A': ".-", 'B': ".-"})
	assert.Error(t, err)
	_, err = NewTree(map[rune]string{'A': ".x"})
	assert.Error(t, err)
	_, err = NewTree(map[rune]string{'A': ""})
	assert.Error(t, err)
}

func TestDecodeMorse(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"... --- ...", "SOS"},
		{"--   ---   .-.   ...   .       -.-.   ---   -..   .", "MORSE CODE"},
		{".... ..  /  .-- --- .-. .-.. -..", "HI WORLD"},
		{".- | -...", "A B"},
		{"........", "?"},
		{"", ""},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, DecodeMorse(tt.in))
		})
	}
}

func TestDecodeBits_RoundTrip(t *testing.T) {
	for _, msg := range []string{"SOS", "MORSE CODE", "CQ CQ DE F4ABC", "1234567890"} {
		assert.Equal(t, msg, DecodeBits(EncodeBits(msg)))
	}
}

func TestDecodeBits_LeadingOffIgnored(t *testing.T) {
	bits, err := signal.ParseBits("000101")
	require.NoError(t, err)
	assert.Equal(t, "I", DecodeBits(bits))
}
