package codec

import (
	"strings"
	"unicode"

	"github.com/bft-labs/morsekey/pkg/rle"
	"github.com/bft-labs/morsekey/pkg/signal"
)

const (
	charGapUnits = 3
	wordGapUnits = 7

	// Midpoints between the canonical lengths; used when reading timings
	// back that were not produced by EncodeBits.
	dahThreshold     = 2
	charGapThreshold = 2
	wordGapThreshold = 5
)

// DecodeMorse converts morse text back to plain text. Characters are
// separated by whitespace; five or more spaces, '/' or '|' separate words.
// Unknown patterns decode to [UnknownRune].
func DecodeMorse(text string) string {
	var (
		sb          strings.Builder
		tok         strings.Builder
		spaces      int
		pendingWord bool
	)
	flush := func() {
		if tok.Len() == 0 {
			return
		}
		if pendingWord && sb.Len() > 0 {
			sb.WriteByte(' ')
		}
		pendingWord = false
		sb.WriteRune(Decode(tok.String()))
		tok.Reset()
	}

	for _, c := range text {
		switch {
		case c == '/' || c == '|':
			flush()
			pendingWord = true
			spaces = 0
		case unicode.IsSpace(c):
			flush()
			spaces++
		default:
			if spaces >= wordGapThreshold {
				pendingWord = true
			}
			spaces = 0
			tok.WriteRune(c)
		}
	}
	flush()
	return sb.String()
}

// DecodeBits converts a keying sequence back to plain text. ON runs of two
// or more units read as dah; OFF runs of two or more end a character and
// runs of five or more end a word.
func DecodeBits(bits signal.Bits) string {
	var morse strings.Builder
	started := false
	for _, r := range rle.Compress(bits) {
		if r.State == signal.On {
			started = true
			if r.Length >= dahThreshold {
				morse.WriteByte('-')
			} else {
				morse.WriteByte('.')
			}
			continue
		}
		if !started {
			continue
		}
		switch {
		case r.Length >= wordGapThreshold:
			morse.WriteString(strings.Repeat(" ", wordGapUnits))
		case r.Length >= charGapThreshold:
			morse.WriteByte(' ')
		}
	}
	return DecodeMorse(morse.String())
}
