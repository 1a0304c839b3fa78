package codec

import (
	"strings"
	"unicode"

	"github.com/bft-labs/morsekey/pkg/signal"
)

// Symbol is one element of an encoded message.
type Symbol uint8

const (
	Dit Symbol = iota
	Dah
	CharGap
	WordGap
)

// String returns the symbol name.
func (s Symbol) String() string {
	switch s {
	case Dit:
		return "DIT"
	case Dah:
		return "DAH"
	case CharGap:
		return "CHAR_GAP"
	case WordGap:
		return "WORD_GAP"
	default:
		return "UNKNOWN"
	}
}

// pattern is the keying emitted after the single OFF unit that precedes
// every symbol. Gap symbols therefore cost two units each; a word gap is
// always surrounded by two character gaps, giving 2+2+2 plus the leading
// unit of the next element, seven in total.
func (s Symbol) pattern() signal.Bits {
	switch s {
	case Dit:
		return signal.Bits{signal.On}
	case Dah:
		return signal.Bits{signal.On, signal.On, signal.On}
	default:
		return signal.Bits{signal.Off}
	}
}

// Normalize upper-cases message and collapses every whitespace run to a
// single space, dropping leading and trailing whitespace.
func Normalize(message string) string {
	return strings.Join(strings.Fields(strings.ToUpper(message)), " ")
}

// EncodeMorse returns one pattern per character of the normalized message.
// Spaces are kept as " " and unknown characters become [UnknownCode].
func EncodeMorse(message string) []string {
	msg := Normalize(message)
	out := make([]string, 0, len(msg))
	for _, r := range msg {
		if r == ' ' {
			out = append(out, " ")
			continue
		}
		code, ok := alphabet[unicode.ToUpper(r)]
		if !ok {
			code = UnknownCode
		}
		out = append(out, code)
	}
	return out
}

// EncodeSymbols returns the symbol stream for message. Consecutive
// characters are separated by CharGap; a space becomes WordGap.
func EncodeSymbols(message string) []Symbol {
	codes := EncodeMorse(message)
	out := make([]Symbol, 0, len(codes)*4)
	for i, code := range codes {
		if i > 0 {
			out = append(out, CharGap)
		}
		if code == " " {
			out = append(out, WordGap)
			continue
		}
		for _, e := range code {
			if e == '-' {
				out = append(out, Dah)
			} else {
				out = append(out, Dit)
			}
		}
	}
	return out
}

// SymbolsToBits expands symbols into a keying sequence. Each symbol is
// preceded by one OFF unit; the very first of those is dropped so the
// sequence starts on the first element.
func SymbolsToBits(symbols []Symbol) signal.Bits {
	if len(symbols) == 0 {
		return signal.Bits{}
	}
	out := make(signal.Bits, 0, len(symbols)*3)
	for _, s := range symbols {
		out = append(out, signal.Off)
		out = append(out, s.pattern()...)
	}
	return out[1:]
}

// EncodeBits returns the keying sequence for message.
func EncodeBits(message string) signal.Bits {
	return SymbolsToBits(EncodeSymbols(message))
}

// Format returns the morse text of message: elements of a character are
// adjacent, characters are separated by three spaces and words by seven.
func Format(message string) string {
	words := strings.Fields(Normalize(message))
	parts := make([]string, len(words))
	for i, w := range words {
		codes := EncodeMorse(w)
		parts[i] = strings.Join(codes, strings.Repeat(" ", charGapUnits))
	}
	return strings.Join(parts, strings.Repeat(" ", wordGapUnits))
}
