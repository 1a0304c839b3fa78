package signal

import (
	"fmt"
	"strings"
)

// State is the keying state of a single time unit.
type State uint8

const (
	Off State = iota
	On
)

// String returns "ON" or "OFF".
func (s State) String() string {
	switch s {
	case Off:
		return "OFF"
	case On:
		return "ON"
	default:
		return fmt.Sprintf("State(%d)", uint8(s))
	}
}

// Opposite returns the other state.
func (s State) Opposite() State {
	if s == On {
		return Off
	}
	return On
}

// Valid reports whether s is On or Off.
func (s State) Valid() bool {
	return s == On || s == Off
}

// MarshalText encodes the state as "ON" or "OFF".
func (s State) MarshalText() ([]byte, error) {
	if !s.Valid() {
		return nil, fmt.Errorf("signal: invalid state %d", uint8(s))
	}
	return []byte(s.String()), nil
}

// UnmarshalText accepts "ON"/"OFF" in any case as well as "1"/"0".
func (s *State) UnmarshalText(b []byte) error {
	switch strings.ToUpper(string(b)) {
	case "ON", "1":
		*s = On
	case "OFF", "0":
		*s = Off
	default:
		return fmt.Errorf("signal: unknown state %q", string(b))
	}
	return nil
}

// Bits is a keying sequence with one entry per time unit.
type Bits []State

// String renders the sequence as '1' and '0' characters.
func (b Bits) String() string {
	var sb strings.Builder
	sb.Grow(len(b))
	for _, s := range b {
		if s == On {
			sb.WriteByte('1')
		} else {
			sb.WriteByte('0')
		}
	}
	return sb.String()
}

// Ints returns the sequence as 1/0 integers.
func (b Bits) Ints() []int {
	out := make([]int, len(b))
	for i, s := range b {
		if s == On {
			out[i] = 1
		}
	}
	return out
}

// Equal reports whether both sequences hold the same states.
func (b Bits) Equal(other Bits) bool {
	if len(b) != len(other) {
		return false
	}
	for i := range b {
		if b[i] != other[i] {
			return false
		}
	}
	return true
}

// ParseBits parses a string of '1' and '0' characters.
func ParseBits(s string) (Bits, error) {
	out := make(Bits, 0, len(s))
	for i, c := range s {
		switch c {
		case '1':
			out = append(out, On)
		case '0':
			out = append(out, Off)
		default:
			return nil, fmt.Errorf("signal: invalid bit %q at %d", c, i)
		}
	}
	return out, nil
}

// FromInts builds a sequence from 1/0 integers; any non-zero value is On.
func FromInts(v []int) Bits {
	out := make(Bits, len(v))
	for i, n := range v {
		if n != 0 {
			out[i] = On
		}
	}
	return out
}
