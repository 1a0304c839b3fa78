// Package rle collapses a keying sequence into alternating runs of
// identical states and expands them back.
//
// Compress and Expand are inverses: Expand(Compress(b)) reproduces b for
// every sequence, and Compress never emits two adjacent runs with the same
// state or a run shorter than one unit.
package rle

import (
	"fmt"

	"github.com/bft-labs/morsekey/pkg/signal"
)

// Run is a maximal block of identical states.
type Run struct {
	State  signal.State `json:"state" yaml:"state" toml:"state"`
	Length int          `json:"length" yaml:"length" toml:"length"`
}

// String returns a compact form such as "ON×3".
func (r Run) String() string {
	return fmt.Sprintf("%s×%d", r.State, r.Length)
}

// Compress returns the run-length encoding of bits. An empty sequence
// yields no runs.
func Compress(bits signal.Bits) []Run {
	if len(bits) == 0 {
		return nil
	}
	runs := make([]Run, 0, len(bits)/2+1)
	cur := Run{State: bits[0], Length: 1}
	for _, s := range bits[1:] {
		if s == cur.State {
			cur.Length++
			continue
		}
		runs = append(runs, cur)
		cur = Run{State: s, Length: 1}
	}
	return append(runs, cur)
}

// Expand rebuilds the keying sequence described by runs. Runs with a
// non-positive length contribute nothing.
func Expand(runs []Run) signal.Bits {
	out := make(signal.Bits, 0, Units(runs))
	for _, r := range runs {
		for i := 0; i < r.Length; i++ {
			out = append(out, r.State)
		}
	}
	return out
}

// Normalize merges adjacent runs sharing a state and drops empty runs, so
// that a hand-built run list follows the same rules as Compress output.
func Normalize(runs []Run) []Run {
	out := make([]Run, 0, len(runs))
	for _, r := range runs {
		if r.Length <= 0 {
			continue
		}
		if n := len(out); n > 0 && out[n-1].State == r.State {
			out[n-1].Length += r.Length
			continue
		}
		out = append(out, r)
	}
	return out
}

// Lengths returns the length of every run in order.
func Lengths(runs []Run) []int {
	out := make([]int, len(runs))
	for i, r := range runs {
		out[i] = r.Length
	}
	return out
}

// Units returns the total number of time units covered by runs.
func Units(runs []Run) int {
	n := 0
	for _, r := range runs {
		if r.Length > 0 {
			n += r.Length
		}
	}
	return n
}
