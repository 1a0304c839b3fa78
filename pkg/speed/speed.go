// Package speed converts a code speed into the duration of one morse unit.
//
// Speed is calibrated against a reference word (PARIS by default): at w
// words per minute, w repetitions of the word including their trailing word
// gap fill exactly one minute.
package speed

import (
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/bft-labs/morsekey/pkg/codec"
	"github.com/bft-labs/morsekey/pkg/rle"
)

// ReferenceWord is the standard calibration word. It is 50 units long
// including one trailing word gap.
const ReferenceWord = "PARIS"

// DefaultUnit is returned when neither a duration nor a speed is given.
const DefaultUnit = time.Second

var (
	// ErrAmbiguousSpeedSpec is returned when both an element duration and a
	// speed are given.
	ErrAmbiguousSpeedSpec = errors.New("speed: element duration and wpm are mutually exclusive")

	// ErrInvalidSpeed is returned for negative, NaN or infinite values.
	ErrInvalidSpeed = errors.New("speed: invalid value")
)

// Spec selects the unit duration. The zero value of a field means unset.
type Spec struct {
	ElementDuration time.Duration
	WPM             float64
}

// IsZero reports whether neither field is set.
func (s Spec) IsZero() bool {
	return s.ElementDuration == 0 && s.WPM == 0
}

// Validate checks that at most one field is set and that values are usable.
func (s Spec) Validate() error {
	if s.ElementDuration < 0 {
		return fmt.Errorf("%w: element duration %s", ErrInvalidSpeed, s.ElementDuration)
	}
	if s.WPM < 0 || math.IsNaN(s.WPM) || math.IsInf(s.WPM, 0) {
		return fmt.Errorf("%w: wpm %v", ErrInvalidSpeed, s.WPM)
	}
	if s.ElementDuration > 0 && s.WPM > 0 {
		return ErrAmbiguousSpeedSpec
	}
	return nil
}

// String describes the spec for logs.
func (s Spec) String() string {
	switch {
	case s.ElementDuration > 0:
		return "unit=" + s.ElementDuration.String()
	case s.WPM > 0:
		return fmt.Sprintf("wpm=%g", s.WPM)
	default:
		return "default"
	}
}

// Model computes unit durations against a fixed reference word.
type Model struct {
	word  string
	units int
}

var paris = NewModel(ReferenceWord)

// NewModel returns a Model calibrated on word. An empty word falls back to
// ReferenceWord.
func NewModel(word string) *Model {
	if strings.TrimSpace(word) == "" {
		word = ReferenceWord
	}
	return &Model{word: word, units: ReferenceLength(word, 1, true)}
}

// Word returns the reference word.
func (m *Model) Word() string { return m.word }

// UnitsPerWord returns the reference word length in units, word gap included.
func (m *Model) UnitsPerWord() int { return m.units }

// UnitDuration resolves spec to a unit duration.
func (m *Model) UnitDuration(spec Spec) (time.Duration, error) {
	if err := spec.Validate(); err != nil {
		return 0, err
	}
	switch {
	case spec.ElementDuration > 0:
		return spec.ElementDuration, nil
	case spec.WPM > 0:
		return m.FromWPM(spec.WPM)
	default:
		return DefaultUnit, nil
	}
}

// FromWPM returns the unit duration for wpm, rounded to the nanosecond.
// Speeds whose unit rounds to zero or does not fit a time.Duration are
// rejected with ErrInvalidSpeed.
func (m *Model) FromWPM(wpm float64) (time.Duration, error) {
	ns := math.Round(float64(time.Minute) / (wpm * float64(m.units)))
	if math.IsNaN(ns) || ns >= math.MaxInt64 || ns < 1 {
		return 0, fmt.Errorf("%w: wpm %v gives unit %gns", ErrInvalidSpeed, wpm, ns)
	}
	return time.Duration(ns), nil
}

// ToWPM returns the speed that corresponds to unit.
func (m *Model) ToWPM(unit time.Duration) float64 {
	if unit <= 0 {
		return 0
	}
	return float64(time.Minute) / (float64(unit) * float64(m.units))
}

// UnitDuration resolves spec against the PARIS reference word.
func UnitDuration(spec Spec) (time.Duration, error) {
	return paris.UnitDuration(spec)
}

// WPMToDuration returns the unit duration for wpm against word.
func WPMToDuration(wpm float64, word string) (time.Duration, error) {
	return NewModel(word).FromWPM(wpm)
}

// DurationToWPM returns the speed of unit against word.
func DurationToWPM(unit time.Duration, word string) float64 {
	return NewModel(word).ToWPM(unit)
}

// ReferenceLength returns the number of units needed to send n repetitions
// of word separated by word gaps. With wordSpaced the trailing word gap is
// counted as well, which is how code speed is defined.
func ReferenceLength(word string, n int, wordSpaced bool) int {
	if n <= 0 {
		return 0
	}
	message := strings.TrimSpace(strings.Repeat(" "+word, n))
	if wordSpaced {
		// a trailing "E" materializes the word gap; its single dit is
		// subtracted below
		message += " E"
	}
	units := rle.Units(rle.Compress(codec.EncodeBits(message)))
	if wordSpaced {
		units--
	}
	return units
}
