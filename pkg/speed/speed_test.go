package speed

import (
	"errors"
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReferenceLength(t *testing.T) {
	assert.Equal(t, 50, ReferenceLength("PARIS", 1, true))
	assert.Equal(t, 250, ReferenceLength("PARIS", 5, true))
	assert.Equal(t, 43, ReferenceLength("PARIS", 1, false))
	assert.Equal(t, 0, ReferenceLength("PARIS", 0, true))
	assert.Equal(t, 60, ReferenceLength("CODEX", 1, true))
}

func TestUnitDuration(t *testing.T) {
	tests := []struct {
		name string
		spec Spec
		want time.Duration
	}{
		{"default", Spec{}, time.Second},
		{"explicit", Spec{ElementDuration: 200 * time.Millisecond}, 200 * time.Millisecond},
		{"5 wpm", Spec{WPM: 5}, 240 * time.Millisecond},
		{"15 wpm", Spec{WPM: 15}, 80 * time.Millisecond},
		{"20 wpm", Spec{WPM: 20}, 60 * time.Millisecond},
		{"13 wpm", Spec{WPM: 13}, 92307692 * time.Nanosecond},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := UnitDuration(tt.spec)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestUnitDuration_Ambiguous(t *testing.T) {
	_, err := UnitDuration(Spec{ElementDuration: 5 * time.Millisecond, WPM: 10})
	assert.True(t, errors.Is(err, ErrAmbiguousSpeedSpec))
}

func TestUnitDuration_Invalid(t *testing.T) {
	for _, spec := range []Spec{
		{ElementDuration: -time.Millisecond},
		{WPM: -1},
		{WPM: math.NaN()},
		{WPM: math.Inf(1)},
		{WPM: 1e10},
		{WPM: 1e-12},
	} {
		_, err := UnitDuration(spec)
		assert.ErrorIs(t, err, ErrInvalidSpeed, spec.String())
	}
}

func TestWPMToDuration_OutOfRange(t *testing.T) {
	for _, wpm := range []float64{1e10, 1e-12, 0} {
		unit, err := WPMToDuration(wpm, ReferenceWord)
		assert.ErrorIs(t, err, ErrInvalidSpeed, "wpm=%v", wpm)
		assert.Zero(t, unit)
	}
}

func TestUnitDuration_Monotonic(t *testing.T) {
	prev := time.Duration(math.MaxInt64)
	for wpm := 1.0; wpm <= 60; wpm += 0.5 {
		got, err := UnitDuration(Spec{WPM: wpm})
		require.NoError(t, err)
		assert.Less(t, got, prev, "wpm=%v", wpm)
		prev = got
	}
}

func TestDurationToWPM(t *testing.T) {
	assert.InDelta(t, 20.0, DurationToWPM(60*time.Millisecond, ReferenceWord), 1e-9)
	unit, err := WPMToDuration(5.01, ReferenceWord)
	require.NoError(t, err)
	assert.InDelta(t, 5.01, DurationToWPM(unit, ReferenceWord), 1e-6)
	assert.Zero(t, DurationToWPM(0, ReferenceWord))
}

func TestNewModel(t *testing.T) {
	m := NewModel("")
	assert.Equal(t, ReferenceWord, m.Word())
	assert.Equal(t, 50, m.UnitsPerWord())
}

func TestSpec_String(t *testing.T) {
	assert.Equal(t, "default", Spec{}.String())
	assert.Equal(t, "wpm=12.5", Spec{WPM: 12.5}.String())
	assert.Equal(t, "unit=100ms", Spec{ElementDuration: 100 * time.Millisecond}.String())
	assert.True(t, Spec{}.IsZero())
}
