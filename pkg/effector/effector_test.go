package effector

import (
	"bytes"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bft-labs/morsekey/pkg/schedule"
	"github.com/bft-labs/morsekey/pkg/signal"
)

func TestConsole(t *testing.T) {
	var buf bytes.Buffer
	c := NewConsole(&buf)
	require.NoError(t, c.On(240*time.Millisecond, 0))
	require.NoError(t, c.Off(720*time.Millisecond, 240*time.Millisecond))

	assert.Equal(t, "ON  240ms      @ 0s\nOFF 720ms      @ 240ms\n", buf.String())
}

func TestBits(t *testing.T) {
	var buf bytes.Buffer
	unit := 100 * time.Millisecond
	b := NewBits(&buf, unit)

	require.NoError(t, b.On(unit, 0))
	require.NoError(t, b.Off(3*unit, unit))
	require.NoError(t, b.On(3*unit, 4*unit))
	require.NoError(t, b.Off(0, 7*unit))

	assert.Equal(t, "1000111", buf.String())

	buf.Reset()
	b.SetUnit(50 * time.Millisecond)
	require.NoError(t, b.On(unit, 0))
	assert.Equal(t, "11", buf.String())
}

func TestRecorder(t *testing.T) {
	r := NewRecorder()
	require.NoError(t, r.On(time.Second, 0))
	require.NoError(t, r.Off(0, time.Second))

	calls := r.Calls()
	require.Len(t, calls, 2)
	assert.Equal(t, signal.On, calls[0].State)
	assert.Equal(t, signal.Off, calls[1].State)
	assert.Equal(t, time.Second, calls[1].Offset)

	r.Reset()
	assert.Empty(t, r.Calls())
}

func TestMulti_Order(t *testing.T) {
	a, b := NewRecorder(), NewRecorder()
	m := Multi{a, b}
	require.NoError(t, m.On(time.Second, 0))
	require.NoError(t, m.Off(0, time.Second))
	assert.Len(t, a.Calls(), 2)
	assert.Len(t, b.Calls(), 2)
	assert.False(t, a.Calls()[0].At.After(b.Calls()[0].At))
}

func TestMulti_StopsAtFirstError(t *testing.T) {
	boom := errors.New("boom")
	after := NewRecorder()
	m := Multi{schedule.Callbacks{OnFunc: func(d, o time.Duration) error { return boom }}, after}

	assert.Same(t, boom, m.On(time.Second, 0))
	assert.Empty(t, after.Calls())
}
