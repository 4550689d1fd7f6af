package expiry

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScheduleRuns(t *testing.T) {
	t.Parallel()

	s := New(nil)
	var ran atomic.Int32

	s.Schedule("a", time.Now().Add(10*time.Millisecond), func() { ran.Add(1) })
	assert.Equal(t, 1, s.Len())

	require.Eventually(t, func() bool { return ran.Load() == 1 }, time.Second, 5*time.Millisecond)
	assert.Equal(t, 0, s.Len())
}

func TestPastDeadlineRunsPromptly(t *testing.T) {
	t.Parallel()

	s := New(nil)
	done := make(chan struct{})

	s.Schedule("a", time.Now().Add(-time.Minute), func() { close(done) })

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("task did not run")
	}
}

func TestCancel(t *testing.T) {
	t.Parallel()

	s := New(nil)
	var ran atomic.Int32

	s.Schedule("a", time.Now().Add(20*time.Millisecond), func() { ran.Add(1) })
	assert.True(t, s.Cancel("a"))
	assert.False(t, s.Cancel("a"))

	time.Sleep(50 * time.Millisecond)
	assert.Equal(t, int32(0), ran.Load())
}

func TestRescheduleReplaces(t *testing.T) {
	t.Parallel()

	s := New(nil)
	var first, second atomic.Int32

	s.Schedule("a", time.Now().Add(15*time.Millisecond), func() { first.Add(1) })
	at := time.Now().Add(40 * time.Millisecond)
	s.Schedule("a", at, func() { second.Add(1) })

	got, ok := s.Scheduled("a")
	require.True(t, ok)
	assert.Equal(t, at, got)

	require.Eventually(t, func() bool { return second.Load() == 1 }, time.Second, 5*time.Millisecond)
	assert.Equal(t, int32(0), first.Load())
}

func TestScheduleSameDeadlineKeepsTask(t *testing.T) {
	t.Parallel()

	s := New(nil)
	var first, second atomic.Int32
	at := time.Now().Add(15 * time.Millisecond)

	s.Schedule("a", at, func() { first.Add(1) })
	s.Schedule("a", at, func() { second.Add(1) })

	require.Eventually(t, func() bool { return first.Load() == 1 }, time.Second, 5*time.Millisecond)
	assert.Equal(t, int32(0), second.Load())
}

func TestKeysAndStop(t *testing.T) {
	t.Parallel()

	s := New(nil)
	far := time.Now().Add(time.Hour)
	s.Schedule("a", far, func() {})
	s.Schedule("b", far, func() {})

	assert.ElementsMatch(t, []string{"a", "b"}, s.Keys())

	s.Stop()
	assert.Equal(t, 0, s.Len())
	_, ok := s.Scheduled("a")
	assert.False(t, ok)
}

func TestDelayMeasuredAgainstClock(t *testing.T) {
	t.Parallel()

	// a clock running an hour behind makes a deadline "now" an hour away
	behind := func() time.Time { return time.Now().Add(-time.Hour) }
	s := New(behind)
	var ran atomic.Int32

	s.Schedule("a", time.Now(), func() { ran.Add(1) })
	time.Sleep(30 * time.Millisecond)
	assert.Equal(t, int32(0), ran.Load())
	s.Stop()
}
