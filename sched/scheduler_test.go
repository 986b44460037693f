// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package sched_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	testclock "k8s.io/utils/clock/testing"

	"code.hybscloud.com/coeff/sched"
)

// recorder is shared between the scheduler goroutine and the test.
type recorder struct {
	mu     sync.Mutex
	events []string
}

func (r *recorder) add(e string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, e)
}

func (r *recorder) snapshot() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.events...)
}

func (r *recorder) has(e string) func() bool {
	return func() bool {
		for _, got := range r.snapshot() {
			if got == e {
				return true
			}
		}
		return false
	}
}

// runAsync starts s.Run on its own goroutine.
func runAsync(ctx context.Context, s *sched.Scheduler) <-chan error {
	done := make(chan error, 1)
	go func() { done <- s.Run(ctx) }()
	return done
}

// stepWhenWaiting advances fc by d once the scheduler has armed a timer.
func stepWhenWaiting(t *testing.T, fc *testclock.FakeClock, d time.Duration) {
	t.Helper()
	require.Eventually(t, fc.HasWaiters, time.Second, time.Millisecond)
	fc.Step(d)
}

func wait(t *testing.T, done <-chan error) error {
	t.Helper()
	select {
	case err := <-done:
		return err
	case <-time.After(5 * time.Second):
		t.Fatal("scheduler did not finish")
		return nil
	}
}

func TestTimersTaskWaitsForEveryDelay(t *testing.T) {
	start := time.Now()
	fc := testclock.NewFakeClock(start)
	s := sched.New(sched.WithClock(fc))

	task := s.Spawn("timers", sched.Func(func(yield func(sched.Effect) struct{}) {
		for range 5 {
			sched.Sleep(yield, time.Second)
		}
		sched.Sleep(yield, 5*time.Second)
	}))
	done := runAsync(context.Background(), s)

	for range 5 {
		stepWhenWaiting(t, fc, time.Second)
	}
	select {
	case <-done:
		t.Fatal("finished before the last timer fired")
	default:
	}
	stepWhenWaiting(t, fc, 5*time.Second)

	require.NoError(t, wait(t, done))
	assert.GreaterOrEqual(t, fc.Since(start), 10*time.Second)
	assert.Equal(t, sched.Completed, task.Lifecycle())
	assert.Equal(t, 7, task.Resumes())
	assert.Equal(t, 0, s.Len())
}

func TestTimersInterleave(t *testing.T) {
	fc := testclock.NewFakeClock(time.Now())
	s := sched.New(sched.WithClock(fc))
	rec := &recorder{}

	s.Spawn("slow", sched.Func(func(yield func(sched.Effect) struct{}) {
		rec.add("slow:start")
		sched.Sleep(yield, 2*time.Second)
		rec.add("slow:end")
	}))
	s.Spawn("fast", sched.Func(func(yield func(sched.Effect) struct{}) {
		rec.add("fast:start")
		sched.Sleep(yield, time.Second)
		rec.add("fast:end")
	}))
	done := runAsync(context.Background(), s)

	stepWhenWaiting(t, fc, time.Second)
	require.Eventually(t, rec.has("fast:end"), time.Second, time.Millisecond)
	stepWhenWaiting(t, fc, time.Second)

	require.NoError(t, wait(t, done))
	assert.Equal(t, []string{"slow:start", "fast:start", "fast:end", "slow:end"}, rec.snapshot())
}

func TestCompletionRemovesTask(t *testing.T) {
	fc := testclock.NewFakeClock(time.Now())
	s := sched.New(sched.WithClock(fc))
	rec := &recorder{}

	quick := s.Spawn("quick", sched.Func(func(yield func(sched.Effect) struct{}) {
		rec.add("quick")
	}))
	late := s.Spawn("late", sched.Func(func(yield func(sched.Effect) struct{}) {
		sched.Sleep(yield, time.Second)
		rec.add("late")
	}))
	done := runAsync(context.Background(), s)

	stepWhenWaiting(t, fc, time.Second)

	require.NoError(t, wait(t, done))
	assert.Equal(t, []string{"quick", "late"}, rec.snapshot())
	assert.Equal(t, sched.Completed, quick.Lifecycle())
	assert.Equal(t, sched.Completed, late.Lifecycle())
}

func TestHaltOnCompletion(t *testing.T) {
	fc := testclock.NewFakeClock(time.Now())
	s := sched.New(sched.WithClock(fc), sched.WithHaltOnCompletion())
	var cleaned, resumed bool

	s.Spawn("quick", sched.Func(func(yield func(sched.Effect) struct{}) {}))
	late := s.Spawn("late", sched.Func(func(yield func(sched.Effect) struct{}) {
		defer func() { cleaned = true }()
		sched.Sleep(yield, time.Second)
		resumed = true
	}))

	require.NoError(t, s.Run(context.Background()))
	assert.True(t, cleaned)
	assert.False(t, resumed)
	assert.Equal(t, sched.AwaitingTimer, late.Lifecycle())
	assert.Equal(t, 0, s.Len())
}

func TestYieldRoundRobin(t *testing.T) {
	s := sched.New()
	rec := &recorder{}
	for _, name := range []string{"a", "b"} {
		s.Spawn(name, sched.Func(func(yield func(sched.Effect) struct{}) {
			for i := range 3 {
				rec.add(name + string(rune('0'+i)))
				sched.Pass(yield)
			}
		}))
	}

	require.NoError(t, s.Run(context.Background()))
	assert.Equal(t, []string{"a0", "b0", "a1", "b1", "a2", "b2"}, rec.snapshot())
}

func TestZeroDelayIsImmediatelyReady(t *testing.T) {
	fc := testclock.NewFakeClock(time.Now())
	s := sched.New(sched.WithClock(fc))
	task := s.Spawn("zero", sched.Func(func(yield func(sched.Effect) struct{}) {
		sched.Sleep(yield, 0)
		sched.Sleep(yield, -time.Second)
	}))

	require.NoError(t, s.Run(context.Background()))
	assert.Equal(t, sched.Completed, task.Lifecycle())
	assert.False(t, fc.HasWaiters())
}

func TestRunCancelled(t *testing.T) {
	fc := testclock.NewFakeClock(time.Now())
	s := sched.New(sched.WithClock(fc))
	var cleaned bool
	s.Spawn("sleeper", sched.Func(func(yield func(sched.Effect) struct{}) {
		defer func() { cleaned = true }()
		sched.Sleep(yield, time.Hour)
	}))

	ctx, cancel := context.WithCancel(context.Background())
	done := runAsync(ctx, s)
	require.Eventually(t, fc.HasWaiters, time.Second, time.Millisecond)
	cancel()

	assert.ErrorIs(t, wait(t, done), context.Canceled)
	assert.True(t, cleaned)
	assert.Equal(t, 0, s.Len())
}

func TestRunCancelledBeforeStart(t *testing.T) {
	s := sched.New()
	var ran bool
	s.Spawn("never", sched.Func(func(yield func(sched.Effect) struct{}) { ran = true }))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.ErrorIs(t, s.Run(ctx), context.Canceled)
	assert.False(t, ran)
}

func TestHandleRunsMain(t *testing.T) {
	s := sched.New()
	var ran bool
	s.Handle(struct{}{}, sched.Func(func(yield func(sched.Effect) struct{}) {
		sched.Pass(yield)
		ran = true
	}))
	assert.True(t, ran)
	assert.Equal(t, 0, s.Len())
}

func TestRealClockSleeps(t *testing.T) {
	s := sched.New()
	s.Spawn("short", sched.Func(func(yield func(sched.Effect) struct{}) {
		for range 3 {
			sched.Sleep(yield, 5*time.Millisecond)
		}
	}))

	start := time.Now()
	require.NoError(t, s.Run(context.Background()))
	assert.GreaterOrEqual(t, time.Since(start), 15*time.Millisecond)
}

func TestTaskIdentity(t *testing.T) {
	s := sched.New()
	a := s.Spawn("a", sched.Func(func(func(sched.Effect) struct{}) {}))
	b := s.Spawn("b", sched.Func(func(func(sched.Effect) struct{}) {}))

	assert.Equal(t, "a", a.Name())
	assert.NotEqual(t, uuid.Nil, a.ID())
	assert.NotEqual(t, a.ID(), b.ID())
	assert.Equal(t, sched.Idle, a.Lifecycle())
	assert.Equal(t, 2, s.Len())
}

func TestLifecycleString(t *testing.T) {
	tests := []struct {
		l    sched.Lifecycle
		want string
	}{
		{sched.Idle, "Idle"},
		{sched.AwaitingTimer, "AwaitingTimer"},
		{sched.Ready, "Ready"},
		{sched.Completed, "Completed"},
		{sched.Lifecycle(9), "Lifecycle(9)"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.l.String())
	}
}
