// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package sched

import (
	"context"
	"time"

	"github.com/go-logr/logr"
	"k8s.io/utils/clock"
)

// Scheduler is a cooperative multiplexer of Routines.
//
// All Routines are resumed on the goroutine calling Run or Handle. Spawn
// and Run must not be called concurrently with each other.
type Scheduler struct {
	clock            clock.Clock
	log              logr.Logger
	haltOnCompletion bool

	queue []*Task

	// wake is signalled by wakeup goroutines after a flag flip.
	wake chan struct{}
}

// New creates a Scheduler with an empty queue.
func New(opts ...Option) *Scheduler {
	s := &Scheduler{
		clock: clock.RealClock{},
		log:   logr.Discard(),
		wake:  make(chan struct{}, 1),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Spawn enqueues r at the tail as an Idle task.
func (s *Scheduler) Spawn(name string, r Routine) *Task {
	t := newTask(name, r)
	s.queue = append(s.queue, t)
	s.log.Info("task spawned", "task", t.name, "id", t.id)
	return t
}

// Len returns the number of queued tasks.
func (s *Scheduler) Len() int {
	return len(s.queue)
}

// Handle implements coeff.Handler: it enqueues c and runs the queue until
// it is empty.
func (s *Scheduler) Handle(_ struct{}, c Routine) struct{} {
	s.Spawn("main", c)
	_ = s.Run(context.Background())
	return struct{}{}
}

// Run drives the queued tasks until the queue is empty.
//
// Each dequeued task is handled by its lifecycle state:
//   - Idle and Ready tasks are resumed once and re-enqueued at the tail
//   - AwaitingTimer tasks are re-enqueued without being resumed
//   - Completed tasks are removed (or stop the loop, see WithHaltOnCompletion)
//
// When every queued task is waiting on a timer, Run blocks until a wakeup
// goroutine fires. If ctx is cancelled, the remaining tasks are discarded
// and ctx.Err() is returned.
func (s *Scheduler) Run(ctx context.Context) error {
	waiting := 0
	for len(s.queue) > 0 {
		if err := ctx.Err(); err != nil {
			s.abandon()
			return err
		}
		t := s.pop()
		switch t.Lifecycle() {
		case Ready:
			t.advance(Ready, Idle)
			fallthrough
		case Idle:
			waiting = 0
			s.drive(t)
		case AwaitingTimer:
			s.queue = append(s.queue, t)
			waiting++
			if waiting < len(s.queue) {
				continue
			}
			waiting = 0
			if err := s.park(ctx); err != nil {
				s.abandon()
				return err
			}
		case Completed:
			waiting = 0
			s.log.Info("task completed", "task", t.name, "id", t.id, "resumes", t.resumes)
			if s.haltOnCompletion {
				s.abandon()
				return nil
			}
		}
	}
	return nil
}

// drive resumes t once and re-enqueues it.
func (s *Scheduler) drive(t *Task) {
	t.resumes++
	st := t.r.Resume(struct{}{})
	if st.Done() {
		t.advance(Idle, Completed)
		s.queue = append(s.queue, t)
		return
	}
	e, _ := st.Effect()
	switch e := e.(type) {
	case Timeout:
		s.arm(t, e.Delay)
	case Yield:
		s.log.V(1).Info("task yielded", "task", t.name, "id", t.id)
	}
	s.queue = append(s.queue, t)
}

// arm moves t to AwaitingTimer and starts its wakeup goroutine.
func (s *Scheduler) arm(t *Task, d time.Duration) {
	t.deadline = s.clock.Now().Add(d)
	t.advance(Idle, AwaitingTimer)
	s.log.V(1).Info("task awaiting timer", "task", t.name, "id", t.id, "delay", d, "deadline", t.deadline)
	if d <= 0 {
		t.advance(AwaitingTimer, Ready)
		return
	}
	// The timer is registered before the goroutine starts so that a fake
	// clock sees the waiter as soon as the task has suspended.
	fired := s.clock.After(d)
	go func() {
		<-fired
		t.advance(AwaitingTimer, Ready)
		select {
		case s.wake <- struct{}{}:
		default:
		}
	}()
}

// park blocks until a wakeup goroutine signals or ctx is done.
func (s *Scheduler) park(ctx context.Context) error {
	select {
	case <-s.wake:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (s *Scheduler) pop() *Task {
	t := s.queue[0]
	s.queue[0] = nil
	s.queue = s.queue[1:]
	return t
}

// abandon discards every queued task. Pending wakeup goroutines still
// run to completion; their flips are never observed.
func (s *Scheduler) abandon() {
	for _, t := range s.queue {
		t.r.Discard()
		s.log.V(1).Info("task abandoned", "task", t.name, "id", t.id, "state", t.Lifecycle())
	}
	clear(s.queue)
	s.queue = s.queue[:0]
}
