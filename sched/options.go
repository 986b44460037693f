// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package sched

import (
	"github.com/go-logr/logr"
	"k8s.io/utils/clock"
)

// Option configures a Scheduler.
type Option func(*Scheduler)

// WithClock sets the clock wakeup goroutines wait on.
// Tests inject k8s.io/utils/clock/testing.FakeClock.
func WithClock(c clock.Clock) Option {
	return func(s *Scheduler) {
		s.clock = c
	}
}

// WithLogger sets the logger for task transitions.
func WithLogger(log logr.Logger) Option {
	return func(s *Scheduler) {
		s.log = log
	}
}

// WithHaltOnCompletion makes the drive loop stop as soon as any task is
// observed Completed, discarding every other queued task.
// By default a completed task is removed and the rest of the queue is
// serviced until it is empty.
func WithHaltOnCompletion() Option {
	return func(s *Scheduler) {
		s.haltOnCompletion = true
	}
}
