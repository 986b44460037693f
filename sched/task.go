// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package sched

import (
	"sync/atomic"
	"time"

	"github.com/google/uuid"
)

// Task pairs a Routine with its lifecycle flag.
type Task struct {
	id   uuid.UUID
	name string
	r    Routine

	// state is shared with at most one wakeup goroutine at a time.
	state atomic.Uint32

	// Owned by the driving goroutine.
	deadline time.Time
	resumes  int
}

func newTask(name string, r Routine) *Task {
	return &Task{id: uuid.New(), name: name, r: r}
}

// ID returns the unique id assigned when the task was spawned.
func (t *Task) ID() uuid.UUID { return t.id }

// Name returns the name the task was spawned with.
func (t *Task) Name() string { return t.name }

// Lifecycle returns the current lifecycle state.
func (t *Task) Lifecycle() Lifecycle {
	return Lifecycle(t.state.Load())
}

// Resumes returns how many times the task has been resumed.
// Only meaningful once the scheduler has stopped.
func (t *Task) Resumes() int { return t.resumes }

// advance moves the flag from one state to the next.
// It reports false if the flag was not in from.
func (t *Task) advance(from, to Lifecycle) bool {
	return t.state.CompareAndSwap(uint32(from), uint32(to))
}
