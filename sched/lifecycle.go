// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package sched

import "strconv"

// Lifecycle is the state of a task as seen by the scheduler.
// Within one timer cycle transitions only move forward:
// Idle → AwaitingTimer → Ready. Ready is driven exactly like Idle.
type Lifecycle uint32

const (
	// Idle tasks are resumed on their next turn.
	Idle Lifecycle = iota
	// AwaitingTimer tasks have a pending wakeup and are skipped.
	AwaitingTimer
	// Ready tasks had their timer fire and are resumed on their next turn.
	Ready
	// Completed tasks returned; they are removed when next dequeued.
	Completed
)

func (l Lifecycle) String() string {
	switch l {
	case Idle:
		return "Idle"
	case AwaitingTimer:
		return "AwaitingTimer"
	case Ready:
		return "Ready"
	case Completed:
		return "Completed"
	default:
		return "Lifecycle(" + strconv.FormatUint(uint64(l), 10) + ")"
	}
}
