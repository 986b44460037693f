// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package sched multiplexes suspendable tasks on one driving goroutine.
//
// A task is a coeff.Coroutine that suspends on the [Effect] union:
// [Timeout] parks the task until a real-time delay has elapsed on the
// scheduler's clock, and [Yield] gives other tasks a turn. The scheduler
// is a coeff.Handler: Handle enqueues one task and runs the queue.
//
// Each task carries a [Lifecycle] flag. The driving goroutine moves it
// Idle → AwaitingTimer when the task suspends on a Timeout; a short-lived
// wakeup goroutine waits for the delay and moves it AwaitingTimer → Ready.
// The flag is the only state a wakeup goroutine touches. A task is resumed
// only in Idle or Ready, so it is never driven while its timer is pending.
package sched
