// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package sched

import (
	"time"

	"code.hybscloud.com/coeff"
)

// Effect is the closed union of scheduler effects.
// Implemented by [Timeout] and [Yield].
type Effect interface {
	schedEffect()
}

// Timeout suspends the task until Delay has elapsed.
// A non-positive Delay makes the task ready immediately.
type Timeout struct{ Delay time.Duration }

func (Timeout) schedEffect() {}

// Yield re-enqueues the task at the tail without a timer.
type Yield struct{}

func (Yield) schedEffect() {}

// Routine is the computation type driven by the scheduler.
type Routine = coeff.Coroutine[struct{}, Effect, struct{}]

// Func creates a Routine from a direct-style body.
func Func(fn func(yield func(Effect) struct{})) Routine {
	return coeff.New(func(_ struct{}, yield func(Effect) struct{}) struct{} {
		fn(yield)
		return struct{}{}
	})
}

// Sleep suspends the calling body for d.
func Sleep(yield func(Effect) struct{}, d time.Duration) {
	yield(Timeout{Delay: d})
}

// Pass gives the other queued tasks a turn.
func Pass(yield func(Effect) struct{}) {
	yield(Yield{})
}
