// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package cps

import "sync/atomic"

// Suspension is a CPS computation paused on an operation.
//
// A Suspension is consumed by exactly one of Resume, TryResume or Discard.
// Resume panics on a consumed Suspension; TryResume reports false.
type Suspension[A any] struct {
	claimed atomic.Bool
	op      Operation
	pending effectSuspension
}

// Op returns the operation the computation is waiting on.
func (s *Suspension[A]) Op() Operation { return s.op }

func (s *Suspension[A]) claim() bool {
	return s.claimed.CompareAndSwap(false, true)
}

// Resume answers the pending operation with v and runs the computation
// to its next suspension. The returned Suspension is nil on completion.
func (s *Suspension[A]) Resume(v Resumed) (A, *Suspension[A]) {
	if !s.claim() {
		panic("cps: suspension resumed twice")
	}
	return classify[A](s.pending.Resume(v))
}

// TryResume is Resume that reports false instead of panicking.
func (s *Suspension[A]) TryResume(v Resumed) (A, *Suspension[A], bool) {
	if !s.claim() {
		var zero A
		return zero, nil, false
	}
	a, next := classify[A](s.pending.Resume(v))
	return a, next, true
}

// Discard consumes the Suspension without resuming it.
func (s *Suspension[A]) Discard() {
	if s.claim() {
		s.pending.release()
	}
}

// Step runs m until it completes or performs its first operation.
//
//	result, susp := cps.Step(m)
//	for susp != nil {
//		result, susp = susp.Resume(answer(susp.Op()))
//	}
func Step[A any](m Eff[A]) (A, *Suspension[A]) {
	return classify[A](m(toResumed[A]))
}

// classify splits an answer into a final value or a Suspension.
// A nil answer is the zero value of A.
func classify[A any](answer Resumed) (A, *Suspension[A]) {
	var zero A
	switch v := answer.(type) {
	case effectSuspension:
		return zero, &Suspension[A]{op: v.Op(), pending: v}
	case nil:
		return zero, nil
	default:
		return v.(A), nil
	}
}
