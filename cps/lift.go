// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package cps

import "code.hybscloud.com/coeff"

// lifted adapts an Eff to the coeff.Coroutine contract.
type lifted[I, E, R any] struct {
	m       Eff[R]
	susp    *Suspension[R]
	started bool
	done    bool
}

// Lift exposes m as a coeff.Coroutine.
//
// The first Resume starts m; its input is the seed and is not observed by m.
// Each later input resumes the pending operation and must have the result
// type of that operation. Every operation m performs must be a member of E:
// operations are untyped on the CPS path, so membership is checked when the
// operation is reported and a non-member panics.
func Lift[I, E, R any](m Eff[R]) coeff.Coroutine[I, E, R] {
	return &lifted[I, E, R]{m: m}
}

func (l *lifted[I, E, R]) Resume(in I) coeff.State[E, R] {
	if l.done {
		panic("coeff: coroutine resumed after completion")
	}
	var (
		r    R
		susp *Suspension[R]
	)
	if !l.started {
		l.started = true
		r, susp = Step(l.m)
	} else {
		r, susp = l.susp.Resume(in)
	}
	l.susp = susp
	if susp == nil {
		l.done = true
		return coeff.Completed[E](r)
	}
	e, ok := susp.Op().(E)
	if !ok {
		panic("cps: operation is not a member of the effect union")
	}
	return coeff.Suspended[R](e)
}

func (l *lifted[I, E, R]) Discard() {
	l.done = true
	if l.susp != nil {
		l.susp.Discard()
		l.susp = nil
	}
}
