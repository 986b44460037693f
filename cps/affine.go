// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package cps

import "sync/atomic"

// Affine is a continuation that may be invoked at most once.
type Affine[R, A any] struct {
	claimed atomic.Bool
	k       func(A) R
}

// Once wraps k as an Affine continuation.
func Once[R, A any](k func(A) R) *Affine[R, A] {
	return &Affine[R, A]{k: k}
}

// Resume invokes the continuation with v.
// It panics if the continuation was already resumed or discarded.
func (a *Affine[R, A]) Resume(v A) R {
	if !a.claimed.CompareAndSwap(false, true) {
		panic("cps: affine continuation resumed twice")
	}
	return a.k(v)
}

// TryResume is Resume that reports false instead of panicking.
func (a *Affine[R, A]) TryResume(v A) (R, bool) {
	if !a.claimed.CompareAndSwap(false, true) {
		var zero R
		return zero, false
	}
	return a.k(v), true
}

// Discard consumes the continuation without invoking it.
func (a *Affine[R, A]) Discard() {
	a.claimed.Store(true)
}
