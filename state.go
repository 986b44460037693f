// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package coeff

// State is the outcome of a single [Coroutine.Resume] call.
// It is either suspended on an effect of type E or completed with a result of type R.
type State[E, R any] struct {
	done   bool
	effect E
	result R
}

// Suspended creates a State reporting a pending effect.
func Suspended[R, E any](e E) State[E, R] {
	return State[E, R]{effect: e}
}

// Completed creates a State reporting a final result.
func Completed[E, R any](r R) State[E, R] {
	return State[E, R]{done: true, result: r}
}

// Done returns true if the computation has completed.
func (s State[E, R]) Done() bool {
	return s.done
}

// Effect returns the pending effect and true, or zero and false on completion.
func (s State[E, R]) Effect() (E, bool) {
	if !s.done {
		return s.effect, true
	}
	var zero E
	return zero, false
}

// Result returns the final result and true, or zero and false while suspended.
func (s State[E, R]) Result() (R, bool) {
	if s.done {
		return s.result, true
	}
	var zero R
	return zero, false
}

// MatchState pattern matches on the State, calling onSuspended or onCompleted.
func MatchState[E, R, T any](s State[E, R], onSuspended func(E) T, onCompleted func(R) T) T {
	if s.done {
		return onCompleted(s.result)
	}
	return onSuspended(s.effect)
}
