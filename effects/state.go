// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package effects

import "code.hybscloud.com/coeff"

// StateOp is the closed union of State operations over a slot of type S.
// Implemented by [Get] and [Set].
type StateOp[S any] interface {
	stateOp(S)
}

// Get is the effect operation for reading the slot.
// It resumes with Some(value), or None if the slot was never set.
type Get[S any] struct{}

func (Get[S]) stateOp(S) {}

// Embed implements coeff.Embedding for the composed [Effect] union.
func (o Get[S]) Embed() Effect[S] { return StateEffect[S](o) }

// Set is the effect operation for overwriting the slot.
// It resumes with None.
type Set[S any] struct{ Value S }

func (Set[S]) stateOp(S) {}

// Embed implements coeff.Embedding for the composed [Effect] union.
func (o Set[S]) Embed() Effect[S] { return StateEffect[S](o) }

// dispatchState applies op to slot and returns the resumption input.
func dispatchState[S any](op StateOp[S], slot *coeff.Option[S]) coeff.Option[S] {
	switch o := op.(type) {
	case Get[S]:
		return *slot
	case Set[S]:
		*slot = coeff.Some(o.Value)
		return coeff.None[S]()
	default:
		panic("effects: unhandled state operation")
	}
}

// StateStep interprets State operations against a slot it owns.
// The slot lives as long as the StateStep; a new instance starts empty.
type StateStep[S, R any] struct {
	slot coeff.Option[S]
}

// NewStateStep creates a StateStep with an empty slot.
func NewStateStep[S, R any]() *StateStep[S, R] {
	return &StateStep[S, R]{}
}

// Step implements coeff.Stepper.
func (s *StateStep[S, R]) Step(c coeff.Coroutine[coeff.Option[S], StateOp[S], R], in coeff.Option[S]) coeff.Outcome[coeff.Option[S], R] {
	st := c.Resume(in)
	if r, ok := st.Result(); ok {
		return coeff.Return[coeff.Option[S]](r)
	}
	op, _ := st.Effect()
	return coeff.Yield[R](dispatchState(op, &s.slot))
}

// State returns the current content of the slot.
func (s *StateStep[S, R]) State() coeff.Option[S] {
	return s.slot
}
