// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package effects

import (
	"github.com/go-logr/logr"

	"code.hybscloud.com/coeff"
)

// Effect is the closed union of the Log and State families.
// Exactly one member is set; build values with [LogEffect] or [StateEffect].
type Effect[S any] struct {
	log   *Log
	state StateOp[S]
}

// LogEffect embeds a Log into the union.
func LogEffect[S any](l Log) Effect[S] {
	return Effect[S]{log: &l}
}

// StateEffect embeds a State operation into the union.
func StateEffect[S any](op StateOp[S]) Effect[S] {
	return Effect[S]{state: op}
}

// Log projects the union onto the Log family.
func (e Effect[S]) Log() (Log, bool) {
	if e.log == nil {
		return Log{}, false
	}
	return *e.log, true
}

// State projects the union onto the State family.
func (e Effect[S]) State() (StateOp[S], bool) {
	return e.state, e.state != nil
}

// LogView is the [coeff.View] of the Log member.
func LogView[S any]() coeff.View[Effect[S], Log] {
	return Effect[S].Log
}

// StateView is the [coeff.View] of the State member.
func StateView[S any]() coeff.View[Effect[S], StateOp[S]] {
	return Effect[S].State
}

// LogState interprets the composed union: Log messages go to a logr sink,
// State operations go to a slot owned by the LogState instance.
// Dispatch order: Log → State.
type LogState[S, R any] struct {
	log    logr.Logger
	slot   coeff.Option[S]
	logs   coeff.View[Effect[S], Log]
	states coeff.View[Effect[S], StateOp[S]]
}

// NewLogState creates a LogState with an empty slot writing to log.
func NewLogState[S, R any](log logr.Logger) *LogState[S, R] {
	return &LogState[S, R]{log: log, logs: LogView[S](), states: StateView[S]()}
}

// Step implements coeff.Stepper.
func (h *LogState[S, R]) Step(c coeff.Coroutine[coeff.Option[S], Effect[S], R], in coeff.Option[S]) coeff.Outcome[coeff.Option[S], R] {
	st := c.Resume(in)
	if r, ok := st.Result(); ok {
		return coeff.Return[coeff.Option[S]](r)
	}
	e, _ := st.Effect()
	if l, ok := h.logs(e); ok {
		h.log.Info(l.Message)
		return coeff.Yield[R](coeff.None[S]())
	}
	if op, ok := h.states(e); ok {
		return coeff.Yield[R](dispatchState(op, &h.slot))
	}
	panic("effects: empty effect union")
}

// State returns the current content of the slot.
func (h *LogState[S, R]) State() coeff.Option[S] {
	return h.slot
}

// Consumer wraps h in a coeff.Consumer.
func (h *LogState[S, R]) Consumer() *coeff.Consumer[*LogState[S, R], coeff.Option[S], Effect[S], R] {
	return coeff.NewConsumer[*LogState[S, R], coeff.Option[S], Effect[S], R](h)
}
