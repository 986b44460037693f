// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package coeff

// Decomposed driving: a Stepper interprets one resumption at a time and a
// Consumer owns the uniform loop. New effect policies are new Steppers;
// the loop is written once.

// Outcome is the result of one [Stepper.Step]: either the final result of
// the computation, or the input for the next step.
type Outcome[I, R any] struct {
	done   bool
	next   I
	result R
}

// Return creates an Outcome that ends the loop with r.
func Return[I, R any](r R) Outcome[I, R] {
	return Outcome[I, R]{done: true, result: r}
}

// Yield creates an Outcome that continues the loop with next.
func Yield[R, I any](next I) Outcome[I, R] {
	return Outcome[I, R]{next: next}
}

// IsReturn returns true if the Outcome ends the loop.
func (o Outcome[I, R]) IsReturn() bool {
	return o.done
}

// Next returns the next input and true, or zero and false for a Return.
func (o Outcome[I, R]) Next() (I, bool) {
	if !o.done {
		return o.next, true
	}
	var zero I
	return zero, false
}

// Result returns the final result and true, or zero and false for a Yield.
func (o Outcome[I, R]) Result() (R, bool) {
	if o.done {
		return o.result, true
	}
	var zero R
	return zero, false
}

// Stepper is the F-bounded interface for per-effect interpreters.
// The self-referencing constraint S Stepper[S, I, E, R] gives the compiler
// knowledge of the concrete stepper type at the [Consume] call site.
//
// Step resumes c once with in and interprets the outcome:
// Return(result) when c completed or was abandoned (after Discard),
// Yield(next) to resume c again with next.
type Stepper[S Stepper[S, I, E, R], I, E, R any] interface {
	Step(c Coroutine[I, E, R], in I) Outcome[I, R]
}

// Consume drives c with s until the first Return.
// in is the seed for the first step.
func Consume[S Stepper[S, I, E, R], I, E, R any](s S, c Coroutine[I, E, R], in I) R {
	for {
		o := s.Step(c, in)
		if o.done {
			return o.result
		}
		in = o.next
	}
}

// Consumer is the reusable loop over a Stepper.
// A Consumer is itself a [Handler].
type Consumer[S Stepper[S, I, E, R], I, E, R any] struct {
	step S
}

// NewConsumer creates a Consumer over s.
func NewConsumer[S Stepper[S, I, E, R], I, E, R any](s S) *Consumer[S, I, E, R] {
	return &Consumer[S, I, E, R]{step: s}
}

// Consume drives c from in until the Stepper returns.
func (c *Consumer[S, I, E, R]) Consume(m Coroutine[I, E, R], in I) R {
	return Consume[S, I, E, R](c.step, m, in)
}

// Handle implements [Handler].
func (c *Consumer[S, I, E, R]) Handle(in I, m Coroutine[I, E, R]) R {
	return Consume[S, I, E, R](c.step, m, in)
}

// Stepper returns the underlying Stepper.
func (c *Consumer[S, I, E, R]) Stepper() S {
	return c.step
}

// stepFunc wraps a dispatch function as a concrete Stepper.
type stepFunc[I, E, R any] struct {
	f func(e E) Outcome[I, R]
}

// Step implements Stepper.
func (s *stepFunc[I, E, R]) Step(c Coroutine[I, E, R], in I) Outcome[I, R] {
	st := c.Resume(in)
	if r, ok := st.Result(); ok {
		return Return[I](r)
	}
	o := s.f(st.effect)
	if o.done {
		c.Discard()
	}
	return o
}

// StepFunc creates a Stepper from a per-effect dispatch function.
// Completion of the computation is handled by the Stepper; f sees only
// effects and returns Yield to resume or Return to abandon.
//
// Example:
//
//	s := coeff.StepFunc(func(e Ask) coeff.Outcome[int, int] {
//		return coeff.Yield[int](21)
//	})
//	result := coeff.Consume(s, computation, 0)
func StepFunc[I, E, R any](f func(e E) Outcome[I, R]) *stepFunc[I, E, R] {
	return &stepFunc[I, E, R]{f: f}
}
