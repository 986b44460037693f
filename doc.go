// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package coeff provides suspendable computations and effect handlers in Go.
//
// The core type [Coroutine] represents a computation that pauses at
// designated points, reports a typed effect describing what it needs, and
// resumes from that exact point once a driver supplies an answer.
//
// # Design Philosophy
//
// coeff provides:
//   - A single resume contract: [Coroutine.Resume] returns Suspended(effect) or Completed(result)
//   - Closed effect unions composed through explicit embeddings, never structural subtyping
//   - F-bounded step interpreters so that one generic loop drives every effect policy
//
// # Suspendable Computations
//
//   - [Coroutine]: Resumable handle, one driver at a time
//   - [State]: Outcome of one resume ([Suspended] or [Completed])
//   - [New]: Create a coroutine from a direct-style body
//   - [Pure]: Create a coroutine that completes immediately
//   - [Await]: Run a sub-computation from a body, forwarding its effects
//
// Resuming a completed or discarded coroutine panics. [Coroutine.Discard]
// abandons a computation; a suspended body unwinds without running past
// its suspension point.
//
// # Combinators
//
//   - [Map]: Apply a function to the result
//   - [Bind]: Sequence two coroutines, embedding both effect sets into one union
//   - [Then]: Sequence, discarding the first result
//   - [MapEffect]: Embed every effect into a wider union
//   - [MapInput]: Adapt every resumption value to the native input type
//
// # Effect Embedding
//
// Effect unions are closed. A narrower union is used inside a wider one
// through an explicit conversion:
//
//   - [Embed]: Total conversion From → To
//   - [View]: Partial projection To → From
//   - [Identity], [Compose]: Build embeddings
//   - [Embedding], [Into]: Effects that carry their own embedding
//
// A missing embedding is a compile-time type error.
//
// # Driving
//
// Two equivalent shapes drive a computation to its result:
//
//   - [Handler]: Monolithic loop, Handle(in, c) R
//   - [HandleFunc]: Create a Handler from a dispatch function
//   - [Stepper]: F-bounded per-effect interpreter, Step(c, in) Outcome
//   - [Outcome]: [Return] ends the loop, [Yield] continues with the next input
//   - [Consume], [Consumer]: The generic loop over any Stepper
//   - [StepFunc]: Create a Stepper from a dispatch function
//
// The first resume needs a "no input yet" value:
//
//   - [Param]: F-bounded interface for inputs with an initial value
//   - [Seed]: Returns the initial value of a Param
//   - [Option]: Optional input, seeds as [None]
//
// # Example
//
//	type Ask struct{}
//
//	c := coeff.New(func(_ coeff.Option[int], yield func(Ask) coeff.Option[int]) int {
//		x, _ := yield(Ask{}).Get()
//		return x * 2
//	})
//
//	s := coeff.StepFunc(func(Ask) coeff.Outcome[coeff.Option[int], int] {
//		return coeff.Yield[int](coeff.Some(21))
//	})
//	result := coeff.Consume(s, c, coeff.None[int]())
//	// result == 42
package coeff
