// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package cps builds suspendable computations in continuation-passing style.
//
// It is the second construction path of coeff next to [coeff.New]. Where
// New runs a direct-style body on a runtime coroutine, a [Cont] is a plain
// closure: performing an effect returns a pooled marker that carries the
// operation and the captured continuation, and stepping resumes that
// marker. No goroutine or runtime coroutine is involved.
//
// # Core Operations
//
//   - [Return], [Pure]: Lift a value into a continuation
//   - [Bind], [Map], [Then]: Sequence continuations
//   - [Suspend]: Capture the current continuation
//   - [Reset]: Delimit captured continuations
//   - [Run]: Execute a pure continuation
//
// # Effects
//
//   - [Op]: F-bounded effect operation interface
//   - [Phantom]: Embeddable result marker for [Op]
//   - [Perform]: Suspend on an effect operation
//
// # Stepping
//
//   - [Step]: Drive a computation until it completes or suspends
//   - [Suspension]: Pending operation with one-shot resumption handle
//   - [Affine], [Once]: One-shot continuations
//
// # Bridge
//
// [Lift] exposes an [Eff] as a [coeff.Coroutine], so CPS computations
// compose with coeff combinators and run under any coeff handler.
//
// # Example
//
//	type Ask struct{ cps.Phantom[int] }
//
//	m := cps.Bind(cps.Perform(Ask{}), func(x int) cps.Eff[int] {
//		return cps.Pure(x * 2)
//	})
//	c := cps.Lift[int, Ask](m)
//	c.Resume(0)      // Suspended(Ask{})
//	c.Resume(21)     // Completed(42)
package cps
