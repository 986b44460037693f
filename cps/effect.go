// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package cps

// Operation is any value a computation performs.
type Operation any

// Resumed is the untyped answer of an [Eff]: a final value, an operation
// answer, or a suspension marker.
type Resumed any

// Op ties an operation type O to the type A it is answered with.
//
// Example:
//
//	type Ask struct{ cps.Phantom[int] }
type Op[O Op[O, A], A any] interface {
	OpResult() A
}

// Phantom supplies OpResult when embedded in an operation type.
type Phantom[A any] struct{}

// OpResult is a type-level marker and is never called.
func (Phantom[A]) OpResult() A { panic("phantom") }

// effectSuspension is satisfied by *marker.
type effectSuspension interface {
	Op() Operation
	Resume(Resumed) Resumed
	release()
}

// effectMarkerResume recycles m and continues with the typed answer v.
func effectMarkerResume[A any](m *marker, v Resumed) Resumed {
	k := m.k.(func(A) Resumed)
	releaseMarker(m)
	return k(v.(A))
}

// Perform suspends on op. The computation continues with the A that
// the driver answers op with.
func Perform[O Op[O, A], A any](op O) Eff[A] {
	return func(k func(A) Resumed) Resumed {
		m := acquireMarker()
		m.op = op
		m.k = k
		m.resume = effectMarkerResume[A]
		return m
	}
}

// toResumed is the final continuation used by [Step].
func toResumed[A any](a A) Resumed { return a }
