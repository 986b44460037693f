// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package cps

// Cont is a computation in continuation-passing style. It produces an A
// by handing it to k, the remainder of the program, whose answer is R.
type Cont[R, A any] func(k func(A) R) R

// Return passes a straight to the continuation.
func Return[R, A any](a A) Cont[R, A] {
	return func(k func(A) R) R {
		return k(a)
	}
}

// Eff is a Cont whose answer may be a suspension marker.
type Eff[A any] = Cont[Resumed, A]

// Pure is Return for Eff.
func Pure[A any](a A) Eff[A] {
	return Return[Resumed](a)
}

// Suspend exposes the continuation to f, which may call it any number
// of times, or not at all.
func Suspend[R, A any](f func(func(A) R) R) Cont[R, A] {
	return Cont[R, A](f)
}

// Reset delimits m: continuations captured by [Suspend] inside m stop
// at Reset, and m runs to its answer before the outer continuation.
func Reset[R, A any](m Cont[A, A]) Cont[R, A] {
	return Return[R](Run(m))
}

func identity[A any](a A) A { return a }

// Run closes m with the identity continuation.
func Run[A any](m Cont[A, A]) A {
	return m(identity[A])
}
