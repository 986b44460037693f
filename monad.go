// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package coeff

// Combinators over coroutines.
//
// Each combinator is a small state machine wrapping the computations it
// composes. Suspensions are forwarded one at a time and in order; no
// combinator ever resumes an inner computation on its own initiative.

// mapped applies f to the result of m.
type mapped[I, E, A, B any] struct {
	m Coroutine[I, E, A]
	f func(A) B
}

// Map applies a pure function to the result of a coroutine.
// Effects are forwarded unchanged and in the same order.
func Map[I, E, A, B any](m Coroutine[I, E, A], f func(A) B) Coroutine[I, E, B] {
	return &mapped[I, E, A, B]{m: m, f: f}
}

func (c *mapped[I, E, A, B]) Resume(in I) State[E, B] {
	s := c.m.Resume(in)
	if a, ok := s.Result(); ok {
		return Completed[E](c.f(a))
	}
	return Suspended[B](s.effect)
}

func (c *mapped[I, E, A, B]) Discard() { c.m.Discard() }

// bound sequences m and the computation produced by f.
type bound[I, E1, E2, E, A, B any] struct {
	m     Coroutine[I, E1, A]
	f     func(A) Coroutine[I, E2, B]
	n     Coroutine[I, E2, B]
	from1 Embed[E1, E]
	from2 Embed[E2, E]
}

// Bind sequences two coroutines.
//
// Bind drives m to completion, embedding each of its effects into E with
// from1. When m completes with a, Bind constructs f(a) and drives it from
// its start, embedding its effects with from2. The input of the resume
// on which m completed is the first input of f(a).
//
// The effect sequence of the result is m's followed by f(a)'s.
func Bind[I, E1, E2, E, A, B any](
	m Coroutine[I, E1, A],
	f func(A) Coroutine[I, E2, B],
	from1 Embed[E1, E],
	from2 Embed[E2, E],
) Coroutine[I, E, B] {
	return &bound[I, E1, E2, E, A, B]{m: m, f: f, from1: from1, from2: from2}
}

func (c *bound[I, E1, E2, E, A, B]) Resume(in I) State[E, B] {
	if c.n == nil {
		s := c.m.Resume(in)
		a, ok := s.Result()
		if !ok {
			return Suspended[B](c.from1(s.effect))
		}
		c.n = c.f(a)
		c.m, c.f = nil, nil
	}
	s := c.n.Resume(in)
	if b, ok := s.Result(); ok {
		return Completed[E](b)
	}
	return Suspended[B](c.from2(s.effect))
}

func (c *bound[I, E1, E2, E, A, B]) Discard() {
	if c.n != nil {
		c.n.Discard()
		return
	}
	if c.m != nil {
		c.m.Discard()
	}
}

// Then sequences two coroutines, discarding the first result.
// Equivalent to Bind(m, func(A) { return n }, from1, from2).
func Then[I, E1, E2, E, A, B any](
	m Coroutine[I, E1, A],
	n Coroutine[I, E2, B],
	from1 Embed[E1, E],
	from2 Embed[E2, E],
) Coroutine[I, E, B] {
	return &bound[I, E1, E2, E, A, B]{
		m:     m,
		f:     func(A) Coroutine[I, E2, B] { return n },
		from1: from1,
		from2: from2,
	}
}

// effectMapped relabels the effects of m.
type effectMapped[I, E, F, R any] struct {
	m     Coroutine[I, E, R]
	embed Embed[E, F]
}

// MapEffect embeds every effect of m into the wider union F.
// Inputs and the result pass through untouched.
func MapEffect[I, E, F, R any](m Coroutine[I, E, R], embed Embed[E, F]) Coroutine[I, F, R] {
	return &effectMapped[I, E, F, R]{m: m, embed: embed}
}

func (c *effectMapped[I, E, F, R]) Resume(in I) State[F, R] {
	s := c.m.Resume(in)
	if s.done {
		return Completed[F](s.result)
	}
	return Suspended[R](c.embed(s.effect))
}

func (c *effectMapped[I, E, F, R]) Discard() { c.m.Discard() }

// inputMapped adapts the inputs of m.
type inputMapped[J, I, E, R any] struct {
	m     Coroutine[I, E, R]
	adapt func(J) I
}

// MapInput lets a coroutine expecting inputs of type I be driven with
// inputs of type J. Every resumption value, including the first, is
// converted by adapt before it reaches m.
func MapInput[J, I, E, R any](m Coroutine[I, E, R], adapt func(J) I) Coroutine[J, E, R] {
	return &inputMapped[J, I, E, R]{m: m, adapt: adapt}
}

func (c *inputMapped[J, I, E, R]) Resume(in J) State[E, R] {
	return c.m.Resume(c.adapt(in))
}

func (c *inputMapped[J, I, E, R]) Discard() { c.m.Discard() }
