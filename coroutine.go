// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package coeff

import "iter"

// errResumed is the panic message for resuming a finished computation.
const errResumed = "coeff: coroutine resumed after completion"

// Coroutine is a suspendable computation.
// Coroutine[I, E, R] accepts resumption inputs of type I, suspends on
// effects of type E, and completes with a result of type R.
//
// A Coroutine has exactly one driver. It is not safe for concurrent use:
// no two Resume calls may overlap, and the package offers no entry point
// that would drive a computation from two goroutines.
type Coroutine[I, E, R any] interface {
	// Resume runs the computation until its next suspension or completion.
	// Panics if the computation has already completed or been discarded.
	Resume(in I) State[E, R]

	// Discard abandons the computation without resuming it.
	// A suspended body unwinds from its suspension point; code after that
	// point never runs. Discard is idempotent and valid after completion.
	Discard()
}

// discardSignal unwinds a body whose coroutine was discarded while suspended.
type discardSignal struct{}

// body is the iter.Pull backed Coroutine created by New.
type body[I, E, R any] struct {
	fn     func(in I, yield func(E) I) R
	next   func() (E, bool)
	stop   func()
	in     I
	result R
	done   bool
}

// New creates a Coroutine from a direct-style body.
//
// The input of the first Resume is passed as in. Each call to yield
// suspends the computation on the given effect; yield returns the input of
// the Resume call that continues it. The value returned by fn completes
// the computation.
//
// Example:
//
//	c := coeff.New(func(in int, yield func(string) int) int {
//		x := yield("need a number")
//		return in + x
//	})
//	c.Resume(1)             // Suspended("need a number")
//	s := c.Resume(41)       // Completed(42)
func New[I, E, R any](fn func(in I, yield func(E) I) R) Coroutine[I, E, R] {
	return &body[I, E, R]{fn: fn}
}

func (b *body[I, E, R]) Resume(in I) State[E, R] {
	if b.done {
		panic(errResumed)
	}
	b.in = in
	if b.next == nil {
		b.next, b.stop = iter.Pull(b.seq)
	}
	// A body that panics through next stays done and has nothing to stop.
	b.done = true
	stop := b.stop
	b.stop = nil
	e, ok := b.next()
	if ok {
		b.done = false
		b.stop = stop
		return Suspended[R](e)
	}
	stop()
	return Completed[E](b.result)
}

func (b *body[I, E, R]) Discard() {
	b.done = true
	if stop := b.stop; stop != nil {
		b.stop = nil
		stop()
	}
}

// seq adapts fn to an iter.Seq of effects.
func (b *body[I, E, R]) seq(yield func(E) bool) {
	defer func() {
		if r := recover(); r != nil {
			if _, ok := r.(discardSignal); !ok {
				panic(r)
			}
		}
	}()
	b.result = b.fn(b.in, func(e E) I {
		if !yield(e) {
			panic(discardSignal{})
		}
		return b.in
	})
}

// pure is a Coroutine that completes on its first Resume.
type pure[I, E, R any] struct {
	result R
	done   bool
}

// Pure creates a Coroutine that never suspends.
// The first Resume completes it with r; its input is ignored.
func Pure[I, E, R any](r R) Coroutine[I, E, R] {
	return &pure[I, E, R]{result: r}
}

func (p *pure[I, E, R]) Resume(I) State[E, R] {
	if p.done {
		panic(errResumed)
	}
	p.done = true
	return Completed[E](p.result)
}

func (p *pure[I, E, R]) Discard() { p.done = true }

// Await runs sub to completion from inside a body created by [New].
//
// The first resume of sub receives in. Every effect sub suspends on is
// converted by embed and forwarded through yield; the input yield returns
// resumes sub. Await returns sub's result.
//
// If the enclosing computation is discarded while sub is suspended,
// sub is discarded as well.
func Await[I, E, F, R any](yield func(F) I, sub Coroutine[I, E, R], in I, embed Embed[E, F]) R {
	finished := false
	defer func() {
		if !finished {
			sub.Discard()
		}
	}()
	for {
		s := sub.Resume(in)
		if r, ok := s.Result(); ok {
			finished = true
			return r
		}
		e, _ := s.Effect()
		in = yield(embed(e))
	}
}
