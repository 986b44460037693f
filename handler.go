// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package coeff

// Handler drives a coroutine to a final result.
//
// A Handler owns the whole loop: it resumes the computation, interprets
// every effect it suspends on, and decides the next input. It may instead
// terminate early with a result of its own choosing, in which case it must
// Discard the computation.
//
// The in argument is the seed for the first resume; see [Param].
type Handler[I, E, R any] interface {
	Handle(in I, c Coroutine[I, E, R]) R
}

// handlerFunc wraps a dispatch function as a Handler.
type handlerFunc[I, E, R any] struct {
	f func(e E) (I, R, bool)
}

func (h *handlerFunc[I, E, R]) Handle(in I, c Coroutine[I, E, R]) R {
	for {
		s := c.Resume(in)
		if r, ok := s.Result(); ok {
			return r
		}
		next, r, resume := h.f(s.effect)
		if !resume {
			c.Discard()
			return r
		}
		in = next
	}
}

// HandleFunc creates a Handler from a dispatch function.
// The function receives each effect and returns (next, _, true) to resume
// with next, or (_, result, false) to abandon the computation with result.
//
// Example:
//
//	h := coeff.HandleFunc[int, Ask, int](func(e Ask) (int, int, bool) {
//		return 21, 0, true
//	})
func HandleFunc[I, E, R any](f func(e E) (next I, result R, resume bool)) *handlerFunc[I, E, R] {
	return &handlerFunc[I, E, R]{f: f}
}

// Run drives c with h from the seed of I.
func Run[I Param[I], E, R any](h Handler[I, E, R], c Coroutine[I, E, R]) R {
	return h.Handle(Seed[I](), c)
}
