// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package effects

import (
	"errors"
	"fmt"

	"github.com/go-logr/logr"

	"code.hybscloud.com/coeff"
)

// ErrRaised is wrapped by the error logged for every Raise.
var ErrRaised = errors.New("exception raised")

// Raise is the effect for raising an exception.
// A handler never resumes the raising computation.
type Raise struct{ Message string }

// Err returns the Raise as an error wrapping [ErrRaised].
func (r Raise) Err() error {
	return fmt.Errorf("%w: %s", ErrRaised, r.Message)
}

// ExceptionHandler interprets Raise by logging one diagnostic line and
// ending the session with a sentinel result.
// The raising computation, including any sub-computation it was awaiting,
// is discarded.
type ExceptionHandler[I, R any] struct {
	log      logr.Logger
	sentinel R
}

// NewExceptionHandler creates an ExceptionHandler returning sentinel on Raise.
func NewExceptionHandler[I, R any](log logr.Logger, sentinel R) *ExceptionHandler[I, R] {
	return &ExceptionHandler[I, R]{log: log, sentinel: sentinel}
}

// Handle implements coeff.Handler.
func (h *ExceptionHandler[I, R]) Handle(in I, c coeff.Coroutine[I, Raise, R]) R {
	st := c.Resume(in)
	if r, ok := st.Result(); ok {
		return r
	}
	raise, _ := st.Effect()
	h.log.Error(raise.Err(), "Exception", "message", raise.Message)
	c.Discard()
	return h.sentinel
}
