// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package effects

import (
	"github.com/go-logr/logr"

	"code.hybscloud.com/coeff"
)

// Log is the effect for emitting a message.
type Log struct{ Message string }

// LogStep interprets Log effects by writing each message to a logr sink.
// It resumes with the seed of I as the neutral continue-input.
type LogStep[I coeff.Param[I], R any] struct {
	log logr.Logger
}

// NewLogStep creates a LogStep writing to log.
func NewLogStep[I coeff.Param[I], R any](log logr.Logger) *LogStep[I, R] {
	return &LogStep[I, R]{log: log}
}

// Step implements coeff.Stepper.
func (s *LogStep[I, R]) Step(c coeff.Coroutine[I, Log, R], in I) coeff.Outcome[I, R] {
	st := c.Resume(in)
	if r, ok := st.Result(); ok {
		return coeff.Return[I](r)
	}
	l, _ := st.Effect()
	s.log.Info(l.Message)
	return coeff.Yield[R](coeff.Seed[I]())
}
