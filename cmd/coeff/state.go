// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"code.hybscloud.com/coeff"
	"code.hybscloud.com/coeff/effects"
)

type resultCode int

func (c resultCode) ok() bool { return c == 0 }

type stateInput = coeff.Option[int]

type stateEffect = effects.Effect[int]

func logLine(msg string) stateEffect {
	return effects.LogEffect[int](effects.Log{Message: msg})
}

func prepare() coeff.Coroutine[stateInput, stateEffect, resultCode] {
	return coeff.New(func(_ stateInput, yield func(stateEffect) stateInput) resultCode {
		yield(logLine("preparing"))
		return 0
	})
}

// stateProgram stores value, reads it back and runs prepare.
func stateProgram(value int) coeff.Coroutine[stateInput, stateEffect, resultCode] {
	return coeff.New(func(_ stateInput, yield func(stateEffect) stateInput) resultCode {
		yield(logLine("start"))
		yield(effects.Set[int]{Value: value}.Embed())
		got := yield(effects.Get[int]{}.Embed())
		if v, ok := got.Get(); ok {
			yield(logLine(fmt.Sprintf("got %d", v)))
		} else {
			yield(logLine("got nothing"))
		}
		res := coeff.Await(yield, prepare(), coeff.None[int](), coeff.Identity[stateEffect]())
		if !res.ok() {
			yield(logLine(fmt.Sprintf("error code: %d", res)))
		}
		return res
	})
}

func newStateCmd() *cobra.Command {
	var value int
	cmd := &cobra.Command{
		Use:   "state",
		Short: "Log and read back handler-owned state",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			h := effects.NewLogState[int, resultCode](logger())
			ans := h.Consumer().Consume(stateProgram(value), coeff.Seed[stateInput]())
			fmt.Fprintf(cmd.OutOrStdout(), "result code: %d\n", ans)
		},
	}
	cmd.Flags().IntVar(&value, "value", 9, "value to store")
	return cmd
}
