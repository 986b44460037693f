// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/go-logr/logr"
	"github.com/spf13/cobra"

	"code.hybscloud.com/coeff"
	"code.hybscloud.com/coeff/effects"
)

type operands struct{ a, b int }

type divInput = coeff.Option[operands]

// divide raises on a zero divisor.
func divide() coeff.Coroutine[divInput, effects.Raise, int] {
	return coeff.New(func(in divInput, yield func(effects.Raise) divInput) int {
		ops, _ := in.Get()
		if ops.b == 0 {
			yield(effects.Raise{Message: "divided by 0"})
			return 0
		}
		return ops.a / ops.b
	})
}

// divideProgram divides a by b through divide and reports each step on log.
func divideProgram(log logr.Logger, a, b int) coeff.Coroutine[divInput, effects.Raise, int] {
	return coeff.New(func(_ divInput, yield func(effects.Raise) divInput) int {
		log.Info("Start!")
		ans := coeff.Await(yield, divide(), coeff.Some(operands{a, b}), coeff.Identity[effects.Raise]())
		log.Info("div result", "value", ans)
		log.Info("end.")
		return 0
	})
}

func newExceptionCmd() *cobra.Command {
	var a, b int
	cmd := &cobra.Command{
		Use:   "exception",
		Short: "Divide two numbers, raising on a zero divisor",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			log := logger()
			h := effects.NewExceptionHandler[divInput, int](log, -1)
			ans := h.Handle(coeff.Seed[divInput](), divideProgram(log, a, b))
			fmt.Fprintf(cmd.OutOrStdout(), "result: %d\n", ans)
		},
	}
	cmd.Flags().IntVar(&a, "a", 4, "dividend")
	cmd.Flags().IntVar(&b, "b", 0, "divisor")
	return cmd
}
