// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/spf13/cobra"

	"code.hybscloud.com/coeff/internal/plan"
	"code.hybscloud.com/coeff/sched"
)

func newTimersCmd() *cobra.Command {
	var (
		planPath string
		halt     bool
	)
	cmd := &cobra.Command{
		Use:   "timers",
		Short: "Run timer tasks on the cooperative scheduler",
		Long: "Run timer tasks on the cooperative scheduler.\n" +
			"Without --plan a single task waits 1s five times, then 5s.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p := plan.Default()
			if planPath != "" {
				var err error
				if p, err = plan.Load(planPath); err != nil {
					return err
				}
			}

			log := logger()
			opts := []sched.Option{sched.WithLogger(log)}
			if halt {
				opts = append(opts, sched.WithHaltOnCompletion())
			}
			s := sched.New(opts...)
			p.Spawn(s, log)

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
			defer stop()

			start := time.Now()
			if err := s.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "elapsed: %s\n", time.Since(start).Round(time.Millisecond))
			return nil
		},
	}
	cmd.Flags().StringVar(&planPath, "plan", "", "TOML or YAML plan file")
	cmd.Flags().BoolVar(&halt, "halt-on-completion", false, "stop when the first task completes")
	return cmd
}
