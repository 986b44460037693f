// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Command coeff runs the demonstration programs of the coeff module.
package main

import (
	"fmt"
	"os"

	"github.com/go-logr/logr"
	"github.com/go-logr/zerologr"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var (
	logLevel string
)

var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "coeff",
		Short: "Run suspendable computation demos",
		Long: "coeff drives suspendable computations with effect handlers.\n" +
			"Each subcommand runs one demonstration program.",
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
			log.Logger = log.Output(zerolog.ConsoleWriter{Out: cmd.ErrOrStderr()})

			level, err := zerolog.ParseLevel(logLevel)
			if err != nil {
				fmt.Fprintf(cmd.ErrOrStderr(), "Invalid log level '%s', using 'info'\n", logLevel)
				level = zerolog.InfoLevel
			}
			zerolog.SetGlobalLevel(level)
		},
	}
	cmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "Set log level (trace, debug, info, warn, error)")
	cmd.AddCommand(newVersionCmd())
	cmd.AddCommand(newExceptionCmd())
	cmd.AddCommand(newStateCmd())
	cmd.AddCommand(newTimersCmd())
	return cmd
}

// logger bridges the global zerolog logger to logr.
// Debug maps to V(1) and trace to V(2).
func logger() logr.Logger {
	zerologr.SetMaxV(2)
	return zerologr.New(&log.Logger)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
