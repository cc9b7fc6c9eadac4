package main

import (
	"context"
	"os"

	"github.com/spf13/cobra"

	"github.com/fornellas/slogxt/log"
)

// Exit terminates the program with given code. It is a variable so that tests can intercept it.
var Exit = func(code int) {
	os.Exit(code)
}

// ExitError logs err and exits with code 1.
func ExitError(ctx context.Context, err error) {
	logger := log.MustLogger(ctx)
	logger.Error("Failed", "err", err)
	Exit(1)
}

// GetRunFn adapts fn to a cobra.Command.Run function that calls ExitError when fn fails.
func GetRunFn(fn func(cmd *cobra.Command, args []string) error) func(cmd *cobra.Command, args []string) {
	return func(cmd *cobra.Command, args []string) {
		if err := fn(cmd, args); err != nil {
			ExitError(cmd.Context(), err)
		}
	}
}
