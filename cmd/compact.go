package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/fornellas/slogxt/log"

	"github.com/fornellas/gctk/gcode"
)

var CompactCmd = &cobra.Command{
	Use:   "compact [path]",
	Short: "Read g-code and compact it by stripping spaces, comments and empty lines.",
	Args:  cobra.MaximumNArgs(1),
	Run: GetRunFn(func(cmd *cobra.Command, args []string) (err error) {
		ctx, logger := log.MustWithAttrs(
			cmd.Context(),
			"input", inputName(args),
			"output", outputValue,
		)
		cmd.SetContext(ctx)
		logger.Info("Running")

		r, err := OpenInput(cmd, args)
		if err != nil {
			return err
		}
		defer func() { err = errors.Join(err, r.Close()) }()

		w, err := outputValue.WriterCloser(cmd)
		if err != nil {
			return err
		}
		defer func() { err = errors.Join(err, w.Close()) }()

		parser := gcode.NewParser(r)
		for {
			eof, block, _, err := parser.Next()
			if err != nil {
				return err
			}
			if block != nil {
				line := block.String()
				n, err := fmt.Fprintln(w, line)
				if err != nil {
					return err
				}
				if n != len(line)+1 {
					return fmt.Errorf("short write")
				}
			}
			if eof {
				return nil
			}
		}
	}),
}

func init() {
	AddOutputFlags(CompactCmd)
	RootCmd.AddCommand(CompactCmd)
}
