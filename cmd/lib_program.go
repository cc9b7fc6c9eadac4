package main

import (
	"errors"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/fornellas/slogxt/log"

	"github.com/fornellas/gctk/gcode"
)

// inputName is used for logging.
func inputName(args []string) string {
	if len(args) > 0 {
		return args[0]
	}
	return "(STDIN)"
}

// OpenInput opens the path given in args, or returns the command input if no path is given.
func OpenInput(cmd *cobra.Command, args []string) (io.ReadCloser, error) {
	if len(args) > 0 {
		return os.Open(args[0])
	}
	return io.NopCloser(cmd.InOrStdin()), nil
}

// ReadProgram parses the whole input program.
func ReadProgram(cmd *cobra.Command, args []string) (program gcode.Program, err error) {
	r, err := OpenInput(cmd, args)
	if err != nil {
		return nil, err
	}
	defer func() { err = errors.Join(err, r.Close()) }()
	return gcode.NewParser(r).Program()
}

// WriteProgram renders program to the output, one command per line.
func WriteProgram(cmd *cobra.Command, program gcode.Program) (err error) {
	w, err := outputValue.WriterCloser(cmd)
	if err != nil {
		return err
	}
	defer func() { err = errors.Join(err, w.Close()) }()

	_, err = io.Copy(w, gcode.NewProgramReader(program))
	return err
}

// GetTransformRunFn returns a cobra.Command.Run function that reads the input program, applies
// transform to it and writes it to the output. Nothing is written if transform fails.
func GetTransformRunFn(
	transform func(cmd *cobra.Command, program gcode.Program) error,
) func(cmd *cobra.Command, args []string) {
	return GetRunFn(func(cmd *cobra.Command, args []string) error {
		ctx, logger := log.MustWithAttrs(
			cmd.Context(),
			"input", inputName(args),
			"output", outputValue,
		)
		cmd.SetContext(ctx)
		logger.Info("Running")

		program, err := ReadProgram(cmd, args)
		if err != nil {
			return err
		}
		logger.Debug("Parsed", "lines", len(program))

		if err := transform(cmd, program); err != nil {
			return err
		}

		return WriteProgram(cmd, program)
	})
}
