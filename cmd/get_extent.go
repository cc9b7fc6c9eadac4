package main

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/fornellas/slogxt/log"

	"github.com/fornellas/gctk/gcode"
)

type ExtentFormatValue struct {
	format string
}

var extentFormats = map[string]func(v any) ([]byte, error){
	"json": json.Marshal,
	"yaml": yaml.Marshal,
}

func NewExtentFormatValue() *ExtentFormatValue {
	return &ExtentFormatValue{format: defaultExtentFormat}
}

func (f *ExtentFormatValue) String() string {
	return f.format
}

func (f *ExtentFormatValue) Set(value string) error {
	if _, ok := extentFormats[value]; !ok {
		return fmt.Errorf("invalid format %#v, must be one of: json, yaml", value)
	}
	f.format = value
	return nil
}

func (f *ExtentFormatValue) Reset() {
	f.format = defaultExtentFormat
}

func (f *ExtentFormatValue) Type() string {
	return "json|yaml"
}

// Marshal encodes the extent with the selected format, always ending with a new line.
func (f *ExtentFormatValue) Marshal(extent *gcode.Extent) ([]byte, error) {
	data, err := extentFormats[f.format](extent)
	if err != nil {
		return nil, err
	}
	if len(data) == 0 || data[len(data)-1] != '\n' {
		data = append(data, '\n')
	}
	return data, nil
}

var defaultExtentFormat = "json"
var extentFormatValue = NewExtentFormatValue()

var GetExtentCmd = &cobra.Command{
	Use:   "get-extent [path]",
	Short: "Read g-code and print the X/Y extent of all motion.",
	Long: "Read g-code and print the X/Y extent of all G0/G1 motion, honoring G90/G91 distance " +
		"modes. Any other motion related command is refused.",
	Args: cobra.MaximumNArgs(1),
	Run: GetRunFn(func(cmd *cobra.Command, args []string) (err error) {
		ctx, logger := log.MustWithAttrs(
			cmd.Context(),
			"input", inputName(args),
			"format", extentFormatValue,
			"output", outputValue,
		)
		cmd.SetContext(ctx)
		logger.Info("Running")

		program, err := ReadProgram(cmd, args)
		if err != nil {
			return err
		}

		extent, err := program.Extent()
		if err != nil {
			return err
		}
		logger.Debug("Extent", "min_x", extent.MinX, "min_y", extent.MinY, "max_x", extent.MaxX, "max_y", extent.MaxY)

		data, err := extentFormatValue.Marshal(extent)
		if err != nil {
			return err
		}

		w, err := outputValue.WriterCloser(cmd)
		if err != nil {
			return err
		}
		defer func() { err = errors.Join(err, w.Close()) }()

		n, err := w.Write(data)
		if err != nil {
			return err
		}
		if n != len(data) {
			return fmt.Errorf("short write")
		}
		return nil
	}),
}

func init() {
	GetExtentCmd.PersistentFlags().VarP(extentFormatValue, "format", "f", "Output format")

	AddOutputFlags(GetExtentCmd)
	RootCmd.AddCommand(GetExtentCmd)

	resetFlagsFns = append(resetFlagsFns, func() {
		extentFormatValue.Reset()
	})
}
