package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/fornellas/slogxt/log"

	"github.com/fornellas/gctk/gcode"
)

var mirrorAxisFlagNames = map[gcode.Axis]string{
	gcode.AxisX: "x-line",
	gcode.AxisY: "y-line",
	gcode.AxisZ: "z-line",
}

var mirrorLines = map[gcode.Axis]*float64{
	gcode.AxisX: new(float64),
	gcode.AxisY: new(float64),
	gcode.AxisZ: new(float64),
}

var MirrorCmd = &cobra.Command{
	Use:   "mirror [path]",
	Short: "Read g-code and mirror coordinates about a line at one of X, Y or Z.",
	Long: "Read g-code and mirror coordinates about a line at one of X, Y or Z. G0/G1/G2 " +
		"coordinates are reflected about the line, arc center offsets are flipped and G91 " +
		"displacements are negated.",
	Args: cobra.MaximumNArgs(1),
	Run: GetTransformRunFn(func(cmd *cobra.Command, program gcode.Program) error {
		axis, value, err := mirrorAxis(cmd)
		if err != nil {
			return err
		}
		logger := log.MustLogger(cmd.Context())
		logger.Debug("Mirroring", "axis", axis, "line", value)
		return program.Mirror(axis, value)
	}),
}

// mirrorAxis returns the axis selected by flags. Flag groups guarantee exactly one was given.
func mirrorAxis(cmd *cobra.Command) (gcode.Axis, float64, error) {
	for _, axis := range []gcode.Axis{gcode.AxisX, gcode.AxisY, gcode.AxisZ} {
		if cmd.Flags().Changed(mirrorAxisFlagNames[axis]) {
			return axis, *mirrorLines[axis], nil
		}
	}
	return 0, 0, fmt.Errorf("one of --x-line, --y-line or --z-line must be given")
}

func init() {
	var flagNames []string
	for _, axis := range []gcode.Axis{gcode.AxisX, gcode.AxisY, gcode.AxisZ} {
		name := mirrorAxisFlagNames[axis]
		MirrorCmd.Flags().Float64VarP(
			mirrorLines[axis], name, strings.ToLower(axis.String()), 0,
			fmt.Sprintf("%s coordinate of the mirror line", axis),
		)
		flagNames = append(flagNames, name)
	}
	MirrorCmd.MarkFlagsMutuallyExclusive(flagNames...)
	MirrorCmd.MarkFlagsOneRequired(flagNames...)

	AddOutputFlags(MirrorCmd)
	RootCmd.AddCommand(MirrorCmd)

	resetFlagsFns = append(resetFlagsFns, func() {
		for _, line := range mirrorLines {
			*line = 0
		}
	})
}
