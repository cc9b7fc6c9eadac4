package main

import (
	"github.com/spf13/cobra"

	"github.com/fornellas/slogxt/log"

	"github.com/fornellas/gctk/gcode"
)

var TranslateCmd = &cobra.Command{
	Use:   "translate [path]",
	Short: "Read g-code and translate X/Y/Z coordinates of G0/G1/G2 commands.",
	Args:  cobra.MaximumNArgs(1),
	Run: GetTransformRunFn(func(cmd *cobra.Command, program gcode.Program) error {
		offset := gcode.Point3{X: translateX, Y: translateY, Z: translateZ}
		logger := log.MustLogger(cmd.Context())
		logger.Debug("Translating", "x-offset", offset.X, "y-offset", offset.Y, "z-offset", offset.Z)
		return program.Translate(offset)
	}),
}

var translateX float64
var defaultTranslateX float64 = 0

var translateY float64
var defaultTranslateY float64 = 0

var translateZ float64
var defaultTranslateZ float64 = 0

func init() {
	TranslateCmd.PersistentFlags().Float64VarP(&translateX, "x-offset", "x", defaultTranslateX, "Offset to add to X coordinates")
	TranslateCmd.PersistentFlags().Float64VarP(&translateY, "y-offset", "y", defaultTranslateY, "Offset to add to Y coordinates")
	TranslateCmd.PersistentFlags().Float64VarP(&translateZ, "z-offset", "z", defaultTranslateZ, "Offset to add to Z coordinates")

	AddOutputFlags(TranslateCmd)
	RootCmd.AddCommand(TranslateCmd)

	resetFlagsFns = append(resetFlagsFns, func() {
		translateX = defaultTranslateX
		translateY = defaultTranslateY
		translateZ = defaultTranslateZ
	})
}
