package gcode

import (
	"fmt"
	"io"
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func renderProgram(t *testing.T, program Program) string {
	t.Helper()
	data, err := io.ReadAll(NewProgramReader(program))
	require.NoError(t, err)
	return string(data)
}

// argumentNumbers returns all argument numbers of the program, keyed by line / command index and
// letter.
func argumentNumbers(program Program) map[[2]int]map[rune]float64 {
	numbers := map[[2]int]map[rune]float64{}
	for i, block := range program {
		for j, cmd := range block.Commands() {
			args := map[rune]float64{}
			for _, w := range cmd.Arguments() {
				args[w.Letter()] = w.Number()
			}
			numbers[[2]int{i, j}] = args
		}
	}
	return numbers
}

func requireArgumentsInDelta(t *testing.T, expected, actual map[[2]int]map[rune]float64) {
	t.Helper()
	require.Equal(t, len(expected), len(actual))
	for key, args := range expected {
		require.Equal(t, len(args), len(actual[key]), "command %v", key)
		for letter, number := range args {
			require.InDeltaf(t, number, actual[key][letter], 1e-9, "command %v letter %c", key, letter)
		}
	}
}

const transformGcode = "G90 G21\nG0 X1 Y2 Z3\nG1 X-4.5 Y0.25 F300\nG2 X10 Y5 Z-1 I2 J-3\nG4 P0.5\nM3 S1000\nG94 G64 P0.01\nG0 Z5\n"

func TestTranslate(t *testing.T) {
	program := parseProgram(t, "G90\nG1 X1 Y2 Z3 F100\nG2 X4 Y5 I1 J1\nM3 S100\n$H\n")
	require.NoError(t, program.Translate(Point3{X: 1, Y: -2, Z: 0.5}))
	require.Equal(t, "G90\nG1X2Y0Z3.5F100\nG2X5Y3I1J1\nM3S100\n$H\n", renderProgram(t, program))
}

func TestTranslateZeroOffsetKeepsText(t *testing.T) {
	program := parseProgram(t, "G1 X1.000 Y2.50")
	require.NoError(t, program.Translate(Point3{X: 1}))
	require.Equal(t, "G1X2Y2.50\n", renderProgram(t, program))
}

func TestTranslateRelativeDeltas(t *testing.T) {
	program := parseProgram(t, "G91 G1 X1 Y1")
	require.NoError(t, program.Translate(Point3{X: 10, Y: 10}))
	require.Equal(t, "G91\nG1X11Y11\n", renderProgram(t, program))
}

func TestTranslateRoundTrip(t *testing.T) {
	for _, offset := range []Point3{
		{X: 0, Y: 0, Z: 0},
		{X: 10, Y: -20, Z: 0.3},
		{X: -0.001, Y: 1e6, Z: -7},
	} {
		program := parseProgram(t, transformGcode)
		original := argumentNumbers(program)

		require.NoError(t, program.Translate(offset))
		require.NoError(t, program.Translate(Point3{X: -offset.X, Y: -offset.Y, Z: -offset.Z}))

		requireArgumentsInDelta(t, original, argumentNumbers(program))
	}
}

func TestMirrorLinear(t *testing.T) {
	testCases := []struct {
		axis     Axis
		value    float64
		expected string
	}{
		{AxisX, 5, "G1X8Y3Z1\n"},
		{AxisX, 0, "G1X-2Y3Z1\n"},
		{AxisY, 1, "G1X2Y-1Z1\n"},
		{AxisZ, -1, "G1X2Y3Z-3\n"},
	}
	for _, tc := range testCases {
		t.Run(tc.axis.String(), func(t *testing.T) {
			program := parseProgram(t, "G1 X2 Y3 Z1")
			require.NoError(t, program.Mirror(tc.axis, tc.value))
			require.Equal(t, tc.expected, renderProgram(t, program))
		})
	}
}

func TestMirrorArc(t *testing.T) {
	testCases := []struct {
		axis     Axis
		value    float64
		expected string
	}{
		{AxisX, 5, "G2X0Y5I2J3\n"},
		{AxisY, 0, "G2X10Y-5I-2J-3\n"},
		{AxisZ, 0, "G2X10Y5I2J-3\n"},
	}
	for _, tc := range testCases {
		t.Run(tc.axis.String(), func(t *testing.T) {
			program := parseProgram(t, "G2 X10 Y5 I2 J-3")
			require.NoError(t, program.Mirror(tc.axis, tc.value))
			require.Equal(t, tc.expected, renderProgram(t, program))
		})
	}
}

func TestMirrorRelative(t *testing.T) {
	program := parseProgram(t, "G91 X5 Y-2\nG90")
	require.NoError(t, program.Mirror(AxisX, 100))
	require.Equal(t, "G91X-5Y-2\nG90\n", renderProgram(t, program))

	program = parseProgram(t, "G91 X5 Y-2")
	require.NoError(t, program.Mirror(AxisY, 100))
	require.Equal(t, "G91X5Y2\n", renderProgram(t, program))
}

func TestMirrorInvolution(t *testing.T) {
	for _, axis := range []Axis{AxisX, AxisY, AxisZ} {
		for _, value := range []float64{0, 2.5, -13} {
			program := parseProgram(t, transformGcode+"G91 X1 Y1 Z1\n")
			original := argumentNumbers(program)

			require.NoError(t, program.Mirror(axis, value))
			require.NoError(t, program.Mirror(axis, value))

			requireArgumentsInDelta(t, original, argumentNumbers(program))
		}
	}
}

func TestMirrorLeavesOtherAxes(t *testing.T) {
	program := parseProgram(t, "G0 X1 Y2 Z3 F4")
	require.NoError(t, program.Mirror(AxisY, 7))
	numbers := argumentNumbers(program)[[2]int{0, 0}]
	require.Equal(t, 1.0, numbers['X'])
	require.Equal(t, 12.0, numbers['Y'])
	require.Equal(t, 3.0, numbers['Z'])
	require.Equal(t, 4.0, numbers['F'])
}

func TestMirrorInvalidAxis(t *testing.T) {
	program := parseProgram(t, "G1 X1")
	require.ErrorContains(t, program.Mirror(Axis(7), 0), "invalid mirror axis")
	require.Equal(t, "G1X1\n", renderProgram(t, program))
}

func TestRotateXY(t *testing.T) {
	program := parseProgram(t, "G90\nG1 X1 Y0 Z4\nG2 X0 Y1 I-1 J0\nG0 Z5")
	require.NoError(t, program.RotateXY(0, 0, math.Pi/2))
	requireArgumentsInDelta(t, map[[2]int]map[rune]float64{
		{0, 0}: {},
		{1, 0}: {'X': 0, 'Y': 1, 'Z': 4},
		{2, 0}: {'X': -1, 'Y': 0, 'I': 0, 'J': -1},
		{3, 0}: {'Z': 5},
	}, argumentNumbers(program))
}

func TestRotateXYAboutCenter(t *testing.T) {
	program := parseProgram(t, "G1 X2 Y1")
	require.NoError(t, program.RotateXY(1, 1, math.Pi))
	requireArgumentsInDelta(t, map[[2]int]map[rune]float64{
		{0, 0}: {'X': 0, 'Y': 1},
	}, argumentNumbers(program))
}

func TestRotateXYFullTurn(t *testing.T) {
	program := parseProgram(t, transformGcode)
	original := argumentNumbers(program)
	require.NoError(t, program.RotateXY(3, -4, 2*math.Pi))
	requireArgumentsInDelta(t, original, argumentNumbers(program))
}

func TestRotateXYErrors(t *testing.T) {
	testCases := []struct {
		gcode         string
		errorContains string
	}{
		{"G1 X1", "line 1: G1X1: rotation unsupported for X without Y"},
		{"G0 X0 Y0\nG1 Y1", "line 2: G1Y1: rotation unsupported for Y without X"},
		{"G2 X1 Y1 I1", "rotation unsupported for I without J"},
		{"G91\nG1 X1 Y1", "found unsupported command G91"},
	}
	for _, tc := range testCases {
		t.Run(tc.gcode, func(t *testing.T) {
			require.ErrorContains(t, parseProgram(t, tc.gcode).RotateXY(0, 0, 1), tc.errorContains)
		})
	}
}

func TestTransformUnsupportedCommand(t *testing.T) {
	operations := map[string]func(Program) error{
		"translate": func(p Program) error { return p.Translate(Point3{X: 1}) },
		"mirror":    func(p Program) error { return p.Mirror(AxisX, 1) },
		"rotate":    func(p Program) error { return p.RotateXY(0, 0, 1) },
	}
	for name, operation := range operations {
		for _, gcode := range []string{
			"G17\nG1 X1 Y1",
			"G1 X1 Y1\nG17",
			"G1 X1 Y1\nG3 X2 Y2 I1 J1",
			"G28",
			"G38.2 Z-5",
		} {
			t.Run(name+" "+gcode, func(t *testing.T) {
				err := operation(parseProgram(t, gcode))
				var unsupportedErr *UnsupportedCommandError
				require.ErrorAs(t, err, &unsupportedErr)
			})
		}
	}
}

var walkOperations = map[string]func(Program) error{
	"extent":    func(p Program) error { _, err := p.Extent(); return err },
	"translate": func(p Program) error { return p.Translate(Point3{X: 5}) },
	"mirror":    func(p Program) error { return p.Mirror(AxisX, 1) },
	"rotate":    func(p Program) error { return p.RotateXY(0, 0, 1) },
}

func TestOrphanArguments(t *testing.T) {
	testCases := []struct {
		gcode string
		line  int
	}{
		{"G1 X0 Y0\nX100 Y100\nG1 X1 Y1", 2},
		{"G1 X0 Y0\n\n(c)\nF100 G1 X1 Y1", 4},
		{"Y1", 1},
	}
	for name, operation := range walkOperations {
		for _, tc := range testCases {
			t.Run(name+" "+tc.gcode, func(t *testing.T) {
				program := parseProgram(t, tc.gcode)
				err := operation(program)
				var orphanErr *OrphanArgumentsError
				require.ErrorAs(t, err, &orphanErr)
				require.Equal(t, tc.line, orphanErr.Line)
				require.ErrorContains(t, err, fmt.Sprintf("on line number %d", tc.line))
			})
		}
	}
}

func TestDuplicateArgument(t *testing.T) {
	for name, operation := range walkOperations {
		t.Run(name, func(t *testing.T) {
			err := operation(parseProgram(t, "G0 X0 Y0\nG1 X1 X2 Y1"))
			var duplicateErr *DuplicateArgumentError
			require.ErrorAs(t, err, &duplicateErr)
			require.Equal(t, 2, duplicateErr.Line)
			require.Equal(t, 'X', duplicateErr.Letter)
			require.ErrorContains(t, err, "found multiple X arguments for command G1 on line number 2")
		})
	}
}
