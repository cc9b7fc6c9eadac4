package gcode

import (
	"fmt"
	"math"
)

// Translate adds offset to the X / Y / Z arguments of G0, G1 and G2 commands. Arc center offsets
// (I / J / K) are relative, so they are not changed.
//
// The offset is added regardless of distance mode, so under G91 the path shape changes.
func (p Program) Translate(offset Point3) error {
	return p.walk(translateCommands, func(_ int, cmd *Command, b behavior) error {
		if b != behaviorMotion && b != behaviorArc {
			return nil
		}
		for _, w := range cmd.Arguments() {
			var delta float64
			switch w.Letter() {
			case 'X':
				delta = offset.X
			case 'Y':
				delta = offset.Y
			case 'Z':
				delta = offset.Z
			}
			if delta != 0 {
				w.SetNumber(w.Number() + delta)
			}
		}
		return nil
	})
}

// mirroredArcOffset gives the arc center offset letter which is negated when mirroring about axis.
func mirroredArcOffset(axis Axis) (rune, bool) {
	switch axis {
	case AxisX:
		return 'J', true
	case AxisY:
		return 'I', true
	case AxisZ:
		return 0, false
	}
	panic(fmt.Sprintf("bug: unexpected Axis: %d", axis))
}

// Mirror reflects coordinates for axis about the line at value:
//   - G0 / G1: the axis argument v becomes 2*value-v.
//   - G2: same as G0 / G1; J is negated for X and I is negated for Y.
//   - G91: the axis argument is negated.
func (p Program) Mirror(axis Axis, value float64) error {
	if !axis.Valid() {
		return fmt.Errorf("invalid mirror axis: %d", axis)
	}
	letter := axis.Letter()
	arcOffsetLetter, flipArcOffset := mirroredArcOffset(axis)

	return p.walk(mirrorCommands, func(_ int, cmd *Command, b behavior) error {
		for _, w := range cmd.Arguments() {
			switch b {
			case behaviorMotion, behaviorArc:
				if w.Letter() == letter {
					w.SetNumber(2*value - w.Number())
				} else if b == behaviorArc && flipArcOffset && w.Letter() == arcOffsetLetter {
					w.SetNumber(-w.Number())
				}
			case behaviorRelative:
				if w.Letter() == letter {
					w.SetNumber(-w.Number())
				}
			}
		}
		return nil
	})
}

func rotateArguments(cmd *Command, a, b rune, rotate func(u, v float64) (float64, float64)) error {
	aw := cmd.Argument(a)
	bw := cmd.Argument(b)
	if aw == nil && bw == nil {
		return nil
	}
	if aw == nil {
		return fmt.Errorf("%s: rotation unsupported for %c without %c", cmd, b, a)
	}
	if bw == nil {
		return fmt.Errorf("%s: rotation unsupported for %c without %c", cmd, a, b)
	}
	ra, rb := rotate(aw.Number(), bw.Number())
	aw.SetNumber(ra)
	bw.SetNumber(rb)
	return nil
}

// RotateXY rotates work coordinates at the XY plane. Machine coordinates are not affected.
// cx and cy are the center coordinates for the rotation, radians is the angle (looking down at XY
// from Z positive to Z negative). Arc center offsets are rotated as vectors.
func (p Program) RotateXY(cx, cy, radians float64) error {
	sin, cos := math.Sin(radians), math.Cos(radians)
	rotatePoint := func(x, y float64) (float64, float64) {
		dx, dy := x-cx, y-cy
		return dx*cos - dy*sin + cx, dx*sin + dy*cos + cy
	}
	rotateVector := func(i, j float64) (float64, float64) {
		return i*cos - j*sin, i*sin + j*cos
	}

	return p.walk(rotateXYCommands, func(lineIdx int, cmd *Command, b behavior) error {
		if b != behaviorMotion && b != behaviorArc {
			return nil
		}
		if err := rotateArguments(cmd, 'X', 'Y', rotatePoint); err != nil {
			return fmt.Errorf("line %d: %w", lineIdx+1, err)
		}
		if b == behaviorArc {
			if err := rotateArguments(cmd, 'I', 'J', rotateVector); err != nil {
				return fmt.Errorf("line %d: %w", lineIdx+1, err)
			}
		}
		return nil
	})
}
