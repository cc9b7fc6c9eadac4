package gcode

import "fmt"

// Axis is one of the linear machine axes.
type Axis int

const (
	AxisX Axis = iota
	AxisY
	AxisZ
)

// Letter is the argument word letter for the axis.
func (a Axis) Letter() rune {
	switch a {
	case AxisX:
		return 'X'
	case AxisY:
		return 'Y'
	case AxisZ:
		return 'Z'
	}
	panic(fmt.Sprintf("bug: unexpected Axis: %d", a))
}

// Valid tells whether a is one of AxisX, AxisY or AxisZ.
func (a Axis) Valid() bool {
	return a == AxisX || a == AxisY || a == AxisZ
}

func (a Axis) String() string {
	return string(a.Letter())
}

// Point3 is a point (or an offset) in X / Y / Z space.
type Point3 struct {
	X, Y, Z float64
}

func (p *Point3) axis(a Axis) *float64 {
	switch a {
	case AxisX:
		return &p.X
	case AxisY:
		return &p.Y
	case AxisZ:
		return &p.Z
	}
	panic(fmt.Sprintf("bug: unexpected Axis: %d", a))
}

// PositioningMode is the distance mode set by G90 / G91.
type PositioningMode int

const (
	PositioningModeAbsolute PositioningMode = iota
	PositioningModeRelative
)

func (m PositioningMode) String() string {
	switch m {
	case PositioningModeAbsolute:
		return "Absolute"
	case PositioningModeRelative:
		return "Relative"
	}
	panic(fmt.Sprintf("unexpected PositioningMode: %d", m))
}

// positioning tracks distance mode and absolute position while walking a program. Its zero value
// is the state at the start of a program: absolute mode, no known position.
type positioning struct {
	mode     PositioningMode
	position Point3
	known    [3]bool
}

// apply updates the distance mode for G90 / G91.
func (p *positioning) apply(b behavior) {
	switch b {
	case behaviorAbsolute:
		p.mode = PositioningModeAbsolute
	case behaviorRelative:
		p.mode = PositioningModeRelative
	}
}

// resolve takes an axis argument value from given 0-indexed line and returns the absolute
// coordinate for it, accumulating the position along the way.
func (p *positioning) resolve(lineIdx int, axis Axis, value float64) (float64, error) {
	position := p.position.axis(axis)
	switch p.mode {
	case PositioningModeAbsolute:
		*position = value
		p.known[axis] = true
	case PositioningModeRelative:
		if !p.known[axis] {
			return 0, &UnknownPositionError{Line: lineIdx + 1}
		}
		*position += value
	}
	return *position, nil
}
