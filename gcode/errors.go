package gcode

import (
	"bytes"
	"errors"
	"fmt"
)

// ErrEmptyExtent is returned when a program has no motion on at least one of the X / Y axes.
var ErrEmptyExtent = errors.New("found empty extent (maybe input contains no movement commands on some axis?)")

// UnsupportedCommandError is returned when a General class command is not known to the
// operation. Operations refuse to guess the effect of such commands.
type UnsupportedCommandError struct {
	Command *Command
}

func (e *UnsupportedCommandError) Error() string {
	return fmt.Sprintf("found unsupported command %s", e.Command.Word().NormalizedString())
}

// UnknownPositionError is returned when a relative motion has no known absolute position to
// resolve against. Line is 1-indexed.
type UnknownPositionError struct {
	Line int
}

func (e *UnknownPositionError) Error() string {
	return fmt.Sprintf("found relative motion command with unknown absolute position on line number %d", e.Line)
}

// OrphanArgumentsError is returned when a line has argument words before any command, such as
// coordinates relying on the modal motion of a previous line. Line is 1-indexed.
type OrphanArgumentsError struct {
	Line      int
	Arguments []*Word
}

func (e *OrphanArgumentsError) Error() string {
	var buff bytes.Buffer
	for _, w := range e.Arguments {
		buff.WriteString(w.NormalizedString())
	}
	return fmt.Sprintf("found arguments without command %s on line number %d", buff.String(), e.Line)
}

// DuplicateArgumentError is returned when a command has more than one argument with the same
// letter. Line is 1-indexed.
type DuplicateArgumentError struct {
	Line    int
	Command *Command
	Letter  rune
}

func (e *DuplicateArgumentError) Error() string {
	return fmt.Sprintf(
		"found multiple %c arguments for command %s on line number %d",
		e.Letter, e.Command.Word().NormalizedString(), e.Line,
	)
}
