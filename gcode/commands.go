package gcode

// behavior tells how an operation treats a General class command.
type behavior int

const (
	behaviorUnsupported behavior = iota
	behaviorMotion
	behaviorArc
	behaviorAbsolute
	behaviorRelative
	behaviorIgnore
)

// commandTable maps General class major numbers to the behavior of one operation. Numbers not
// in the table are unsupported.
type commandTable map[int]behavior

func (t commandTable) lookup(cmd *Command) behavior {
	if cmd.MinorNumber() != 0 {
		return behaviorUnsupported
	}
	return t[cmd.MajorNumber()]
}

var extentCommands = commandTable{
	0:  behaviorMotion,   // Coordinated Motion at Rapid Rate
	1:  behaviorMotion,   // Coordinated Motion at Feed Rate
	4:  behaviorIgnore,   // Dwell
	21: behaviorIgnore,   // Units Millimeters
	64: behaviorIgnore,   // Path Blending
	90: behaviorAbsolute, // Distance Mode Absolute
	91: behaviorRelative, // Distance Mode Incremental
	94: behaviorIgnore,   // Feed Rate Mode Units per Minute
}

var translateCommands = commandTable{
	0:  behaviorMotion,
	1:  behaviorMotion,
	2:  behaviorArc, // Clockwise Arc
	4:  behaviorIgnore,
	21: behaviorIgnore,
	64: behaviorIgnore,
	90: behaviorIgnore,
	91: behaviorIgnore,
	94: behaviorIgnore,
}

var mirrorCommands = commandTable{
	0:  behaviorMotion,
	1:  behaviorMotion,
	2:  behaviorArc,
	4:  behaviorIgnore,
	21: behaviorIgnore,
	64: behaviorIgnore,
	90: behaviorIgnore,
	91: behaviorRelative,
	94: behaviorIgnore,
}

// Incremental distance mode is left out: deltas can not be rotated about a center.
var rotateXYCommands = commandTable{
	0:  behaviorMotion,
	1:  behaviorMotion,
	2:  behaviorArc,
	4:  behaviorIgnore,
	21: behaviorIgnore,
	64: behaviorIgnore,
	90: behaviorIgnore,
	94: behaviorIgnore,
}

// walk calls fn for every General class command of the program, in order, along with its
// 0-indexed line and its behavior from table. It stops at the first unsupported command or error.
// Arguments without a command and repeated argument letters are refused: their meaning depends on
// modal state that is not tracked.
func (p Program) walk(table commandTable, fn func(lineIdx int, cmd *Command, b behavior) error) error {
	for lineIdx, block := range p {
		if args := block.LeadingArguments(); len(args) > 0 {
			return &OrphanArgumentsError{Line: lineIdx + 1, Arguments: args}
		}
		for _, cmd := range block.Commands() {
			if cmd.Mnemonic() != MnemonicGeneral {
				continue
			}
			b := table.lookup(cmd)
			if b == behaviorUnsupported {
				return &UnsupportedCommandError{Command: cmd}
			}
			if letter, ok := cmd.DuplicateLetter(); ok {
				return &DuplicateArgumentError{Line: lineIdx + 1, Command: cmd, Letter: letter}
			}
			if err := fn(lineIdx, cmd, b); err != nil {
				return err
			}
		}
	}
	return nil
}
