package gcode

import (
	"io"
	"sync"
)

// ProgramReader renders a Program and implements the [io.Reader] interface. Each command is
// rendered on its own line, followed by its arguments. System blocks are rendered verbatim and
// arguments preceding the first command of a block get a line of their own. Empty blocks are
// skipped.
type ProgramReader struct {
	program Program
	mu      sync.Mutex
	next    int
	buffer  []byte
}

func NewProgramReader(program Program) *ProgramReader {
	return &ProgramReader{
		program: program,
	}
}

func renderBlock(block *Block) []byte {
	var data []byte
	if block.IsSystem() {
		data = append(data, block.String()...)
		return append(data, '\n')
	}
	if args := block.LeadingArguments(); len(args) > 0 {
		for _, w := range args {
			data = append(data, w.String()...)
		}
		data = append(data, '\n')
	}
	for _, cmd := range block.Commands() {
		data = append(data, cmd.String()...)
		data = append(data, '\n')
	}
	return data
}

// Read yields the rendering of each block of the program, in order.
func (pr *ProgramReader) Read(p []byte) (int, error) {
	pr.mu.Lock()
	defer pr.mu.Unlock()

	for len(pr.buffer) == 0 {
		if pr.next >= len(pr.program) {
			return 0, io.EOF
		}
		pr.buffer = renderBlock(pr.program[pr.next])
		pr.next++
	}

	n := copy(p, pr.buffer)
	pr.buffer = pr.buffer[n:]
	return n, nil
}
