package gcode

import (
	"bytes"
	"fmt"
	"math"
	"strconv"
	"unicode"

	iFmt "github.com/fornellas/gctk/internal/fmt"
)

// Word may either give a command or provide an argument to a command.
type Word struct {
	letter rune
	number float64
	// The original string that declared this word. This is used to avoid parsing / serializing
	// upper/lowercase letters or float point representation differences, for consistency on output.
	originalStr *string
}

// NewWord creates a Word from given letter and number.
// letter must be capitalised, or it'll panic.
func NewWord(letter rune, number float64) *Word {
	if letter < 'A' || letter > 'Z' {
		panic(fmt.Sprintf("bug: attempting to create word with letter not between A-Z: %c", letter))
	}
	return &Word{letter: letter, number: number}
}

// NewWordParse creates a Word from given letter and a raw number string.
func NewWordParse(letter rune, number string) (*Word, error) {
	parsedNumber, err := strconv.ParseFloat(number, 64)
	if err != nil {
		return nil, err
	}
	originalStr := string(letter) + number
	return &Word{letter: unicode.ToUpper(letter), number: parsedNumber, originalStr: &originalStr}, nil
}

func (w *Word) Letter() rune {
	return w.letter
}

func (w *Word) Number() float64 {
	return w.number
}

// SetNumber changes the word number. From then on, String() yields the normalized representation.
func (w *Word) SetNumber(number float64) {
	w.number = number
	w.originalStr = nil
}

// String gives the representation of the word. If it has not been mutated, then it returns the
// exact original string (thus preserving letter casing and float point representation), otherwise
// it creates a new representation after the mutation.
func (w *Word) String() string {
	if w.originalStr != nil {
		return *w.originalStr
	}
	return w.NormalizedString()
}

// NormalizedString is similar to String(), but always return a consistent representation using
// uppercase letters, single point float precision for commands and up to 4 points precision for
// arguments.
func (w *Word) NormalizedString() string {
	if w.IsCommand() {
		if _, frac := math.Modf(w.number); frac == 0 {
			return fmt.Sprintf("%c%.0f", w.letter, w.number)
		}
		return fmt.Sprintf("%c%.1f", w.letter, w.number)
	}
	number := iFmt.SprintFloat(w.number, 4)
	if number == "-0" {
		number = "0"
	}
	return fmt.Sprintf("%c%s", w.letter, number)
}

// IsCommand returns true if the word is a command (letter G or M).
func (w *Word) IsCommand() bool {
	return w.letter == rune(MnemonicGeneral) || w.letter == rune(MnemonicMiscellaneous)
}

// Block is a line which may include commands to do several different things.
type Block struct {
	system *string
	words  []*Word
}

func NewBlockSystem(system string) *Block {
	return &Block{system: &system}
}

func NewBlockCommand(words ...*Word) *Block {
	return &Block{words: words}
}

func (b *Block) IsSystem() bool {
	return b.system != nil
}

func (b *Block) String() string {
	var buff bytes.Buffer
	if b.system != nil {
		buff.WriteString(*b.system)
	}
	for _, w := range b.words {
		buff.WriteString(w.String())
	}
	return buff.String()
}

func (b *Block) NormalizedString() string {
	var buff bytes.Buffer
	if b.system != nil {
		buff.WriteString(*b.system)
	}
	for _, w := range b.words {
		buff.WriteString(w.NormalizedString())
	}
	return buff.String()
}

// Commands groups the block words by command: each G/M word owns the argument words that follow
// it, up to the next G/M word.
func (b *Block) Commands() []*Command {
	var cmds []*Command
	for _, w := range b.words {
		if w.IsCommand() {
			cmds = append(cmds, &Command{word: w})
			continue
		}
		if len(cmds) > 0 {
			last := cmds[len(cmds)-1]
			last.arguments = append(last.arguments, w)
		}
	}
	return cmds
}

// LeadingArguments returns the argument words that precede the first command of the block. They
// belong to no command.
func (b *Block) LeadingArguments() []*Word {
	var args []*Word
	for _, w := range b.words {
		if w.IsCommand() {
			break
		}
		args = append(args, w)
	}
	return args
}

// Program is an ordered sequence of blocks, in execution order.
type Program []*Block
