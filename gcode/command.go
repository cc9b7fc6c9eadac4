package gcode

import (
	"bytes"
	"fmt"
	"math"
)

// Mnemonic is the class of a command, given by its word letter.
type Mnemonic rune

const (
	// MnemonicGeneral is for G codes, the only class interpreted by the toolkit.
	MnemonicGeneral Mnemonic = 'G'
	// MnemonicMiscellaneous is for M codes.
	MnemonicMiscellaneous Mnemonic = 'M'
)

func (m Mnemonic) String() string {
	switch m {
	case MnemonicGeneral:
		return "General"
	case MnemonicMiscellaneous:
		return "Miscellaneous"
	}
	panic(fmt.Sprintf("unexpected Mnemonic: %c", m))
}

// Command is a G/M word together with the argument words it owns.
type Command struct {
	word      *Word
	arguments []*Word
}

// NewCommand creates a Command from its command word and arguments. It panics if word is not a
// command.
func NewCommand(word *Word, arguments ...*Word) *Command {
	if !word.IsCommand() {
		panic(fmt.Sprintf("bug: %s is not a command word", word))
	}
	return &Command{word: word, arguments: arguments}
}

func (c *Command) Word() *Word {
	return c.word
}

func (c *Command) Mnemonic() Mnemonic {
	return Mnemonic(c.word.Letter())
}

// MajorNumber is the integer part of the command number, eg: 38 for G38.2.
func (c *Command) MajorNumber() int {
	major, _ := math.Modf(c.word.Number())
	return int(major)
}

// MinorNumber is the first decimal digit of the command number, eg: 2 for G38.2.
func (c *Command) MinorNumber() int {
	_, frac := math.Modf(c.word.Number())
	return int(math.Round(frac * 10))
}

// Arguments returns the argument words of the command, in order. Mutating the returned words
// mutates the block they came from.
func (c *Command) Arguments() []*Word {
	return c.arguments
}

// Argument returns the first argument word for the given letter, or nil if absent.
func (c *Command) Argument(letter rune) *Word {
	for _, w := range c.arguments {
		if w.Letter() == letter {
			return w
		}
	}
	return nil
}

// DuplicateLetter returns the first argument letter given more than once, if any.
func (c *Command) DuplicateLetter() (rune, bool) {
	seen := map[rune]bool{}
	for _, w := range c.arguments {
		if seen[w.Letter()] {
			return w.Letter(), true
		}
		seen[w.Letter()] = true
	}
	return 0, false
}

// String renders the command word followed by its arguments, preserving original text of
// words that were not mutated.
func (c *Command) String() string {
	var buff bytes.Buffer
	buff.WriteString(c.word.String())
	for _, w := range c.arguments {
		buff.WriteString(w.String())
	}
	return buff.String()
}

func (c *Command) NormalizedString() string {
	var buff bytes.Buffer
	buff.WriteString(c.word.NormalizedString())
	for _, w := range c.arguments {
		buff.WriteString(w.NormalizedString())
	}
	return buff.String()
}
