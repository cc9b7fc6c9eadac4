package gcode

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
)

type TokenType int

const (
	TokenTypeEOF TokenType = iota
	TokenTypeSpace
	TokenTypeComment
	TokenTypeSystem
	TokenTypeWordLetter
	TokenTypeWordNumber
	TokenTypeNewLine
)

var tokenTypeNames = map[TokenType]string{
	TokenTypeEOF:        "EOF",
	TokenTypeSpace:      "Space",
	TokenTypeComment:    "Comment",
	TokenTypeSystem:     "System",
	TokenTypeWordLetter: "WordLetter",
	TokenTypeWordNumber: "WordNumber",
	TokenTypeNewLine:    "NewLine",
}

func (tt TokenType) String() string {
	if name, ok := tokenTypeNames[tt]; ok {
		return name
	}
	panic(fmt.Sprintf("unexpected TokenType: %d", tt))
}

type Token struct {
	Value string
	Type  TokenType
}

// Tokens holds all tokens of a single line, in order.
type Tokens []*Token

// String gives back the exact text the tokens were scanned from.
func (ts Tokens) String() string {
	var buff bytes.Buffer
	for _, t := range ts {
		buff.WriteString(t.Value)
	}
	return buff.String()
}

// Lexer tokenizes G-Code, following Grbl's own line protocol rules.
type Lexer struct {
	// Line is the 1-indexed number of the line currently being scanned.
	Line    uint
	scanner *bufio.Scanner
}

// NewLexer creates a new Lexer.
func NewLexer(rd io.Reader) *Lexer {
	scanner := bufio.NewScanner(bufio.NewReader(rd))
	scanner.Split(scanToken)
	return &Lexer{Line: 1, scanner: scanner}
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t'
}

func isCommentStart(c byte) bool {
	return c == '(' || c == ';'
}

func isSystemStart(c byte) bool {
	return c == '$'
}

func isLetterStart(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isNumberStart(c byte) bool {
	return c == '-' || c == '+' || c == '.' || (c >= '0' && c <= '9')
}

func isNewLineStart(c byte) bool {
	return c == '\n' || c == '\r'
}

// scanUntilEOL consumes everything up to, but excluding, the line terminator.
func scanUntilEOL(data []byte, atEOF bool) (int, []byte, error) {
	i := bytes.IndexByte(data, '\n')
	if i < 0 {
		if atEOF {
			return len(data), data, nil
		}
		return 0, nil, nil
	}
	if i > 0 && data[i-1] == '\r' {
		i--
	}
	return i, data[:i], nil
}

func scanNumber(data []byte, atEOF bool) (int, []byte, error) {
	i := 0
	if data[i] == '-' || data[i] == '+' {
		i++
	}
	var digits int
	var decimal bool
	for i < len(data) {
		c := data[i]
		if c >= '0' && c <= '9' {
			digits++
		} else if c == '.' && !decimal {
			decimal = true
		} else {
			break
		}
		i++
	}
	if i == len(data) && !atEOF {
		return 0, nil, nil
	}
	if digits == 0 {
		return 0, nil, fmt.Errorf("invalid number: %q", data[:i])
	}
	return i, data[:i], nil
}

//gocyclo:ignore
func scanToken(data []byte, atEOF bool) (advance int, token []byte, err error) {
	if atEOF && len(data) == 0 {
		return 0, nil, nil
	}

	c := data[0]
	switch {
	case isSpace(c):
		i := 0
		for i < len(data) && isSpace(data[i]) {
			i++
		}
		return i, data[:i], nil
	case c == '(':
		for i := 1; i < len(data); i++ {
			switch data[i] {
			case ')':
				return i + 1, data[:i+1], nil
			case '\n':
				return 0, nil, errors.New("end of line reached without closing parenthesis")
			}
		}
		if atEOF {
			return 0, nil, errors.New("end of file reached without closing parenthesis")
		}
		return 0, nil, nil
	case c == ';', isSystemStart(c):
		return scanUntilEOL(data, atEOF)
	case isLetterStart(c):
		return 1, data[:1], nil
	case isNumberStart(c):
		return scanNumber(data, atEOF)
	case c == '\n':
		return 1, data[:1], nil
	case c == '\r':
		if len(data) > 1 {
			if data[1] == '\n' {
				return 2, data[:2], nil
			}
			return 0, nil, fmt.Errorf("CR without LF")
		}
		if atEOF {
			return 0, nil, fmt.Errorf("CR before EOF")
		}
		return 0, nil, nil
	}

	return 0, nil, fmt.Errorf("unexpected char: %q", c)
}

// Next returns the next token. At the end of input, a token of type TokenTypeEOF is returned.
func (lx *Lexer) Next() (*Token, error) {
	if !lx.scanner.Scan() {
		if err := lx.scanner.Err(); err != nil {
			return nil, fmt.Errorf("line %d: %w", lx.Line, err)
		}
		return &Token{Type: TokenTypeEOF}, nil
	}

	value := lx.scanner.Text()
	if len(value) == 0 {
		panic(fmt.Sprintf("bug: empty token received at line %d", lx.Line))
	}

	c := value[0]
	switch {
	case isSpace(c):
		return &Token{Value: value, Type: TokenTypeSpace}, nil
	case isCommentStart(c):
		return &Token{Value: value, Type: TokenTypeComment}, nil
	case isSystemStart(c):
		return &Token{Value: value, Type: TokenTypeSystem}, nil
	case isLetterStart(c):
		return &Token{Value: value, Type: TokenTypeWordLetter}, nil
	case isNumberStart(c):
		return &Token{Value: value, Type: TokenTypeWordNumber}, nil
	case isNewLineStart(c):
		lx.Line++
		return &Token{Value: value, Type: TokenTypeNewLine}, nil
	}

	panic(fmt.Sprintf("bug: unexpected value at line %d: %v", lx.Line, value))
}
