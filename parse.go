package forth

import (
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"forth/internal/scan"
)

type operator int

const (
	opAdd operator = iota
	opSubtract
	opDivide
	opMultiply
)

var opNames = [...]string{"+", "-", "/", "*"}

func (op operator) String() string { return opNames[op] }

type command int

const (
	cmdDrop command = iota
	cmdDup
	cmdSwap
	cmdOver
)

var cmdNames = [...]string{"drop", "dup", "swap", "over"}

func (cmd command) String() string { return cmdNames[cmd] }

// definition is a parsed `: name body ;` declaration. The body is kept as
// raw text; it gets re-scanned from scratch on every later use of the name.
type definition struct {
	name string
	body string
}

// parseLiteral recognizes a leading integer literal, returning its value and
// the remainder with leading spaces trimmed. On no match the remainder is
// the input trimmed-left when a space delimited the candidate token, and the
// input untouched when none did; callers must not treat either as consumed.
func parseLiteral(input string) (val int, rest string, ok bool) {
	head, tail, delimited := scan.Cut(input)
	n, err := strconv.ParseInt(head, 10, strconv.IntSize)
	if err != nil {
		if delimited {
			return 0, strings.TrimLeft(input, " "), false
		}
		return 0, input, false
	}
	return int(n), strings.TrimLeft(tail, " "), true
}

// parseOperator recognizes a single leading arithmetic operator character,
// consuming it along with any spaces that follow.
func parseOperator(input string) (op operator, rest string, ok bool) {
	if input == "" {
		return 0, "", false
	}
	switch input[0] {
	case '+':
		op = opAdd
	case '-':
		op = opSubtract
	case '/':
		op = opDivide
	case '*':
		op = opMultiply
	default:
		return 0, input, false
	}
	return op, strings.TrimLeft(input[1:], " "), true
}

// parseDefinition recognizes a leading `: name body ;` declaration. Inputs
// not starting with ':' are no match. A declaration with no terminating ';',
// an empty body, an empty value after the name, or a digit-led name fails
// with ErrInvalidWord.
func parseDefinition(input string) (def definition, rest string, ok bool, err error) {
	if input == "" || input[0] != ':' {
		return definition{}, input, false, nil
	}
	end := strings.IndexByte(input, ';')
	if end < 0 {
		return definition{}, input, false, ErrInvalidWord
	}
	body := strings.TrimSpace(input[1:end])
	if body == "" {
		return definition{}, input, false, ErrInvalidWord
	}
	name, value, _ := scan.Cut(body)
	value = strings.TrimSpace(value)
	if value == "" {
		return definition{}, input, false, ErrInvalidWord
	}
	if r, _ := utf8.DecodeRuneInString(name); unicode.IsDigit(r) {
		return definition{}, input, false, ErrInvalidWord
	}
	def.name = strings.ToLower(name)
	def.body = value
	return def, strings.TrimSpace(input[end+1:]), true, nil
}

// parseCommand recognizes a leading stack-manipulation command token,
// case-insensitively. A token that reads as an unsigned machine integer is
// reported as no match with an exhausted remainder rather than as an unknown
// word; any other unrecognized token fails with ErrUnknownWord.
func parseCommand(input string) (cmd command, rest string, ok bool, err error) {
	if input == "" {
		return 0, "", false, nil
	}
	head, tail, _ := scan.Cut(input)
	rest = strings.TrimLeft(tail, " ")
	switch strings.ToLower(head) {
	case "drop":
		cmd = cmdDrop
	case "dup":
		cmd = cmdDup
	case "swap":
		cmd = cmdSwap
	case "over":
		cmd = cmdOver
	default:
		if _, perr := strconv.ParseUint(head, 10, strconv.IntSize); perr == nil {
			return 0, "", false, nil
		}
		return 0, input, false, ErrUnknownWord
	}
	return cmd, rest, true, nil
}
