package forth

import (
	"strings"

	"forth/internal/scan"
)

// eval is the evaluation driver: it normalizes the input once, then loops a
// fixed recognizer sequence over the remaining text until it is exhausted or
// a stage fails. A stage reporting no match leaves the remaining input as it
// stood for the next stage to attempt; a stage error aborts immediately with
// whatever has already been mutated left in place.
func (f *Forth) eval(input string) error {
	input = scan.Normalize(input)
	for input != "" {
		f.logf("eval %q -- %v", input, f.stack)
		var err error
		input = f.evalLiterals(input)
		if input, err = f.evalOperators(input); err != nil {
			return err
		}
		if input, err = f.evalDefinitions(input); err != nil {
			return err
		}
		input = f.expandWord(input)
		if input, err = f.evalCommands(input); err != nil {
			return err
		}
	}
	return nil
}

func (f *Forth) evalLiterals(input string) string {
	for {
		val, rest, ok := parseLiteral(input)
		if !ok {
			return input
		}
		f.push(val)
		input = rest
	}
}

func (f *Forth) evalOperators(input string) (string, error) {
	for {
		op, rest, ok := parseOperator(input)
		if !ok {
			return input, nil
		}
		if err := f.apply(op); err != nil {
			return input, err
		}
		input = rest
	}
}

func (f *Forth) evalDefinitions(input string) (string, error) {
	for {
		def, rest, ok, err := parseDefinition(input)
		if err != nil {
			return input, err
		}
		if !ok {
			return input, nil
		}
		f.define(def.name, def.body)
		input = rest
	}
}

// expandWord attempts a single dictionary substitution: if the leading token
// names a defined word, the whole remaining input becomes the stored body
// followed by the untouched tail, to be re-scanned from the top on the next
// driver pass. Runs at most once per pass.
func (f *Forth) expandWord(input string) string {
	head, tail, _ := scan.Cut(input)
	body, defined := f.words[strings.ToLower(head)]
	if !defined {
		return input
	}
	f.logf("expand %q -> %q", head, body)
	return body + tail
}

func (f *Forth) evalCommands(input string) (string, error) {
	for {
		cmd, rest, ok, err := parseCommand(input)
		if err != nil {
			return input, err
		}
		if !ok {
			return input, nil
		}
		if err := f.exec(cmd); err != nil {
			return input, err
		}
		input = rest
	}
}

// apply pops the two topmost cells as left and right operands and pushes the
// operator's result. The operand check precedes any mutation, so an
// underflowing or zero-dividing stack is left exactly as found.
func (f *Forth) apply(op operator) error {
	i := len(f.stack) - 2
	if i < 0 {
		return ErrStackUnderflow
	}
	a, b := f.stack[i], f.stack[i+1]
	var val int
	switch op {
	case opAdd:
		val = a + b
	case opSubtract:
		val = a - b
	case opDivide:
		if b == 0 {
			return ErrDivisionByZero
		}
		val = a / b
	case opMultiply:
		val = a * b
	}
	f.logf("%v %v %v = %v", a, op, b, val)
	f.stack = append(f.stack[:i], val)
	return nil
}

func (f *Forth) exec(cmd command) error {
	f.logf("%v -- %v", cmd, f.stack)
	switch cmd {
	case cmdDrop:
		if len(f.stack) < 1 {
			return ErrStackUnderflow
		}
		f.stack = f.stack[:len(f.stack)-1]
	case cmdDup:
		if len(f.stack) < 1 {
			return ErrStackUnderflow
		}
		f.stack = append(f.stack, f.stack[len(f.stack)-1])
	case cmdSwap:
		i := len(f.stack) - 2
		if i < 0 {
			return ErrStackUnderflow
		}
		f.stack[i], f.stack[i+1] = f.stack[i+1], f.stack[i]
	case cmdOver:
		i := len(f.stack) - 2
		if i < 0 {
			return ErrStackUnderflow
		}
		f.stack = append(f.stack, f.stack[i])
	}
	return nil
}
