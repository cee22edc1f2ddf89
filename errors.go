package forth

import "errors"

// Evaluation errors. Any of them aborts the rest of the Evaluate call that
// raised it; stack and dictionary mutations applied before the failure point
// are left in place. Match with errors.Is.
var (
	ErrDivisionByZero = errors.New("division by zero")
	ErrStackUnderflow = errors.New("stack underflow")
	ErrUnknownWord    = errors.New("unknown word")
	ErrInvalidWord    = errors.New("invalid word definition")
)
