package forth

// New creates an interpreter with an empty stack and dictionary.
func New(opts ...Option) *Forth {
	var f Forth
	Options(opts...).apply(&f)
	return &f
}

// Evaluate runs one input string through the interpreter, mutating it in
// place. The returned error, if any, is one of the Err* sentinels; input
// after the failure point is discarded, state mutated before it is kept.
func (f *Forth) Evaluate(input string) error { return f.eval(input) }

// Stack returns a copy of the current stack, oldest-pushed value first.
func (f *Forth) Stack() []int {
	stack := make([]int, len(f.stack))
	copy(stack, f.stack)
	return stack
}

// WithLogf enables trace logging of every push, definition, expansion, and
// executed operation.
func WithLogf(logfn func(mess string, args ...interface{})) Option { return withLogfn(logfn) }
