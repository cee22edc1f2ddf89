package forth

// Forth is one interpreter instance: an integer stack and a dictionary of
// user-defined words, both mutated in place by Evaluate. The zero value is
// ready to use. At most one evaluation may be in flight per instance.
type Forth struct {
	logging
	stack []int
	words map[string]string
}

func (f *Forth) push(val int) {
	f.logf("push %v", val)
	f.stack = append(f.stack, val)
}

func (f *Forth) define(name, body string) {
	if f.words == nil {
		f.words = make(map[string]string)
	}
	f.logf("define %q = %q", name, body)
	f.words[name] = body
}

type logging struct {
	logfn func(mess string, args ...interface{})
}

func (log logging) logf(mess string, args ...interface{}) {
	if log.logfn != nil {
		log.logfn(mess, args...)
	}
}
