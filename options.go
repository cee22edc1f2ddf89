package forth

// Option customizes an interpreter built by New.
type Option interface{ apply(f *Forth) }

// Options combines any number of options into one, skipping nils.
func Options(opts ...Option) Option { return options(opts) }

type options []Option

func (opts options) apply(f *Forth) {
	for _, opt := range opts {
		if opt != nil {
			opt.apply(f)
		}
	}
}

type withLogfn func(mess string, args ...interface{})

func (logfn withLogfn) apply(f *Forth) { f.logfn = logfn }
