package forthwith

type Option interface{ apply(in *Interp) }

type options []Option

func (opts options) apply(in *Interp) {
	for _, opt := range opts {
		if opt != nil {
			opt.apply(in)
		}
	}
}

type withLogfn func(mess string, args ...interface{})

func (logfn withLogfn) apply(in *Interp) { in.logfn = logfn }

// WithLogf enables trace logging of every evaluated token through the given
// printf-style function.
func WithLogf(logfn func(mess string, args ...interface{})) Option { return withLogfn(logfn) }
