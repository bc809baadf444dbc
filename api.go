package forthwith

import (
	"context"

	"github.com/forthwith/forthwith/internal/panicerr"
)

// Interp bundles the two core functions behind a convenience surface that
// owns resource scoping: every Run gets a private Stack and Dictionary,
// created before the evaluation and unreachable after it, so concurrent runs
// share no state.
type Interp struct {
	logfn func(mess string, args ...interface{})
}

func New(opts ...Option) *Interp {
	var in Interp
	options(opts).apply(&in)
	return &in
}

// Run parses and evaluates one program. A parse error is returned as-is and
// produces no output; runtime errors are part of the returned output string.
// ctx cancels the evaluation as a whole between tokens. Panics out of the
// evaluation are recovered into the returned error.
func (in *Interp) Run(ctx context.Context, text string) (string, error) {
	tokens, err := Parse(text)
	if err != nil {
		return "", err
	}
	st, dict := NewStack(), NewDictionary()
	var out string
	err = panicerr.Recover("eval", func() error {
		var eerr error
		out, eerr = evalTokens(ctx, tokens, st, dict, in.logfn)
		return eerr
	})
	return out, err
}

// Session rides one Stack and Dictionary across many evaluations, for
// interactive use where each line is a fragment of one ongoing program. The
// underlying services serialize each call, but a Session itself is meant for
// one caller at a time; interleaved fragments would interleave their output.
type Session struct {
	interp *Interp
	stack  *Stack
	dict   *Dictionary
}

func (in *Interp) NewSession() *Session {
	return &Session{interp: in, stack: NewStack(), dict: NewDictionary()}
}

// Eval parses and evaluates one fragment against the session state.
func (s *Session) Eval(ctx context.Context, text string) (string, error) {
	tokens, err := Parse(text)
	if err != nil {
		return "", err
	}
	var out string
	err = panicerr.Recover("eval", func() error {
		var eerr error
		out, eerr = evalTokens(ctx, tokens, s.stack, s.dict, s.interp.logfn)
		return eerr
	})
	return out, err
}

// Stack exposes the session's value stack, e.g. for a prompt to display.
func (s *Session) Stack() *Stack { return s.stack }

// Words reports how many user words the session has defined.
func (s *Session) Words() int { return s.dict.Len() }
