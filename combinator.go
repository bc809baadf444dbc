package forthwith

// The grammar is built from a small set of combinators over a uniform parser
// shape: every parser consumes a prefix of a word sequence and yields the
// tokens it matched plus the unconsumed remainder, or a *ParseError. Matching
// is greedy and first-alternative-wins; once a combinator commits to a branch
// there is no backtracking across alternatives.

type words []string

func (ws words) head() string {
	if len(ws) == 0 {
		return ""
	}
	return ws[0]
}

type parser interface {
	parse(in words) (match []Token, rest words, err *ParseError)
}

// anyOf tries each alternative in order against the same input and commits to
// the first success. A committed failure, one from a branch that had already
// consumed input, stops the attempt immediately. When every alternative was
// tried and failed, the failure of the last attempted alternative is
// returned; order is deterministic, there is no "best error" selection.
type anyOf []parser

func anyof(ps ...parser) parser { return anyOf(ps) }

func (ps anyOf) parse(in words) ([]Token, words, *ParseError) {
	var err *ParseError
	for _, p := range ps {
		var match []Token
		var rest words
		if match, rest, err = p.parse(in); err == nil {
			return match, rest, nil
		}
		if err.committed {
			break
		}
	}
	return nil, in, err
}

// seqOf applies parsers left to right, threading each remainder into the next
// and accumulating non-empty matches. The whole sequence is atomic: the first
// failure aborts it, discarding any partial matches. A failure after the
// sequence has consumed input marks the error committed.
type seqOf []parser

func sequence(ps ...parser) parser { return seqOf(ps) }

func (ps seqOf) parse(in words) ([]Token, words, *ParseError) {
	var acc []Token
	rest := in
	for _, p := range ps {
		match, tail, err := p.parse(rest)
		if err != nil {
			if len(rest) < len(in) {
				err.committed = true
			}
			return nil, in, err
		}
		acc = append(acc, match...)
		rest = tail
	}
	return acc, rest, nil
}

// repeated applies its parser until it fails, collecting every match. Without
// atLeastOne it never fails; with it, zero matches propagates the inner
// failure.
type repeated struct {
	p          parser
	atLeastOne bool
}

func repeat(p parser) parser     { return repeated{p: p} }
func repeatOnce(p parser) parser { return repeated{p: p, atLeastOne: true} }

func (rp repeated) parse(in words) ([]Token, words, *ParseError) {
	var acc []Token
	rest := in
	for n := 0; ; n++ {
		match, tail, err := rp.p.parse(rest)
		if err != nil {
			if rp.atLeastOne && n == 0 {
				return nil, in, err
			}
			return acc, rest, nil
		}
		acc = append(acc, match...)
		rest = tail
	}
}

// discarded keeps only its parser's remainder, dropping the match; it carries
// syntax that has no token representation, like ":" and ";".
type discarded struct{ p parser }

func discard(p parser) parser { return discarded{p} }

func (d discarded) parse(in words) ([]Token, words, *ParseError) {
	_, rest, err := d.p.parse(in)
	if err != nil {
		return nil, in, err
	}
	return nil, rest, nil
}

// wordParser lifts a single-word classifier into the parser shape.
type wordParser struct {
	want string // used for end-of-input diagnostics
	fn   func(word string) ([]Token, *ParseError)
}

func (wp wordParser) parse(in words) ([]Token, words, *ParseError) {
	if len(in) == 0 {
		return nil, in, &ParseError{Message: "unexpected end of input, wanted " + wp.want}
	}
	match, err := wp.fn(in[0])
	if err != nil {
		return nil, in, err
	}
	return match, in[1:], nil
}
