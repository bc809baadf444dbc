package forthwith

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// Parse turns source text into a token sequence. Words are split on
// whitespace (newlines included); the whole input must be consumed, so any
// trailing word no alternative accepts is a *ParseError naming that word. On
// failure no tokens are produced.
func Parse(text string) ([]Token, error) {
	input := words(strings.Fields(text))
	match, rest, _ := theGrammar.program.parse(input)
	if len(rest) > 0 {
		return nil, trailingError(rest)
	}
	return match, nil
}

// trailingError diagnoses the word that stopped the program parser. Rerunning
// the alternatives over the leftover input reproduces the failure that ended
// the repeat; parsers are stateless, so the rerun is deterministic.
func trailingError(rest words) *ParseError {
	if _, _, err := theGrammar.unit.parse(rest); err != nil {
		if err.Word == "" {
			err.Word = rest.head()
		}
		return err
	}
	return &ParseError{
		Message: fmt.Sprintf("unparsed input at %q", rest.head()),
		Word:    rest.head(),
	}
}

var nameRE = regexp.MustCompile(`^[a-zA-Z_][a-zA-Z0-9_]*$`)

// operations maps each fixed word, lowercased, to its opcode. Lookup is
// case-insensitive.
var operations = map[string]OpCode{
	"+":    OpAdd,
	"-":    OpSubtract,
	"*":    OpMultiply,
	"/":    OpDivide,
	"dup":  OpDup,
	"drop": OpDrop,
	"swap": OpSwap,
	"over": OpOver,
	".":    OpPrint,
}

type grammar struct {
	program parser // repeat(unit)
	unit    parser // one stack or dictionary token
}

var theGrammar = newGrammar()

// newGrammar assembles the Forth grammar from the combinators. The rules are
// mutually recursive: a definition body is an expression, and an expression
// may contain a nested definition. The knot is tied through the definition
// value itself, whose inner sequence is assigned after the alternatives that
// reference it are built.
func newGrammar() grammar {
	number := wordParser{want: "a number", fn: parseNumber}
	operation := wordParser{want: "an operation", fn: parseOperation}
	reference := wordParser{want: "a word name", fn: parseReference}

	def := &definition{}
	unit := anyof(number, operation, def, reference)
	expression := repeatOnce(unit)
	def.inner = sequence(
		discard(exactly(":")),
		name{},
		bodyOf{expression},
		discard(exactly(";")),
	)

	return grammar{program: repeat(unit), unit: unit}
}

func parseNumber(word string) ([]Token, *ParseError) {
	n, err := strconv.ParseInt(word, 10, 64)
	if err != nil {
		return nil, &ParseError{
			Message: fmt.Sprintf("%q is not a number", word),
			Word:    word,
		}
	}
	return []Token{pushToken(n)}, nil
}

func parseOperation(word string) ([]Token, *ParseError) {
	op, defined := operations[strings.ToLower(word)]
	if !defined {
		return nil, &ParseError{
			Message: fmt.Sprintf("%q is not an operation", word),
			Word:    word,
		}
	}
	return []Token{opToken(op)}, nil
}

func parseReference(word string) ([]Token, *ParseError) {
	if !nameRE.MatchString(word) {
		return nil, &ParseError{
			Message: fmt.Sprintf("%q is not a valid word", word),
			Word:    word,
		}
	}
	return []Token{searchToken(word)}, nil
}

// name parses the word being defined; it matches the same identifier grammar
// as a reference.
type name struct{}

func (name) parse(in words) ([]Token, words, *ParseError) {
	if len(in) == 0 {
		return nil, in, &ParseError{Message: "unexpected end of input, wanted a definition name"}
	}
	if !nameRE.MatchString(in[0]) {
		return nil, in, &ParseError{
			Message: fmt.Sprintf("%q is not a valid definition name", in[0]),
			Word:    in[0],
		}
	}
	return []Token{searchToken(in[0])}, in[1:], nil
}

// exactly matches one literal word, contributing no tokens of its own; it is
// always wrapped in discard.
type exactly string

func (lit exactly) parse(in words) ([]Token, words, *ParseError) {
	if len(in) == 0 {
		return nil, in, &ParseError{Message: fmt.Sprintf("unexpected end of input, wanted %q", string(lit))}
	}
	if in[0] != string(lit) {
		return nil, in, &ParseError{
			Message: fmt.Sprintf("expected %q, found %q", string(lit), in[0]),
			Word:    in[0],
		}
	}
	return nil, in[1:], nil
}

// bodyOf converts a zero-match failure of the definition body into the
// explicit empty-definition error. A committed failure is already a specific
// diagnostic from inside a nested branch and passes through untouched.
type bodyOf struct{ p parser }

func (b bodyOf) parse(in words) ([]Token, words, *ParseError) {
	match, rest, err := b.p.parse(in)
	if err != nil {
		if err.committed {
			return nil, in, err
		}
		return nil, in, &ParseError{
			Message: "empty definition body",
			Word:    in.head(),
		}
	}
	return match, rest, nil
}

// definition parses ": name expression+ ;" into a single store token. The
// name sub-match arrives as a reference token; everything after it is the
// stored body, snapshotted at parse time.
type definition struct{ inner parser }

func (d *definition) parse(in words) ([]Token, words, *ParseError) {
	match, rest, err := d.inner.parse(in)
	if err != nil {
		return nil, in, err
	}
	body := append([]Token(nil), match[1:]...)
	return []Token{storeToken(match[0].Name, body)}, rest, nil
}
