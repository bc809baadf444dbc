package forthwith

import (
	"context"
	"fmt"
	"strings"
)

// opTable dispatches stack opcodes; it is fixed at compile time, indexed by
// OpCode. Only pop-and-print produces text.
var opTable = [opMax]func(st *Stack, lit int64) (string, error){
	OpPush: func(st *Stack, lit int64) (string, error) {
		st.Push(intValue(lit))
		return "", nil
	},
	OpAdd:      noText((*Stack).Add),
	OpSubtract: noText((*Stack).Subtract),
	OpMultiply: noText((*Stack).Multiply),
	OpDivide:   noText((*Stack).Divide),
	OpDup:      noText((*Stack).Dup),
	OpDrop:     noText((*Stack).Drop),
	OpSwap:     noText((*Stack).Swap),
	OpOver:     noText((*Stack).Over),
	OpPrint: func(st *Stack, _ int64) (string, error) {
		return st.Pop()
	},
}

func noText(f func(*Stack) error) func(*Stack, int64) (string, error) {
	return func(st *Stack, _ int64) (string, error) { return "", f(st) }
}

// Evaluate walks a token sequence strictly left to right against the given
// stack and dictionary, returning the space-joined text produced. A runtime
// error halts evaluation at the failing token; output produced before it is
// preserved, with one trailing "RuntimeError: <message>" appended.
func Evaluate(tokens []Token, st *Stack, dict *Dictionary) string {
	out, _ := evalTokens(context.Background(), tokens, st, dict, nil)
	return out
}

// evalTokens is the engine behind Evaluate and Interp.Run. A dictionary
// search inlines the stored body at the call site by pushing it as a new
// frame, so a user word calling another user word never deepens the Go stack;
// lookup happens at call time, which is what makes redefinition between calls
// visible (late binding). ctx is checked between tokens; its error is
// returned alongside whatever output accumulated.
func evalTokens(ctx context.Context, tokens []Token, st *Stack, dict *Dictionary, logf func(string, ...interface{})) (string, error) {
	var out []string
	frames := [][]Token{tokens}
	for len(frames) > 0 {
		frame := &frames[len(frames)-1]
		if len(*frame) == 0 {
			frames = frames[:len(frames)-1]
			continue
		}
		if err := ctx.Err(); err != nil {
			return strings.Join(out, " "), err
		}
		tok := (*frame)[0]
		*frame = (*frame)[1:]

		if logf != nil {
			logf("eval %v -- s:%v", tok, st)
		}

		switch tok.Kind {
		case StackToken:
			text, err := opTable[tok.Op](st, tok.Lit)
			if err != nil {
				return haltOutput(out, err), nil
			}
			if text != "" {
				out = append(out, text)
			}

		case StoreToken:
			dict.Store(tok.Name, tok.Body)

		case SearchToken:
			body, defined := dict.Search(tok.Name)
			if !defined {
				err := &RuntimeError{Message: fmt.Sprintf("Unknown word '%s'", tok.Name)}
				return haltOutput(out, err), nil
			}
			if len(*frame) == 0 {
				// tail position: reuse the exhausted frame
				frames[len(frames)-1] = body
			} else {
				frames = append(frames, body)
			}
		}
	}
	return strings.Join(out, " "), nil
}

func haltOutput(out []string, err error) string {
	return strings.Join(append(out, "RuntimeError: "+err.Error()), " ")
}
