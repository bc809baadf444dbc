package forthwith

import (
	"fmt"
	"strings"
)

// TokenKind discriminates the closed set of token shapes produced by the
// grammar: a stack operation, a dictionary store, or a dictionary search.
type TokenKind int

const (
	StackToken TokenKind = iota
	StoreToken
	SearchToken
)

// OpCode names a value stack operation. The set is closed; the evaluator
// dispatches through a table indexed by it.
type OpCode int

const (
	OpPush OpCode = iota // push the token's literal
	OpAdd
	OpSubtract
	OpMultiply
	OpDivide
	OpDup
	OpDrop
	OpSwap
	OpOver
	OpPrint // pop and emit the top of stack as text

	opMax
)

var opNames = [opMax]string{
	OpPush:     "push",
	OpAdd:      "+",
	OpSubtract: "-",
	OpMultiply: "*",
	OpDivide:   "/",
	OpDup:      "dup",
	OpDrop:     "drop",
	OpSwap:     "swap",
	OpOver:     "over",
	OpPrint:    ".",
}

func (op OpCode) String() string {
	if op < 0 || op >= opMax {
		return fmt.Sprintf("op(%d)", int(op))
	}
	return opNames[op]
}

// Token is one parsed grammar unit. Tokens are immutable once produced by
// Parse; Body is shared, never mutated.
type Token struct {
	Kind TokenKind

	Op  OpCode // valid when Kind == StackToken
	Lit int64  // push literal, valid when Op == OpPush

	Name string  // valid for StoreToken and SearchToken
	Body []Token // stored definition body, valid for StoreToken
}

func pushToken(n int64) Token { return Token{Kind: StackToken, Op: OpPush, Lit: n} }
func opToken(op OpCode) Token { return Token{Kind: StackToken, Op: op} }

func searchToken(name string) Token {
	return Token{Kind: SearchToken, Name: name}
}

func storeToken(name string, body []Token) Token {
	return Token{Kind: StoreToken, Name: name, Body: body}
}

func (tok Token) String() string {
	switch tok.Kind {
	case StackToken:
		if tok.Op == OpPush {
			return fmt.Sprintf("push %d", tok.Lit)
		}
		return tok.Op.String()
	case StoreToken:
		var sb strings.Builder
		sb.WriteString(": ")
		sb.WriteString(tok.Name)
		for _, body := range tok.Body {
			sb.WriteByte(' ')
			sb.WriteString(body.String())
		}
		sb.WriteString(" ;")
		return sb.String()
	case SearchToken:
		return tok.Name
	}
	return fmt.Sprintf("token(%d)", int(tok.Kind))
}
