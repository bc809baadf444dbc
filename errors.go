package forthwith

// ParseError reports a program that the grammar rejected: an invalid name, an
// unrecognized word, an empty definition body, or unconsumed trailing input.
// No tokens are ever produced alongside one.
type ParseError struct {
	Message string
	Word    string // the offending source word, when one is known

	// committed marks a failure inside a branch that had already consumed
	// input; alternatives stop trying once they see one, there is no
	// backtracking out of a committed branch.
	committed bool
}

func (pe *ParseError) Error() string { return pe.Message }

// RuntimeError halts an evaluation: an unknown word reference, an exhausted
// stack, or a zero divisor. The evaluator renders it as "RuntimeError: <message>"
// after any output produced before the halt.
type RuntimeError struct {
	Message string
}

func (re *RuntimeError) Error() string { return re.Message }

var (
	errStackEmpty     = &RuntimeError{Message: "The stack is empty."}
	errStackUnderflow = &RuntimeError{Message: "There are not enough elements in the stack."}
	errDivByZero      = &RuntimeError{Message: "Division by zero."}
)
