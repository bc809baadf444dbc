package forthwith

import (
	"strconv"
	"strings"
	"sync"
)

// Value is one number on the stack: a native signed integer, or a float when
// it came out of a division.
type Value struct {
	i     int64
	f     float64
	float bool
}

func intValue(n int64) Value     { return Value{i: n} }
func floatValue(f float64) Value { return Value{f: f, float: true} }

func (v Value) asFloat() float64 {
	if v.float {
		return v.f
	}
	return float64(v.i)
}

func (v Value) zero() bool {
	if v.float {
		return v.f == 0
	}
	return v.i == 0
}

// String renders an integer bare and a float with a forced decimal part, so
// an evenly divisible quotient still reads as "2.0".
func (v Value) String() string {
	if !v.float {
		return strconv.FormatInt(v.i, 10)
	}
	s := strconv.FormatFloat(v.f, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}

// Arithmetic promotes to float when either operand is one; division always
// yields a float, even when evenly divisible.

func (v Value) add(w Value) Value {
	if v.float || w.float {
		return floatValue(v.asFloat() + w.asFloat())
	}
	return intValue(v.i + w.i)
}

func (v Value) sub(w Value) Value {
	if v.float || w.float {
		return floatValue(v.asFloat() - w.asFloat())
	}
	return intValue(v.i - w.i)
}

func (v Value) mul(w Value) Value {
	if v.float || w.float {
		return floatValue(v.asFloat() * w.asFloat())
	}
	return intValue(v.i * w.i)
}

func (v Value) quo(w Value) Value {
	return floatValue(v.asFloat() / w.asFloat())
}

// Stack is the evaluator's value store: an ordered sequence of numbers with
// no fixed capacity, head on top. Every operation is linearized under one
// mutex, so a handle may be shared outside the single evaluation goroutine
// without extra coordination; the evaluator itself issues calls strictly
// sequentially.
type Stack struct {
	mu   sync.Mutex
	vals []Value
}

func NewStack() *Stack { return &Stack{} }

func (st *Stack) Push(v Value) {
	st.mu.Lock()
	defer st.mu.Unlock()
	st.vals = append(st.vals, v)
}

// Pop removes the head and returns it as text.
func (st *Stack) Pop() (string, error) {
	st.mu.Lock()
	defer st.mu.Unlock()
	i := len(st.vals) - 1
	if i < 0 {
		return "", errStackEmpty
	}
	v := st.vals[i]
	st.vals = st.vals[:i]
	return v.String(), nil
}

// binop replaces the top two elements with op(top, second).
func (st *Stack) binop(op func(a, b Value) Value) error {
	st.mu.Lock()
	defer st.mu.Unlock()
	i := len(st.vals) - 2
	if i < 0 {
		return errStackUnderflow
	}
	a, b := st.vals[i+1], st.vals[i]
	st.vals = append(st.vals[:i], op(a, b))
	return nil
}

func (st *Stack) Add() error      { return st.binop(Value.add) }
func (st *Stack) Subtract() error { return st.binop(Value.sub) }
func (st *Stack) Multiply() error { return st.binop(Value.mul) }

// Divide computes top/second as a float quotient. A zero divisor is detected
// ahead of the generic arity check whenever two elements exist.
func (st *Stack) Divide() error {
	st.mu.Lock()
	defer st.mu.Unlock()
	i := len(st.vals) - 2
	if i >= 0 && st.vals[i].zero() {
		return errDivByZero
	}
	if i < 0 {
		return errStackUnderflow
	}
	a, b := st.vals[i+1], st.vals[i]
	st.vals = append(st.vals[:i], a.quo(b))
	return nil
}

func (st *Stack) Dup() error {
	st.mu.Lock()
	defer st.mu.Unlock()
	i := len(st.vals) - 1
	if i < 0 {
		return errStackEmpty
	}
	st.vals = append(st.vals, st.vals[i])
	return nil
}

func (st *Stack) Drop() error {
	st.mu.Lock()
	defer st.mu.Unlock()
	i := len(st.vals) - 1
	if i < 0 {
		return errStackEmpty
	}
	st.vals = st.vals[:i]
	return nil
}

func (st *Stack) Swap() error {
	st.mu.Lock()
	defer st.mu.Unlock()
	i := len(st.vals) - 2
	if i < 0 {
		return errStackUnderflow
	}
	st.vals[i], st.vals[i+1] = st.vals[i+1], st.vals[i]
	return nil
}

// Over pushes a copy of the second element atop the stack.
func (st *Stack) Over() error {
	st.mu.Lock()
	defer st.mu.Unlock()
	i := len(st.vals) - 2
	if i < 0 {
		return errStackUnderflow
	}
	st.vals = append(st.vals, st.vals[i])
	return nil
}

// Values returns a bottom-first copy of the stack, for tests and trace
// logging.
func (st *Stack) Values() []Value {
	st.mu.Lock()
	defer st.mu.Unlock()
	return append([]Value(nil), st.vals...)
}

func (st *Stack) String() string {
	vals := st.Values()
	parts := make([]string, len(vals))
	for i, v := range vals {
		parts[i] = v.String()
	}
	return "[" + strings.Join(parts, " ") + "]"
}
