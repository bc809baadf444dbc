package forthwith

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_Stack_ops(t *testing.T) {
	type step struct {
		name string
		f    func(t *testing.T, st *Stack)
	}

	expectVals := func(vals ...Value) func(t *testing.T, st *Stack) {
		return func(t *testing.T, st *Stack) {
			assert.Equal(t, vals, st.Values())
		}
	}

	for _, tc := range []struct {
		name  string
		steps []step
	}{
		{"push pop", []step{
			{"push 1 2", func(t *testing.T, st *Stack) {
				st.Push(intValue(1))
				st.Push(intValue(2))
			}},
			{"state", expectVals(intValue(1), intValue(2))},
			{"pop is head first", func(t *testing.T, st *Stack) {
				s, err := st.Pop()
				require.NoError(t, err)
				assert.Equal(t, "2", s)
				s, err = st.Pop()
				require.NoError(t, err)
				assert.Equal(t, "1", s)
			}},
			{"pop empty", func(t *testing.T, st *Stack) {
				_, err := st.Pop()
				assert.EqualError(t, err, "The stack is empty.")
			}},
		}},

		{"arithmetic", []step{
			{"add", func(t *testing.T, st *Stack) {
				st.Push(intValue(1))
				st.Push(intValue(2))
				require.NoError(t, st.Add())
			}},
			{"state", expectVals(intValue(3))},
			{"multiply", func(t *testing.T, st *Stack) {
				st.Push(intValue(3))
				require.NoError(t, st.Multiply())
			}},
			{"state", expectVals(intValue(9))},
			{"subtract is top minus second", func(t *testing.T, st *Stack) {
				st.Push(intValue(4))
				require.NoError(t, st.Subtract())
			}},
			{"state", expectVals(intValue(-5))},
		}},

		{"divide", []step{
			{"always floats", func(t *testing.T, st *Stack) {
				st.Push(intValue(2))
				st.Push(intValue(4))
				require.NoError(t, st.Divide())
			}},
			{"state", expectVals(floatValue(2))},
			{"renders with a decimal part", func(t *testing.T, st *Stack) {
				s, err := st.Pop()
				require.NoError(t, err)
				assert.Equal(t, "2.0", s)
			}},
			{"by zero", func(t *testing.T, st *Stack) {
				st.Push(intValue(0))
				st.Push(intValue(2))
				assert.EqualError(t, st.Divide(), "Division by zero.")
			}},
			{"zero check beats arity only with two elements", func(t *testing.T, st *Stack) {
				st2 := NewStack()
				st2.Push(intValue(0))
				assert.EqualError(t, st2.Divide(), "There are not enough elements in the stack.")
			}},
		}},

		{"float promotion", []step{
			{"int plus float is float", func(t *testing.T, st *Stack) {
				st.Push(intValue(1))
				st.Push(intValue(2))
				require.NoError(t, st.Divide()) // 2.0
				st.Push(intValue(1))
				require.NoError(t, st.Add())
			}},
			{"state", expectVals(floatValue(3))},
		}},

		{"manipulation", []step{
			{"dup", func(t *testing.T, st *Stack) {
				st.Push(intValue(5))
				require.NoError(t, st.Dup())
			}},
			{"state", expectVals(intValue(5), intValue(5))},
			{"drop", func(t *testing.T, st *Stack) {
				require.NoError(t, st.Drop())
			}},
			{"state", expectVals(intValue(5))},
			{"swap", func(t *testing.T, st *Stack) {
				st.Push(intValue(6))
				require.NoError(t, st.Swap())
			}},
			{"state", expectVals(intValue(6), intValue(5))},
			{"over", func(t *testing.T, st *Stack) {
				require.NoError(t, st.Over())
			}},
			{"state", expectVals(intValue(6), intValue(5), intValue(6))},
		}},

		{"arity errors", []step{
			{"arity one uses the empty message", func(t *testing.T, st *Stack) {
				assert.EqualError(t, st.Dup(), "The stack is empty.")
				assert.EqualError(t, st.Drop(), "The stack is empty.")
			}},
			{"arity two uses the not-enough message", func(t *testing.T, st *Stack) {
				st.Push(intValue(1))
				assert.EqualError(t, st.Add(), "There are not enough elements in the stack.")
				assert.EqualError(t, st.Subtract(), "There are not enough elements in the stack.")
				assert.EqualError(t, st.Multiply(), "There are not enough elements in the stack.")
				assert.EqualError(t, st.Swap(), "There are not enough elements in the stack.")
				assert.EqualError(t, st.Over(), "There are not enough elements in the stack.")
			}},
			{"failed ops leave the stack alone", expectVals(intValue(1))},
		}},
	} {
		t.Run(tc.name, func(t *testing.T) {
			st := NewStack()
			for _, step := range tc.steps {
				if !t.Run(step.name, func(t *testing.T) { step.f(t, st) }) {
					return
				}
			}
		})
	}
}

func Test_Value_String(t *testing.T) {
	assert.Equal(t, "42", intValue(42).String())
	assert.Equal(t, "-7", intValue(-7).String())
	assert.Equal(t, "2.0", floatValue(2).String())
	assert.Equal(t, "2.5", floatValue(2.5).String())
	assert.Equal(t, "-0.5", floatValue(-0.5).String())
}

func Test_Stack_String(t *testing.T) {
	st := NewStack()
	assert.Equal(t, "[]", st.String())
	st.Push(intValue(1))
	st.Push(intValue(2))
	assert.Equal(t, "[1 2]", st.String())
}
