package forthwith

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_Parse(t *testing.T) {
	for _, tc := range []struct {
		name   string
		source string
		tokens []Token
		err    string
		word   string
	}{
		{
			name:   "empty program",
			source: "",
			tokens: nil,
		},

		{
			name:   "numbers including signed",
			source: "1 -2 +3",
			tokens: []Token{pushToken(1), pushToken(-2), pushToken(3)},
		},

		{
			name:   "operations",
			source: "+ - * / DUP DROP SWAP OVER .",
			tokens: []Token{
				opToken(OpAdd), opToken(OpSubtract), opToken(OpMultiply), opToken(OpDivide),
				opToken(OpDup), opToken(OpDrop), opToken(OpSwap), opToken(OpOver), opToken(OpPrint),
			},
		},

		{
			name:   "operations are case insensitive",
			source: "dup Drop sWaP OVER",
			tokens: []Token{opToken(OpDup), opToken(OpDrop), opToken(OpSwap), opToken(OpOver)},
		},

		{
			name:   "newlines are just whitespace",
			source: "1\n2\n+",
			tokens: []Token{pushToken(1), pushToken(2), opToken(OpAdd)},
		},

		{
			name:   "reference",
			source: "square",
			tokens: []Token{searchToken("square")},
		},

		{
			name:   "definition",
			source: ": square DUP * ;",
			tokens: []Token{
				storeToken("square", []Token{opToken(OpDup), opToken(OpMultiply)}),
			},
		},

		{
			name:   "definition body may reference other words",
			source: ": quad square square ;",
			tokens: []Token{
				storeToken("quad", []Token{searchToken("square"), searchToken("square")}),
			},
		},

		{
			name:   "nested definition",
			source: ": outer : inner 1 ; inner ;",
			tokens: []Token{
				storeToken("outer", []Token{
					storeToken("inner", []Token{pushToken(1)}),
					searchToken("inner"),
				}),
			},
		},

		{
			name:   "empty definition body",
			source: ": name ;",
			err:    "empty definition body",
			word:   ";",
		},

		{
			name:   "invalid definition name",
			source: ": 5oops 1 ;",
			err:    `"5oops" is not a valid definition name`,
			word:   "5oops",
		},

		{
			name:   "unterminated definition",
			source: ": square DUP *",
			err:    `unexpected end of input, wanted ";"`,
			word:   ":",
		},

		{
			name:   "unrecognized word",
			source: "1 2 %%",
			err:    `"%%" is not a valid word`,
			word:   "%%",
		},

		{
			name:   "trailing semicolon",
			source: ": square DUP * ; ;",
			err:    `";" is not a valid word`,
			word:   ";",
		},
	} {
		t.Run(tc.name, func(t *testing.T) {
			tokens, err := Parse(tc.source)
			if tc.err != "" {
				require.Error(t, err)
				var perr *ParseError
				require.ErrorAs(t, err, &perr)
				assert.Equal(t, tc.err, perr.Message)
				assert.Equal(t, tc.word, perr.Word)
				assert.Nil(t, tokens, "no tokens on parse failure")
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.tokens, tokens)
		})
	}
}

func Test_Parse_idempotent(t *testing.T) {
	const source = ": square DUP * ; 1 3 square . . : square OVER ; square"
	first, err := Parse(source)
	require.NoError(t, err)
	second, err := Parse(source)
	require.NoError(t, err)
	assert.Equal(t, first, second, "parsing twice must yield structurally identical tokens")
}
