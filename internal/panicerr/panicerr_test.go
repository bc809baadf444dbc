package panicerr

import (
	"errors"
	"runtime"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_Recover(t *testing.T) {
	for _, tc := range []struct {
		name      string
		fun       func() error
		err       string
		wraps     string
		haveStack bool
	}{
		{
			name: "normal",
			fun:  func() error { return nil },
		},
		{
			name: "normal err",
			fun:  func() error { return errors.New("bang") },
			err:  "bang",
		},
		{
			name:      "panic err",
			fun:       func() error { panic(errors.New("bang")) },
			err:       "panic err paniced: bang",
			wraps:     "bang",
			haveStack: true,
		},
		{
			name:      "panic string",
			fun:       func() error { panic("hello") },
			err:       "panic string paniced: hello",
			haveStack: true,
		},
		{
			name: "goexit",
			fun:  func() error { runtime.Goexit(); return nil },
			err:  "goexit called runtime.Goexit",
		},
	} {
		t.Run(tc.name, func(t *testing.T) {
			err := Recover(tc.name, tc.fun)
			if tc.err == "" {
				require.NoError(t, err)
				return
			}
			require.EqualError(t, err, tc.err)
			if tc.wraps != "" {
				assert.EqualError(t, errors.Unwrap(err), tc.wraps)
			}
			if tc.haveStack {
				assert.True(t, strings.Contains(Stack(err), "goroutine"),
					"expected a panic stacktrace")
			} else {
				assert.Equal(t, "", Stack(err))
			}
		})
	}
}
