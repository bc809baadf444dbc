// Package panicerr isolates a function call in its own goroutine, converting
// any panic or runtime.Goexit into a returned error so that a buggy
// evaluation cannot take down its embedding process.
package panicerr

import (
	"errors"
	"fmt"
	"runtime/debug"
)

// Recover runs f in a fresh goroutine and waits for it, returning f's error,
// or a Panic/exit error if f never returned normally.
func Recover(name string, f func() error) error {
	errch := make(chan error, 1)
	go func() {
		defer close(errch)
		defer func() {
			// Nothing was sent: f fell off the goroutine without
			// returning, via runtime.Goexit or a panic recovered below.
			select {
			case errch <- exitError(name):
			default:
			}
		}()
		defer func() {
			if e := recover(); e != nil {
				select {
				case errch <- Panic{name: name, value: e, stack: debug.Stack()}:
				default:
				}
			}
		}()
		errch <- f()
	}()
	return <-errch
}

type exitError string

func (name exitError) Error() string {
	if name == "" {
		return "runtime.Goexit called"
	}
	return fmt.Sprintf("%v called runtime.Goexit", string(name))
}

// Panic is a recovered panic carrying the panicking goroutine's stack.
type Panic struct {
	name  string
	value interface{}
	stack []byte
}

func (p Panic) Error() string { return fmt.Sprint(p) }

func (p Panic) Format(f fmt.State, c rune) {
	if p.name == "" {
		fmt.Fprintf(f, "paniced: %v", p.value)
	} else {
		fmt.Fprintf(f, "%v paniced: %v", p.name, p.value)
	}
	if c == 'v' && f.Flag('+') {
		fmt.Fprintf(f, "\nPanic stack: %s", p.stack)
	}
}

func (p Panic) Unwrap() error {
	err, _ := p.value.(error)
	return err
}

// Stack returns the recovered goroutine's stacktrace when err wraps a Panic.
func Stack(err error) string {
	var p Panic
	if errors.As(err, &p) {
		return string(p.stack)
	}
	return ""
}
