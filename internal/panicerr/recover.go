package panicerr

import (
	"errors"
	"fmt"
)

// Recover runs f in a new goroutine, converting any Halt, panic, or
// runtime.Goexit into an error return. A Halt is unwrapped back to the error
// that was passed to it; any other panic is reported with its stack.
func Recover(name string, f func() error) error {
	errch := make(chan error, 1)
	go func() {
		defer close(errch)
		defer func() {
			// only reached with room in errch when f called runtime.Goexit
			select {
			case errch <- goexitError{name}:
			default:
			}
		}()
		defer recoverPanicError(name, errch)
		errch <- f()
	}()
	return <-errch
}

// Halt aborts the current Recover-ed call, causing it to return err.
// A nil err halts normally, and Recover returns nil.
func Halt(err error) {
	panic(haltError{err})
}

type haltError struct{ error }

func (err haltError) Error() string {
	if err.error != nil {
		return "halted: " + err.error.Error()
	}
	return "halted"
}

func (err haltError) Unwrap() error { return err.error }

// IsHalt returns true if err came from a Halt that escaped a Recover, which
// happens only when Halt is called outside of one.
func IsHalt(err error) bool {
	var he haltError
	return errors.As(err, &he)
}

type goexitError struct{ name string }

func (ge goexitError) Error() string {
	if ge.name == "" {
		return "runtime.Goexit called"
	}
	return fmt.Sprintf("%v called runtime.Goexit", ge.name)
}

// IsExit returns true if err indicates a recovered goroutine exit.
func IsExit(err error) bool {
	var ge goexitError
	return errors.As(err, &ge)
}
