package main

import (
	"errors"
	"fmt"
)

var (
	ErrUnterminatedFunction    = errors.New("unterminated function definition")
	ErrUnterminatedConditional = errors.New("unterminated conditional, missing fi")
	ErrUnterminatedComment     = errors.New("unterminated comment")
	ErrNoLambda                = errors.New("no anonymous function defined")
	ErrMissingName             = errors.New("missing name")
)

// StackError reports that an operation found fewer than Need elements on the
// value stack.
type StackError struct {
	Op   string
	Need int
	Have int
}

func (err StackError) Error() string {
	return fmt.Sprintf("[%v] operation called without at least %v element(s) on stack", err.Op, err.Need)
}

// Value kinds, as named in ValueError messages.
const (
	kindFloat   = "f"
	kindUint    = "u"
	kindByte    = "u8"
	kindHexInt  = "i_h"
	kindHexByte = "u8_h"
	kindBinInt  = "i_b"
)

// ValueError reports a stack value that could not be parsed as Kind.
type ValueError struct {
	Token string
	Kind  string
}

func (err ValueError) Error() string {
	return fmt.Sprintf("unknown expression [%v] is not a recognized operation or valid value (%v)", err.Token, err.Kind)
}

// ArgError reports a value that parsed, but is unusable by Op.
type ArgError struct {
	Op     string
	Arg    string
	Reason string
}

func (err ArgError) Error() string {
	return fmt.Sprintf("[%v] argument [%v] %v", err.Op, err.Arg, err.Reason)
}
