package main

import "fmt"

// Control words.
const (
	opFunctionStart = "("
	opFunctionEnd   = ")"
	opLambdaStart   = "["
	opLambdaEnd     = "]"
	opIfEqual       = "ifeq"
	opElse          = "else"
	opFi            = "fi"
	opCommentStart  = "{"
	opCommentEnd    = "}"
)

// ( NAME ... ) defines a function named by the next operation, whose body is
// every operation up to the first ).
func cmdFunction(in *Interpreter, op string) {
	name, ok := in.ops.shift()
	if !ok {
		in.halt(fmt.Errorf("[%v] %w, missing name", op, ErrUnterminatedFunction))
	}
	body, ok := in.capture(opFunctionEnd)
	if !ok {
		in.halt(fmt.Errorf("%w %v", ErrUnterminatedFunction, name))
	}
	in.fns.define(name, body)
	in.logf("(", "define %v %v", name, body)
}

// [ ... ] replaces the anonymous function _ with every operation up to the
// first ].
func cmdLambda(in *Interpreter, op string) {
	in.fns.undefine(lambdaName)
	body, ok := in.capture(opLambdaEnd)
	if !ok {
		in.halt(fmt.Errorf("%w %v", ErrUnterminatedFunction, lambdaName))
	}
	in.fns.define(lambdaName, body)
	in.logf("[", "define %v %v", lambdaName, body)
}

// capture removes operations up to and including end, returning all but end.
// It returns false if the queue runs out first.
func (in *Interpreter) capture(end string) (body []string, ok bool) {
	for {
		tok, more := in.ops.shift()
		if !more {
			return body, false
		}
		if tok == end {
			return body, true
		}
		body = append(body, tok)
	}
}

// a b ifeq THEN [else ELSE] fi runs THEN if a == b, ELSE otherwise.
func cmdIfEqual(in *Interpreter, op string) {
	in.checkDepth(2, op)
	b := in.popFloat(op)
	a := in.popFloat(op)

	var branch []string
	if a == b {
		var end string
		branch, end = in.scanBranch(op, true, true)
		if end == opElse {
			in.scanBranch(op, false, false)
		}
	} else if _, end := in.scanBranch(op, false, true); end == opElse {
		branch, _ = in.scanBranch(op, true, false)
	}
	in.logf("?", "%v == %v: %v", a, b, branch)
	in.ops.pushFront(branch...)
}

// scanBranch removes operations through the first fi (or else, if
// stopAtElse) not nested inside another ifeq, returning that terminator. The
// removed operations, other than the terminator, are returned only if keep.
func (in *Interpreter) scanBranch(op string, keep, stopAtElse bool) (branch []string, end string) {
	depth := 0
	for {
		tok, ok := in.ops.shift()
		if !ok {
			in.halt(fmt.Errorf("[%v] %w", op, ErrUnterminatedConditional))
		}
		if depth == 0 && (tok == opFi || (stopAtElse && tok == opElse)) {
			return branch, tok
		}
		switch tok {
		case opIfEqual:
			depth++
		case opFi:
			depth--
		}
		if keep {
			branch = append(branch, tok)
		}
	}
}

// { ... } discards everything up to the matching }; comments nest.
func cmdComment(in *Interpreter, op string) {
	depth := 0
	for {
		tok, ok := in.ops.shift()
		if !ok {
			in.halt(fmt.Errorf("[%v] %w", op, ErrUnterminatedComment))
		}
		switch tok {
		case opCommentStart:
			depth++
		case opCommentEnd:
			if depth == 0 {
				return
			}
			depth--
		}
	}
}
