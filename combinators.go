package main

import "fmt"

// The combinators below apply the anonymous function _ by injecting
// operations onto the front of the queue. Repeat counts come from the stack
// depth at the time of injection, so a _ that grows or shrinks the stack does
// not change how many times it runs.

// map applies _ to every stack element in turn, preserving their order.
func cmdMap(in *Interpreter, op string) {
	in.checkDepth(1, op)
	in.requireLambda(op)
	in.injectRepeated(len(in.stack), lambdaName, "roll")
}

// fold reduces the stack with _, from the bottom up.
func cmdFold(in *Interpreter, op string) {
	in.checkDepth(3, op)
	in.requireLambda(op)
	in.injectRepeated(len(in.stack)-1, "rot", lambdaName)
	in.ops.pushFront("rot")
}

// scan is a fold that keeps every intermediate result.
func cmdScan(in *Interpreter, op string) {
	in.checkDepth(1, op)
	in.requireLambda(op)
	in.injectRepeated(len(in.stack)-1, "dup", "rot", lambdaName)
	in.ops.pushFront("rot")
}

func (in *Interpreter) requireLambda(op string) {
	if _, ok := in.fns.body(lambdaName); !ok {
		in.halt(fmt.Errorf("[%v] %w", op, ErrNoLambda))
	}
}

func (in *Interpreter) injectRepeated(n int, span ...string) {
	in.logf("*", "inject %v x %v", n, span)
	for i := 0; i < n; i++ {
		in.ops.pushFront(span...)
	}
}
