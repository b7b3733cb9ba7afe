package main

import (
	"testing"
)

func Test_combinators(t *testing.T) {
	interpTestCases{
		// injection
		interpTest("map injects").
			withFunction("_", "1", "+").
			withStack("1", "2", "3").
			withProgram("next").
			do(call("map")).
			expectQueue("_", "roll", "_", "roll", "_", "roll", "next"),
		interpTest("fold injects").
			withFunction("_", "+").
			withStack("1", "2", "3").
			do(call("fold")).
			expectQueue("rot", "rot", "_", "rot", "_"),
		interpTest("scan injects").
			withFunction("_", "+").
			withStack("1", "2", "3").
			do(call("scan")).
			expectQueue("rot", "dup", "rot", "_", "dup", "rot", "_"),

		// evaluation
		interpTest("map").withProgram("1 2 3 [ 1 + ] map").expectStack("2", "3", "4"),
		interpTest("map one").withProgram("4 [ dup x ] map").expectStack("16"),
		interpTest("fold").withProgram("10 2 3 [ - ] fold").expectStack("5"),
		interpTest("fold sum").withProgram("1 2 3 4 [ + ] fold").expectStack("10"),
		interpTest("scan").withProgram("1 2 3 4 [ + ] scan").expectStack("1", "3", "6", "10"),
		interpTest("scan one").withProgram("7 [ + ] scan").expectStack("7"),

		// the repeat count is fixed when the combinator runs
		interpTest("map growing lambda").
			withProgram("1 2 3 [ dup ] map").
			expectStack("3", "3", "3", "1", "2", "3"),
		interpTest("map counts calls").
			withMemory("n", "0").
			withProgram("1 2 3 4 [ rcl n ++ sto n ] map").
			expectMemory("n", "4").
			expectStack("1", "2", "3", "4"),

		// errors
		interpTest("map without lambda").
			withProgram("1 2 map").
			expectError(ErrNoLambda).
			expectStack("1", "2"),
		interpTest("fold without lambda").
			withProgram("1 2 3 fold").
			expectError(ErrNoLambda),
		interpTest("scan without lambda").
			withProgram("1 scan").
			expectError(ErrNoLambda),
		interpTest("map empty").
			withProgram("[ 1 + ] map").
			expectError(StackError{Op: "map", Need: 1, Have: 0}),
		interpTest("fold shallow").
			withProgram("1 2 [ + ] fold").
			expectError(StackError{Op: "fold", Need: 3, Have: 2}),
		interpTest("scan empty").
			withProgram("[ + ] scan").
			expectError(StackError{Op: "scan", Need: 1, Have: 0}),
	}.run(t)
}
