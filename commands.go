package main

import (
	"fmt"
	"sort"
)

// command implements a native operation; op is the token that invoked it.
type command func(in *Interpreter, op string)

// commands maps every native operation name to its implementation; it is
// never modified after init.
var commands map[string]command

func init() {
	commands = make(map[string]command, 128)
	for _, table := range []map[string]command{
		stackCommands,
		memoryCommands,
		mathCommands,
		convCommands,
		controlCommands,
	} {
		for name, cmd := range table {
			if _, dup := commands[name]; dup {
				panic(fmt.Sprintf("duplicate command %q", name))
			}
			commands[name] = cmd
		}
	}
}

func commandNames() []string {
	names := make([]string, 0, len(commands))
	for name := range commands {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

var stackCommands = map[string]command{
	"drop": cmdDrop,
	"dup":  cmdDup,
	"swap": cmdSwap,
	"cls":  cmdClear,
	"clr":  cmdClear,
	"roll": cmdRoll,
	"rot":  cmdRot,
	"pln":  cmdPrintln,
}

var memoryCommands = map[string]command{
	"sa":  storeReg(0),
	"_a":  recallReg(0),
	"sb":  storeReg(1),
	"_b":  recallReg(1),
	"sc":  storeReg(2),
	"_c":  recallReg(2),
	"sto": cmdStore,
	"rcl": cmdRecall,
}

var controlCommands = map[string]command{
	opFunctionStart: cmdFunction,
	opLambdaStart:   cmdLambda,
	opIfEqual:       cmdIfEqual,
	opCommentStart:  cmdComment,
	"map":           cmdMap,
	"fold":          cmdFold,
	"scan":          cmdScan,
}

// drop on an empty stack only warns.
func cmdDrop(in *Interpreter, op string) {
	if len(in.stack) == 0 {
		in.warn("[%v] operation called on empty stack", op)
		return
	}
	in.stack = in.stack[:len(in.stack)-1]
}

func cmdDup(in *Interpreter, op string) {
	in.push(in.peekString(op))
}

func cmdSwap(in *Interpreter, op string) {
	in.checkDepth(2, op)
	i := len(in.stack) - 1
	in.stack[i-1], in.stack[i] = in.stack[i], in.stack[i-1]
}

func cmdClear(in *Interpreter, op string) {
	in.stack = in.stack[:0]
}

// roll moves the top element to the bottom.
func cmdRoll(in *Interpreter, op string) {
	in.checkDepth(1, op)
	i := len(in.stack) - 1
	top := in.stack[i]
	copy(in.stack[1:], in.stack[:i])
	in.stack[0] = top
}

// rot moves the bottom element to the top.
func cmdRot(in *Interpreter, op string) {
	in.checkDepth(1, op)
	bottom := in.stack[0]
	copy(in.stack, in.stack[1:])
	in.stack[len(in.stack)-1] = bottom
}

func cmdPrintln(in *Interpreter, op string) {
	val := in.popString(op)
	if _, err := fmt.Fprintln(in.out, val); err != nil {
		in.halt(err)
	}
}
