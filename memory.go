package main

import (
	"fmt"
	"sort"
)

// memory holds values stored by name with sto, along with the three legacy
// float registers written by sa, sb, and sc.
type memory struct {
	named map[string]string
	regs  [3]float64
}

func (mem memory) recall(name string) (string, bool) {
	val, ok := mem.named[name]
	return val, ok
}

func (mem *memory) store(name, val string) {
	if mem.named == nil {
		mem.named = make(map[string]string)
	}
	mem.named[name] = val
}

func (mem memory) names() []string {
	names := make([]string, 0, len(mem.named))
	for name := range mem.named {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func storeReg(reg int) command {
	return func(in *Interpreter, op string) {
		in.checkDepth(1, op)
		in.regs[reg] = in.popFloat(op)
	}
}

func recallReg(reg int) command {
	return func(in *Interpreter, op string) {
		in.pushFloat(in.regs[reg])
	}
}

// sto NAME pops a value, storing it under NAME.
func cmdStore(in *Interpreter, op string) {
	in.checkDepth(1, op)
	name := in.nameArg(op)
	in.store(name, in.popString(op))
	in.logf("=", "sto %v = %q", name, in.named[name])
}

// rcl NAME pushes the value stored under NAME.
func cmdRecall(in *Interpreter, op string) {
	name := in.nameArg(op)
	val, ok := in.recall(name)
	if !ok {
		in.halt(ArgError{Op: op, Arg: name, Reason: "is not a stored name"})
	}
	in.push(val)
}

func (in *Interpreter) nameArg(op string) string {
	name, ok := in.ops.shift()
	if !ok {
		in.halt(fmt.Errorf("[%v] %w", op, ErrMissingName))
	}
	return name
}
