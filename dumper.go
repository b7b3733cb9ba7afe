package main

import (
	"fmt"
	"io"
	"strings"
)

type interpDumper struct {
	in  *Interpreter
	out io.Writer
}

func (dump interpDumper) dump() {
	fmt.Fprintf(dump.out, "# Interpreter Dump\n")
	fmt.Fprintf(dump.out, "  stack: %v\n", dump.in.stack)
	fmt.Fprintf(dump.out, "  queue: %v\n", dump.in.ops.tokens())
	dump.dumpFunctions()
	dump.dumpMemory()
}

func (dump interpDumper) dumpFunctions() {
	if len(dump.in.fns.defs) == 0 {
		return
	}
	fmt.Fprintf(dump.out, "# Functions\n")
	var buf strings.Builder
	for _, fn := range dump.in.fns.defs {
		buf.Reset()
		buf.WriteString("  ")
		if fn.name == lambdaName {
			buf.WriteString(opLambdaStart)
		} else {
			buf.WriteString(opFunctionStart)
			buf.WriteByte(' ')
			buf.WriteString(fn.name)
		}
		for _, op := range fn.body {
			buf.WriteByte(' ')
			buf.WriteString(op)
		}
		buf.WriteByte(' ')
		if fn.name == lambdaName {
			buf.WriteString(opLambdaEnd)
		} else {
			buf.WriteString(opFunctionEnd)
		}
		buf.WriteByte('\n')
		io.WriteString(dump.out, buf.String())
	}
}

func (dump interpDumper) dumpMemory() {
	names := dump.in.names()
	var regs bool
	for _, val := range dump.in.regs {
		if val != 0 {
			regs = true
		}
	}
	if !regs && len(names) == 0 {
		return
	}
	fmt.Fprintf(dump.out, "# Memory\n")
	if regs {
		fmt.Fprintf(dump.out, "  a: %v b: %v c: %v\n",
			formatFloat(dump.in.regs[0]),
			formatFloat(dump.in.regs[1]),
			formatFloat(dump.in.regs[2]))
	}
	for _, name := range names {
		fmt.Fprintf(dump.out, "  %v = %v\n", name, dump.in.named[name])
	}
}
