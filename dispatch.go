package main

import (
	"context"
	"fmt"
)

type resolvedKind uint8

const (
	resolvedLiteral resolvedKind = iota
	resolvedCommand
	resolvedFunction
	resolvedMemory
)

var resolvedKindNames = [...]string{
	resolvedLiteral:  "literal",
	resolvedCommand:  "command",
	resolvedFunction: "function",
	resolvedMemory:   "memory",
}

func (kind resolvedKind) String() string {
	if int(kind) < len(resolvedKindNames) {
		return resolvedKindNames[kind]
	}
	return fmt.Sprintf("resolvedKind(%d)", kind)
}

// resolved is what a token means at the moment it is dispatched.
type resolved struct {
	kind  resolvedKind
	cmd   command
	body  []string
	value string
}

// resolve determines a token's meaning: native commands take precedence over
// user functions, which take precedence over named memory; anything else is a
// literal value.
func (in *Interpreter) resolve(token string) resolved {
	if cmd, ok := commands[token]; ok {
		return resolved{kind: resolvedCommand, cmd: cmd}
	}
	if body, ok := in.fns.body(token); ok {
		return resolved{kind: resolvedFunction, body: body}
	}
	if val, ok := in.recall(token); ok {
		return resolved{kind: resolvedMemory, value: val}
	}
	return resolved{kind: resolvedLiteral, value: token}
}

func (in *Interpreter) run(ctx context.Context) error {
	for in.ops.len() > 0 {
		if err := ctx.Err(); err != nil {
			return err
		}
		in.step()
	}
	return in.out.Flush()
}

// step dispatches the next queued operation.
func (in *Interpreter) step() {
	token, ok := in.ops.shift()
	if !ok {
		return
	}
	res := in.resolve(token)
	in.logf(">", "%v %v stack:%v", res.kind, token, in.stack)
	switch res.kind {
	case resolvedCommand:
		res.cmd(in, token)
	case resolvedFunction:
		in.ops.pushFront(res.body...)
	case resolvedMemory:
		in.ops.pushFront(res.value)
	default:
		in.push(res.value)
	}
}
