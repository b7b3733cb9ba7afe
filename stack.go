package main

import (
	"strconv"
)

func (in *Interpreter) push(values ...string) {
	in.stack = append(in.stack, values...)
}

func (in *Interpreter) pushFloat(f float64) {
	in.stack = append(in.stack, formatFloat(f))
}

func (in *Interpreter) pushInt(i int64) {
	in.stack = append(in.stack, strconv.FormatInt(i, 10))
}

// checkDepth halts with a StackError unless the stack holds at least need
// values.
func (in *Interpreter) checkDepth(need int, op string) {
	if have := len(in.stack); have < need {
		in.halt(StackError{Op: op, Need: need, Have: have})
	}
}

func (in *Interpreter) peekString(op string) string {
	in.checkDepth(1, op)
	return in.stack[len(in.stack)-1]
}

func (in *Interpreter) popString(op string) (val string) {
	in.checkDepth(1, op)
	i := len(in.stack) - 1
	val, in.stack = in.stack[i], in.stack[:i]
	return val
}

func (in *Interpreter) popFloat(op string) float64 {
	tok := in.popString(op)
	f, err := strconv.ParseFloat(tok, 64)
	if err != nil {
		in.halt(ValueError{Token: tok, Kind: kindFloat})
	}
	return f
}

func (in *Interpreter) popUint(op string) uint64 {
	tok := in.popString(op)
	u, err := strconv.ParseUint(tok, 10, 64)
	if err != nil {
		in.halt(ValueError{Token: tok, Kind: kindUint})
	}
	return u
}

func (in *Interpreter) popByte(op string) uint8 {
	tok := in.popString(op)
	u, err := strconv.ParseUint(tok, 10, 8)
	if err != nil {
		in.halt(ValueError{Token: tok, Kind: kindByte})
	}
	return uint8(u)
}

func (in *Interpreter) popHexInt(op string) int64 {
	tok := in.popString(op)
	i, err := strconv.ParseInt(tok, 16, 64)
	if err != nil {
		in.halt(ValueError{Token: tok, Kind: kindHexInt})
	}
	return i
}

func (in *Interpreter) popHexByte(op string) uint8 {
	tok := in.popString(op)
	u, err := strconv.ParseUint(tok, 16, 8)
	if err != nil {
		in.halt(ValueError{Token: tok, Kind: kindHexByte})
	}
	return uint8(u)
}

func (in *Interpreter) popBinInt(op string) int64 {
	tok := in.popString(op)
	i, err := strconv.ParseInt(tok, 2, 64)
	if err != nil {
		in.halt(ValueError{Token: tok, Kind: kindBinInt})
	}
	return i
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

func formatUint(u uint64) string {
	return strconv.FormatUint(u, 10)
}
