package main

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/jcorbin/gocomp/internal/logio"
	"github.com/jcorbin/gocomp/internal/panicerr"
)

type interpTestCases []interpTestCase

func (its interpTestCases) run(t *testing.T) {
	{
		var exclusive []interpTestCase
		for _, it := range its {
			if it.exclusive {
				exclusive = append(exclusive, it)
			}
		}
		if len(exclusive) > 0 {
			its = exclusive
		}
	}
	for _, it := range its {
		if !t.Run(it.name, it.run) {
			return
		}
	}
}

func interpTest(name string) (it interpTestCase) {
	it.name = name
	return it
}

type optFunc func(in *Interpreter)

func (f optFunc) apply(in *Interpreter) { f(in) }

// call returns an op that directly invokes the named command.
func call(name string) func(in *Interpreter) {
	return func(in *Interpreter) {
		cmd, ok := commands[name]
		if !ok {
			panic(fmt.Sprintf("no such command %q", name))
		}
		cmd(in, name)
	}
}

type interpTestCase struct {
	name    string
	opts    []Option
	ops     []func(in *Interpreter)
	expect  []func(t *testing.T, in *Interpreter)
	timeout time.Duration
	wantErr error

	exclusive bool
}

func (it interpTestCase) apply(wraps ...func(interpTestCase) interpTestCase) interpTestCase {
	for _, wrap := range wraps {
		it = wrap(it)
	}
	return it
}

func (it interpTestCase) exclusiveTest() interpTestCase {
	it.exclusive = true
	return it
}

func (it interpTestCase) withOptions(opts ...Option) interpTestCase {
	it.opts = append(it.opts, opts...)
	return it
}

func (it interpTestCase) withProgram(program string) interpTestCase {
	it.opts = append(it.opts, withTokens(strings.Fields(program)))
	return it
}

func (it interpTestCase) withTokens(tokens ...string) interpTestCase {
	it.opts = append(it.opts, withTokens(tokens))
	return it
}

func (it interpTestCase) withStack(values ...string) interpTestCase {
	it.opts = append(it.opts, withStack(values))
	return it
}

func (it interpTestCase) withConfig(cfg Config) interpTestCase {
	it.opts = append(it.opts, withConfig(cfg))
	return it
}

func (it interpTestCase) withFunction(name string, body ...string) interpTestCase {
	it.opts = append(it.opts, optFunc(func(in *Interpreter) {
		in.fns.define(name, body)
	}))
	return it
}

func (it interpTestCase) withMemory(name string, value string) interpTestCase {
	it.opts = append(it.opts, optFunc(func(in *Interpreter) {
		in.store(name, value)
	}))
	return it
}

func (it interpTestCase) withRegister(reg int, value float64) interpTestCase {
	it.opts = append(it.opts, optFunc(func(in *Interpreter) {
		in.regs[reg] = value
	}))
	return it
}

func (it interpTestCase) do(ops ...func(in *Interpreter)) interpTestCase {
	it.ops = append(it.ops, ops...)
	return it
}

func (it interpTestCase) withTimeout(timeout time.Duration) interpTestCase {
	it.timeout = timeout
	return it
}

func (it interpTestCase) expectError(err error) interpTestCase {
	it.wantErr = err
	return it
}

func (it interpTestCase) expectStack(values ...string) interpTestCase {
	it.expect = append(it.expect, func(t *testing.T, in *Interpreter) {
		if values == nil {
			values = []string{}
		}
		stack := in.stack
		if stack == nil {
			stack = []string{}
		}
		assert.Equal(t, values, stack, "expected stack values")
	})
	return it
}

func (it interpTestCase) expectQueue(tokens ...string) interpTestCase {
	it.expect = append(it.expect, func(t *testing.T, in *Interpreter) {
		if tokens == nil {
			tokens = []string{}
		}
		assert.Equal(t, tokens, in.ops.tokens(), "expected pending operations")
	})
	return it
}

func (it interpTestCase) expectFunction(name string, body ...string) interpTestCase {
	it.expect = append(it.expect, func(t *testing.T, in *Interpreter) {
		have, defined := in.fns.body(name)
		if assert.True(t, defined, "expected function %q to be defined", name) {
			assert.Equal(t, body, have, "expected function %q body", name)
		}
	})
	return it
}

func (it interpTestCase) expectFunctions(names ...string) interpTestCase {
	it.expect = append(it.expect, func(t *testing.T, in *Interpreter) {
		var have []string
		for _, fn := range in.fns.defs {
			have = append(have, fn.name)
		}
		assert.Equal(t, names, have, "expected defined functions")
	})
	return it
}

func (it interpTestCase) expectMemory(name string, value string) interpTestCase {
	it.expect = append(it.expect, func(t *testing.T, in *Interpreter) {
		have, ok := in.recall(name)
		assert.True(t, ok, "expected memory %q to be stored", name)
		assert.Equal(t, value, have, "expected memory %q value", name)
	})
	return it
}

func (it interpTestCase) expectRegister(reg int, value float64) interpTestCase {
	it.expect = append(it.expect, func(t *testing.T, in *Interpreter) {
		assert.Equal(t, value, in.regs[reg], "expected register #%v value", reg)
	})
	return it
}

func (it interpTestCase) expectOutput(output string) interpTestCase {
	var out strings.Builder
	it.opts = append(it.opts, WithOutput(&out))
	it.expect = append(it.expect, func(t *testing.T, in *Interpreter) {
		assert.Equal(t, output, out.String(), "expected output")
	})
	return it
}

func (it interpTestCase) expectWarnings(warnings ...string) interpTestCase {
	var have []string
	it.opts = append(it.opts, WithWarnf(func(mess string, args ...interface{}) {
		have = append(have, fmt.Sprintf(mess, args...))
	}))
	it.expect = append(it.expect, func(t *testing.T, in *Interpreter) {
		assert.Equal(t, warnings, have, "expected warnings")
	})
	return it
}

func (it interpTestCase) expectDump(dump string) interpTestCase {
	it.expect = append(it.expect, func(t *testing.T, in *Interpreter) {
		var out strings.Builder
		interpDumper{in: in, out: &out}.dump()
		assert.Equal(t, dump, out.String(), "expected dump")
	})
	return it
}

func (it interpTestCase) run(t *testing.T) {
	const defaultTimeout = time.Second
	timeout := it.timeout
	if timeout == 0 {
		timeout = defaultTimeout
	}
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	var trace strings.Builder
	in := it.build(&trace)

	defer func() {
		if t.Failed() {
			t.Logf("trace:\n%v", trace.String())
			it.dumpToTest(t, in)
		}
	}()

	if err := it.runInterp(ctx, in); it.wantErr != nil {
		assert.True(t, errors.Is(err, it.wantErr), "expected error: %v\ngot: %+v", it.wantErr, err)
	} else {
		assert.NoError(t, err, "unexpected run error")
	}

	if !t.Failed() {
		for _, expect := range it.expect {
			expect(t, in)
		}
	}
}

// runInterp runs the queued program, or only any ops given to do, leaving
// whatever they queued unexecuted.
func (it interpTestCase) runInterp(ctx context.Context, in *Interpreter) (rerr error) {
	defer func() {
		if err := in.Close(); err != nil && rerr == nil {
			rerr = fmt.Errorf("interpreter close failed: %w", err)
		}
	}()

	if len(it.ops) == 0 {
		return in.Run(ctx)
	}
	return panicerr.Recover("interpTestCase.ops", func() error {
		for _, op := range it.ops {
			op(in)
			if err := ctx.Err(); err != nil {
				return err
			}
		}
		return nil
	})
}

func (it interpTestCase) build(trace *strings.Builder) *Interpreter {
	return New(append([]Option{
		WithLogf(func(mess string, args ...interface{}) {
			fmt.Fprintf(trace, mess, args...)
			trace.WriteByte('\n')
		}),
		WithRandSource(constSource(0)),
	}, it.opts...)...)
}

func (it interpTestCase) dumpToTest(t *testing.T, in *Interpreter) {
	lw := logio.Writer{Logf: t.Logf}
	defer lw.Close()
	interpDumper{in: in, out: &lw}.dump()
}

// constSource is a rand.Source that always returns the same value.
type constSource int64

func (src constSource) Int63() int64 { return int64(src) }
func (src constSource) Seed(int64)   {}

//// utilities

func lines(parts ...string) string {
	return strings.Join(parts, "\n") + "\n"
}
