package main

import (
	"context"
	"io"
	"math/rand"

	"github.com/jcorbin/gocomp/internal/panicerr"
)

// New creates an interpreter, with output discarded and default config unless
// options say otherwise.
func New(opts ...Option) *Interpreter {
	var in Interpreter
	Options(defaultOptions, defaultRand()).apply(&in)
	Options(opts...).apply(&in)
	return &in
}

// Run executes queued operations until none remain, the context is done, or
// an operation fails. After a failure, the stack and any unexecuted
// operations are left as they were.
func (in *Interpreter) Run(ctx context.Context) error {
	return panicerr.Recover("comp", func() error {
		return in.run(ctx)
	})
}

// Eval queues tokens after any pending operations, and runs them.
func (in *Interpreter) Eval(ctx context.Context, tokens ...string) error {
	in.ops.pushBack(tokens...)
	return in.Run(ctx)
}

// Stack returns a copy of the value stack, bottom first.
func (in *Interpreter) Stack() []string {
	return append([]string(nil), in.stack...)
}

// Pending returns a copy of the operations not yet executed.
func (in *Interpreter) Pending() []string { return in.ops.tokens() }

// Reset discards any pending operations, leaving stack, memory, and functions
// intact.
func (in *Interpreter) Reset() { in.ops.clear() }

func WithOutput(w io.Writer) Option         { return withOutput(w) }
func WithTee(w io.Writer) Option            { return withTee(w) }
func WithConfig(cfg Config) Option          { return withConfig(cfg) }
func WithTokens(tokens ...string) Option    { return withTokens(tokens) }
func WithStack(values ...string) Option     { return withStack(values) }
func WithRandSource(src rand.Source) Option { return randOption{src} }

func WithLogf(logfn func(mess string, args ...interface{})) Option  { return withLogfn(logfn) }
func WithWarnf(warnf func(mess string, args ...interface{})) Option { return withWarnfn(warnf) }
