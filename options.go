package main

import (
	"io"
	"math/rand"
	"time"

	"github.com/jcorbin/gocomp/internal/flushio"
)

type Option interface{ apply(in *Interpreter) }

// Options combines options into one, applied in order.
func Options(opts ...Option) Option {
	var res options
	for _, opt := range opts {
		switch impl := opt.(type) {
		case nil:
		case options:
			res = append(res, impl...)
		default:
			res = append(res, opt)
		}
	}
	if len(res) == 1 {
		return res[0]
	}
	return res
}

var defaultOptions = Options(
	withOutput(io.Discard),
	withConfig(DefaultConfig()),
)

type options []Option

func (opts options) apply(in *Interpreter) {
	for _, opt := range opts {
		opt.apply(in)
	}
}

type withLogfn func(mess string, args ...interface{})
type withWarnfn func(mess string, args ...interface{})

func (logfn withLogfn) apply(in *Interpreter)   { in.logfn = logfn }
func (warnfn withWarnfn) apply(in *Interpreter) { in.warnf = warnfn }

type outputOption struct{ io.Writer }
type teeOption struct{ io.Writer }
type configOption Config
type tokensOption []string
type stackOption []string
type randOption struct{ rand.Source }

func withOutput(w io.Writer) outputOption { return outputOption{w} }
func withTee(w io.Writer) teeOption       { return teeOption{w} }
func withConfig(cfg Config) configOption  { return configOption(cfg) }
func withTokens(tokens []string) tokensOption {
	return tokensOption(tokens)
}
func withStack(values []string) stackOption { return stackOption(values) }

func (o outputOption) apply(in *Interpreter) {
	if in.out != nil {
		in.out.Flush()
	}
	in.out = flushio.NewWriteFlusher(o.Writer)
}

func (o teeOption) apply(in *Interpreter) {
	in.out = flushio.Tee(in.out, flushio.NewWriteFlusher(o.Writer))
}

func (cfg configOption) apply(in *Interpreter) { in.config = Config(cfg) }

func (tokens tokensOption) apply(in *Interpreter) { in.ops.pushBack(tokens...) }

func (values stackOption) apply(in *Interpreter) { in.push(values...) }

func (src randOption) apply(in *Interpreter) { in.rng = rand.New(src.Source) }

func defaultRand() randOption {
	return randOption{rand.NewSource(time.Now().UnixNano())}
}
