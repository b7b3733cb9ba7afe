package main

import (
	"fmt"
	"math/rand"
	"strings"

	"github.com/jcorbin/gocomp/internal/flushio"
	"github.com/jcorbin/gocomp/internal/panicerr"
)

// Interpreter evaluates a queue of postfix operations against a stack of
// textual values. Control flow is expressed by rewriting the front of the
// operation queue, rather than by walking any parsed program structure.
type Interpreter struct {
	logging
	out   flushio.WriteFlusher
	warnf func(mess string, args ...interface{})
	rng   *rand.Rand

	config Config

	// ops holds every operation not yet executed; commands like ( and ifeq
	// consume their arguments directly from it.
	ops opQueue

	// stack holds values as their token text; commands parse values only when
	// they pop them.
	stack []string

	memory
	fns functions
}

// Close flushes any buffered output.
func (in *Interpreter) Close() error {
	if in.out == nil {
		return nil
	}
	return in.out.Flush()
}

// halt aborts the current Run with the given error, after flushing output.
func (in *Interpreter) halt(err error) {
	// ignore any panics while trying to flush output
	func() {
		defer func() { recover() }()
		if in.out != nil {
			if ferr := in.out.Flush(); err == nil {
				err = ferr
			}
		}
	}()

	// ignore any panics while logging
	func() {
		defer func() { recover() }()
		in.logf("#", "halt error: %v", err)
	}()

	panicerr.Halt(err)
}

func (in *Interpreter) warn(mess string, args ...interface{}) {
	in.logf("!", mess, args...)
	if in.warnf != nil {
		in.warnf(mess, args...)
	}
}

type logging struct {
	logfn func(mess string, args ...interface{})

	markWidth int
}

func (log *logging) withLogPrefix(prefix string) func() {
	logfn := log.logfn
	if logfn == nil {
		return func() {}
	}
	log.logfn = func(mess string, args ...interface{}) {
		logfn(prefix+mess, args...)
	}
	return func() {
		log.logfn = logfn
	}
}

func (log *logging) logf(mark, mess string, args ...interface{}) {
	if log.logfn == nil {
		return
	}
	if n := log.markWidth - len(mark); n > 0 {
		mark = strings.Repeat(mark[:1], n) + mark
	} else {
		log.markWidth = len(mark)
	}
	if len(args) > 0 {
		mess = fmt.Sprintf(mess, args...)
	}
	log.logfn("%v %v", mark, mess)
}
