// Package flushio provides buffered output streams that must be flushed
// explicitly, as the interpreter does once per halt and once per printed stack.
package flushio

import (
	"bufio"
	"io"
)

// WriteFlusher is a flush-able io.Writer.
type WriteFlusher interface {
	io.Writer
	Flush() error
}

// Discard is a WriteFlusher that drops everything written to it.
var Discard WriteFlusher = nopFlusher{io.Discard}

// NewWriteFlusher creates a new flushable writer: in-memory buffers get a noop
// Flush, existing WriteFlushers are returned as is, anything else is wrapped in
// a bufio.Writer.
func NewWriteFlusher(w io.Writer) WriteFlusher {
	if w == nil || w == io.Discard {
		return Discard
	}

	if wf, is := w.(WriteFlusher); is {
		return wf
	}

	// bytes.Buffer and strings.Builder do not need to be flushed
	type buffer interface {
		io.Writer
		Len() int
		Grow(n int)
		Reset()
	}
	if _, isBuffer := w.(buffer); isBuffer {
		return nopFlusher{w}
	}

	return bufio.NewWriter(w)
}

type nopFlusher struct{ io.Writer }

func (nf nopFlusher) Flush() error { return nil }

// Tee combines any number of WriteFlushers into a single one that writes into
// and flushes all of them.
func Tee(wfs ...WriteFlusher) WriteFlusher {
	var all tee
	for _, one := range wfs {
		if many, ok := one.(tee); ok {
			all = append(all, many...)
		} else if one != nil {
			all = append(all, one)
		}
	}
	switch len(all) {
	case 0:
		return nil
	case 1:
		return all[0]
	default:
		return all
	}
}

type tee []WriteFlusher

func (wfs tee) Write(p []byte) (n int, err error) {
	for _, wf := range wfs {
		n, err = wf.Write(p)
		if err != nil {
			return n, err
		}
		if n != len(p) {
			return n, io.ErrShortWrite
		}
	}
	return len(p), nil
}

func (wfs tee) Flush() (err error) {
	for _, wf := range wfs {
		if ferr := wf.Flush(); err == nil {
			err = ferr
		}
	}
	return err
}
