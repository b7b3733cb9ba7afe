// Package runeio adapts plain readers for rune-at-a-time scanning.
package runeio

import (
	"bufio"
	"io"
)

// Reader is an io.Reader that also supports reading runes.
type Reader interface {
	io.Reader
	io.RuneReader
}

// NewReader returns a Reader from r; if r already implements Reader, it is
// simply returned. Otherwise a bufio.Reader provides rune reading around r.
// If r implements Name() string, so does the returned Reader, so that token
// locations can be reported against file names.
func NewReader(r io.Reader) Reader {
	if impl, ok := r.(Reader); ok {
		return impl
	}
	rr := runeReader{r, bufio.NewReader(r)}
	if impl, ok := r.(interface{ Name() string }); ok {
		return namedRuneReader{rr, impl.Name()}
	}
	return rr
}

type runeReader struct {
	io.Reader
	io.RuneReader
}

type namedRuneReader struct {
	Reader
	name string
}

func (nr namedRuneReader) Name() string { return nr.name }

// NamedReader attaches a name to a reader, as reported by its Name method.
func NamedReader(name string, r io.Reader) io.Reader {
	return namedRuneReader{NewReader(r), name}
}
