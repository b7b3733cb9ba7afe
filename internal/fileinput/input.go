// Package fileinput scans whitespace separated tokens out of a queue of one or
// more input streams, tracking where each token came from.
package fileinput

import (
	"fmt"
	"io"
	"strings"
	"unicode"

	"github.com/jcorbin/gocomp/internal/runeio"
)

// Location names a line in an Input stream.
type Location struct {
	Name string
	Line int
}

func (loc Location) String() string { return fmt.Sprintf("%v:%v", loc.Name, loc.Line) }

// Token is one whitespace delimited word, along with where it started.
type Token struct {
	Location
	Text string
}

func (tok Token) String() string { return fmt.Sprintf("%v %q", tok.Location, tok.Text) }

// Input implements sequential token scanning through a Queue of one or more
// input streams; a token never spans two streams.
type Input struct {
	Queue []io.Reader

	rr  io.RuneReader
	loc Location
}

// New creates an Input over the given readers.
func New(rs ...io.Reader) *Input {
	return &Input{Queue: rs}
}

// Scan returns the next token, or io.EOF after the last stream is exhausted.
// Any other read error is returned annotated with the current location.
func (in *Input) Scan() (tok Token, err error) {
	var sb strings.Builder
	for {
		if in.rr == nil && !in.nextIn() {
			if sb.Len() > 0 {
				break
			}
			return tok, io.EOF
		}

		r, _, rerr := in.rr.ReadRune()
		if rerr == io.EOF {
			in.closeIn()
			if sb.Len() > 0 {
				break
			}
			continue
		} else if rerr != nil {
			return tok, fmt.Errorf("%v: %w", in.loc, rerr)
		}

		if !unicode.IsSpace(r) {
			if sb.Len() == 0 {
				tok.Location = in.loc
			}
			sb.WriteRune(r)
		} else if r == '\n' {
			in.loc.Line++
			if sb.Len() > 0 {
				break
			}
		} else if sb.Len() > 0 {
			break
		}
	}
	tok.Text = sb.String()
	return tok, nil
}

// Tokens scans all remaining tokens, returning their texts.
func (in *Input) Tokens() ([]string, error) {
	var tokens []string
	for {
		tok, err := in.Scan()
		if err == io.EOF {
			return tokens, nil
		} else if err != nil {
			return tokens, err
		}
		tokens = append(tokens, tok.Text)
	}
}

func (in *Input) closeIn() {
	if cl, ok := in.rr.(io.Closer); ok {
		cl.Close()
	}
	in.rr = nil
}

func (in *Input) nextIn() bool {
	if len(in.Queue) == 0 {
		return false
	}
	r := in.Queue[0]
	in.Queue = in.Queue[1:]
	in.rr = runeio.NewReader(r)
	in.loc = Location{Name: nameOf(r), Line: 1}
	return true
}

func nameOf(obj interface{}) string {
	if nom, ok := obj.(interface{ Name() string }); ok {
		return nom.Name()
	}
	return fmt.Sprintf("<unnamed %T>", obj)
}
