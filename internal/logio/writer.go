package logio

import (
	"bytes"
	"sync"
)

// Writer implements an io.Writer around a formatted logging function, such as
// testing.T.Logf or an interpreter trace hook.
type Writer struct {
	Logf func(string, ...interface{})

	mu  sync.Mutex
	buf bytes.Buffer
}

// Write buffers p, then flushes any completed lines through Logf.
func (lw *Writer) Write(p []byte) (n int, err error) {
	lw.mu.Lock()
	defer lw.mu.Unlock()
	lw.buf.Write(p)
	lw.flushLines(false)
	return len(p), nil
}

// Close flushes any remaining partial line.
func (lw *Writer) Close() error {
	lw.mu.Lock()
	defer lw.mu.Unlock()
	lw.flushLines(true)
	return nil
}

func (lw *Writer) flushLines(all bool) {
	for lw.buf.Len() > 0 {
		if i := bytes.IndexByte(lw.buf.Bytes(), '\n'); i >= 0 {
			lw.Logf("%s", lw.buf.Next(i))
			lw.buf.Next(1)
		} else if all {
			lw.Logf("%s", lw.buf.Next(lw.buf.Len()))
		} else {
			break
		}
	}
}
