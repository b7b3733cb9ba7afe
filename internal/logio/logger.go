package logio

import (
	"bytes"
	"fmt"
	"io"
	"sync"
)

// Logger implements leveled diagnostic logging around an output stream,
// retaining an exit code for "exit non-zero after any error" semantics.
type Logger struct {
	sync.Mutex
	output   io.Writer
	buf      bytes.Buffer
	quiet    bool
	exitCode int
}

// NewLogger creates a logger that writes to out.
func NewLogger(out io.Writer) *Logger {
	return &Logger{output: out}
}

// SetQuiet suppresses (or restores) warning output; errors are always logged.
func (log *Logger) SetQuiet(quiet bool) {
	log.Lock()
	defer log.Unlock()
	log.quiet = quiet
}

// ExitCode returns a code to pass to os.Exit: the code given to the last
// Fatalf, 2 after an output error, or 0.
func (log *Logger) ExitCode() int {
	log.Lock()
	defer log.Unlock()
	return log.exitCode
}

// Leveledf returns a typical printf-style formatting function that logs
// messages with the given level.
func (log *Logger) Leveledf(level string) func(mess string, args ...interface{}) {
	return func(mess string, args ...interface{}) { log.Printf(level, mess, args...) }
}

// Warnf logs a "WARN" level message, unless the logger is quiet.
func (log *Logger) Warnf(mess string, args ...interface{}) {
	log.Lock()
	defer log.Unlock()
	if log.quiet {
		return
	}
	if err := log.printf("WARN", mess, args...); err != nil {
		log.reportError(err)
	}
}

// ErrorIf logs any non-nil error through Errorf.
func (log *Logger) ErrorIf(err error) {
	if err != nil {
		log.Errorf("%v", err)
	}
}

// Errorf is like `Printf("ERROR", ...)` but additionally retains state so that
// ExitCode() will return non-zero.
func (log *Logger) Errorf(mess string, args ...interface{}) {
	log.Fatalf(1, mess, args...)
}

// Fatalf logs an "ERROR" level message, and retains code for ExitCode().
// It does not exit the process itself.
func (log *Logger) Fatalf(code int, mess string, args ...interface{}) {
	log.Lock()
	defer log.Unlock()
	log.printf("ERROR", mess, args...)
	log.exitCode = code
}

// Printf prints a line to the output stream like "level: message...\n".
// Reports any io error as an "ERROR" level log, and retains similar state for ExitCode().
func (log *Logger) Printf(level, mess string, args ...interface{}) {
	log.Lock()
	defer log.Unlock()
	if err := log.printf(level, mess, args...); err != nil {
		log.reportError(err)
	}
}

func (log *Logger) printf(level, mess string, args ...interface{}) error {
	if log.output == nil {
		return nil
	}
	if level != "" {
		log.buf.WriteString(level)
		log.buf.WriteString(": ")
	}
	if len(args) > 0 {
		fmt.Fprintf(&log.buf, mess, args...)
	} else {
		log.buf.WriteString(mess)
	}
	if b := log.buf.Bytes(); len(b) > 0 && b[len(b)-1] != '\n' {
		log.buf.WriteByte('\n')
	}
	_, err := log.buf.WriteTo(log.output)
	return err
}

func (log *Logger) reportError(err error) {
	log.buf.Reset()
	log.printf("ERROR", "%+v", err)
	log.exitCode = 2
}
