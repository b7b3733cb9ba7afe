package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/peterh/liner"

	"github.com/jcorbin/gocomp/internal/logio"
)

const historyFileName = ".comp_history"

// repl runs an interactive session against in, printing the stack after each
// line. Errors are reported and the session goes on with whatever state the
// failed line left behind.
type repl struct {
	in      *Interpreter
	log     *logio.Logger
	printer stackPrinter
	out     io.Writer
	timeout time.Duration
}

func (r repl) run(ctx context.Context) error {
	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)
	ln.SetWordCompleter(completeWord)

	if histPath, err := homePath(historyFileName); err == nil {
		if f, err := os.Open(histPath); err == nil {
			_, _ = ln.ReadHistory(f)
			_ = f.Close()
		}
		defer func() {
			if f, err := os.Create(histPath); err == nil {
				_, _ = ln.WriteHistory(f)
				_ = f.Close()
			}
		}()
	}

	// operations from files or arguments run before the first prompt
	if len(r.in.Pending()) > 0 {
		r.report(r.evalLine(ctx, 0, nil))
	}

	for lineNo := 1; ; lineNo++ {
		line, err := ln.Prompt("comp> ")
		if errors.Is(err, liner.ErrPromptAborted) {
			continue
		} else if errors.Is(err, io.EOF) {
			fmt.Fprintln(r.out)
			return nil
		} else if err != nil {
			return err
		}

		switch strings.TrimSpace(line) {
		case "":
			continue
		case ":q", "quit":
			return nil
		case ":dump":
			interpDumper{in: r.in, out: r.out}.dump()
			continue
		}
		ln.AppendHistory(line)

		r.report(r.evalLine(ctx, lineNo, strings.Fields(line)))
		if err := r.printer.print(r.out, r.in.Stack()); err != nil {
			return err
		}
		if err := ctx.Err(); err != nil {
			return err
		}
	}
}

func (r repl) evalLine(ctx context.Context, lineNo int, tokens []string) error {
	if r.timeout != 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.timeout)
		defer cancel()
	}
	defer r.in.withLogPrefix(fmt.Sprintf("%v: ", lineNo))()
	defer r.in.Reset()
	return r.in.Eval(ctx, tokens...)
}

// report logs a failed line without marking the session as failed.
func (r repl) report(err error) {
	if err != nil {
		r.log.Printf("ERROR", "%v", err)
	}
}

// completeWord offers command names that extend the word under the cursor.
func completeWord(line string, pos int) (head string, completions []string, tail string) {
	head, tail = line[:pos], line[pos:]
	word := head
	if i := strings.LastIndexAny(head, " \t"); i >= 0 {
		word = head[i+1:]
	}
	head = head[:len(head)-len(word)]
	if word == "" {
		return head, nil, tail
	}
	for _, name := range commandNames() {
		if strings.HasPrefix(name, word) {
			completions = append(completions, name)
		}
	}
	return head, completions, tail
}
