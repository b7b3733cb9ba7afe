// Command gen_interp_expects generates free function wrappers around
// interpTestCase builder methods, so that test cases can be composed with
// interpTestCase.apply, for example:
//
//	interpTest("sq").apply(
//		withInterpProgram("( sq dup x ) 4 sq"),
//		expectInterpStack("16"),
//	)
//
// Usage: go run scripts/gen_interp_expects.go -- IN [OUT]
//
// OUT defaults to stdout; output is formatted by goimports, which must be on
// PATH.
package main

import (
	"bufio"
	"bytes"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/exec"
	"regexp"
	"strings"
	"time"

	"golang.org/x/net/context"
	"golang.org/x/sync/errgroup"
)

// builderMethod matches interpTestCase builder methods, like:
//
//	func (it interpTestCase) expectStack(values ...string) interpTestCase
var builderMethod = regexp.MustCompile(`^func \(it interpTestCase\) ((?:expect|with)\w+)\((.+?)\) interpTestCase`)

type param struct {
	name     string
	typ      string
	variadic bool
}

type wrapper struct {
	method string
	params []param
}

// funcName turns a method like expectStack into expectInterpStack.
func (w wrapper) funcName() string {
	for _, prefix := range []string{"expect", "with"} {
		if strings.HasPrefix(w.method, prefix) {
			return prefix + "Interp" + strings.TrimPrefix(w.method, prefix)
		}
	}
	return w.method
}

func (w wrapper) writeTo(buf *bytes.Buffer) {
	decls := make([]string, len(w.params))
	args := make([]string, len(w.params))
	for i, p := range w.params {
		decls[i] = p.name + " " + p.typ
		args[i] = p.name
		if p.variadic {
			args[i] += "..."
		}
	}
	fmt.Fprintf(buf, "func %s(%s) func(interpTestCase) interpTestCase {\n", w.funcName(), strings.Join(decls, ", "))
	fmt.Fprintf(buf, "\treturn func(it interpTestCase) interpTestCase {\n")
	fmt.Fprintf(buf, "\t\treturn it.%s(%s)\n", w.method, strings.Join(args, ", "))
	fmt.Fprintf(buf, "\t}\n}\n\n")
}

// parseParams splits a parameter list where every name carries its own type.
func parseParams(list string) ([]param, error) {
	var params []param
	for _, part := range strings.Split(list, ",") {
		fields := strings.Fields(part)
		if len(fields) != 2 {
			return nil, fmt.Errorf("parameter %q must be declared with its own type", strings.TrimSpace(part))
		}
		p := param{name: fields[0], typ: fields[1]}
		p.variadic = strings.HasPrefix(p.typ, "...")
		params = append(params, p)
	}
	return params, nil
}

func scanWrappers(ctx context.Context, r io.Reader) (wrappers []wrapper, err error) {
	sc := bufio.NewScanner(r)
	for lineNo := 1; sc.Scan(); lineNo++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		match := builderMethod.FindStringSubmatch(sc.Text())
		if match == nil {
			continue
		}
		params, err := parseParams(match[2])
		if err != nil {
			return nil, fmt.Errorf("line %v: %w", lineNo, err)
		}
		wrappers = append(wrappers, wrapper{method: match[1], params: params})
	}
	return wrappers, sc.Err()
}

func render(srcName string, args []string, wrappers []wrapper) []byte {
	var buf bytes.Buffer
	fmt.Fprintf(&buf, "package main\n\n// @generated from %s\n\n", srcName)
	if len(args) >= 2 {
		fmt.Fprintf(&buf, "//go:generate go run scripts/gen_interp_expects.go -- %s\n\n", strings.Join(args, " "))
	}
	for _, w := range wrappers {
		w.writeTo(&buf)
	}
	return buf.Bytes()
}

// format pipes src through goimports into out.
func format(ctx context.Context, src []byte, out io.Writer) error {
	pr, pw := io.Pipe()
	eg, ctx := errgroup.WithContext(ctx)
	eg.Go(func() error {
		_, err := pw.Write(src)
		return pw.CloseWithError(err)
	})
	eg.Go(func() error {
		cmd := exec.CommandContext(ctx, "goimports")
		cmd.Stdin = pr
		cmd.Stdout = out
		cmd.Stderr = os.Stderr
		if err := cmd.Run(); err != nil {
			pr.CloseWithError(err)
			return fmt.Errorf("goimports failed: %w", err)
		}
		return nil
	})
	return eg.Wait()
}

func generate(ctx context.Context, args []string) (rerr error) {
	if len(args) == 0 {
		return fmt.Errorf("missing input file")
	}

	in, err := os.Open(args[0])
	if err != nil {
		return err
	}
	defer in.Close()

	wrappers, err := scanWrappers(ctx, in)
	if err != nil {
		return fmt.Errorf("%v: %w", args[0], err)
	}
	src := render(args[0], args, wrappers)

	var out io.Writer = os.Stdout
	if len(args) >= 2 {
		f, err := os.Create(args[1])
		if err != nil {
			return err
		}
		defer func() {
			if cerr := f.Close(); rerr == nil {
				rerr = cerr
			}
		}()
		out = f
	}
	return format(ctx, src, out)
}

func main() {
	flag.Parse()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := generate(ctx, flag.Args()); err != nil {
		log.Fatalln(err)
	}
}
