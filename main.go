package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/docopt/docopt-go"
	"github.com/mattn/go-isatty"

	"github.com/jcorbin/gocomp/internal/fileinput"
	"github.com/jcorbin/gocomp/internal/logio"
	"github.com/jcorbin/gocomp/internal/runeio"
)

const version = "comp 0.4.0"

// exitFailure is the status for any evaluation or input failure.
const exitFailure = 99

const usage = `comp - a postfix calculator

Usage:
  comp [options] [--] [OPS...]
  comp --config
  comp -h | --help
  comp --version

Options:
  -f, --file=FILE     Read operations from FILE before OPS.
  -i, --interactive   Start an interactive session.
  --timeout=DURATION  Abort evaluation after DURATION.
  --trace             Log every dispatch step to stderr.
  --monochrome        Disable colored output.
  --config            Print the effective configuration and exit.
  -h, --help          Show this help.
  --version           Show version.

Operations are read from FILE, then OPS. Without either, operations are read
from stdin if it is not a terminal; otherwise an interactive session starts.
Use -- before OPS that begin with a dash, like -- -2 3 x.
`

type cliOptions struct {
	ops         []string
	file        string
	interactive bool
	timeout     time.Duration
	trace       bool
	monochrome  bool
	config      bool
}

func parseArgs(argv []string) (opts cliOptions, err error) {
	parser := docopt.Parser{
		HelpHandler: func(err error, usage string) {
			if err != nil {
				fmt.Fprintln(os.Stderr, usage)
				os.Exit(2)
			}
			fmt.Println(usage)
			os.Exit(0)
		},
		OptionsFirst: true,
	}
	args, err := parser.ParseArgs(usage, argv, version)
	if err != nil {
		return opts, err
	}

	opts.ops, _ = args["OPS"].([]string)
	opts.file, _ = args.String("--file")
	opts.interactive, _ = args.Bool("--interactive")
	opts.trace, _ = args.Bool("--trace")
	opts.monochrome, _ = args.Bool("--monochrome")
	opts.config, _ = args.Bool("--config")
	if s, _ := args.String("--timeout"); s != "" {
		if opts.timeout, err = time.ParseDuration(s); err != nil {
			return opts, fmt.Errorf("invalid --timeout: %w", err)
		}
	}
	return opts, nil
}

func main() {
	log := logio.NewLogger(os.Stderr)
	os.Exit(run(context.Background(), log, os.Stdin, os.Stdout, os.Args[1:]))
}

func run(ctx context.Context, log *logio.Logger, stdin, stdout *os.File, argv []string) int {
	opts, err := parseArgs(argv)
	if err != nil {
		log.Fatalf(2, "%v", err)
		return log.ExitCode()
	}

	cfg := DefaultConfig()
	var cfgErr error
	if path, err := homePath(configFileName); err == nil {
		cfg, cfgErr = LoadConfig(path)
	}
	log.SetQuiet(!cfg.ShowWarnings)
	if cfgErr != nil {
		log.Warnf("%v", cfgErr)
	}
	if opts.config {
		log.ErrorIf(cfg.Encode(stdout))
		return log.ExitCode()
	}
	if opts.monochrome {
		cfg.Monochrome = true
	}

	tokens, err := readTokens(opts, stdin)
	if err != nil {
		log.Fatalf(exitFailure, "%v", err)
		return log.ExitCode()
	}

	interpOpts := []Option{
		WithConfig(cfg),
		WithOutput(stdout),
		WithWarnf(log.Warnf),
		WithTokens(tokens...),
	}
	if opts.trace {
		interpOpts = append(interpOpts, WithLogf(log.Leveledf("TRACE")))
	}

	var snapPath string
	if cfg.PersistStack {
		if snapPath, err = homePath(snapshotFileName); err != nil {
			log.Warnf("unable to persist stack: %v", err)
		} else if prior, err := loadSnapshot(snapPath); err != nil {
			log.Warnf("%v", err)
		} else {
			interpOpts = append(interpOpts, WithStack(prior...))
		}
	}

	in := New(interpOpts...)
	defer in.Close()

	printer := stackPrinter{
		color:  !cfg.Monochrome && isatty.IsTerminal(stdout.Fd()),
		levels: cfg.ShowStackLevel,
	}

	if opts.interactive || (len(tokens) == 0 && isatty.IsTerminal(stdin.Fd())) {
		log.ErrorIf(repl{
			in:      in,
			log:     log,
			printer: printer,
			out:     stdout,
			timeout: opts.timeout,
		}.run(ctx))
	} else {
		if opts.timeout != 0 {
			var cancel context.CancelFunc
			ctx, cancel = context.WithTimeout(ctx, opts.timeout)
			defer cancel()
		}
		if err := in.Run(ctx); err != nil {
			log.Fatalf(exitFailure, "%+v", err)
			if opts.trace {
				interpDumper{in: in, out: &logio.Writer{Logf: log.Leveledf("TRACE")}}.dump()
			}
			return log.ExitCode()
		}
		log.ErrorIf(in.Close())
		log.ErrorIf(printer.print(stdout, in.Stack()))
	}

	if snapPath != "" && log.ExitCode() == 0 {
		log.ErrorIf(saveSnapshot(snapPath, in.Stack()))
	}
	return log.ExitCode()
}

// readTokens collects operations from the named file, then the command line;
// stdin stands in for both when neither is given and it is not a terminal.
func readTokens(opts cliOptions, stdin *os.File) ([]string, error) {
	var input fileinput.Input
	if opts.file != "" {
		f, err := os.Open(opts.file)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		input.Queue = append(input.Queue, f)
	} else if len(opts.ops) == 0 && !opts.interactive && !isatty.IsTerminal(stdin.Fd()) {
		input.Queue = append(input.Queue, runeio.NamedReader("stdin", stdin))
	}
	tokens, err := input.Tokens()
	if err != nil {
		return nil, err
	}
	return append(tokens, opts.ops...), nil
}
