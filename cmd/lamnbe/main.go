package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"time"

	"git.sr.ht/~sircmpwn/getopt"
	"github.com/fatih/color"

	"github.com/vic/lamnbe/pkg/lambda"
	"github.com/vic/lamnbe/pkg/nbe"
)

const usage = `usage: lamnbe [-o] [-s] [-t timeout] [-d depth] [file]

Reads one lambda term from the first line of file (or stdin) and prints its
normal form.

  -o          allow free variables
  -s          print reduction stats to stderr
  -t timeout  give up after timeout (e.g. 500ms, 2s)
  -d depth    fail past this evaluation depth (default: no limit)
  -h          show this help
`

type options struct {
	open     bool
	stats    bool
	timeout  time.Duration
	maxDepth int
	file     string
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	code := run(ctx, os.Args, os.Stdin, os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

// run returns only once the term is normalized, input is rejected, or
// ctx is done. A term without a normal form keeps it running.
func run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	red := color.New(color.FgRed)

	o, code := parseFlags(args, stderr)
	if code >= 0 {
		return code
	}

	var in io.Reader = stdin
	if o.file != "" {
		f, err := os.Open(o.file)
		if err != nil {
			red.Fprintf(stderr, "Error reading file: %v\n", err)
			return 1
		}
		defer f.Close()
		in = f
	}

	line, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && line != "") {
		red.Fprintf(stderr, "Error reading input: %v\n", err)
		return 1
	}

	if o.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, o.timeout)
		defer cancel()
	}

	m := nbe.NewMachine(nbe.WithMaxDepth(o.maxDepth))
	opts := []lambda.Option{lambda.WithMachine(m)}
	if o.open {
		opts = append(opts, lambda.WithOpenTerms())
	}

	start := time.Now()
	res, err := lambda.Normalize(ctx, line, opts...)
	elapsed := time.Since(start)

	if o.stats {
		defer printStats(stderr, m, elapsed)
	}

	if err != nil {
		var syn *lambda.SyntaxError
		var unbound *nbe.UnboundVariableError
		switch {
		case errors.As(err, &syn):
			red.Fprintf(stderr, "Parse error: %v\n", err)
		case errors.As(err, &unbound):
			red.Fprintf(stderr, "Evaluation error: %v\n", err)
		default:
			red.Fprintf(stderr, "Error: %v\n", err)
		}
		return 1
	}

	fmt.Fprintln(stdout, res)
	return 0
}

// parseFlags returns a non-negative exit code when the program should
// stop right away.
func parseFlags(args []string, stderr io.Writer) (options, int) {
	var o options

	opts, optind, err := getopt.Getopts(args, "hosd:t:")
	if err != nil {
		fmt.Fprintln(stderr, err)
		fmt.Fprint(stderr, usage)
		return o, 2
	}
	for _, opt := range opts {
		switch opt.Option {
		case 'h':
			fmt.Fprint(stderr, usage)
			return o, 0
		case 'o':
			o.open = true
		case 's':
			o.stats = true
		case 'd':
			n, err := strconv.Atoi(opt.Value)
			if err != nil || n < 0 {
				fmt.Fprintf(stderr, "invalid -d parameter %q\n", opt.Value)
				return o, 2
			}
			o.maxDepth = n
		case 't':
			d, err := time.ParseDuration(opt.Value)
			if err != nil || d <= 0 {
				fmt.Fprintf(stderr, "invalid -t parameter %q\n", opt.Value)
				return o, 2
			}
			o.timeout = d
		}
	}

	rest := args[optind:]
	switch len(rest) {
	case 0:
	case 1:
		o.file = rest[0]
	default:
		fmt.Fprint(stderr, usage)
		return o, 2
	}
	return o, -1
}

func printStats(w io.Writer, m *nbe.Machine, elapsed time.Duration) {
	bold := color.New(color.Bold)
	stats := m.Stats()
	seconds := elapsed.Seconds()

	bold.Fprintf(w, "\nStats:\n")
	fmt.Fprintf(w, "Time: %v\n", elapsed)
	fmt.Fprintf(w, "Total Applications: %d", stats.Total())
	if seconds > 0 {
		fmt.Fprintf(w, " (%.2f ops/sec)", float64(stats.Total())/seconds)
	}
	fmt.Fprintf(w, "\n")

	bold.Fprintf(w, "\nBreakdown:\n")
	fmt.Fprintf(w, "  Beta:     %6d\n", stats.Beta)
	fmt.Fprintf(w, "  Stuck:    %6d\n", stats.Stuck)
	fmt.Fprintf(w, "  Lookups:  %6d\n", stats.Lookups)
	fmt.Fprintf(w, "  Binders:  %6d\n", stats.Binders)
	fmt.Fprintf(w, "  Peak depth: %d\n", stats.PeakDepth)
	if free := m.Free(); len(free) > 0 {
		fmt.Fprintf(w, "  Free:     %s\n", strings.Join(free, ", "))
	}
}
