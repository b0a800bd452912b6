// internal/app/app.go
package app

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"

	"levdist-core/batch"
	"levdist-core/lev"
	"levdist/internal/cli"
	"levdist/internal/output"
	"levdist/internal/pairfile"
	"levdist/internal/version"
	"levdist/internal/writers"
)

// RunContext is the levdist entry point: parse, load pairs, compute,
// write. Exit codes: 0 ok, 2 usage, 3 runtime/write failure, 130
// interrupted before dispatch.
func RunContext(parent context.Context, argv []string, stdout, stderr io.Writer) int {
	outw := bufio.NewWriter(stdout)
	defer func() { _ = outw.Flush() }()

	fs := cli.NewFlagSet("levdist")
	fs.SetOutput(io.Discard)

	if len(argv) == 0 {
		fs.SetOutput(outw)
		fs.Usage()
		return flushCode(outw, stderr, 0)
	}

	opts, err := cli.ParseArgs(fs, argv)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			fs.SetOutput(outw)
			fs.Usage()
			return flushCode(outw, stderr, 0)
		}
		fmt.Fprintln(stderr, err)
		fs.SetOutput(stderr)
		fs.Usage()
		return 2
	}

	if opts.Version {
		fmt.Fprintf(outw, "levdist version %s\n", version.Version)
		return flushCode(outw, stderr, 0)
	}

	var pairs []batch.Pair
	if opts.Inline() {
		if opts.Threads > 0 && !opts.Quiet {
			fmt.Fprintln(stderr, "warning: --threads has no effect on a single inline pair")
		}
		pairs = []batch.Pair{{Source: opts.Source, Target: opts.Target}}
	} else {
		for _, path := range opts.PairFiles {
			loaded, lerr := pairfile.LoadTSV(path)
			if lerr != nil {
				fmt.Fprintln(stderr, lerr)
				return 2
			}
			pairs = append(pairs, loaded...)
		}
	}

	// A dispatched batch runs to completion, so honor an interrupt only
	// while no work has started yet.
	if parent.Err() != nil {
		return 130
	}

	var distances []int
	switch {
	case opts.Inline():
		distances = []int{lev.Distance(opts.Source, opts.Target, opts.Mode)}
	case opts.Threads > 0:
		distances, err = batch.Run(pairs, opts.Mode, opts.Threads)
	default:
		distances, err = batch.RunDefault(pairs, opts.Mode)
	}
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 3
	}

	rows := output.ToAPIResults(pairs, distances, opts.Mode)
	switch opts.Output {
	case "json":
		err = output.WriteJSON(outw, rows)
	case "jsonl":
		err = output.WriteJSONL(outw, rows)
	default:
		err = output.WriteText(outw, rows, opts.Header)
	}
	if writers.IsBrokenPipe(err) {
		return 0
	} else if err != nil {
		fmt.Fprintln(stderr, err)
		return 3
	}
	return flushCode(outw, stderr, 0)
}

// Run is RunContext without external cancellation.
func Run(argv []string, stdout, stderr io.Writer) int {
	return RunContext(context.Background(), argv, stdout, stderr)
}

func flushCode(outw *bufio.Writer, stderr io.Writer, code int) int {
	if err := outw.Flush(); writers.IsBrokenPipe(err) {
		return 0
	} else if err != nil {
		fmt.Fprintln(stderr, err)
		return 3
	}
	return code
}
