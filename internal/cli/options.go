// internal/cli/options.go
package cli

import (
	"errors"
	"flag"
	"fmt"
	"strings"

	"levdist-core/segment"
	"levdist/internal/version"
)

// Options holds all CLI flags and arguments.
type Options struct {
	// Input
	PairFiles []string // TSV pair file(s), '-' = STDIN
	Source    string   // inline single pair
	Target    string

	// Computation
	Mode    segment.Mode
	Threads int // 0 = all CPUs

	// Output
	Output string // text | json | jsonl
	Header bool   // true unless --no-header

	// Misc
	Quiet   bool
	Version bool
}

// NewFlagSet returns a configured FlagSet with custom usage/help.
func NewFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.Usage = func() {
		out := fs.Output()
		fmt.Fprintf(out, "%s – Unicode Levenshtein distance, single pairs and parallel batches\n\n", name)
		fmt.Fprintln(out, "License: MIT")
		fmt.Fprintf(out, "Version: %s\n\n", version.Version)

		fmt.Fprintf(out, "Usage:\n")
		fmt.Fprintf(out, "  %s -a kitten -b sitting\n", name)
		fmt.Fprintf(out, "  %s -p pairs.tsv --mode grapheme -t 8 -o jsonl\n\n", name)

		fmt.Fprintln(out, "Input:")
		fmt.Fprintln(out, "  -p, --pairs file       TSV pair file: source<TAB>target (repeatable, or '-' for STDIN)")
		fmt.Fprintln(out, "  -a, --source string    first string of an inline pair")
		fmt.Fprintln(out, "  -b, --target string    second string of an inline pair")

		fmt.Fprintln(out, "\nComputation:")
		fmt.Fprintln(out, "  -m, --mode string      comparison unit: codepoint | grapheme [codepoint]")
		fmt.Fprintln(out, "  -t, --threads int      worker threads for batches (0 = all CPUs) [0]")

		fmt.Fprintln(out, "\nOutput:")
		fmt.Fprintln(out, "  -o, --output string    output format: text | json | jsonl [text]")
		fmt.Fprintln(out, "      --no-header        suppress header line in text/TSV")

		fmt.Fprintln(out, "\nMisc:")
		fmt.Fprintln(out, "  -q, --quiet            suppress non-essential warnings")
		fmt.Fprintln(out, "  -v, --version          print version and exit")
		fmt.Fprintln(out, "  -h, --help             show this help message")
	}
	return fs
}

// ParseArgs registers and parses all flags, returns an Options struct.
func ParseArgs(fs *flag.FlagSet, argv []string) (Options, error) {
	opt := Options{}
	var help bool
	var mode string

	// Input
	var pairs stringSlice
	fs.Var(&pairs, "pairs", "TSV pair file (repeatable or '-')")
	fs.Var(&pairs, "p", "alias of --pairs")
	fs.StringVar(&opt.Source, "source", "", "inline pair: first string")
	fs.StringVar(&opt.Source, "a", "", "alias of --source")
	fs.StringVar(&opt.Target, "target", "", "inline pair: second string")
	fs.StringVar(&opt.Target, "b", "", "alias of --target")

	// Computation
	fs.StringVar(&mode, "mode", "codepoint", "comparison unit: codepoint | grapheme [codepoint]")
	fs.StringVar(&mode, "m", "codepoint", "alias of --mode")
	fs.IntVar(&opt.Threads, "threads", 0, "worker threads (0 = all CPUs) [0]")
	fs.IntVar(&opt.Threads, "t", 0, "alias of --threads")

	// Output
	fs.StringVar(&opt.Output, "output", "text", "output format: text | json | jsonl [text]")
	fs.StringVar(&opt.Output, "o", "text", "alias of --output")
	noHeader := false
	fs.BoolVar(&noHeader, "no-header", false, "suppress header line in text/TSV [false]")

	// Misc
	fs.BoolVar(&opt.Quiet, "quiet", false, "suppress non-essential warnings [false]")
	fs.BoolVar(&opt.Quiet, "q", false, "alias of --quiet")
	fs.BoolVar(&opt.Version, "version", false, "print version and exit [false]")
	fs.BoolVar(&opt.Version, "v", false, "alias of --version")
	fs.BoolVar(&help, "h", false, "show this help message (shorthand) [false]")

	if err := fs.Parse(argv); err != nil {
		return opt, err
	}
	if help {
		fs.Usage()
		return opt, flag.ErrHelp
	}
	if opt.Version {
		return opt, nil
	}
	opt.PairFiles = pairs
	opt.Header = !noHeader

	// The empty string is a legal input, so inline pair presence is
	// judged by whether the flag was set, not by its value.
	seen := map[string]bool{}
	fs.Visit(func(f *flag.Flag) { seen[f.Name] = true })
	srcSet := seen["source"] || seen["a"]
	tgtSet := seen["target"] || seen["b"]

	// Validation
	usingFile := len(opt.PairFiles) > 0
	usingInline := srcSet || tgtSet
	switch {
	case usingFile && usingInline:
		return opt, errors.New("--pairs conflicts with --source/--target")
	case usingInline && (!srcSet || !tgtSet):
		return opt, errors.New("--source and --target must be supplied together")
	case !usingFile && !usingInline:
		return opt, errors.New("provide --pairs or --source/--target")
	}
	if opt.Threads < 0 {
		return opt, errors.New("--threads must be ≥ 0")
	}
	if opt.Output != "text" && opt.Output != "json" && opt.Output != "jsonl" {
		return opt, fmt.Errorf("invalid --output %q", opt.Output)
	}
	m, err := segment.ParseMode(mode)
	if err != nil {
		return opt, err
	}
	opt.Mode = m
	return opt, nil
}

// Inline reports whether the options describe a single inline pair
// rather than pair files.
func (o Options) Inline() bool { return len(o.PairFiles) == 0 }

// stringSlice allows repeatable string flags.
type stringSlice []string

func (s *stringSlice) String() string     { return strings.Join(*s, ",") }
func (s *stringSlice) Set(v string) error { *s = append(*s, v); return nil }
