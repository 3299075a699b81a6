package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/mattn/go-isatty"
	flag "github.com/spf13/pflag"

	compactjson "github.com/masaccio/compact-json"
)

var version = "dev"

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	logger := log.New(stderr)
	logger.SetReportTimestamp(false)

	flags := flag.NewFlagSet("compact-json", flag.ContinueOnError)
	flags.SetOutput(stderr)
	flags.Usage = func() {
		fmt.Fprintf(stderr, "Usage: compact-json [flags] [file...]\n\nFormat JSON into compact, human readable form.\nWith no files, reads a document from standard input.\n\nFlags:\n")
		flags.PrintDefaults()
	}

	var (
		showVersion   = flags.BoolP("version", "V", false, "print version and exit")
		crlf          = flags.Bool("crlf", false, "use Windows-style CRLF line endings")
		maxInlineLen  = flags.Int("max-inline-length", 50, "limit inline elements to N columns, excluding indentation and leading property names")
		maxInlineCplx = flags.Int("max-inline-complexity", 2, "maximum nesting on a single line: 0=primitives, 1=one container level, 2=all")
		maxCompact    = flags.Int("max-compact-list-complexity", 1, "maximum nesting across multiple lines with several items per line")
		bracketPad    = flags.String("bracket-padding", "nested", "pad brackets of inline containers holding other containers (\"nested\") or only primitives (\"simple\")")
		indent        = flags.Int("indent", 4, "indent N spaces per level")
		tabIndent     = flags.Bool("tab-indent", false, "use tabs to indent")
		justify       = flags.Bool("justify-numbers", true, "right-align groups of numbers with matching precision")
		prefix        = flags.String("prefix-string", "", "string attached to the beginning of every line")
		alignProps    = flags.Bool("align-properties", false, "align property names of expanded objects")
		unicodeWidths = flags.Bool("unicode", false, "measure strings with East Asian wide-character widths")
		dictSim       = flags.Int("table-dict-similarity", 75, "minimum similarity (0-100) for groups of objects to format as a table")
		listSim       = flags.Int("table-list-similarity", 75, "minimum similarity (0-100) for groups of arrays to format as a table")
		debug         = flags.Bool("debug", false, "enable debug logging")
	)

	if err := flags.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return 0
		}
		return 2
	}
	if *debug {
		logger.SetLevel(log.DebugLevel)
	}
	if *showVersion {
		fmt.Fprintln(stdout, version)
		return 0
	}

	opts := *compactjson.DefaultOptions
	opts.MaxInlineLength = *maxInlineLen
	opts.MaxInlineComplexity = *maxInlineCplx
	opts.MaxCompactListComplexity = *maxCompact
	opts.IndentSpaces = *indent
	opts.UseTabToIndent = *tabIndent
	opts.JustifyNumbers = *justify
	opts.PrefixString = *prefix
	opts.AlignExpandedPropertyNames = *alignProps
	opts.EastAsianStringWidths = *unicodeWidths
	opts.TableObjectMinimumSimilarity = *dictSim
	opts.TableArrayMinimumSimilarity = *listSim
	if *crlf {
		opts.EOLStyle = compactjson.EOLCRLF
	}
	switch *bracketPad {
	case "nested":
		opts.NestedBracketPadding = true
		opts.SimpleBracketPadding = false
	case "simple":
		opts.NestedBracketPadding = false
		opts.SimpleBracketPadding = true
	default:
		logger.Errorf("unknown bracket padding mode %q (want \"simple\" or \"nested\")", *bracketPad)
		return 2
	}

	paths := flags.Args()
	if len(paths) == 0 {
		if f, ok := stdin.(*os.File); ok && isatty.IsTerminal(f.Fd()) {
			flags.Usage()
			return 2
		}
		paths = []string{"-"}
	}

	for _, path := range paths {
		data, err := readInput(stdin, path)
		if err != nil {
			logger.Errorf("%s", err)
			return 1
		}
		logger.Debugf("formatting %s (%d bytes)", path, len(data))
		out, err := compactjson.Pretty(data, &opts)
		if err != nil {
			logger.Errorf("%s: %s", path, err)
			return 1
		}
		if _, err := stdout.Write(out); err != nil {
			logger.Errorf("write error: %s", err)
			return 1
		}
	}
	return 0
}

func readInput(stdin io.Reader, path string) ([]byte, error) {
	if path == "-" {
		return io.ReadAll(stdin)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return data, nil
}
