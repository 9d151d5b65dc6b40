package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	flag "github.com/spf13/pflag"

	"github.com/Veraticus/pattern-check/pkg/config"
	"github.com/Veraticus/pattern-check/pkg/matcher"
)

// options holds the parsed command line
type options struct {
	configPath string
	pattern    string
	color      string
	strict     bool
	help       bool
	candidates []string
	flags      *flag.FlagSet
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run executes the command and returns the process exit code
func run(args []string, stdout, stderr io.Writer) int {
	opts, err := parseFlags(args, stderr)
	if err != nil {
		fmt.Fprintf(stderr, "Error parsing flags: %v\n", err)
		return exitError
	}

	if opts.help {
		printUsage(stdout, opts.flags)
		return exitOK
	}

	if err := setupLogging(stderr); err != nil {
		fmt.Fprintf(stderr, "Error setting up logging: %v\n", err)
		return exitError
	}

	// The config path has to be in place before the file is read
	if opts.configPath != "" {
		if err := os.Setenv("PATTERN_CHECK_CONFIG", opts.configPath); err != nil {
			fmt.Fprintf(stderr, "Error setting config path: %v\n", err)
			return exitError
		}
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(stderr, "Error loading config: %v\n", err)
		return exitError
	}

	// Override config with command line flags
	applyFlags(cfg, opts)
	if err := config.Validate(cfg); err != nil {
		fmt.Fprintf(stderr, "Error in options: %v\n", err)
		return exitError
	}

	terminal := false
	if f, ok := stdout.(*os.File); ok {
		terminal = isTerminal(f)
	}
	color := colorEnabled(cfg.Color, terminal)

	deps, err := NewDependencies(cfg, outputWriter(stdout, color), color)
	if err != nil {
		var compileErr *matcher.PatternCompileError
		if errors.As(err, &compileErr) {
			fmt.Fprintf(stderr, "Error: invalid pattern: %v\n", compileErr)
		} else {
			fmt.Fprintf(stderr, "Error creating dependencies: %v\n", err)
		}
		return exitError
	}

	app := NewApplication(deps)
	if err := app.Run(cfg.Candidates); err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return exitError
	}

	return app.ExitCode()
}

// parseFlags parses args into options. Positional arguments are candidates.
func parseFlags(args []string, stderr io.Writer) (*options, error) {
	opts := &options{}

	fs := flag.NewFlagSet("pattern-check", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&opts.configPath, "config", "", "Path to config file")
	fs.StringVarP(&opts.pattern, "pattern", "p", "", "Regular expression every candidate must match in full")
	fs.StringVar(&opts.color, "color", "", "Color markers: auto, always or never")
	fs.BoolVar(&opts.strict, "strict", false, "Exit with status 2 if any candidate is invalid")
	fs.BoolVarP(&opts.help, "help", "h", false, "Show help message")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	opts.candidates = fs.Args()
	opts.flags = fs
	return opts, nil
}

// applyFlags overrides cfg with any options given on the command line
func applyFlags(cfg *config.Config, opts *options) {
	if opts.pattern != "" {
		cfg.Pattern = opts.pattern
	}
	if opts.color != "" {
		cfg.Color = opts.color
	}
	if opts.strict {
		cfg.Strict = true
	}
	if len(opts.candidates) > 0 {
		cfg.Candidates = opts.candidates
	}
}

func printUsage(w io.Writer, fs *flag.FlagSet) {
	fmt.Fprintln(w, "pattern-check - check strings against a regular expression")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Usage: pattern-check [OPTIONS] [CANDIDATES...]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Options:")
	fmt.Fprint(w, fs.FlagUsages())
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Each candidate must match the whole pattern, not just a substring.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Environment Variables:")
	fmt.Fprintln(w, "  PATTERN_CHECK_PATTERN     Pattern to match")
	fmt.Fprintln(w, "  PATTERN_CHECK_CANDIDATES  Candidates (comma-separated)")
	fmt.Fprintln(w, "  PATTERN_CHECK_COLOR       auto, always or never (default: auto)")
	fmt.Fprintln(w, "  PATTERN_CHECK_STRICT      Exit 2 on any invalid candidate (true/false)")
	fmt.Fprintln(w, "  PATTERN_CHECK_CONFIG      Path to config file")
	fmt.Fprintln(w, "  PATTERN_CHECK_LOG_LEVEL   debug, info, warn or error (default: warn)")
	fmt.Fprintln(w, "  PATTERN_CHECK_DEBUG       Set to 1 for debug logging")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Configuration file: ~/.config/pattern-check/config.yaml")
}
