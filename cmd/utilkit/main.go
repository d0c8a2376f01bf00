// Package main is the command-line front end for the utilkit helpers.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"
)

// Version information (set at build time).
var version = "dev"

// errUsage marks errors caused by a malformed command line.
var errUsage = errors.New("usage")

// cliFlags holds the global command line flags.
type cliFlags struct {
	output      string
	logLevel    string
	logFormat   string
	showVersion bool
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run executes one command and returns the process exit code.
func run(args []string, stdout, stderr io.Writer) int {
	flags, rest, err := parseFlags(args, stderr)
	if err != nil {
		return 2
	}
	if flags.showVersion {
		fmt.Fprintf(stdout, "utilkit version %s\n", version)
		return 0
	}

	logger, err := newLogger(flags.logLevel, flags.logFormat, stderr)
	if err != nil {
		fmt.Fprintf(stderr, "failed to initialize logger: %v\n", err)
		return 1
	}
	defer func() { _ = logger.Sync() }()

	if len(rest) == 0 {
		printUsage(stderr)
		return 2
	}

	r := &runner{out: stdout, format: flags.output, logger: logger}
	if err := r.dispatch(rest[0], rest[1:]); err != nil {
		if errors.Is(err, errUsage) {
			fmt.Fprintf(stderr, "utilkit: %v\n", err)
			printUsage(stderr)
			return 2
		}
		logger.Error("command failed", zap.String("command", rest[0]), zap.Error(err))
		return 1
	}
	return 0
}

// parseFlags parses the global flags, falling back to UTILKIT_* variables.
func parseFlags(args []string, stderr io.Writer) (cliFlags, []string, error) {
	fs := flag.NewFlagSet("utilkit", flag.ContinueOnError)
	fs.SetOutput(stderr)

	var f cliFlags
	fs.StringVar(&f.output, "output", getEnvOrDefault("UTILKIT_OUTPUT", "json"),
		"Output format for structured results (json, yaml)")
	fs.StringVar(&f.logLevel, "log-level", getEnvOrDefault("UTILKIT_LOG_LEVEL", "warn"),
		"Log level (debug, info, warn, error)")
	fs.StringVar(&f.logFormat, "log-format", getEnvOrDefault("UTILKIT_LOG_FORMAT", "console"),
		"Log format (json, console)")
	fs.BoolVar(&f.showVersion, "version", false, "Show version information")

	if err := fs.Parse(args); err != nil {
		return f, nil, err
	}
	if f.output != "json" && f.output != "yaml" {
		fmt.Fprintf(stderr, "utilkit: unknown output format %q\n", f.output)
		return f, nil, errUsage
	}
	return f, fs.Args(), nil
}

func getEnvOrDefault(key, def string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return def
}

func printUsage(w io.Writer) {
	fmt.Fprint(w, `usage: utilkit [flags] <command> [args]

commands:
  bytes N                      humanize a byte count
  phone DIGITS                 format a North American phone number
  lat V | lon V                render decimal degrees as DMS
  random [-unique] [-alphabet CHARS] LENGTH [SET,SET...]
  normalize TEXT | fold TEXT   transliterate to ASCII
  title TEXT                   capitalize space separated words
  uuid add|strip|canonical S   convert UUID forms
  uuid new                     print a new compact UUID
  query RAW                    parse a URL query string
  merge A B | diff A B | equal A B
                               compare or combine two YAML/JSON documents
  tree FILE                    nest a list of [path, value] pairs
`)
}
