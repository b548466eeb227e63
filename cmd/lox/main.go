/*
Lox scans and parses a single expression and prints its tree.

Usage:

	lox [flags] [FILE]

With no FILE and no -e, an interactive session is started that parses one
expression per line.

The flags are:

	-v/--version
		Give the current version and then exit.

	-c/--config FILE
		Read limits and output settings from the given TOML file.

	-e/--expr SOURCE
		Parse SOURCE instead of reading a file.

	-t/--tokens
		Print the scanned tokens as a table instead of the tree.

	--log-level LEVEL
		Log at the given logrus level. Overrides the config file.

	--no-color
		Do not color diagnostics. Overrides the config file.
*/
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"interpreter/internal"

	"github.com/spf13/pflag"
)

const version = "0.1.0"

const (
	// ExitSuccess indicates the tree was printed.
	ExitSuccess = iota

	// ExitSourceError indicates the source could not be scanned or parsed.
	ExitSourceError

	// ExitInitError indicates a problem with flags, config or the input file.
	ExitInitError
)

const tokenTableWidth = 80

const (
	EnvConfig = "LOX_CONFIG"
)

var (
	flagVersion  = pflag.BoolP("version", "v", false, "Give the current version and then exit.")
	flagConfig   = pflag.StringP("config", "c", "", "Read settings from the given TOML file.")
	flagExpr     = pflag.StringP("expr", "e", "", "Parse the given source instead of a file.")
	flagTokens   = pflag.BoolP("tokens", "t", false, "Print the scanned tokens instead of the tree.")
	flagLogLevel = pflag.String("log-level", "", "Log at the given level.")
	flagNoColor  = pflag.Bool("no-color", false, "Do not color diagnostics.")
)

type stdPrinter struct{}

func (s stdPrinter) Println(a ...interface{}) (n int, err error) {
	return fmt.Println(a...)
}

func (s stdPrinter) Fprintf(w io.Writer, format string, a ...interface{}) (n int, err error) {
	return fmt.Fprintf(w, format, a...)
}

func (s stdPrinter) Fprintln(w io.Writer, a ...interface{}) (n int, err error) {
	return fmt.Fprintln(w, a...)
}

func main() {
	os.Exit(run())
}

func run() int {
	pflag.Parse()

	if *flagVersion {
		fmt.Printf("lox %s\n", version)
		return ExitSuccess
	}

	args := pflag.Args()
	if len(args) > 1 {
		fmt.Fprintf(os.Stderr, "Too many arguments\nDo -h for help.\n")
		return ExitInitError
	}
	if len(args) == 1 && pflag.Lookup("expr").Changed {
		fmt.Fprintf(os.Stderr, "FILE and -e cannot be used together\nDo -h for help.\n")
		return ExitInitError
	}

	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: %s\n", err)
		return ExitInitError
	}

	var name string
	var source io.Reader
	switch {
	case pflag.Lookup("expr").Changed:
		source = strings.NewReader(*flagExpr)
	case len(args) == 1:
		absPath, err := filepath.Abs(args[0])
		if err != nil {
			fmt.Fprintf(os.Stderr, "ERROR: %s\n", err)
			return ExitInitError
		}
		file, err := os.Open(absPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "ERROR: %s\n", err)
			return ExitInitError
		}
		defer file.Close()
		name = args[0]
		source = file
	default:
		if err := repl(cfg, stdPrinter{}); err != nil {
			fmt.Fprintf(os.Stderr, "ERROR: %s\n", err)
			return ExitInitError
		}
		return ExitSuccess
	}

	if *flagTokens {
		return dumpTokens(name, source, cfg)
	}

	if !internal.RunSourceWithPrinter(name, source, cfg, stdPrinter{}) {
		return ExitSourceError
	}
	return ExitSuccess
}

func loadConfig() (internal.Config, error) {
	cfg := internal.DefaultConfig()

	path := os.Getenv(EnvConfig)
	if pflag.Lookup("config").Changed {
		path = *flagConfig
	}
	if path != "" {
		var err error
		cfg, err = internal.LoadConfig(path)
		if err != nil {
			return cfg, err
		}
	}

	if pflag.Lookup("log-level").Changed {
		cfg.LogLevel = *flagLogLevel
	}
	if *flagNoColor {
		cfg.Color = false
	}
	return cfg, cfg.Validate()
}

func dumpTokens(name string, source io.Reader, cfg internal.Config) int {
	tokens, diagnostics, err := internal.Tokenize(source, cfg)
	fmt.Println(internal.TokenTable(tokens, tokenTableWidth))
	if internal.PrintDiagnostics(name, diagnostics, cfg, stdPrinter{}) || err != nil {
		return ExitSourceError
	}
	return ExitSuccess
}
