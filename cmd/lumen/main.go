// SPDX-License-Identifier: Apache-2.0
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/fatih/color"

	"lumen/grammar"
	"lumen/internal/ast"
	"lumen/internal/errors"
	"lumen/internal/parser"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	flags := flag.NewFlagSet("lumen", flag.ContinueOnError)
	flags.SetOutput(stderr)
	flags.Usage = func() {
		fmt.Fprintln(stderr, "Usage: lumen [flags] <file.lm>")
		flags.PrintDefaults()
	}

	dumpTokens := flags.Bool("tokens", false, "print the token stream instead of the tree")
	printEBNF := flags.Bool("ebnf", false, "print the reference grammar and exit")
	format := flags.Bool("fmt", false, "print the source in canonical form")
	noColor := flags.Bool("no-color", false, "disable colored output")
	quiet := flags.Bool("quiet", false, "only report errors")

	if err := flags.Parse(args); err != nil {
		return 2
	}

	if *noColor {
		color.NoColor = true
	}

	if *printEBNF {
		fmt.Fprintln(stdout, grammar.EBNF())
		return 0
	}

	if flags.NArg() != 1 {
		flags.Usage()
		return 1
	}

	startTime := time.Now()
	path := flags.Arg(0)

	source, err := os.ReadFile(path)
	if err != nil {
		fmt.Fprintf(stderr, "failed to read file: %v\n", err)
		return 1
	}

	reporter := errors.NewErrorReporter(path, string(source))

	if *format {
		ref, err := grammar.ParseString(path, string(source))
		if err != nil {
			fmt.Fprint(stderr, grammar.FormatError(string(source), err))
			return 1
		}
		fmt.Fprint(stdout, ref.String())
		return 0
	}

	if *dumpTokens {
		tokens, err := parser.Tokenize(string(source))
		if !*quiet {
			for _, tok := range tokens {
				fmt.Fprintf(stdout, "%s %s\n", tok.Location, tok)
			}
		}
		if err != nil {
			return fail(stderr, reporter, err, startTime)
		}
		return succeed(stdout, path, startTime, *quiet)
	}

	program, err := parser.ParseSource(path, string(source))
	if err != nil {
		return fail(stderr, reporter, err, startTime)
	}

	if !*quiet {
		if err := ast.Fprint(stdout, program); err != nil {
			fmt.Fprintf(stderr, "failed to print tree: %v\n", err)
			return 1
		}
	}
	return succeed(stdout, path, startTime, *quiet)
}

func succeed(stdout io.Writer, path string, startTime time.Time, quiet bool) int {
	if !quiet {
		color.New(color.FgGreen).Fprintf(stdout, "Successfully processed %s in %s\n", path, formatDuration(time.Since(startTime)))
	}
	return 0
}

func fail(stderr io.Writer, reporter *errors.ErrorReporter, err error, startTime time.Time) int {
	if synErr, ok := err.(*errors.SyntaxError); ok {
		fmt.Fprint(stderr, reporter.Format(synErr))
	} else {
		fmt.Fprintln(stderr, err)
	}
	color.New(color.FgRed).Fprintf(stderr, "Parsing failed after %s\n", formatDuration(time.Since(startTime)))
	return 1
}

func formatDuration(d time.Duration) string {
	switch {
	case d >= time.Minute:
		return fmt.Sprintf("%.2fmin", d.Minutes())
	case d >= time.Second:
		return fmt.Sprintf("%.2fs", d.Seconds())
	case d >= time.Millisecond:
		return fmt.Sprintf("%.1fms", float64(d.Nanoseconds())/1000000.0)
	case d >= time.Microsecond:
		return fmt.Sprintf("%.1fμs", float64(d.Nanoseconds())/1000.0)
	default:
		return fmt.Sprintf("%dns", d.Nanoseconds())
	}
}
