// Package repl SPDX-License-Identifier: Apache-2.0
package repl

import (
	goerrors "errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/fatih/color"
	"github.com/peterh/liner"

	"lumen/internal/ast"
	"lumen/internal/errors"
	"lumen/internal/parser"
)

const PROMPT = ">> "

// tokensCommand prefixes a line whose token stream should be printed instead
// of its tree.
const tokensCommand = ":tokens "

var history = filepath.Join(xdg.DataHome, "lumen", "history")

// Start reads lines until EOF. Each line is parsed as a whole program.
func Start(out, errOut io.Writer) error {
	line := liner.NewLiner()
	line.SetCtrlCAborts(true)
	defer func() {
		if err := os.MkdirAll(filepath.Dir(history), os.ModePerm); err != nil {
			fmt.Fprintln(errOut, err)
		}
		if f, err := os.Create(history); err == nil {
			defer f.Close()
			if _, err := line.WriteHistory(f); err != nil {
				fmt.Fprintln(errOut, err)
			}
		}
		line.Close()
	}()

	if f, err := os.Open(history); err == nil {
		defer f.Close()
		if _, err := line.ReadHistory(f); err != nil {
			fmt.Fprintln(errOut, err)
		}
	}

	for {
		input, err := line.Prompt(PROMPT)
		switch {
		case goerrors.Is(err, liner.ErrPromptAborted):
			continue
		case goerrors.Is(err, io.EOF):
			fmt.Fprintln(out)
			return nil
		case err != nil:
			return err
		}

		if strings.TrimSpace(input) == "" {
			continue
		}
		line.AppendHistory(input)
		Eval(out, errOut, input)
	}
}

// Eval parses one line and prints its tree to out, or the diagnostic to
// errOut. It reports whether the line parsed.
func Eval(out, errOut io.Writer, input string) bool {
	if rest, ok := strings.CutPrefix(input, tokensCommand); ok {
		tokens, err := parser.Tokenize(rest)
		for _, tok := range tokens {
			fmt.Fprintf(out, "%s %s\n", tok.Location, tok)
		}
		if err != nil {
			report(errOut, rest, err)
			return false
		}
		return true
	}

	program, err := parser.ParseSource("<repl>", input)
	if err != nil {
		report(errOut, input, err)
		return false
	}

	if err := ast.Fprint(out, program); err != nil {
		color.New(color.FgRed).Fprintf(errOut, "failed to print tree: %v\n", err)
		return false
	}
	return true
}

func report(errOut io.Writer, source string, err error) {
	var synErr *errors.SyntaxError
	if goerrors.As(err, &synErr) {
		fmt.Fprint(errOut, errors.NewErrorReporter("<repl>", source).Format(synErr))
		return
	}
	color.New(color.FgRed).Fprintf(errOut, "error: %v\n", err)
}
