// Command zc is a thin driver over internal/parser, intentionally minimal
// since spec.md §1 excludes the CLI/main driver from the core. Grounded on
// mcgru-funxy/cmd/funxy/main.go's overall shape (read file-or-stdin, run
// the front end, report the first error and exit non-zero) stripped down
// to the one thing this repo actually does: parse.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/logrusorgru/aurora"
	isatty "github.com/mattn/go-isatty"

	"github.com/zero-lang/zc/internal/ast"
	"github.com/zero-lang/zc/internal/parser"
)

func main() {
	source, path, err := readInput(os.Args)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	color := aurora.NewAurora(isatty.IsTerminal(os.Stderr.Fd()))

	mod, err := parser.ParseString(source)
	if err != nil {
		fmt.Fprintln(os.Stderr, color.Red(err.Error()))
		os.Exit(1)
	}

	report(path, mod)
}

func readInput(args []string) (source, path string, err error) {
	if len(args) < 2 {
		if isatty.IsTerminal(os.Stdin.Fd()) {
			return "", "", fmt.Errorf("usage: %s <file> or pipe source on stdin", args[0])
		}
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", "", fmt.Errorf("reading stdin: %w", err)
		}
		return string(data), "<stdin>", nil
	}

	data, err := os.ReadFile(args[1])
	if err != nil {
		return "", "", fmt.Errorf("reading %s: %w", args[1], err)
	}
	return string(data), args[1], nil
}

// report prints one line per top-level expression: its ast.Kind and, for a
// declaration, the declared name's text. This is deliberately not a
// full tree dump — spec.md §1 places source-to-tree rendering for human
// consumption outside the front end's scope.
func report(path string, mod parser.Module) {
	fmt.Printf("%s: %d top-level expression(s)\n", path, len(mod.Root.Expressions))
	for i, e := range mod.Root.Expressions {
		if e == nil {
			continue
		}
		if decl, ok := e.(*ast.Declaration); ok {
			fmt.Printf("  [%d] %s %s\n", i, decl.Kind(), mod.Identifiers.Name(decl.Name))
			continue
		}
		fmt.Printf("  [%d] %s\n", i, e.Kind())
	}
}
