// SPDX-License-Identifier: MIT

// flatmat loads matrices from a JSONC or YAML document and applies one
// operation to them, printing the result row by row.
//
// Operations:
//
//	show       print operand a
//	transpose  print the transpose of a
//	mul        print a × b
//	index      print a[--x, --y]; each expression is "...", "i", "a:b", "a:", ":b"
//
// Usage:
//
//	flatmat --file ops.jsonc --op mul
//	flatmat --file ops.yaml --op index --x 1:3 --y 0:2
//	cat ops.jsonc | flatmat --op transpose
package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/pflag"

	"github.com/katalvlaran/flatmat/matrix"
)

const (
	opShow      = "show"
	opTranspose = "transpose"
	opMul       = "mul"
	opIndex     = "index"
)

var errUnknownOp = errors.New("unknown operation")

func main() {
	if err := run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	var (
		filePath string
		format   string
		op       string
		xExpr    string
		yExpr    string
		verbose  bool
	)

	flagSet := pflag.NewFlagSet("flatmat", pflag.ContinueOnError)
	flagSet.SetOutput(stderr)
	flagSet.StringVarP(&filePath, "file", "f", "", "input document (.jsonc, .json, .yaml, .yml); stdin when empty")
	flagSet.StringVar(&format, "format", "", "input format: jsonc or yaml (default: from extension, else jsonc)")
	flagSet.StringVar(&op, "op", opShow, "operation: show, transpose, mul, index")
	flagSet.StringVar(&xExpr, "x", "...", "column index expression for --op index")
	flagSet.StringVar(&yExpr, "y", "...", "row index expression for --op index")
	flagSet.BoolVarP(&verbose, "verbose", "v", false, "log operation details to stderr")

	if err := flagSet.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return nil
		}
		return err
	}
	if rest := flagSet.Args(); len(rest) > 0 {
		return fmt.Errorf("unexpected argument: %s", rest[0])
	}

	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	doc, err := readDocument(filePath, format, stdin)
	if err != nil {
		return err
	}
	a, err := doc.operand("a")
	if err != nil {
		return err
	}
	logger.Debug("loaded operand", "name", "a", "width", a.Width(), "height", a.Height())

	switch op {
	case opShow:
		_, err = io.WriteString(stdout, a.String())
	case opTranspose:
		_, err = io.WriteString(stdout, a.T().String())
	case opMul:
		err = runMul(logger, doc, a, stdout)
	case opIndex:
		err = runIndex(logger, a, xExpr, yExpr, stdout)
	default:
		err = fmt.Errorf("%q: %w", op, errUnknownOp)
	}

	return err
}

func runMul(logger *slog.Logger, doc *document, a *matrix.Matrix[float64], stdout io.Writer) error {
	b, err := doc.operand("b")
	if err != nil {
		return err
	}
	logger.Debug("loaded operand", "name", "b", "width", b.Width(), "height", b.Height())

	product, err := matrix.Mul(a, b)
	if err != nil {
		return err
	}
	logger.Debug("multiplied", "width", product.Width(), "height", product.Height())
	_, err = io.WriteString(stdout, product.String())

	return err
}

func runIndex(logger *slog.Logger, a *matrix.Matrix[float64], xExpr, yExpr string, stdout io.Writer) error {
	x, err := matrix.ParseIndex(xExpr)
	if err != nil {
		return fmt.Errorf("--x: %w", err)
	}
	y, err := matrix.ParseIndex(yExpr)
	if err != nil {
		return fmt.Errorf("--y: %w", err)
	}
	logger.Debug("indexing", "x", x.String(), "y", y.String())

	sel, err := a.Index(x, y)
	if err != nil {
		return err
	}
	switch {
	case sel.IsScalar():
		_, err = fmt.Fprintln(stdout, sel.Value())
	case sel.IsEmpty():
		w, h := sel.Shape()
		_, err = fmt.Fprintf(stdout, "empty %dx%d\n", w, h)
	default:
		_, err = io.WriteString(stdout, sel.Matrix().String())
	}

	return err
}
