// matcalc evaluates one matrix operation from the command line.
//
// Usage:
//
//	matcalc <op> [options] <A> [B]
//
// Matrices are JSON arrays of rows, e.g. '[[1,2],[3,4]]'.
package main

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/katalvlaran/matrixlab/calculator"
	"github.com/katalvlaran/matrixlab/matrix"
	"github.com/katalvlaran/matrixlab/render"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func printUsage(w io.Writer) {
	fmt.Fprint(w, `matcalc - small matrix calculator

Usage:
  matcalc <op> [options] <A> [B]

Operations:
  add, sub, mul        need A and B
  transpose, det, inverse, trace, eigen
                       need A only

Options:
  -p <digits>          Decimal places, 3..6 (default: 4)
  -det <method>        Determinant method: cofactor, lu (default: cofactor)
  -eigen <solver>      Eigen solver for n>2: closed, qr (default: closed)
  -real-only           Refuse complex eigenvalues
  -v                   Log evaluation details to stderr

Examples:
  matcalc mul '[[1,2],[3,4]]' '[[5,6],[7,8]]'
  matcalc inverse -p 3 '[[1,2],[3,4]]'
  matcalc eigen -eigen qr '[[2,0,0],[0,3,4],[0,4,9]]'
`)
}

// run is main without the process exit, returning the exit code.
func run(args []string, stdout, stderr io.Writer) int {
	if len(args) < 1 {
		printUsage(stderr)
		return 1
	}
	switch args[0] {
	case "help", "-h", "--help":
		printUsage(stdout)
		return 0
	}

	op, err := calculator.ParseOperation(args[0])
	if err != nil {
		fmt.Fprintf(stderr, "unknown command: %s\n\n", args[0])
		printUsage(stderr)
		return 1
	}
	if err = runOperation(op, args[1:], stdout, stderr); err != nil {
		fmt.Fprintf(stderr, "error: %s\n", render.FormatError(err))
		return 1
	}

	return 0
}

type config struct {
	precision int
	engine    []matrix.Option
	verbose   bool
	operands  []string
}

func parseArgs(args []string) (config, error) {
	cfg := config{precision: render.DefaultPrecision}
	next := func(i *int, flag string) (string, error) {
		*i++
		if *i >= len(args) {
			return "", fmt.Errorf("%s requires an argument", flag)
		}
		return args[*i], nil
	}

	for i := 0; i < len(args); i++ {
		switch args[i] {
		case "-p":
			v, err := next(&i, "-p")
			if err != nil {
				return cfg, err
			}
			if cfg.precision, err = strconv.Atoi(v); err != nil {
				return cfg, fmt.Errorf("-p: invalid number %q", v)
			}
		case "-det":
			v, err := next(&i, "-det")
			if err != nil {
				return cfg, err
			}
			switch v {
			case matrix.DeterminantCofactor.String():
				cfg.engine = append(cfg.engine, matrix.WithDeterminantMethod(matrix.DeterminantCofactor))
			case matrix.DeterminantLU.String():
				cfg.engine = append(cfg.engine, matrix.WithDeterminantMethod(matrix.DeterminantLU))
			default:
				return cfg, fmt.Errorf("-det: unknown method %q", v)
			}
		case "-eigen":
			v, err := next(&i, "-eigen")
			if err != nil {
				return cfg, err
			}
			switch v {
			case matrix.EigenClosedForm.String():
				cfg.engine = append(cfg.engine, matrix.WithEigenSolver(matrix.EigenClosedForm))
			case matrix.EigenQR.String():
				cfg.engine = append(cfg.engine, matrix.WithEigenSolver(matrix.EigenQR))
			default:
				return cfg, fmt.Errorf("-eigen: unknown solver %q", v)
			}
		case "-real-only":
			cfg.engine = append(cfg.engine, matrix.WithRealEigenvaluesOnly())
		case "-v":
			cfg.verbose = true
		default:
			if strings.HasPrefix(args[i], "-") {
				return cfg, fmt.Errorf("unknown option: %s", args[i])
			}
			cfg.operands = append(cfg.operands, args[i])
		}
	}

	return cfg, nil
}

// parseMatrix decodes a JSON array of rows into a matrix.
func parseMatrix(name, src string) (*matrix.Dense, error) {
	var rows [][]float64
	if err := json.Unmarshal([]byte(src), &rows); err != nil {
		return nil, fmt.Errorf("matrix %s: %w", name, err)
	}
	m, err := matrix.NewFromRows(rows)
	if err != nil {
		return nil, fmt.Errorf("matrix %s: %w", name, err)
	}

	return m, nil
}

func runOperation(op calculator.Operation, args []string, stdout, stderr io.Writer) error {
	cfg, err := parseArgs(args)
	if err != nil {
		return err
	}
	if got, want := len(cfg.operands), op.Arity(); got != want {
		return fmt.Errorf("%s takes %d matrix argument(s), got %d", op, want, got)
	}

	level := slog.LevelWarn
	if cfg.verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	f, err := render.NewFormatter(cfg.precision)
	if err != nil {
		return err
	}

	var a, b *matrix.Dense
	if a, err = parseMatrix("A", cfg.operands[0]); err != nil {
		return err
	}
	var bm matrix.Matrix
	if op.Arity() == 2 {
		if b, err = parseMatrix("B", cfg.operands[1]); err != nil {
			return err
		}
		bm = b
	}

	eff := matrix.NewOptions(cfg.engine...)
	logger.Debug("evaluate",
		"op", op,
		"a", fmt.Sprintf("%dx%d", a.Rows(), a.Cols()),
		"det", eff.DeterminantMethod(),
		"eigen", eff.EigenSolver(),
		"realOnly", eff.RealEigenvaluesOnly(),
	)

	res, err := calculator.Evaluate(op, a, bm, cfg.engine...)
	if err != nil {
		logger.Debug("evaluate failed", "op", op, "err", err)
		return err
	}
	out, err := f.FormatResult(res)
	if err != nil {
		return err
	}
	fmt.Fprintln(stdout, out)

	return nil
}
