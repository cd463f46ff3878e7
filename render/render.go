// SPDX-License-Identifier: MIT
// Package render formats calculator results for display.
//
// Numbers are printed with a fixed number of decimals (3 to 6) through
// golang.org/x/text, so grouping and decimal separators follow the selected
// language (English by default):
//
//	f, _ := render.NewFormatter(3)
//	f.FormatScalar(-2)        // "-2.000"
//	f.FormatScalar(1234.5)    // "1,234.500"
//
// Matrices print one bracketed row per line with right-aligned columns.
// Eigenvalues print one per line; complex values as "a + bi" or "a - bi".
package render

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"

	"github.com/katalvlaran/matrixlab/calculator"
	"github.com/katalvlaran/matrixlab/matrix"
)

// Precision bounds, in digits after the decimal point.
const (
	MinPrecision     = 3
	MaxPrecision     = 6
	DefaultPrecision = 4
)

// ErrPrecision is returned by NewFormatter for a precision outside [MinPrecision, MaxPrecision].
var ErrPrecision = errors.New("render: precision out of range")

const panicUndefinedTag = "render: WithLanguage: undefined language tag"

// Option configures a Formatter.
type Option func(*Formatter)

// WithLanguage selects the locale used for separators. Panics on language.Und.
func WithLanguage(tag language.Tag) Option {
	if tag == language.Und {
		panic(panicUndefinedTag)
	}

	return func(f *Formatter) { f.lang = tag }
}

// Formatter renders numbers, matrices and eigenvalues at a fixed precision.
// A Formatter is immutable and safe for concurrent use.
type Formatter struct {
	prec int
	lang language.Tag
	p    *message.Printer
}

// NewFormatter returns a Formatter printing prec decimals.
func NewFormatter(prec int, opts ...Option) (*Formatter, error) {
	if prec < MinPrecision || prec > MaxPrecision {
		return nil, fmt.Errorf("%d not in [%d, %d]: %w", prec, MinPrecision, MaxPrecision, ErrPrecision)
	}
	f := &Formatter{prec: prec, lang: language.English}
	for _, opt := range opts {
		if opt != nil {
			opt(f)
		}
	}
	f.p = message.NewPrinter(f.lang)

	return f, nil
}

// Precision returns the configured number of decimals.
func (f *Formatter) Precision() int { return f.prec }

// FormatScalar prints v with exactly Precision decimals.
// Values that round to zero print without a minus sign.
func (f *Formatter) FormatScalar(v float64) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return fmt.Sprint(v)
	}
	scale := math.Pow10(f.prec)
	v = math.Round(v*scale) / scale
	if v == 0 {
		v = 0 // folds -0
	}

	return f.p.Sprintf("%v", number.Decimal(v, number.Scale(f.prec)))
}

// FormatMatrix prints m one row per line, e.g.
//
//	[-2.000,  1.000]
//	[ 1.500, -0.500]
//
// Each column is right-aligned to its widest cell. Lines carry no trailing newline.
func (f *Formatter) FormatMatrix(m matrix.Matrix) (string, error) {
	if err := matrix.ValidateNotNil(m); err != nil {
		return "", err
	}
	r, c := m.Rows(), m.Cols()
	cells := make([][]string, r)
	widths := make([]int, c)
	for i := 0; i < r; i++ {
		cells[i] = make([]string, c)
		for j := 0; j < c; j++ {
			v, err := m.At(i, j)
			if err != nil {
				return "", err
			}
			s := f.FormatScalar(v)
			cells[i][j] = s
			if n := len([]rune(s)); n > widths[j] {
				widths[j] = n
			}
		}
	}

	var b strings.Builder
	for i, row := range cells {
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteByte('[')
		for j, s := range row {
			if j > 0 {
				b.WriteString(", ")
			}
			b.WriteString(strings.Repeat(" ", widths[j]-len([]rune(s))))
			b.WriteString(s)
		}
		b.WriteByte(']')
	}

	return b.String(), nil
}

// FormatComplex prints v as "a" when imag(v) rounds to zero, else "a + bi" / "a - bi".
func (f *Formatter) FormatComplex(v complex128) string {
	re := f.FormatScalar(real(v))
	im := f.FormatScalar(math.Abs(imag(v)))
	if im == f.FormatScalar(0) {
		return re
	}
	sign := "+"
	if imag(v) < 0 {
		sign = "-"
	}

	return re + " " + sign + " " + im + "i"
}

// FormatEigenvalues prints one "λk = value" line per eigenvalue, k from 1.
func (f *Formatter) FormatEigenvalues(vals []complex128) string {
	lines := make([]string, len(vals))
	for k, v := range vals {
		lines[k] = fmt.Sprintf("λ%d = %s", k+1, f.FormatComplex(v))
	}

	return strings.Join(lines, "\n")
}

// FormatResult prints res according to its Kind.
func (f *Formatter) FormatResult(res calculator.Result) (string, error) {
	switch res.Kind {
	case calculator.KindMatrix:
		return f.FormatMatrix(res.Matrix)
	case calculator.KindScalar:
		return f.FormatScalar(res.Scalar), nil
	case calculator.KindEigenvalues:
		return f.FormatEigenvalues(res.Eigenvalues), nil
	default:
		return "", fmt.Errorf("render: unknown result kind %d", int(res.Kind))
	}
}
