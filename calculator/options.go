// SPDX-License-Identifier: MIT

package calculator

import (
	"io"
	"log/slog"

	"github.com/katalvlaran/matrixlab/matrix"
)

// Grid bounds for a Session (the interactive tool offers 1×1 through 5×5).
const (
	MinSize = 1
	MaxSize = 5
)

const panicNilLogger = "calculator: WithLogger: logger must be non-nil"

// SessionOption configures a Session at construction.
type SessionOption func(*sessionConfig)

type sessionConfig struct {
	logger     *slog.Logger
	engineOpts []matrix.Option
}

// WithLogger routes session debug records to l. Panics on nil.
func WithLogger(l *slog.Logger) SessionOption {
	if l == nil {
		panic(panicNilLogger)
	}

	return func(c *sessionConfig) { c.logger = l }
}

// WithEngineOptions appends matrix options forwarded to every Compute call
// (determinant method, eigen solver, singular epsilon, ...).
func WithEngineOptions(opts ...matrix.Option) SessionOption {
	cp := append([]matrix.Option(nil), opts...)

	return func(c *sessionConfig) { c.engineOpts = append(c.engineOpts, cp...) }
}

func gatherSessionOptions(opts ...SessionOption) sessionConfig {
	c := sessionConfig{
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&c)
		}
	}

	return c
}
