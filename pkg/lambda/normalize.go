package lambda

import (
	"context"

	"github.com/vic/lamnbe/pkg/nbe"
)

type config struct {
	open     bool
	maxDepth int
	machine  *nbe.Machine
}

type Option func(*config)

// WithOpenTerms lets the input mention free variables. Each one prints
// as itself instead of failing with *nbe.UnboundVariableError.
func WithOpenTerms() Option {
	return func(c *config) {
		c.open = true
	}
}

// WithMaxDepth turns on the evaluation depth limit; see
// nbe.WithMaxDepth. There is none by default. It has no effect together
// with WithMachine.
func WithMaxDepth(n int) Option {
	return func(c *config) {
		c.maxDepth = n
	}
}

// WithMachine runs on m, so the caller can read its stats or trace.
func WithMachine(m *nbe.Machine) Option {
	return func(c *config) {
		c.machine = m
	}
}

// Normalize parses input and returns its normal form in the same
// notation.
func Normalize(ctx context.Context, input string, opts ...Option) (string, error) {
	term, err := Parse(input)
	if err != nil {
		return "", err
	}
	return NormalizeTerm(ctx, term, opts...)
}

func NormalizeTerm(ctx context.Context, term Term, opts ...Option) (string, error) {
	var cfg config
	for _, opt := range opts {
		opt(&cfg)
	}

	m := cfg.machine
	if m == nil {
		m = nbe.NewMachine(nbe.WithMaxDepth(cfg.maxDepth))
	}
	if cfg.open {
		m.Declare(FreeVars(term)...)
	}
	return m.Normalize(ctx, Compile(term))
}
