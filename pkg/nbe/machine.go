package nbe

import (
	"context"
	"errors"
	"fmt"
	"os"
	"sort"

	"github.com/samber/lo"
	"github.com/tevino/abool/v2"
)

var nbeDebug = os.Getenv("LAMNBE_DEBUG") != ""

// Stats counts what a machine did.
type Stats struct {
	Beta      uint64 // closure applications
	Stuck     uint64 // atom applications
	Lookups   uint64
	Binders   uint64 // fresh names drawn while displaying abstractions
	PeakDepth int
}

// Total is the number of applications performed.
func (s Stats) Total() uint64 {
	return s.Beta + s.Stuck
}

// Machine holds the run-wide state shared by every term it builds:
// the depth guard, the halt flag, declared free names, counters and the
// optional trace. A machine is not safe for concurrent use, except for
// Halt.
type Machine struct {
	maxDepth int
	depth    int
	free     map[string]struct{}
	halted   *abool.AtomicBool
	stats    Stats

	traceOn  bool
	traceBuf []TraceEvent
	traceCap int
	step     uint64
}

type Option func(*Machine)

// WithMaxDepth bounds nested apply/display calls, failing with
// ErrDepthExceeded past n. Zero or less, the default, means no bound.
func WithMaxDepth(n int) Option {
	return func(m *Machine) {
		m.maxDepth = n
	}
}

// WithFree declares names that may occur unbound.
func WithFree(names ...string) Option {
	return func(m *Machine) {
		m.Declare(names...)
	}
}

func NewMachine(opts ...Option) *Machine {
	m := &Machine{
		free:     make(map[string]struct{}),
		halted:   abool.New(),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Declare adds free names. A free name evaluates to an atom printing
// itself, and fresh binder names never coincide with it.
func (m *Machine) Declare(names ...string) {
	m.free = lo.Assign(m.free, lo.SliceToMap(names, func(n string) (string, struct{}) {
		return n, struct{}{}
	}))
}

func (m *Machine) IsFree(name string) bool {
	_, ok := m.free[name]
	return ok
}

// Free returns the declared free names, sorted.
func (m *Machine) Free() []string {
	names := lo.Keys(m.free)
	sort.Strings(names)
	return names
}

// Halt makes every subsequent apply or display step fail with
// ErrHalted. It may be called from any goroutine.
func (m *Machine) Halt() {
	m.halted.Set()
}

func (m *Machine) Halted() bool {
	return m.halted.IsSet()
}

func (m *Machine) Stats() Stats {
	return m.stats
}

// Close evaluates open under the empty environment.
func (m *Machine) Close(open Open) (Term, error) {
	return open(m, nil)
}

// Render displays t starting from FirstFresh.
func (m *Machine) Render(t Term) (string, error) {
	return t.Display(FirstFresh)
}

// Normalize closes open and renders its normal form. A term without a
// normal form keeps the machine busy until ctx is done; the error then
// wraps both ErrHalted and the context's cause.
func (m *Machine) Normalize(ctx context.Context, open Open) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", fmt.Errorf("%w: %w", ErrHalted, context.Cause(ctx))
	}
	m.halted.UnSet()
	m.depth = 0

	stop := context.AfterFunc(ctx, m.Halt)
	defer stop()

	out, err := m.normalize(open)
	if err != nil {
		if errors.Is(err, ErrHalted) && ctx.Err() != nil {
			return "", fmt.Errorf("%w: %w", err, context.Cause(ctx))
		}
		return "", err
	}
	return out, nil
}

func (m *Machine) normalize(open Open) (string, error) {
	t, err := m.Close(open)
	if err != nil {
		return "", err
	}
	return m.Render(t)
}

func (m *Machine) enter() error {
	if m.halted.IsSet() {
		return ErrHalted
	}
	m.depth++
	if m.maxDepth > 0 && m.depth > m.maxDepth {
		m.depth--
		return fmt.Errorf("%w (limit %d)", ErrDepthExceeded, m.maxDepth)
	}
	if m.depth > m.stats.PeakDepth {
		m.stats.PeakDepth = m.depth
	}
	return nil
}

func (m *Machine) leave() {
	m.depth--
}

// avoidFree skips fresh names that collide with a declared free name.
func (m *Machine) avoidFree(f Fresh) Fresh {
	for m.IsFree(string(f)) {
		f = f.Next()
	}
	return f
}
