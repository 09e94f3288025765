package nbe

import (
	"fmt"
	"os"
)

type EventKind int

const (
	EventUnknown EventKind = iota
	EventBeta
	EventStuck
	EventBinder
	EventLookup
)

func (k EventKind) String() string {
	switch k {
	case EventBeta:
		return "beta"
	case EventStuck:
		return "stuck"
	case EventBinder:
		return "binder"
	case EventLookup:
		return "lookup"
	default:
		return "unknown"
	}
}

type TraceEvent struct {
	Step  uint64
	Kind  EventKind
	Name  string // parameter, fresh name or looked-up variable; empty for stuck
	Depth int
}

func (e TraceEvent) String() string {
	return fmt.Sprintf("#%d %s %s depth=%d", e.Step, e.Kind, e.Name, e.Depth)
}

// EnableTrace starts recording the first capacity events.
func (m *Machine) EnableTrace(capacity int) {
	if capacity <= 0 {
		capacity = 1
	}
	m.traceBuf = make([]TraceEvent, 0, capacity)
	m.traceCap = capacity
	m.traceOn = true
}

func (m *Machine) TraceSnapshot() []TraceEvent {
	if !m.traceOn {
		return nil
	}
	res := make([]TraceEvent, len(m.traceBuf))
	copy(res, m.traceBuf)
	return res
}

func (m *Machine) record(kind EventKind, name string) {
	step := m.step
	m.step++
	if nbeDebug {
		fmt.Fprintf(os.Stderr, "nbe: #%d %s %s depth=%d\n", step, kind, name, m.depth)
	}
	if !m.traceOn || len(m.traceBuf) >= m.traceCap {
		return
	}
	m.traceBuf = append(m.traceBuf, TraceEvent{
		Step:  step,
		Kind:  kind,
		Name:  name,
		Depth: m.depth,
	})
}
