package query

import (
	"slices"
	"sync"
)

type TraceEventKind string

const (
	TraceEventSeeds         TraceEventKind = "seeds"
	TraceEventRenderedNodes TraceEventKind = "rendered_nodes"
	TraceEventEmittedEdges  TraceEventKind = "emitted_edges"
)

// TraceEvent is an extensible event envelope for query tracing.
// Additive changes to this struct are backward compatible for implementers.
type TraceEvent struct {
	Kind TraceEventKind

	NodeIDs []string
	Count   int
}

// Tracer is a sink for query tracing events.
//
// Implementers can forward events to logs or custom post-processing
// pipelines.
type Tracer interface {
	Record(event TraceEvent)
}

// MultiTracer fan-outs trace events to multiple tracers.
type MultiTracer []Tracer

func (m MultiTracer) Record(event TraceEvent) {
	for _, t := range m {
		if t == nil {
			continue
		}
		t.Record(event)
	}
}

func RecordSeeds(t Tracer, ids ...string) {
	if t == nil {
		return
	}
	t.Record(TraceEvent{Kind: TraceEventSeeds, NodeIDs: ids})
}

func RecordRenderedNodes(t Tracer, ids ...string) {
	if t == nil {
		return
	}
	t.Record(TraceEvent{Kind: TraceEventRenderedNodes, NodeIDs: ids})
}

func RecordEmittedEdges(t Tracer, count int) {
	if t == nil {
		return
	}
	t.Record(TraceEvent{Kind: TraceEventEmittedEdges, Count: count})
}

// QueryTrace collects the seeds, rendered nodes and emitted edge count of
// one or more retrievals.
//
// QueryTrace is safe for concurrent use.
type QueryTrace struct {
	mu sync.Mutex

	seeds         []string
	seenSeeds     map[string]struct{}
	renderedNodes map[string]struct{}
	emittedEdges  int
}

type QueryTraceSnapshot struct {
	Seeds         []string `json:"seeds"`
	RenderedNodes []string `json:"rendered_nodes"`
	EmittedEdges  int      `json:"emitted_edges"`
}

func NewQueryTrace() *QueryTrace {
	return &QueryTrace{
		seenSeeds:     make(map[string]struct{}),
		renderedNodes: make(map[string]struct{}),
	}
}

func (t *QueryTrace) Record(event TraceEvent) {
	if t == nil {
		return
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	switch event.Kind {
	case TraceEventSeeds:
		// seeds keep resolver order
		for _, id := range event.NodeIDs {
			if _, ok := t.seenSeeds[id]; ok || id == "" {
				continue
			}
			t.seenSeeds[id] = struct{}{}
			t.seeds = append(t.seeds, id)
		}
	case TraceEventRenderedNodes:
		for _, id := range event.NodeIDs {
			if id == "" {
				continue
			}
			t.renderedNodes[id] = struct{}{}
		}
	case TraceEventEmittedEdges:
		t.emittedEdges += event.Count
	default:
		return
	}
}

func (t *QueryTrace) Snapshot() QueryTraceSnapshot {
	if t == nil {
		return QueryTraceSnapshot{}
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	s := QueryTraceSnapshot{
		Seeds:         slices.Clone(t.seeds),
		RenderedNodes: make([]string, 0, len(t.renderedNodes)),
		EmittedEdges:  t.emittedEdges,
	}
	if s.Seeds == nil {
		s.Seeds = []string{}
	}
	for id := range t.renderedNodes {
		s.RenderedNodes = append(s.RenderedNodes, id)
	}
	slices.Sort(s.RenderedNodes)

	return s
}
