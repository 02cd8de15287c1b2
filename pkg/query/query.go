package query

import (
	"context"
	"errors"

	"github.com/OFFIS-RIT/carekg/pkg/graph"
)

// NoEntitiesFound is the text returned when no node matches a query.
const NoEntitiesFound = "No relevant entities found in Knowledge Graph."

// MaxSeeds is the hard ceiling on the number of resolved seed entities.
const MaxSeeds = 3

// GraphQueryClient defines the interface for retrieving knowledge graph
// context for free-text questions. The resulting text is meant to be handed
// to an external generation step.
type GraphQueryClient interface {
	ResolveEntities(query string) []string
	GetContext(ctx context.Context, query string, hops int) (Context, error)
}

// LocalQueryClient answers queries against an in-memory graph.
type LocalQueryClient struct {
	graph    *graph.Graph
	maxSeeds int
	trace    Tracer
}

type LocalQueryClientOption func(*LocalQueryClient)

// WithTracer records seeds, rendered nodes and emitted edges of every
// retrieval to t.
func WithTracer(t Tracer) LocalQueryClientOption {
	return func(c *LocalQueryClient) {
		c.trace = t
	}
}

// NewLocalQueryClientParams defines the parameters for NewLocalQueryClient.
//
// MaxSeeds limits the number of resolved entities per query. Values outside
// 1..MaxSeeds fall back to MaxSeeds.
type NewLocalQueryClientParams struct {
	Graph    *graph.Graph
	MaxSeeds int
}

func NewLocalQueryClient(params NewLocalQueryClientParams, opts ...LocalQueryClientOption) (*LocalQueryClient, error) {
	if params.Graph == nil {
		return nil, errors.New("graph is required")
	}

	maxSeeds := params.MaxSeeds
	if maxSeeds <= 0 || maxSeeds > MaxSeeds {
		maxSeeds = MaxSeeds
	}

	c := &LocalQueryClient{
		graph:    params.Graph,
		maxSeeds: maxSeeds,
	}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		opt(c)
	}
	return c, nil
}
