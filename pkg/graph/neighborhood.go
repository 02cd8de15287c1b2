package graph

import (
	"slices"

	"github.com/OFFIS-RIT/carekg/pkg/common"
)

// Subgraph is the bounded neighborhood of a seed node.
//
// Nodes holds every node reachable from the seed within the radius when
// edges are followed in either direction, in graph insertion order. Edges
// holds every directed edge whose endpoints are both in Nodes, in graph
// insertion order and with their original direction.
type Subgraph struct {
	Seed  string
	Nodes []string
	Edges []common.Edge
}

// Empty reports whether the subgraph contains no nodes.
func (s Subgraph) Empty() bool {
	return len(s.Nodes) == 0
}

// Contains reports whether id is part of the neighborhood.
func (s Subgraph) Contains(id string) bool {
	return slices.Contains(s.Nodes, id)
}

// Neighborhood returns the induced subgraph of all nodes within radius
// undirected hops of seed. An unknown seed yields an empty subgraph. A
// radius of zero yields the seed and its self-loops only; negative radii are
// treated as zero.
func (g *Graph) Neighborhood(seed string, radius int) Subgraph {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if _, ok := g.nodes[seed]; !ok {
		return Subgraph{Seed: seed}
	}
	if radius < 0 {
		radius = 0
	}

	reached := map[string]struct{}{seed: {}}
	frontier := []string{seed}
	for hop := 0; hop < radius && len(frontier) > 0; hop++ {
		next := make([]string, 0)
		for _, id := range frontier {
			for _, idx := range g.adjacency[id] {
				e := g.edges[idx]
				other := e.To
				if other == id {
					other = e.From
				}
				if _, seen := reached[other]; seen {
					continue
				}
				reached[other] = struct{}{}
				next = append(next, other)
			}
		}
		frontier = next
	}

	sub := Subgraph{
		Seed:  seed,
		Nodes: make([]string, 0, len(reached)),
	}
	for _, id := range g.order {
		if _, ok := reached[id]; ok {
			sub.Nodes = append(sub.Nodes, id)
		}
	}

	// Edges are collected through the adjacency index of the reached nodes
	// and then put back into global insertion order.
	edgeIdx := make(map[int]struct{})
	for id := range reached {
		for _, idx := range g.adjacency[id] {
			e := g.edges[idx]
			_, fromIn := reached[e.From]
			_, toIn := reached[e.To]
			if fromIn && toIn {
				edgeIdx[idx] = struct{}{}
			}
		}
	}
	indices := make([]int, 0, len(edgeIdx))
	for idx := range edgeIdx {
		indices = append(indices, idx)
	}
	slices.Sort(indices)

	sub.Edges = make([]common.Edge, 0, len(indices))
	for _, idx := range indices {
		sub.Edges = append(sub.Edges, g.edges[idx])
	}

	return sub
}
