package graph

import (
	"sync"

	"github.com/OFFIS-RIT/carekg/pkg/common"
	"github.com/OFFIS-RIT/carekg/pkg/ontology"
)

// Graph is an in-memory labeled multigraph. Nodes are keyed by id and keep
// their first-insertion order; edges are stored by value in insertion order
// and reference their endpoints by id. An adjacency index maps every node id
// to the indices of all edges touching it, in either direction.
//
// Graph is safe for concurrent use. The intended lifecycle is one writer
// during a build followed by any number of concurrent readers.
type Graph struct {
	mu sync.RWMutex

	nodes     map[string]*common.Node
	order     []string
	edges     []common.Edge
	adjacency map[string][]int
}

// NewGraph returns an empty graph.
func NewGraph() *Graph {
	return &Graph{
		nodes:     make(map[string]*common.Node),
		adjacency: make(map[string][]int),
	}
}

// FromSnapshot rebuilds a graph from a persisted snapshot. Node and edge
// order is preserved.
func FromSnapshot(snap common.Snapshot) *Graph {
	g := NewGraph()
	for _, n := range snap.Nodes {
		g.upsertNode(n.ID, n.Type, n.Attributes)
	}
	for _, e := range snap.Edges {
		g.insertEdge(e.From, e.To, e.Relation)
	}
	return g
}

// Snapshot returns a deep copy of every node and edge in insertion order.
// The Version, ID and CreatedAt fields are left for the caller to fill.
func (g *Graph) Snapshot() common.Snapshot {
	g.mu.RLock()
	defer g.mu.RUnlock()

	snap := common.Snapshot{
		Version: common.SnapshotVersion,
		Nodes:   make([]common.Node, 0, len(g.order)),
		Edges:   make([]common.Edge, len(g.edges)),
	}
	for _, id := range g.order {
		snap.Nodes = append(snap.Nodes, cloneNode(g.nodes[id]))
	}
	copy(snap.Edges, g.edges)
	return snap
}

// UpsertNode creates the node if it is absent. For an existing node the
// attributes are merged key by key: new keys are added, keys that already
// exist keep their value. Empty values are never stored. The type of an
// existing node is only set when the node is still an untyped placeholder.
func (g *Graph) UpsertNode(id string, typ ontology.EntityType, attrs common.Attributes) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.upsertNode(id, typ, attrs)
}

// UpdateAttributes overwrites the given keys on the node, creating an
// untyped placeholder if the node does not exist yet. Empty values are
// ignored so that a missing source field never clears a known one.
func (g *Graph) UpdateAttributes(id string, attrs common.Attributes) {
	g.mu.Lock()
	defer g.mu.Unlock()

	n := g.ensureNode(id)
	updateAttributes(n, attrs)
}

// InsertEdge appends a directed edge. Missing endpoints are created as
// untyped placeholder nodes. Duplicate edges are kept.
func (g *Graph) InsertEdge(from, to string, relation ontology.RelationType) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.insertEdge(from, to, relation)
}

// Node returns a copy of the node with the given id.
func (g *Graph) Node(id string) (common.Node, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	n, ok := g.nodes[id]
	if !ok {
		return common.Node{}, false
	}
	return cloneNode(n), true
}

// HasNode reports whether a node with the given id exists.
func (g *Graph) HasNode(id string) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, ok := g.nodes[id]
	return ok
}

// NodeIDs returns every node id in first-insertion order.
func (g *Graph) NodeIDs() []string {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]string, len(g.order))
	copy(out, g.order)
	return out
}

// Nodes returns a copy of every node in first-insertion order.
func (g *Graph) Nodes() []common.Node {
	return g.Snapshot().Nodes
}

// Edges returns a copy of every edge in insertion order.
func (g *Graph) Edges() []common.Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]common.Edge, len(g.edges))
	copy(out, g.edges)
	return out
}

// NodeCount returns the number of nodes, placeholders included.
func (g *Graph) NodeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return len(g.nodes)
}

// EdgeCount returns the number of edges, duplicates included.
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return len(g.edges)
}

func (g *Graph) ensureNode(id string) *common.Node {
	if n, ok := g.nodes[id]; ok {
		return n
	}
	n := &common.Node{ID: id}
	g.nodes[id] = n
	g.order = append(g.order, id)
	return n
}

func (g *Graph) upsertNode(id string, typ ontology.EntityType, attrs common.Attributes) {
	n, exists := g.nodes[id]
	if !exists {
		n = g.ensureNode(id)
	}
	mergeType(n, typ)
	mergeAttributes(n, attrs)
}

func (g *Graph) insertEdge(from, to string, relation ontology.RelationType) {
	g.ensureNode(from)
	g.ensureNode(to)

	idx := len(g.edges)
	g.edges = append(g.edges, common.Edge{From: from, To: to, Relation: relation})

	g.adjacency[from] = append(g.adjacency[from], idx)
	if to != from {
		g.adjacency[to] = append(g.adjacency[to], idx)
	}
}

func cloneNode(n *common.Node) common.Node {
	return common.Node{
		ID:         n.ID,
		Type:       n.Type,
		Attributes: n.Attributes.Clone(),
	}
}
