package common

import (
	"time"

	"github.com/OFFIS-RIT/carekg/pkg/ontology"
)

// SnapshotVersion is the current layout version of a persisted Snapshot.
const SnapshotVersion = 1

// Snapshot is the full enumeration of a knowledge graph. It is the payload
// written by persistence backends and the read-only traversal surface used by
// exporters.
//
// A snapshot contains:
//   - Nodes: every node in first-insertion order, placeholders included
//   - Edges: every directed edge in insertion order, duplicates included
type Snapshot struct {
	Version   int       `json:"version"`
	ID        string    `json:"id"`
	CreatedAt time.Time `json:"created_at"`
	Nodes     []Node    `json:"nodes"`
	Edges     []Edge    `json:"edges"`
}

// Node represents a typed entity in the graph. The ID doubles as the display
// name. A node created implicitly by an edge insertion has an empty Type
// until a later upsert fills it in.
type Node struct {
	ID         string              `json:"id"`
	Type       ontology.EntityType `json:"type,omitempty"`
	Attributes Attributes          `json:"attributes,omitempty"`
}

// Placeholder reports whether the node was only ever referenced by an edge.
func (n Node) Placeholder() bool {
	return n.Type == ""
}

// Edge represents a directed, typed relation between two node ids.
type Edge struct {
	From     string                `json:"from"`
	To       string                `json:"to"`
	Relation ontology.RelationType `json:"relation"`
}

// Attribute is a single key/value pair of a node.
type Attribute struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

// Attributes is an insertion-ordered attribute map. Enumeration order is the
// order in which keys were first set.
type Attributes []Attribute

// NewAttributes builds Attributes from alternating key/value pairs. A trailing
// key without a value is ignored.
func NewAttributes(kv ...string) Attributes {
	attrs := make(Attributes, 0, len(kv)/2)
	for i := 0; i+1 < len(kv); i += 2 {
		attrs.Set(kv[i], kv[i+1])
	}
	return attrs
}

// Get returns the value stored under key.
func (a Attributes) Get(key string) (string, bool) {
	for _, attr := range a {
		if attr.Key == key {
			return attr.Value, true
		}
	}
	return "", false
}

// Set stores value under key, overwriting an existing value in place.
func (a *Attributes) Set(key, value string) {
	for i := range *a {
		if (*a)[i].Key == key {
			(*a)[i].Value = value
			return
		}
	}
	*a = append(*a, Attribute{Key: key, Value: value})
}

// SetIfAbsent stores value under key only if the key is not present yet.
// It reports whether the value was stored.
func (a *Attributes) SetIfAbsent(key, value string) bool {
	if _, ok := a.Get(key); ok {
		return false
	}
	*a = append(*a, Attribute{Key: key, Value: value})
	return true
}

// Clone returns a copy that shares no backing array with a.
func (a Attributes) Clone() Attributes {
	if a == nil {
		return nil
	}
	out := make(Attributes, len(a))
	copy(out, a)
	return out
}

// Len returns the number of keys.
func (a Attributes) Len() int {
	return len(a)
}
