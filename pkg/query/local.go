package query

import (
	"context"
	"strings"

	"github.com/OFFIS-RIT/carekg/pkg/common"
	"github.com/OFFIS-RIT/carekg/pkg/logger"
)

// Context is the result of a retrieval.
type Context struct {
	Query string
	Seeds []string
	Text  string
}

// Found reports whether at least one entity matched the query.
func (c Context) Found() bool {
	return len(c.Seeds) > 0
}

// String returns the context block, or NoEntitiesFound when nothing
// matched.
func (c Context) String() string {
	if !c.Found() {
		return NoEntitiesFound
	}
	return c.Text
}

// GetContext resolves the entities mentioned in query and renders the
// neighborhood of each within hops undirected steps. hops < 1 is treated
// as 1.
//
// Every node is described at most once per call, the first time one of its
// edges is printed. Edges are printed every time they occur in a seed's
// neighborhood.
func (c *LocalQueryClient) GetContext(ctx context.Context, query string, hops int) (Context, error) {
	if hops < 1 {
		hops = 1
	}

	result := Context{
		Query: query,
		Seeds: c.ResolveEntities(query),
	}
	if !result.Found() {
		logger.Debug("[Query] No entities matched", "query", query)
		return result, nil
	}

	var b strings.Builder
	rendered := make(map[string]struct{})
	var renderedOrder []string
	edgeCount := 0

	renderNode := func(id string) {
		if _, ok := rendered[id]; ok {
			return
		}
		rendered[id] = struct{}{}
		renderedOrder = append(renderedOrder, id)

		n, ok := c.graph.Node(id)
		if !ok {
			return
		}
		if props := formatAttributes(n.Attributes); props != "" {
			b.WriteString("Entity: ")
			b.WriteString(id)
			b.WriteString(" (")
			b.WriteString(props)
			b.WriteString(")\n")
		}
	}

	for _, seed := range result.Seeds {
		if err := ctx.Err(); err != nil {
			return Context{}, err
		}

		b.WriteString("\n--- Context for '")
		b.WriteString(seed)
		b.WriteString("' ---\n")

		sub := c.graph.Neighborhood(seed, hops)
		for _, e := range sub.Edges {
			renderNode(e.From)
			renderNode(e.To)
			writeEdge(&b, e)
			edgeCount++
		}
	}

	RecordRenderedNodes(c.trace, renderedOrder...)
	RecordEmittedEdges(c.trace, edgeCount)
	logger.Debug("[Query] Built context",
		"seeds", len(result.Seeds),
		"nodes", len(renderedOrder),
		"edges", edgeCount,
	)

	result.Text = b.String()
	return result, nil
}

func formatAttributes(attrs common.Attributes) string {
	parts := make([]string, 0, len(attrs))
	for _, attr := range attrs {
		if attr.Key == "type" || attr.Value == "" {
			continue
		}
		parts = append(parts, attr.Key+"="+attr.Value)
	}
	return strings.Join(parts, ", ")
}

func writeEdge(b *strings.Builder, e common.Edge) {
	b.WriteString("(")
	b.WriteString(e.From)
	b.WriteString(") --[")
	b.WriteString(string(e.Relation))
	b.WriteString("]--> (")
	b.WriteString(e.To)
	b.WriteString(")\n")
}
