package export

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/OFFIS-RIT/carekg/pkg/common"
	"github.com/OFFIS-RIT/carekg/pkg/ontology"
)

// PlaceholderLabel is the label given to nodes that never received a type.
const PlaceholderLabel = "Thing"

// WriteCypher writes one MERGE statement per node followed by one
// MATCH ... MERGE statement per edge. Nodes are matched by their name
// property, which holds the node id.
func WriteCypher(w io.Writer, snap common.Snapshot) error {
	bw := bufio.NewWriter(w)

	for _, n := range snap.Nodes {
		fmt.Fprintf(bw, "MERGE (n:%s {name: %s", backtick(nodeLabel(n)), quoteString(n.ID))
		for _, attr := range n.Attributes {
			if attr.Key == "type" || attr.Key == "name" || attr.Value == "" {
				continue
			}
			fmt.Fprintf(bw, ", %s: %s", quoteIdentifier(attr.Key), quoteString(attr.Value))
		}
		bw.WriteString("});\n")
	}

	for _, e := range snap.Edges {
		fmt.Fprintf(bw, "MATCH (a {name: %s}), (b {name: %s}) MERGE (a)-[:%s]->(b);\n",
			quoteString(e.From), quoteString(e.To), quoteIdentifier(string(e.Relation)))
	}

	return bw.Flush()
}

func nodeLabel(n common.Node) string {
	if n.Type == "" {
		return PlaceholderLabel
	}
	return string(n.Type)
}

func quoteString(s string) string {
	var b strings.Builder
	b.Grow(len(s) + 2)
	b.WriteByte('\'')
	for _, r := range s {
		switch r {
		case '\\':
			b.WriteString(`\\`)
		case '\'':
			b.WriteString(`\'`)
		case '\n':
			b.WriteString(`\n`)
		case '\r':
			b.WriteString(`\r`)
		default:
			b.WriteRune(r)
		}
	}
	b.WriteByte('\'')
	return b.String()
}

// quoteIdentifier returns s unchanged when it is a plain identifier and
// backtick-quoted otherwise.
func quoteIdentifier(s string) string {
	if isPlainIdentifier(s) {
		return s
	}
	return backtick(s)
}

func backtick(s string) string {
	return "`" + strings.ReplaceAll(s, "`", "``") + "`"
}

func isPlainIdentifier(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c == '_':
		case c >= '0' && c <= '9' && i > 0:
		default:
			return false
		}
	}
	return true
}

// labelsInOrder returns every label used by the exporters in a stable order.
func labelsInOrder() []string {
	types := ontology.EntityTypes()
	out := make([]string, 0, len(types)+1)
	for _, t := range types {
		out = append(out, string(t))
	}
	return append(out, PlaceholderLabel)
}
