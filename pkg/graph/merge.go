package graph

import (
	"github.com/OFFIS-RIT/carekg/pkg/common"
	"github.com/OFFIS-RIT/carekg/pkg/logger"
	"github.com/OFFIS-RIT/carekg/pkg/ontology"
)

// mergeType assigns typ to a placeholder node. A node that already carries a
// different type keeps it; the conflict is logged because it points at a
// name shared by two kinds of entity in the source data.
func mergeType(n *common.Node, typ ontology.EntityType) {
	if typ == "" || n.Type == typ {
		return
	}
	if n.Type == "" {
		n.Type = typ
		return
	}
	logger.Warn("[Graph] Node type conflict, keeping first type",
		"id", n.ID,
		"type", n.Type,
		"ignored_type", typ,
	)
}

// mergeAttributes adds keys the node does not have yet. Existing keys are
// never overwritten. Empty values are not stored, so a later record that
// does carry the field can still fill it.
func mergeAttributes(n *common.Node, attrs common.Attributes) {
	for _, attr := range attrs {
		if attr.Value == "" {
			continue
		}
		n.Attributes.SetIfAbsent(attr.Key, attr.Value)
	}
}

// updateAttributes overwrites the given keys, skipping empty values.
func updateAttributes(n *common.Node, attrs common.Attributes) {
	for _, attr := range attrs {
		if attr.Value == "" {
			continue
		}
		n.Attributes.Set(attr.Key, attr.Value)
	}
}
