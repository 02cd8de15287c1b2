package export

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/OFFIS-RIT/carekg/pkg/common"
	"github.com/OFFIS-RIT/carekg/pkg/ontology"
)

func sampleSnapshot() common.Snapshot {
	return common.Snapshot{
		Nodes: []common.Node{
			{ID: "泰康全能保", Type: ontology.InsuranceProduct, Attributes: common.NewAttributes(
				"age_limit", "18-65岁",
				"special_note", "",
			)},
			{ID: "O'Neil's \\ clinic", Type: ontology.Department},
			{ID: "stub"},
			{ID: "高血压", Type: ontology.Disease, Attributes: common.NewAttributes("care plan", "每日\n监测")},
		},
		Edges: []common.Edge{
			{From: "泰康全能保", To: "高血压", Relation: ontology.CoversDisease},
			{From: "高血压", To: "O'Neil's \\ clinic", Relation: ontology.BelongsTo},
			{From: "泰康全能保", To: "高血压", Relation: ontology.CoversDisease},
		},
	}
}

func TestWriteCypher(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteCypher(&buf, sampleSnapshot()))

	want := "MERGE (n:`InsuranceProduct` {name: '泰康全能保', age_limit: '18-65岁'});\n" +
		"MERGE (n:`Department` {name: 'O\\'Neil\\'s \\\\ clinic'});\n" +
		"MERGE (n:`Thing` {name: 'stub'});\n" +
		"MERGE (n:`Disease` {name: '高血压', `care plan`: '每日\\n监测'});\n" +
		"MATCH (a {name: '泰康全能保'}), (b {name: '高血压'}) MERGE (a)-[:COVERS_DISEASE]->(b);\n" +
		"MATCH (a {name: '高血压'}), (b {name: 'O\\'Neil\\'s \\\\ clinic'}) MERGE (a)-[:BELONGS_TO]->(b);\n" +
		"MATCH (a {name: '泰康全能保'}), (b {name: '高血压'}) MERGE (a)-[:COVERS_DISEASE]->(b);\n"

	assert.Equal(t, want, buf.String())
}

func TestQuoteIdentifier(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"age_limit", "age_limit"},
		{"_x1", "_x1"},
		{"1x", "`1x`"},
		{"care plan", "`care plan`"},
		{"a`b", "`a``b`"},
		{"饮食", "`饮食`"},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, quoteIdentifier(tc.in), tc.in)
	}
}
