package export

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingExecutor struct {
	statements []Statement
	err        error
}

func (r *recordingExecutor) ExecuteWrite(ctx context.Context, statements []Statement) error {
	r.statements = append(r.statements, statements...)
	return r.err
}

func TestBuildStatements(t *testing.T) {
	statements := BuildStatements(sampleSnapshot(), 1)

	// constraint, 4 node labels with one row each, COVERS_DISEASE in two
	// batches, BELONGS_TO in one
	require.Len(t, statements, 1+4+2+1)

	assert.Contains(t, statements[0].Cypher, "CREATE CONSTRAINT")
	assert.Empty(t, statements[0].Params)

	assert.Contains(t, statements[1].Cypher, "SET n:`InsuranceProduct`")
	rows := statements[1].Params["rows"].([]map[string]any)
	require.Len(t, rows, 1)
	assert.Equal(t, "泰康全能保", rows[0]["name"])
	assert.Equal(t, map[string]any{"age_limit": "18-65岁"}, rows[0]["props"])

	assert.Contains(t, statements[4].Cypher, "SET n:`Thing`")
	assert.Contains(t, statements[5].Cypher, "MERGE (a)-[:`COVERS_DISEASE`]->(b)")
	assert.Contains(t, statements[7].Cypher, "MERGE (a)-[:`BELONGS_TO`]->(b)")
}

func TestBuildStatementsDefaultBatch(t *testing.T) {
	statements := BuildStatements(sampleSnapshot(), 0)
	assert.Len(t, statements, 1+4+2)

	edges := 0
	for _, st := range statements {
		if strings.Contains(st.Cypher, "MATCH (a:Entity") {
			edges += len(st.Params["rows"].([]map[string]any))
		}
	}
	assert.Equal(t, 3, edges)
}

func TestNeo4jSyncerSync(t *testing.T) {
	exec := &recordingExecutor{}
	s := NewNeo4jSyncerWithExecutor(exec, 100)

	stats, err := s.Sync(context.Background(), sampleSnapshot())
	require.NoError(t, err)
	assert.Equal(t, SyncStats{Nodes: 4, Edges: 3, Statements: 7}, stats)
	assert.Len(t, exec.statements, 7)
	assert.NoError(t, s.Close(context.Background()))

	exec.err = errors.New("connection reset")
	_, err = s.Sync(context.Background(), sampleSnapshot())
	assert.ErrorContains(t, err, "connection reset")
}

func TestNewNeo4jSyncerRequiresURI(t *testing.T) {
	_, err := NewNeo4jSyncer(context.Background(), NewNeo4jSyncerParams{})
	assert.Error(t, err)
}

func TestChunkRange(t *testing.T) {
	var got [][2]int
	err := chunkRange(5, 2, func(start, end int) error {
		got = append(got, [2]int{start, end})
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, [][2]int{{0, 2}, {2, 4}, {4, 5}}, got)
	assert.NoError(t, chunkRange(0, 2, func(int, int) error { return errors.New("unreachable") }))
}
