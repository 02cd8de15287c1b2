package export

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"

	"github.com/OFFIS-RIT/carekg/internal/util"
	"github.com/OFFIS-RIT/carekg/pkg/common"
	"github.com/OFFIS-RIT/carekg/pkg/logger"
	"github.com/OFFIS-RIT/carekg/pkg/ontology"
)

// EntityLabel is attached to every synced node next to its type label so
// that edges can be matched through a single uniqueness constraint.
const EntityLabel = "Entity"

const defaultBatchSize = 500

// Statement is a single parameterized Cypher statement.
type Statement struct {
	Cypher string
	Params map[string]any
}

// Executor runs a list of statements in one write transaction.
type Executor interface {
	ExecuteWrite(ctx context.Context, statements []Statement) error
}

// SyncStats reports what a Sync call sent to the database.
type SyncStats struct {
	Nodes      int
	Edges      int
	Statements int
}

// Neo4jSyncer mirrors a graph snapshot into Neo4j using batched
// UNWIND/MERGE statements. Syncing is idempotent: nodes are merged by name
// and edges by endpoints and relation type, so duplicate edges of the
// in-memory graph collapse into one relationship.
type Neo4jSyncer struct {
	exec      Executor
	batchSize int
	closeFn   func(context.Context) error
}

// NewNeo4jSyncerParams defines the connection parameters for Neo4j.
type NewNeo4jSyncerParams struct {
	URI        string
	User       string
	Password   string
	Database   string
	BatchSize  int
	MaxRetries int
	RetryDelay time.Duration
}

// NewNeo4jSyncer connects to Neo4j and verifies connectivity, retrying up to
// MaxRetries times.
func NewNeo4jSyncer(ctx context.Context, params NewNeo4jSyncerParams) (*Neo4jSyncer, error) {
	if params.URI == "" {
		return nil, errors.New("neo4j uri is required")
	}
	user := params.User
	if user == "" {
		user = "neo4j"
	}
	delay := params.RetryDelay
	if delay <= 0 {
		delay = 2 * time.Second
	}

	driver, err := neo4j.NewDriverWithContext(params.URI, neo4j.BasicAuth(user, params.Password, ""))
	if err != nil {
		return nil, fmt.Errorf("init neo4j driver: %w", err)
	}

	err = util.RetryErrWithContext(ctx, params.MaxRetries, delay, func(ctx context.Context) error {
		err := driver.VerifyConnectivity(ctx)
		if err != nil {
			logger.Warn("[Neo4j] Connectivity check failed", "uri", params.URI, "err", err)
		}
		return err
	})
	if err != nil {
		_ = driver.Close(ctx)
		return nil, fmt.Errorf("verify neo4j connectivity: %w", err)
	}

	s := NewNeo4jSyncerWithExecutor(&driverExecutor{driver: driver, database: params.Database}, params.BatchSize)
	s.closeFn = driver.Close
	return s, nil
}

// NewNeo4jSyncerWithExecutor creates a syncer on top of an existing
// executor.
func NewNeo4jSyncerWithExecutor(exec Executor, batchSize int) *Neo4jSyncer {
	if batchSize <= 0 {
		batchSize = defaultBatchSize
	}
	return &Neo4jSyncer{exec: exec, batchSize: batchSize}
}

func (s *Neo4jSyncer) Close(ctx context.Context) error {
	if s.closeFn == nil {
		return nil
	}
	return s.closeFn(ctx)
}

// Sync writes every node and edge of snap in a single transaction.
func (s *Neo4jSyncer) Sync(ctx context.Context, snap common.Snapshot) (SyncStats, error) {
	statements := BuildStatements(snap, s.batchSize)
	stats := SyncStats{
		Nodes:      len(snap.Nodes),
		Edges:      len(snap.Edges),
		Statements: len(statements),
	}

	start := time.Now()
	if err := s.exec.ExecuteWrite(ctx, statements); err != nil {
		return stats, fmt.Errorf("neo4j sync: %w", err)
	}

	logger.Info("[Neo4j] Synced graph",
		"nodes", stats.Nodes,
		"edges", stats.Edges,
		"statements", stats.Statements,
		"duration", time.Since(start),
	)
	return stats, nil
}

// BuildStatements groups nodes by label and edges by relation type and
// splits each group into UNWIND batches of at most batchSize rows. The first
// statement creates the uniqueness constraint. Node statements precede edge
// statements.
func BuildStatements(snap common.Snapshot, batchSize int) []Statement {
	if batchSize <= 0 {
		batchSize = defaultBatchSize
	}

	statements := []Statement{{
		Cypher: fmt.Sprintf("CREATE CONSTRAINT entity_name_unique IF NOT EXISTS FOR (n:%s) REQUIRE n.name IS UNIQUE", EntityLabel),
	}}

	nodeRows := make(map[string][]map[string]any)
	for _, n := range snap.Nodes {
		props := make(map[string]any, len(n.Attributes))
		for _, attr := range n.Attributes {
			if attr.Key == "type" || attr.Key == "name" || attr.Value == "" {
				continue
			}
			props[attr.Key] = attr.Value
		}
		label := nodeLabel(n)
		nodeRows[label] = append(nodeRows[label], map[string]any{
			"name":  n.ID,
			"props": props,
		})
	}
	for _, label := range labelsInOrder() {
		rows := nodeRows[label]
		cypher := fmt.Sprintf(`UNWIND $rows AS row
MERGE (n:%s {name: row.name})
SET n:%s, n += row.props`, EntityLabel, backtick(label))
		statements = appendBatches(statements, cypher, rows, batchSize)
	}

	edgeRows := make(map[ontology.RelationType][]map[string]any)
	for _, e := range snap.Edges {
		edgeRows[e.Relation] = append(edgeRows[e.Relation], map[string]any{
			"from": e.From,
			"to":   e.To,
		})
	}
	for _, rel := range ontology.RelationTypes() {
		rows := edgeRows[rel]
		cypher := fmt.Sprintf(`UNWIND $rows AS row
MATCH (a:%s {name: row.from})
MATCH (b:%s {name: row.to})
MERGE (a)-[:%s]->(b)`, EntityLabel, EntityLabel, backtick(string(rel)))
		statements = appendBatches(statements, cypher, rows, batchSize)
	}

	return statements
}

func appendBatches(statements []Statement, cypher string, rows []map[string]any, batchSize int) []Statement {
	_ = chunkRange(len(rows), batchSize, func(start, end int) error {
		statements = append(statements, Statement{
			Cypher: cypher,
			Params: map[string]any{"rows": rows[start:end]},
		})
		return nil
	})
	return statements
}

func chunkRange(total, chunkSize int, fn func(start, end int) error) error {
	if total <= 0 {
		return nil
	}
	if chunkSize <= 0 {
		chunkSize = total
	}
	for start := 0; start < total; start += chunkSize {
		end := min(start+chunkSize, total)
		if err := fn(start, end); err != nil {
			return err
		}
	}
	return nil
}

type driverExecutor struct {
	driver   neo4j.DriverWithContext
	database string
}

func (d *driverExecutor) ExecuteWrite(ctx context.Context, statements []Statement) error {
	session := d.driver.NewSession(ctx, neo4j.SessionConfig{
		AccessMode:   neo4j.AccessModeWrite,
		DatabaseName: d.database,
	})
	defer session.Close(ctx)

	// Schema statements cannot share a transaction with data writes.
	if len(statements) > 0 && len(statements[0].Params) == 0 {
		if res, err := session.Run(ctx, statements[0].Cypher, nil); err != nil {
			logger.Warn("[Neo4j] Schema init failed, continuing", "err", err)
		} else {
			_, _ = res.Consume(ctx)
		}
		statements = statements[1:]
	}

	_, err := session.ExecuteWrite(ctx, func(tx neo4j.ManagedTransaction) (any, error) {
		for _, st := range statements {
			res, err := tx.Run(ctx, st.Cypher, st.Params)
			if err != nil {
				return nil, err
			}
			if _, err := res.Consume(ctx); err != nil {
				return nil, err
			}
		}
		return nil, nil
	})
	return err
}
