package graph

import (
	"context"
	"fmt"
	"time"

	"github.com/OFFIS-RIT/carekg/pkg/loader"
	"github.com/OFFIS-RIT/carekg/pkg/logger"
)

// BuildGraph creates a new graph and applies every record of batches to it,
// insurance first, then medical, then care. Records without their primary
// key are skipped and counted in the returned stats.
func (c *GraphClient) BuildGraph(ctx context.Context, batches loader.Batches) (*Graph, BuildStats, error) {
	start := time.Now()

	buildID, err := c.newID()
	if err != nil {
		return nil, BuildStats{}, fmt.Errorf("failed to generate build id: %w", err)
	}

	stats := BuildStats{
		BuildID: buildID,
		Records: batches.Len(),
	}
	logger.Info("[Graph] Building graph",
		"build_id", buildID,
		"insurance", len(batches.Insurance),
		"medical", len(batches.Medical),
		"care", len(batches.Care),
	)

	g := NewGraph()

	for _, rec := range batches.Insurance {
		if !applyInsurance(g, rec) {
			stats.Skipped++
		}
	}
	if err := ctx.Err(); err != nil {
		return nil, stats, err
	}

	for _, rec := range batches.Medical {
		if !applyMedical(g, rec) {
			stats.Skipped++
		}
	}
	if err := ctx.Err(); err != nil {
		return nil, stats, err
	}

	for _, rec := range batches.Care {
		if !applyCare(g, rec) {
			stats.Skipped++
		}
	}
	if err := ctx.Err(); err != nil {
		return nil, stats, err
	}

	stats.Nodes = g.NodeCount()
	stats.Edges = g.EdgeCount()
	stats.Duration = time.Since(start)

	if stats.Skipped > 0 {
		logger.Debug("[Graph] Skipped records without primary key", "build_id", buildID, "skipped", stats.Skipped)
	}
	logger.Info("[Graph] Built graph",
		"build_id", buildID,
		"nodes", stats.Nodes,
		"edges", stats.Edges,
		"duration", stats.Duration,
	)

	return g, stats, nil
}
