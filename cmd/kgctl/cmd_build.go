package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/OFFIS-RIT/carekg/internal/storage"
	"github.com/OFFIS-RIT/carekg/pkg/export"
	"github.com/OFFIS-RIT/carekg/pkg/graph"
	"github.com/OFFIS-RIT/carekg/pkg/loader"
)

func newBuildCmd(c *cli) *cobra.Command {
	var (
		cypherPath string
		syncNeo4j  bool
		key        string
	)

	cmd := &cobra.Command{
		Use:   "build",
		Short: "Load the source files, build the graph and persist it",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if key == "" {
				key = c.cfg.GraphKey
			}

			src, err := storage.SourceLoader(ctx, c.cfg)
			if err != nil {
				return err
			}
			graphStorage, closeStorage, err := storage.OpenGraphStorage(ctx, c.cfg)
			if err != nil {
				return err
			}
			defer closeStorage()

			client, err := graph.NewGraphClient(graph.NewGraphClientParams{
				ParallelFiles: c.cfg.ParallelFiles,
			})
			if err != nil {
				return err
			}

			batches, err := loader.LoadBatches(ctx, storage.SourceFiles(c.cfg, src), c.cfg.ParallelFiles)
			if err != nil {
				return err
			}
			g, stats, err := client.ProcessGraph(ctx, batches, key, graphStorage)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "build %s: %d records (%d skipped), %d nodes, %d edges in %s\n",
				stats.BuildID, stats.Records, stats.Skipped, stats.Nodes, stats.Edges, stats.Duration)

			if cypherPath != "" {
				if err := writeCypherFile(cypherPath, g); err != nil {
					return err
				}
				fmt.Fprintf(out, "cypher written to %s\n", cypherPath)
			}

			if syncNeo4j {
				syncStats, err := syncGraph(cmd, c, g)
				if err != nil {
					return err
				}
				fmt.Fprintf(out, "neo4j: %d nodes, %d edges in %d statements\n",
					syncStats.Nodes, syncStats.Edges, syncStats.Statements)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&cypherPath, "cypher", "", "also write the graph as Cypher statements to this file")
	cmd.Flags().BoolVar(&syncNeo4j, "neo4j", false, "also sync the graph to the Neo4j database at NEO4J_URI")
	cmd.Flags().StringVar(&key, "key", "", "storage key of the graph (default KG_KEY)")
	return cmd
}

func writeCypherFile(path string, g *graph.Graph) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create cypher file: %w", err)
	}
	if err := export.WriteCypher(f, g.Snapshot()); err != nil {
		f.Close()
		return fmt.Errorf("write cypher file: %w", err)
	}
	return f.Close()
}

func syncGraph(cmd *cobra.Command, c *cli, g *graph.Graph) (export.SyncStats, error) {
	ctx := cmd.Context()
	syncer, err := export.NewNeo4jSyncer(ctx, export.NewNeo4jSyncerParams{
		URI:        c.cfg.Neo4j.URI,
		User:       c.cfg.Neo4j.User,
		Password:   c.cfg.Neo4j.Password,
		Database:   c.cfg.Neo4j.Database,
		BatchSize:  c.cfg.Neo4j.BatchSize,
		MaxRetries: c.cfg.Neo4j.MaxRetries,
		RetryDelay: c.cfg.Neo4j.RetryDelay,
	})
	if err != nil {
		return export.SyncStats{}, err
	}
	defer syncer.Close(ctx)

	return syncer.Sync(ctx, g.Snapshot())
}
