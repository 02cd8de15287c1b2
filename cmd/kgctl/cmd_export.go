package main

import (
	"fmt"
	"io"
	"os"

	jsoniter "github.com/json-iterator/go"
	"github.com/spf13/cobra"

	"github.com/OFFIS-RIT/carekg/internal/storage"
	"github.com/OFFIS-RIT/carekg/pkg/export"
	"github.com/OFFIS-RIT/carekg/pkg/graph"
)

func newExportCmd(c *cli) *cobra.Command {
	var (
		format    string
		outPath   string
		syncNeo4j bool
		key       string
	)

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export the stored graph as Cypher or JSON, or sync it to Neo4j",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if key == "" {
				key = c.cfg.GraphKey
			}
			if format != "cypher" && format != "json" {
				return fmt.Errorf("unknown format %q", format)
			}

			graphStorage, closeStorage, err := storage.OpenGraphStorage(ctx, c.cfg)
			if err != nil {
				return err
			}
			defer closeStorage()

			g, err := graph.LoadGraph(ctx, graphStorage, key)
			if err != nil {
				return err
			}

			if syncNeo4j {
				stats, err := syncGraph(cmd, c, g)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.ErrOrStderr(), "neo4j: %d nodes, %d edges in %d statements\n",
					stats.Nodes, stats.Edges, stats.Statements)
				return nil
			}

			var w io.Writer = cmd.OutOrStdout()
			if outPath != "" {
				f, err := os.Create(outPath)
				if err != nil {
					return fmt.Errorf("create export file: %w", err)
				}
				defer f.Close()
				w = f
			}

			snap := g.Snapshot()
			if format == "json" {
				enc := jsoniter.ConfigCompatibleWithStandardLibrary.NewEncoder(w)
				enc.SetIndent("", "  ")
				return enc.Encode(snap)
			}
			return export.WriteCypher(w, snap)
		},
	}

	cmd.Flags().StringVar(&format, "format", "cypher", "output format: cypher or json")
	cmd.Flags().StringVarP(&outPath, "out", "o", "", "output file (default stdout)")
	cmd.Flags().BoolVar(&syncNeo4j, "neo4j", false, "sync to the Neo4j database at NEO4J_URI instead of writing a file")
	cmd.Flags().StringVar(&key, "key", "", "storage key of the graph (default KG_KEY)")
	return cmd
}
