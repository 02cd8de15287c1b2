package main

import (
	"fmt"
	"strings"

	jsoniter "github.com/json-iterator/go"
	"github.com/spf13/cobra"

	"github.com/OFFIS-RIT/carekg/internal/storage"
	"github.com/OFFIS-RIT/carekg/internal/util"
	"github.com/OFFIS-RIT/carekg/pkg/graph"
	"github.com/OFFIS-RIT/carekg/pkg/query"
)

func newQueryCmd(c *cli) *cobra.Command {
	var (
		hops  int
		trace bool
		key   string
	)

	cmd := &cobra.Command{
		Use:   "query [question]",
		Short: "Print the graph context for a question",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if key == "" {
				key = c.cfg.GraphKey
			}
			if hops <= 0 {
				hops = c.cfg.DefaultHops
			}

			q := util.SanitizeText(strings.Join(args, " "))
			if q == "" {
				return fmt.Errorf("question is empty")
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

			var opts []query.LocalQueryClientOption
			qt := query.NewQueryTrace()
			if trace {
				opts = append(opts, query.WithTracer(qt))
			}
			client, err := query.NewLocalQueryClient(query.NewLocalQueryClientParams{
				Graph:    g,
				MaxSeeds: c.cfg.MaxSeeds,
			}, opts...)
			if err != nil {
				return err
			}

			result, err := client.GetContext(ctx, q, hops)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, result.String())
			if trace {
				data, err := jsoniter.MarshalIndent(qt.Snapshot(), "", "  ")
				if err != nil {
					return err
				}
				fmt.Fprintln(out, string(data))
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&hops, "hops", 0, "neighborhood radius (default KG_HOPS)")
	cmd.Flags().BoolVar(&trace, "trace", false, "print the seeds and rendered nodes as JSON")
	cmd.Flags().StringVar(&key, "key", "", "storage key of the graph (default KG_KEY)")
	return cmd
}
