package main

import (
	"github.com/spf13/cobra"

	"github.com/OFFIS-RIT/carekg/internal/config"
	"github.com/OFFIS-RIT/carekg/internal/util"
	"github.com/OFFIS-RIT/carekg/pkg/logger"
	"github.com/OFFIS-RIT/carekg/pkg/logger/console"
	"github.com/OFFIS-RIT/carekg/pkg/logger/file"
)

// cli carries state shared by all subcommands of one invocation.
type cli struct {
	cfg     config.Config
	envFile string
	debug   bool
}

func newRootCmd() *cobra.Command {
	c := &cli{}

	rootCmd := &cobra.Command{
		Use:   "kgctl",
		Short: "Build and query the care knowledge graph",
		Long: `kgctl builds the care knowledge graph from insurance, medical and
nursing home source files, persists it and answers context queries
against the stored graph.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return c.setup(cmd)
		},
	}
	rootCmd.PersistentFlags().StringVar(&c.envFile, "env", "", "path to a .env file")
	rootCmd.PersistentFlags().BoolVar(&c.debug, "debug", false, "enable debug logging")

	rootCmd.AddCommand(
		newBuildCmd(c),
		newQueryCmd(c),
		newExportCmd(c),
	)
	return rootCmd
}

func (c *cli) setup(cmd *cobra.Command) error {
	if c.envFile != "" {
		util.LoadEnv(c.envFile)
	} else {
		util.LoadEnv()
	}

	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if c.debug {
		cfg.Debug = true
	}
	c.cfg = cfg

	instances := []logger.LoggerInstance{console.NewConsoleLogger(console.ConsoleLoggerParams{
		Debug:  cfg.Debug,
		Prefix: "kgctl",
		Writer: cmd.ErrOrStderr(),
	})}
	if cfg.LogFile != "" {
		instances = append(instances, file.NewFileLogger(file.FileLoggerParams{
			Path:  cfg.LogFile,
			Debug: cfg.Debug,
		}))
	}
	logger.Init(instances...)
	return nil
}
