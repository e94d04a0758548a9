package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/cperrin88/archdb/internal/cli"
	"github.com/spf13/cobra"
)

var (
	configPath    string
	verbose       bool
	noColor       bool
	outputFormat  string
	querier       string
	versionScheme string
	workers       int
	sequential    bool
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	rootCmd := newRootCmd()
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		cancel()
		os.Exit(1)
	}

	cancel()
}

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "archdb",
		Short: "Query Arch Linux package databases",
		Long: `archdb reads pacman sync databases and the local database and answers:
- lookup and list: package metadata across repositories
- latest: the newest version of every package
- providers: alternative providers of a package or virtual name`,
		SilenceUsage: true,
	}

	// Global flags
	cmd.PersistentFlags().StringVar(&configPath, "config", "", "config file path (default: auto-detect)")
	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	cmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colored output")
	cmd.PersistentFlags().StringVarP(&outputFormat, "output", "o", "", "output format (text, json, yaml)")
	cmd.PersistentFlags().StringVar(&querier, "querier", "", "desc querier strategy (eager, memo)")
	cmd.PersistentFlags().StringVar(&versionScheme, "scheme", "", "version comparison scheme (alpm, semver)")
	cmd.PersistentFlags().IntVar(&workers, "workers", -1, "number of parsing workers (0: one per CPU)")
	cmd.PersistentFlags().BoolVar(&sequential, "sequential", false, "read and parse databases sequentially")

	// Set up CLI pkg variables
	cli.ConfigPath = &configPath
	cli.Verbose = &verbose
	cli.NoColor = &noColor
	cli.OutputFormat = &outputFormat
	cli.Querier = &querier
	cli.VersionScheme = &versionScheme
	cli.Workers = &workers
	cli.Sequential = &sequential

	// Add subcommands
	cmd.AddCommand(
		cli.NewLookupCmd(),
		cli.NewLatestCmd(),
		cli.NewProvidersCmd(),
		cli.NewListCmd(),
		cli.NewLocalCmd(),
		cli.NewConfigCmd(),
		cli.NewRepoCmd(),
		cli.NewVersionCmd(),
	)

	return cmd
}
