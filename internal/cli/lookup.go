package cli

import (
	"github.com/cperrin88/archdb/internal/logger"
	"github.com/cperrin88/archdb/pkg/errutils"
	"github.com/spf13/cobra"
)

// NewLookupCmd creates the lookup command.
func NewLookupCmd() *cobra.Command {
	var (
		repos   []string
		details bool
	)

	cmd := &cobra.Command{
		Use:   "lookup NAME",
		Short: "Find a package in every repository",
		Long: `Show every repository that contains a package named NAME.

When no package has that name, the packages that provide NAME are shown
instead.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLookup(cmd, repos, args[0], details)
		},
	}

	addRepoFlag(cmd, &repos)
	cmd.Flags().BoolVarP(&details, "details", "d", false, "Show all fields of every match")

	return cmd
}

func runLookup(cmd *cobra.Command, repos []string, name string, details bool) error {
	cfg, db, err := loadDatabase(cmd.Context(), repos)
	if err != nil {
		return err
	}

	var rows []packageRow
	if group, ok := db.Get(name); ok {
		for repo, entry := range group.Entries() {
			rows = append(rows, newPackageRow(entry.Main(), repo))
		}
	} else {
		logger.Debug("no package with that name, searching providers", logger.Fields{"name": name})
		for repo, entry := range db.AlternativeProvidersExcludingSelf(name).All() {
			rows = append(rows, newPackageRow(entry.Querier, repo))
		}
		sortRows(rows)
	}

	if len(rows) == 0 {
		return errutils.ErrPackageNotFoundWithName(name)
	}

	p := newPrinter(cmd.OutOrStdout(), cfg.Settings.OutputFormat)
	if !details {
		return p.rows(rows)
	}
	for _, row := range rows {
		if err := p.details(row); err != nil {
			return err
		}
	}
	return nil
}
