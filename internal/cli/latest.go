package cli

import (
	"github.com/cperrin88/archdb/pkg/errutils"
	"github.com/spf13/cobra"
)

// NewLatestCmd creates the latest command.
func NewLatestCmd() *cobra.Command {
	var repos []string

	cmd := &cobra.Command{
		Use:   "latest [NAME...]",
		Short: "Show the newest version of packages",
		Long: `Resolve every package name to the repository holding its greatest
version. Equal versions resolve to the repository whose name sorts first.

Without arguments every package is listed.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLatest(cmd, repos, args)
		},
	}

	addRepoFlag(cmd, &repos)

	return cmd
}

func runLatest(cmd *cobra.Command, repos, names []string) error {
	cfg, db, err := loadDatabase(cmd.Context(), repos)
	if err != nil {
		return err
	}

	latest := db.Latest()
	var rows []packageRow
	if len(names) == 0 {
		for _, entry := range latest.Entries() {
			rows = append(rows, newPackageRow(entry.Main().Main(), entry.Attachment()))
		}
		sortRows(rows)
	} else {
		for _, name := range names {
			entry, ok := latest.Get(name)
			if !ok {
				return errutils.ErrPackageNotFoundWithName(name)
			}
			rows = append(rows, newPackageRow(entry.Main().Main(), entry.Attachment()))
		}
	}

	return newPrinter(cmd.OutOrStdout(), cfg.Settings.OutputFormat).rows(rows)
}
