package cli

import (
	"github.com/spf13/cobra"
)

// NewProvidersCmd creates the providers command.
func NewProvidersCmd() *cobra.Command {
	var (
		repos       []string
		excludeSelf bool
	)

	cmd := &cobra.Command{
		Use:   "providers TARGET",
		Short: "List packages that provide TARGET",
		Long: `List every package, in every repository, whose provides list names
TARGET. Version constraints in provides entries are ignored.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runProviders(cmd, repos, args[0], excludeSelf)
		},
	}

	addRepoFlag(cmd, &repos)
	cmd.Flags().BoolVar(&excludeSelf, "exclude-self", false, "Skip packages named TARGET")

	return cmd
}

func runProviders(cmd *cobra.Command, repos []string, target string, excludeSelf bool) error {
	cfg, db, err := loadDatabase(cmd.Context(), repos)
	if err != nil {
		return err
	}

	providers := db.AlternativeProviders(target)
	if excludeSelf {
		providers = db.AlternativeProvidersExcludingSelf(target)
	}

	var rows []packageRow
	for repo, entry := range providers.All() {
		rows = append(rows, newPackageRow(entry.Querier, repo))
	}
	sortRows(rows)

	return newPrinter(cmd.OutOrStdout(), cfg.Settings.OutputFormat).rows(rows)
}
