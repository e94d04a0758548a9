package cli

import (
	"github.com/spf13/cobra"
)

// NewListCmd creates the list command.
func NewListCmd() *cobra.Command {
	var (
		repos      []string
		where      string
		latestOnly bool
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List packages",
		Long: `List the packages of the selected repositories.

Use --where to filter with a Tengo expression. The variables name, base,
version, description, url, repository, provides and depends are set for
every package, for example:

  archdb list --where 'repository == "extra" && len(provides) > 0'`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runList(cmd, repos, where, latestOnly)
		},
	}

	addRepoFlag(cmd, &repos)
	cmd.Flags().StringVarP(&where, "where", "w", "", "Tengo filter expression")
	cmd.Flags().BoolVar(&latestOnly, "latest", false, "Only show the newest version of every package")

	return cmd
}

func runList(cmd *cobra.Command, repos []string, where string, latestOnly bool) error {
	f, err := compileFilter(where)
	if err != nil {
		return err
	}

	cfg, db, err := loadDatabase(cmd.Context(), repos)
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	var rows []packageRow
	if latestOnly {
		for _, entry := range db.Latest().Entries() {
			q, repo := entry.Main().Main(), entry.Attachment()
			ok, err := matches(ctx, f, q, repo)
			if err != nil {
				return err
			}
			if ok {
				rows = append(rows, newPackageRow(q, repo))
			}
		}
	} else {
		for entry := range db.Entries() {
			ok, err := matches(ctx, f, entry.Querier, entry.Repository)
			if err != nil {
				return err
			}
			if ok {
				rows = append(rows, newPackageRow(entry.Querier, entry.Repository))
			}
		}
	}
	sortRows(rows)

	return newPrinter(cmd.OutOrStdout(), cfg.Settings.OutputFormat).rows(rows)
}
