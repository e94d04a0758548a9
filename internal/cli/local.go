package cli

import (
	"github.com/cperrin88/archdb/pkg/errutils"
	"github.com/cperrin88/archdb/pkg/loader"
	"github.com/spf13/cobra"
)

// NewLocalCmd creates the local command.
func NewLocalCmd() *cobra.Command {
	var (
		path     string
		where    string
		provides string
	)

	cmd := &cobra.Command{
		Use:   "local [NAME]",
		Short: "Query the local package database",
		Long: `Query the database of installed packages (by default
/var/lib/pacman/local).

With NAME the package is shown in detail; otherwise installed packages are
listed, optionally filtered by --where or --provides.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := ""
			if len(args) == 1 {
				name = args[0]
			}
			return runLocal(cmd, path, name, where, provides)
		},
	}

	cmd.Flags().StringVar(&path, "path", "", "Local database directory (default: settings.local_db_path)")
	cmd.Flags().StringVarP(&where, "where", "w", "", "Tengo filter expression")
	cmd.Flags().StringVar(&provides, "provides", "", "Only list packages that provide this name")

	return cmd
}

func runLocal(cmd *cobra.Command, path, name, where, provides string) error {
	f, err := compileFilter(where)
	if err != nil {
		return err
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if path == "" {
		path = cfg.Settings.LocalDBPath
	}

	ctx := cmd.Context()
	db, err := loader.LoadLocal(ctx, path, loader.OptionsFromConfig(cfg))
	if err != nil {
		return err
	}

	p := newPrinter(cmd.OutOrStdout(), cfg.Settings.OutputFormat)
	if name != "" {
		q, ok := db.Get(name)
		if !ok {
			return errutils.ErrPackageNotFoundWithName(name)
		}
		return p.details(newPackageRow(q, ""))
	}

	queriers := db.Queriers()
	if provides != "" {
		queriers = db.AlternativeProviders(provides)
	}

	var rows []packageRow
	for q := range queriers {
		ok, err := matches(ctx, f, q, "")
		if err != nil {
			return err
		}
		if ok {
			rows = append(rows, newPackageRow(q, ""))
		}
	}
	sortRows(rows)

	return p.rows(rows)
}
