package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/cperrin88/archdb/internal/logger"
	"github.com/cperrin88/archdb/pkg/errutils"
	"github.com/cperrin88/archdb/pkg/fsutil"
	"github.com/spf13/cobra"
)

// NewRepoCmd creates the repo command with subcommands.
func NewRepoCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "repo",
		Short: "Manage repositories",
		Long:  "Add, remove, list, enable and disable configured repositories",
	}

	cmd.AddCommand(
		newRepoAddCmd(),
		newRepoRemoveCmd(),
		newRepoListCmd(),
		newRepoEnableCmd(true),
		newRepoEnableCmd(false),
	)

	return cmd
}

func newRepoAddCmd() *cobra.Command {
	var (
		name     string
		disabled bool
	)

	cmd := &cobra.Command{
		Use:   "add NAME|PATH",
		Short: "Add a repository",
		Long: `Add a repository to the configuration.

A bare NAME is read from <sync_dir>/NAME.db. A PATH is stored as given and
the name is derived from the file name unless --name is set.`,
		Args: cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return runRepoAdd(args[0], name, !disabled)
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Repository name (derived from PATH if not provided)")
	cmd.Flags().BoolVar(&disabled, "disabled", false, "Add the repository disabled")

	return cmd
}

func newRepoRemoveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "remove NAME",
		Short: "Remove a repository",
		Long:  "Remove a repository from the configuration by name",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return runRepoRemove(args[0])
		},
	}

	return cmd
}

func newRepoListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List configured repositories",
		Long:  "List all configured repositories with their database paths",
		Args:  cobra.NoArgs,
		RunE:  runRepoList,
	}

	return cmd
}

func newRepoEnableCmd(enable bool) *cobra.Command {
	use, short := "enable NAME", "Enable a repository"
	if !enable {
		use, short = "disable NAME", "Disable a repository"
	}

	cmd := &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return runRepoEnable(args[0], enable)
		},
	}

	return cmd
}

func runRepoAdd(arg, name string, enabled bool) error {
	cfg, err := loadStoredConfig()
	if err != nil {
		return err
	}

	path := arg
	switch {
	case name != "":
	case fsutil.RepositoryName(arg) == arg && !fsutil.IsDir(arg):
		name, path = arg, ""
	default:
		name = fsutil.RepositoryName(arg)
	}

	if err := cfg.AddRepository(name, path, enabled); err != nil {
		return err
	}
	if err := cfg.SaveConfig(getConfigPath()); err != nil {
		return fmt.Errorf("failed to save configuration: %w", err)
	}

	logger.Success("Repository added", logger.Fields{"name": name, "path": cfg.GetRepository(name).ResolvePath(cfg.Settings.SyncDir)})
	return nil
}

func runRepoRemove(name string) error {
	cfg, err := loadStoredConfig()
	if err != nil {
		return err
	}

	if !cfg.RemoveRepository(name) {
		return errutils.ErrRepositoryNotFoundWithName(name)
	}
	if err := cfg.SaveConfig(getConfigPath()); err != nil {
		return fmt.Errorf("failed to save configuration: %w", err)
	}

	logger.Success("Repository removed", logger.Fields{"name": name})
	return nil
}

func runRepoEnable(name string, enable bool) error {
	cfg, err := loadStoredConfig()
	if err != nil {
		return err
	}

	if !cfg.EnableRepository(name, enable) {
		return errutils.ErrRepositoryNotFoundWithName(name)
	}
	if err := cfg.SaveConfig(getConfigPath()); err != nil {
		return fmt.Errorf("failed to save configuration: %w", err)
	}

	logger.Success("Repository updated", logger.Fields{"name": name, "enabled": enable})
	return nil
}

func runRepoList(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if len(cfg.Repositories) == 0 {
		_, _ = fmt.Fprintln(out, "No repositories configured")
		return nil
	}

	tabWriter := tabwriter.NewWriter(out, 0, 0, TabWidth, ' ', 0)
	_, _ = fmt.Fprintln(tabWriter, "NAME\tSTATUS\tPATH")
	for _, repo := range cfg.Repositories {
		status := "enabled"
		if !repo.Enabled {
			status = "disabled"
		}
		_, _ = fmt.Fprintf(tabWriter, "%s\t%s\t%s\n", repo.Name, status, repo.ResolvePath(cfg.Settings.SyncDir))
	}
	return tabWriter.Flush()
}
