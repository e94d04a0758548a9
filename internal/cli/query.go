package cli

import (
	"cmp"
	"context"
	"slices"

	"github.com/cperrin88/archdb/pkg/desc"
	"github.com/cperrin88/archdb/pkg/filter"
	"github.com/spf13/cobra"
)

// addRepoFlag registers the repository selection flag shared by the query
// commands.
func addRepoFlag(cmd *cobra.Command, repos *[]string) {
	cmd.Flags().StringSliceVarP(repos, "repo", "r", nil,
		"repository to load as NAME, NAME:PATH or PATH (repeatable, default: configured repositories)")
}

func sortRows(rows []packageRow) {
	slices.SortFunc(rows, func(a, b packageRow) int {
		return cmp.Or(cmp.Compare(a.Name, b.Name), cmp.Compare(a.Repository, b.Repository))
	})
}

// compileFilter compiles a --where expression. An empty expression matches
// everything and yields a nil filter.
func compileFilter(expr string) (*filter.Filter, error) {
	if expr == "" {
		return nil, nil
	}
	return filter.Compile(expr)
}

func matches(ctx context.Context, f *filter.Filter, q desc.Querier, repository string) (bool, error) {
	if f == nil {
		return true, nil
	}
	return f.MatchQuerier(ctx, q, repository)
}
