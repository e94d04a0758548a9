// Package loader turns repository sources named on the command line or in
// the configuration into parsed databases. It reads sync database files
// concurrently, collects their records into a text.MultiCollection and
// parses them with the configured querier strategy and version scheme.
package loader

import (
	"os"
	"strings"

	"github.com/cperrin88/archdb/pkg/config"
	"github.com/cperrin88/archdb/pkg/errutils"
	"github.com/cperrin88/archdb/pkg/fsutil"
)

// Source is one repository to load: a sync database archive or an
// extracted database directory.
type Source struct {
	Repository string
	Path       string
}

// ParseRepositoryArg interprets a repository argument:
//
//	core:/path/to/core.db   explicit name and path
//	/path/to/extra.db       path, the name is derived from the file name
//	multilib                bare name, resolved to <syncDir>/multilib.db
func ParseRepositoryArg(arg, syncDir string) (Source, error) {
	if arg == "" {
		return Source{}, errutils.ErrRepositoryPathEmpty
	}

	if name, path, ok := strings.Cut(arg, ":"); ok {
		if path == "" {
			return Source{}, errutils.ErrRepositoryPathEmptyWithName(name)
		}
		if err := config.ValidateRepositoryName(name); err != nil {
			return Source{}, err
		}
		return Source{Repository: name, Path: path}, nil
	}

	if looksLikePath(arg) {
		name := fsutil.RepositoryName(arg)
		if err := config.ValidateRepositoryName(name); err != nil {
			return Source{}, err
		}
		return Source{Repository: name, Path: arg}, nil
	}

	if err := config.ValidateRepositoryName(arg); err != nil {
		return Source{}, err
	}
	return Source{Repository: arg, Path: fsutil.SyncDBPath(syncDir, arg)}, nil
}

func looksLikePath(arg string) bool {
	if strings.ContainsRune(arg, os.PathSeparator) || strings.ContainsRune(arg, '/') {
		return true
	}
	if fsutil.RepositoryName(arg) != arg {
		return true
	}
	_, err := os.Stat(arg)
	return err == nil
}

// ParseRepositoryArgs parses every argument and rejects duplicate names.
func ParseRepositoryArgs(args []string, syncDir string) ([]Source, error) {
	sources := make([]Source, 0, len(args))
	seen := make(map[string]bool, len(args))
	for _, arg := range args {
		src, err := ParseRepositoryArg(arg, syncDir)
		if err != nil {
			return nil, err
		}
		if seen[src.Repository] {
			return nil, errutils.ErrRepositoryExistsWithName(src.Repository)
		}
		seen[src.Repository] = true
		sources = append(sources, src)
	}
	return sources, nil
}

// SourcesFromConfig returns the enabled repositories of cfg.
func SourcesFromConfig(cfg *config.Config) []Source {
	repos := cfg.EnabledRepositories()
	sources := make([]Source, 0, len(repos))
	for _, repo := range repos {
		sources = append(sources, Source{
			Repository: repo.Name,
			Path:       repo.ResolvePath(cfg.Settings.SyncDir),
		})
	}
	return sources
}
