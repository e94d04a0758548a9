package loader

import (
	"context"
	"os"
	"runtime"

	"github.com/cperrin88/archdb/internal/logger"
	"github.com/cperrin88/archdb/pkg/config"
	"github.com/cperrin88/archdb/pkg/desc"
	"github.com/cperrin88/archdb/pkg/errutils"
	"github.com/cperrin88/archdb/pkg/fsutil"
	"github.com/cperrin88/archdb/pkg/multi"
	"github.com/cperrin88/archdb/pkg/single"
	"github.com/cperrin88/archdb/pkg/text"
	"github.com/cperrin88/archdb/pkg/version"
	"golang.org/x/sync/errgroup"
)

// Options control how sources are read and parsed.
type Options struct {
	Parallel bool
	Workers  int
	Scheme   version.Scheme
	Querier  string
}

// OptionsFromConfig reads the loading settings of cfg.
func OptionsFromConfig(cfg *config.Config) Options {
	return Options{
		Parallel: cfg.Settings.Parallel,
		Workers:  cfg.Settings.Workers,
		Scheme:   cfg.Scheme(),
		Querier:  cfg.Settings.Querier,
	}
}

// readLimit is the number of sources read at once.
func (o Options) readLimit() int {
	switch {
	case !o.Parallel:
		return 1
	case o.Workers < 1:
		return runtime.GOMAXPROCS(0)
	default:
		return o.Workers
	}
}

// Parser returns the parse function of a querier strategy. Both strategies
// produce desc.Querier values so callers can pick one at run time.
func Parser(strategy string) (desc.ParseFunc[desc.Querier], error) {
	switch strategy {
	case "", config.QuerierEager:
		return func(s string) (desc.Querier, error) {
			q, err := desc.ParseEager(s)
			if err != nil {
				return nil, err
			}
			return q, nil
		}, nil
	case config.QuerierMemo:
		return func(s string) (desc.Querier, error) {
			return desc.NewMemo(s), nil
		}, nil
	default:
		return nil, errutils.ErrInvalidQuerierWithDetails(strategy, []string{config.QuerierEager, config.QuerierMemo})
	}
}

// ReadSources reads every source into one multi-collection. Files are read
// concurrently; groups are appended in source order.
func ReadSources(ctx context.Context, sources []Source, opts Options) (*text.MultiCollection, error) {
	if len(sources) == 0 {
		return nil, errutils.ErrNoRepositories
	}

	collections := make([]*text.Collection, len(sources))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(opts.readLimit())
	for i, src := range sources {
		g.Go(func() error {
			c, err := readSource(ctx, src, opts)
			if err != nil {
				return errutils.Wrapf(err, "repository %s", src.Repository)
			}
			logger.Debug("read repository", logger.Fields{
				"repository": src.Repository,
				"path":       src.Path,
				"records":    c.Len(),
			})
			collections[i] = c
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	m := text.NewMultiCollection(len(sources))
	for i, src := range sources {
		m.Insert(src.Repository, collections[i])
	}
	return m, nil
}

func readSource(ctx context.Context, src Source, opts Options) (*text.Collection, error) {
	if fsutil.IsDir(src.Path) {
		if opts.Parallel {
			return text.FromLocalDBParallel(ctx, src.Path, opts.Workers)
		}
		return text.FromLocalDB(src.Path)
	}

	data, err := os.ReadFile(src.Path)
	if err != nil {
		return nil, err
	}
	return text.FromArchive(ctx, data)
}

// LoadMulti reads and parses sources into a multi-repository database.
func LoadMulti(ctx context.Context, sources []Source, opts Options) (*multi.Database[desc.Querier], error) {
	parse, err := Parser(opts.Querier)
	if err != nil {
		return nil, err
	}

	m, err := ReadSources(ctx, sources, opts)
	if err != nil {
		return nil, err
	}

	var db *multi.Database[desc.Querier]
	if opts.Parallel {
		db, err = text.ParseMultiDatabaseParallel(ctx, m, parse, opts.Workers, multi.WithScheme(opts.Scheme))
	} else {
		db, err = text.ParseMultiDatabase(m, parse, multi.WithScheme(opts.Scheme))
	}
	if err != nil {
		return nil, err
	}

	logger.Info("loaded repositories", logger.Fields{
		"repositories": len(sources),
		"records":      m.TextCount(),
		"packages":     db.Len(),
	})
	return db, nil
}

// LoadLocal reads and parses a local pacman database directory.
func LoadLocal(ctx context.Context, path string, opts Options) (*single.Database[desc.Querier], error) {
	parse, err := Parser(opts.Querier)
	if err != nil {
		return nil, err
	}

	var c *text.Collection
	if opts.Parallel {
		c, err = text.FromLocalDBParallel(ctx, path, opts.Workers)
	} else {
		c, err = text.FromLocalDB(path)
	}
	if err != nil {
		return nil, err
	}

	var db *single.Database[desc.Querier]
	if opts.Parallel {
		db, err = text.ParseDatabaseParallel(ctx, c, parse, opts.Workers, single.WithScheme(opts.Scheme))
	} else {
		db, err = text.ParseDatabase(c, parse, single.WithScheme(opts.Scheme))
	}
	if err != nil {
		return nil, err
	}

	logger.Info("loaded local database", logger.Fields{"path": path, "packages": db.Len()})
	return db, nil
}
