package text

import (
	"context"

	"github.com/cperrin88/archdb/pkg/desc"
	"github.com/cperrin88/archdb/pkg/multi"
	"github.com/cperrin88/archdb/pkg/single"
	"golang.org/x/sync/errgroup"
)

// tagged is one text of a MultiCollection with its position.
type tagged struct {
	repository string
	index      int
	text       Text
}

func (m *MultiCollection) flatten() []tagged {
	out := make([]tagged, 0, m.TextCount())
	for repo, c := range m.Groups() {
		for i, t := range c.texts {
			out = append(out, tagged{repository: repo, index: i, text: t})
		}
	}
	return out
}

// parseParallel parses texts on a pool of workers. Results keep the
// position of their source text.
func parseParallel[Q desc.Querier](ctx context.Context, texts []tagged, parse desc.ParseFunc[Q], workers int) ([]Q, error) {
	out := make([]Q, len(texts))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workerCount(workers))
	for i, t := range texts {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			q, err := parse(string(t.text))
			if err != nil {
				return &ParseError{Index: t.index, Repository: t.repository, Err: err}
			}
			out[i] = q
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}

func singleTexts(c *Collection) []tagged {
	out := make([]tagged, len(c.texts))
	for i, t := range c.texts {
		out[i] = tagged{index: i, text: t}
	}
	return out
}

func buildSingle[Q desc.Querier](c *Collection, parse desc.ParseFunc[Q], newer bool, opts []single.Option) (*single.Database[Q], error) {
	db := single.New[Q](c.Len(), opts...)
	for i, t := range c.texts {
		q, err := parse(string(t))
		if err != nil {
			return nil, &ParseError{Index: i, Err: err}
		}
		if err := insertSingle(db, q, newer); err != nil {
			return nil, &ParseError{Index: i, Err: err}
		}
	}
	return db, nil
}

func insertSingle[Q desc.Querier](db *single.Database[Q], q Q, newer bool) error {
	if newer {
		_, err := db.InsertNewer(q)
		return err
	}
	_, _, err := db.Insert(q)
	return err
}

// ParseDatabase parses every text and inserts it into a single-repository
// database. Later records replace earlier ones with the same name.
func ParseDatabase[Q desc.Querier](c *Collection, parse desc.ParseFunc[Q], opts ...single.Option) (*single.Database[Q], error) {
	return buildSingle(c, parse, false, opts)
}

// ParseNewerDatabase is like ParseDatabase but keeps the newest version of
// every name.
func ParseNewerDatabase[Q desc.Querier](c *Collection, parse desc.ParseFunc[Q], opts ...single.Option) (*single.Database[Q], error) {
	return buildSingle(c, parse, true, opts)
}

// ParseDatabaseParallel parses texts on a pool of workers and then inserts
// the results in collection order, so the outcome matches ParseDatabase.
func ParseDatabaseParallel[Q desc.Querier](ctx context.Context, c *Collection, parse desc.ParseFunc[Q], workers int, opts ...single.Option) (*single.Database[Q], error) {
	qs, err := parseParallel(ctx, singleTexts(c), parse, workers)
	if err != nil {
		return nil, err
	}

	db := single.New[Q](len(qs), opts...)
	for i, q := range qs {
		if _, _, err := db.Insert(q); err != nil {
			return nil, &ParseError{Index: i, Err: err}
		}
	}
	return db, nil
}

func buildMulti[Q desc.Querier](m *MultiCollection, parse desc.ParseFunc[Q], newer bool, opts []multi.Option) (*multi.Database[Q], error) {
	db := multi.New[Q](m.TextCount(), opts...)
	for _, t := range m.flatten() {
		q, err := parse(string(t.text))
		if err != nil {
			return nil, &ParseError{Index: t.index, Repository: t.repository, Err: err}
		}
		if err := insertMulti(db, t.repository, q, newer); err != nil {
			return nil, &ParseError{Index: t.index, Repository: t.repository, Err: err}
		}
	}
	return db, nil
}

func insertMulti[Q desc.Querier](db *multi.Database[Q], repository string, q Q, newer bool) error {
	if newer {
		_, err := db.InsertNewer(repository, q)
		return err
	}
	_, _, err := db.Insert(repository, q)
	return err
}

// ParseMultiDatabase parses every text and inserts it under its repository.
func ParseMultiDatabase[Q desc.Querier](m *MultiCollection, parse desc.ParseFunc[Q], opts ...multi.Option) (*multi.Database[Q], error) {
	return buildMulti(m, parse, false, opts)
}

// ParseNewerMultiDatabase is like ParseMultiDatabase but keeps the newest
// version of every (name, repository) pair.
func ParseNewerMultiDatabase[Q desc.Querier](m *MultiCollection, parse desc.ParseFunc[Q], opts ...multi.Option) (*multi.Database[Q], error) {
	return buildMulti(m, parse, true, opts)
}

// ParseMultiDatabaseParallel parses texts on a pool of workers and then
// inserts the results in collection order, so the outcome matches
// ParseMultiDatabase.
func ParseMultiDatabaseParallel[Q desc.Querier](ctx context.Context, m *MultiCollection, parse desc.ParseFunc[Q], workers int, opts ...multi.Option) (*multi.Database[Q], error) {
	texts := m.flatten()
	qs, err := parseParallel(ctx, texts, parse, workers)
	if err != nil {
		return nil, err
	}

	db := multi.New[Q](len(qs), opts...)
	for i, q := range qs {
		if _, _, err := db.Insert(texts[i].repository, q); err != nil {
			return nil, &ParseError{Index: texts[i].index, Repository: texts[i].repository, Err: err}
		}
	}
	return db, nil
}
