package text

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// readDesc reads <dir>/desc. A missing file is reported as ok == false
// without an error.
func readDesc(dir string) (Text, bool, error) {
	file := filepath.Join(dir, descFileName)
	content, err := os.ReadFile(file)
	if errors.Is(err, fs.ErrNotExist) {
		return "", false, nil
	}
	if err != nil {
		return "", false, &LocalFileError{Path: file, Err: err}
	}
	return Text(content), true, nil
}

// packageDirs lists the per-package directories of a local database.
func packageDirs(root string) ([]string, error) {
	entries, err := os.ReadDir(root)
	if err != nil {
		return nil, &LocalDirError{Path: root, Err: err}
	}

	dirs := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() {
			dirs = append(dirs, filepath.Join(root, entry.Name()))
		}
	}
	return dirs, nil
}

// ExtendFromLocalDB appends the desc file of every package directory under
// root, in directory listing order. Package directories without a desc
// file are skipped.
func (c *Collection) ExtendFromLocalDB(root string) error {
	dirs, err := packageDirs(root)
	if err != nil {
		return err
	}

	for _, dir := range dirs {
		t, ok, err := readDesc(dir)
		if err != nil {
			return err
		}
		if ok {
			c.Insert(t)
		}
	}
	return nil
}

// ExtendFromLocalDBParallel is like ExtendFromLocalDB but reads the desc
// files on a pool of workers. Nothing is appended unless every read
// succeeds. A workers value below 1 uses GOMAXPROCS.
func (c *Collection) ExtendFromLocalDBParallel(ctx context.Context, root string, workers int) error {
	dirs, err := packageDirs(root)
	if err != nil {
		return err
	}

	texts := make([]Text, len(dirs))
	found := make([]bool, len(dirs))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workerCount(workers))
	for i, dir := range dirs {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			t, ok, err := readDesc(dir)
			if err != nil {
				return err
			}
			texts[i], found[i] = t, ok
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	for i, t := range texts {
		if found[i] {
			c.Insert(t)
		}
	}
	return nil
}

// FromLocalDB builds a collection from a local database directory.
func FromLocalDB(root string) (*Collection, error) {
	c := NewCollection(0)
	if err := c.ExtendFromLocalDB(root); err != nil {
		return nil, err
	}
	return c, nil
}

// FromLocalDBParallel builds a collection from a local database directory
// using a pool of workers.
func FromLocalDBParallel(ctx context.Context, root string, workers int) (*Collection, error) {
	c := NewCollection(0)
	if err := c.ExtendFromLocalDBParallel(ctx, root, workers); err != nil {
		return nil, err
	}
	return c, nil
}

func workerCount(workers int) int {
	if workers < 1 {
		return runtime.GOMAXPROCS(0)
	}
	return workers
}
