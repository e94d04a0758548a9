package text

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/cperrin88/archdb/test/testutil"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtendFromLocalDB(t *testing.T) {
	root := testutil.WriteDBTree(t, testutil.BashRecords())
	// a package directory without desc and a stray file are both skipped
	require.NoError(t, os.Mkdir(filepath.Join(root, "broken-1.0-1"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(root, "ALPM_DB_VERSION"), []byte("9\n"), 0o644))

	t.Run("sequential", func(t *testing.T) {
		c, err := FromLocalDB(root)
		require.NoError(t, err)
		assert.Equal(t, recordTexts(testutil.BashRecords()), sortedTexts(c))
	})

	t.Run("parallel", func(t *testing.T) {
		for _, workers := range []int{0, 1, 4} {
			c, err := FromLocalDBParallel(context.Background(), root, workers)
			require.NoError(t, err)
			assert.Equal(t, recordTexts(testutil.BashRecords()), sortedTexts(c))
		}
	})
}

func TestLocalDBSequentialMatchesParallel(t *testing.T) {
	records := make([]testutil.Record, 0)
	for _, repo := range testutil.MultiRepositories() {
		records = append(records, repo.Records...)
	}
	// names collide between repositories; keep one of each directory
	seen := map[string]bool{}
	unique := records[:0]
	for _, r := range records {
		if !seen[r.DirName()] {
			seen[r.DirName()] = true
			unique = append(unique, r)
		}
	}
	root := testutil.WriteDBTree(t, unique)

	seq, err := FromLocalDB(root)
	require.NoError(t, err)
	par, err := FromLocalDBParallel(context.Background(), root, 3)
	require.NoError(t, err)

	if diff := cmp.Diff(sortedTexts(seq), sortedTexts(par)); diff != "" {
		t.Errorf("sequential and parallel scans differ (-seq +par):\n%s", diff)
	}
}

func TestExtendFromLocalDBErrors(t *testing.T) {
	t.Run("missing root", func(t *testing.T) {
		missing := filepath.Join(t.TempDir(), "does-not-exist")

		_, err := FromLocalDB(missing)
		var dirErr *LocalDirError
		require.ErrorAs(t, err, &dirErr)
		assert.Equal(t, missing, dirErr.Path)

		_, err = FromLocalDBParallel(context.Background(), missing, 2)
		require.ErrorAs(t, err, &dirErr)
	})

	t.Run("unreadable desc", func(t *testing.T) {
		root := testutil.WriteDBTree(t, testutil.BashRecords())
		bad := filepath.Join(root, "weird-1.0-1", "desc")
		// a directory named desc exists but cannot be read as a file
		require.NoError(t, os.MkdirAll(bad, 0o755))

		c := NewCollection(0)
		err := c.ExtendFromLocalDB(root)
		var fileErr *LocalFileError
		require.ErrorAs(t, err, &fileErr)
		assert.Equal(t, bad, fileErr.Path)

		par := NewCollection(0)
		err = par.ExtendFromLocalDBParallel(context.Background(), root, 2)
		require.ErrorAs(t, err, &fileErr)
		assert.True(t, par.IsEmpty())
	})

	t.Run("cancelled context", func(t *testing.T) {
		root := testutil.WriteDBTree(t, testutil.BashRecords())
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		c := NewCollection(0)
		err := c.ExtendFromLocalDBParallel(ctx, root, 1)
		assert.ErrorIs(t, err, context.Canceled)
		assert.True(t, c.IsEmpty())
	})
}
