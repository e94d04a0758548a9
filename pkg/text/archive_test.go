package text

import (
	"bytes"
	"context"
	"errors"
	"slices"
	"testing"

	"github.com/cperrin88/archdb/test/testutil"
	"github.com/google/go-cmp/cmp"
	"github.com/mholt/archives"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sortedTexts(c *Collection) []string {
	out := make([]string, 0, c.Len())
	for t := range c.All() {
		out = append(out, t.String())
	}
	slices.Sort(out)
	return out
}

func recordTexts(records []testutil.Record) []string {
	out := make([]string, 0, len(records))
	for _, r := range records {
		out = append(out, r.Text())
	}
	slices.Sort(out)
	return out
}

func TestFromArchiveRoundTrip(t *testing.T) {
	for _, compression := range []testutil.Compression{testutil.Plain, testutil.Gzip, testutil.Xz} {
		t.Run(compression.String(), func(t *testing.T) {
			data := testutil.DBArchive(t, testutil.BashRecords(), compression)

			c, err := FromArchive(context.Background(), data)
			require.NoError(t, err)
			assert.Equal(t, 2, c.Len())
			assert.Equal(t, recordTexts(testutil.BashRecords()), sortedTexts(c))
		})
	}
}

func TestFromArchiveFormatAgnostic(t *testing.T) {
	ctx := context.Background()
	dir := testutil.WriteDBTree(t, testutil.BashRecords())

	fromTar, err := FromArchive(ctx, testutil.ArchiveDir(t, dir, testutil.Plain))
	require.NoError(t, err)
	fromTgz, err := FromArchive(ctx, testutil.ArchiveDir(t, dir, testutil.Gzip))
	require.NoError(t, err)
	fromTxz, err := FromArchive(ctx, testutil.ArchiveDir(t, dir, testutil.Xz))
	require.NoError(t, err)

	if diff := cmp.Diff(fromTar.Texts(), fromTgz.Texts()); diff != "" {
		t.Errorf("tar and tar.gz differ (-tar +tgz):\n%s", diff)
	}
	if diff := cmp.Diff(fromTar.Texts(), fromTxz.Texts()); diff != "" {
		t.Errorf("tar and tar.xz differ (-tar +txz):\n%s", diff)
	}
}

func TestExtendFromArchiveAppends(t *testing.T) {
	ctx := context.Background()
	c := NewCollection(0)
	c.Insert(Text(testutil.Glibc.Text()))

	require.NoError(t, c.ExtendFromArchive(ctx, testutil.DBArchive(t, testutil.BashRecords(), testutil.Gzip)))

	assert.Equal(t, 3, c.Len())
	assert.Equal(t, testutil.Glibc.Text(), c.At(0).String())
}

func TestFormatSpecificEntryPoints(t *testing.T) {
	ctx := context.Background()
	dir := testutil.WriteDBTree(t, testutil.BashRecords())
	want := recordTexts(testutil.BashRecords())

	tarColl := NewCollection(0)
	require.NoError(t, tarColl.ExtendFromTar(ctx, bytes.NewReader(testutil.ArchiveDir(t, dir, testutil.Plain))))
	assert.Equal(t, want, sortedTexts(tarColl))

	gzColl := NewCollection(0)
	require.NoError(t, gzColl.ExtendFromGzip(ctx, bytes.NewReader(testutil.ArchiveDir(t, dir, testutil.Gzip))))
	assert.Equal(t, want, sortedTexts(gzColl))

	xzColl := NewCollection(0)
	require.NoError(t, xzColl.ExtendFromXz(ctx, bytes.NewReader(testutil.ArchiveDir(t, dir, testutil.Xz))))
	assert.Equal(t, want, sortedTexts(xzColl))
}

func TestFromArchiveErrors(t *testing.T) {
	ctx := context.Background()

	t.Run("unknown format", func(t *testing.T) {
		_, err := FromArchive(ctx, []byte("this is not an archive of any kind"))
		assert.ErrorIs(t, err, ErrUnknownFormat)
	})

	t.Run("unsupported format", func(t *testing.T) {
		dir := testutil.WriteDBTree(t, testutil.BashRecords())
		files, err := archives.FilesFromDisk(ctx, nil, map[string]string{dir + "/": ""})
		require.NoError(t, err)
		var buf bytes.Buffer
		require.NoError(t, archives.Zip{}.Archive(ctx, &buf, files))

		_, err = FromArchive(ctx, buf.Bytes())
		var unsupported *UnsupportedFormatError
		require.ErrorAs(t, err, &unsupported)
		assert.Equal(t, "application/zip", unsupported.MIME)
	})

	t.Run("compressed data is not a tar archive", func(t *testing.T) {
		for _, compression := range []testutil.Compression{testutil.Gzip, testutil.Xz} {
			data := testutil.Compress(t, []byte("plain text, not a tar archive"), compression)
			_, err := FromArchive(ctx, data)

			var internal *InternalArchiveError
			require.ErrorAs(t, err, &internal, compression.String())
			assert.ErrorIs(t, err, ErrUnknownFormat, compression.String())
		}
	})

	t.Run("truncated gzip", func(t *testing.T) {
		data := testutil.DBArchive(t, testutil.BashRecords(), testutil.Gzip)
		_, err := FromArchive(ctx, data[:len(data)/2])

		var decompress *DecompressError
		require.ErrorAs(t, err, &decompress)
		assert.Equal(t, "gzip", decompress.Format)
	})

	t.Run("tar entry points reject garbage", func(t *testing.T) {
		err := NewCollection(0).ExtendFromTar(ctx, bytes.NewReader(bytes.Repeat([]byte{0xff}, 1024)))
		var tarErr *TarError
		assert.True(t, errors.As(err, &tarErr))
	})
}
