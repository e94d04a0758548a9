package testutil

import (
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/mholt/archives"
	"github.com/stretchr/testify/require"
)

// Compression of a fixture archive.
type Compression int

const (
	Plain Compression = iota
	Gzip
	Xz
)

func (c Compression) String() string {
	switch c {
	case Gzip:
		return "tar.gz"
	case Xz:
		return "tar.xz"
	default:
		return "tar"
	}
}

// WriteDBTree lays records out like a pacman database: one directory per
// package holding a desc file. It returns the root directory.
func WriteDBTree(t *testing.T, records []Record) string {
	t.Helper()
	root := t.TempDir()
	for _, r := range records {
		dir := filepath.Join(root, r.DirName())
		require.NoError(t, os.MkdirAll(dir, 0o755))
		require.NoError(t, os.WriteFile(filepath.Join(dir, "desc"), []byte(r.Text()), 0o644))
	}
	return root
}

// ArchiveDir packs the content of dir into an archive held in memory.
func ArchiveDir(t *testing.T, dir string, compression Compression) []byte {
	t.Helper()
	ctx := context.Background()

	files, err := archives.FilesFromDisk(ctx, nil, map[string]string{dir + string(os.PathSeparator): ""})
	require.NoError(t, err)

	var buf bytes.Buffer
	switch compression {
	case Gzip:
		format := archives.CompressedArchive{Compression: archives.Gz{}, Archival: archives.Tar{}}
		require.NoError(t, format.Archive(ctx, &buf, files))
	case Xz:
		format := archives.CompressedArchive{Compression: archives.Xz{}, Archival: archives.Tar{}}
		require.NoError(t, format.Archive(ctx, &buf, files))
	default:
		require.NoError(t, archives.Tar{}.Archive(ctx, &buf, files))
	}
	return buf.Bytes()
}

// DBArchive builds a sync database archive holding records.
func DBArchive(t *testing.T, records []Record, compression Compression) []byte {
	t.Helper()
	return ArchiveDir(t, WriteDBTree(t, records), compression)
}

// Compress wraps raw bytes in gzip or xz without a tar container.
func Compress(t *testing.T, raw []byte, compression Compression) []byte {
	t.Helper()

	var (
		buf bytes.Buffer
		err error
		w   io.WriteCloser
	)
	switch compression {
	case Gzip:
		w, err = archives.Gz{}.OpenWriter(&buf)
	case Xz:
		w, err = archives.Xz{}.OpenWriter(&buf)
	default:
		return raw
	}
	require.NoError(t, err)
	_, err = w.Write(raw)
	require.NoError(t, err)
	require.NoError(t, w.Close())
	return buf.Bytes()
}
