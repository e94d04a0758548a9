package text

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"path"

	"github.com/mholt/archives"
)

// Media types of the formats a sync database may be stored in.
const (
	MIMETar  = "application/x-tar"
	MIMEGzip = "application/gzip"
	MIMEXz   = "application/x-xz"
)

// descFileName is the only entry name collected from archives.
const descFileName = "desc"

// detect sniffs the outer format of stream. Only the content is inspected,
// never a file name. It returns one of the MIME constants together with a
// reader that replays the bytes consumed while sniffing.
func detect(ctx context.Context, stream io.Reader) (string, io.Reader, error) {
	format, replay, err := archives.Identify(ctx, "", stream)
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrUnknownFormat, err)
	}

	mime := format.MediaType()
	// gzip and xz are reported together with the archive they wrap; the
	// compression layer decides how the bytes are decoded.
	if compressed, ok := format.(archives.CompressedArchive); ok && compressed.Compression != nil {
		mime = compressed.Compression.MediaType()
	}

	switch mime {
	case MIMETar, MIMEGzip, MIMEXz:
		return mime, replay, nil
	default:
		return "", nil, &UnsupportedFormatError{MIME: mime}
	}
}

// ExtendFromArchive detects the format of data and appends the contents of
// every desc entry it holds.
func (c *Collection) ExtendFromArchive(ctx context.Context, data []byte) error {
	mime, stream, err := detect(ctx, bytes.NewReader(data))
	if err != nil {
		return err
	}

	switch mime {
	case MIMEGzip:
		return c.ExtendFromGzip(ctx, stream)
	case MIMEXz:
		return c.ExtendFromXz(ctx, stream)
	default:
		return c.ExtendFromTar(ctx, stream)
	}
}

// ExtendFromTar walks an uncompressed tar stream and appends the contents of
// every desc entry in archive order.
func (c *Collection) ExtendFromTar(ctx context.Context, stream io.Reader) error {
	err := archives.Tar{}.Extract(ctx, stream, func(_ context.Context, info archives.FileInfo) error {
		if !info.Mode().IsRegular() || path.Base(info.NameInArchive) != descFileName {
			return nil
		}

		f, err := info.Open()
		if err != nil {
			return err
		}
		defer func() { _ = f.Close() }()

		content, err := io.ReadAll(f)
		if err != nil {
			return fmt.Errorf("failed to read %s: %w", info.NameInArchive, err)
		}
		c.Insert(Text(content))
		return nil
	})
	if err != nil {
		return &TarError{Err: err}
	}
	return nil
}

// ExtendFromGzip decompresses a gzip stream and appends the desc entries of
// the tar archive inside it.
func (c *Collection) ExtendFromGzip(ctx context.Context, stream io.Reader) error {
	return c.extendFromCompressed(ctx, "gzip", archives.Gz{}, stream)
}

// ExtendFromXz decompresses an xz stream and appends the desc entries of
// the tar archive inside it.
func (c *Collection) ExtendFromXz(ctx context.Context, stream io.Reader) error {
	return c.extendFromCompressed(ctx, "xz", archives.Xz{}, stream)
}

func (c *Collection) extendFromCompressed(ctx context.Context, name string, dec archives.Decompressor, stream io.Reader) error {
	rc, err := dec.OpenReader(stream)
	if err != nil {
		return &DecompressError{Format: name, Err: err}
	}
	defer func() { _ = rc.Close() }()

	raw, err := io.ReadAll(rc)
	if err != nil {
		return &DecompressError{Format: name, Err: err}
	}

	mime, inner, err := detect(ctx, bytes.NewReader(raw))
	if err != nil {
		return &InternalArchiveError{Err: err}
	}
	if mime != MIMETar {
		return &InternalArchiveError{Err: &UnsupportedFormatError{MIME: mime}}
	}
	if err := c.ExtendFromTar(ctx, inner); err != nil {
		return &InternalArchiveError{Err: err}
	}
	return nil
}

// FromArchive builds a collection from the content of an archive.
func FromArchive(ctx context.Context, data []byte) (*Collection, error) {
	c := NewCollection(0)
	if err := c.ExtendFromArchive(ctx, data); err != nil {
		return nil, err
	}
	return c, nil
}
