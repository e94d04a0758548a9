package text

import (
	"errors"
	"fmt"
)

// ErrUnknownFormat is returned when the content of an archive matches no
// known format at all.
var ErrUnknownFormat = errors.New("failed to detect archive format")

// UnsupportedFormatError is returned when an archive was recognized but is
// not tar, gzip or xz.
type UnsupportedFormatError struct {
	MIME string
}

func (e *UnsupportedFormatError) Error() string {
	return fmt.Sprintf("unsupported archive format: %s", e.MIME)
}

// TarError is returned when walking a tar container fails.
type TarError struct {
	Err error
}

func (e *TarError) Error() string {
	return fmt.Sprintf("failed to read the tar archive: %v", e.Err)
}

func (e *TarError) Unwrap() error {
	return e.Err
}

// DecompressError is returned when a gzip or xz stream cannot be decoded.
type DecompressError struct {
	Format string
	Err    error
}

func (e *DecompressError) Error() string {
	return fmt.Sprintf("failed to decompress %s data: %v", e.Format, e.Err)
}

func (e *DecompressError) Unwrap() error {
	return e.Err
}

// InternalArchiveError is returned when the data inside a compressed stream
// is not a readable tar archive.
type InternalArchiveError struct {
	Err error
}

func (e *InternalArchiveError) Error() string {
	return fmt.Sprintf("failed to read the archive inside the compressed data: %v", e.Err)
}

func (e *InternalArchiveError) Unwrap() error {
	return e.Err
}

// LocalDirError is returned when a local database directory cannot be listed.
type LocalDirError struct {
	Path string
	Err  error
}

func (e *LocalDirError) Error() string {
	return fmt.Sprintf("failed to read local database directory %s: %v", e.Path, e.Err)
}

func (e *LocalDirError) Unwrap() error {
	return e.Err
}

// LocalFileError is returned when a desc file exists but cannot be read.
type LocalFileError struct {
	Path string
	Err  error
}

func (e *LocalFileError) Error() string {
	return fmt.Sprintf("failed to read %s: %v", e.Path, e.Err)
}

func (e *LocalFileError) Unwrap() error {
	return e.Err
}

// ParseError is returned when a text cannot be parsed or inserted while
// building a database. Index is the position of the text within its
// collection; Repository is empty for single-repository collections.
type ParseError struct {
	Index      int
	Repository string
	Err        error
}

func (e *ParseError) Error() string {
	if e.Repository != "" {
		return fmt.Sprintf("record %d of repository %s: %v", e.Index, e.Repository, e.Err)
	}
	return fmt.Sprintf("record %d: %v", e.Index, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
