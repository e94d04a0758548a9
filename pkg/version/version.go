// Package version parses and orders package versions.
//
// The default scheme follows pacman: versions look like [epoch:]pkgver-pkgrel
// and are ordered with the same segment rules as vercmp(8). A semantic
// versioning scheme backed by hashicorp/go-version is also available for
// repositories that publish semver strings.
package version

import (
	"fmt"
	"strings"

	goversion "github.com/hashicorp/go-version"
)

// Parsed is a version that can be ordered against other parsed versions.
type Parsed interface {
	// Compare returns -1, 0 or 1 when the receiver is older, equal or newer.
	Compare(other Parsed) int
	String() string
}

// Scheme parses version strings into comparable values.
type Scheme interface {
	Name() string
	Parse(s string) (Parsed, error)
}

// Scheme names accepted by SchemeByName.
const (
	SchemeAlpm   = "alpm"
	SchemeSemver = "semver"
)

var (
	// Alpm parses pacman versions. It is the default scheme.
	Alpm Scheme = alpmScheme{}
	// Semver parses semantic versions.
	Semver Scheme = semverScheme{}
)

// SchemeByName returns the scheme registered under name.
// An empty name selects Alpm.
func SchemeByName(name string) (Scheme, error) {
	switch strings.ToLower(name) {
	case "", SchemeAlpm:
		return Alpm, nil
	case SchemeSemver:
		return Semver, nil
	default:
		return nil, fmt.Errorf("%w: '%s', must be one of: %s, %s", ErrUnknownScheme, name, SchemeAlpm, SchemeSemver)
	}
}

// Parse parses s with the default scheme.
func Parse(s string) (Parsed, error) {
	return Alpm.Parse(s)
}

// MustParse is like Parse but panics on error.
func MustParse(s string) Parsed {
	v, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return v
}

// Max returns the greater of a and b, preferring a when they are equal.
func Max(a, b Parsed) Parsed {
	if b.Compare(a) > 0 {
		return b
	}
	return a
}

// AlpmVersion is a version parsed by the Alpm scheme.
type AlpmVersion struct {
	raw      string
	Epoch    string
	Pkgver   string
	Pkgrel   string
	hasEpoch bool
}

type alpmScheme struct{}

func (alpmScheme) Name() string { return SchemeAlpm }

func (alpmScheme) Parse(s string) (Parsed, error) {
	if s == "" {
		return nil, &ParseError{Input: s, Scheme: SchemeAlpm, Reason: "empty version"}
	}
	if strings.ContainsAny(s, " \t\r\n") {
		return nil, &ParseError{Input: s, Scheme: SchemeAlpm, Reason: "version contains whitespace"}
	}

	v := AlpmVersion{raw: s, Epoch: "0"}
	rest := s
	if colon := strings.IndexByte(s, ':'); colon >= 0 {
		epoch := s[:colon]
		if epoch == "" || strings.TrimLeft(epoch, "0123456789") != "" {
			return nil, &ParseError{Input: s, Scheme: SchemeAlpm, Reason: "epoch must be a non-negative integer"}
		}
		v.Epoch = epoch
		v.hasEpoch = true
		rest = s[colon+1:]
	}

	dash := strings.LastIndexByte(rest, '-')
	if dash < 0 {
		return nil, &ParseError{Input: s, Scheme: SchemeAlpm, Reason: "missing pkgrel"}
	}
	v.Pkgver, v.Pkgrel = rest[:dash], rest[dash+1:]
	if v.Pkgver == "" {
		return nil, &ParseError{Input: s, Scheme: SchemeAlpm, Reason: "empty pkgver"}
	}
	if v.Pkgrel == "" {
		return nil, &ParseError{Input: s, Scheme: SchemeAlpm, Reason: "empty pkgrel"}
	}
	return v, nil
}

// Compare orders v against other using vercmp rules.
func (v AlpmVersion) Compare(other Parsed) int {
	if o, ok := other.(AlpmVersion); ok {
		if ret := rpmvercmp(v.Epoch, o.Epoch); ret != 0 {
			return ret
		}
		if ret := rpmvercmp(v.Pkgver, o.Pkgver); ret != 0 {
			return ret
		}
		return rpmvercmp(v.Pkgrel, o.Pkgrel)
	}
	return Vercmp(v.raw, other.String())
}

func (v AlpmVersion) String() string {
	return v.raw
}

// HasEpoch reports whether the epoch was spelled out in the source string.
func (v AlpmVersion) HasEpoch() bool {
	return v.hasEpoch
}

// SemverVersion is a version parsed by the Semver scheme.
type SemverVersion struct {
	v *goversion.Version
}

type semverScheme struct{}

func (semverScheme) Name() string { return SchemeSemver }

func (semverScheme) Parse(s string) (Parsed, error) {
	v, err := goversion.NewVersion(s)
	if err != nil {
		return nil, &ParseError{Input: s, Scheme: SchemeSemver, Reason: "malformed semantic version", Err: err}
	}
	return SemverVersion{v: v}, nil
}

// Compare orders v against other. Versions from another scheme are
// compared with vercmp on their string forms.
func (v SemverVersion) Compare(other Parsed) int {
	if o, ok := other.(SemverVersion); ok {
		return v.v.Compare(o.v)
	}
	return Vercmp(v.v.Original(), other.String())
}

func (v SemverVersion) String() string {
	return v.v.Original()
}
