package version

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVercmp(t *testing.T) {
	tests := []struct {
		a, b string
		want int
	}{
		{"1.0", "1.0", 0},
		{"1.0", "1.1", -1},
		{"1.1", "1.0", 1},
		{"0.21.1-1", "0.9.2-1", 1},
		{"0.9.2-1", "0.21.1-1", -1},
		{"5.2.026-2", "5.2.026-1", 1},
		{"5.2.026-2", "5.2.26-2", 0},
		{"1.0a", "1.0", -1},
		{"1.0", "1.0a", 1},
		{"1.0alpha", "1.0beta", -1},
		{"1.0.a", "1.0.1", -1},
		{"1.0", "1.0.1", -1},
		{"1.0.1", "1.0", 1},
		{"1..0", "1.0", 1},
		{"1:1.0-1", "2.0-1", 1},
		{"0:1.0-1", "1.0-1", 0},
		{"1.0-1", "1.0", 0},
		{"1.0-2", "1.0-10", -1},
		{"2.14.0-2", "2.14.0-2", 0},
		{"1.0_1", "1.0.1", 0},
	}

	for _, tt := range tests {
		t.Run(tt.a+" vs "+tt.b, func(t *testing.T) {
			assert.Equal(t, tt.want, Vercmp(tt.a, tt.b))
			assert.Equal(t, -tt.want, Vercmp(tt.b, tt.a))
		})
	}
}

func TestAlpmParse(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		epoch   string
		pkgver  string
		pkgrel  string
		wantErr bool
	}{
		{name: "plain", input: "5.2.026-2", epoch: "0", pkgver: "5.2.026", pkgrel: "2"},
		{name: "epoch", input: "1:2.0-1", epoch: "1", pkgver: "2.0", pkgrel: "1"},
		{name: "dash in pkgver uses last dash", input: "1.0-rc1-3", epoch: "0", pkgver: "1.0-rc1", pkgrel: "3"},
		{name: "empty", input: "", wantErr: true},
		{name: "missing pkgrel", input: "1.0", wantErr: true},
		{name: "empty pkgrel", input: "1.0-", wantErr: true},
		{name: "empty pkgver", input: "-1", wantErr: true},
		{name: "bad epoch", input: "x:1.0-1", wantErr: true},
		{name: "whitespace", input: "1.0 -1", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, err := Alpm.Parse(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				var parseErr *ParseError
				require.True(t, errors.As(err, &parseErr))
				assert.Equal(t, tt.input, parseErr.Input)
				assert.Equal(t, SchemeAlpm, parseErr.Scheme)
				return
			}
			require.NoError(t, err)
			alpm, ok := v.(AlpmVersion)
			require.True(t, ok)
			assert.Equal(t, tt.epoch, alpm.Epoch)
			assert.Equal(t, tt.pkgver, alpm.Pkgver)
			assert.Equal(t, tt.pkgrel, alpm.Pkgrel)
			assert.Equal(t, tt.input, v.String())
		})
	}
}

func TestAlpmCompare(t *testing.T) {
	assert.Equal(t, 1, MustParse("0.21.1-1").Compare(MustParse("0.9.2-1")))
	assert.Equal(t, 0, MustParse("0:1.0-1").Compare(MustParse("1.0-1")))
	assert.Equal(t, -1, MustParse("1.0-1").Compare(MustParse("1:0.1-1")))

	assert.Equal(t, "0.21.1-1", Max(MustParse("0.9.2-1"), MustParse("0.21.1-1")).String())
}

func TestSemver(t *testing.T) {
	a, err := Semver.Parse("1.10.0")
	require.NoError(t, err)
	b, err := Semver.Parse("1.9.3")
	require.NoError(t, err)
	assert.Equal(t, 1, a.Compare(b))

	_, err = Semver.Parse("not a version")
	var parseErr *ParseError
	require.ErrorAs(t, err, &parseErr)
	assert.Equal(t, SchemeSemver, parseErr.Scheme)
	assert.NotNil(t, errors.Unwrap(err))
}

func TestCompareAcrossSchemes(t *testing.T) {
	s, err := Semver.Parse("2.0.0")
	require.NoError(t, err)
	assert.Equal(t, 1, s.Compare(MustParse("1.0-1")))
	assert.Equal(t, -1, MustParse("1.0-1").Compare(s))
}

func TestSchemeByName(t *testing.T) {
	s, err := SchemeByName("")
	require.NoError(t, err)
	assert.Equal(t, SchemeAlpm, s.Name())

	s, err = SchemeByName("SemVer")
	require.NoError(t, err)
	assert.Equal(t, SchemeSemver, s.Name())

	_, err = SchemeByName("calver")
	assert.ErrorIs(t, err, ErrUnknownScheme)
}
