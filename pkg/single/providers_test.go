package single

import (
	"slices"
	"testing"

	"github.com/cperrin88/archdb/pkg/desc"
	"github.com/cperrin88/archdb/test/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func providerNames(seq func(func(*desc.EagerQuerier) bool)) []string {
	var names []string
	for q := range seq {
		name, _ := q.Name()
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

func TestAlternativeProviders(t *testing.T) {
	var qs []*desc.EagerQuerier
	for _, repo := range testutil.MultiRepositories()[:2] {
		for _, r := range repo.Records {
			qs = append(qs, eager(t, r))
		}
	}
	db, err := FromQueriers(qs)
	require.NoError(t, err)

	tests := []struct {
		target string
		want   []string
	}{
		{target: "sh", want: []string{"bash"}},
		{target: "libalpm", want: nil},
		{target: "libalpm.so", want: []string{"pacman"}},
		{target: "cargo", want: []string{"rust", "rustup"}},
		{target: "libreadline.so", want: []string{"readline"}},
		{target: "readline", want: nil},
	}

	for _, tt := range tests {
		t.Run(tt.target, func(t *testing.T) {
			assert.Equal(t, tt.want, providerNames(db.AlternativeProviders(tt.target)))
		})
	}
}

func TestAlternativeProvidersSelf(t *testing.T) {
	db, err := FromQueriers([]*desc.EagerQuerier{eager(t, testutil.Rust), eager(t, testutil.Rustup)})
	require.NoError(t, err)

	// rustup provides rust; rust does not list itself
	assert.Equal(t, []string{"rustup"}, providerNames(db.AlternativeProviders("rust")))

	self := testutil.Rust
	self.Provides = append(slices.Clone(self.Provides), "rust")
	db, err = FromQueriers([]*desc.EagerQuerier{eager(t, self), eager(t, testutil.Rustup)})
	require.NoError(t, err)

	assert.Equal(t, []string{"rust", "rustup"}, providerNames(db.AlternativeProviders("rust")))
	assert.Equal(t, []string{"rustup"}, providerNames(db.AlternativeProvidersExcludingSelf("rust")))
}

func TestAlternativeProvidersStopsEarly(t *testing.T) {
	db, err := FromQueriers([]*desc.EagerQuerier{eager(t, testutil.Rust), eager(t, testutil.Rustup)})
	require.NoError(t, err)

	seen := 0
	for range db.AlternativeProviders("cargo") {
		seen++
		break
	}
	assert.Equal(t, 1, seen)
}
