package fsutil

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRepositoryName(t *testing.T) {
	tests := []struct {
		path string
		want string
	}{
		{path: "/var/lib/pacman/sync/core.db", want: "core"},
		{path: "extra.db.tar.gz", want: "extra"},
		{path: "multilib.tar.xz", want: "multilib"},
		{path: "personal.tgz", want: "personal"},
		{path: "derivative.txz", want: "derivative"},
		{path: "plain.tar", want: "plain"},
		{path: "compressed.gz", want: "compressed"},
		{path: "compressed.xz", want: "compressed"},
		{path: "/var/lib/pacman/local/", want: "local"},
		{path: "no-suffix", want: "no-suffix"},
		{path: ".db", want: ".db"},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			assert.Equal(t, tt.want, RepositoryName(tt.path))
		})
	}
}

func TestDefaultPaths(t *testing.T) {
	assert.Equal(t, filepath.Join("/var/lib/pacman", "sync"), DefaultSyncDir())
	assert.Equal(t, filepath.Join("/var/lib/pacman", "local"), DefaultLocalDBPath())
	assert.Equal(t, filepath.Join("/sync", "core.db"), SyncDBPath("/sync", "core"))
}

func TestGetConfigDir(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/custom/config")

	dir, err := GetConfigDir()
	if assert.NoError(t, err) {
		assert.Equal(t, filepath.Join("/custom/config", AppName), dir)
	}
}
