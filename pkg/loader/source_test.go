package loader

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/cperrin88/archdb/pkg/config"
	"github.com/cperrin88/archdb/pkg/errutils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRepositoryArg(t *testing.T) {
	local := filepath.Join(t.TempDir(), "personal")
	require.NoError(t, os.WriteFile(local, nil, 0o644))
	t.Chdir(filepath.Dir(local))

	tests := []struct {
		name string
		arg  string
		want Source
	}{
		{
			name: "explicit name and path",
			arg:  "core:/srv/mirror/core.db",
			want: Source{Repository: "core", Path: "/srv/mirror/core.db"},
		},
		{
			name: "path with db suffix",
			arg:  "/var/lib/pacman/sync/extra.db",
			want: Source{Repository: "extra", Path: "/var/lib/pacman/sync/extra.db"},
		},
		{
			name: "relative archive",
			arg:  "derivative.tar.xz",
			want: Source{Repository: "derivative", Path: "derivative.tar.xz"},
		},
		{
			name: "bare name",
			arg:  "multilib",
			want: Source{Repository: "multilib", Path: filepath.Join("/sync", "multilib.db")},
		},
		{
			name: "existing file without suffix",
			arg:  "personal",
			want: Source{Repository: "personal", Path: "personal"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseRepositoryArg(tt.arg, "/sync")
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseRepositoryArgErrors(t *testing.T) {
	tests := []struct {
		arg     string
		wantErr error
	}{
		{arg: "", wantErr: errutils.ErrRepositoryPathEmpty},
		{arg: "core:", wantErr: errutils.ErrRepositoryPathEmpty},
		{arg: ":/srv/core.db", wantErr: errutils.ErrEmptyRepositoryName},
		{arg: "bad name:/srv/core.db", wantErr: errutils.ErrInvalidRepositoryName},
		{arg: "bad name", wantErr: errutils.ErrInvalidRepositoryName},
	}

	for _, tt := range tests {
		t.Run(tt.arg, func(t *testing.T) {
			_, err := ParseRepositoryArg(tt.arg, "/sync")
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestParseRepositoryArgs(t *testing.T) {
	sources, err := ParseRepositoryArgs([]string{"core", "extra:/srv/extra.db"}, "/sync")
	require.NoError(t, err)
	assert.Equal(t, []Source{
		{Repository: "core", Path: filepath.Join("/sync", "core.db")},
		{Repository: "extra", Path: "/srv/extra.db"},
	}, sources)

	_, err = ParseRepositoryArgs([]string{"core", "/mirror/core.db"}, "/sync")
	assert.ErrorIs(t, err, errutils.ErrRepositoryExists)
}

func TestSourcesFromConfig(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Settings.SyncDir = "/sync"
	require.NoError(t, cfg.AddRepository("core", "", true))
	require.NoError(t, cfg.AddRepository("testing", "", false))
	require.NoError(t, cfg.AddRepository("personal", "/srv/personal.db.tar.gz", true))

	assert.Equal(t, []Source{
		{Repository: "core", Path: filepath.Join("/sync", "core.db")},
		{Repository: "personal", Path: "/srv/personal.db.tar.gz"},
	}, SourcesFromConfig(cfg))
}
