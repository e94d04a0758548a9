package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/cperrin88/archdb/pkg/errutils"
	"github.com/cperrin88/archdb/pkg/fsutil"
	"github.com/cperrin88/archdb/pkg/version"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, "info", cfg.Settings.LogLevel)
	assert.Equal(t, "/var/lib/pacman/sync", cfg.Settings.SyncDir)
	assert.Equal(t, "/var/lib/pacman/local", cfg.Settings.LocalDBPath)
	assert.True(t, cfg.Settings.Parallel)
	assert.Equal(t, 0, cfg.Settings.Workers)
	assert.Equal(t, QuerierEager, cfg.Settings.Querier)
	assert.Equal(t, version.SchemeAlpm, cfg.Settings.VersionScheme)
	assert.Equal(t, OutputText, cfg.Settings.OutputFormat)
	assert.Empty(t, cfg.Repositories)
	require.NoError(t, cfg.Validate())
}

func TestLoadConfig(t *testing.T) {
	tempDir := t.TempDir()
	configPath := filepath.Join(tempDir, "config.yaml")

	configContent := `repositories:
  - name: core
  - name: personal
    path: /srv/repo/personal.db.tar.gz
    enabled: false
settings:
  sync_dir: /tmp/sync
  workers: 4
  querier: memo
  log_level: debug
  output_format: yaml`

	err := os.WriteFile(configPath, []byte(configContent), fsutil.FileModeDefault)
	require.NoError(t, err)

	cfg, err := LoadConfig(configPath)
	require.NoError(t, err)
	require.NotNil(t, cfg)

	require.Len(t, cfg.Repositories, 2)
	assert.Equal(t, "core", cfg.Repositories[0].Name)
	assert.True(t, cfg.Repositories[0].Enabled)
	assert.Equal(t, "/tmp/sync/core.db", cfg.Repositories[0].ResolvePath(cfg.Settings.SyncDir))
	assert.False(t, cfg.Repositories[1].Enabled)
	assert.Equal(t, "/srv/repo/personal.db.tar.gz", cfg.Repositories[1].ResolvePath(cfg.Settings.SyncDir))

	assert.Equal(t, "/tmp/sync", cfg.Settings.SyncDir)
	assert.Equal(t, 4, cfg.Settings.Workers)
	assert.Equal(t, QuerierMemo, cfg.Settings.Querier)
	assert.Equal(t, "debug", cfg.Settings.LogLevel)
	assert.Equal(t, OutputYAML, cfg.Settings.OutputFormat)

	// untouched keys keep their defaults
	assert.True(t, cfg.Settings.Parallel)
	assert.Equal(t, "/var/lib/pacman/local", cfg.Settings.LocalDBPath)
	assert.Equal(t, version.SchemeAlpm, cfg.Scheme().Name())

	enabled := cfg.EnabledRepositories()
	require.Len(t, enabled, 1)
	assert.Equal(t, "core", enabled[0].Name)
}

func TestLoadConfigMissingFile(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoadConfigErrors(t *testing.T) {
	_, err := LoadConfig("")
	assert.ErrorIs(t, err, errutils.ErrEmptyConfigPath)

	_, err = LoadConfigFromReader(strings.NewReader("settings: [not, a, map"))
	assert.ErrorIs(t, err, errutils.ErrConfigParse)

	_, err = LoadConfigFromReader(strings.NewReader("settings:\n  querier: lazy\n"))
	assert.ErrorIs(t, err, errutils.ErrConfigValidation)
	assert.ErrorIs(t, err, errutils.ErrInvalidQuerier)
}

func TestSaveConfig(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Settings.LogLevel = "debug"
	cfg.Settings.VersionScheme = version.SchemeSemver
	require.NoError(t, cfg.AddRepository("extra", "", true))

	configPath := filepath.Join(t.TempDir(), "nested", "test-config.yaml")

	err := cfg.SaveConfig(configPath)
	require.NoError(t, err)
	assert.NoFileExists(t, configPath+".tmp")

	data, err := os.ReadFile(configPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), "version_scheme: semver")

	loadedCfg, err := LoadConfig(configPath)
	require.NoError(t, err)
	assert.Equal(t, cfg, loadedCfg)

	assert.ErrorIs(t, cfg.SaveConfig(""), errutils.ErrEmptyConfigPath)
}

func TestToYAML(t *testing.T) {
	data, err := DefaultConfig().ToYAML()
	require.NoError(t, err)
	assert.Contains(t, string(data), "sync_dir: /var/lib/pacman/sync")
	assert.Contains(t, string(data), "querier: eager")
}

func TestValidateConfig(t *testing.T) {
	withSettings := func(mutate func(*Settings)) *Config {
		cfg := DefaultConfig()
		mutate(&cfg.Settings)
		return cfg
	}

	tests := []struct {
		name    string
		config  *Config
		wantErr error
	}{
		{
			name:   "valid config",
			config: DefaultConfig(),
		},
		{
			name:    "nil config",
			config:  nil,
			wantErr: errutils.ErrConfigValidation,
		},
		{
			name: "empty repository name",
			config: &Config{
				Repositories: []*RepositoryConfig{{Name: ""}},
				Settings:     DefaultConfig().Settings,
			},
			wantErr: errutils.ErrEmptyRepositoryName,
		},
		{
			name: "invalid repository name",
			config: &Config{
				Repositories: []*RepositoryConfig{{Name: "core/extra"}},
				Settings:     DefaultConfig().Settings,
			},
			wantErr: errutils.ErrInvalidRepositoryName,
		},
		{
			name: "duplicate repository",
			config: &Config{
				Repositories: []*RepositoryConfig{{Name: "core"}, {Name: "core"}},
				Settings:     DefaultConfig().Settings,
			},
			wantErr: errutils.ErrRepositoryExists,
		},
		{
			name:    "negative workers",
			config:  withSettings(func(s *Settings) { s.Workers = -1 }),
			wantErr: errutils.ErrWorkersNegative,
		},
		{
			name:    "unknown querier",
			config:  withSettings(func(s *Settings) { s.Querier = "lazy" }),
			wantErr: errutils.ErrInvalidQuerier,
		},
		{
			name:    "unknown version scheme",
			config:  withSettings(func(s *Settings) { s.VersionScheme = "calver" }),
			wantErr: version.ErrUnknownScheme,
		},
		{
			name:    "unknown output format",
			config:  withSettings(func(s *Settings) { s.OutputFormat = "table" }),
			wantErr: errutils.ErrInvalidOutputFormat,
		},
		{
			name:    "unknown log level",
			config:  withSettings(func(s *Settings) { s.LogLevel = "trace" }),
			wantErr: errutils.ErrInvalidLogLevel,
		},
		{
			name:   "log level is case insensitive",
			config: withSettings(func(s *Settings) { s.LogLevel = "WARN" }),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidateRepositoryName(t *testing.T) {
	for _, name := range []string{"core", "extra-testing", "my_repo.v2", "A1"} {
		assert.NoError(t, ValidateRepositoryName(name), name)
	}
	assert.ErrorIs(t, ValidateRepositoryName(""), errutils.ErrEmptyRepositoryName)
	for _, name := range []string{"has space", "slash/name", "colon:name", "ünïcode"} {
		assert.ErrorIs(t, ValidateRepositoryName(name), errutils.ErrInvalidRepositoryName, name)
	}
}

func TestGetDefaultConfigPath(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/custom/config")

	path, err := GetDefaultConfigPath()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join("/custom/config", "archdb", "config.yaml"), path)
}

func TestRepositoryManagement(t *testing.T) {
	cfg := DefaultConfig()

	err := cfg.AddRepository("core", "", true)
	require.NoError(t, err)
	assert.Len(t, cfg.Repositories, 1)
	assert.Equal(t, "core", cfg.Repositories[0].Name)
	assert.True(t, cfg.Repositories[0].Enabled)

	err = cfg.AddRepository("core", "/other/core.db", true)
	assert.ErrorIs(t, err, errutils.ErrRepositoryExists)

	err = cfg.AddRepository("bad name", "", true)
	assert.ErrorIs(t, err, errutils.ErrInvalidRepositoryName)

	repo := cfg.GetRepository("core")
	require.NotNil(t, repo)
	assert.Equal(t, "core", repo.Name)
	assert.Nil(t, cfg.GetRepository("missing"))

	assert.True(t, cfg.RemoveRepository("core"))
	assert.Len(t, cfg.Repositories, 0)
	assert.False(t, cfg.RemoveRepository("non-existent"))

	err = cfg.AddRepository("extra", "", false)
	require.NoError(t, err)
	assert.Empty(t, cfg.EnabledRepositories())

	assert.True(t, cfg.EnableRepository("extra", true))
	assert.True(t, cfg.Repositories[0].Enabled)
	assert.False(t, cfg.EnableRepository("non-existent", true))
}
