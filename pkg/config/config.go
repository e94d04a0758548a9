// Package config provides configuration management for archdb. It handles
// loading, validating and saving the list of repositories to index together
// with the settings that control how databases are read, parsed and shown.
// A missing configuration file is not an error: the defaults point at the
// pacman databases under /var/lib/pacman.
package config

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/cperrin88/archdb/pkg/errutils"
	"github.com/cperrin88/archdb/pkg/fsutil"
	"github.com/cperrin88/archdb/pkg/version"
	"gopkg.in/yaml.v3"
)

// Config represents the application configuration.
type Config struct {
	// Repository configuration
	Repositories []*RepositoryConfig `yaml:"repositories"`

	// General settings
	Settings Settings `yaml:"settings"`
}

// RepositoryConfig names one sync database.
type RepositoryConfig struct {
	Name    string `yaml:"name"`
	Path    string `yaml:"path,omitempty"`
	Enabled bool   `yaml:"enabled"`
}

// Settings represents general application settings.
type Settings struct {
	// Database locations
	SyncDir     string `yaml:"sync_dir"`
	LocalDBPath string `yaml:"local_db_path"`

	// Loading settings
	Parallel bool `yaml:"parallel"`
	Workers  int  `yaml:"workers"` // 0 means GOMAXPROCS

	// Parsing settings
	Querier       string `yaml:"querier"`        // eager, memo
	VersionScheme string `yaml:"version_scheme"` // alpm, semver

	// Output settings
	OutputFormat string `yaml:"output_format"` // text, json, yaml
	LogLevel     string `yaml:"log_level"`     // debug, info, warn, error
	NoColor      bool   `yaml:"no_color,omitempty"`
}

// Querier strategies.
const (
	QuerierEager = "eager"
	QuerierMemo  = "memo"
)

// Output formats.
const (
	OutputText = "text"
	OutputJSON = "json"
	OutputYAML = "yaml"
)

// Default configuration values.
const (
	// DefaultQuerier is the querier strategy used when none is configured.
	DefaultQuerier = QuerierEager

	// DefaultOutputFormat is the output format used when none is configured.
	DefaultOutputFormat = OutputText

	// DefaultLogLevel is the log level used when none is configured.
	DefaultLogLevel = "info"

	// YAMLIndent is the number of spaces to use for YAML indentation.
	YAMLIndent = 2
)

var repositoryNamePattern = regexp.MustCompile(`^[A-Za-z0-9_.-]+$`)

// DefaultConfig returns a configuration with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Repositories: []*RepositoryConfig{},
		Settings: Settings{
			SyncDir:       fsutil.DefaultSyncDir(),
			LocalDBPath:   fsutil.DefaultLocalDBPath(),
			Parallel:      true,
			Querier:       DefaultQuerier,
			VersionScheme: version.SchemeAlpm,
			OutputFormat:  DefaultOutputFormat,
			LogLevel:      DefaultLogLevel,
		},
	}
}

// LoadConfig loads configuration from a file.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, errutils.ErrEmptyConfigPath
	}

	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, errutils.Wrap(errutils.ErrInvalidConfigPath, err.Error())
	}

	file, err := os.Open(absPath)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultConfig(), nil
		}
		return nil, errutils.Wrapf(err, "failed to open config file: %s", path)
	}
	defer func() { _ = file.Close() }()

	return LoadConfigFromReader(file)
}

// LoadConfigFromReader loads configuration from an io.Reader. Keys missing
// from the document keep their default values.
func LoadConfigFromReader(reader io.Reader) (*Config, error) {
	data, err := io.ReadAll(reader)
	if err != nil {
		return nil, errutils.Wrap(err, "failed to read config data")
	}

	config := DefaultConfig()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, errutils.Wrap(errutils.ErrConfigParse, err.Error())
	}

	config.applyDefaults()

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", errutils.ErrConfigValidation, err)
	}

	return config, nil
}

// SaveConfig writes the configuration to path, replacing any existing file
// atomically.
func (c *Config) SaveConfig(path string) error {
	if path == "" {
		return errutils.ErrEmptyConfigPath
	}

	absPath, err := filepath.Abs(path)
	if err != nil {
		return errutils.Wrap(errutils.ErrInvalidConfigPath, err.Error())
	}

	if err := fsutil.EnsureFileDir(absPath); err != nil {
		return errutils.Wrap(errutils.ErrConfigDirectory, err.Error())
	}

	tempPath := absPath + ".tmp"
	file, err := os.OpenFile(tempPath, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, fsutil.FileModeDefault)
	if err != nil {
		return errutils.Wrap(errutils.ErrConfigFileCreate, err.Error())
	}

	encoder := yaml.NewEncoder(file)
	encoder.SetIndent(YAMLIndent)

	if err := encoder.Encode(c); err != nil {
		_ = file.Close()
		_ = os.Remove(tempPath)
		return errutils.Wrap(errutils.ErrConfigEncode, err.Error())
	}

	_ = encoder.Close()
	_ = file.Close()

	if err := os.Rename(tempPath, absPath); err != nil {
		_ = os.Remove(tempPath)
		return errutils.Wrap(errutils.ErrConfigFileRename, err.Error())
	}

	return nil
}

// ToYAML converts the config to YAML bytes.
func (c *Config) ToYAML() ([]byte, error) {
	data, err := yaml.Marshal(c)
	if err != nil {
		return nil, errutils.Wrap(errutils.ErrConfigMarshal, err.Error())
	}
	return data, nil
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c == nil {
		return errutils.ErrConfigValidation
	}
	if err := validateRepositories(c.Repositories); err != nil {
		return err
	}
	return validateSettings(c.Settings)
}

// ValidateRepositoryName checks that name is non-empty and only uses
// characters from [A-Za-z0-9_.-].
func ValidateRepositoryName(name string) error {
	if name == "" {
		return errutils.ErrEmptyRepositoryName
	}
	if !repositoryNamePattern.MatchString(name) {
		return errutils.ErrInvalidRepositoryNameWithName(name)
	}
	return nil
}

func validateRepositories(repos []*RepositoryConfig) error {
	repoNames := make(map[string]bool)
	for i, repo := range repos {
		if repo.Name == "" {
			return errutils.ErrEmptyRepositoryNameWithIndex(i)
		}
		if err := ValidateRepositoryName(repo.Name); err != nil {
			return err
		}
		if repoNames[repo.Name] {
			return errutils.ErrRepositoryExistsWithName(repo.Name)
		}
		repoNames[repo.Name] = true
	}
	return nil
}

func validateSettings(s Settings) error {
	if s.Workers < 0 {
		return errutils.ErrWorkersNegative
	}
	validQueriers := []string{QuerierEager, QuerierMemo}
	if !contains(validQueriers, s.Querier) {
		return errutils.ErrInvalidQuerierWithDetails(s.Querier, validQueriers)
	}
	if _, err := version.SchemeByName(s.VersionScheme); err != nil {
		return err
	}
	validFormats := []string{OutputText, OutputJSON, OutputYAML}
	if !contains(validFormats, s.OutputFormat) {
		return errutils.ErrInvalidOutputFormatWithDetails(s.OutputFormat)
	}
	validLevels := []string{"debug", "info", "warn", "error"}
	if !contains(validLevels, strings.ToLower(s.LogLevel)) {
		return errutils.ErrInvalidLogLevelWithDetails(s.LogLevel)
	}
	return nil
}

func contains(values []string, v string) bool {
	for _, value := range values {
		if value == v {
			return true
		}
	}
	return false
}

// GetDefaultConfigPath returns the default configuration file path.
func GetDefaultConfigPath() (string, error) {
	configDir, err := fsutil.GetConfigDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user config directory: %w", err)
	}
	return filepath.Join(configDir, "config.yaml"), nil
}

// AddRepository adds a repository to the configuration.
// Returns an error if a repository with the same name already exists.
func (c *Config) AddRepository(name, path string, enabled bool) error {
	if err := ValidateRepositoryName(name); err != nil {
		return err
	}
	if c.GetRepository(name) != nil {
		return errutils.ErrRepositoryExistsWithName(name)
	}

	c.Repositories = append(c.Repositories, &RepositoryConfig{
		Name:    name,
		Path:    path,
		Enabled: enabled,
	})

	return nil
}

// RemoveRepository removes a repository from the configuration.
func (c *Config) RemoveRepository(name string) bool {
	for i, repo := range c.Repositories {
		if repo.Name == name {
			c.Repositories = append(c.Repositories[:i], c.Repositories[i+1:]...)
			return true
		}
	}
	return false
}

// GetRepository gets a repository configuration by name.
func (c *Config) GetRepository(name string) *RepositoryConfig {
	for i, repo := range c.Repositories {
		if repo.Name == name {
			return c.Repositories[i]
		}
	}
	return nil
}

// EnableRepository enables or disables a repository.
func (c *Config) EnableRepository(name string, enabled bool) bool {
	repo := c.GetRepository(name)
	if repo == nil {
		return false
	}
	repo.Enabled = enabled
	return true
}

// EnabledRepositories returns the enabled repositories in configuration
// order.
func (c *Config) EnabledRepositories() []*RepositoryConfig {
	enabled := make([]*RepositoryConfig, 0, len(c.Repositories))
	for _, repo := range c.Repositories {
		if repo.Enabled {
			enabled = append(enabled, repo)
		}
	}
	return enabled
}

// Scheme returns the configured version scheme.
func (c *Config) Scheme() version.Scheme {
	scheme, err := version.SchemeByName(c.Settings.VersionScheme)
	if err != nil {
		return version.Alpm
	}
	return scheme
}

// applyDefaults fills in values that were explicitly set to empty.
func (c *Config) applyDefaults() {
	defaults := DefaultConfig()

	if c.Settings.SyncDir == "" {
		c.Settings.SyncDir = defaults.Settings.SyncDir
	}
	if c.Settings.LocalDBPath == "" {
		c.Settings.LocalDBPath = defaults.Settings.LocalDBPath
	}
	if c.Settings.Querier == "" {
		c.Settings.Querier = defaults.Settings.Querier
	}
	if c.Settings.VersionScheme == "" {
		c.Settings.VersionScheme = defaults.Settings.VersionScheme
	}
	if c.Settings.OutputFormat == "" {
		c.Settings.OutputFormat = defaults.Settings.OutputFormat
	}
	if c.Settings.LogLevel == "" {
		c.Settings.LogLevel = defaults.Settings.LogLevel
	}
	if c.Repositories == nil {
		c.Repositories = defaults.Repositories
	}
}
