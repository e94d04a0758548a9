package cli

import (
	"context"
	"fmt"

	"github.com/cperrin88/archdb/internal/logger"
	"github.com/cperrin88/archdb/pkg/config"
	"github.com/cperrin88/archdb/pkg/desc"
	"github.com/cperrin88/archdb/pkg/errutils"
	"github.com/cperrin88/archdb/pkg/loader"
	"github.com/cperrin88/archdb/pkg/multi"
)

// These variables will be set by the main package
var (
	ConfigPath    *string
	Verbose       *bool
	NoColor       *bool
	OutputFormat  *string
	Querier       *string
	VersionScheme *string
	Workers       *int
	Sequential    *bool
)

// loadConfig loads the configuration, applies the global flags on top of
// it and initializes logging.
func loadConfig() (*config.Config, error) {
	configPath := getConfigPath()
	if configPath == "" {
		return nil, errutils.ErrEmptyConfigPath
	}

	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	applyFlags(cfg)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	initLogging(cfg)
	return cfg, nil
}

// applyFlags overrides config values with CLI flags if provided.
func applyFlags(cfg *config.Config) {
	if OutputFormat != nil && *OutputFormat != "" {
		cfg.Settings.OutputFormat = *OutputFormat
	}
	if Querier != nil && *Querier != "" {
		cfg.Settings.Querier = *Querier
	}
	if VersionScheme != nil && *VersionScheme != "" {
		cfg.Settings.VersionScheme = *VersionScheme
	}
	if Workers != nil && *Workers >= 0 {
		cfg.Settings.Workers = *Workers
	}
	if Sequential != nil && *Sequential {
		cfg.Settings.Parallel = false
	}
	if NoColor != nil && *NoColor {
		cfg.Settings.NoColor = true
	}
	if Verbose != nil && *Verbose {
		cfg.Settings.LogLevel = "debug"
	}
}

func initLogging(cfg *config.Config) {
	format := logger.FormatText
	if cfg.Settings.OutputFormat == config.OutputJSON {
		format = logger.FormatJSON
	}
	logger.SetNoColor(cfg.Settings.NoColor)
	logger.InitLogger(cfg.Settings.LogLevel, format)
}

// loadSources resolves repository arguments, falling back to the enabled
// repositories of the configuration.
func loadSources(cfg *config.Config, repoArgs []string) ([]loader.Source, error) {
	if len(repoArgs) > 0 {
		return loader.ParseRepositoryArgs(repoArgs, cfg.Settings.SyncDir)
	}

	sources := loader.SourcesFromConfig(cfg)
	if len(sources) == 0 {
		return nil, errutils.ErrNoRepositories
	}
	return sources, nil
}

// loadDatabase loads the multi-repository database every query command
// works on.
func loadDatabase(ctx context.Context, repoArgs []string) (*config.Config, *multi.Database[desc.Querier], error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, nil, err
	}

	sources, err := loadSources(cfg, repoArgs)
	if err != nil {
		return nil, nil, err
	}

	db, err := loader.LoadMulti(ctx, sources, loader.OptionsFromConfig(cfg))
	if err != nil {
		return nil, nil, err
	}
	return cfg, db, nil
}
