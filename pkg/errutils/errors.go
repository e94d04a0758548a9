// Package errutils provides the shared error values of archdb together with
// small helpers for wrapping errors with context.
//
// Domain packages (text, single, multi, desc, version) define their own typed
// errors so callers can inspect them with errors.As. The values here cover
// configuration, source loading and the command line.
package errutils

import (
	"fmt"
	"strings"
)

// Common error types used throughout the application.
// Errors are grouped by their domain or functionality.
var (
	// Config errors are related to configuration file operations and validation.
	ErrEmptyConfigPath = fmt.Errorf(
		"config file path cannot be empty") // When config file path is empty

	ErrInvalidConfigPath = fmt.Errorf(
		"invalid config file path") // When provided config file path is invalid

	ErrConfigParse = fmt.Errorf(
		"failed to parse config") // When config file cannot be parsed

	// ErrConfigValidation is returned when configuration values fail validation.
	ErrConfigValidation = fmt.Errorf(
		"invalid configuration") // When config values fail validation

	ErrConfigEncode = fmt.Errorf(
		"failed to encode config") // When config cannot be encoded

	ErrConfigDirectory = fmt.Errorf(
		"failed to create config directory") // When config dir cannot be created

	ErrConfigFileCreate = fmt.Errorf(
		"failed to create config file") // When config file cannot be created

	// ErrConfigFileRename is returned when renaming the temporary config file fails.
	ErrConfigFileRename = fmt.Errorf("failed to rename temporary config file")

	// ErrConfigMarshal is returned when marshaling the config to YAML fails.
	ErrConfigMarshal = fmt.Errorf("failed to marshal config to YAML")

	// ErrInvalidOutputFormat is returned when an invalid output format is specified.
	ErrInvalidOutputFormat = fmt.Errorf("invalid output format")

	// ErrInvalidLogLevel is returned when an invalid log level is specified.
	ErrInvalidLogLevel = fmt.Errorf("invalid log level")

	// ErrInvalidQuerier is returned when the querier strategy is unknown.
	ErrInvalidQuerier = fmt.Errorf("invalid querier strategy")

	// ErrWorkersNegative is returned when the worker count is negative.
	ErrWorkersNegative = fmt.Errorf("workers cannot be negative")

	// Repository errors are related to repository sources.

	// ErrEmptyRepositoryName is returned when a repository configuration is missing a name.
	ErrEmptyRepositoryName = fmt.Errorf("repository name cannot be empty")

	// ErrInvalidRepositoryName is returned when a repository name contains
	// characters outside of [A-Za-z0-9_.-].
	ErrInvalidRepositoryName = fmt.Errorf("invalid repository name")

	// ErrRepositoryPathEmpty is returned when a repository configuration is missing a path.
	ErrRepositoryPathEmpty = fmt.Errorf("repository path cannot be empty")

	// ErrRepositoryExists is returned when a repository name is configured twice.
	ErrRepositoryExists = fmt.Errorf("repository already exists")

	// ErrRepositoryNotFound is returned when a repository with the given name is not found.
	ErrRepositoryNotFound = fmt.Errorf("repository not found")

	// CLI errors are returned during command-line interface operations.

	// ErrNoRepositories is returned when no repositories are configured
	// and an operation requires at least one.
	ErrNoRepositories = fmt.Errorf("no repositories configured")

	// ErrPackageNotFound is returned when a lookup finds nothing.
	ErrPackageNotFound = fmt.Errorf("package not found")

	// ErrInvalidFilter is returned when a --where expression cannot be compiled.
	ErrInvalidFilter = fmt.Errorf("invalid filter expression")

	// ErrFilterEval is returned when a filter expression fails at runtime.
	ErrFilterEval = fmt.Errorf("filter evaluation failed")
)

// Wrap wraps an error with additional context.
// This is useful for adding context to errors as they propagate up the call stack.
// If the error is nil, Wrap returns nil.
//
// Example:
//
//	if err := someOperation(); err != nil {
//	    return errutils.Wrap(err, "failed to perform operation")
//	}
func Wrap(err error, msg string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", msg, err)
}

// Wrapf wraps an error with additional formatted context.
// If the error is nil, Wrapf returns nil.
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), err)
}

// ErrEmptyRepositoryNameWithIndex is a helper to create a wrapped error with the repository index.
func ErrEmptyRepositoryNameWithIndex(i int) error {
	return fmt.Errorf("repository %d: %w", i, ErrEmptyRepositoryName)
}

// ErrInvalidRepositoryNameWithName is a helper to create a wrapped error with the offending name.
func ErrInvalidRepositoryNameWithName(name string) error {
	return fmt.Errorf("%w: '%s', allowed characters are A-Z, a-z, 0-9, '_', '.' and '-'", ErrInvalidRepositoryName, name)
}

// ErrRepositoryPathEmptyWithName is a helper to create a wrapped error with the repository name.
func ErrRepositoryPathEmptyWithName(name string) error {
	return fmt.Errorf("repository '%s': %w", name, ErrRepositoryPathEmpty)
}

// ErrRepositoryExistsWithName is a helper to create a wrapped error with the repository name.
func ErrRepositoryExistsWithName(name string) error {
	return fmt.Errorf("repository '%s': %w", name, ErrRepositoryExists)
}

// ErrRepositoryNotFoundWithName creates an error for when a repository with the given name is not found.
func ErrRepositoryNotFoundWithName(name string) error {
	return fmt.Errorf("%w: %s", ErrRepositoryNotFound, name)
}

// ErrPackageNotFoundWithName creates an error for a failed package lookup.
func ErrPackageNotFoundWithName(name string) error {
	return fmt.Errorf("%w: %s", ErrPackageNotFound, name)
}

// ErrInvalidOutputFormatWithDetails is a helper to create a wrapped error with the invalid format and valid options.
func ErrInvalidOutputFormatWithDetails(format string) error {
	return fmt.Errorf("%w: '%s', must be one of: text, json, yaml", ErrInvalidOutputFormat, format)
}

// ErrInvalidLogLevelWithDetails is a helper to create a wrapped error with the invalid level and valid options.
func ErrInvalidLogLevelWithDetails(level string) error {
	return fmt.Errorf("%w: '%s', must be one of: debug, info, warn, error", ErrInvalidLogLevel, level)
}

// ErrInvalidQuerierWithDetails is a helper to create a wrapped error with the invalid strategy and valid options.
func ErrInvalidQuerierWithDetails(strategy string, valid []string) error {
	return fmt.Errorf("%w: '%s', must be one of: %s", ErrInvalidQuerier, strategy, strings.Join(valid, ", "))
}
