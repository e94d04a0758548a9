package config

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"
)

// SetValue sets a configuration value by key
// Supported keys:
//   - sync_dir: string - Directory holding the sync databases
//   - local_db_path: string - Path of the local database
//   - parallel: bool - Whether databases are read and parsed in parallel
//   - workers: int - Size of the worker pool, 0 for GOMAXPROCS
//   - querier: string - Querier strategy (eager, memo)
//   - version_scheme: string - Version ordering (alpm, semver)
//   - output_format: string - Output format (text, json, yaml)
//   - log_level: string - Logging level (debug, info, warn, error)
//   - no_color: bool - Whether to disable colored output
//
// The resulting configuration is validated; on failure the previous value
// is restored.
func (c *Config) SetValue(key, value string) error {
	previous := c.Settings

	switch key {
	case "sync_dir":
		c.Settings.SyncDir = value
	case "local_db_path":
		c.Settings.LocalDBPath = value
	case "parallel", "no_color":
		boolVal, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("invalid boolean value for %s: %s", key, value)
		}
		if key == "parallel" {
			c.Settings.Parallel = boolVal
		} else {
			c.Settings.NoColor = boolVal
		}
	case "workers":
		intVal, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("invalid integer value for %s: %s", key, value)
		}
		c.Settings.Workers = intVal
	case "querier":
		c.Settings.Querier = value
	case "version_scheme":
		c.Settings.VersionScheme = value
	case "output_format":
		c.Settings.OutputFormat = value
	case "log_level":
		c.Settings.LogLevel = value
	default:
		return fmt.Errorf("unknown configuration key: %s", key)
	}

	if err := validateSettings(c.Settings); err != nil {
		c.Settings = previous
		return err
	}
	return nil
}

// GetValue returns the value of key as a string.
func (c *Config) GetValue(key string) (string, error) {
	value, ok := c.ToMap()[key]
	if !ok {
		return "", fmt.Errorf("unknown configuration key: %s", key)
	}
	return value, nil
}

// ToMap returns the settings keyed by their YAML names.
// This is useful for displaying the configuration.
func (c *Config) ToMap() map[string]string {
	result := make(map[string]string)

	settingsValue := reflect.ValueOf(c.Settings)
	settingsType := settingsValue.Type()

	for i := 0; i < settingsValue.NumField(); i++ {
		field := settingsType.Field(i)
		yamlTag := field.Tag.Get("yaml")
		if yamlTag == "" || yamlTag == "-" {
			continue
		}

		// Handle yaml tags with options (e.g., "no_color,omitempty")
		yamlKey := strings.Split(yamlTag, ",")[0]

		fieldValue := settingsValue.Field(i)
		var strValue string

		switch fieldValue.Kind() {
		case reflect.Bool:
			strValue = strconv.FormatBool(fieldValue.Bool())
		case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
			strValue = strconv.FormatInt(fieldValue.Int(), 10)
		case reflect.String:
			strValue = fieldValue.String()
		default:
			strValue = fmt.Sprintf("%v", fieldValue.Interface())
		}

		result[yamlKey] = strValue
	}

	return result
}
