// Package logger is the process-wide structured logger of archdb. It wraps
// log/slog: JSON output goes through slog's JSON handler, everything else
// through a charmbracelet/log handler.
package logger

import (
	"fmt"
	"io"
	"log/slog"
	"maps"
	"os"
	"slices"
	"strings"
	"sync"

	charmlog "github.com/charmbracelet/log"
	"github.com/muesli/termenv"
)

// OutputFormat selects the log encoding.
type OutputFormat string

// Supported log encodings.
const (
	FormatText OutputFormat = "text"
	FormatJSON OutputFormat = "json"
)

var (
	// testOutput is used to capture log output during tests
	testOutput   io.Writer
	testOutputMu sync.Mutex
)

// Fields is a type alias for log fields to make the API cleaner
type Fields map[string]interface{}

var (
	logger        *slog.Logger
	currentLevel  = slog.LevelInfo
	currentFormat = FormatText
	noColor       bool
	stateMu       sync.Mutex
)

// SetTestOutput sets the output writer for testing purposes
func SetTestOutput(w io.Writer) {
	testOutputMu.Lock()
	defer testOutputMu.Unlock()
	testOutput = w
}

// UnsetTestOutput resets the test output to nil
func UnsetTestOutput() {
	testOutputMu.Lock()
	defer testOutputMu.Unlock()
	testOutput = nil
}

func getOutput() io.Writer {
	testOutputMu.Lock()
	defer testOutputMu.Unlock()
	if testOutput != nil {
		return testOutput
	}
	return os.Stderr
}

// ParseLevel maps a level name to a slog level. Unknown names map to info.
func ParseLevel(logLevel string) slog.Level {
	switch strings.ToLower(logLevel) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// InitLogger initializes the global logger.
func InitLogger(logLevel string, format OutputFormat) {
	stateMu.Lock()
	defer stateMu.Unlock()
	currentLevel = ParseLevel(logLevel)
	currentFormat = format
	rebuild()
}

// SetOutputFormat switches the encoding and keeps the level.
func SetOutputFormat(format OutputFormat) {
	stateMu.Lock()
	defer stateMu.Unlock()
	currentFormat = format
	rebuild()
}

// SetNoColor disables ANSI colors in text output.
func SetNoColor(disable bool) {
	stateMu.Lock()
	defer stateMu.Unlock()
	noColor = disable
	rebuild()
}

func rebuild() {
	out := getOutput()

	if currentFormat == FormatJSON {
		logger = slog.New(slog.NewJSONHandler(out, &slog.HandlerOptions{Level: currentLevel}))
		return
	}

	handler := charmlog.NewWithOptions(out, charmlog.Options{
		Level:           charmlog.Level(currentLevel),
		ReportTimestamp: currentLevel <= slog.LevelDebug,
	})
	if noColor {
		handler.SetColorProfile(termenv.Ascii)
	}
	logger = slog.New(handler)
}

// GetLogger returns the configured logger instance.
func GetLogger() *slog.Logger {
	stateMu.Lock()
	defer stateMu.Unlock()
	if logger == nil {
		rebuild()
	}
	return logger
}

// Info logs an info message.
func Info(msg string, fields ...Fields) {
	GetLogger().Info(msg, mergeFields(fields...)...)
}

// Infof logs a formatted info message.
func Infof(format string, args ...interface{}) {
	GetLogger().Info(fmt.Sprintf(format, args...))
}

// Debug logs a debug message (only shown when debug level is enabled).
func Debug(msg string, fields ...Fields) {
	GetLogger().Debug(msg, mergeFields(fields...)...)
}

// Debugf logs a formatted debug message.
func Debugf(format string, args ...interface{}) {
	GetLogger().Debug(fmt.Sprintf(format, args...))
}

// Warn logs a warning message.
func Warn(msg string, fields ...Fields) {
	GetLogger().Warn(msg, mergeFields(fields...)...)
}

// Error logs an error message.
func Error(msg string, fields ...Fields) {
	GetLogger().Error(msg, mergeFields(fields...)...)
}

// Success logs a success message as info with success indicator.
func Success(msg string, fields ...Fields) {
	attrs := mergeFields(fields...)
	attrs = append(attrs, "status", "success")
	GetLogger().Info(msg, attrs...)
}

// mergeFields merges multiple field maps into one slice of key-value pairs for slog.
// mergeFields flattens fields into slog key/value pairs. Keys of one Fields
// map are sorted; a key repeated in a later map replaces the earlier pair.
func mergeFields(fields ...Fields) []interface{} {
	var keys []string
	values := make(map[string]interface{})
	for _, field := range fields {
		for _, k := range slices.Sorted(maps.Keys(field)) {
			if _, seen := values[k]; seen {
				keys = slices.DeleteFunc(keys, func(existing string) bool { return existing == k })
			}
			keys = append(keys, k)
			values[k] = field[k]
		}
	}
	result := make([]interface{}, 0, len(keys)*2)
	for _, k := range keys {
		result = append(result, k, values[k])
	}
	return result
}
