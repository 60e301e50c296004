package domain

import (
	"context"
	"time"
)

// TasksKey is the blob store key holding the serialized task collection.
const TasksKey = "taskList"

// BlobStore is a durable key-value store of opaque string payloads.
type BlobStore interface {
	// Get returns the payload for key. ok is false if the key was never set.
	Get(key string) (value string, ok bool, err error)

	// Set replaces the payload for key.
	Set(key, value string) error
}

// Locator obtains a one-shot location fix.
// Failures are reported as ErrGeolocationUnavailable or ErrGeolocationDenied
// (possibly wrapped); callers must not retry automatically.
type Locator interface {
	Locate(ctx context.Context) (GeoReading, error)
}

// Logger writes categorized log lines.
type Logger interface {
	Debug(category, msg string)
	Info(category, msg string)
	Warn(category, msg string)
	Error(category, msg string)
}

// NopLogger discards everything.
type NopLogger struct{}

// Debug implements Logger.
func (NopLogger) Debug(string, string) {}

// Info implements Logger.
func (NopLogger) Info(string, string) {}

// Warn implements Logger.
func (NopLogger) Warn(string, string) {}

// Error implements Logger.
func (NopLogger) Error(string, string) {}

// ConfigLoader loads configuration from files.
type ConfigLoader interface {
	// Load returns the merged configuration (global + data dir).
	Load() (*Config, error)

	// LoadGlobal returns only the global configuration.
	LoadGlobal() (*Config, error)
}

// Clock provides time operations for testability.
type Clock interface {
	// Now returns the current time.
	Now() time.Time
}

// RealClock implements Clock using the system clock.
type RealClock struct{}

// Now returns the current time.
func (RealClock) Now() time.Time {
	return time.Now()
}

// ConfigInfo describes a config file on disk.
type ConfigInfo struct {
	Path    string // Path to the config file
	Content string // File content (empty if missing)
	Exists  bool   // Whether the file exists
}

// ConfigManager reads and initializes config files.
type ConfigManager interface {
	// GetDataConfigInfo returns the data directory config file.
	GetDataConfigInfo() ConfigInfo

	// GetGlobalConfigInfo returns the global config file.
	GetGlobalConfigInfo() ConfigInfo

	// InitDataConfig writes a config template into the data directory.
	// Returns ErrConfigExists if the file exists and force is false.
	InitDataConfig(cfg *Config, force bool) error

	// InitGlobalConfig writes a config template into the global config directory.
	InitGlobalConfig(cfg *Config, force bool) error
}

// TaskCodec converts the task collection to and from external files.
type TaskCodec interface {
	// Encode renders tasks in the named format. now is used for report headers.
	// Returns ErrUnknownFormat for unsupported formats.
	Encode(tasks []Task, format string, now time.Time) ([]byte, error)

	// Decode parses a list of tasks.
	Decode(data []byte) ([]Task, error)
}
