package domain

import (
	"bytes"
	_ "embed"
	"fmt"
	"path/filepath"
	"text/template"
)

//go:embed config_template.toml
var configTemplateContent string

// Config represents the application configuration.
type Config struct {
	Store    StoreConfig    `toml:"store"`
	Location LocationConfig `toml:"location"`
	Log      LogConfig      `toml:"log"`
	Warnings []string       `toml:"-"` // Unknown keys found while loading
}

// Store backends.
const (
	BackendJSON   = "json"
	BackendGit    = "git"
	BackendSQLite = "sqlite"
)

// StoreConfig holds blob store settings from the [store] section.
type StoreConfig struct {
	Backend   string `toml:"backend"`             // json, git or sqlite
	Namespace string `toml:"namespace,omitempty"` // Ref namespace for the git backend
	Repo      string `toml:"repo,omitempty"`      // Repository path for the git backend (default: data dir)
}

// LocationConfig holds the configured position from the [location] section.
type LocationConfig struct {
	Latitude  *float64 `toml:"latitude,omitempty"`
	Longitude *float64 `toml:"longitude,omitempty"`
	Enabled   bool     `toml:"enabled"` // false reports location access as denied
}

// LogConfig holds logging settings from the [log] section.
type LogConfig struct {
	Level string `toml:"level"` // debug, info, warn, error
}

// Default configuration values.
const (
	DefaultBackend   = BackendJSON
	DefaultNamespace = "nearby"
	DefaultLogLevel  = "info"
)

// NewDefaultConfig returns a Config with default values.
func NewDefaultConfig() *Config {
	return &Config{
		Store: StoreConfig{
			Backend:   DefaultBackend,
			Namespace: DefaultNamespace,
		},
		Location: LocationConfig{Enabled: true},
		Log:      LogConfig{Level: DefaultLogLevel},
	}
}

// Directory and file names.
const (
	AppDirName        = "nearby"      // Directory name under XDG config/data homes
	ConfigFileName    = "config.toml" // Config file name
	JSONStoreFileName = "store.json"  // File used by the json backend
	SQLiteFileName    = "store.db"    // File used by the sqlite backend
	LogFileName       = "nearby.log"  // Log file name
)

// GlobalConfigDir returns the global config directory.
// configHome is typically XDG_CONFIG_HOME or ~/.config (resolved by caller).
func GlobalConfigDir(configHome string) string {
	return filepath.Join(configHome, AppDirName)
}

// DataConfigPath returns the config path inside the data directory.
func DataConfigPath(dataDir string) string {
	return filepath.Join(dataDir, ConfigFileName)
}

// JSONStorePath returns the json backend file path.
func JSONStorePath(dataDir string) string {
	return filepath.Join(dataDir, JSONStoreFileName)
}

// SQLiteStorePath returns the sqlite backend database path.
func SQLiteStorePath(dataDir string) string {
	return filepath.Join(dataDir, SQLiteFileName)
}

// LogPath returns the path to the log file.
func LogPath(dataDir string) string {
	return filepath.Join(dataDir, "logs", LogFileName)
}

type templateData struct {
	Backend   string
	Namespace string
	LogLevel  string
}

// RenderConfigTemplate renders a commented config file from cfg.
func RenderConfigTemplate(cfg *Config) string {
	data := templateData{
		Backend:   cfg.Store.Backend,
		Namespace: cfg.Store.Namespace,
		LogLevel:  cfg.Log.Level,
	}

	tmpl, err := template.New("config").Delims("<<", ">>").Parse(configTemplateContent)
	if err != nil {
		// Should never happen with embedded template
		panic(fmt.Sprintf("failed to parse config template: %v", err))
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		panic(fmt.Sprintf("failed to execute config template: %v", err))
	}
	return buf.String()
}
