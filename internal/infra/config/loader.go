// Package config provides configuration loading functionality.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/pelletier/go-toml/v2"

	"github.com/runoshun/nearby/internal/domain"
)

// Ensure Loader implements domain.ConfigLoader.
var _ domain.ConfigLoader = (*Loader)(nil)

// Loader loads configuration from TOML files.
type Loader struct {
	dataDir       string // Path to the data directory
	globalConfDir string // Path to global config directory (e.g., ~/.config/nearby)
}

// NewLoader creates a new Loader.
func NewLoader(dataDir string) *Loader {
	return &Loader{
		dataDir:       dataDir,
		globalConfDir: defaultGlobalConfigDir(),
	}
}

// NewLoaderWithGlobalDir creates a new Loader with a custom global config directory.
// This is useful for testing.
func NewLoaderWithGlobalDir(dataDir, globalConfDir string) *Loader {
	return &Loader{
		dataDir:       dataDir,
		globalConfDir: globalConfDir,
	}
}

// defaultGlobalConfigDir returns the default global config directory.
func defaultGlobalConfigDir() string {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		configHome = filepath.Join(home, ".config")
	}
	return domain.GlobalConfigDir(configHome)
}

// Load returns the merged configuration.
// Data directory config takes precedence over global config.
func (l *Loader) Load() (*domain.Config, error) {
	cfg := domain.NewDefaultConfig()

	for _, path := range l.paths() {
		lyr, err := loadFile(path)
		if errors.Is(err, os.ErrNotExist) {
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("load %s: %w", path, err)
		}
		lyr.applyTo(cfg)
	}

	sort.Strings(cfg.Warnings)
	return cfg, nil
}

// LoadGlobal returns only the global configuration, on top of defaults.
func (l *Loader) LoadGlobal() (*domain.Config, error) {
	if l.globalConfDir == "" {
		return nil, os.ErrNotExist
	}
	lyr, err := loadFile(filepath.Join(l.globalConfDir, domain.ConfigFileName))
	if err != nil {
		return nil, err
	}
	cfg := domain.NewDefaultConfig()
	lyr.applyTo(cfg)
	return cfg, nil
}

// paths returns config files in increasing precedence.
func (l *Loader) paths() []string {
	var paths []string
	if l.globalConfDir != "" {
		paths = append(paths, filepath.Join(l.globalConfDir, domain.ConfigFileName))
	}
	if l.dataDir != "" {
		paths = append(paths, domain.DataConfigPath(l.dataDir))
	}
	return paths
}

// layer holds the values set by a single config file.
// nil / empty means "not set" so that lower layers show through.
type layer struct {
	latitude  *float64
	longitude *float64
	enabled   *bool
	backend   string
	namespace string
	repo      string
	level     string
	warnings  []string
}

// loadFile loads a configuration layer from a file.
func loadFile(path string) (*layer, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var raw map[string]any
	if err := toml.Unmarshal(data, &raw); err != nil {
		return nil, err
	}

	return convertRaw(raw), nil
}

// convertRaw converts the raw map to a layer and collects warnings.
func convertRaw(raw map[string]any) *layer {
	res := &layer{}

	for section, value := range raw {
		m, ok := value.(map[string]any)
		if !ok {
			res.warnings = append(res.warnings, fmt.Sprintf("unknown key: %s", section))
			continue
		}
		switch section {
		case "store":
			for k, v := range m {
				switch k {
				case "backend":
					res.backend, _ = v.(string)
				case "namespace":
					res.namespace, _ = v.(string)
				case "repo":
					res.repo, _ = v.(string)
				default:
					res.warnings = append(res.warnings, fmt.Sprintf("unknown key in [store]: %s", k))
				}
			}
		case "location":
			for k, v := range m {
				switch k {
				case "latitude":
					res.latitude = toFloat(v)
				case "longitude":
					res.longitude = toFloat(v)
				case "enabled":
					if b, ok := v.(bool); ok {
						res.enabled = &b
					}
				default:
					res.warnings = append(res.warnings, fmt.Sprintf("unknown key in [location]: %s", k))
				}
			}
		case "log":
			for k, v := range m {
				switch k {
				case "level":
					res.level, _ = v.(string)
				default:
					res.warnings = append(res.warnings, fmt.Sprintf("unknown key in [log]: %s", k))
				}
			}
		default:
			res.warnings = append(res.warnings, fmt.Sprintf("unknown section: %s", section))
		}
	}

	return res
}

// toFloat accepts TOML floats and integers.
func toFloat(v any) *float64 {
	switch n := v.(type) {
	case float64:
		return &n
	case int64:
		f := float64(n)
		return &f
	default:
		return nil
	}
}

// applyTo overrides cfg with every value set in the layer.
func (l *layer) applyTo(cfg *domain.Config) {
	if l.backend != "" {
		cfg.Store.Backend = l.backend
	}
	if l.namespace != "" {
		cfg.Store.Namespace = l.namespace
	}
	if l.repo != "" {
		cfg.Store.Repo = l.repo
	}
	if l.latitude != nil {
		cfg.Location.Latitude = l.latitude
	}
	if l.longitude != nil {
		cfg.Location.Longitude = l.longitude
	}
	if l.enabled != nil {
		cfg.Location.Enabled = *l.enabled
	}
	if l.level != "" {
		cfg.Log.Level = l.level
	}
	cfg.Warnings = append(cfg.Warnings, l.warnings...)
}
