// Package config provides configuration loading functionality.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/caarlos0/env/v11"
	"github.com/pelletier/go-toml/v2"
	"github.com/runoshun/oss-curator/internal/domain"
)

// Ensure Loader implements domain.ConfigLoader.
var _ domain.ConfigLoader = (*Loader)(nil)

// envOverrides are the environment variables applied on top of the file.
type envOverrides struct {
	ConfigPath       string `env:"CURATOR_CONFIG"`
	Catalog          string `env:"CURATOR_CATALOG"`
	FeaturedLanguage string `env:"CURATOR_FEATURED_LANGUAGE"`
	Backend          string `env:"CURATOR_STORAGE_BACKEND"`
	StateDir         string `env:"CURATOR_STATE_DIR"`
	LogLevel         string `env:"CURATOR_LOG_LEVEL"`
}

// Loader loads configuration from a TOML file and the environment.
type Loader struct {
	environ map[string]string
	path    string // Explicit config file; empty resolves CURATOR_CONFIG or the XDG path
}

// NewLoader creates a Loader reading the process environment.
func NewLoader() *Loader {
	return &Loader{environ: env.ToMap(os.Environ())}
}

// NewLoaderWithPath creates a Loader for a specific file and environment.
// This is useful for testing.
func NewLoaderWithPath(path string, environ map[string]string) *Loader {
	if environ == nil {
		environ = map[string]string{}
	}
	return &Loader{path: path, environ: environ}
}

// WithPath sets an explicit config file.
func (l *Loader) WithPath(path string) *Loader {
	l.path = path
	return l
}

// Path returns the config file the loader reads.
func (l *Loader) Path() string {
	if l.path != "" {
		return l.path
	}
	if p := l.environ["CURATOR_CONFIG"]; p != "" {
		return p
	}
	return defaultConfigPath(l.environ)
}

func defaultConfigPath(environ map[string]string) string {
	configHome := environ["XDG_CONFIG_HOME"]
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		configHome = filepath.Join(home, ".config")
	}
	return domain.GlobalConfigPath(configHome)
}

func defaultStateDir(environ map[string]string) string {
	stateHome := environ["XDG_STATE_HOME"]
	if stateHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		stateHome = filepath.Join(home, ".local", "state")
	}
	return domain.StateDir(stateHome)
}

// Load returns the effective configuration: defaults <- file <- environment.
// Invalid values fall back to defaults and are reported in Warnings.
func (l *Loader) Load() (*domain.Config, error) {
	base := domain.NewDefaultConfig()

	if path := l.Path(); path != "" {
		file, err := loadFile(path)
		if err != nil && !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("load %s: %w", path, err)
		}
		if file != nil {
			base = mergeConfigs(base, file)
		}
	}

	var ov envOverrides
	if err := env.ParseWithOptions(&ov, env.Options{Environment: l.environ}); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	applyEnv(base, ov)

	validate(base)
	if base.Storage.Dir == "" {
		base.Storage.Dir = defaultStateDir(l.environ)
	}
	return base, nil
}

// loadFile loads a configuration from a file.
func loadFile(path string) (*domain.Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var raw map[string]any
	if err := toml.Unmarshal(data, &raw); err != nil {
		return nil, err
	}

	return convertRawToDomainConfig(raw), nil
}

// convertRawToDomainConfig converts the raw map to domain config and collects warnings.
func convertRawToDomainConfig(raw map[string]any) *domain.Config {
	res := &domain.Config{}
	var warnings []string

	section := func(name string, value any, fn func(k string, v any) bool) {
		m, ok := value.(map[string]any)
		if !ok {
			warnings = append(warnings, fmt.Sprintf("[%s] must be a table", name))
			return
		}
		for k, v := range m {
			if !fn(k, v) {
				warnings = append(warnings, fmt.Sprintf("unknown key in [%s]: %s", name, k))
			}
		}
	}

	for name, value := range raw {
		switch name {
		case "catalog":
			section(name, value, func(k string, v any) bool {
				switch k {
				case "path":
					res.Catalog.Path, _ = v.(string)
				case "featured_language":
					res.Catalog.FeaturedLanguage, _ = v.(string)
				default:
					return false
				}
				return true
			})
		case "storage":
			section(name, value, func(k string, v any) bool {
				switch k {
				case "backend":
					res.Storage.Backend, _ = v.(string)
				case "dir":
					res.Storage.Dir, _ = v.(string)
				case "key":
					res.Storage.Key, _ = v.(string)
				default:
					return false
				}
				return true
			})
		case "paging":
			section(name, value, func(k string, v any) bool {
				n, ok := v.(int64)
				if !ok {
					warnings = append(warnings, fmt.Sprintf("[paging] %s must be an integer", k))
					return true
				}
				switch k {
				case "breakpoint":
					res.Paging.Breakpoint = int(n)
				case "narrow":
					res.Paging.Narrow = int(n)
				case "wide":
					res.Paging.Wide = int(n)
				default:
					return false
				}
				return true
			})
		case "log":
			section(name, value, func(k string, v any) bool {
				switch k {
				case "level":
					res.Log.Level, _ = v.(string)
				default:
					return false
				}
				return true
			})
		default:
			warnings = append(warnings, fmt.Sprintf("unknown section: %s", name))
		}
	}

	sort.Strings(warnings)
	res.Warnings = warnings
	return res
}

// mergeConfigs merges two configs, with override taking precedence.
func mergeConfigs(base, override *domain.Config) *domain.Config {
	result := *base
	result.Warnings = append(append([]string{}, base.Warnings...), override.Warnings...)

	if override.Catalog.Path != "" {
		result.Catalog.Path = override.Catalog.Path
	}
	if override.Catalog.FeaturedLanguage != "" {
		result.Catalog.FeaturedLanguage = override.Catalog.FeaturedLanguage
	}
	if override.Storage.Backend != "" {
		result.Storage.Backend = override.Storage.Backend
	}
	if override.Storage.Dir != "" {
		result.Storage.Dir = override.Storage.Dir
	}
	if override.Storage.Key != "" {
		result.Storage.Key = override.Storage.Key
	}
	if override.Paging.Breakpoint != 0 {
		result.Paging.Breakpoint = override.Paging.Breakpoint
	}
	if override.Paging.Narrow != 0 {
		result.Paging.Narrow = override.Paging.Narrow
	}
	if override.Paging.Wide != 0 {
		result.Paging.Wide = override.Paging.Wide
	}
	if override.Log.Level != "" {
		result.Log.Level = override.Log.Level
	}

	return &result
}

func applyEnv(cfg *domain.Config, ov envOverrides) {
	if ov.Catalog != "" {
		cfg.Catalog.Path = ov.Catalog
	}
	if ov.FeaturedLanguage != "" {
		cfg.Catalog.FeaturedLanguage = ov.FeaturedLanguage
	}
	if ov.Backend != "" {
		cfg.Storage.Backend = ov.Backend
	}
	if ov.StateDir != "" {
		cfg.Storage.Dir = ov.StateDir
	}
	if ov.LogLevel != "" {
		cfg.Log.Level = ov.LogLevel
	}
}

// validate resets invalid values to their defaults with a warning.
func validate(cfg *domain.Config) {
	def := domain.NewDefaultConfig()

	switch cfg.Storage.Backend {
	case domain.BackendJSON, domain.BackendBadger, domain.BackendSQLite, domain.BackendMemory:
	default:
		cfg.Warnings = append(cfg.Warnings, fmt.Sprintf("%v %q, using %s", domain.ErrUnknownBackend, cfg.Storage.Backend, def.Storage.Backend))
		cfg.Storage.Backend = def.Storage.Backend
	}

	switch cfg.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		cfg.Warnings = append(cfg.Warnings, fmt.Sprintf("invalid log level %q, using %s", cfg.Log.Level, def.Log.Level))
		cfg.Log.Level = def.Log.Level
	}

	p := cfg.Paging
	if p.Breakpoint < 0 || p.Narrow < 1 || p.Wide < 1 {
		cfg.Warnings = append(cfg.Warnings, fmt.Sprintf("invalid paging %d/%d/%d, using defaults", p.Breakpoint, p.Narrow, p.Wide))
		cfg.Paging = def.Paging
	}
}
