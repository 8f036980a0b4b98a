package domain

import "path/filepath"

// Directory and file names.
const (
	AppDirName      = "oss-curator"
	ConfigFileName  = "config.toml"
	StateFileName   = "state.json"
	BadgerDirName   = "state.badger"
	SQLiteFileName  = "state.db"
	LogsDirName     = "logs"
	LogFileName     = "curator.log"
	DefaultStateKey = "oss-issue-curator:issue-explorer"
)

// Storage backends.
const (
	BackendJSON   = "json"
	BackendBadger = "badger"
	BackendSQLite = "sqlite"
	BackendMemory = "memory"
)

// Config represents the application configuration.
// Fields are ordered to minimize memory padding.
type Config struct {
	Warnings []string      `toml:"-"`
	Catalog  CatalogConfig `toml:"catalog"`
	Storage  StorageConfig `toml:"storage"`
	Log      LogConfig     `toml:"log"`
	Paging   PagingConfig  `toml:"paging"`
}

// CatalogConfig holds settings from the [catalog] section.
type CatalogConfig struct {
	Path             string `toml:"path,omitempty"`   // Catalog file; empty uses the embedded dataset
	FeaturedLanguage string `toml:"featured_language"` // Language highlighted in statistics
}

// StorageConfig holds settings from the [storage] section.
type StorageConfig struct {
	Backend string `toml:"backend"`       // json, badger, sqlite or memory
	Dir     string `toml:"dir,omitempty"` // State directory; empty uses the XDG state dir
	Key     string `toml:"key"`           // Record key for the explorer snapshot
}

// PagingConfig holds settings from the [paging] section.
type PagingConfig struct {
	Breakpoint int `toml:"breakpoint"`
	Narrow     int `toml:"narrow"`
	Wide       int `toml:"wide"`
}

// LogConfig holds logging settings from the [log] section.
type LogConfig struct {
	Level string `toml:"level"` // Log level: debug, info, warn, error
}

// NewDefaultConfig returns the configuration used when no file exists.
func NewDefaultConfig() *Config {
	p := DefaultPaging()
	return &Config{
		Catalog: CatalogConfig{FeaturedLanguage: "Python"},
		Storage: StorageConfig{Backend: BackendJSON, Key: DefaultStateKey},
		Paging:  PagingConfig{Breakpoint: p.Breakpoint, Narrow: p.Narrow, Wide: p.Wide},
		Log:     LogConfig{Level: "info"},
	}
}

// PageSizing converts the [paging] section.
func (c *Config) PageSizing() Paging {
	return Paging{
		Breakpoint: c.Paging.Breakpoint,
		Narrow:     c.Paging.Narrow,
		Wide:       c.Paging.Wide,
	}
}

// GlobalConfigDir returns the config directory.
// configHome is typically XDG_CONFIG_HOME or ~/.config (resolved by caller).
func GlobalConfigDir(configHome string) string {
	return filepath.Join(configHome, AppDirName)
}

// GlobalConfigPath returns the global config file path.
func GlobalConfigPath(configHome string) string {
	return filepath.Join(GlobalConfigDir(configHome), ConfigFileName)
}

// StateDir returns the state directory.
// stateHome is typically XDG_STATE_HOME or ~/.local/state (resolved by caller).
func StateDir(stateHome string) string {
	return filepath.Join(stateHome, AppDirName)
}

// LogPath returns the log file path inside a state directory.
func LogPath(stateDir string) string {
	return filepath.Join(stateDir, LogsDirName, LogFileName)
}

// ConfigInfo describes a config file on disk.
type ConfigInfo struct {
	Path    string
	Content string
	Exists  bool
}
