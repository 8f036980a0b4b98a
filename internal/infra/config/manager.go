package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
	"github.com/runoshun/oss-curator/internal/domain"
)

const templateHeader = `# oss-curator configuration
#
# [catalog]  path: JSON/YAML/TOML catalog file (empty uses the built-in set)
# [storage]  backend: json, badger, sqlite or memory
# [paging]   widths below breakpoint show narrow rows per page
# [log]      level: debug, info, warn or error

`

// Manager manages the config file.
type Manager struct {
	path string
}

// NewManager creates a Manager for the config file at path.
func NewManager(path string) *Manager {
	return &Manager{path: path}
}

// Info returns information about the config file.
func (m *Manager) Info() domain.ConfigInfo {
	content, err := os.ReadFile(m.path)
	if err != nil {
		return domain.ConfigInfo{Path: m.path}
	}
	return domain.ConfigInfo{
		Path:    m.path,
		Content: string(content),
		Exists:  true,
	}
}

// Init writes cfg as a commented config file. It refuses to overwrite.
func (m *Manager) Init(cfg *domain.Config) error {
	if m.path == "" {
		return fmt.Errorf("config path not available")
	}
	if _, err := os.Stat(m.path); err == nil {
		return domain.ErrConfigExists
	}
	if err := os.MkdirAll(filepath.Dir(m.path), 0o700); err != nil {
		return err
	}

	content, err := RenderTemplate(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(m.path, []byte(content), 0o600)
}

// RenderTemplate renders cfg as TOML with a descriptive header.
func RenderTemplate(cfg *domain.Config) (string, error) {
	body, err := toml.Marshal(cfg)
	if err != nil {
		return "", fmt.Errorf("render config: %w", err)
	}
	return templateHeader + string(body), nil
}
