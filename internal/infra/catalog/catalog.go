// Package catalog provides the issue catalog: an embedded default dataset and
// a loader for JSON, YAML and TOML catalog files.
package catalog

import (
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/pelletier/go-toml/v2"
	"github.com/runoshun/oss-curator/internal/domain"
	"gopkg.in/yaml.v3"
)

//go:embed data/issues.json
var builtinData []byte

// Supported catalog formats.
const (
	FormatJSON = "json"
	FormatYAML = "yaml"
	FormatTOML = "toml"
)

// document is the on-disk catalog layout.
type document struct {
	Issues      []domain.Issue      `json:"issues" yaml:"issues" toml:"issues" validate:"dive"`
	Collections []domain.Collection `json:"collections" yaml:"collections" toml:"collections" validate:"dive"`
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// Ensure Provider implements domain.CatalogProvider.
var _ domain.CatalogProvider = (*Provider)(nil)

// Provider loads the catalog from a file, or the embedded dataset when the
// path is empty.
type Provider struct {
	path string
}

// NewProvider creates a Provider for path.
func NewProvider(path string) *Provider {
	return &Provider{path: path}
}

// Load reads, validates and indexes the catalog.
func (p *Provider) Load() (*domain.Catalog, error) {
	if p.path == "" {
		return Builtin()
	}
	format, err := FormatFor(p.path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(p.path)
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}
	return Parse(data, format)
}

// Builtin returns the embedded catalog.
func Builtin() (*domain.Catalog, error) {
	return Parse(builtinData, FormatJSON)
}

// FormatFor picks the format from a file extension.
func FormatFor(path string) (string, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".toml":
		return FormatTOML, nil
	}
	return "", fmt.Errorf("%w: %s", domain.ErrCatalogFormat, path)
}

// Parse decodes a catalog document in the given format.
func Parse(data []byte, format string) (*domain.Catalog, error) {
	var doc document
	var err error
	switch format {
	case FormatJSON:
		err = json.Unmarshal(data, &doc)
	case FormatYAML:
		err = yaml.Unmarshal(data, &doc)
	case FormatTOML:
		err = toml.Unmarshal(data, &doc)
	default:
		return nil, fmt.Errorf("%w: %s", domain.ErrCatalogFormat, format)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: parse %s: %v", domain.ErrInvalidCatalog, format, err)
	}

	if err := validate.Struct(doc); err != nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidCatalog, describe(err))
	}

	return domain.NewCatalog(doc.Issues, doc.Collections)
}

// describe flattens validator errors into one line.
func describe(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err.Error()
	}
	parts := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		parts = append(parts, fmt.Sprintf("%s failed %q", fe.Namespace(), fe.Tag()))
	}
	return strings.Join(parts, "; ")
}
