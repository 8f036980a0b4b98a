package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/runoshun/oss-curator/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuiltin(t *testing.T) {
	cat, err := Builtin()
	require.NoError(t, err)

	assert.Equal(t, 14, cat.Len())
	assert.Equal(t, []string{"C++", "Dart", "Go", "JavaScript", "Python", "Ruby", "Rust", "TypeScript"}, cat.Languages())
	assert.True(t, cat.HasLabel("docs"))
	assert.Len(t, cat.Collections(), 3)

	issue, ok := cat.Get("pandas-554")
	require.True(t, ok)
	assert.Equal(t, "pandas-dev/pandas", issue.Repo)
	assert.Equal(t, domain.LevelIntermediate, issue.Level)
	assert.Equal(t, 2024, issue.UpdatedAt.Year())
}

func TestFormatFor(t *testing.T) {
	tests := []struct {
		path    string
		want    string
		wantErr bool
	}{
		{"issues.json", FormatJSON, false},
		{"issues.YAML", FormatYAML, false},
		{"issues.yml", FormatYAML, false},
		{"issues.toml", FormatTOML, false},
		{"issues.csv", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			got, err := FormatFor(tt.path)
			if tt.wantErr {
				assert.ErrorIs(t, err, domain.ErrCatalogFormat)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

const yamlCatalog = `
issues:
  - id: one
    title: First issue
    repo: acme/widgets
    org: Acme
    description: Fix the widget
    labels: [docs]
    language: Go
    level: first-timers
    link: https://example.com/acme/widgets/1
    stars: 10
    updatedAt: 2024-07-01T10:00:00Z
    goodFirstIssue: true
    topics: [widgets]
collections:
  - id: docs
    title: Docs
    rule: '"docs" in labels'
`

const tomlCatalog = `
[[issues]]
id = "one"
title = "First issue"
repo = "acme/widgets"
org = "Acme"
labels = ["docs"]
language = "Go"
level = "advanced"
link = "https://example.com/acme/widgets/1"
stars = 3
updatedAt = 2024-07-01T10:00:00Z
`

func TestProvider_Load_Formats(t *testing.T) {
	dir := t.TempDir()
	yamlPath := filepath.Join(dir, "issues.yaml")
	tomlPath := filepath.Join(dir, "issues.toml")
	require.NoError(t, os.WriteFile(yamlPath, []byte(yamlCatalog), 0o600))
	require.NoError(t, os.WriteFile(tomlPath, []byte(tomlCatalog), 0o600))

	cat, err := NewProvider(yamlPath).Load()
	require.NoError(t, err)
	issue, ok := cat.Get("one")
	require.True(t, ok)
	assert.True(t, issue.GoodFirstIssue)
	assert.Equal(t, []string{"widgets"}, issue.Topics)
	assert.Equal(t, "docs", cat.Collections()[0].ID)

	cat, err = NewProvider(tomlPath).Load()
	require.NoError(t, err)
	issue, ok = cat.Get("one")
	require.True(t, ok)
	assert.Equal(t, domain.LevelAdvanced, issue.Level)
	assert.Equal(t, 7, int(issue.UpdatedAt.Month()))
}

func TestProvider_Load_EmptyPathUsesBuiltin(t *testing.T) {
	cat, err := NewProvider("").Load()
	require.NoError(t, err)
	assert.Equal(t, 14, cat.Len())
}

func TestProvider_Load_MissingFile(t *testing.T) {
	_, err := NewProvider(filepath.Join(t.TempDir(), "nope.json")).Load()
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestParse_Invalid(t *testing.T) {
	tests := []struct {
		name string
		data string
		want error
	}{
		{
			name: "malformed json",
			data: `{"issues": [`,
			want: domain.ErrInvalidCatalog,
		},
		{
			name: "bad level",
			data: `{"issues": [{"id": "a", "title": "t", "repo": "o/r", "org": "o", "language": "Go",
				"level": "expert", "link": "https://example.com", "updatedAt": "2024-01-01T00:00:00Z"}]}`,
			want: domain.ErrInvalidCatalog,
		},
		{
			name: "negative stars",
			data: `{"issues": [{"id": "a", "title": "t", "repo": "o/r", "org": "o", "language": "Go",
				"level": "advanced", "link": "https://example.com", "stars": -1, "updatedAt": "2024-01-01T00:00:00Z"}]}`,
			want: domain.ErrInvalidCatalog,
		},
		{
			name: "duplicate id",
			data: `{"issues": [
				{"id": "a", "title": "t", "repo": "o/r", "org": "o", "language": "Go", "level": "advanced", "link": "https://example.com", "updatedAt": "2024-01-01T00:00:00Z"},
				{"id": "a", "title": "t", "repo": "o/r", "org": "o", "language": "Go", "level": "advanced", "link": "https://example.com", "updatedAt": "2024-01-01T00:00:00Z"}]}`,
			want: domain.ErrDuplicateIssueID,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.data), FormatJSON)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestParse_EmptyCatalog(t *testing.T) {
	cat, err := Parse([]byte(`{"issues": []}`), FormatJSON)
	require.NoError(t, err)
	assert.Equal(t, 0, cat.Len())
	assert.Empty(t, cat.Languages())
}
