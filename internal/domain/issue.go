// Package domain contains the core types of the issue curator: issues, the
// catalog, filter criteria, the saved set, the saved-issues panel and the
// ports implemented by infrastructure.
package domain

import (
	"fmt"
	"slices"
	"strings"
	"time"
)

// Level is the difficulty tier of an issue.
type Level string

// Issue levels. LevelAll is only meaningful as a filter value.
const (
	LevelAll          Level = "all"
	LevelFirstTimers  Level = "first-timers"
	LevelIntermediate Level = "intermediate"
	LevelAdvanced     Level = "advanced"
)

// AllLevels returns the issue levels in display order.
func AllLevels() []Level {
	return []Level{LevelFirstTimers, LevelIntermediate, LevelAdvanced}
}

// IsValid reports whether l is one of the issue levels.
// LevelAll is not an issue level.
func (l Level) IsValid() bool {
	switch l {
	case LevelFirstTimers, LevelIntermediate, LevelAdvanced:
		return true
	case LevelAll:
		return false
	}
	return false
}

// IsValidFilter reports whether l may be used as a level filter.
func (l Level) IsValidFilter() bool {
	return l == LevelAll || l.IsValid()
}

// ParseLevelFilter parses a level filter value ("all" or an issue level).
func ParseLevelFilter(s string) (Level, error) {
	l := Level(strings.TrimSpace(s))
	if l == "" {
		return LevelAll, nil
	}
	if !l.IsValidFilter() {
		return LevelAll, fmt.Errorf("%w: %q", ErrInvalidLevel, s)
	}
	return l, nil
}

// Issue is a curated unit of contributable work. Issues are never mutated
// after the catalog is loaded.
type Issue struct {
	UpdatedAt      time.Time `json:"updatedAt" yaml:"updatedAt" toml:"updatedAt" validate:"required"`
	ID             string    `json:"id" yaml:"id" toml:"id" validate:"required"`
	Title          string    `json:"title" yaml:"title" toml:"title" validate:"required"`
	Repo           string    `json:"repo" yaml:"repo" toml:"repo" validate:"required,contains=/"`
	Org            string    `json:"org" yaml:"org" toml:"org" validate:"required"`
	Description    string    `json:"description" yaml:"description" toml:"description"`
	Language       string    `json:"language" yaml:"language" toml:"language" validate:"required"`
	Level          Level     `json:"level" yaml:"level" toml:"level" validate:"required,oneof=first-timers intermediate advanced"`
	Link           string    `json:"link" yaml:"link" toml:"link" validate:"required,url"`
	Labels         []string  `json:"labels" yaml:"labels" toml:"labels" validate:"dive,required"`
	Topics         []string  `json:"topics" yaml:"topics" toml:"topics"`
	Stars          int       `json:"stars" yaml:"stars" toml:"stars" validate:"gte=0"`
	GoodFirstIssue bool      `json:"goodFirstIssue" yaml:"goodFirstIssue" toml:"goodFirstIssue"`
}

// HasLabel reports whether the issue carries label.
func (i Issue) HasLabel(label string) bool {
	return slices.Contains(i.Labels, label)
}

// RepoName returns the repository name without its owner.
func (i Issue) RepoName() string {
	if idx := strings.LastIndex(i.Repo, "/"); idx >= 0 {
		return i.Repo[idx+1:]
	}
	return i.Repo
}
