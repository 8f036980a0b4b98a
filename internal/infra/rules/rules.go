// Package rules evaluates collection rules: boolean expr-lang expressions
// over a single issue.
package rules

import (
	"fmt"
	"sync"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
	"github.com/runoshun/oss-curator/internal/domain"
)

// Evaluator compiles rules once and runs them against issues.
type Evaluator struct {
	programs map[string]*vm.Program
	mu       sync.Mutex
}

// New creates an Evaluator with an empty program cache.
func New() *Evaluator {
	return &Evaluator{programs: make(map[string]*vm.Program)}
}

// env exposes issue fields to expressions. Names follow the catalog file.
func env(issue domain.Issue) map[string]any {
	labels := issue.Labels
	if labels == nil {
		labels = []string{}
	}
	topics := issue.Topics
	if topics == nil {
		topics = []string{}
	}
	return map[string]any{
		"id":             issue.ID,
		"title":          issue.Title,
		"repo":           issue.Repo,
		"org":            issue.Org,
		"description":    issue.Description,
		"labels":         labels,
		"language":       issue.Language,
		"level":          string(issue.Level),
		"stars":          issue.Stars,
		"goodFirstIssue": issue.GoodFirstIssue,
		"topics":         topics,
	}
}

// Compile checks rule and caches its program.
func (e *Evaluator) Compile(rule string) (*vm.Program, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if p, ok := e.programs[rule]; ok {
		return p, nil
	}
	if rule == "" {
		return nil, fmt.Errorf("%w: empty rule", domain.ErrInvalidRule)
	}
	p, err := expr.Compile(rule, expr.Env(env(domain.Issue{})), expr.AsBool())
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidRule, err)
	}
	e.programs[rule] = p
	return p, nil
}

// Match reports whether issue satisfies rule.
func (e *Evaluator) Match(rule string, issue domain.Issue) (bool, error) {
	p, err := e.Compile(rule)
	if err != nil {
		return false, err
	}
	out, err := expr.Run(p, env(issue))
	if err != nil {
		return false, fmt.Errorf("run rule for %s: %w", issue.ID, err)
	}
	ok, _ := out.(bool)
	return ok, nil
}

// Members returns the catalog issues selected by col, in catalog order.
func (e *Evaluator) Members(c *domain.Catalog, col domain.Collection) ([]domain.Issue, error) {
	var out []domain.Issue
	for _, issue := range c.Issues() {
		ok, err := e.Match(col.Rule, issue)
		if err != nil {
			return nil, fmt.Errorf("collection %s: %w", col.ID, err)
		}
		if ok {
			out = append(out, issue)
		}
	}
	return out, nil
}
