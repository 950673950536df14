package internal

import (
	"fmt"
	"os"
	"sort"
	"strings"
	"sync"

	"github.com/rubylint/rubylint/internal/lints"
	"github.com/rubylint/rubylint/internal/nodisable"
	"github.com/rubylint/rubylint/internal/rubyast"
	tt "github.com/rubylint/rubylint/internal/types"
)

// Engine manages the linting process.
type Engine struct {
	ignoredRules map[string]bool
	ignoredPaths []string
	rules        map[string]LintRule
}

// NewEngine creates a new lint engine configured with the given rules.
func NewEngine(rules map[string]tt.ConfigRule) (*Engine, error) {
	engine := &Engine{}
	if err := engine.applyRules(rules); err != nil {
		return nil, err
	}
	return engine, nil
}

// Define the ruleConstructor type
type ruleConstructor func() LintRule

// Define the ruleMap type
type ruleMap map[string]ruleConstructor

// Create a map to hold the mappings of rule names to their constructors
var allRuleConstructors = ruleMap{
	lints.InheritExceptionRuleName: NewInheritExceptionRule,
	lints.RaiseExceptionRuleName:   NewRaiseExceptionRule,
}

func (e *Engine) applyRules(rules map[string]tt.ConfigRule) error {
	e.rules = make(map[string]LintRule)
	e.registerDefaultRules()

	for key, cfg := range rules {
		rule, ok := e.rules[key]
		if !ok {
			// Unknown rule, continue to the next one
			continue
		}
		if cfg.Severity == tt.SeverityOff {
			e.IgnoreRule(key)
		}
		rule.SetSeverity(cfg.Severity)

		if cfg.EnforcedStyle != "" {
			styled, ok := rule.(StyledRule)
			if !ok {
				return fmt.Errorf("rule %s does not support enforced_style", key)
			}
			if err := styled.SetEnforcedStyle(lints.EnforcedStyle(cfg.EnforcedStyle)); err != nil {
				return err
			}
		}
	}
	return nil
}

func (e *Engine) registerDefaultRules() {
	for key, newRule := range allRuleConstructors {
		e.rules[key] = newRule()
	}
}

// Run applies all lint rules to the given file and returns a slice of
// Issues sorted by their position in the source.
func (e *Engine) Run(filename string) ([]tt.Issue, error) {
	if e.pathIgnored(filename) {
		return nil, nil
	}

	source, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("error reading file: %w", err)
	}

	return e.run(filename, source)
}

// RunSource applies all lint rules to the given source and returns a
// slice of Issues.
func (e *Engine) RunSource(source []byte) ([]tt.Issue, error) {
	return e.run("", source)
}

func (e *Engine) run(filename string, source []byte) ([]tt.Issue, error) {
	file, err := rubyast.Parse(filename, source)
	if err != nil {
		return nil, fmt.Errorf("error parsing file: %w", err)
	}

	disables := nodisable.ParseComments(file)

	var wg sync.WaitGroup
	var mu sync.Mutex

	var allIssues []tt.Issue
	for _, rule := range e.rules {
		wg.Add(1)
		go func(r LintRule) {
			defer wg.Done()
			if e.ignoredRules[r.Name()] {
				return
			}
			issues, err := r.Check(filename, file)
			if err != nil {
				return
			}

			kept := filterDisabledIssues(disables, issues)

			mu.Lock()
			allIssues = append(allIssues, kept...)
			mu.Unlock()
		}(rule)
	}
	wg.Wait()

	// downstream edit application assumes source order
	sort.Slice(allIssues, func(i, j int) bool {
		if allIssues[i].Start.Offset != allIssues[j].Start.Offset {
			return allIssues[i].Start.Offset < allIssues[j].Start.Offset
		}
		return allIssues[i].Rule < allIssues[j].Rule
	})

	return allIssues, nil
}

// IgnoreRule disables a rule by name.
func (e *Engine) IgnoreRule(rule string) {
	if e.ignoredRules == nil {
		e.ignoredRules = make(map[string]bool)
	}
	e.ignoredRules[rule] = true
}

// IgnorePath excludes a path prefix from linting.
func (e *Engine) IgnorePath(path string) {
	e.ignoredPaths = append(e.ignoredPaths, path)
}

func (e *Engine) pathIgnored(filename string) bool {
	for _, p := range e.ignoredPaths {
		if strings.HasPrefix(filename, p) {
			return true
		}
	}
	return false
}

// filterDisabledIssues drops issues suppressed by rubylint:disable comments.
func filterDisabledIssues(m *nodisable.Manager, issues []tt.Issue) []tt.Issue {
	filtered := make([]tt.Issue, 0, len(issues))
	for _, issue := range issues {
		if !m.IsDisabled(issue.Start.Line, issue.Rule) {
			filtered = append(filtered, issue)
		}
	}
	return filtered
}

// SourceCode stores the content of a source code file.
type SourceCode struct {
	Lines []string
}

// ReadSourceCode reads the content of a file and returns it as a
// `SourceCode` struct.
func ReadSourceCode(filename string) (*SourceCode, error) {
	content, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}
	lines := strings.Split(string(content), "\n")
	return &SourceCode{Lines: lines}, nil
}
