package internal

import (
	"github.com/rubylint/rubylint/internal/lints"
	"github.com/rubylint/rubylint/internal/rubyast"
	tt "github.com/rubylint/rubylint/internal/types"
)

// LintRule defines the interface for all lint rules.
type LintRule interface {
	// Check runs the lint rule on the given parsed file and returns a
	// slice of Issues.
	Check(filename string, file *rubyast.File) ([]tt.Issue, error)

	// Name returns the name of the lint rule.
	Name() string

	// Severity returns the severity the rule reports issues with.
	Severity() tt.Severity

	// SetSeverity overrides the rule's severity.
	SetSeverity(tt.Severity)
}

// StyledRule is implemented by rules that honor the enforced_style
// configuration option.
type StyledRule interface {
	LintRule
	SetEnforcedStyle(style lints.EnforcedStyle) error
}

// InheritExceptionRule flags exception classes derived from Exception or
// its non-StandardError standard library subclasses.
type InheritExceptionRule struct {
	severity tt.Severity
	style    lints.EnforcedStyle
}

func NewInheritExceptionRule() LintRule {
	return &InheritExceptionRule{severity: tt.SeverityWarning}
}

func (r *InheritExceptionRule) Check(filename string, file *rubyast.File) ([]tt.Issue, error) {
	return lints.DetectExceptionInheritance(filename, file, r.style, r.severity)
}

func (r *InheritExceptionRule) Name() string { return lints.InheritExceptionRuleName }

func (r *InheritExceptionRule) Severity() tt.Severity { return r.severity }

func (r *InheritExceptionRule) SetSeverity(s tt.Severity) { r.severity = s }

func (r *InheritExceptionRule) SetEnforcedStyle(style lints.EnforcedStyle) error {
	if !style.Valid() {
		return &UnknownStyleError{Rule: r.Name(), Style: string(style)}
	}
	r.style = style
	return nil
}

// RaiseExceptionRule flags `raise Exception` and `raise Exception.new(...)`.
type RaiseExceptionRule struct {
	severity tt.Severity
	style    lints.EnforcedStyle
}

func NewRaiseExceptionRule() LintRule {
	return &RaiseExceptionRule{severity: tt.SeverityWarning}
}

func (r *RaiseExceptionRule) Check(filename string, file *rubyast.File) ([]tt.Issue, error) {
	return lints.DetectRaiseException(filename, file, r.style, r.severity)
}

func (r *RaiseExceptionRule) Name() string { return lints.RaiseExceptionRuleName }

func (r *RaiseExceptionRule) Severity() tt.Severity { return r.severity }

func (r *RaiseExceptionRule) SetSeverity(s tt.Severity) { r.severity = s }

func (r *RaiseExceptionRule) SetEnforcedStyle(style lints.EnforcedStyle) error {
	if !style.Valid() {
		return &UnknownStyleError{Rule: r.Name(), Style: string(style)}
	}
	r.style = style
	return nil
}

// UnknownStyleError reports an unrecognized enforced_style value. It is
// raised at configuration time, before any node evaluation begins.
type UnknownStyleError struct {
	Rule  string
	Style string
}

func (e *UnknownStyleError) Error() string {
	return "unknown enforced_style " + e.Style + " for rule " + e.Rule
}
