// Package types holds the data model shared by the lint engine, rules,
// fixer, and formatter.
package types

import (
	"fmt"

	"github.com/rubylint/rubylint/internal/rubyast"
)

// Issue represents a lint issue found in the code base.
type Issue struct {
	Rule     string
	Category string
	Filename string
	Message  string
	Note     string
	Severity Severity
	Start    rubyast.Position
	End      rubyast.Position

	// Fix, when non-nil, is a proposed text replacement the fixer may
	// apply. Unsafe marks fixes that can change program behavior and
	// therefore require explicit opt-in.
	Fix    *TextEdit
	Unsafe bool
}

// TextEdit describes a text replacement at byte offsets, not yet applied.
// The span must cover exactly the offending sub-expression, and edits
// emitted in one pass over a file must not overlap.
type TextEdit struct {
	StartOffset int
	EndOffset   int
	NewText     string
}

// Severity is the reporting level of a rule or issue.
type Severity int

const (
	SeverityError Severity = iota
	SeverityWarning
	SeverityInfo
	SeverityOff
)

func (s Severity) String() string {
	switch s {
	case SeverityError:
		return "ERROR"
	case SeverityWarning:
		return "WARNING"
	case SeverityInfo:
		return "INFO"
	case SeverityOff:
		return "OFF"
	default:
		return "UNKNOWN"
	}
}

// MarshalYAML implements yaml.Marshaler.
func (s Severity) MarshalYAML() (interface{}, error) {
	switch s {
	case SeverityError:
		return "error", nil
	case SeverityWarning:
		return "warning", nil
	case SeverityInfo:
		return "info", nil
	case SeverityOff:
		return "off", nil
	default:
		return nil, fmt.Errorf("unknown severity: %d", s)
	}
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (s *Severity) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var raw string
	if err := unmarshal(&raw); err != nil {
		return err
	}
	switch raw {
	case "error":
		*s = SeverityError
	case "warning":
		*s = SeverityWarning
	case "info":
		*s = SeverityInfo
	case "off":
		*s = SeverityOff
	default:
		return fmt.Errorf("unknown severity: %q", raw)
	}
	return nil
}

// ConfigRule is the per-rule configuration block of the YAML config file.
type ConfigRule struct {
	Severity Severity `yaml:"severity"`
	// EnforcedStyle selects the preferred replacement base class for the
	// exception rules: "standard_error" (default) or "runtime_error".
	EnforcedStyle string `yaml:"enforced_style,omitempty"`
}
