// Package nodisable implements "# rubylint:disable" suppression
// comments.
//
// A trailing comment suppresses matching rules on its own line only. A
// standalone comment opens a scope that lasts until a matching
// "# rubylint:enable" comment or the end of the file. A directive
// without rule names applies to all rules.
package nodisable

import (
	"math"
	"strings"

	"github.com/rubylint/rubylint/internal/rubyast"
)

const (
	disableDirective = "rubylint:disable"
	enableDirective  = "rubylint:enable"
)

// Manager answers whether a rule is suppressed at a given line.
type Manager struct {
	scopes []scope
}

type scope struct {
	rule  string // empty means all rules
	start int
	end   int
}

// ParseComments scans the file's comments and builds a Manager.
func ParseComments(file *rubyast.File) *Manager {
	m := &Manager{}
	open := make(map[string]int) // rule name ("" for all) -> start line

	for _, c := range file.Comments {
		text := strings.TrimSpace(c.Text)
		switch {
		case strings.HasPrefix(text, disableDirective):
			names := ruleNames(strings.TrimPrefix(text, disableDirective))
			line := c.Loc.Start.Line
			if c.Trailing {
				for _, name := range names {
					m.scopes = append(m.scopes, scope{rule: name, start: line, end: line})
				}
				continue
			}
			for _, name := range names {
				if _, ok := open[name]; !ok {
					open[name] = line
				}
			}
		case strings.HasPrefix(text, enableDirective):
			names := ruleNames(strings.TrimPrefix(text, enableDirective))
			line := c.Loc.Start.Line
			for _, name := range names {
				if name == "" {
					// enable without names closes every open scope
					for rule, start := range open {
						m.scopes = append(m.scopes, scope{rule: rule, start: start, end: line})
						delete(open, rule)
					}
					continue
				}
				if start, ok := open[name]; ok {
					m.scopes = append(m.scopes, scope{rule: name, start: start, end: line})
					delete(open, name)
				}
			}
		}
	}

	// scopes never closed run to the end of the file
	for rule, start := range open {
		m.scopes = append(m.scopes, scope{rule: rule, start: start, end: math.MaxInt})
	}
	return m
}

// IsDisabled reports whether the rule is suppressed at the given line.
func (m *Manager) IsDisabled(line int, rule string) bool {
	if m == nil {
		return false
	}
	for _, s := range m.scopes {
		if line < s.start || line > s.end {
			continue
		}
		if s.rule == "" || s.rule == rule {
			return true
		}
	}
	return false
}

// ruleNames splits the directive argument list. The empty slice element
// "" stands for "all rules".
func ruleNames(raw string) []string {
	fields := strings.FieldsFunc(raw, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t'
	})
	if len(fields) == 0 {
		return []string{""}
	}
	return fields
}
