package lints

import (
	"fmt"

	"github.com/rubylint/rubylint/internal/rubyast"
	tt "github.com/rubylint/rubylint/internal/types"
)

const (
	// InheritExceptionRuleName identifies the inherit-exception rule.
	InheritExceptionRuleName = "inherit-exception"

	msgTemplateInheritException = "Inherit from %s instead of %s."

	noteInheritException = "a bare `rescue` matches StandardError and its subclasses " +
		"but not Exception, so broadening the base class changes which handlers catch the error. " +
		"the fix is only applied with --unsafe."
)

// DetectExceptionInheritance reports exception classes whose base is
// Exception or one of its standard library subclasses outside the
// StandardError hierarchy. Two shapes denote inheritance:
//
//	class C < Exception; end     (declaration form)
//	C = Class.new(Exception)     (construction-call form)
//
// Each match yields one issue anchored at the base-class constant only,
// with a fix that replaces exactly that constant with the preferred base
// class for the configured style.
func DetectExceptionInheritance(filename string, file *rubyast.File, style EnforcedStyle, severity tt.Severity) ([]tt.Issue, error) {
	var issues []tt.Issue

	rubyast.Inspect(file, func(n rubyast.Node) bool {
		candidate := baseClassCandidate(n)
		if candidate == nil {
			return true
		}

		current := candidate.SimpleName()
		if !isDisallowedBase(current) {
			return true
		}

		preferred := style.PreferredBase()
		span := candidate.Span()
		issues = append(issues, tt.Issue{
			Rule:     InheritExceptionRuleName,
			Category: "lint",
			Filename: filename,
			Message:  fmt.Sprintf(msgTemplateInheritException, preferred, current),
			Note:     noteInheritException,
			Severity: severity,
			Start:    span.Start,
			End:      span.End,
			Fix: &tt.TextEdit{
				StartOffset: span.Start.Offset,
				EndOffset:   span.End.Offset,
				NewText:     preferred,
			},
			Unsafe: true,
		})
		return true
	})

	return issues, nil
}

// baseClassCandidate extracts the base-class constant from a node, or
// nil when the node is neither recognized shape. Absence of a match is a
// normal outcome, never an error.
func baseClassCandidate(n rubyast.Node) *rubyast.ConstNode {
	switch node := n.(type) {
	case *rubyast.ClassNode:
		// A qualified path like Foo::LoadError is still a candidate; the
		// classifier compares only the trailing identifier.
		if c, ok := node.Superclass.(*rubyast.ConstNode); ok {
			return c
		}
	case *rubyast.SendNode:
		return classNewArgument(node)
	}
	return nil
}

// classNewArgument matches the construction-call form: the receiver must
// be the bare constant Class (unqualified or top-level-qualified), the
// method must be new, and there must be exactly one argument which is
// itself a bare constant. Any deviation disqualifies the match.
func classNewArgument(send *rubyast.SendNode) *rubyast.ConstNode {
	if send.Method != "new" || len(send.Args) != 1 {
		return nil
	}
	recv, ok := send.Receiver.(*rubyast.ConstNode)
	if !ok || !recv.Bare() || recv.SimpleName() != "Class" {
		return nil
	}
	arg, ok := send.Args[0].(*rubyast.ConstNode)
	if !ok || !arg.Bare() {
		return nil
	}
	return arg
}
