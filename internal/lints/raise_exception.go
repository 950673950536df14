package lints

import (
	"fmt"

	"github.com/rubylint/rubylint/internal/rubyast"
	tt "github.com/rubylint/rubylint/internal/types"
)

const (
	// RaiseExceptionRuleName identifies the raise-exception rule.
	RaiseExceptionRuleName = "raise-exception"

	msgTemplateRaiseException = "Raise %s instead of Exception."
)

// DetectRaiseException reports `raise Exception` and
// `raise Exception.new(...)` (also via the `fail` alias). Raising the
// root Exception class escapes bare rescue handlers, which only match
// StandardError and its subclasses. The fix substitutes the preferred
// base class for the configured style.
func DetectRaiseException(filename string, file *rubyast.File, style EnforcedStyle, severity tt.Severity) ([]tt.Issue, error) {
	var issues []tt.Issue

	rubyast.Inspect(file, func(n rubyast.Node) bool {
		send, ok := n.(*rubyast.SendNode)
		if !ok || send.Receiver != nil {
			return true
		}
		if send.Method != "raise" && send.Method != "fail" {
			return true
		}
		if len(send.Args) == 0 {
			return true
		}

		candidate := raisedExceptionConst(send.Args[0])
		if candidate == nil {
			return true
		}

		preferred := style.PreferredBase()
		span := candidate.Span()
		issues = append(issues, tt.Issue{
			Rule:     RaiseExceptionRuleName,
			Category: "lint",
			Filename: filename,
			Message:  fmt.Sprintf(msgTemplateRaiseException, preferred),
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
		// the raised expression was handled; don't descend into it again
		return false
	})

	return issues, nil
}

// raisedExceptionConst returns the Exception constant when the raised
// value is `Exception` or `Exception.new(...)`.
func raisedExceptionConst(arg rubyast.Node) *rubyast.ConstNode {
	switch a := arg.(type) {
	case *rubyast.ConstNode:
		if a.Bare() && a.SimpleName() == "Exception" {
			return a
		}
	case *rubyast.SendNode:
		if a.Method != "new" {
			return nil
		}
		recv, ok := a.Receiver.(*rubyast.ConstNode)
		if ok && recv.Bare() && recv.SimpleName() == "Exception" {
			return recv
		}
	}
	return nil
}
