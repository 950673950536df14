package lints

// disallowedExceptionBases lists Exception and its standard library
// subclasses that sit outside the StandardError hierarchy. The set is
// fixed and matched by exact trailing identifier; StandardError and its
// descendants are intentionally absent. No runtime hierarchy lookup is
// performed, so an unrelated user-defined class that happens to share a
// listed name is still flagged.
var disallowedExceptionBases = map[string]struct{}{
	"Exception":           {},
	"SystemStackError":    {},
	"NoMemoryError":       {},
	"SecurityError":       {},
	"NotImplementedError": {},
	"LoadError":           {},
	"SyntaxError":         {},
	"ScriptError":         {},
	"Interrupt":           {},
	"SignalException":     {},
	"SystemExit":          {},
}

func isDisallowedBase(name string) bool {
	_, ok := disallowedExceptionBases[name]
	return ok
}

// EnforcedStyle selects the preferred base class the exception rules
// suggest and substitute.
type EnforcedStyle string

const (
	StyleStandardError EnforcedStyle = "standard_error"
	StyleRuntimeError  EnforcedStyle = "runtime_error"
)

// Valid reports whether s is a recognized style. The empty string is
// valid and means the default.
func (s EnforcedStyle) Valid() bool {
	switch s {
	case "", StyleStandardError, StyleRuntimeError:
		return true
	default:
		return false
	}
}

// PreferredBase resolves the replacement class name. The default style
// is standard_error.
func (s EnforcedStyle) PreferredBase() string {
	if s == StyleRuntimeError {
		return "RuntimeError"
	}
	return "StandardError"
}
