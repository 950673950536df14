package lints

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rubylint/rubylint/internal/fixer"
	"github.com/rubylint/rubylint/internal/rubyast"
	tt "github.com/rubylint/rubylint/internal/types"
)

func TestDetectExceptionInheritance(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name            string
		code            string
		style           EnforcedStyle
		expectedIssues  int
		expectedMessage string
		expectedSpan    string
		expectedFix     string
	}{
		{
			name:            "class declaration inheriting Exception",
			code:            "class C < Exception; end",
			expectedIssues:  1,
			expectedMessage: "Inherit from StandardError instead of Exception.",
			expectedSpan:    "Exception",
			expectedFix:     "StandardError",
		},
		{
			name:            "dynamic class construction from Exception",
			code:            "C = Class.new(Exception)",
			expectedIssues:  1,
			expectedMessage: "Inherit from StandardError instead of Exception.",
			expectedSpan:    "Exception",
			expectedFix:     "StandardError",
		},
		{
			name:           "StandardError base is never flagged",
			code:           "class C < StandardError; end",
			expectedIssues: 0,
		},
		{
			name:            "runtime_error style suggests RuntimeError",
			code:            "class C < Exception; end",
			style:           StyleRuntimeError,
			expectedIssues:  1,
			expectedMessage: "Inherit from RuntimeError instead of Exception.",
			expectedSpan:    "Exception",
			expectedFix:     "RuntimeError",
		},
		{
			name:           "unrelated base class",
			code:           "class C < SomeOtherBase; end",
			expectedIssues: 0,
		},
		{
			name:           "extra construction argument disqualifies the match",
			code:           "C = Class.new(Exception, extra_arg)",
			expectedIssues: 0,
		},
		{
			name:           "non-constant construction argument",
			code:           "C = Class.new(exception_class)",
			expectedIssues: 0,
		},
		{
			name:           "construction call without arguments",
			code:           "C = Class.new",
			expectedIssues: 0,
		},
		{
			name:           "qualified construction receiver is not the primitive",
			code:           "C = Foo::Class.new(Exception)",
			expectedIssues: 0,
		},
		{
			name:            "top-level qualified construction receiver",
			code:            "C = ::Class.new(Exception)",
			expectedIssues:  1,
			expectedMessage: "Inherit from StandardError instead of Exception.",
			expectedSpan:    "Exception",
			expectedFix:     "StandardError",
		},
		{
			name:            "qualified superclass path matches on trailing name",
			code:            "class C < Gem::LoadError; end",
			expectedIssues:  1,
			expectedMessage: "Inherit from StandardError instead of LoadError.",
			expectedSpan:    "Gem::LoadError",
			expectedFix:     "StandardError",
		},
		{
			name:           "class without explicit base",
			code:           "class C; end",
			expectedIssues: 0,
		},
		{
			name:            "superclass from other disallowed bases",
			code:            "class Quit < SystemExit; end",
			expectedIssues:  1,
			expectedMessage: "Inherit from StandardError instead of SystemExit.",
			expectedSpan:    "SystemExit",
			expectedFix:     "StandardError",
		},
		{
			name: "nested class declaration",
			code: `module Outer
  class Inner < Interrupt
  end
end`,
			expectedIssues:  1,
			expectedMessage: "Inherit from StandardError instead of Interrupt.",
			expectedSpan:    "Interrupt",
			expectedFix:     "StandardError",
		},
		{
			name:           "computed superclass expression",
			code:           "class C < build_base; end",
			expectedIssues: 0,
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			file, err := rubyast.Parse("test.rb", []byte(tc.code))
			require.NoError(t, err)

			issues, err := DetectExceptionInheritance("test.rb", file, tc.style, tt.SeverityWarning)
			require.NoError(t, err)
			require.Len(t, issues, tc.expectedIssues)

			if tc.expectedIssues == 0 {
				return
			}

			issue := issues[0]
			assert.Equal(t, InheritExceptionRuleName, issue.Rule)
			assert.Equal(t, tc.expectedMessage, issue.Message)
			assert.True(t, issue.Unsafe)

			// the issue must be anchored at the base-class reference, not
			// the enclosing declaration
			span := rubyast.Span{Start: issue.Start, End: issue.End}
			assert.Equal(t, tc.expectedSpan, file.Snippet(span))

			require.NotNil(t, issue.Fix)
			assert.Equal(t, issue.Start.Offset, issue.Fix.StartOffset)
			assert.Equal(t, issue.End.Offset, issue.Fix.EndOffset)
			assert.Equal(t, tc.expectedFix, issue.Fix.NewText)
		})
	}
}

func TestDetectExceptionInheritanceOrdering(t *testing.T) {
	t.Parallel()

	code := `class A < Exception
end

B = Class.new(LoadError)

class C < SignalException
end`

	file, err := rubyast.Parse("test.rb", []byte(code))
	require.NoError(t, err)

	issues, err := DetectExceptionInheritance("test.rb", file, "", tt.SeverityWarning)
	require.NoError(t, err)
	require.Len(t, issues, 3)

	for i := 1; i < len(issues); i++ {
		assert.Less(t, issues[i-1].Start.Offset, issues[i].Start.Offset)
	}
	// edits emitted in one pass never overlap
	for i := 1; i < len(issues); i++ {
		assert.GreaterOrEqual(t, issues[i].Fix.StartOffset, issues[i-1].Fix.EndOffset)
	}
}

func TestExceptionInheritanceFixIsIdempotent(t *testing.T) {
	t.Parallel()

	codes := []string{
		"class C < Exception; end",
		"C = Class.new(Exception)",
		"class C < Gem::LoadError; end",
	}

	for _, code := range codes {
		file, err := rubyast.Parse("test.rb", []byte(code))
		require.NoError(t, err)

		issues, err := DetectExceptionInheritance("test.rb", file, "", tt.SeverityWarning)
		require.NoError(t, err)
		require.Len(t, issues, 1)

		fixed, err := fixer.Apply([]byte(code), issues)
		require.NoError(t, err)

		refixed, err := rubyast.Parse("test.rb", fixed)
		require.NoError(t, err)

		again, err := DetectExceptionInheritance("test.rb", refixed, "", tt.SeverityWarning)
		require.NoError(t, err)
		assert.Empty(t, again, "fixed source must not be flagged again: %s", fixed)
	}
}

func TestIsDisallowedBase(t *testing.T) {
	t.Parallel()

	for name := range disallowedExceptionBases {
		assert.True(t, isDisallowedBase(name))
	}
	assert.False(t, isDisallowedBase("StandardError"))
	assert.False(t, isDisallowedBase("RuntimeError"))
	assert.False(t, isDisallowedBase("ArgumentError"))
	assert.False(t, isDisallowedBase("exception"))
}

func TestEnforcedStyle(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "StandardError", EnforcedStyle("").PreferredBase())
	assert.Equal(t, "StandardError", StyleStandardError.PreferredBase())
	assert.Equal(t, "RuntimeError", StyleRuntimeError.PreferredBase())

	assert.True(t, EnforcedStyle("").Valid())
	assert.True(t, StyleStandardError.Valid())
	assert.True(t, StyleRuntimeError.Valid())
	assert.False(t, EnforcedStyle("always_raise").Valid())
}
