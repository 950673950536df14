// Package fixer applies the text edits proposed by lint issues.
package fixer

import (
	"fmt"
	"os"
	"sort"

	tt "github.com/rubylint/rubylint/internal/types"
)

type Fixer struct {
	DryRun bool
	// ApplyUnsafe enables fixes that can change program behavior, such
	// as broadening an exception base class. They are skipped otherwise.
	ApplyUnsafe bool
}

func New(dryRun, applyUnsafe bool) *Fixer {
	return &Fixer{
		DryRun:      dryRun,
		ApplyUnsafe: applyUnsafe,
	}
}

// Fix applies the fixable issues of a single file in place.
func (f *Fixer) Fix(filename string, issues []tt.Issue) error {
	content, err := os.ReadFile(filename)
	if err != nil {
		return fmt.Errorf("failed to read file: %w", err)
	}

	edits := f.applicable(issues)
	if len(edits) == 0 {
		return nil
	}

	if f.DryRun {
		for _, issue := range edits {
			fmt.Printf("Would fix issue in %s at line %d: %s\n", filename, issue.Start.Line, issue.Message)
		}
		return nil
	}

	fixed, err := Apply(content, edits)
	if err != nil {
		return err
	}

	if err := os.WriteFile(filename, fixed, 0o644); err != nil {
		return fmt.Errorf("failed to write file: %w", err)
	}

	fmt.Printf("Fixed %d issue(s) in %s\n", len(edits), filename)
	return nil
}

// applicable selects the issues whose fix may be applied under the
// current settings.
func (f *Fixer) applicable(issues []tt.Issue) []tt.Issue {
	var out []tt.Issue
	for _, issue := range issues {
		if issue.Fix == nil {
			continue
		}
		if issue.Unsafe && !f.ApplyUnsafe {
			continue
		}
		out = append(out, issue)
	}
	return out
}

// Apply splices the edits of the given issues into content. Edits are
// applied back to front so earlier offsets stay valid; overlapping or
// out-of-range edits are rejected.
func Apply(content []byte, issues []tt.Issue) ([]byte, error) {
	edits := make([]*tt.TextEdit, 0, len(issues))
	for _, issue := range issues {
		if issue.Fix != nil {
			edits = append(edits, issue.Fix)
		}
	}

	sort.Slice(edits, func(i, j int) bool {
		return edits[i].StartOffset > edits[j].StartOffset
	})

	for i, edit := range edits {
		if edit.StartOffset < 0 || edit.EndOffset > len(content) || edit.StartOffset > edit.EndOffset {
			return nil, fmt.Errorf("edit out of range: [%d, %d)", edit.StartOffset, edit.EndOffset)
		}
		if i > 0 && edit.EndOffset > edits[i-1].StartOffset {
			return nil, fmt.Errorf("overlapping edits at offset %d", edit.StartOffset)
		}
	}

	for _, edit := range edits {
		var buf []byte
		buf = append(buf, content[:edit.StartOffset]...)
		buf = append(buf, edit.NewText...)
		buf = append(buf, content[edit.EndOffset:]...)
		content = buf
	}
	return content, nil
}
