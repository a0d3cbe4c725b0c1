package internal

import (
	"strings"

	"github.com/go-git/go-git/v5/plumbing/format/gitignore"
)

// IgnoreMatcher filters branch names against gitignore-style patterns, so
// configs can say "wip/*" or "*-archive" instead of spelling out names.
type IgnoreMatcher struct {
	patterns []gitignore.Pattern
}

func NewIgnoreMatcher(patterns []string) *IgnoreMatcher {
	m := &IgnoreMatcher{}
	for _, p := range patterns {
		if strings.TrimSpace(p) == "" {
			continue
		}
		m.patterns = append(m.patterns, gitignore.ParsePattern(p, nil))
	}
	return m
}

func (m *IgnoreMatcher) Match(branch string) bool {
	if m == nil || len(m.patterns) == 0 {
		return false
	}

	parts := strings.Split(branch, "/")
	for _, p := range m.patterns {
		if p.Match(parts, false) == gitignore.Exclude {
			return true
		}
	}
	return false
}
