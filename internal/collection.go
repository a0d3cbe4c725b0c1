package internal

import (
	"context"
	"fmt"
	"sort"
	"strings"
)

// Collection holds every branch in one scope compared against a single
// upstream. It is populated exactly once per Load and never mutated after.
type Collection struct {
	client   GitClient
	scope    Scope
	upstream string
	ignore   *IgnoreMatcher

	branches []*Branch
	loaded   bool
}

// CollectionOption configures a Collection before it is loaded.
type CollectionOption func(*Collection)

// WithIgnoreMatcher drops branches matching the ignore patterns from the
// listing.
func WithIgnoreMatcher(m *IgnoreMatcher) CollectionOption {
	return func(c *Collection) {
		c.ignore = m
	}
}

func NewCollection(client GitClient, scope Scope, upstream string, opts ...CollectionOption) *Collection {
	c := &Collection{
		client:   client,
		scope:    scope,
		upstream: upstream,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Load lists the branches in scope and runs one comparison per branch.
// It succeeds atomically: on any failure the collection stays unloaded and
// no partial results are kept. Calling Load on a loaded collection is a
// no-op.
func (c *Collection) Load(ctx context.Context) error {
	if c.loaded {
		return nil
	}

	listing, err := c.client.BranchListing(ctx, c.scope)
	if err != nil {
		return fmt.Errorf("list %s branches: %w", c.scope, err)
	}

	names := c.normalize(listing)

	branches := make([]*Branch, 0, len(names))
	for _, name := range names {
		out, err := c.client.Cherry(ctx, c.upstream, name)
		if err != nil {
			return fmt.Errorf("compare %s against %s: %w", name, c.upstream, err)
		}
		commits, err := ParseComparison(out)
		if err != nil {
			return fmt.Errorf("compare %s against %s: %w", name, c.upstream, err)
		}
		branches = append(branches, &Branch{Name: name, Commits: commits})
	}

	c.branches = branches
	c.loaded = true
	return nil
}

// normalize turns raw listing output into a sorted slice of plain branch
// names. The current-branch glyph is stripped, the upstream itself and
// alias lines such as "origin/HEAD -> origin/master" are dropped, and any
// ignore patterns are applied.
func (c *Collection) normalize(listing string) []string {
	var names []string
	for _, line := range strings.Split(listing, "\n") {
		name := strings.TrimSpace(line)
		if name == "" {
			continue
		}
		if name[0] == '*' || name[0] == '+' {
			name = strings.TrimSpace(name[1:])
		}
		if name == "" || containsToken(name, c.upstream) {
			continue
		}
		if strings.ContainsAny(name, " \t") {
			continue
		}
		if c.ignore.Match(name) {
			continue
		}
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// containsToken reports whether s, split on whitespace, contains token as a
// whole field. "origin/master" is a token of "origin/HEAD -> origin/master"
// but not of "origin/master-2".
func containsToken(s, token string) bool {
	for _, field := range strings.Fields(s) {
		if field == token {
			return true
		}
	}
	return false
}

// Branches returns every branch in the collection in name order. It is nil
// before Load succeeds.
func (c *Collection) Branches() []*Branch {
	return c.branches
}

// BranchesWithPendingCommits returns the branches that still carry commits
// relative to the upstream, in name order.
func (c *Collection) BranchesWithPendingCommits() []*Branch {
	var pending []*Branch
	for _, b := range c.branches {
		if b.HasPendingCommits() {
			pending = append(pending, b)
		}
	}
	return pending
}

// HasAnyPendingCommits reports whether at least one branch carries commits
// relative to the upstream.
func (c *Collection) HasAnyPendingCommits() bool {
	for _, b := range c.branches {
		if b.HasPendingCommits() {
			return true
		}
	}
	return false
}

// Upstream returns the reference this collection compares against.
func (c *Collection) Upstream() string {
	return c.upstream
}

// Scope returns the branch scope this collection covers.
func (c *Collection) Scope() Scope {
	return c.scope
}

// Loaded reports whether Load has completed successfully.
func (c *Collection) Loaded() bool {
	return c.loaded
}
