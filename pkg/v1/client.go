package v1

import (
	"context"
	"fmt"

	"github.com/4thel00z/git-unmerged/internal"
)

// Client provides programmatic access to branch comparisons.
type Client struct {
	git       internal.GitClient
	describer *internal.DescribeService
	scope     internal.Scope
	upstream  string
	ignore    *internal.IgnoreMatcher
}

// New creates a new Client with the given options.
func New(opts ...Option) (*Client, error) {
	cfg := &clientConfig{
		gitBin: "git",
	}
	for _, opt := range opts {
		opt(cfg)
	}

	scope := internal.ScopeLocal
	if cfg.remote {
		scope = internal.ScopeRemote
	}

	upstream := cfg.upstream
	if upstream == "" {
		upstream = scope.DefaultUpstream()
	}

	clientOpts := []internal.ClientOption{
		internal.WithGitBin(cfg.gitBin),
		internal.WithWorkDir(cfg.workDir),
	}
	if cfg.runner != nil {
		clientOpts = append(clientOpts, internal.WithRunner(cfg.runner))
	}
	git := internal.NewCLIClient(clientOpts...)

	return &Client{
		git:       git,
		describer: internal.NewDescribeService(git),
		scope:     scope,
		upstream:  upstream,
		ignore:    internal.NewIgnoreMatcher(cfg.ignore),
	}, nil
}

// Scan compares every branch in the configured scope against the upstream
// and returns the branches that still carry commits, sorted by name.
func (c *Client) Scan(ctx context.Context) ([]Branch, error) {
	collection, err := c.load(ctx)
	if err != nil {
		return nil, err
	}

	pending := collection.BranchesWithPendingCommits()
	branches := make([]Branch, 0, len(pending))
	for _, b := range pending {
		commits := make([]Commit, 0, len(b.Commits))
		for _, commit := range b.Commits {
			commits = append(commits, Commit{
				ID:             commit.ID,
				Subject:        commit.Subject,
				Classification: string(commit.Classification),
			})
		}

		branches = append(branches, Branch{
			Name:       b.Name,
			Unmerged:   len(b.UnmergedCommits()),
			Equivalent: len(b.EquivalentCommits()),
			Commits:    commits,
		})
	}

	return branches, nil
}

// HasPending reports whether any branch carries commits the upstream lacks.
func (c *Client) HasPending(ctx context.Context) (bool, error) {
	collection, err := c.load(ctx)
	if err != nil {
		return false, err
	}
	return collection.HasAnyPendingCommits(), nil
}

// Describe resolves the one-line log summary for a commit id. Summaries are
// cached on the client.
func (c *Client) Describe(ctx context.Context, id string) (string, error) {
	return c.describer.Describe(ctx, id)
}

func (c *Client) load(ctx context.Context) (*internal.Collection, error) {
	collection := internal.NewCollection(c.git, c.scope, c.upstream,
		internal.WithIgnoreMatcher(c.ignore))
	if err := collection.Load(ctx); err != nil {
		return nil, fmt.Errorf("scan: %w", err)
	}
	return collection, nil
}
