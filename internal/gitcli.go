package internal

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"
)

// GitClient is the read-only query surface the comparison engine needs from
// the version-control collaborator.
type GitClient interface {
	// BranchListing returns the raw branch-listing text for a scope,
	// newline-separated, possibly carrying selection glyphs.
	BranchListing(ctx context.Context, scope Scope) (string, error)
	// Cherry returns the raw cherry-equivalence comparison of branch
	// against upstream, one marked commit per line.
	Cherry(ctx context.Context, upstream, branch string) (string, error)
	// CommitSummary returns the formatted log for the half-open range
	// (id's first parent, id], verbatim.
	CommitSummary(ctx context.Context, id string) (string, error)
}

// Runner executes a single git invocation and returns its standard output.
type Runner interface {
	Run(ctx context.Context, args ...string) (string, error)
}

// ExecRunner runs the configured git binary, folding stderr into the
// returned error on failure.
type ExecRunner struct {
	GitBin string
	Dir    string
}

func NewExecRunner(gitBin, dir string) *ExecRunner {
	if strings.TrimSpace(gitBin) == "" {
		gitBin = "git"
	}
	return &ExecRunner{GitBin: gitBin, Dir: dir}
}

func (r *ExecRunner) Run(ctx context.Context, args ...string) (string, error) {
	cmd := exec.CommandContext(ctx, r.GitBin, args...)
	if r.Dir != "" {
		cmd.Dir = r.Dir
	}

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		msg := strings.TrimSpace(stderr.String())
		if msg == "" {
			msg = err.Error()
		}
		return "", fmt.Errorf("git %s: %s", strings.Join(args, " "), msg)
	}

	return stdout.String(), nil
}

// CLIClient implements GitClient over the git command-line interface.
type CLIClient struct {
	runner Runner
}

// ClientOption configures a CLIClient.
type ClientOption func(*clientConfig)

type clientConfig struct {
	runner Runner
	gitBin string
	dir    string
}

// WithRunner substitutes the command runner, primarily for tests.
func WithRunner(r Runner) ClientOption {
	return func(c *clientConfig) {
		c.runner = r
	}
}

// WithGitBin sets the git executable to invoke.
func WithGitBin(bin string) ClientOption {
	return func(c *clientConfig) {
		c.gitBin = bin
	}
}

// WithWorkDir sets the directory git runs in.
func WithWorkDir(dir string) ClientOption {
	return func(c *clientConfig) {
		c.dir = dir
	}
}

func NewCLIClient(opts ...ClientOption) *CLIClient {
	cfg := &clientConfig{}
	for _, opt := range opts {
		opt(cfg)
	}

	runner := cfg.runner
	if runner == nil {
		runner = NewExecRunner(cfg.gitBin, cfg.dir)
	}

	return &CLIClient{runner: runner}
}

func (c *CLIClient) BranchListing(ctx context.Context, scope Scope) (string, error) {
	if scope == ScopeRemote {
		return c.runner.Run(ctx, "branch", "-r")
	}
	return c.runner.Run(ctx, "branch")
}

func (c *CLIClient) Cherry(ctx context.Context, upstream, branch string) (string, error) {
	return c.runner.Run(ctx, "cherry", "-v", upstream, branch)
}

func (c *CLIClient) CommitSummary(ctx context.Context, id string) (string, error) {
	rng := fmt.Sprintf("%s~1..%s", id, id)
	return c.runner.Run(ctx, "log", "--format=%h %ad %an %s", "--date=short", rng)
}
