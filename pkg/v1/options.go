package v1

import "context"

// Runner executes a single git invocation. It matches the internal runner
// contract so callers can substitute their own transport.
type Runner interface {
	Run(ctx context.Context, args ...string) (string, error)
}

// Option configures a Client.
type Option func(*clientConfig)

type clientConfig struct {
	remote   bool
	upstream string
	workDir  string
	gitBin   string
	ignore   []string
	runner   Runner
}

// WithRemote compares remote branches instead of local ones.
func WithRemote() Option {
	return func(c *clientConfig) {
		c.remote = true
	}
}

// WithUpstream sets the branch to compare against.
func WithUpstream(upstream string) Option {
	return func(c *clientConfig) {
		c.upstream = upstream
	}
}

// WithWorkDir sets the repository directory git runs in.
func WithWorkDir(dir string) Option {
	return func(c *clientConfig) {
		c.workDir = dir
	}
}

// WithGitBin sets the git executable to invoke.
func WithGitBin(bin string) Option {
	return func(c *clientConfig) {
		c.gitBin = bin
	}
}

// WithIgnorePatterns drops branches matching any of the gitignore-style
// patterns, e.g. "wip/*".
func WithIgnorePatterns(patterns ...string) Option {
	return func(c *clientConfig) {
		c.ignore = patterns
	}
}

// WithRunner substitutes the command runner, primarily for tests.
func WithRunner(r Runner) Option {
	return func(c *clientConfig) {
		c.runner = r
	}
}
