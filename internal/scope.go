package internal

// Scope selects which set of branches is compared against the upstream
// branch. The two scopes are mutually exclusive per invocation.
type Scope string

const (
	ScopeLocal  Scope = "local"
	ScopeRemote Scope = "remote"
)

// UpstreamAuto asks the repository inspector to detect the upstream branch
// instead of using a configured or default name.
const UpstreamAuto = "auto"

// DefaultUpstream returns the branch commits are compared against when no
// override is configured: master for the local scope, origin/master for the
// remote scope.
func (s Scope) DefaultUpstream() string {
	if s == ScopeRemote {
		return "origin/master"
	}
	return "master"
}

// UpstreamFor resolves the effective upstream name for a scope. Precedence:
// explicit override, configured value, built-in default.
func UpstreamFor(scope Scope, override string, cfg *Config) string {
	if override != "" {
		return override
	}
	if cfg != nil {
		switch scope {
		case ScopeRemote:
			if cfg.RemoteUpstream != "" {
				return cfg.RemoteUpstream
			}
		case ScopeLocal:
			if cfg.LocalUpstream != "" {
				return cfg.LocalUpstream
			}
		}
	}
	return scope.DefaultUpstream()
}
