package internal

import "testing"

func TestScopeDefaultUpstream(t *testing.T) {
	if got := ScopeLocal.DefaultUpstream(); got != "master" {
		t.Errorf("local default = %q, want %q", got, "master")
	}
	if got := ScopeRemote.DefaultUpstream(); got != "origin/master" {
		t.Errorf("remote default = %q, want %q", got, "origin/master")
	}
}

func TestUpstreamFor(t *testing.T) {
	cfg := &Config{LocalUpstream: "trunk", RemoteUpstream: "origin/trunk"}

	tests := []struct {
		name     string
		scope    Scope
		override string
		cfg      *Config
		want     string
	}{
		{"override wins", ScopeLocal, "release-1.0", cfg, "release-1.0"},
		{"config local", ScopeLocal, "", cfg, "trunk"},
		{"config remote", ScopeRemote, "", cfg, "origin/trunk"},
		{"nil config local", ScopeLocal, "", nil, "master"},
		{"nil config remote", ScopeRemote, "", nil, "origin/master"},
		{"empty config falls back", ScopeLocal, "", &Config{}, "master"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := UpstreamFor(tt.scope, tt.override, tt.cfg); got != tt.want {
				t.Errorf("UpstreamFor(%s, %q) = %q, want %q", tt.scope, tt.override, got, tt.want)
			}
		})
	}
}
