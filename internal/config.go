package internal

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ConfigEnvVar overrides the default config location when set.
const ConfigEnvVar = "GIT_UNMERGED_CONFIG"

type Config struct {
	LocalUpstream  string   `yaml:"local_upstream"`
	RemoteUpstream string   `yaml:"remote_upstream"`
	ShowEquivalent bool     `yaml:"show_equivalent,omitempty"`
	IgnoreBranches []string `yaml:"ignore_branches,omitempty"`
	GitBin         string   `yaml:"git_bin,omitempty"`
}

func DefaultConfig() *Config {
	return &Config{
		LocalUpstream:  "master",
		RemoteUpstream: "origin/master",
		GitBin:         "git",
	}
}

func DefaultConfigPath() (string, error) {
	if path := os.Getenv(ConfigEnvVar); path != "" {
		return path, nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home directory: %w", err)
	}

	return filepath.Join(home, ".config", "git-unmerged", "config.yaml"), nil
}

func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return DefaultConfig(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	if cfg.GitBin == "" {
		cfg.GitBin = "git"
	}

	return cfg, nil
}

func SaveConfig(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}

	return nil
}
