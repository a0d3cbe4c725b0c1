package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/4thel00z/git-unmerged/internal"
)

func executeConfig(t *testing.T, a *app, args ...string) (string, error) {
	t.Helper()
	root := NewRootCmd("test", a)
	root.SetArgs(args)

	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)

	err := root.Execute()
	return out.String(), err
}

func TestConfigShow(t *testing.T) {
	a := &app{
		loadConfig: func() (*internal.Config, error) {
			cfg := internal.DefaultConfig()
			cfg.LocalUpstream = "trunk"
			return cfg, nil
		},
	}

	out, err := executeConfig(t, a, "config", "show")
	if err != nil {
		t.Fatalf("execute: %v", err)
	}

	if !strings.Contains(out, "local_upstream: trunk") {
		t.Errorf("output missing local_upstream: %q", out)
	}
	if !strings.Contains(out, "remote_upstream: origin/master") {
		t.Errorf("output missing remote_upstream: %q", out)
	}
}

func TestConfigShowJSON(t *testing.T) {
	a := &app{
		loadConfig: func() (*internal.Config, error) { return internal.DefaultConfig(), nil },
	}

	out, err := executeConfig(t, a, "config", "show", "--json")
	if err != nil {
		t.Fatalf("execute: %v", err)
	}

	var data map[string]any
	if err := json.Unmarshal([]byte(out), &data); err != nil {
		t.Fatalf("invalid JSON %q: %v", out, err)
	}
	if data["local_upstream"] != "master" {
		t.Errorf("local_upstream = %v, want master", data["local_upstream"])
	}
	if data["git_bin"] != "git" {
		t.Errorf("git_bin = %v, want git", data["git_bin"])
	}
}

func TestConfigInit(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	t.Setenv(internal.ConfigEnvVar, path)

	out, err := executeConfig(t, &app{}, "config", "init")
	if err != nil {
		t.Fatalf("execute: %v", err)
	}
	if !strings.Contains(out, path) {
		t.Errorf("output missing config path: %q", out)
	}

	cfg, err := internal.LoadConfig(path)
	if err != nil {
		t.Fatalf("load written config: %v", err)
	}
	if cfg.LocalUpstream != "master" {
		t.Errorf("written local_upstream = %q", cfg.LocalUpstream)
	}
}

func TestConfigInitRefusesOverwrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	t.Setenv(internal.ConfigEnvVar, path)

	if err := os.WriteFile(path, []byte("local_upstream: keepme\n"), 0644); err != nil {
		t.Fatalf("seed config: %v", err)
	}

	_, err := executeConfig(t, &app{}, "config", "init")
	if err == nil {
		t.Fatal("expected error without --force")
	}

	cfg, err := internal.LoadConfig(path)
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.LocalUpstream != "keepme" {
		t.Errorf("existing config was clobbered: %q", cfg.LocalUpstream)
	}
}

func TestConfigInitForce(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	t.Setenv(internal.ConfigEnvVar, path)

	if err := os.WriteFile(path, []byte("local_upstream: old\n"), 0644); err != nil {
		t.Fatalf("seed config: %v", err)
	}

	_, err := executeConfig(t, &app{}, "config", "init", "--force")
	if err != nil {
		t.Fatalf("execute: %v", err)
	}

	cfg, err := internal.LoadConfig(path)
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.LocalUpstream != "master" {
		t.Errorf("config not overwritten: %q", cfg.LocalUpstream)
	}
}
