package main

import (
	"context"
	"os"

	"github.com/4thel00z/git-unmerged/internal"
	"github.com/charmbracelet/fang"
)

// version is set via ldflags at build time
var version = "dev"

func main() {
	ctx := context.Background()

	app := newApp()
	rootCmd := NewRootCmd(version, app)
	if err := fang.Execute(ctx, rootCmd); err != nil {
		os.Exit(1)
	}
}

// app wires the concrete collaborators; tests swap in fakes.
type app struct {
	loadConfig func() (*internal.Config, error)
	openRepo   func(dir string) (*internal.Inspector, error)
	clientFor  func(cfg *internal.Config, dir string) internal.GitClient
}

func newApp() *app {
	return &app{
		loadConfig: func() (*internal.Config, error) {
			path, err := internal.DefaultConfigPath()
			if err != nil {
				return nil, err
			}
			return internal.LoadConfig(path)
		},
		openRepo: internal.OpenRepository,
		clientFor: func(cfg *internal.Config, dir string) internal.GitClient {
			return internal.NewCLIClient(
				internal.WithGitBin(cfg.GitBin),
				internal.WithWorkDir(dir),
			)
		},
	}
}
