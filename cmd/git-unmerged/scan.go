package main

import (
	"context"
	"fmt"
	"os"

	"github.com/4thel00z/git-unmerged/internal"
	"github.com/spf13/cobra"
)

type scanOptions struct {
	remote   bool
	upstream string
	all      bool
	quiet    bool
	asJSON   bool
}

func scanOptionsFromFlags(cmd *cobra.Command) scanOptions {
	remote, _ := cmd.Flags().GetBool("remote")
	upstream, _ := cmd.Flags().GetString("upstream")
	all, _ := cmd.Flags().GetBool("all")
	quiet, _ := cmd.Flags().GetBool("quiet")
	asJSON, _ := cmd.Flags().GetBool("json")

	return scanOptions{
		remote:   remote,
		upstream: upstream,
		all:      all,
		quiet:    quiet,
		asJSON:   asJSON,
	}
}

type scanResult struct {
	collection     *internal.Collection
	describer      *internal.DescribeService
	showEquivalent bool
}

func makeScanRunner(a *app) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, _ []string) error {
		opts := scanOptionsFromFlags(cmd)

		result, err := runScan(cmd.Context(), a, opts)
		if err != nil {
			return err
		}

		if opts.asJSON {
			return outputScanJSON(cmd, result)
		}
		return renderScan(cmd, result, opts.quiet)
	}
}

// runScan resolves configuration and repository context, then loads the
// comparison for the selected scope.
func runScan(ctx context.Context, a *app, opts scanOptions) (*scanResult, error) {
	cfg, err := a.loadConfig()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	scope := internal.ScopeLocal
	if opts.remote {
		scope = internal.ScopeRemote
	}

	cwd, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("get working directory: %w", err)
	}

	inspector, err := a.openRepo(cwd)
	if err != nil {
		return nil, err
	}

	upstream := internal.UpstreamFor(scope, opts.upstream, cfg)
	if upstream == internal.UpstreamAuto {
		upstream, err = inspector.DetectUpstream(scope)
		if err != nil {
			return nil, err
		}
	} else if err := inspector.ValidateUpstream(upstream); err != nil {
		return nil, err
	}

	ignore := internal.NewIgnoreMatcher(cfg.IgnoreBranches)

	client := a.clientFor(cfg, inspector.RootDir())
	scanSvc := internal.NewScanService(func(internal.Scope) (internal.GitClient, error) {
		return client, nil
	})

	collection, err := scanSvc.Scan(ctx, scope, upstream, ignore)
	if err != nil {
		return nil, err
	}

	return &scanResult{
		collection:     collection,
		describer:      internal.NewDescribeService(client),
		showEquivalent: opts.all || cfg.ShowEquivalent,
	}, nil
}
