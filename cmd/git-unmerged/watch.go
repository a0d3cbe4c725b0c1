package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"
)

func NewWatchCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Re-run the comparison when branches change",
		Long: `Watch the repository references and print a fresh comparison whenever
a branch is created, moved, or deleted.`,
		RunE: makeWatchRunner(a),
	}

	cmd.Flags().Duration("debounce", 500*time.Millisecond, "Debounce window for batching ref changes")
	return cmd
}

func makeWatchRunner(a *app) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, _ []string) error {
		opts := scanOptionsFromFlags(cmd)
		debounce, _ := cmd.Flags().GetDuration("debounce")

		cwd, err := os.Getwd()
		if err != nil {
			return fmt.Errorf("get working directory: %w", err)
		}

		inspector, err := a.openRepo(cwd)
		if err != nil {
			return err
		}

		watcher, err := fsnotify.NewWatcher()
		if err != nil {
			return fmt.Errorf("create watcher: %w", err)
		}
		defer watcher.Close()

		if err := addRefDirs(watcher, inspector.GitDir()); err != nil {
			return fmt.Errorf("add watch dirs: %w", err)
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Watching %s for ref changes...\n", inspector.GitDir())

		if err := scanAndRender(cmd, a, opts); err != nil {
			return err
		}

		timer := time.NewTimer(0)
		if !timer.Stop() {
			<-timer.C
		}
		pending := false

		for {
			select {
			case <-cmd.Context().Done():
				return nil
			case event, ok := <-watcher.Events:
				if !ok {
					return nil
				}
				if shouldIgnoreEvent(event) {
					continue
				}
				if !pending {
					timer.Reset(debounce)
					pending = true
				}
			case err, ok := <-watcher.Errors:
				if !ok {
					return nil
				}
				fmt.Fprintf(cmd.ErrOrStderr(), "watch error: %v\n", err)
			case <-timer.C:
				pending = false
				if err := scanAndRender(cmd, a, opts); err != nil {
					fmt.Fprintf(cmd.ErrOrStderr(), "scan error: %v\n", err)
				}
			}
		}
	}
}

func scanAndRender(cmd *cobra.Command, a *app, opts scanOptions) error {
	result, err := runScan(cmd.Context(), a, opts)
	if err != nil {
		return err
	}

	if opts.asJSON {
		return outputScanJSON(cmd, result)
	}
	return renderScan(cmd, result, opts.quiet)
}

// addRefDirs watches the pieces of the git directory that change when a
// branch moves: HEAD and packed-refs in the top level, loose refs in the
// refs tree.
func addRefDirs(watcher *fsnotify.Watcher, gitDir string) error {
	if err := watcher.Add(gitDir); err != nil {
		return err
	}

	refsDir := filepath.Join(gitDir, "refs")
	return filepath.Walk(refsDir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return nil
		}
		if info.IsDir() {
			return watcher.Add(path)
		}
		return nil
	})
}

func shouldIgnoreEvent(event fsnotify.Event) bool {
	if strings.HasSuffix(event.Name, ".lock") {
		return true
	}
	if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Remove|fsnotify.Rename) == 0 {
		return true
	}

	base := filepath.Base(event.Name)
	if base == "HEAD" || base == "packed-refs" {
		return false
	}

	sep := string(filepath.Separator)
	return !strings.Contains(event.Name, sep+"refs"+sep)
}
