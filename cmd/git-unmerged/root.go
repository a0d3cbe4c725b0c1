package main

import (
	"github.com/spf13/cobra"
)

func NewRootCmd(version string, a *app) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "git-unmerged",
		Short: "Show branches with commits not merged upstream",
		Long: `Compare every local or remote branch against an upstream branch and
report the commits that have not been merged yet, separating real unmerged
work from changes that already landed upstream under another commit id.`,
		Version:       version,
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE:          makeScanRunner(a),
	}

	addPersistentFlags(rootCmd)

	if a != nil {
		addSubcommands(rootCmd, a)
	}

	return rootCmd
}

func addPersistentFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().BoolP("remote", "r", false, "Compare remote branches instead of local ones")
	cmd.PersistentFlags().StringP("upstream", "u", "", "Upstream branch to compare against (\"auto\" to detect)")
	cmd.PersistentFlags().BoolP("all", "a", false, "Include equivalent commits in the listing")
	cmd.PersistentFlags().BoolP("quiet", "q", false, "Only print branch names and counts")
	cmd.PersistentFlags().Bool("json", false, "Output in JSON format")
}

func addSubcommands(root *cobra.Command, a *app) {
	root.AddCommand(
		NewWatchCmd(a),
		NewConfigCmd(a),
	)
}
