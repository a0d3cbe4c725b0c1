package main

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/4thel00z/git-unmerged/internal"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
)

func renderScan(cmd *cobra.Command, res *scanResult, quiet bool) error {
	out := cmd.OutOrStdout()

	headerStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("cyan")).
		Bold(true)

	branchStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("green")).
		Bold(true)

	countStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241"))

	unmergedStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("yellow"))

	equivalentStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("244"))

	collection := res.collection
	pending := collection.BranchesWithPendingCommits()
	if len(pending) == 0 {
		fmt.Fprintf(out, "All %s branches are merged into %s.\n",
			collection.Scope(), collection.Upstream())
		return nil
	}

	header := fmt.Sprintf("Commits missing from %s (%s branches):",
		collection.Upstream(), collection.Scope())
	fmt.Fprintln(out, headerStyle.Render(header))

	for _, branch := range pending {
		unmerged := branch.UnmergedCommits()
		equivalent := branch.EquivalentCommits()

		counts := fmt.Sprintf("(%d unmerged, %d equivalent)", len(unmerged), len(equivalent))
		fmt.Fprintf(out, "\n%s %s\n", branchStyle.Render(branch.Name), countStyle.Render(counts))

		if quiet {
			continue
		}

		shown := unmerged
		if res.showEquivalent {
			shown = branch.Commits
		}

		for _, commit := range shown {
			description, err := res.describer.Describe(cmd.Context(), commit.ID)
			if err != nil {
				return err
			}

			line := fmt.Sprintf("  %s %s", marker(commit), strings.TrimSpace(description))
			if commit.Classification == internal.Equivalent {
				fmt.Fprintln(out, equivalentStyle.Render(line))
			} else {
				fmt.Fprintln(out, unmergedStyle.Render(line))
			}
		}
	}

	return nil
}

func marker(c *internal.Commit) string {
	if c.Classification == internal.Equivalent {
		return "-"
	}
	return "+"
}

func outputScanJSON(cmd *cobra.Command, res *scanResult) error {
	collection := res.collection

	pending := collection.BranchesWithPendingCommits()
	branches := make([]map[string]any, 0, len(pending))
	for _, branch := range pending {
		commits := make([]map[string]any, 0, len(branch.Commits))
		for _, commit := range branch.Commits {
			if commit.Classification == internal.Equivalent && !res.showEquivalent {
				continue
			}
			commits = append(commits, map[string]any{
				"id":             commit.ID,
				"subject":        commit.Subject,
				"classification": string(commit.Classification),
			})
		}

		branches = append(branches, map[string]any{
			"name":       branch.Name,
			"unmerged":   len(branch.UnmergedCommits()),
			"equivalent": len(branch.EquivalentCommits()),
			"commits":    commits,
		})
	}

	data := map[string]any{
		"scope":    string(collection.Scope()),
		"upstream": collection.Upstream(),
		"pending":  collection.HasAnyPendingCommits(),
		"branches": branches,
	}

	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(data)
}
