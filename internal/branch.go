package internal

// Branch holds one comparison candidate: its name and the classified commits
// it carries relative to the upstream branch, in collaborator output order.
// Both are fixed at load time.
type Branch struct {
	Name    string
	Commits []*Commit
}

// UnmergedCommits returns the commits whose changes are missing upstream.
func (b *Branch) UnmergedCommits() []*Commit {
	return b.filter(Unmerged)
}

// EquivalentCommits returns the commits already applied upstream under a
// different identifier.
func (b *Branch) EquivalentCommits() []*Commit {
	return b.filter(Equivalent)
}

func (b *Branch) filter(class Classification) []*Commit {
	var commits []*Commit
	for _, c := range b.Commits {
		if c.Classification == class {
			commits = append(commits, c)
		}
	}
	return commits
}

// HasPendingCommits reports whether the branch diverges from upstream at all.
func (b *Branch) HasPendingCommits() bool {
	return len(b.Commits) > 0
}
