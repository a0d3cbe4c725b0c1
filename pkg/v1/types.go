package v1

// Commit is one commit a branch carries relative to the upstream.
type Commit struct {
	ID             string `json:"id"`
	Subject        string `json:"subject"`
	Classification string `json:"classification"`
}

// Branch is a branch together with its pending commits.
type Branch struct {
	Name       string   `json:"name"`
	Unmerged   int      `json:"unmerged"`
	Equivalent int      `json:"equivalent"`
	Commits    []Commit `json:"commits"`
}
