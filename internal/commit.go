package internal

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrMalformedRecord = errors.New("malformed commit record")
	ErrUnknownMarker   = errors.New("unknown classification marker")
)

// Classification says whether a commit's change has already landed on the
// upstream branch.
type Classification string

const (
	// Unmerged marks a commit whose change is absent from upstream.
	Unmerged Classification = "unmerged"
	// Equivalent marks a commit whose change exists upstream under a
	// different identifier, e.g. after a rebase or cherry-pick.
	Equivalent Classification = "equivalent"
)

// Commit is one line of cherry-equivalence output: a classification marker,
// the commit identifier, and an optional subject.
type Commit struct {
	Raw            string
	ID             string
	Subject        string
	Classification Classification
}

// ParseCommit builds a Commit from a single comparison line. A line with an
// unrecognized leading marker or fewer than two fields is rejected, so every
// constructed Commit carries exactly one of the two classifications.
func ParseCommit(line string) (*Commit, error) {
	fields := strings.Fields(line)
	if len(fields) < 2 {
		return nil, fmt.Errorf("%w: %q", ErrMalformedRecord, line)
	}

	var class Classification
	switch fields[0] {
	case "+":
		class = Unmerged
	case "-":
		class = Equivalent
	default:
		return nil, fmt.Errorf("%w %q: %q", ErrUnknownMarker, fields[0], line)
	}

	return &Commit{
		Raw:            line,
		ID:             fields[1],
		Subject:        strings.Join(fields[2:], " "),
		Classification: class,
	}, nil
}

// ParseComparison splits raw comparison output into commit records, one per
// non-blank line, preserving output order.
func ParseComparison(out string) ([]*Commit, error) {
	var commits []*Commit
	for _, line := range strings.Split(out, "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		commit, err := ParseCommit(line)
		if err != nil {
			return nil, err
		}
		commits = append(commits, commit)
	}
	return commits, nil
}
