package internal

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-git/go-billy/v5/osfs"
	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/cache"
	"github.com/go-git/go-git/v5/storage/filesystem"
)

var (
	ErrNotRepository = errors.New("not a git repository (no .git found)")
	ErrNoUpstream    = errors.New("upstream not found")
)

// Inspector answers repository-level questions that do not need the git
// binary: locating the repository, checking that an upstream reference
// exists, and guessing a sensible upstream when none is configured.
type Inspector struct {
	repo    *git.Repository
	gitDir  string
	rootDir string
}

// FindGitDir walks up from dir looking for a .git directory.
func FindGitDir(dir string) (string, error) {
	for {
		gitDir := filepath.Join(dir, ".git")
		info, err := os.Stat(gitDir)
		if err == nil && info.IsDir() {
			return gitDir, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", ErrNotRepository
		}
		dir = parent
	}
}

func OpenRepository(dir string) (*Inspector, error) {
	gitDir, err := FindGitDir(dir)
	if err != nil {
		return nil, err
	}
	rootDir := filepath.Dir(gitDir)

	fs := osfs.New(gitDir)
	storage := filesystem.NewStorage(fs, cache.NewObjectLRUDefault())
	wt := osfs.New(rootDir)

	repo, err := git.Open(storage, wt)
	if err != nil {
		return nil, fmt.Errorf("open repository: %w", err)
	}

	return &Inspector{
		repo:    repo,
		gitDir:  gitDir,
		rootDir: rootDir,
	}, nil
}

func (i *Inspector) GitDir() string {
	return i.gitDir
}

func (i *Inspector) RootDir() string {
	return i.rootDir
}

// ValidateUpstream checks that upstream resolves to a commit.
func (i *Inspector) ValidateUpstream(upstream string) error {
	if _, err := i.repo.ResolveRevision(plumbing.Revision(upstream)); err != nil {
		return fmt.Errorf("%w: %q", ErrNoUpstream, upstream)
	}
	return nil
}

// DetectUpstream picks an upstream for the scope. It prefers the branch
// origin/HEAD points at, then falls back to master and main.
func (i *Inspector) DetectUpstream(scope Scope) (string, error) {
	if name, ok := i.originHead(); ok {
		if candidate, ok := i.scopedCandidate(scope, name); ok {
			return candidate, nil
		}
	}

	for _, name := range []string{"master", "main"} {
		if candidate, ok := i.scopedCandidate(scope, name); ok {
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: no upstream candidate in %s scope", ErrNoUpstream, scope)
}

// originHead returns the short branch name origin/HEAD points at, such as
// "master" for refs/remotes/origin/master.
func (i *Inspector) originHead() (string, bool) {
	ref, err := i.repo.Reference(plumbing.ReferenceName("refs/remotes/origin/HEAD"), false)
	if err != nil || ref.Type() != plumbing.SymbolicReference {
		return "", false
	}

	target := ref.Target().String()
	name := strings.TrimPrefix(target, "refs/remotes/origin/")
	if name == target || name == "" {
		return "", false
	}
	return name, true
}

// scopedCandidate resolves a short branch name to the reference the scope
// would compare against, reporting whether it exists.
func (i *Inspector) scopedCandidate(scope Scope, name string) (string, bool) {
	if scope == ScopeRemote {
		candidate := "origin/" + name
		if _, err := i.repo.Reference(plumbing.NewRemoteReferenceName("origin", name), true); err == nil {
			return candidate, true
		}
		return "", false
	}

	if _, err := i.repo.Reference(plumbing.NewBranchReferenceName(name), true); err == nil {
		return name, true
	}
	return "", false
}
