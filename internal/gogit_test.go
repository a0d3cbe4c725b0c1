package internal

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// initTestRepo creates a repository with one commit on master and returns
// its root, the repo handle, and the commit hash.
func initTestRepo(t *testing.T) (string, *git.Repository, plumbing.Hash) {
	t.Helper()
	dir := t.TempDir()

	repo, err := git.PlainInit(dir, false)
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "README"), []byte("hello\n"), 0644))

	wt, err := repo.Worktree()
	require.NoError(t, err)
	_, err = wt.Add("README")
	require.NoError(t, err)

	hash, err := wt.Commit("initial", &git.CommitOptions{
		Author: &object.Signature{Name: "test", Email: "test@local", When: time.Now()},
	})
	require.NoError(t, err)

	return dir, repo, hash
}

func TestFindGitDir(t *testing.T) {
	dir := t.TempDir()
	gitDir := filepath.Join(dir, ".git")
	require.NoError(t, os.MkdirAll(gitDir, 0755))

	found, err := FindGitDir(dir)
	assert.NoError(t, err)
	assert.Equal(t, gitDir, found)

	// walks up from nested directories
	nested := filepath.Join(dir, "a", "b")
	require.NoError(t, os.MkdirAll(nested, 0755))
	found, err = FindGitDir(nested)
	assert.NoError(t, err)
	assert.Equal(t, gitDir, found)

	// non-git dir
	_, err = FindGitDir(t.TempDir())
	assert.True(t, errors.Is(err, ErrNotRepository))
}

func TestOpenRepository(t *testing.T) {
	dir, _, _ := initTestRepo(t)

	nested := filepath.Join(dir, "src")
	require.NoError(t, os.MkdirAll(nested, 0755))

	inspector, err := OpenRepository(nested)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, ".git"), inspector.GitDir())
	assert.Equal(t, dir, inspector.RootDir())
}

func TestOpenRepositoryOutsideRepo(t *testing.T) {
	_, err := OpenRepository(t.TempDir())
	assert.True(t, errors.Is(err, ErrNotRepository))
}

func TestValidateUpstream(t *testing.T) {
	dir, _, _ := initTestRepo(t)

	inspector, err := OpenRepository(dir)
	require.NoError(t, err)

	assert.NoError(t, inspector.ValidateUpstream("master"))

	err = inspector.ValidateUpstream("no-such-branch")
	assert.True(t, errors.Is(err, ErrNoUpstream))
	assert.Contains(t, err.Error(), "no-such-branch")
}

func TestDetectUpstreamLocal(t *testing.T) {
	dir, _, _ := initTestRepo(t)

	inspector, err := OpenRepository(dir)
	require.NoError(t, err)

	upstream, err := inspector.DetectUpstream(ScopeLocal)
	require.NoError(t, err)
	assert.Equal(t, "master", upstream)
}

func TestDetectUpstreamLocalMainFallback(t *testing.T) {
	dir, repo, hash := initTestRepo(t)

	require.NoError(t, repo.Storer.SetReference(
		plumbing.NewHashReference(plumbing.NewBranchReferenceName("main"), hash)))
	require.NoError(t, repo.Storer.RemoveReference(plumbing.NewBranchReferenceName("master")))

	inspector, err := OpenRepository(dir)
	require.NoError(t, err)

	upstream, err := inspector.DetectUpstream(ScopeLocal)
	require.NoError(t, err)
	assert.Equal(t, "main", upstream)
}

func TestDetectUpstreamRemote(t *testing.T) {
	dir, repo, hash := initTestRepo(t)

	require.NoError(t, repo.Storer.SetReference(
		plumbing.NewHashReference(plumbing.NewRemoteReferenceName("origin", "master"), hash)))

	inspector, err := OpenRepository(dir)
	require.NoError(t, err)

	upstream, err := inspector.DetectUpstream(ScopeRemote)
	require.NoError(t, err)
	assert.Equal(t, "origin/master", upstream)
}

func TestDetectUpstreamHonorsOriginHead(t *testing.T) {
	dir, repo, hash := initTestRepo(t)

	require.NoError(t, repo.Storer.SetReference(
		plumbing.NewHashReference(plumbing.NewRemoteReferenceName("origin", "develop"), hash)))
	require.NoError(t, repo.Storer.SetReference(
		plumbing.NewSymbolicReference(
			plumbing.ReferenceName("refs/remotes/origin/HEAD"),
			plumbing.NewRemoteReferenceName("origin", "develop"))))

	inspector, err := OpenRepository(dir)
	require.NoError(t, err)

	upstream, err := inspector.DetectUpstream(ScopeRemote)
	require.NoError(t, err)
	assert.Equal(t, "origin/develop", upstream)
}

func TestDetectUpstreamNoCandidate(t *testing.T) {
	dir := t.TempDir()
	_, err := git.PlainInit(dir, false)
	require.NoError(t, err)

	inspector, err := OpenRepository(dir)
	require.NoError(t, err)

	_, err = inspector.DetectUpstream(ScopeLocal)
	assert.True(t, errors.Is(err, ErrNoUpstream))
}
