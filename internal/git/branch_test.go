package git

import (
	"os"
	"path/filepath"
	"testing"

	gogit "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func branchNames(t *testing.T, r *Repository) []string {
	t.Helper()
	branches, err := r.Branches()
	require.NoError(t, err)
	names := make([]string, 0, len(branches))
	for _, b := range branches {
		names = append(names, b.Name)
	}
	return names
}

func TestOpenNotARepository(t *testing.T) {
	_, err := Open(t.TempDir(), nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrRepositoryNotFound)

	_, err = ListBranches(t.TempDir())
	assert.ErrorIs(t, err, ErrRepositoryNotFound)
}

func TestOpenFromSubdirectory(t *testing.T) {
	dir, repo := initRepo(t)
	commit(t, dir, repo, "c1", 1)

	sub := filepath.Join(dir, "nested", "deeper")
	require.NoError(t, os.MkdirAll(sub, 0o755))

	r, err := Open(sub, nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"master"}, branchNames(t, r))
}

func TestBranchesMatchRepository(t *testing.T) {
	dir, repo := initRepo(t)
	h := commit(t, dir, repo, "c1", 1)
	branch(t, repo, "dev", h)
	branch(t, repo, "feature/lights", h)

	r, err := Open(dir, nil)
	require.NoError(t, err)

	branches, err := r.Branches()
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"master", "dev", "feature/lights"}, branchNames(t, r))

	active, err := r.ActiveBranch()
	require.NoError(t, err)
	require.NotNil(t, active)
	assert.Equal(t, "master", active.Name)
	assert.Equal(t, h.String(), active.Hash)

	current := 0
	for _, b := range branches {
		if b.IsCurrent {
			current++
			assert.Equal(t, active.Name, b.Name)
		}
		assert.False(t, b.Unborn)
		assert.Equal(t, h.String(), b.Hash)
	}
	assert.Equal(t, 1, current)
}

func TestActiveBranchDetached(t *testing.T) {
	dir, repo := initRepo(t)
	first := commit(t, dir, repo, "c1", 1)
	commit(t, dir, repo, "c2", 2)

	wt, err := repo.Worktree()
	require.NoError(t, err)
	require.NoError(t, wt.Checkout(&gogit.CheckoutOptions{Hash: first}))

	r, err := Open(dir, nil)
	require.NoError(t, err)

	active, err := r.ActiveBranch()
	require.NoError(t, err)
	assert.Nil(t, active)

	branches, err := r.Branches()
	require.NoError(t, err)
	require.Len(t, branches, 1)
	assert.False(t, branches[0].IsCurrent)
}

func TestBranchesUnbornHead(t *testing.T) {
	dir, repo := initRepo(t)
	pointHead(t, repo, "empty-branch")

	r, err := Open(dir, nil)
	require.NoError(t, err)

	branches, err := r.Branches()
	require.NoError(t, err)
	require.Len(t, branches, 1)
	assert.Equal(t, "empty-branch", branches[0].Name)
	assert.True(t, branches[0].IsCurrent)
	assert.True(t, branches[0].Unborn)
	assert.Empty(t, branches[0].Hash)

	active, err := r.ActiveBranch()
	require.NoError(t, err)
	require.NotNil(t, active)
	assert.True(t, active.Unborn)
}

func TestBranchesUnbornHeadAlongsideExisting(t *testing.T) {
	dir, repo := initRepo(t)
	commit(t, dir, repo, "c1", 1)
	pointHead(t, repo, "orphan")

	r, err := Open(dir, nil)
	require.NoError(t, err)

	branches, err := r.Branches()
	require.NoError(t, err)
	require.Len(t, branches, 2)
	assert.Equal(t, "master", branches[0].Name)
	assert.False(t, branches[0].IsCurrent)
	assert.Equal(t, "orphan", branches[1].Name)
	assert.True(t, branches[1].Unborn)
}

func TestPackageLevelHelpers(t *testing.T) {
	dir, repo := initRepo(t)
	h := commit(t, dir, repo, "c1", 1)
	branch(t, repo, "dev", h)

	branches, err := ListBranches(dir)
	require.NoError(t, err)
	assert.Len(t, branches, 2)

	active, err := ActiveBranch(dir)
	require.NoError(t, err)
	require.NotNil(t, active)
	assert.Equal(t, plumbing.NewBranchReferenceName("master").Short(), active.Name)
}
