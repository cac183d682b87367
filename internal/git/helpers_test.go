package git

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	gogit "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/stretchr/testify/require"
)

var baseTime = time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

// initRepo creates an empty repository in a temp dir. HEAD points at master.
func initRepo(t *testing.T) (string, *gogit.Repository) {
	t.Helper()
	dir := t.TempDir()
	repo, err := gogit.PlainInit(dir, false)
	require.NoError(t, err)
	return dir, repo
}

// commit writes a file and commits it with a committer time offset from
// baseTime by step minutes.
func commit(t *testing.T, dir string, repo *gogit.Repository, message string, step int) plumbing.Hash {
	t.Helper()
	wt, err := repo.Worktree()
	require.NoError(t, err)

	name := fmt.Sprintf("file-%d.txt", step)
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(message), 0o644))
	_, err = wt.Add(name)
	require.NoError(t, err)

	sig := &object.Signature{
		Name:  "Builder",
		Email: "builder@example.com",
		When:  baseTime.Add(time.Duration(step) * time.Minute),
	}
	hash, err := wt.Commit(message, &gogit.CommitOptions{Author: sig, Committer: sig})
	require.NoError(t, err)
	return hash
}

// branch creates refs/heads/name pointing at hash without checking it out.
func branch(t *testing.T, repo *gogit.Repository, name string, hash plumbing.Hash) {
	t.Helper()
	ref := plumbing.NewHashReference(plumbing.NewBranchReferenceName(name), hash)
	require.NoError(t, repo.Storer.SetReference(ref))
}

// pointHead makes HEAD a symbolic reference to the named branch.
func pointHead(t *testing.T, repo *gogit.Repository, name string) {
	t.Helper()
	ref := plumbing.NewSymbolicReference(plumbing.HEAD, plumbing.NewBranchReferenceName(name))
	require.NoError(t, repo.Storer.SetReference(ref))
}
