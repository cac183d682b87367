package git

import (
	"fmt"
	"testing"

	"github.com/go-git/go-git/v5/plumbing"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func summaries(t *testing.T, r *Repository, branch string, limit int) []string {
	t.Helper()
	commits, err := r.RecentCommits(branch, limit)
	require.NoError(t, err)
	out := make([]string, 0, len(commits))
	for _, c := range commits {
		out = append(out, c.Summary)
	}
	return out
}

func TestRecentCommitsFewerThanLimit(t *testing.T) {
	dir, repo := initRepo(t)
	commit(t, dir, repo, "c1", 1)
	commit(t, dir, repo, "c2", 2)
	commit(t, dir, repo, "c3\n\nlonger body that is not shown", 3)

	r, err := Open(dir, nil)
	require.NoError(t, err)

	assert.Equal(t, []string{"c3", "c2", "c1"}, summaries(t, r, "master", DefaultCommitLimit))
}

func TestRecentCommitsTruncatesNewestFirst(t *testing.T) {
	dir, repo := initRepo(t)
	for i := 1; i <= 8; i++ {
		commit(t, dir, repo, fmt.Sprintf("c%d", i), i)
	}

	r, err := Open(dir, nil)
	require.NoError(t, err)

	commits, err := r.RecentCommits("master", 5)
	require.NoError(t, err)
	require.Len(t, commits, 5)
	assert.Equal(t, "c8", commits[0].Summary)
	for _, c := range commits[1:] {
		assert.False(t, c.Date.After(commits[0].Date), "first commit must be the newest")
	}
	for i := 1; i < len(commits); i++ {
		assert.False(t, commits[i].Date.After(commits[i-1].Date))
	}
	assert.Len(t, commits[0].ShortHash, 7)
	assert.Equal(t, "Builder", commits[0].Author)
}

func TestRecentCommitsDefaultLimit(t *testing.T) {
	dir, repo := initRepo(t)
	for i := 1; i <= 7; i++ {
		commit(t, dir, repo, fmt.Sprintf("c%d", i), i)
	}

	r, err := Open(dir, nil)
	require.NoError(t, err)

	assert.Len(t, summaries(t, r, "master", 0), DefaultCommitLimit)
}

func TestRecentCommitsPerBranch(t *testing.T) {
	dir, repo := initRepo(t)
	h1 := commit(t, dir, repo, "c1", 1)
	commit(t, dir, repo, "c2", 2)
	branch(t, repo, "dev", h1)

	r, err := Open(dir, nil)
	require.NoError(t, err)

	assert.Equal(t, []string{"c2", "c1"}, summaries(t, r, "master", 5))
	assert.Equal(t, []string{"c1"}, summaries(t, r, "dev", 5))
}

func TestRecentCommitsUnbornBranch(t *testing.T) {
	dir, repo := initRepo(t)
	pointHead(t, repo, "empty-branch")

	r, err := Open(dir, nil)
	require.NoError(t, err)

	commits, err := r.RecentCommits("empty-branch", 5)
	require.NoError(t, err)
	assert.NotNil(t, commits)
	assert.Empty(t, commits)
}

func TestRecentCommitsMissingBranch(t *testing.T) {
	dir, repo := initRepo(t)
	commit(t, dir, repo, "c1", 1)

	r, err := Open(dir, nil)
	require.NoError(t, err)

	commits, err := r.RecentCommits("deleted-meanwhile", 5)
	assert.Nil(t, commits)
	assert.ErrorIs(t, err, ErrCommitLookup)
	assert.ErrorIs(t, err, plumbing.ErrReferenceNotFound)
}

func TestSummary(t *testing.T) {
	cases := []struct{ in, want string }{
		{"one line", "one line"},
		{"  padded  \n", "padded"},
		{"title\n\nbody", "title"},
		{"\n\nleading blank\nrest", "leading blank"},
		{"", ""},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, summary(tc.in), "summary(%q)", tc.in)
	}
}
