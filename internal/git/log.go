package git

import (
	"errors"
	"fmt"
	"strings"

	gogit "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/go-git/go-git/v5/plumbing/storer"
	"go.uber.org/zap"

	"github.com/Johannes-Berggren/GitBuilding/internal/models"
)

// DefaultCommitLimit is how many commits a room shows.
const DefaultCommitLimit = 5

// RecentCommits walks the history reachable from branch, newest first by
// committer time, and returns at most limit commits. An unborn branch yields
// an empty slice and no error; any other failure matches ErrCommitLookup.
func (r *Repository) RecentCommits(branch string, limit int) ([]models.Commit, error) {
	if limit <= 0 {
		limit = DefaultCommitLimit
	}

	name := plumbing.NewBranchReferenceName(branch)
	ref, err := r.repo.Reference(name, true)
	if err != nil {
		if errors.Is(err, plumbing.ErrReferenceNotFound) && r.isUnborn(name) {
			return []models.Commit{}, nil
		}
		return nil, fmt.Errorf("%w: branch %s: %w", ErrCommitLookup, branch, err)
	}

	iter, err := r.repo.Log(&gogit.LogOptions{
		From:  ref.Hash(),
		Order: gogit.LogOrderCommitterTime,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: branch %s: %w", ErrCommitLookup, branch, err)
	}
	defer iter.Close()

	commits := make([]models.Commit, 0, limit)
	err = iter.ForEach(func(c *object.Commit) error {
		commits = append(commits, toCommit(c))
		if len(commits) >= limit {
			return storer.ErrStop
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("%w: branch %s: %w", ErrCommitLookup, branch, err)
	}

	r.log.Debug("loaded commits",
		zap.String("branch", branch),
		zap.Int("count", len(commits)),
		zap.Int("limit", limit))
	return commits, nil
}

func toCommit(c *object.Commit) models.Commit {
	hash := c.Hash.String()
	return models.Commit{
		Hash:      hash,
		ShortHash: hash[:7],
		Author:    c.Author.Name,
		Date:      c.Committer.When,
		Summary:   summary(c.Message),
	}
}

// summary returns the first line of a commit message.
func summary(message string) string {
	message = strings.TrimSpace(message)
	if idx := strings.IndexByte(message, '\n'); idx >= 0 {
		message = message[:idx]
	}
	return strings.TrimSpace(message)
}
