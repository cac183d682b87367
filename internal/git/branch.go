package git

import (
	"errors"
	"fmt"

	"github.com/go-git/go-git/v5/plumbing"
	"go.uber.org/zap"

	"github.com/Johannes-Berggren/GitBuilding/internal/models"
)

// Branches returns the local branches in the order the reference storage
// yields them. When HEAD points at a branch with no commits yet, that branch
// is appended with Unborn set.
func (r *Repository) Branches() ([]models.Branch, error) {
	head, err := r.headTarget()
	if err != nil {
		return nil, err
	}

	iter, err := r.repo.Branches()
	if err != nil {
		return nil, fmt.Errorf("failed to list branches: %w", err)
	}
	defer iter.Close()

	branches := []models.Branch{}
	seenHead := false
	err = iter.ForEach(func(ref *plumbing.Reference) error {
		branch := models.Branch{
			Name: ref.Name().Short(),
			Hash: ref.Hash().String(),
		}
		if ref.Name() == head {
			branch.IsCurrent = true
			seenHead = true
		}
		branches = append(branches, branch)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list branches: %w", err)
	}

	if head != "" && !seenHead {
		branches = append(branches, models.Branch{
			Name:      head.Short(),
			IsCurrent: true,
			Unborn:    true,
		})
	}

	r.log.Debug("listed branches", zap.Int("count", len(branches)), zap.String("head", head.Short()))
	return branches, nil
}

// ActiveBranch returns the checked-out branch. A detached HEAD is not an
// error: the result is nil.
func (r *Repository) ActiveBranch() (*models.Branch, error) {
	head, err := r.headTarget()
	if err != nil {
		return nil, err
	}
	if head == "" {
		return nil, nil
	}

	branch := &models.Branch{Name: head.Short(), IsCurrent: true}
	ref, err := r.repo.Reference(head, true)
	switch {
	case err == nil:
		branch.Hash = ref.Hash().String()
	case errors.Is(err, plumbing.ErrReferenceNotFound):
		branch.Unborn = true
	default:
		return nil, fmt.Errorf("failed to resolve %s: %w", head.Short(), err)
	}
	return branch, nil
}

// headTarget returns the branch reference HEAD points at, or "" when HEAD
// is detached.
func (r *Repository) headTarget() (plumbing.ReferenceName, error) {
	head, err := r.repo.Storer.Reference(plumbing.HEAD)
	if err != nil {
		return "", fmt.Errorf("failed to read HEAD: %w", err)
	}
	if head.Type() != plumbing.SymbolicReference || !head.Target().IsBranch() {
		return "", nil
	}
	return head.Target(), nil
}

// isUnborn reports whether name is the branch HEAD points at and has no
// commits yet.
func (r *Repository) isUnborn(name plumbing.ReferenceName) bool {
	head, err := r.headTarget()
	if err != nil || head != name {
		return false
	}
	_, err = r.repo.Reference(name, true)
	return errors.Is(err, plumbing.ErrReferenceNotFound)
}
