package git

import (
	"errors"
	"fmt"

	gogit "github.com/go-git/go-git/v5"
	"go.uber.org/zap"

	"github.com/Johannes-Berggren/GitBuilding/internal/models"
)

// Repository is a read-only view over a git repository.
type Repository struct {
	repo *gogit.Repository
	root string
	log  *zap.Logger
}

// Open locates the repository containing path, walking up through parent
// directories. The returned error matches ErrRepositoryNotFound when there is
// none.
func Open(path string, logger *zap.Logger) (*Repository, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	repo, err := gogit.PlainOpenWithOptions(path, &gogit.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		if errors.Is(err, gogit.ErrRepositoryNotExists) {
			return nil, fmt.Errorf("%w: no repository at or above %s", ErrRepositoryNotFound, path)
		}
		return nil, fmt.Errorf("failed to open repository at %s: %w", path, err)
	}

	root := path
	if wt, err := repo.Worktree(); err == nil {
		root = wt.Filesystem.Root()
	}

	logger.Debug("opened repository", zap.String("path", path), zap.String("root", root))
	return &Repository{repo: repo, root: root, log: logger}, nil
}

// Root returns the worktree root, or the path Open was given for bare
// repositories.
func (r *Repository) Root() string {
	return r.root
}

// ListBranches opens the repository containing path and returns its branches.
func ListBranches(path string) ([]models.Branch, error) {
	r, err := Open(path, nil)
	if err != nil {
		return nil, err
	}
	return r.Branches()
}

// ActiveBranch opens the repository containing path and returns the
// checked-out branch, or nil when HEAD is detached.
func ActiveBranch(path string) (*models.Branch, error) {
	r, err := Open(path, nil)
	if err != nil {
		return nil, err
	}
	return r.ActiveBranch()
}
