package git

import "errors"

var (
	// ErrRepositoryNotFound is returned when no repository exists at or above
	// the requested path.
	ErrRepositoryNotFound = errors.New("repository not found")

	// ErrCommitLookup is returned when a branch cannot be walked for commits.
	ErrCommitLookup = errors.New("commit lookup failed")
)
