// Package room assembles what a branch room shows: the branch's recent
// commits and the visible entries of one directory.
package room

import (
	"errors"
	"fmt"

	"github.com/spf13/afero"
	"go.uber.org/zap"

	"github.com/Johannes-Berggren/GitBuilding/internal/git"
	"github.com/Johannes-Berggren/GitBuilding/internal/models"
)

// ErrFilesystemRead is returned when a directory cannot be listed.
var ErrFilesystemRead = errors.New("filesystem read failed")

// CommitSource walks a branch's history. *git.Repository satisfies it.
type CommitSource interface {
	RecentCommits(branch string, limit int) ([]models.Commit, error)
}

// Content is everything one room visit shows. Each half carries its own
// error so a failure in one does not hide the other.
type Content struct {
	Branch     string
	Dir        string
	Commits    []models.Commit
	CommitsErr error
	Files      []models.DirectoryEntry
	FilesErr   error
}

// Provider produces room content. The listed directory is fixed at
// construction and is the same for every branch.
type Provider struct {
	commits CommitSource
	fs      afero.Fs
	dir     string
	limit   int
	log     *zap.Logger
}

// NewProvider builds a provider listing dir on fs. A nil fs means the OS
// filesystem; limit <= 0 means git.DefaultCommitLimit.
func NewProvider(commits CommitSource, fs afero.Fs, dir string, limit int, logger *zap.Logger) *Provider {
	if fs == nil {
		fs = afero.NewOsFs()
	}
	if limit <= 0 {
		limit = git.DefaultCommitLimit
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Provider{commits: commits, fs: fs, dir: dir, limit: limit, log: logger}
}

// Dir returns the directory every room lists.
func (p *Provider) Dir() string {
	return p.dir
}

// RecentCommits returns up to limit commits reachable from branch, newest
// first. An unborn branch yields an empty slice.
func (p *Provider) RecentCommits(branch string, limit int) ([]models.Commit, error) {
	if p.commits == nil {
		return nil, fmt.Errorf("%w: no repository", git.ErrCommitLookup)
	}
	if limit <= 0 {
		limit = p.limit
	}
	return p.commits.RecentCommits(branch, limit)
}

// ListFiles returns the entries of dir whose names do not start with the
// hidden marker.
func (p *Provider) ListFiles(dir string) ([]models.DirectoryEntry, error) {
	infos, err := afero.ReadDir(p.fs, dir)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrFilesystemRead, dir, err)
	}

	entries := make([]models.DirectoryEntry, 0, len(infos))
	for _, info := range infos {
		if models.IsHidden(info.Name()) {
			continue
		}
		entries = append(entries, models.DirectoryEntry{
			Name:  info.Name(),
			IsDir: info.IsDir(),
			Size:  info.Size(),
		})
	}
	return entries, nil
}

// Load fetches both halves of a room. It never fails as a whole.
func (p *Provider) Load(branch string) Content {
	c := Content{Branch: branch, Dir: p.dir}

	c.Commits, c.CommitsErr = p.RecentCommits(branch, p.limit)
	if c.CommitsErr != nil {
		p.log.Warn("failed to load commits", zap.String("branch", branch), zap.Error(c.CommitsErr))
	}

	c.Files, c.FilesErr = p.ListFiles(p.dir)
	if c.FilesErr != nil {
		p.log.Warn("failed to list files", zap.String("dir", p.dir), zap.Error(c.FilesErr))
	}

	p.log.Info("entered room",
		zap.String("branch", branch),
		zap.Int("commits", len(c.Commits)),
		zap.Int("files", len(c.Files)))
	return c
}
