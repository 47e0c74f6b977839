package git

import (
	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
)

// openRepo opens the repository containing path, walking up to find .git
func openRepo(path string) (*git.Repository, error) {
	repo, err := git.PlainOpenWithOptions(path, &git.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		return nil, &RepositoryError{Path: path, Err: err}
	}
	return repo, nil
}

// resolve turns a branch, tag, hash or revision expression into a commit hash
func resolve(repo *git.Repository, revision string) (plumbing.Hash, error) {
	hash, err := repo.ResolveRevision(plumbing.Revision(revision))
	if err != nil {
		return plumbing.ZeroHash, &RevisionNotFoundError{Revision: revision, Err: err}
	}
	return *hash, nil
}

// RepositoryError indicates the path could not be opened as a repository
type RepositoryError struct {
	Path string
	Err  error
}

func (e *RepositoryError) Error() string {
	return "cannot open git repository at " + e.Path + ": " + e.Err.Error()
}

func (e *RepositoryError) Unwrap() error {
	return e.Err
}

// RevisionNotFoundError indicates a revision could not be resolved
type RevisionNotFoundError struct {
	Revision string
	Err      error
}

func (e *RevisionNotFoundError) Error() string {
	return "revision not found: " + e.Revision
}

func (e *RevisionNotFoundError) Unwrap() error {
	return e.Err
}
