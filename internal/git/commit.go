package git

import (
	"context"
	"strings"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/rs/zerolog"

	"github.com/wahlandcase/relcheck/internal/models"
)

const shortIDLength = 7

// LocalSource reads commits from a repository on disk
type LocalSource struct {
	path string
	repo *git.Repository
	log  zerolog.Logger
}

// OpenLocal opens the repository at path (or any parent of it)
func OpenLocal(path string, log zerolog.Logger) (*LocalSource, error) {
	repo, err := openRepo(path)
	if err != nil {
		return nil, err
	}
	return &LocalSource{path: path, repo: repo, log: log}, nil
}

// Commits returns commits in first..last (reachable from last, not from
// first) whose message mentions keyPrefix
func (s *LocalSource) Commits(ctx context.Context, first, last, keyPrefix string) ([]models.CommitRecord, error) {
	baseHash, err := resolve(s.repo, first)
	if err != nil {
		return nil, err
	}
	headHash, err := resolve(s.repo, last)
	if err != nil {
		return nil, err
	}

	s.log.Debug().
		Str("path", s.path).
		Str("first", baseHash.String()).
		Str("last", headHash.String()).
		Msg("revision range")

	// Build set of commits reachable from first
	baseCommits := make(map[plumbing.Hash]bool)
	baseIter, err := s.repo.Log(&git.LogOptions{From: baseHash})
	if err != nil {
		return nil, err
	}
	err = baseIter.ForEach(func(c *object.Commit) error {
		baseCommits[c.Hash] = true
		return ctx.Err()
	})
	if err != nil {
		return nil, err
	}

	headIter, err := s.repo.Log(&git.LogOptions{From: headHash})
	if err != nil {
		return nil, err
	}

	var commits []models.CommitRecord
	scanned := 0
	err = headIter.ForEach(func(c *object.Commit) error {
		// Keep walking past commits reachable from first: merge commits
		// have other parents that may still lead into the range.
		if baseCommits[c.Hash] {
			return nil
		}
		scanned++

		message := strings.TrimRight(c.Message, "\n")
		if !strings.Contains(message, keyPrefix) {
			return nil
		}

		commits = append(commits, models.NewCommitRecord(
			c.Hash.String()[:shortIDLength],
			c.Committer.When,
			message,
		))
		return ctx.Err()
	})
	if err != nil {
		return nil, err
	}

	s.log.Debug().Int("scanned", scanned).Int("matched", len(commits)).Msg("commit count")
	return commits, nil
}
