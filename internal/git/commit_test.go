package git

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var start = time.Date(2024, 2, 1, 10, 0, 0, 0, time.FixedZone("CET", 60*60))

// testRepo builds a linear history and returns its path and commit hashes in order
func testRepo(t *testing.T, messages ...string) (string, []plumbing.Hash) {
	t.Helper()

	dir := t.TempDir()
	repo, err := git.PlainInit(dir, false)
	require.NoError(t, err)

	wt, err := repo.Worktree()
	require.NoError(t, err)

	hashes := make([]plumbing.Hash, 0, len(messages))
	for i, msg := range messages {
		sig := &object.Signature{Name: "Dev", Email: "dev@example.com", When: start.Add(time.Duration(i) * time.Hour)}
		hash, err := wt.Commit(msg, &git.CommitOptions{Author: sig, Committer: sig, AllowEmptyCommits: true})
		require.NoError(t, err)
		hashes = append(hashes, hash)
	}
	return dir, hashes
}

func TestLocalSource_Commits(t *testing.T) {
	dir, hashes := testRepo(t,
		"initial import",
		"MYPROJ-1 before the range",
		"MYPROJ-12 fix bug",
		"no reference here",
		"MYPROJ-12 second attempt\n\nAlso touches MYPROJ-13",
	)
	repo, err := git.PlainOpen(dir)
	require.NoError(t, err)
	_, err = repo.CreateTag("v1.0", hashes[1], nil)
	require.NoError(t, err)

	src, err := OpenLocal(dir, zerolog.Nop())
	require.NoError(t, err)

	commits, err := src.Commits(context.Background(), "v1.0", "HEAD", "MYPROJ")
	require.NoError(t, err)

	require.Len(t, commits, 2)
	// newest first, as the log walks from last
	assert.Equal(t, hashes[4].String()[:7], commits[0].ShortID)
	assert.Equal(t, "MYPROJ-12 second attempt\n\nAlso touches MYPROJ-13", commits[0].Message)
	assert.True(t, commits[0].Timestamp.Equal(start.Add(4*time.Hour)))
	assert.Equal(t, hashes[2].String()[:7], commits[1].ShortID)
	assert.Equal(t, "MYPROJ-12 fix bug", commits[1].Message)
}

func TestLocalSource_FollowsMergedBranches(t *testing.T) {
	dir := t.TempDir()
	repo, err := git.PlainInit(dir, false)
	require.NoError(t, err)
	wt, err := repo.Worktree()
	require.NoError(t, err)

	commit := func(msg string, hour int, parents ...plumbing.Hash) plumbing.Hash {
		sig := &object.Signature{Name: "Dev", Email: "dev@example.com", When: start.Add(time.Duration(hour) * time.Hour)}
		hash, err := wt.Commit(msg, &git.CommitOptions{
			Author:            sig,
			Committer:         sig,
			Parents:           parents,
			AllowEmptyCommits: true,
		})
		require.NoError(t, err)
		return hash
	}

	root := commit("MYPROJ-1 initial import", 0)
	base := commit("MYPROJ-2 before the range", 1, root)
	side := commit("MYPROJ-7 side work", 2, root)
	commit("Merge branch 'side'", 3, base, side)

	_, err = repo.CreateTag("v1.0", base, &git.CreateTagOptions{
		Tagger:  &object.Signature{Name: "Dev", Email: "dev@example.com", When: start},
		Message: "v1.0",
	})
	require.NoError(t, err)

	src, err := OpenLocal(dir, zerolog.Nop())
	require.NoError(t, err)

	commits, err := src.Commits(context.Background(), "v1.0", "HEAD", "MYPROJ")
	require.NoError(t, err)

	require.Len(t, commits, 1)
	assert.Equal(t, side.String()[:7], commits[0].ShortID)
	assert.Equal(t, "MYPROJ-7 side work", commits[0].Message)
}

func TestLocalSource_EmptyRange(t *testing.T) {
	dir, _ := testRepo(t, "MYPROJ-1 one", "MYPROJ-2 two")

	src, err := OpenLocal(dir, zerolog.Nop())
	require.NoError(t, err)

	commits, err := src.Commits(context.Background(), "HEAD", "HEAD", "MYPROJ")
	require.NoError(t, err)
	assert.Empty(t, commits)
}

func TestLocalSource_OpensFromSubdirectory(t *testing.T) {
	dir, _ := testRepo(t, "MYPROJ-1 one", "MYPROJ-2 two")
	sub := filepath.Join(dir, "nested")
	require.NoError(t, os.Mkdir(sub, 0o755))

	src, err := OpenLocal(sub, zerolog.Nop())
	require.NoError(t, err)

	commits, err := src.Commits(context.Background(), "HEAD~1", "HEAD", "MYPROJ")
	require.NoError(t, err)
	require.Len(t, commits, 1)
	assert.Equal(t, "MYPROJ-2 two", commits[0].Message)
}

func TestLocalSource_UnknownRevision(t *testing.T) {
	dir, _ := testRepo(t, "MYPROJ-1 one")

	src, err := OpenLocal(dir, zerolog.Nop())
	require.NoError(t, err)

	_, err = src.Commits(context.Background(), "v9.9", "HEAD", "MYPROJ")
	require.Error(t, err)

	var revErr *RevisionNotFoundError
	require.ErrorAs(t, err, &revErr)
	assert.Equal(t, "v9.9", revErr.Revision)
	assert.Equal(t, "revision not found: v9.9", err.Error())
}

func TestOpenLocal_NotARepository(t *testing.T) {
	_, err := OpenLocal(t.TempDir(), zerolog.Nop())
	require.Error(t, err)

	var repoErr *RepositoryError
	require.ErrorAs(t, err, &repoErr)
	assert.ErrorIs(t, err, git.ErrRepositoryNotExists)
}
