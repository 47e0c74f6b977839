package gitlab

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"
	gl "gitlab.com/gitlab-org/api/client-go"

	"github.com/wahlandcase/relcheck/internal/config"
	"github.com/wahlandcase/relcheck/internal/models"
)

// Source reads commits through the GitLab compare API
type Source struct {
	client  *gl.Client
	project string
	log     zerolog.Logger
}

// Connect creates an authenticated client for a project path such as
// "/group/sub/project.git" and verifies the token
func Connect(ctx context.Context, cfg config.GitLabConfig, projectPath string, log zerolog.Logger) (*Source, error) {
	client, err := gl.NewClient(cfg.PrivateToken,
		gl.WithBaseURL(cfg.URL),
		gl.WithCustomRetryMax(0),
	)
	if err != nil {
		return nil, fmt.Errorf("create gitlab client: %w", err)
	}

	user, _, err := client.Users.CurrentUser(gl.WithContext(ctx))
	if err != nil {
		return nil, fmt.Errorf("gitlab authentication failed: %w", err)
	}

	project := ProjectID(projectPath)
	log.Debug().Str("url", cfg.URL).Str("user", user.Username).Str("project", project).Msg("connected to gitlab")

	return &Source{client: client, project: project, log: log}, nil
}

// ProjectID turns a URL path into the "namespace/project" form the API accepts
func ProjectID(path string) string {
	path = strings.Trim(path, "/")
	return strings.TrimSuffix(path, ".git")
}

// Commits returns the commits GitLab reports between first and last whose
// message mentions keyPrefix
func (s *Source) Commits(ctx context.Context, first, last, keyPrefix string) ([]models.CommitRecord, error) {
	compare, _, err := s.client.Repositories.Compare(s.project, &gl.CompareOptions{
		From: gl.Ptr(first),
		To:   gl.Ptr(last),
	}, gl.WithContext(ctx))
	if err != nil {
		return nil, fmt.Errorf("compare %s...%s in %s: %w", first, last, s.project, err)
	}

	var commits []models.CommitRecord
	for _, c := range compare.Commits {
		message := strings.TrimRight(c.Message, "\n")
		if !strings.Contains(message, keyPrefix) {
			continue
		}

		var committed time.Time
		if c.CommittedDate != nil {
			committed = *c.CommittedDate
		}
		commits = append(commits, models.NewCommitRecord(c.ShortID, committed, message))
	}

	s.log.Debug().Int("returned", len(compare.Commits)).Int("matched", len(commits)).Msg("commit count")
	return commits, nil
}
