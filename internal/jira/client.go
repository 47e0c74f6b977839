// Package jira reads projects and release issues from a Jira server.
package jira

import (
	"context"
	"errors"
	"fmt"

	gojira "github.com/andygrunwald/go-jira"
	"github.com/rs/zerolog"

	"github.com/wahlandcase/relcheck/internal/config"
	"github.com/wahlandcase/relcheck/internal/models"
)

const searchPageSize = 100

// ErrProjectNotFound is returned when no project has the requested name
var ErrProjectNotFound = errors.New("project not found")

// Client reads projects and issues from one Jira server
type Client struct {
	api    *gojira.Client
	server string
	log    zerolog.Logger
}

// Connect creates a client with basic auth and checks the credentials
func Connect(ctx context.Context, cfg config.JiraConfig, log zerolog.Logger) (*Client, error) {
	tp := gojira.BasicAuthTransport{
		Username: cfg.Login,
		Password: cfg.Password,
	}

	api, err := gojira.NewClient(tp.Client(), cfg.Server)
	if err != nil {
		return nil, fmt.Errorf("create jira client: %w", err)
	}

	self, _, err := api.User.GetSelfWithContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("jira authentication failed: %w", err)
	}
	log.Debug().Str("server", cfg.Server).Str("user", self.Name).Msg("connected to jira")

	return &Client{api: api, server: cfg.Server, log: log}, nil
}

// Server returns the Jira base URL
func (c *Client) Server() string {
	return c.server
}

// ProjectKey looks up the key of the project with exactly this name
func (c *Client) ProjectKey(ctx context.Context, name string) (string, error) {
	projects, _, err := c.api.Project.GetListWithContext(ctx)
	if err != nil {
		return "", fmt.Errorf("list projects: %w", err)
	}

	for _, p := range *projects {
		if p.Name == name {
			return p.Key, nil
		}
	}
	return "", ErrProjectNotFound
}

// ReleaseJQL builds the query selecting a project's issues for one release
func ReleaseJQL(project, release string) string {
	return fmt.Sprintf("project = %q and fixVersion = %q", project, release)
}

// ReleaseIssues returns every issue whose fix version is release, in search order
func (c *Client) ReleaseIssues(ctx context.Context, project, release string) ([]models.Issue, error) {
	jql := ReleaseJQL(project, release)
	opts := &gojira.SearchOptions{
		MaxResults: searchPageSize,
		Fields:     []string{"status"},
	}

	var issues []models.Issue
	err := c.api.Issue.SearchPagesWithContext(ctx, jql, opts, func(i gojira.Issue) error {
		issues = append(issues, models.Issue{Key: i.Key, Status: statusName(&i)})
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("search %q: %w", jql, err)
	}

	c.log.Debug().Str("jql", jql).Int("count", len(issues)).Msg("issue count")
	return issues, nil
}

// IssueStatus fetches one issue and returns its status name
func (c *Client) IssueStatus(ctx context.Context, key string) (string, error) {
	issue, _, err := c.api.Issue.GetWithContext(ctx, key, &gojira.GetQueryOptions{Fields: "status"})
	if err != nil {
		return "", fmt.Errorf("get issue %s: %w", key, err)
	}
	return statusName(issue), nil
}

func statusName(i *gojira.Issue) string {
	if i.Fields == nil || i.Fields.Status == nil {
		return ""
	}
	return i.Fields.Status.Name
}
