package app

import (
	"context"
	"net/url"

	"github.com/rs/zerolog"

	"github.com/wahlandcase/relcheck/internal/config"
	"github.com/wahlandcase/relcheck/internal/git"
	"github.com/wahlandcase/relcheck/internal/gitlab"
)

// SourceOpener picks and opens the commit source for a target
type SourceOpener func(ctx context.Context, target string) (CommitSource, error)

// remoteURL parses target as an http(s) URL with a host
func remoteURL(target string) (*url.URL, bool) {
	u, err := url.Parse(target)
	if err != nil || u.Host == "" {
		return nil, false
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, false
	}
	return u, true
}

// IsRemoteTarget returns true if target names a GitLab project rather than a local path
func IsRemoteTarget(target string) bool {
	_, ok := remoteURL(target)
	return ok
}

// NewSourceOpener opens GitLab projects for URLs and local repositories otherwise
func NewSourceOpener(cfg *config.Config, log zerolog.Logger) SourceOpener {
	return func(ctx context.Context, target string) (CommitSource, error) {
		if u, ok := remoteURL(target); ok {
			glCfg, err := cfg.GitLabFor(u.Host)
			if err != nil {
				return nil, &StepError{Step: StepConnectGitLab, Err: err}
			}
			src, err := gitlab.Connect(ctx, glCfg, u.Path, log)
			if err != nil {
				return nil, &StepError{Step: StepConnectGitLab, Err: err}
			}
			return src, nil
		}

		src, err := git.OpenLocal(target, log)
		if err != nil {
			return nil, &StepError{Step: StepOpenRepository, Err: err}
		}
		return src, nil
	}
}
