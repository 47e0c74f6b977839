// Package app runs one release check from tracker query to printed report.
package app

import (
	"context"
	"io"

	"github.com/rs/zerolog"

	"github.com/wahlandcase/relcheck/internal/config"
	"github.com/wahlandcase/relcheck/internal/jira"
	"github.com/wahlandcase/relcheck/internal/models"
	"github.com/wahlandcase/relcheck/internal/reconcile"
	"github.com/wahlandcase/relcheck/internal/report"
	"github.com/wahlandcase/relcheck/internal/ui"
)

// UnknownStatus is shown when an out-of-release issue cannot be fetched
const UnknownStatus = "?"

// Tracker is the issue tracker the release is read from
type Tracker interface {
	ProjectKey(ctx context.Context, name string) (string, error)
	ReleaseIssues(ctx context.Context, project, release string) ([]models.Issue, error)
	IssueStatus(ctx context.Context, key string) (string, error)
	Server() string
}

// CommitSource lists the commits of a revision range that mention keyPrefix
type CommitSource interface {
	Commits(ctx context.Context, first, last, keyPrefix string) ([]models.CommitRecord, error)
}

// App holds the collaborators of a run
type App struct {
	tracker    Tracker
	openSource SourceOpener
	printer    *ui.Printer
	log        zerolog.Logger
}

// New creates an App that prints to out
func New(tracker Tracker, openSource SourceOpener, out io.Writer, log zerolog.Logger) *App {
	return &App{
		tracker:    tracker,
		openSource: openSource,
		printer:    ui.NewPrinter(out),
		log:        log,
	}
}

// Connect logs in to Jira and wires the default commit sources
func Connect(ctx context.Context, cfg *config.Config, out io.Writer, log zerolog.Logger) (*App, error) {
	tracker, err := jira.Connect(ctx, cfg.Jira, log)
	if err != nil {
		return nil, &StepError{Step: StepConnectJira, Err: err}
	}
	return New(tracker, NewSourceOpener(cfg, log), out, log), nil
}

// Run fetches the release issues and the commits, reconciles them and
// prints the report. Nothing is printed if any step fails.
func (a *App) Run(ctx context.Context, opts Options) error {
	key, err := a.tracker.ProjectKey(ctx, opts.Project)
	if err != nil {
		return &StepError{Step: StepProjectKey, Err: err}
	}
	a.log.Debug().Str("project", opts.Project).Str("key", key).Msg("project key")

	issues, err := a.tracker.ReleaseIssues(ctx, opts.Project, opts.Release)
	if err != nil {
		return &StepError{Step: StepReleaseIssues, Err: err}
	}

	source, err := a.openSource(ctx, opts.Target)
	if err != nil {
		return err
	}

	commits, err := source.Commits(ctx, opts.First, opts.Last, key)
	if err != nil {
		return &StepError{Step: StepCommits, Err: err}
	}

	chosen := reconcile.Reconcile(reconcile.Matches(commits, key))
	rep := report.Build(issues, chosen, a.tracker.Server())
	a.fillStatuses(ctx, rep.OutOfRelease)

	return a.printer.Print(rep)
}

// fillStatuses looks up the status of issues the release query did not return
func (a *App) fillStatuses(ctx context.Context, rows []report.Row) {
	for i := range rows {
		status, err := a.tracker.IssueStatus(ctx, rows[i].Key)
		if err != nil {
			a.log.Warn().Err(err).Str("issue", rows[i].Key).Msg("status lookup failed")
			status = UnknownStatus
		}
		rows[i].Status = status
	}
}
