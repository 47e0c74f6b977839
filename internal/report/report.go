// Package report joins release issues with reconciled commits.
package report

import (
	"strings"

	"github.com/wahlandcase/relcheck/internal/models"
	"github.com/wahlandcase/relcheck/internal/reconcile"
)

// NoCommit stands in for the commit ID of an issue without a commit
const NoCommit = "--------"

// Row is one line of a report section
type Row struct {
	Key      string
	CommitID string
	Status   string
	Link     string
}

// HasCommit returns true unless the row shows the NoCommit placeholder
func (r Row) HasCommit() bool {
	return r.CommitID != NoCommit
}

// Report holds both report sections and the summary counts
type Report struct {
	// InRelease has one row per release issue, in tracker order
	InRelease []Row
	// OutOfRelease has one row per commit key missing from the release, sorted by key
	OutOfRelease []Row

	ReleaseIssues     int
	CommitKeys        int
	WithoutCommit     int
	OutOfReleaseCount int
}

// Build joins the release issues with the reconciled commits.
// Out-of-release rows have no status; the caller fills it in.
func Build(issues []models.Issue, chosen map[string]models.CommitRecord, server string) *Report {
	r := &Report{
		InRelease:     make([]Row, 0, len(issues)),
		ReleaseIssues: len(issues),
		CommitKeys:    len(chosen),
	}

	inRelease := make(map[string]bool, len(issues))
	for _, issue := range issues {
		inRelease[issue.Key] = true

		commitID := NoCommit
		if c, ok := chosen[issue.Key]; ok {
			commitID = c.ShortID
		} else {
			r.WithoutCommit++
		}

		r.InRelease = append(r.InRelease, Row{
			Key:      issue.Key,
			CommitID: commitID,
			Status:   issue.Status,
			Link:     BrowseURL(server, issue.Key),
		})
	}

	for _, key := range reconcile.Keys(chosen) {
		if inRelease[key] {
			continue
		}
		r.OutOfRelease = append(r.OutOfRelease, Row{
			Key:      key,
			CommitID: chosen[key].ShortID,
			Link:     BrowseURL(server, key),
		})
	}
	r.OutOfReleaseCount = len(r.OutOfRelease)

	return r
}

// BrowseURL returns the tracker web link for an issue key
func BrowseURL(server, key string) string {
	return strings.TrimRight(server, "/") + "/browse/" + key
}
