// Package reconcile matches issue keys found in commit messages to commits.
package reconcile

import (
	"regexp"

	"github.com/wahlandcase/relcheck/internal/models"
)

// KeyPattern compiles the issue key pattern for a project key prefix.
// Returns nil for an empty prefix.
func KeyPattern(prefix string) *regexp.Regexp {
	if prefix == "" {
		return nil
	}
	return regexp.MustCompile(regexp.QuoteMeta(prefix) + `-[0-9]+`)
}

// ExtractKeys returns every issue key in text, in order of appearance.
// Repeated keys are kept as separate entries.
func ExtractKeys(text string, keyRegex *regexp.Regexp) []string {
	if keyRegex == nil {
		return nil
	}
	return keyRegex.FindAllString(text, -1)
}

// Matches extracts issue keys from each commit message and pairs every
// occurrence with its commit
func Matches(commits []models.CommitRecord, prefix string) []models.KeyMatch {
	keyRegex := KeyPattern(prefix)
	if keyRegex == nil {
		return nil
	}

	var matches []models.KeyMatch
	for _, c := range commits {
		for _, key := range ExtractKeys(c.Message, keyRegex) {
			matches = append(matches, models.KeyMatch{Key: key, Commit: c})
		}
	}
	return matches
}
