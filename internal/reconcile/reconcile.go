package reconcile

import (
	"sort"

	"github.com/wahlandcase/relcheck/internal/models"
)

// Reconcile picks one commit per issue key: the one with the latest
// timestamp. Commits with the same instant fall back to the smallest
// short ID, so the result does not depend on input order.
func Reconcile(matches []models.KeyMatch) map[string]models.CommitRecord {
	chosen := make(map[string]models.CommitRecord)

	for _, m := range matches {
		current, ok := chosen[m.Key]
		if !ok || newer(m.Commit, current) {
			chosen[m.Key] = m.Commit
		}
	}

	return chosen
}

// newer reports whether a should replace b as the chosen commit
func newer(a, b models.CommitRecord) bool {
	if !a.Timestamp.Equal(b.Timestamp) {
		return a.Timestamp.After(b.Timestamp)
	}
	return a.ShortID < b.ShortID
}

// Keys returns the keys of a reconciled mapping in ascending order
func Keys(chosen map[string]models.CommitRecord) []string {
	keys := make([]string, 0, len(chosen))
	for key := range chosen {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
