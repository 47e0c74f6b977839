package models

import "time"

// CommitRecord contains the parts of a commit needed for reconciliation
type CommitRecord struct {
	// ShortID is the abbreviated commit hash (7 characters)
	ShortID string
	// Timestamp is the committer date, in the zone it was recorded with
	Timestamp time.Time
	// Message is the full commit message
	Message string
}

// NewCommitRecord creates a new CommitRecord
func NewCommitRecord(shortID string, timestamp time.Time, message string) CommitRecord {
	return CommitRecord{
		ShortID:   shortID,
		Timestamp: timestamp,
		Message:   message,
	}
}

// KeyMatch pairs one issue key occurrence with the commit it was found in
type KeyMatch struct {
	Key    string
	Commit CommitRecord
}
