package models

import (
	"time"
)

type PRStatus string

const (
	PRStatusOpen   PRStatus = "OPEN"
	PRStatusMerged PRStatus = "MERGED"
	PRStatusClosed PRStatus = "CLOSED"
)

// PullRequestSnapshot is a point-in-time view of a pull request as reported
// by the activity source. Immutable once constructed; a fresh snapshot is
// produced on every sync cycle.
type PullRequestSnapshot struct {
	Repo         string
	Number       int
	Title        string
	URL          string
	SourceBranch string
	TargetBranch string // set once merged
	Status       PRStatus
	IssueKeys    []string
	ObservedAt   time.Time
}

// PRRecord is the last-recorded state of a pull request, persisted between
// cycles as the classification baseline. MergedBranches accumulates every
// target branch the PR has been observed merged into.
type PRRecord struct {
	Repo           string
	Number         int
	Status         PRStatus
	MergedBranches []string
	LastSeenAt     time.Time
	UpdatedAt      time.Time
}
