package models

import (
	"time"

	"github.com/google/uuid"
)

// ActionFailure describes one action that could not be applied during a
// cycle. Failed actions are not recorded in the ledger, so they are retried
// on the next cycle.
type ActionFailure struct {
	IssueKey  string
	Signature string
	Reason    string
}

// SyncResult aggregates one sync cycle. Counts distinguish "nothing to do"
// from "something is broken": skipped covers no-op bundles and
// already-applied transitions, failed carries per-action reasons.
type SyncResult struct {
	CycleID    uuid.UUID
	Repo       string
	StartedAt  time.Time
	FinishedAt time.Time

	Examined int
	Detected int
	Applied  int
	Skipped  int
	Failed   int

	Failures []ActionFailure
	Warnings []string
}
