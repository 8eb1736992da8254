package models

import "time"

// LedgerEntry records that one transition was applied to one issue. Entries
// are append-only; the (IssueKey, Signature) pair is the unique key.
type LedgerEntry struct {
	IssueKey  string
	Signature string
	AppliedAt time.Time
}
