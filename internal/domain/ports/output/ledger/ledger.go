package ledger

import (
	"context"
	"time"
)

//go:generate mockery --name LedgerRepository --dir . --output ../../../../../mocks --outpkg mocks --with-expecter --filename LedgerRepository.go

// LedgerRepository is the durable record of transitions already applied to
// issues. It must be consulted before and updated immediately after every
// successful action execution so that a crash mid-cycle cannot cause a
// duplicate application on the next run.
type LedgerRepository interface {
	HasApplied(ctx context.Context, issueKey string, signature string) (bool, error)
	// RecordApplied is idempotent: recording an already-present key is not an
	// error and does not create a second entry.
	RecordApplied(ctx context.Context, issueKey string, signature string, appliedAt time.Time) error
}
