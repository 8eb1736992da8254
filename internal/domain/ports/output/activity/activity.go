package activity

import (
	"context"
	"time"

	"jira-pr-sync/internal/domain/models"
)

//go:generate mockery --name ActivitySource --dir . --output ../../../../../mocks --outpkg mocks --with-expecter --filename ActivitySource.go

// ActivitySource supplies pull-request snapshots for a repository within a
// lookback window. "No PRs found" is an empty slice, not an error; a
// connectivity failure is reported as an error wrapping
// utils.ErrSourceUnavailable so the orchestrator can abort the cycle rather
// than treat "no data" as "nothing changed".
type ActivitySource interface {
	FetchPRActivity(ctx context.Context, repo string, since time.Time) ([]*models.PullRequestSnapshot, error)
}
