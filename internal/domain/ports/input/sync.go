package input

import (
	"context"
	"time"

	"jira-pr-sync/internal/domain/models"
)

//go:generate mockery --name SyncInputPort --dir . --output ../../../../mocks --outpkg mocks --with-expecter --filename SyncInputPort.go

type SyncInputPort interface {
	RunCycle(ctx context.Context, repo string, lookback time.Duration) (*models.SyncResult, error)
}
