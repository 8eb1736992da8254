package prstate

import (
	"context"

	"jira-pr-sync/internal/domain/models"
)

//go:generate mockery --name PRStateRepository --dir . --output ../../../../../mocks --outpkg mocks --with-expecter --filename PRStateRepository.go

// PRStateRepository persists the last-recorded state of each pull request
// between cycles. It is the classification baseline; it must survive
// restarts.
type PRStateRepository interface {
	// GetRecord returns utils.ErrRecordNotFound for PRs never seen before.
	GetRecord(ctx context.Context, repo string, number int) (*models.PRRecord, error)
	UpsertRecord(ctx context.Context, record *models.PRRecord) error
}
