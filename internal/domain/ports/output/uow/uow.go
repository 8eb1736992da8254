package uow

import (
	"context"

	ledger "jira-pr-sync/internal/domain/ports/output/ledger"
	prstate "jira-pr-sync/internal/domain/ports/output/prstate"
)

//go:generate mockery --name UnitOfWork --dir . --output ../../../../../mocks --outpkg mocks --with-expecter --filename UnitOfWork.go
//go:generate mockery --name Transaction --dir . --output ../../../../../mocks --outpkg mocks --with-expecter --filename Transaction.go

type UnitOfWork interface {
	Begin(ctx context.Context) (Transaction, error)
}

type Transaction interface {
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error
	LedgerRepository() ledger.LedgerRepository
	PRStateRepository() prstate.PRStateRepository
}
