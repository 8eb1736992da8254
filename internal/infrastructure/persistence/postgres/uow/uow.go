package uow

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	ports "jira-pr-sync/internal/domain/ports/output"
	ledger_port "jira-pr-sync/internal/domain/ports/output/ledger"
	prstate_port "jira-pr-sync/internal/domain/ports/output/prstate"
	"jira-pr-sync/internal/domain/ports/output/uow"
	ledger_repo "jira-pr-sync/internal/infrastructure/persistence/postgres/ledger"
	prstate_repo "jira-pr-sync/internal/infrastructure/persistence/postgres/prstate"
)

type PostgresUnitOfWork struct {
	pool *pgxpool.Pool
	log  ports.Logger
}

func NewPostgresUOW(pool *pgxpool.Pool, log ports.Logger) uow.UnitOfWork {
	return &PostgresUnitOfWork{pool: pool, log: log}
}

func (u *PostgresUnitOfWork) Begin(ctx context.Context) (uow.Transaction, error) {
	tx, err := u.pool.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("error beginning transaction: %w", err)
	}
	return &PostgresTransaction{tx: tx, log: u.log}, nil
}

type PostgresTransaction struct {
	tx  pgx.Tx
	log ports.Logger
}

func (t *PostgresTransaction) Commit(ctx context.Context) error {
	return t.tx.Commit(ctx)
}

func (t *PostgresTransaction) Rollback(ctx context.Context) error {
	return t.tx.Rollback(ctx)
}

func (t *PostgresTransaction) LedgerRepository() ledger_port.LedgerRepository {
	return ledger_repo.NewLedgerRepository(t.tx, t.log)
}

func (t *PostgresTransaction) PRStateRepository() prstate_port.PRStateRepository {
	return prstate_repo.NewPRStateRepository(t.tx, t.log)
}
