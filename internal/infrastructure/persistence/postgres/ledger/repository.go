package ledger_repository

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	ports "jira-pr-sync/internal/domain/ports/output"
	ledger_port "jira-pr-sync/internal/domain/ports/output/ledger"
	"jira-pr-sync/internal/infrastructure/persistence/postgres"
	"jira-pr-sync/internal/utils"
)

type LedgerRepository struct {
	querier postgres.Querier
	log     ports.Logger
}

func NewLedgerRepository(querier postgres.Querier, log ports.Logger) ledger_port.LedgerRepository {
	return &LedgerRepository{querier: querier, log: log}
}

func (r *LedgerRepository) HasApplied(ctx context.Context, issueKey string, signature string) (bool, error) {
	if issueKey == "" || signature == "" {
		return false, utils.ErrInvalidArgument
	}
	const q = `
		SELECT EXISTS (
			SELECT 1 FROM ledger_entries
			WHERE issue_key = @issue_key AND signature = @signature
		);
	`
	var exists bool
	row := r.querier.QueryRow(ctx, q, pgx.NamedArgs{"issue_key": issueKey, "signature": signature})
	if err := row.Scan(&exists); err != nil {
		r.log.Error("HasApplied failed", "issue_key", issueKey, "signature", signature, "err", err)
		return false, err
	}
	return exists, nil
}

// RecordApplied inserts the entry; re-recording an existing key is a no-op,
// the table stays append-only.
func (r *LedgerRepository) RecordApplied(ctx context.Context, issueKey string, signature string, appliedAt time.Time) error {
	if issueKey == "" || signature == "" || appliedAt.IsZero() {
		return utils.ErrInvalidArgument
	}
	const insertEntry = `
		INSERT INTO ledger_entries (issue_key, signature, applied_at)
		VALUES (@issue_key, @signature, @applied_at)
		ON CONFLICT (issue_key, signature) DO NOTHING;
	`
	_, err := r.querier.Exec(ctx, insertEntry, pgx.NamedArgs{
		"issue_key":  issueKey,
		"signature":  signature,
		"applied_at": appliedAt,
	})
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "22P02" {
			r.log.Error("RecordApplied invalid input", "issue_key", issueKey, "signature", signature)
			return utils.ErrInvalidArgument
		}
		r.log.Error("RecordApplied failed", "issue_key", issueKey, "signature", signature, "err", err)
		return err
	}
	return nil
}
