package integration

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
)

func TruncateAll(ctx context.Context, pool *pgxpool.Pool) error {
	_, err := pool.Exec(ctx, `
		TRUNCATE TABLE ledger_entries, pr_records RESTART IDENTITY CASCADE;
	`)
	return err
}

func CountLedgerEntries(ctx context.Context, pool *pgxpool.Pool) (int, error) {
	var n int
	err := pool.QueryRow(ctx, `SELECT count(*) FROM ledger_entries;`).Scan(&n)
	return n, err
}
