package prstate_repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"jira-pr-sync/internal/domain/models"
	ports "jira-pr-sync/internal/domain/ports/output"
	prstate_port "jira-pr-sync/internal/domain/ports/output/prstate"
	"jira-pr-sync/internal/infrastructure/persistence/postgres"
	"jira-pr-sync/internal/utils"
)

type PRStateRepository struct {
	querier postgres.Querier
	log     ports.Logger
}

func NewPRStateRepository(querier postgres.Querier, log ports.Logger) prstate_port.PRStateRepository {
	return &PRStateRepository{querier: querier, log: log}
}

func (r *PRStateRepository) GetRecord(ctx context.Context, repo string, number int) (*models.PRRecord, error) {
	if repo == "" || number <= 0 {
		return nil, utils.ErrInvalidArgument
	}
	const q = `
		SELECT repo, pr_number, status, merged_branches, last_seen_at, updated_at
		FROM pr_records
		WHERE repo = @repo AND pr_number = @pr_number;
	`
	row := r.querier.QueryRow(ctx, q, pgx.NamedArgs{"repo": repo, "pr_number": number})
	var rec models.PRRecord
	if err := row.Scan(&rec.Repo, &rec.Number, &rec.Status, &rec.MergedBranches, &rec.LastSeenAt, &rec.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, utils.ErrRecordNotFound
		}
		r.log.Error("GetRecord failed", "repo", repo, "pr", number, "err", err)
		return nil, err
	}
	return &rec, nil
}

func (r *PRStateRepository) UpsertRecord(ctx context.Context, rec *models.PRRecord) error {
	if rec == nil || rec.Repo == "" || rec.Number <= 0 {
		return utils.ErrInvalidArgument
	}
	const upsert = `
		INSERT INTO pr_records (repo, pr_number, status, merged_branches, last_seen_at, updated_at)
		VALUES (@repo, @pr_number, @status, @merged_branches, @last_seen_at, now())
		ON CONFLICT (repo, pr_number) DO UPDATE SET
			status          = EXCLUDED.status,
			merged_branches = EXCLUDED.merged_branches,
			last_seen_at    = EXCLUDED.last_seen_at,
			updated_at      = now();
	`
	branches := rec.MergedBranches
	if branches == nil {
		branches = []string{}
	}
	_, err := r.querier.Exec(ctx, upsert, pgx.NamedArgs{
		"repo":            rec.Repo,
		"pr_number":       rec.Number,
		"status":          string(rec.Status),
		"merged_branches": branches,
		"last_seen_at":    rec.LastSeenAt,
	})
	if err != nil {
		r.log.Error("UpsertRecord failed", "repo", rec.Repo, "pr", rec.Number, "err", err)
		return err
	}
	return nil
}
