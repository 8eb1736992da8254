package integration

import (
	"errors"
	"testing"
	"time"

	"jira-pr-sync/internal/domain/models"
	"jira-pr-sync/internal/infrastructure/logger"
	prstate_repository "jira-pr-sync/internal/infrastructure/persistence/postgres/prstate"
	"jira-pr-sync/internal/utils"
)

func TestPRStateRepository_Integration(t *testing.T) {
	ctx := TestCtx
	log := logger.New("test")
	repo := prstate_repository.NewPRStateRepository(PGC.Pool, log)

	const testRepo = "acme/payments-service"

	t.Run("GetRecord on unknown PR", func(t *testing.T) {
		if err := TruncateAll(ctx, PGC.Pool); err != nil {
			t.Fatalf("truncate: %v", err)
		}
		rec, err := repo.GetRecord(ctx, testRepo, 42)
		if !errors.Is(err, utils.ErrRecordNotFound) {
			t.Fatalf("expected ErrRecordNotFound, got %v", err)
		}
		if rec != nil {
			t.Fatal("expected nil record")
		}
	})

	t.Run("Upsert then Get round trip", func(t *testing.T) {
		if err := TruncateAll(ctx, PGC.Pool); err != nil {
			t.Fatalf("truncate: %v", err)
		}
		now := time.Now().UTC().Truncate(time.Microsecond)
		in := &models.PRRecord{
			Repo:           testRepo,
			Number:         42,
			Status:         models.PRStatusOpen,
			MergedBranches: nil,
			LastSeenAt:     now,
		}
		if err := repo.UpsertRecord(ctx, in); err != nil {
			t.Fatalf("UpsertRecord: %v", err)
		}

		out, err := repo.GetRecord(ctx, testRepo, 42)
		if err != nil {
			t.Fatalf("GetRecord: %v", err)
		}
		if out.Status != models.PRStatusOpen {
			t.Fatalf("expected OPEN, got %s", out.Status)
		}
		if len(out.MergedBranches) != 0 {
			t.Fatalf("expected no merged branches, got %v", out.MergedBranches)
		}
		if !out.LastSeenAt.Equal(now) {
			t.Fatalf("last_seen_at mismatch: %v != %v", out.LastSeenAt, now)
		}
		if out.UpdatedAt.IsZero() {
			t.Fatal("expected updated_at to be set")
		}
	})

	t.Run("Upsert updates existing row", func(t *testing.T) {
		if err := TruncateAll(ctx, PGC.Pool); err != nil {
			t.Fatalf("truncate: %v", err)
		}
		now := time.Now().UTC().Truncate(time.Microsecond)
		open := &models.PRRecord{Repo: testRepo, Number: 42, Status: models.PRStatusOpen, LastSeenAt: now}
		if err := repo.UpsertRecord(ctx, open); err != nil {
			t.Fatalf("first upsert: %v", err)
		}
		merged := &models.PRRecord{
			Repo:           testRepo,
			Number:         42,
			Status:         models.PRStatusMerged,
			MergedBranches: []string{"DEV", "INT"},
			LastSeenAt:     now.Add(time.Minute),
		}
		if err := repo.UpsertRecord(ctx, merged); err != nil {
			t.Fatalf("second upsert: %v", err)
		}

		out, err := repo.GetRecord(ctx, testRepo, 42)
		if err != nil {
			t.Fatalf("GetRecord: %v", err)
		}
		if out.Status != models.PRStatusMerged {
			t.Fatalf("expected MERGED, got %s", out.Status)
		}
		if len(out.MergedBranches) != 2 || out.MergedBranches[0] != "DEV" || out.MergedBranches[1] != "INT" {
			t.Fatalf("merged branches mismatch: %v", out.MergedBranches)
		}
	})

	t.Run("records are keyed per repo", func(t *testing.T) {
		if err := TruncateAll(ctx, PGC.Pool); err != nil {
			t.Fatalf("truncate: %v", err)
		}
		now := time.Now().UTC()
		if err := repo.UpsertRecord(ctx, &models.PRRecord{Repo: testRepo, Number: 42, Status: models.PRStatusOpen, LastSeenAt: now}); err != nil {
			t.Fatalf("upsert: %v", err)
		}
		if _, err := repo.GetRecord(ctx, "acme/other-service", 42); !errors.Is(err, utils.ErrRecordNotFound) {
			t.Fatalf("expected ErrRecordNotFound for other repo, got %v", err)
		}
	})

	t.Run("invalid arguments", func(t *testing.T) {
		if _, err := repo.GetRecord(ctx, "", 42); !errors.Is(err, utils.ErrInvalidArgument) {
			t.Fatalf("expected ErrInvalidArgument, got %v", err)
		}
		if err := repo.UpsertRecord(ctx, nil); !errors.Is(err, utils.ErrInvalidArgument) {
			t.Fatalf("expected ErrInvalidArgument, got %v", err)
		}
	})
}
