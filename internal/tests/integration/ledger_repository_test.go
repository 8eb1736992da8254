package integration

import (
	"errors"
	"testing"
	"time"

	"jira-pr-sync/internal/infrastructure/logger"
	ledger_repository "jira-pr-sync/internal/infrastructure/persistence/postgres/ledger"
	"jira-pr-sync/internal/utils"
)

func TestLedgerRepository_Integration(t *testing.T) {
	ctx := TestCtx
	log := logger.New("test")
	repo := ledger_repository.NewLedgerRepository(PGC.Pool, log)

	const (
		issueKey  = "ABC-7"
		signature = "acme/payments-service#42:merged:DEV"
	)

	t.Run("HasApplied on empty ledger", func(t *testing.T) {
		if err := TruncateAll(ctx, PGC.Pool); err != nil {
			t.Fatalf("truncate: %v", err)
		}
		applied, err := repo.HasApplied(ctx, issueKey, signature)
		if err != nil {
			t.Fatalf("HasApplied: %v", err)
		}
		if applied {
			t.Fatal("expected no entry on empty ledger")
		}
	})

	t.Run("RecordApplied then HasApplied", func(t *testing.T) {
		if err := TruncateAll(ctx, PGC.Pool); err != nil {
			t.Fatalf("truncate: %v", err)
		}
		if err := repo.RecordApplied(ctx, issueKey, signature, time.Now().UTC()); err != nil {
			t.Fatalf("RecordApplied: %v", err)
		}
		applied, err := repo.HasApplied(ctx, issueKey, signature)
		if err != nil {
			t.Fatalf("HasApplied: %v", err)
		}
		if !applied {
			t.Fatal("expected entry after RecordApplied")
		}
	})

	t.Run("RecordApplied is idempotent", func(t *testing.T) {
		if err := TruncateAll(ctx, PGC.Pool); err != nil {
			t.Fatalf("truncate: %v", err)
		}
		if err := repo.RecordApplied(ctx, issueKey, signature, time.Now().UTC()); err != nil {
			t.Fatalf("first RecordApplied: %v", err)
		}
		if err := repo.RecordApplied(ctx, issueKey, signature, time.Now().UTC()); err != nil {
			t.Fatalf("second RecordApplied: %v", err)
		}
		n, err := CountLedgerEntries(ctx, PGC.Pool)
		if err != nil {
			t.Fatalf("count: %v", err)
		}
		if n != 1 {
			t.Fatalf("expected 1 entry, got %d", n)
		}
	})

	t.Run("entries are keyed per issue and signature", func(t *testing.T) {
		if err := TruncateAll(ctx, PGC.Pool); err != nil {
			t.Fatalf("truncate: %v", err)
		}
		if err := repo.RecordApplied(ctx, issueKey, signature, time.Now().UTC()); err != nil {
			t.Fatalf("RecordApplied: %v", err)
		}

		otherIssue, err := repo.HasApplied(ctx, "ABC-8", signature)
		if err != nil {
			t.Fatalf("HasApplied other issue: %v", err)
		}
		if otherIssue {
			t.Fatal("entry leaked to another issue key")
		}

		otherSig, err := repo.HasApplied(ctx, issueKey, "acme/payments-service#42:merged:INT")
		if err != nil {
			t.Fatalf("HasApplied other signature: %v", err)
		}
		if otherSig {
			t.Fatal("entry leaked to another signature")
		}
	})

	t.Run("invalid arguments", func(t *testing.T) {
		if _, err := repo.HasApplied(ctx, "", signature); !errors.Is(err, utils.ErrInvalidArgument) {
			t.Fatalf("expected ErrInvalidArgument, got %v", err)
		}
		if err := repo.RecordApplied(ctx, issueKey, "", time.Now().UTC()); !errors.Is(err, utils.ErrInvalidArgument) {
			t.Fatalf("expected ErrInvalidArgument, got %v", err)
		}
	})
}
