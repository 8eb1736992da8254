package sync

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"jira-pr-sync/internal/domain/models"
	"jira-pr-sync/internal/domain/ports/input"
	ports "jira-pr-sync/internal/domain/ports/output"
	"jira-pr-sync/internal/domain/ports/output/activity"
	"jira-pr-sync/internal/domain/ports/output/executor"
	uow "jira-pr-sync/internal/domain/ports/output/uow"
	"jira-pr-sync/internal/domain/services"
	"jira-pr-sync/internal/utils"
)

// Service drives one sync cycle: fetch activity, classify transitions,
// resolve rules, consult the dedup ledger, invoke the executor, aggregate
// results. Actions are applied sequentially in source order — the executor is
// typically a single Jira session that must not see concurrent callers — and
// the ledger is made durable per action, not per cycle, so a crash mid-cycle
// never re-applies work.
type Service struct {
	uow        uow.UnitOfWork
	source     activity.ActivitySource
	executor   executor.ActionExecutor
	classifier *services.Classifier
	resolver   *services.RuleResolver
	rules      models.RuleSet
	log        ports.Logger
}

func NewService(unit uow.UnitOfWork, source activity.ActivitySource, exec executor.ActionExecutor, rules models.RuleSet, log ports.Logger) input.SyncInputPort {
	return &Service{
		uow:        unit,
		source:     source,
		executor:   exec,
		classifier: services.NewClassifier(),
		resolver:   services.NewRuleResolver(),
		rules:      rules,
		log:        log,
	}
}

func (s *Service) RunCycle(ctx context.Context, repo string, lookback time.Duration) (*models.SyncResult, error) {
	if repo == "" || lookback <= 0 {
		return nil, utils.ErrInvalidArgument
	}

	result := &models.SyncResult{
		CycleID:   uuid.New(),
		Repo:      repo,
		StartedAt: time.Now().UTC(),
	}
	since := result.StartedAt.Add(-lookback)

	snaps, err := s.source.FetchPRActivity(ctx, repo, since)
	if err != nil {
		s.log.Error("fetch activity failed", "repo", repo, "err", err)
		return nil, fmt.Errorf("fetch pr activity: %w", err)
	}
	s.log.Info("cycle started", "cycle_id", result.CycleID.String(), "repo", repo, "prs", len(snaps))

	for _, snap := range snaps {
		// Cooperative cancellation checkpoint between PR iterations. The
		// ledger is already durable for everything applied so far.
		if err := ctx.Err(); err != nil {
			result.FinishedAt = time.Now().UTC()
			return result, err
		}
		result.Examined++
		if err := s.processPR(ctx, snap, result); err != nil {
			result.FinishedAt = time.Now().UTC()
			return result, err
		}
	}

	result.FinishedAt = time.Now().UTC()
	s.log.Info("cycle finished",
		"cycle_id", result.CycleID.String(),
		"examined", result.Examined,
		"detected", result.Detected,
		"applied", result.Applied,
		"skipped", result.Skipped,
		"failed", result.Failed,
	)
	return result, nil
}

// processPR handles one snapshot. Only ledger/state persistence errors are
// returned (they abort the cycle); executor failures and classification
// ambiguity are absorbed into the result so one bad PR cannot starve the
// rest.
func (s *Service) processPR(ctx context.Context, snap *models.PullRequestSnapshot, result *models.SyncResult) error {
	prev, err := s.loadRecord(ctx, snap.Repo, snap.Number)
	if err != nil {
		return fmt.Errorf("%w: load record for pr %d: %v", utils.ErrLedgerPersist, snap.Number, err)
	}

	event, err := s.classifier.Classify(prev, snap)
	if err != nil {
		if errors.Is(err, utils.ErrUnknownPRState) {
			s.log.Warn("skipping pr with unrecognized state", "repo", snap.Repo, "pr", snap.Number, "err", err)
			result.Warnings = append(result.Warnings, fmt.Sprintf("pr #%d: %v", snap.Number, err))
			return nil
		}
		return err
	}

	if event != nil {
		result.Detected++
		failedBefore := result.Failed
		if err := s.applyEvent(ctx, event, result); err != nil {
			return err
		}
		if result.Failed > failedBefore {
			// Hold the baseline so the event fires again next cycle; the
			// ledger keeps the issues that did succeed from re-applying.
			s.log.Debug("baseline held for retry", "repo", snap.Repo, "pr", snap.Number)
			return nil
		}
	}

	rec := s.classifier.NextRecord(prev, snap)
	if err := s.saveRecord(ctx, rec); err != nil {
		return fmt.Errorf("%w: save record for pr %d: %v", utils.ErrLedgerPersist, snap.Number, err)
	}
	return nil
}

// applyEvent resolves and applies the event's bundle for each linked issue,
// in the order the keys appear on the PR. Executor failures are absorbed into
// the result; ledger failures abort the cycle, since continuing after one
// risks duplicate application on the next run.
func (s *Service) applyEvent(ctx context.Context, event *models.TransitionEvent, result *models.SyncResult) error {
	bundle := s.resolver.Resolve(event.Kind, event.TargetBranch, s.rules)
	sig := event.Signature()

	if bundle.IsNoOp() {
		result.Skipped += len(event.IssueKeys)
		s.log.Debug("no-op bundle, skipping", "signature", sig, "issues", len(event.IssueKeys))
		return nil
	}

	for _, issueKey := range event.IssueKeys {
		applied, err := s.hasApplied(ctx, issueKey, sig)
		if err != nil {
			return fmt.Errorf("%w: consult ledger for %s/%s: %v", utils.ErrLedgerPersist, issueKey, sig, err)
		}
		if applied {
			result.Skipped++
			s.log.Debug("already applied", "issue", issueKey, "signature", sig)
			continue
		}

		if err := s.executor.Apply(ctx, issueKey, bundle, event.Vars()); err != nil {
			// Not recorded in the ledger, so it retries next cycle.
			result.Failed++
			result.Failures = append(result.Failures, models.ActionFailure{
				IssueKey: issueKey, Signature: sig, Reason: err.Error(),
			})
			s.log.Warn("action failed", "issue", issueKey, "signature", sig, "err", err)
			continue
		}

		if err := s.recordApplied(ctx, issueKey, sig); err != nil {
			s.log.Error("ledger write failed after successful action", "issue", issueKey, "signature", sig, "err", err)
			return fmt.Errorf("%w: record %s/%s: %v", utils.ErrLedgerPersist, issueKey, sig, err)
		}
		result.Applied++
		s.log.Info("action applied", "issue", issueKey, "signature", sig)
	}
	return nil
}

func (s *Service) loadRecord(ctx context.Context, repo string, number int) (*models.PRRecord, error) {
	tx, err := s.uow.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer func() { _ = tx.Rollback(ctx) }()
	rec, err := tx.PRStateRepository().GetRecord(ctx, repo, number)
	if err != nil {
		if errors.Is(err, utils.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return rec, nil
}

func (s *Service) saveRecord(ctx context.Context, rec *models.PRRecord) error {
	tx, err := s.uow.Begin(ctx)
	if err != nil {
		return err
	}
	var commit bool
	defer func() {
		if !commit {
			_ = tx.Rollback(ctx)
		}
	}()
	if err := tx.PRStateRepository().UpsertRecord(ctx, rec); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return err
	}
	commit = true
	return nil
}

func (s *Service) hasApplied(ctx context.Context, issueKey, signature string) (bool, error) {
	tx, err := s.uow.Begin(ctx)
	if err != nil {
		return false, err
	}
	defer func() { _ = tx.Rollback(ctx) }()
	return tx.LedgerRepository().HasApplied(ctx, issueKey, signature)
}

// recordApplied commits the ledger entry in its own transaction so the entry
// is durable before the action is reported as applied.
func (s *Service) recordApplied(ctx context.Context, issueKey, signature string) error {
	tx, err := s.uow.Begin(ctx)
	if err != nil {
		return err
	}
	var commit bool
	defer func() {
		if !commit {
			_ = tx.Rollback(ctx)
		}
	}()
	if err := tx.LedgerRepository().RecordApplied(ctx, issueKey, signature, time.Now().UTC()); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return err
	}
	commit = true
	return nil
}
