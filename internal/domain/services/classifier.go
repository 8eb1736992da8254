package services

import (
	"fmt"

	"jira-pr-sync/internal/domain/models"
	"jira-pr-sync/internal/utils"
)

// Classifier infers which lifecycle transition, if any, occurred between the
// last-recorded state of a PR and its current snapshot. It is pure: no I/O,
// no internal state.
type Classifier struct{}

func NewClassifier() *Classifier {
	return &Classifier{}
}

// Classify returns at most one transition event for the snapshot.
//
// First-sight policy: a PR first observed while already open is treated as a
// baseline only — no retroactive "opened" event fires for PRs that existed
// before the tool started watching. Merges and closes within the lookback
// window do fire on first sight; the dedup ledger keeps re-observation safe.
//
// Each distinct merge target produces its own event: a PR merged to DEV and
// later to INT fires twice, once per branch, so branch-specific rules apply
// independently. A merged PR never fires "closed" — closed is strictly for
// closed-without-merge.
func (c *Classifier) Classify(prev *models.PRRecord, snap *models.PullRequestSnapshot) (*models.TransitionEvent, error) {
	if snap == nil {
		return nil, utils.ErrInvalidArgument
	}
	switch snap.Status {
	case models.PRStatusOpen, models.PRStatusMerged, models.PRStatusClosed:
	default:
		return nil, fmt.Errorf("%w: %q", utils.ErrUnknownPRState, snap.Status)
	}

	switch snap.Status {
	case models.PRStatusMerged:
		if prev != nil && utils.ContainsString(prev.MergedBranches, snap.TargetBranch) {
			return nil, nil
		}
		return c.event(snap, models.EventMerged, snap.TargetBranch), nil

	case models.PRStatusClosed:
		if prev != nil {
			if prev.Status == models.PRStatusClosed {
				return nil, nil
			}
			if len(prev.MergedBranches) > 0 {
				// Merge completion shows up as closed; never a closed event.
				return nil, nil
			}
		}
		return c.event(snap, models.EventClosed, ""), nil

	default: // open
		if prev == nil || prev.Status == models.PRStatusOpen {
			return nil, nil
		}
		// Reopened after close counts as a fresh opened transition.
		return c.event(snap, models.EventOpened, ""), nil
	}
}

func (c *Classifier) event(snap *models.PullRequestSnapshot, kind models.EventKind, target string) *models.TransitionEvent {
	return &models.TransitionEvent{
		Repo:         snap.Repo,
		PRNumber:     snap.Number,
		Kind:         kind,
		TargetBranch: target,
		IssueKeys:    snap.IssueKeys,
		PRURL:        snap.URL,
		SourceBranch: snap.SourceBranch,
	}
}

// NextRecord folds the snapshot into the stored baseline for the next cycle.
func (c *Classifier) NextRecord(prev *models.PRRecord, snap *models.PullRequestSnapshot) *models.PRRecord {
	rec := &models.PRRecord{
		Repo:       snap.Repo,
		Number:     snap.Number,
		Status:     snap.Status,
		LastSeenAt: snap.ObservedAt,
	}
	if prev != nil {
		rec.MergedBranches = append(rec.MergedBranches, prev.MergedBranches...)
	}
	if snap.Status == models.PRStatusMerged && snap.TargetBranch != "" &&
		!utils.ContainsString(rec.MergedBranches, snap.TargetBranch) {
		rec.MergedBranches = append(rec.MergedBranches, snap.TargetBranch)
	}
	return rec
}
