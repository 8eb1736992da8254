package executor

import (
	"context"

	"jira-pr-sync/internal/domain/models"
)

//go:generate mockery --name ActionExecutor --dir . --output ../../../../../mocks --outpkg mocks --with-expecter --filename ActionExecutor.go

// ActionExecutor applies one action bundle to one Jira issue. Implementations
// retry transient failures internally (bounded retries with backoff) before
// reporting a terminal error; the orchestrator never retries within a cycle,
// it only records pass/fail. Template substitution happens here, at execution
// time.
type ActionExecutor interface {
	Apply(ctx context.Context, issueKey string, bundle models.ActionBundle, vars models.TemplateVars) error
}
