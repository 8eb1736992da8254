package models

import "fmt"

type EventKind string

const (
	EventOpened EventKind = "opened"
	EventMerged EventKind = "merged"
	EventClosed EventKind = "closed"
)

// TransitionEvent is the inferred lifecycle change between two consecutive
// observations of the same pull request. TargetBranch is set only for merged
// events.
type TransitionEvent struct {
	Repo         string
	PRNumber     int
	Kind         EventKind
	TargetBranch string
	IssueKeys    []string
	PRURL        string
	SourceBranch string
}

// Signature is the stable dedup key for this transition. For a given repo,
// PR number and kind+branch combination it is always identical, so repeated
// observations of the same transition collapse onto one ledger entry.
func (e *TransitionEvent) Signature() string {
	return fmt.Sprintf("%s#%d:%s:%s", e.Repo, e.PRNumber, e.Kind, e.TargetBranch)
}

// Vars returns the placeholder values for comment-template substitution.
// {branch} resolves to the merge target for merged events and to the source
// branch otherwise.
func (e *TransitionEvent) Vars() TemplateVars {
	branch := e.TargetBranch
	if branch == "" {
		branch = e.SourceBranch
	}
	return TemplateVars{
		PRURL:    e.PRURL,
		PRNumber: e.PRNumber,
		Branch:   branch,
	}
}
