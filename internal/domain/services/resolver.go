package services

import (
	"jira-pr-sync/internal/domain/models"
)

// RuleResolver maps a classified event to its configured action bundle. Pure
// function over static configuration: identical inputs always produce an
// identical bundle.
type RuleResolver struct{}

func NewRuleResolver() *RuleResolver {
	return &RuleResolver{}
}

// Resolve selects the rule for the event kind and, for merges, the target
// branch (matched case-sensitively). Unmapped branches and disabled rules
// resolve to the no-op bundle — deliberately ignored, not an error.
func (r *RuleResolver) Resolve(kind models.EventKind, targetBranch string, rules models.RuleSet) models.ActionBundle {
	switch kind {
	case models.EventOpened:
		return rules.Opened.Bundle()
	case models.EventClosed:
		return rules.Closed.Bundle()
	case models.EventMerged:
		return rules.Merged[targetBranch].Bundle()
	default:
		return models.ActionBundle{}
	}
}
