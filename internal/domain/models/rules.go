package models

// Rule is one configured reaction to a transition event. Empty fields mean
// the facet is not touched; a rule with Enabled false resolves to the no-op
// bundle regardless of the other fields.
type Rule struct {
	Status          string
	Label           string
	CommentTemplate string
	Enabled         bool
}

// Bundle converts the rule into its action bundle. Disabled rules collapse
// to the no-op bundle.
func (r *Rule) Bundle() ActionBundle {
	if r == nil || !r.Enabled {
		return ActionBundle{}
	}
	return ActionBundle{
		Status:          r.Status,
		Label:           r.Label,
		CommentTemplate: r.CommentTemplate,
	}
}

// RuleSet is the static rule configuration for one repository: single rules
// for opened and closed, and a branch-keyed rule map for merges. Branch names
// match case-sensitively; branches without a rule are deliberately ignored.
type RuleSet struct {
	Opened *Rule
	Closed *Rule
	Merged map[string]*Rule
}
