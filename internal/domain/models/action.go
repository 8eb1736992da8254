package models

import (
	"strconv"
	"strings"
)

// ActionBundle is the resolved set of Jira-side mutations for one transition
// event. Any field may be empty, meaning "do nothing for that facet". A bundle
// with every field empty is a no-op and must never reach the executor.
type ActionBundle struct {
	Status          string
	Label           string
	CommentTemplate string
}

func (b ActionBundle) IsNoOp() bool {
	return b.Status == "" && b.Label == "" && b.CommentTemplate == ""
}

// TemplateVars holds the placeholder values substituted into a comment
// template at execution time. Resolution only selects the template; rendering
// is the executor's job.
type TemplateVars struct {
	PRURL    string
	PRNumber int
	Branch   string
}

// RenderTemplate substitutes {pr_url}, {pr_number} and {branch} placeholders.
func RenderTemplate(template string, vars TemplateVars) string {
	r := strings.NewReplacer(
		"{pr_url}", vars.PRURL,
		"{pr_number}", strconv.Itoa(vars.PRNumber),
		"{branch}", vars.Branch,
	)
	return r.Replace(template)
}
