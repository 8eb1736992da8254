package github

import (
	"context"
	"fmt"
	"net/http"
	"regexp"
	"strings"
	"time"

	"github.com/google/go-github/v68/github"

	"jira-pr-sync/internal/domain/models"
	ports "jira-pr-sync/internal/domain/ports/output"
	"jira-pr-sync/internal/domain/ports/output/activity"
	"jira-pr-sync/internal/utils"
)

var _ activity.ActivitySource = (*ActivitySource)(nil)

// issueKeyPattern matches Jira issue keys like ABC-7 in branch names, titles
// and bodies.
var issueKeyPattern = regexp.MustCompile(`\b[A-Z][A-Z0-9]+-\d+\b`)

const listPageSize = 50

// ActivitySource fetches pull-request snapshots from the GitHub API.
type ActivitySource struct {
	client *github.Client
	log    ports.Logger
}

// NewActivitySource creates a source with the given OAuth token. An empty
// token yields an unauthenticated client (60 req/hour). baseURL is for
// GitHub Enterprise installs; empty means github.com.
func NewActivitySource(token string, baseURL string, log ports.Logger) (*ActivitySource, error) {
	client := github.NewClient(nil)
	if token != "" {
		client = client.WithAuthToken(token)
	}
	if baseURL != "" {
		var err error
		client, err = client.WithEnterpriseURLs(baseURL, baseURL)
		if err != nil {
			return nil, fmt.Errorf("configure enterprise urls: %w", err)
		}
	}
	return &ActivitySource{client: client, log: log}, nil
}

// NewActivitySourceWithHTTPClient creates a source over a custom HTTP client,
// primarily for httptest servers.
func NewActivitySourceWithHTTPClient(httpClient *http.Client, baseURL string, log ports.Logger) (*ActivitySource, error) {
	client := github.NewClient(httpClient)
	if baseURL != "" {
		var err error
		client, err = client.WithEnterpriseURLs(baseURL, baseURL)
		if err != nil {
			return nil, fmt.Errorf("configure enterprise urls: %w", err)
		}
	}
	return &ActivitySource{client: client, log: log}, nil
}

// FetchPRActivity lists the repo's pull requests updated since the given
// time, newest first. Empty history is an empty slice; transport and API
// errors wrap utils.ErrSourceUnavailable so the caller can abort the cycle.
func (s *ActivitySource) FetchPRActivity(ctx context.Context, repo string, since time.Time) ([]*models.PullRequestSnapshot, error) {
	owner, name, err := splitRepo(repo)
	if err != nil {
		return nil, err
	}

	observedAt := time.Now().UTC()
	snapshots := make([]*models.PullRequestSnapshot, 0)
	opts := &github.PullRequestListOptions{
		State:       "all",
		Sort:        "updated",
		Direction:   "desc",
		ListOptions: github.ListOptions{PerPage: listPageSize},
	}

	for {
		prs, resp, err := s.client.PullRequests.List(ctx, owner, name, opts)
		if err != nil {
			if _, ok := err.(*github.RateLimitError); ok {
				s.log.Warn("github rate limited", "repo", repo)
			}
			return nil, fmt.Errorf("%w: list pulls for %s: %v", utils.ErrSourceUnavailable, repo, err)
		}

		for _, pr := range prs {
			if pr.GetUpdatedAt().Time.Before(since) {
				// Sorted by updated desc; everything after this is older.
				return snapshots, nil
			}
			snapshots = append(snapshots, s.snapshot(repo, pr, observedAt))
		}

		if resp.NextPage == 0 {
			break
		}
		opts.Page = resp.NextPage
	}
	return snapshots, nil
}

func (s *ActivitySource) snapshot(repo string, pr *github.PullRequest, observedAt time.Time) *models.PullRequestSnapshot {
	snap := &models.PullRequestSnapshot{
		Repo:         repo,
		Number:       pr.GetNumber(),
		Title:        pr.GetTitle(),
		URL:          pr.GetHTMLURL(),
		SourceBranch: pr.GetHead().GetRef(),
		Status:       models.PRStatusOpen,
		IssueKeys:    ExtractIssueKeys(pr.GetHead().GetRef(), pr.GetTitle(), pr.GetBody()),
		ObservedAt:   observedAt,
	}
	switch {
	case pr.MergedAt != nil:
		snap.Status = models.PRStatusMerged
		snap.TargetBranch = pr.GetBase().GetRef()
	case pr.GetState() == "closed":
		snap.Status = models.PRStatusClosed
	}
	return snap
}

// ExtractIssueKeys collects Jira issue keys from the given texts, first-seen
// order, deduplicated.
func ExtractIssueKeys(texts ...string) []string {
	var keys []string
	for _, text := range texts {
		keys = append(keys, issueKeyPattern.FindAllString(text, -1)...)
	}
	return utils.DedupStrings(keys)
}

func splitRepo(repo string) (owner, name string, err error) {
	parts := strings.SplitN(repo, "/", 2)
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return "", "", fmt.Errorf("%w: repo must be owner/name, got %q", utils.ErrInvalidArgument, repo)
	}
	return parts[0], parts[1], nil
}
