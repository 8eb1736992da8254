package github_test

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jira-pr-sync/internal/domain/models"
	"jira-pr-sync/internal/infrastructure/github"
	"jira-pr-sync/internal/infrastructure/logger"
	"jira-pr-sync/internal/utils"
)

const testRepo = "acme/payments-service"

// newSource spins up an httptest server pretending to be the GitHub API and
// returns a source pointed at it. The go-github enterprise client prefixes
// REST routes with /api/v3.
func newSource(t *testing.T, handler http.HandlerFunc) (*github.ActivitySource, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	src, err := github.NewActivitySourceWithHTTPClient(srv.Client(), srv.URL, logger.New("dev"))
	require.NoError(t, err)
	return src, srv
}

func prJSON(number int, state, mergedAt, updatedAt, headRef, baseRef, title string) string {
	merged := "null"
	if mergedAt != "" {
		merged = fmt.Sprintf("%q", mergedAt)
	}
	return fmt.Sprintf(`{
		"number": %d,
		"state": %q,
		"title": %q,
		"body": "",
		"html_url": "https://github.com/acme/payments-service/pull/%d",
		"merged_at": %s,
		"updated_at": %q,
		"head": {"ref": %q},
		"base": {"ref": %q}
	}`, number, state, title, number, merged, updatedAt, headRef, baseRef)
}

func TestActivitySource_FetchPRActivity(t *testing.T) {
	now := time.Now().UTC()
	recent := now.Add(-time.Hour).Format(time.RFC3339)

	src, _ := newSource(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v3/repos/acme/payments-service/pulls", r.URL.Path)
		assert.Equal(t, "all", r.URL.Query().Get("state"))
		assert.Equal(t, "updated", r.URL.Query().Get("sort"))
		fmt.Fprintf(w, "[%s,%s,%s]",
			prJSON(42, "closed", recent, recent, "feature/ABC-7-fix", "DEV", "ABC-7 fix rounding"),
			prJSON(43, "open", "", recent, "feature/XYZ-1", "", "XYZ-1 add endpoint"),
			prJSON(44, "closed", "", recent, "chore/cleanup", "", "cleanup"),
		)
	})

	snaps, err := src.FetchPRActivity(context.Background(), testRepo, now.Add(-72*time.Hour))
	require.NoError(t, err)
	require.Len(t, snaps, 3)

	merged := snaps[0]
	assert.Equal(t, 42, merged.Number)
	assert.Equal(t, models.PRStatusMerged, merged.Status)
	assert.Equal(t, "DEV", merged.TargetBranch)
	assert.Equal(t, "feature/ABC-7-fix", merged.SourceBranch)
	assert.Equal(t, []string{"ABC-7"}, merged.IssueKeys)
	assert.Equal(t, "https://github.com/acme/payments-service/pull/42", merged.URL)

	open := snaps[1]
	assert.Equal(t, models.PRStatusOpen, open.Status)
	assert.Empty(t, open.TargetBranch)
	assert.Equal(t, []string{"XYZ-1"}, open.IssueKeys)

	closed := snaps[2]
	assert.Equal(t, models.PRStatusClosed, closed.Status)
	assert.Empty(t, closed.IssueKeys)
}

func TestActivitySource_StopsAtSinceCutoff(t *testing.T) {
	now := time.Now().UTC()
	recent := now.Add(-time.Hour).Format(time.RFC3339)
	stale := now.Add(-240 * time.Hour).Format(time.RFC3339)

	src, _ := newSource(t, func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprintf(w, "[%s,%s]",
			prJSON(50, "open", "", recent, "feature/ABC-1", "", "ABC-1"),
			prJSON(10, "open", "", stale, "feature/OLD-1", "", "OLD-1"),
		)
	})

	snaps, err := src.FetchPRActivity(context.Background(), testRepo, now.Add(-72*time.Hour))
	require.NoError(t, err)
	require.Len(t, snaps, 1)
	assert.Equal(t, 50, snaps[0].Number)
}

func TestActivitySource_EmptyHistoryIsEmptySlice(t *testing.T) {
	src, _ := newSource(t, func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, "[]")
	})

	snaps, err := src.FetchPRActivity(context.Background(), testRepo, time.Now().Add(-time.Hour))
	require.NoError(t, err)
	assert.NotNil(t, snaps)
	assert.Empty(t, snaps)
}

func TestActivitySource_APIErrorWrapsSourceUnavailable(t *testing.T) {
	src, _ := newSource(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	})

	snaps, err := src.FetchPRActivity(context.Background(), testRepo, time.Now().Add(-time.Hour))
	require.Error(t, err)
	assert.ErrorIs(t, err, utils.ErrSourceUnavailable)
	assert.Nil(t, snaps)
}

func TestActivitySource_InvalidRepoName(t *testing.T) {
	src, _ := newSource(t, func(w http.ResponseWriter, r *http.Request) {
		t.Error("no request expected")
	})

	for _, repo := range []string{"", "noslash", "/name", "owner/"} {
		_, err := src.FetchPRActivity(context.Background(), repo, time.Now())
		assert.ErrorIs(t, err, utils.ErrInvalidArgument, repo)
	}
}

func TestExtractIssueKeys(t *testing.T) {
	tests := []struct {
		name  string
		texts []string
		want  []string
	}{
		{
			name:  "branch and title",
			texts: []string{"feature/ABC-7-fix", "ABC-7 fix rounding", ""},
			want:  []string{"ABC-7"},
		},
		{
			name:  "multiple keys first-seen order",
			texts: []string{"feature/ABC-7", "relates to XYZ-12 and ABC-7", "see DEF-3"},
			want:  []string{"ABC-7", "XYZ-12", "DEF-3"},
		},
		{
			name:  "lowercase is not a key",
			texts: []string{"feature/abc-7", "abc-7 fix"},
			want:  []string{},
		},
		{
			name:  "digits in project code",
			texts: []string{"A1B2-99 rollout"},
			want:  []string{"A1B2-99"},
		},
		{
			name:  "no keys",
			texts: []string{"chore/cleanup", "tidy imports"},
			want:  []string{},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, github.ExtractIssueKeys(tt.texts...))
		})
	}
}
