package jira

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v4"

	"jira-pr-sync/internal/domain/models"
	ports "jira-pr-sync/internal/domain/ports/output"
	"jira-pr-sync/internal/domain/ports/output/executor"
	"jira-pr-sync/internal/utils"
)

var _ executor.ActionExecutor = (*Executor)(nil)

// Executor applies action bundles through the Jira REST API. Transient
// failures (network errors, 429, 5xx) are retried with exponential backoff up
// to MaxElapsed before a terminal error is reported; 4xx responses fail
// immediately. A throttle delay paces consecutive requests so a burst of
// actions does not hammer the instance.
type Executor struct {
	baseURL    string
	username   string
	apiToken   string
	client     *http.Client
	throttle   time.Duration
	maxElapsed time.Duration
	log        ports.Logger
}

type Options struct {
	BaseURL    string
	Username   string
	APIToken   string
	Timeout    time.Duration
	Throttle   time.Duration
	MaxElapsed time.Duration
}

func NewExecutor(opts Options, log ports.Logger) (*Executor, error) {
	if opts.BaseURL == "" {
		return nil, fmt.Errorf("%w: jira base url is required", utils.ErrInvalidArgument)
	}
	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	maxElapsed := opts.MaxElapsed
	if maxElapsed <= 0 {
		maxElapsed = 60 * time.Second
	}
	return &Executor{
		baseURL:    strings.TrimRight(opts.BaseURL, "/"),
		username:   opts.Username,
		apiToken:   opts.APIToken,
		client:     &http.Client{Timeout: timeout},
		throttle:   opts.Throttle,
		maxElapsed: maxElapsed,
		log:        log,
	}, nil
}

// Apply performs the bundle's facets in a fixed order: comment, label, status
// transition. The first terminal failure stops the remaining facets so the
// whole bundle retries on the next cycle.
func (e *Executor) Apply(ctx context.Context, issueKey string, bundle models.ActionBundle, vars models.TemplateVars) error {
	if issueKey == "" {
		return utils.ErrInvalidArgument
	}
	if bundle.IsNoOp() {
		return fmt.Errorf("%w: refusing to execute empty bundle for %s", utils.ErrInvalidArgument, issueKey)
	}

	if bundle.CommentTemplate != "" {
		comment := models.RenderTemplate(bundle.CommentTemplate, vars)
		if err := e.addComment(ctx, issueKey, comment); err != nil {
			return fmt.Errorf("add comment to %s: %w", issueKey, err)
		}
	}
	if bundle.Label != "" {
		if err := e.addLabel(ctx, issueKey, bundle.Label); err != nil {
			return fmt.Errorf("add label to %s: %w", issueKey, err)
		}
	}
	if bundle.Status != "" {
		if err := e.transition(ctx, issueKey, bundle.Status); err != nil {
			return fmt.Errorf("transition %s: %w", issueKey, err)
		}
	}
	return nil
}

func (e *Executor) addComment(ctx context.Context, issueKey, body string) error {
	payload := map[string]string{"body": body}
	path := fmt.Sprintf("/rest/api/2/issue/%s/comment", issueKey)
	return e.withRetry(ctx, func() error {
		return e.do(ctx, http.MethodPost, path, payload, nil)
	})
}

func (e *Executor) addLabel(ctx context.Context, issueKey, label string) error {
	payload := map[string]any{
		"update": map[string]any{
			"labels": []map[string]string{{"add": label}},
		},
	}
	path := fmt.Sprintf("/rest/api/2/issue/%s", issueKey)
	return e.withRetry(ctx, func() error {
		return e.do(ctx, http.MethodPut, path, payload, nil)
	})
}

// transition looks up the transition id by its display name and posts it.
// The lookup runs inside the retry loop because available transitions depend
// on the issue's current (possibly still-settling) status.
func (e *Executor) transition(ctx context.Context, issueKey, statusName string) error {
	path := fmt.Sprintf("/rest/api/2/issue/%s/transitions", issueKey)
	return e.withRetry(ctx, func() error {
		var list transitionList
		if err := e.do(ctx, http.MethodGet, path, nil, &list); err != nil {
			return err
		}
		id := ""
		for _, t := range list.Transitions {
			if t.Name == statusName || (t.To != nil && t.To.Name == statusName) {
				id = t.ID
				break
			}
		}
		if id == "" {
			return backoff.Permanent(fmt.Errorf("no transition to %q available on %s", statusName, issueKey))
		}
		payload := map[string]any{"transition": map[string]string{"id": id}}
		return e.do(ctx, http.MethodPost, path, payload, nil)
	})
}

type transitionList struct {
	Transitions []struct {
		ID   string `json:"id"`
		Name string `json:"name"`
		To   *struct {
			Name string `json:"name"`
		} `json:"to"`
	} `json:"transitions"`
}

// withRetry runs op with a fresh exponential backoff. BackOff values are
// stateful, so one is built per call.
func (e *Executor) withRetry(ctx context.Context, op func() error) error {
	bo := backoff.NewExponentialBackOff()
	bo.MaxElapsedTime = e.maxElapsed
	return backoff.Retry(op, backoff.WithContext(bo, ctx))
}

// do issues one HTTP request. Responses in the 4xx range (except 429) are
// wrapped in backoff.Permanent so the retry loop stops immediately.
func (e *Executor) do(ctx context.Context, method, path string, payload any, out any) error {
	if err := e.pace(ctx); err != nil {
		return backoff.Permanent(err)
	}

	var body io.Reader
	if payload != nil {
		buf, err := json.Marshal(payload)
		if err != nil {
			return backoff.Permanent(fmt.Errorf("marshal payload: %w", err))
		}
		body = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, e.baseURL+path, body)
	if err != nil {
		return backoff.Permanent(err)
	}
	req.Header.Set("Content-Type", "application/json")
	if e.username != "" {
		req.SetBasicAuth(e.username, e.apiToken)
	}

	resp, err := e.client.Do(req)
	if err != nil {
		return err // transport error, retryable
	}
	defer func() { _ = resp.Body.Close() }()

	switch {
	case resp.StatusCode >= 200 && resp.StatusCode < 300:
	case resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= 500:
		e.log.Warn("jira transient error", "method", method, "path", path, "status", resp.StatusCode)
		return fmt.Errorf("jira responded %d for %s %s", resp.StatusCode, method, path)
	default:
		data, _ := io.ReadAll(io.LimitReader(resp.Body, 2048))
		return backoff.Permanent(fmt.Errorf("jira responded %d for %s %s: %s", resp.StatusCode, method, path, strings.TrimSpace(string(data))))
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("decode response: %w", err)
		}
	}
	return nil
}

// pace applies the configured delay before each request.
func (e *Executor) pace(ctx context.Context) error {
	if e.throttle <= 0 {
		return nil
	}
	select {
	case <-time.After(e.throttle):
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
