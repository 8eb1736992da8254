package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jira-pr-sync/internal/infrastructure/config"
	"jira-pr-sync/internal/utils"
)

func writeConfig(t *testing.T, yaml string) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(yaml), 0o644))
	return dir
}

func TestLoad_FullConfig(t *testing.T) {
	dir := writeConfig(t, `
env: prod
sync:
  repo: acme/payments-service
  lookback_hours: 48
  interval_minutes: 5
github:
  token: ghp_secret
jira:
  base_url: https://jira.example.com
  username: sync-bot
  api_token: secret
database:
  host: localhost
  db_name: jirasync
rules:
  opened:
    label: in-review
  closed:
    label: pr-closed
    comment_template: "PR #{pr_number} closed"
  merged:
    DEV:
      status: Ready for Testing
      label: merged-dev
      comment_template: "Merged to DEV: {pr_url}"
    HOT:
      status: Done
      enabled: false
`)

	cfg, err := config.Load(dir)
	require.NoError(t, err)

	assert.Equal(t, "prod", cfg.Env)
	assert.Equal(t, "acme/payments-service", cfg.Sync.Repo)
	assert.Equal(t, 48, cfg.Sync.LookbackHours)
	assert.Equal(t, 5, cfg.Sync.IntervalMinutes)
	assert.Equal(t, "ghp_secret", cfg.GitHub.Token)
	assert.Equal(t, "https://jira.example.com", cfg.Jira.BaseURL)
	assert.Equal(t, "localhost", cfg.Database.Host)

	require.NotNil(t, cfg.Rules.Opened)
	assert.Equal(t, "in-review", cfg.Rules.Opened.Label)
	assert.True(t, cfg.Rules.Opened.Enabled)

	require.NotNil(t, cfg.Rules.Closed)
	assert.Equal(t, "PR #{pr_number} closed", cfg.Rules.Closed.CommentTemplate)

	require.Contains(t, cfg.Rules.Merged, "DEV")
	assert.Equal(t, "Ready for Testing", cfg.Rules.Merged["DEV"].Status)
	assert.True(t, cfg.Rules.Merged["DEV"].Enabled)

	require.Contains(t, cfg.Rules.Merged, "HOT")
	assert.False(t, cfg.Rules.Merged["HOT"].Enabled)
}

func TestLoad_Defaults(t *testing.T) {
	dir := writeConfig(t, `
sync:
  repo: acme/payments-service
`)

	cfg, err := config.Load(dir)
	require.NoError(t, err)

	assert.Equal(t, "dev", cfg.Env)
	assert.Equal(t, 72, cfg.Sync.LookbackHours)
	assert.Equal(t, 10, cfg.Sync.IntervalMinutes)
	assert.Equal(t, 30, cfg.Jira.TimeoutSeconds)
	assert.Equal(t, 500, cfg.Jira.ThrottleMillis)
	assert.Equal(t, "jirasync", cfg.Database.DbName)
	assert.Equal(t, "migrations", cfg.Database.MigrationsPath)
	assert.Nil(t, cfg.Rules.Opened)
	assert.Nil(t, cfg.Rules.Closed)
	assert.Empty(t, cfg.Rules.Merged)
}

func TestLoad_Validation(t *testing.T) {
	tests := []struct {
		name      string
		yaml      string
		wantIsErr error
	}{
		{
			name:      "missing repo",
			yaml:      "env: dev\n",
			wantIsErr: utils.ErrInvalidArgument,
		},
		{
			name: "non-positive lookback",
			yaml: `
sync:
  repo: acme/payments-service
  lookback_hours: 0
`,
			wantIsErr: utils.ErrInvalidArgument,
		},
		{
			name: "explicitly empty rule field",
			yaml: `
sync:
  repo: acme/payments-service
rules:
  opened:
    label: ""
`,
			wantIsErr: utils.ErrRuleInvalid,
		},
		{
			name: "enabled rule with no effect",
			yaml: `
sync:
  repo: acme/payments-service
rules:
  merged:
    DEV:
      enabled: true
`,
			wantIsErr: utils.ErrRuleInvalid,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := writeConfig(t, tt.yaml)
			cfg, err := config.Load(dir)
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantIsErr)
			assert.Nil(t, cfg)
		})
	}
}

func TestLoad_MergedBranchKeysKeepCase(t *testing.T) {
	dir := writeConfig(t, `
sync:
  repo: acme/payments-service
rules:
  merged:
    DEV:
      label: merged-dev
    dev:
      label: merged-dev-lower
`)

	cfg, err := config.Load(dir)
	require.NoError(t, err)

	require.Contains(t, cfg.Rules.Merged, "DEV")
	require.Contains(t, cfg.Rules.Merged, "dev")
	assert.Equal(t, "merged-dev", cfg.Rules.Merged["DEV"].Label)
	assert.Equal(t, "merged-dev-lower", cfg.Rules.Merged["dev"].Label)
	assert.NotContains(t, cfg.Rules.Merged, "Dev")
}

func TestLoad_DisabledRuleWithNoEffectIsAllowed(t *testing.T) {
	dir := writeConfig(t, `
sync:
  repo: acme/payments-service
rules:
  closed:
    enabled: false
`)

	cfg, err := config.Load(dir)
	require.NoError(t, err)
	require.NotNil(t, cfg.Rules.Closed)
	assert.False(t, cfg.Rules.Closed.Enabled)
	assert.True(t, cfg.Rules.Closed.Bundle().IsNoOp())
}

func TestLoad_MissingFile(t *testing.T) {
	cfg, err := config.Load(t.TempDir())
	require.Error(t, err)
	assert.Nil(t, cfg)
}
