package config

import (
	"fmt"
	"log"
	"os"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"jira-pr-sync/internal/domain/models"
	"jira-pr-sync/internal/utils"
)

type Config struct {
	Env      string
	Sync     Sync
	GitHub   GitHub
	Jira     Jira
	Database Database
	Rules    models.RuleSet
}

type Sync struct {
	Repo            string
	LookbackHours   int
	IntervalMinutes int
}

type GitHub struct {
	Token   string
	BaseURL string // enterprise installs only; empty means github.com
}

type Jira struct {
	BaseURL           string
	Username          string
	APIToken          string
	TimeoutSeconds    int
	MaxElapsedSeconds int
	ThrottleMillis    int
}

type Database struct {
	Username       string
	Password       string
	Host           string
	Port           string
	DbName         string
	MigrationsPath string
}

// ruleConfig mirrors one rule section in the YAML. Pointer fields distinguish
// "absent" from an explicitly empty string, which is rejected at load time
// rather than discovered at execution time. Enabled defaults to true when the
// key is absent.
type ruleConfig struct {
	Status          *string `yaml:"status"`
	Label           *string `yaml:"label"`
	CommentTemplate *string `yaml:"comment_template"`
	Enabled         *bool   `yaml:"enabled"`
}

type rulesConfig struct {
	Opened *ruleConfig            `yaml:"opened"`
	Closed *ruleConfig            `yaml:"closed"`
	Merged map[string]*ruleConfig `yaml:"merged"`
}

func MustLoad() *Config {
	cfg, err := Load("./config")
	if err != nil {
		log.Printf("Error loading config: %s", err)
		os.Exit(1)
	}
	return cfg
}

func Load(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(path)

	v.SetDefault("env", "dev")

	v.SetDefault("sync.lookback_hours", 72)
	v.SetDefault("sync.interval_minutes", 10)

	v.SetDefault("jira.timeout_seconds", 30)
	v.SetDefault("jira.max_elapsed_seconds", 60)
	v.SetDefault("jira.throttle_millis", 500)

	v.SetDefault("database.username", "postgres")
	v.SetDefault("database.password", "admin")
	v.SetDefault("database.host", "sync-db")
	v.SetDefault("database.port", "5432")
	v.SetDefault("database.db_name", "jirasync")
	v.SetDefault("database.migrations_path", "migrations")

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	// viper lowercases map keys, which would fold branch names like DEV and
	// dev together. Branch matching is case sensitive, so the rules section is
	// decoded straight from the file instead.
	raw, err := os.ReadFile(v.ConfigFileUsed())
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	var doc struct {
		Rules rulesConfig `yaml:"rules"`
	}
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("unmarshal rules: %w", err)
	}
	rules, err := buildRules(doc.Rules)
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		Env: v.GetString("env"),
		Sync: Sync{
			Repo:            v.GetString("sync.repo"),
			LookbackHours:   v.GetInt("sync.lookback_hours"),
			IntervalMinutes: v.GetInt("sync.interval_minutes"),
		},
		GitHub: GitHub{
			Token:   v.GetString("github.token"),
			BaseURL: v.GetString("github.base_url"),
		},
		Jira: Jira{
			BaseURL:           v.GetString("jira.base_url"),
			Username:          v.GetString("jira.username"),
			APIToken:          v.GetString("jira.api_token"),
			TimeoutSeconds:    v.GetInt("jira.timeout_seconds"),
			MaxElapsedSeconds: v.GetInt("jira.max_elapsed_seconds"),
			ThrottleMillis:    v.GetInt("jira.throttle_millis"),
		},
		Database: Database{
			Username:       v.GetString("database.username"),
			Password:       v.GetString("database.password"),
			Host:           v.GetString("database.host"),
			Port:           v.GetString("database.port"),
			DbName:         v.GetString("database.db_name"),
			MigrationsPath: v.GetString("database.migrations_path"),
		},
		Rules: rules,
	}

	if cfg.Sync.Repo == "" {
		return nil, fmt.Errorf("%w: sync.repo is required", utils.ErrInvalidArgument)
	}
	if cfg.Sync.LookbackHours <= 0 || cfg.Sync.IntervalMinutes <= 0 {
		return nil, fmt.Errorf("%w: sync.lookback_hours and sync.interval_minutes must be positive", utils.ErrInvalidArgument)
	}
	return cfg, nil
}

func buildRules(rc rulesConfig) (models.RuleSet, error) {
	rules := models.RuleSet{}

	opened, err := buildRule("opened", rc.Opened)
	if err != nil {
		return rules, err
	}
	closed, err := buildRule("closed", rc.Closed)
	if err != nil {
		return rules, err
	}
	rules.Opened = opened
	rules.Closed = closed

	if len(rc.Merged) > 0 {
		rules.Merged = make(map[string]*models.Rule, len(rc.Merged))
		for branch, r := range rc.Merged {
			if branch == "" {
				return rules, fmt.Errorf("%w: merged rule with empty branch name", utils.ErrRuleInvalid)
			}
			rule, err := buildRule("merged."+branch, r)
			if err != nil {
				return rules, err
			}
			rules.Merged[branch] = rule
		}
	}
	return rules, nil
}

func buildRule(name string, rc *ruleConfig) (*models.Rule, error) {
	if rc == nil {
		return nil, nil
	}
	for field, value := range map[string]*string{
		"status":           rc.Status,
		"label":            rc.Label,
		"comment_template": rc.CommentTemplate,
	} {
		if value != nil && *value == "" {
			return nil, fmt.Errorf("%w: rule %s has explicitly empty %s", utils.ErrRuleInvalid, name, field)
		}
	}

	rule := &models.Rule{Enabled: true}
	if rc.Enabled != nil {
		rule.Enabled = *rc.Enabled
	}
	if rc.Status != nil {
		rule.Status = *rc.Status
	}
	if rc.Label != nil {
		rule.Label = *rc.Label
	}
	if rc.CommentTemplate != nil {
		rule.CommentTemplate = *rc.CommentTemplate
	}

	if rule.Enabled && rule.Status == "" && rule.Label == "" && rule.CommentTemplate == "" {
		return nil, fmt.Errorf("%w: rule %s is enabled but has no effect", utils.ErrRuleInvalid, name)
	}
	return rule, nil
}
