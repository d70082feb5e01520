package config

import (
	"encoding/json"
	"log/slog"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/nsxbet/sqlcheck/pkg/types"
)

// Config represents the configuration for a check run.
//
// A Config is constructed once before any statement is checked and is
// read-only for the duration of the run; rules only ever read it.
type Config struct {
	// MinLevel is the minimum severity that gets reported.
	// Findings below it are suppressed by the pattern matcher.
	MinLevel types.RuleLevel `yaml:"minLevel" json:"minLevel"`

	// Verbose controls whether the full rationale text is attached
	// to every finding or only the title.
	Verbose bool `yaml:"verbose" json:"verbose"`

	// Rules holds per-rule overrides. A rule absent from the list runs
	// at its default level; a rule listed as DISABLED does not run.
	Rules []*types.CheckRule `yaml:"rules" json:"rules"`
}

// LoadFromFile loads configuration from a YAML or JSON file
func LoadFromFile(filename string) (*Config, error) {
	slog.Debug("loading config from file", "filename", filename)
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}

	var cfg Config
	// Try YAML first, then JSON
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		slog.Debug("yaml unmarshal failed, trying json", "error", err)
		if err := json.Unmarshal(data, &cfg); err != nil {
			return nil, err
		}
	}

	if cfg.MinLevel == types.RuleLevel_LEVEL_UNSPECIFIED {
		cfg.MinLevel = types.RuleLevel_WARNING
	}

	slog.Debug("loaded config", "rules_count", len(cfg.Rules), "min_level", cfg.MinLevel)
	return &cfg, nil
}

// DefaultConfig returns a configuration with every rule enabled at its
// default level and warnings reported.
func DefaultConfig() *Config {
	return &Config{
		MinLevel: types.RuleLevel_WARNING,
	}
}

// LevelFor resolves the effective level for a rule: the configured
// override if one exists, otherwise the rule's default level.
func (c *Config) LevelFor(ruleType string, defaultLevel types.RuleLevel) types.RuleLevel {
	for _, rule := range c.Rules {
		if rule.Type == ruleType && rule.Level != types.RuleLevel_LEVEL_UNSPECIFIED {
			return rule.Level
		}
	}
	return defaultLevel
}

// ShouldReport reports whether a finding at the given status clears the
// configured minimum severity.
func (c *Config) ShouldReport(status types.Advice_Status) bool {
	switch c.MinLevel {
	case types.RuleLevel_ERROR:
		return status == types.Advice_ERROR
	case types.RuleLevel_WARNING, types.RuleLevel_LEVEL_UNSPECIFIED:
		return status == types.Advice_ERROR || status == types.Advice_WARNING
	default:
		return false
	}
}
