package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/nsxbet/sqlcheck/pkg/types"
)

func writeTempConfig(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadFromFile_YAML(t *testing.T) {
	path := writeTempConfig(t, "rules.yaml", `
minLevel: ERROR
verbose: true
rules:
  - type: query.select-star
    level: DISABLED
  - type: creation.primary-key-exists
    level: ERROR
`)

	cfg, err := LoadFromFile(path)
	require.NoError(t, err)
	require.Equal(t, types.RuleLevel_ERROR, cfg.MinLevel)
	require.True(t, cfg.Verbose)
	require.Len(t, cfg.Rules, 2)
	require.Equal(t, "query.select-star", cfg.Rules[0].Type)
	require.Equal(t, types.RuleLevel_DISABLED, cfg.Rules[0].Level)
	require.Equal(t, types.RuleLevel_ERROR, cfg.Rules[1].Level)
}

func TestLoadFromFile_JSON(t *testing.T) {
	path := writeTempConfig(t, "rules.json", `{
  "minLevel": "WARNING",
  "rules": [
    {"type": "creation.generic-primary-key", "level": "WARNING"}
  ]
}`)

	cfg, err := LoadFromFile(path)
	require.NoError(t, err)
	require.Equal(t, types.RuleLevel_WARNING, cfg.MinLevel)
	require.Len(t, cfg.Rules, 1)
	require.Equal(t, types.RuleLevel_WARNING, cfg.Rules[0].Level)
}

func TestLoadFromFile_DefaultsMinLevel(t *testing.T) {
	path := writeTempConfig(t, "rules.yaml", `
rules:
  - type: query.select-star
    level: ERROR
`)

	cfg, err := LoadFromFile(path)
	require.NoError(t, err)
	require.Equal(t, types.RuleLevel_WARNING, cfg.MinLevel)
}

func TestLoadFromFile_Missing(t *testing.T) {
	_, err := LoadFromFile(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
}

func TestLevelFor(t *testing.T) {
	cfg := &Config{
		Rules: []*types.CheckRule{
			{Type: "query.select-star", Level: types.RuleLevel_DISABLED},
			{Type: "creation.unset", Level: types.RuleLevel_LEVEL_UNSPECIFIED},
		},
	}

	require.Equal(t, types.RuleLevel_DISABLED,
		cfg.LevelFor("query.select-star", types.RuleLevel_ERROR))
	// An unspecified override falls back to the default.
	require.Equal(t, types.RuleLevel_WARNING,
		cfg.LevelFor("creation.unset", types.RuleLevel_WARNING))
	// A rule absent from the list runs at its default.
	require.Equal(t, types.RuleLevel_ERROR,
		cfg.LevelFor("creation.other", types.RuleLevel_ERROR))
}

func TestShouldReport(t *testing.T) {
	warnCfg := &Config{MinLevel: types.RuleLevel_WARNING}
	require.True(t, warnCfg.ShouldReport(types.Advice_ERROR))
	require.True(t, warnCfg.ShouldReport(types.Advice_WARNING))

	errCfg := &Config{MinLevel: types.RuleLevel_ERROR}
	require.True(t, errCfg.ShouldReport(types.Advice_ERROR))
	require.False(t, errCfg.ShouldReport(types.Advice_WARNING))

	unsetCfg := &Config{}
	require.True(t, unsetCfg.ShouldReport(types.Advice_ERROR))
	require.True(t, unsetCfg.ShouldReport(types.Advice_WARNING))
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	require.Equal(t, types.RuleLevel_WARNING, cfg.MinLevel)
	require.False(t, cfg.Verbose)
	require.Empty(t, cfg.Rules)
}
