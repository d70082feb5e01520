// Package checker provides a high-level API for SQL anti-pattern checking.
//
// This package offers a simplified interface for checking SQL text against
// the registered anti-pattern rules, making it easy to integrate schema and
// query quality checks into Go applications.
//
// # Quick Start
//
//	c := checker.New()
//
//	result, err := c.Check(context.Background(), "SELECT * FROM users;")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	fmt.Printf("Found %d issues\n", result.Summary.Total)
//	for _, advice := range result.Advices {
//	    fmt.Printf("[%s] %s\n", advice.Status, advice.Title)
//	}
//
// # Using Custom Configuration
//
//	c := checker.New()
//	if err := c.WithConfig("custom-rules.yaml"); err != nil {
//	    log.Fatal(err)
//	}
//	result, err := c.Check(ctx, sqlStatements)
package checker

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/nsxbet/sqlcheck/pkg/advisor"
	"github.com/nsxbet/sqlcheck/pkg/config"
	_ "github.com/nsxbet/sqlcheck/pkg/rules"
	"github.com/nsxbet/sqlcheck/pkg/splitter"
	"github.com/nsxbet/sqlcheck/pkg/types"
)

// Checker runs every registered anti-pattern rule over SQL text.
//
// Checker is safe for concurrent use by multiple goroutines once
// configured; the configuration is never mutated during a check.
type Checker struct {
	config *config.Config
}

// New creates a Checker with the default configuration: every rule
// enabled at its default level, warnings and errors reported.
func New() *Checker {
	return &Checker{
		config: config.DefaultConfig(),
	}
}

// WithConfig loads rule configuration from a YAML or JSON file.
// This replaces the current configuration.
func (c *Checker) WithConfig(filename string) error {
	cfg, err := config.LoadFromFile(filename)
	if err != nil {
		return fmt.Errorf("failed to load config from %s: %w", filename, err)
	}
	c.config = cfg
	return nil
}

// WithConfigObject sets a custom configuration object directly.
// It returns the Checker for method chaining.
func (c *Checker) WithConfigObject(cfg *config.Config) *Checker {
	c.config = cfg
	return c
}

// Check splits sql into statements and runs every enabled rule against
// each one, returning all findings and a summary.
//
// The context supports cancellation: checking stops between statements
// when the context is cancelled, returning partial results. Individual
// rule failures are logged and skipped, never aborting the run.
func (c *Checker) Check(ctx context.Context, sql string, opts ...CheckOption) (*Result, error) {
	checkOpts := &checkOptions{}
	for _, opt := range opts {
		opt(checkOpts)
	}

	ruleTypes := advisor.Types()
	statements := splitter.SplitSQL(sql)

	var allAdvices []*types.Advice
	for _, stmt := range statements {
		if stmt.Empty {
			continue
		}

		select {
		case <-ctx.Done():
			return &Result{
				Advices: allAdvices,
				Summary: calculateSummary(allAdvices),
			}, ctx.Err()
		default:
		}

		for _, ruleType := range ruleTypes {
			level := c.config.LevelFor(string(ruleType), advisor.DefaultLevel(ruleType))
			if level == types.RuleLevel_DISABLED {
				continue
			}

			checkCtx := advisor.Context{
				Config:    c.config,
				Rule:      &types.CheckRule{Type: string(ruleType), Level: level},
				Statement: stmt.Text,
				Filename:  checkOpts.filename,
				BaseLine:  stmt.BaseLine,
			}

			advices, err := advisor.Check(ctx, ruleType, checkCtx)
			if err != nil {
				slog.Warn("rule check failed", "rule_type", ruleType, "file", checkOpts.filename, "error", err)
				continue
			}

			for _, advice := range advices {
				if checkOpts.sink != nil {
					checkOpts.sink.Emit(advice)
				}
			}
			allAdvices = append(allAdvices, advices...)
		}
	}

	return &Result{
		Advices: allAdvices,
		Summary: calculateSummary(allAdvices),
	}, nil
}

// calculateSummary computes aggregate statistics from advices
func calculateSummary(advices []*types.Advice) Summary {
	summary := Summary{}
	for _, advice := range advices {
		summary.Total++
		switch advice.Status {
		case types.Advice_ERROR:
			summary.Errors++
		case types.Advice_WARNING:
			summary.Warnings++
		}
	}
	return summary
}
