// Package pkg provides SQL anti-pattern detection for Go applications.
//
// sqlcheck analyzes SQL statements against a library of well-known
// anti-pattern rules using lexical pattern matching, without parsing
// the statements into a syntax tree.
//
// # Package Structure
//
// The pkg directory contains several specialized packages:
//
//   - checker: High-level API for checking SQL scripts (recommended starting point)
//   - advisor: Low-level rule execution engine and registration system
//   - rules: The built-in anti-pattern rule library
//   - types: Core type definitions and data structures
//   - config: Configuration loading and management
//   - splitter: Lexical SQL statement splitting
//   - reporter: Console rendering of findings
//   - logger: Logging abstraction layer
//
// # Getting Started
//
// For most use cases, start with the checker package:
//
//	import (
//	    "github.com/nsxbet/sqlcheck/pkg/checker"
//	)
//
//	func main() {
//	    c := checker.New()
//	    result, err := c.Check(context.Background(), sqlScript)
//	    // Process results...
//	}
//
// # Rule Categories
//
// Rules are grouped by the kind of statement they target:
//
// Query Rules: Anti-patterns in data access statements
//   - SELECT * usage
//
// Creation Rules: Anti-patterns in schema definitions
//   - Multi-valued attributes packed into a single column
//   - Self-referencing foreign keys
//   - Missing primary keys
//   - Generic "id" primary key columns
//   - Missing foreign key constraints
//   - Imprecise floating-point types for exact values
//
// # Configuration
//
// Rules can be configured via YAML/JSON files or programmatically:
//
//	c := checker.New()
//	if err := c.WithConfig("custom-rules.yaml"); err != nil {
//	    log.Fatal(err)
//	}
//
// Result filtering:
//
//	errors := result.FilterByStatus(types.Advice_ERROR)
//	warnings := result.FilterByStatus(types.Advice_WARNING)
//
// # Custom Rules
//
// Implement custom rules by satisfying the Advisor interface:
//
//	type MyRule struct{}
//
//	func (r *MyRule) Check(ctx context.Context, checkCtx advisor.Context) ([]*types.Advice, error) {
//	    // Detection logic
//	    return advices, nil
//	}
//
//	func init() {
//	    advisor.Register("custom.my-rule", types.RuleLevel_WARNING, &MyRule{})
//	}
//
// Pattern-based rules can instead be registered as data:
//
//	advisor.RegisterPattern(advisor.Rule{
//	    Type:             "custom.no-delete",
//	    Title:            "DELETE statements are forbidden",
//	    Pattern:          `(?i)(delete\s+from)`,
//	    Level:            types.RuleLevel_ERROR,
//	    PatternType:      types.PatternType_QUERY,
//	    MatchIsViolation: true,
//	})
//
// # Thread Safety
//
// All public APIs are safe for concurrent use by multiple goroutines.
// Checker instances can be reused across multiple check operations.
//
// # Error Handling
//
// Check operations distinguish between:
//   - Detected anti-patterns (returned as Advice in Result)
//   - System errors (returned as error from Check)
//
// Individual rule failures are logged but don't cause Check to return an
// error, allowing partial results even when some rules fail.
//
// # Performance
//
// Check operations support context cancellation for timeout control:
//
//	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
//	defer cancel()
//	result, err := c.Check(ctx, sql)
//
// Large SQL scripts are processed statement by statement; cancellation is
// checked between statements.
package pkg
