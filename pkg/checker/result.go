package checker

import (
	"fmt"

	"github.com/nsxbet/sqlcheck/pkg/types"
)

// Result contains the results of a check operation.
//
// It includes all findings from the enabled rules and aggregate
// statistics for quick analysis.
type Result struct {
	// Advices contains all findings from the check.
	// Empty if no issues were found.
	Advices []*types.Advice

	// Summary provides aggregate statistics about the findings.
	Summary Summary
}

// Summary provides aggregate statistics about check findings.
type Summary struct {
	// Total number of findings (errors + warnings)
	Total int

	// Errors is the count of ERROR-level findings.
	Errors int

	// Warnings is the count of WARNING-level findings.
	Warnings int
}

// HasErrors returns true if the check found any ERROR-level findings.
//
// This is useful for CI pipelines that should fail on errors:
//
//	if result.HasErrors() {
//	    os.Exit(1)
//	}
func (r *Result) HasErrors() bool {
	return r.Summary.Errors > 0
}

// HasWarnings returns true if the check found any WARNING-level findings.
func (r *Result) HasWarnings() bool {
	return r.Summary.Warnings > 0
}

// IsClean returns true if the check found no errors or warnings.
func (r *Result) IsClean() bool {
	return r.Summary.Errors == 0 && r.Summary.Warnings == 0
}

// String returns a human-readable summary of the check results.
func (r *Result) String() string {
	return fmt.Sprintf(
		"Check Results: %d total (%d errors, %d warnings)",
		r.Summary.Total,
		r.Summary.Errors,
		r.Summary.Warnings,
	)
}

// FilterByStatus returns only the advices with the specified status.
//
//	errors := result.FilterByStatus(types.Advice_ERROR)
func (r *Result) FilterByStatus(status types.Advice_Status) []*types.Advice {
	filtered := make([]*types.Advice, 0)
	for _, advice := range r.Advices {
		if advice.Status == status {
			filtered = append(filtered, advice)
		}
	}
	return filtered
}

// FilterByPatternType returns only the advices with the specified
// classification (QUERY or CREATION).
func (r *Result) FilterByPatternType(patternType types.PatternType) []*types.Advice {
	filtered := make([]*types.Advice, 0)
	for _, advice := range r.Advices {
		if advice.PatternType == patternType {
			filtered = append(filtered, advice)
		}
	}
	return filtered
}
