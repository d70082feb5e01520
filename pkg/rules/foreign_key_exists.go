package rules

import (
	"github.com/nsxbet/sqlcheck/pkg/advisor"
	"github.com/nsxbet/sqlcheck/pkg/types"
)

const foreignKeyExistsMessage = `● Consider adding a foreign key:
Even though it seems at first that skipping foreign key constraints makes your
database design simpler, more flexible, or speedier, you pay for this in other
ways: it becomes your responsibility to write code to ensure referential
integrity manually. Foreign keys also have a feature you can't mimic in
application code: cascading updates and deletes across multiple tables, with
the ON UPDATE and ON DELETE clauses controlling the result. Make your
database mistake-proof with constraints.`

func init() {
	advisor.RegisterPattern(advisor.Rule{
		Type:        advisor.RuleForeignKeyExists,
		Title:       "Foreign Key Exists",
		Message:     foreignKeyExistsMessage,
		Pattern:     `(?i)(foreign key)`,
		Level:       types.RuleLevel_WARNING,
		PatternType: types.PatternType_CREATION,
		Code:        advisor.CreationNoForeignKey,
		// Absence of the pattern is the violation.
		MatchIsViolation: false,
		CreateOnly:       true,
	})
}
