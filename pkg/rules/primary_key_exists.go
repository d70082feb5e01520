package rules

import (
	"github.com/nsxbet/sqlcheck/pkg/advisor"
	"github.com/nsxbet/sqlcheck/pkg/types"
)

const primaryKeyExistsMessage = `● Consider adding a primary key:
A primary key constraint is important when you need to prevent a table from
containing duplicate rows, reference individual rows in queries, and support
foreign key references. Without a primary key constraint you create a chore
for yourself: checking for duplicate rows. More often than not, you will need
to define a primary key for every table. Use compound keys when they are
appropriate.`

func init() {
	advisor.RegisterPattern(advisor.Rule{
		Type:        advisor.RulePrimaryKeyExists,
		Title:       "Primary Key Exists",
		Message:     primaryKeyExistsMessage,
		Pattern:     `(?i)(primary key)`,
		Level:       types.RuleLevel_WARNING,
		PatternType: types.PatternType_CREATION,
		Code:        advisor.CreationNoPrimaryKey,
		// Absence of the pattern is the violation.
		MatchIsViolation: false,
		CreateOnly:       true,
	})
}
