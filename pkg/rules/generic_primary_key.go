package rules

import (
	"github.com/nsxbet/sqlcheck/pkg/advisor"
	"github.com/nsxbet/sqlcheck/pkg/types"
)

const genericPrimaryKeyMessage = `● Skip using a generic primary key (id):
Adding an id column to every table causes several effects that make its use
seem arbitrary. You might end up creating a redundant key, or allow duplicate
rows if you add this column to a compound key. The name id is so generic that
it holds no meaning, which matters as soon as you join two tables that share
the same primary key column name.`

func init() {
	advisor.RegisterPattern(advisor.Rule{
		Type:             advisor.RuleGenericPrimaryKey,
		Title:            "Generic Primary Key",
		Message:          genericPrimaryKeyMessage,
		Pattern:          `(?i)(\s+\(?id\s+)|(,id\s+)|(\s+id\s+serial)`,
		Level:            types.RuleLevel_ERROR,
		PatternType:      types.PatternType_CREATION,
		Code:             advisor.CreationGenericPrimaryKey,
		MatchIsViolation: true,
		CreateOnly:       true,
	})
}
