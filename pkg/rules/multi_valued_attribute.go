package rules

import (
	"github.com/nsxbet/sqlcheck/pkg/advisor"
	"github.com/nsxbet/sqlcheck/pkg/types"
)

const multiValuedAttributeMessage = `● Store each value in its own column and row:
Storing a list of IDs as a VARCHAR/TEXT column can cause performance and data
integrity problems. Querying against such a column requires pattern-matching
expressions, and it is awkward and costly to join a comma-separated list to
matching rows. This also makes it harder to validate the IDs. Instead of a
multi-valued attribute, store the values in a separate table so that each
individual value occupies its own row. Such an intersection table implements
a many-to-many relationship between the two referenced tables and greatly
simplifies querying and validation.`

func init() {
	advisor.RegisterPattern(advisor.Rule{
		Type:             advisor.RuleMultiValuedAttribute,
		Title:            "Multi-Valued Attribute",
		Message:          multiValuedAttributeMessage,
		Pattern:          `(?i)(id\s+varchar)|(id\s+text)|(id\s+regexp)`,
		Level:            types.RuleLevel_ERROR,
		PatternType:      types.PatternType_CREATION,
		Code:             advisor.CreationMultiValuedAttribute,
		MatchIsViolation: true,
	})
}
