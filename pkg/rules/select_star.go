package rules

import (
	"github.com/nsxbet/sqlcheck/pkg/advisor"
	"github.com/nsxbet/sqlcheck/pkg/types"
)

const selectStarMessage = `● Inefficiency in moving data to the consumer:
When you SELECT *, you're often retrieving more columns from the database than
your application really needs to function. This causes more data to move from
the database server to the client, slowing access and increasing load on your
machines, as well as taking more time to travel across the network. This is
especially true when someone adds new columns to underlying tables that didn't
exist and weren't needed when the original consumers coded their data access.

● Indexing issues:
If you were to use *, and it returned more columns than you actually needed,
the server would often have to perform more expensive methods to retrieve your
data than it otherwise might. You wouldn't be able to create an index which
simply covered the columns in your SELECT list, and the next column added to
the underlying table would cause the optimizer to ignore your covering index.

● Binding problems:
When you SELECT *, it's possible to retrieve two columns of the same name from
two different tables, which can crash your data consumer. Views can also
return nonsense when underlying table structures change, and column name
collisions only surface once someone else adds a conflicting column.`

func init() {
	advisor.RegisterPattern(advisor.Rule{
		Type:             advisor.RuleSelectStar,
		Title:            "SELECT *",
		Message:          selectStarMessage,
		Pattern:          `(?i)(select\s+\*)`,
		Level:            types.RuleLevel_ERROR,
		PatternType:      types.PatternType_QUERY,
		Code:             advisor.QuerySelectStar,
		MatchIsViolation: true,
	})
}
