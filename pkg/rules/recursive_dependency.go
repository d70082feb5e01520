package rules

import (
	"context"
	"regexp"

	"github.com/pkg/errors"

	"github.com/nsxbet/sqlcheck/pkg/advisor"
	"github.com/nsxbet/sqlcheck/pkg/types"
)

const recursiveDependencyMessage = `● Avoid recursive relationships:
It's common for data to have recursive relationships, organized in a treelike
or hierarchical way. However, creating a foreign key constraint between two
columns in the same table lends to awkward querying: each level of the tree
corresponds to another join, and you will need recursive queries to get all
descendants or all ancestors of a node. A solution is to construct an
additional closure table, storing all paths through the tree rather than just
direct parent-child relationships. Compare the different hierarchical designs
(closure table, path enumeration, nested sets) and pick one based on your
application's needs.`

var _ advisor.Advisor = (*RecursiveDependencyAdvisor)(nil)

func init() {
	advisor.Register(advisor.RuleRecursiveDependency, types.RuleLevel_ERROR, &RecursiveDependencyAdvisor{})
}

// RecursiveDependencyAdvisor flags creation statements whose table
// references itself. It is the only rule with a data-dependent pattern:
// the table name extracted from the statement is spliced into the
// search expression, so it is escaped before compiling.
type RecursiveDependencyAdvisor struct{}

func (*RecursiveDependencyAdvisor) Check(_ context.Context, checkCtx advisor.Context) ([]*types.Advice, error) {
	tableName := advisor.GetTableName(checkCtx.Statement)
	if tableName == "" {
		return nil, nil
	}

	pattern, err := regexp.Compile(`(?i)(references\s+` + regexp.QuoteMeta(tableName) + `)`)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to compile self-reference pattern for table %q", tableName)
	}

	return advisor.CheckPattern(checkCtx, pattern,
		types.PatternType_CREATION,
		advisor.CreationRecursiveDependency,
		"Recursive Dependency",
		recursiveDependencyMessage,
		true,
	), nil
}
