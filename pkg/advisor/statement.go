package advisor

import (
	"strings"
)

const createTableToken = "create table"

// IsCreateStatement reports whether the statement creates a table.
//
// This is a pure lexical check on the case-normalized text: the token
// appearing inside a string literal or a comment still counts. That is
// an accepted limit of the heuristic, not something to paper over.
func IsCreateStatement(statement string) bool {
	return strings.Contains(strings.ToLower(statement), createTableToken)
}

// GetTableName extracts the table identifier from a creation statement.
//
// It takes the first whitespace-delimited token after "create table",
// treating an opening parenthesis as an additional delimiter so that
// "create table users(id int)" yields "users". Quoted identifiers and
// schema-qualified names are returned as written, punctuation and all.
// Returns "" when the statement is not a creation statement.
func GetTableName(statement string) string {
	idx := strings.Index(strings.ToLower(statement), createTableToken)
	if idx < 0 {
		return ""
	}

	rest := statement[idx+len(createTableToken):]
	fields := strings.Fields(rest)
	if len(fields) == 0 {
		return ""
	}

	name := fields[0]
	if i := strings.IndexByte(name, '('); i >= 0 {
		name = name[:i]
	}
	return name
}
