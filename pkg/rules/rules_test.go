package rules

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/nsxbet/sqlcheck/pkg/advisor"
	"github.com/nsxbet/sqlcheck/pkg/config"
	"github.com/nsxbet/sqlcheck/pkg/types"
)

func runRule(t *testing.T, ruleType advisor.RuleType, statement string) []*types.Advice {
	t.Helper()
	level := advisor.DefaultLevel(ruleType)
	advices, err := advisor.Check(context.Background(), ruleType, advisor.Context{
		Config:    config.DefaultConfig(),
		Rule:      &types.CheckRule{Type: string(ruleType), Level: level},
		Statement: statement,
	})
	require.NoError(t, err)
	return advices
}

func TestAllRulesRegistered(t *testing.T) {
	registered := advisor.Types()
	want := []advisor.RuleType{
		advisor.RuleSelectStar,
		advisor.RuleMultiValuedAttribute,
		advisor.RuleRecursiveDependency,
		advisor.RulePrimaryKeyExists,
		advisor.RuleGenericPrimaryKey,
		advisor.RuleForeignKeyExists,
		advisor.RuleImpreciseDataType,
	}
	for _, rt := range want {
		require.Contains(t, registered, rt)
	}
}

func TestSelectStar(t *testing.T) {
	tests := []struct {
		name      string
		statement string
		wantHit   bool
	}{
		{"select star", "SELECT * FROM users;", true},
		{"lowercase", "select * from users;", true},
		{"mixed case", "Select  *  From users;", true},
		{"explicit columns", "SELECT id, name FROM users;", false},
		{"count star", "SELECT COUNT(id) FROM users;", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			advices := runRule(t, advisor.RuleSelectStar, tt.statement)
			if tt.wantHit {
				require.Len(t, advices, 1)
				require.Equal(t, types.Advice_ERROR, advices[0].Status)
				require.Equal(t, types.PatternType_QUERY, advices[0].PatternType)
			} else {
				require.Empty(t, advices)
			}
		})
	}
}

func TestMultiValuedAttribute(t *testing.T) {
	tests := []struct {
		name      string
		statement string
		wantHit   bool
	}{
		{"id list in varchar", "CREATE TABLE products (product_id BIGINT, account_id VARCHAR(100));", true},
		{"id list in text", "CREATE TABLE products (account_id TEXT);", true},
		{"plain columns", "CREATE TABLE products (product_id BIGINT, name VARCHAR(100));", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			advices := runRule(t, advisor.RuleMultiValuedAttribute, tt.statement)
			if tt.wantHit {
				require.Len(t, advices, 1)
				require.Equal(t, types.Advice_ERROR, advices[0].Status)
			} else {
				require.Empty(t, advices)
			}
		})
	}
}

func TestRecursiveDependency(t *testing.T) {
	tests := []struct {
		name      string
		statement string
		wantHit   bool
	}{
		{
			"self reference",
			"CREATE TABLE employees (emp_id INT, mgr_id INT REFERENCES employees(emp_id));",
			true,
		},
		{
			"reference to another table",
			"CREATE TABLE employees (emp_id INT, dept_id INT REFERENCES departments(dept_id));",
			false,
		},
		{
			"no reference at all",
			"CREATE TABLE employees (emp_id INT PRIMARY KEY);",
			false,
		},
		{
			"not a creation statement",
			"SELECT emp_id FROM employees;",
			false,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			advices := runRule(t, advisor.RuleRecursiveDependency, tt.statement)
			if tt.wantHit {
				require.Len(t, advices, 1)
				require.Equal(t, types.Advice_ERROR, advices[0].Status)
				require.Equal(t, types.PatternType_CREATION, advices[0].PatternType)
			} else {
				require.Empty(t, advices)
			}
		})
	}
}

func TestPrimaryKeyExists(t *testing.T) {
	tests := []struct {
		name      string
		statement string
		wantHit   bool
	}{
		{"missing primary key", "CREATE TABLE t (a INT, b INT);", true},
		{"has primary key", "CREATE TABLE t (a INT PRIMARY KEY, b INT);", false},
		{"lowercase primary key", "create table t (a int primary key);", false},
		{"not a creation statement", "SELECT a FROM t;", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			advices := runRule(t, advisor.RulePrimaryKeyExists, tt.statement)
			if tt.wantHit {
				require.Len(t, advices, 1)
				require.Equal(t, types.Advice_WARNING, advices[0].Status)
			} else {
				require.Empty(t, advices)
			}
		})
	}
}

func TestGenericPrimaryKey(t *testing.T) {
	tests := []struct {
		name      string
		statement string
		wantHit   bool
	}{
		{"bare id column", "CREATE TABLE t (id INT PRIMARY KEY, name TEXT);", true},
		{"id serial", "CREATE TABLE t (\n  id SERIAL PRIMARY KEY\n);", true},
		{"descriptive key", "CREATE TABLE t (bug_id INT PRIMARY KEY, name TEXT);", false},
		{"id as suffix only", "CREATE TABLE t (account_id INT, name TEXT);", false},
		{"not a creation statement", "SELECT id FROM t;", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			advices := runRule(t, advisor.RuleGenericPrimaryKey, tt.statement)
			if tt.wantHit {
				require.Len(t, advices, 1)
				require.Equal(t, types.Advice_ERROR, advices[0].Status)
			} else {
				require.Empty(t, advices)
			}
		})
	}
}

func TestForeignKeyExists(t *testing.T) {
	tests := []struct {
		name      string
		statement string
		wantHit   bool
	}{
		{"missing foreign key", "CREATE TABLE orders (order_id INT, customer_id INT);", true},
		{"has foreign key", "CREATE TABLE orders (order_id INT, customer_id INT, FOREIGN KEY (customer_id) REFERENCES customers(customer_id));", false},
		{"not a creation statement", "SELECT order_id FROM orders;", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			advices := runRule(t, advisor.RuleForeignKeyExists, tt.statement)
			if tt.wantHit {
				require.Len(t, advices, 1)
				require.Equal(t, types.Advice_WARNING, advices[0].Status)
			} else {
				require.Empty(t, advices)
			}
		})
	}
}

func TestImpreciseDataType(t *testing.T) {
	tests := []struct {
		name      string
		statement string
		wantHit   bool
	}{
		{"float column", "CREATE TABLE accounts (balance FLOAT);", true},
		{"double precision column", "CREATE TABLE accounts (balance DOUBLE PRECISION);", true},
		{"numeric column", "CREATE TABLE accounts (balance NUMERIC(9,2));", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			advices := runRule(t, advisor.RuleImpreciseDataType, tt.statement)
			if tt.wantHit {
				require.Len(t, advices, 1)
				require.Equal(t, types.Advice_WARNING, advices[0].Status)
			} else {
				require.Empty(t, advices)
			}
		})
	}
}
