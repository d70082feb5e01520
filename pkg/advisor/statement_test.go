package advisor

import (
	"testing"
)

func TestIsCreateStatement(t *testing.T) {
	tests := []struct {
		statement string
		want      bool
	}{
		{"CREATE TABLE users (id INT);", true},
		{"create table users (id int);", true},
		{"Create Table users (id int);", true},
		{"SELECT * FROM users;", false},
		{"INSERT INTO users VALUES (1);", false},
		{"CREATE INDEX idx ON users (id);", false},
		{"", false},
	}

	for _, tt := range tests {
		if got := IsCreateStatement(tt.statement); got != tt.want {
			t.Errorf("IsCreateStatement(%q) = %v, want %v", tt.statement, got, tt.want)
		}
	}
}

func TestGetTableName(t *testing.T) {
	tests := []struct {
		statement string
		want      string
	}{
		{"CREATE TABLE users (id INT);", "users"},
		{"create table employees (emp_id int);", "employees"},
		// No whitespace before the column list.
		{"CREATE TABLE users(id INT);", "users"},
		{"CREATE TABLE\n  orders\n  (id INT);", "orders"},
		// Quoted and schema-qualified names come back as written.
		{"CREATE TABLE \"Users\" (id INT);", "\"Users\""},
		{"CREATE TABLE app.users (id INT);", "app.users"},
		{"SELECT * FROM users;", ""},
		{"CREATE TABLE", ""},
		{"", ""},
	}

	for _, tt := range tests {
		if got := GetTableName(tt.statement); got != tt.want {
			t.Errorf("GetTableName(%q) = %q, want %q", tt.statement, got, tt.want)
		}
	}
}
