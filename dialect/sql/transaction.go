package sql

import (
	"fmt"

	"github.com/queryscribe/queryscribe/dialect"
)

// IsolationLevel is the closed set of SQL transaction isolation levels
// (spec.md §4.9).
type IsolationLevel string

const (
	ReadUncommitted IsolationLevel = "READ UNCOMMITTED"
	ReadCommitted   IsolationLevel = "READ COMMITTED"
	RepeatableRead  IsolationLevel = "REPEATABLE READ"
	Serializable    IsolationLevel = "SERIALIZABLE"
)

// StartTransactionQuery renders the statement that begins a transaction,
// optionally at level (empty uses the connection's default level).
func StartTransactionQuery(dialectName string, level IsolationLevel) string {
	if level == "" {
		return "START TRANSACTION;"
	}
	switch dialectName {
	case dialect.MSSQL:
		return fmt.Sprintf("SET TRANSACTION ISOLATION LEVEL %s; BEGIN TRANSACTION;", level)
	default:
		return fmt.Sprintf("START TRANSACTION ISOLATION LEVEL %s;", level)
	}
}

// CommitTransactionQuery renders the COMMIT statement.
func CommitTransactionQuery() string { return "COMMIT;" }

// RollbackTransactionQuery renders the ROLLBACK statement, or a rollback to
// savepoint when name is non-empty.
func RollbackTransactionQuery(savepoint string) string {
	if savepoint == "" {
		return "ROLLBACK;"
	}
	return fmt.Sprintf("ROLLBACK TO SAVEPOINT %s;", savepoint)
}

// SavepointQuery renders a SAVEPOINT statement, used to emulate nested
// transactions (spec.md §4.9).
func SavepointQuery(name string) string { return fmt.Sprintf("SAVEPOINT %s;", name) }

// ReleaseSavepointQuery renders a RELEASE SAVEPOINT statement.
func ReleaseSavepointQuery(name string) string { return fmt.Sprintf("RELEASE SAVEPOINT %s;", name) }

// SetAutocommitQuery renders the statement toggling session autocommit,
// where supported; MSSQL and SQLite have no equivalent statement and
// return the empty string; callers should treat that as a no-op rather
// than an error.
func SetAutocommitQuery(dialectName string, on bool) string {
	value := "0"
	if on {
		value = "1"
	}
	switch dialectName {
	case dialect.MySQL:
		return "SET autocommit = " + value + ";"
	case dialect.Postgres:
		if on {
			return ""
		}
		return "BEGIN;"
	default:
		return ""
	}
}

// SetIsolationLevelQuery renders the statement setting the session (not
// transaction) isolation level, where the dialect supports doing so
// outside of an active transaction.
func SetIsolationLevelQuery(dialectName string, level IsolationLevel) string {
	switch dialectName {
	case dialect.MSSQL:
		return fmt.Sprintf("SET TRANSACTION ISOLATION LEVEL %s;", level)
	default:
		return fmt.Sprintf("SET SESSION TRANSACTION ISOLATION LEVEL %s;", level)
	}
}

// DeferConstraintsQuery renders the statement deferring constraint checks
// to transaction commit, where the dialect supports it (Postgres only);
// every other dialect has no equivalent and returns the empty string.
func DeferConstraintsQuery(dialectName string) string {
	if dialectName == dialect.Postgres {
		return "SET CONSTRAINTS ALL DEFERRED;"
	}
	return ""
}

// SetConstraintQuery renders the statement toggling one named constraint's
// deferred/immediate mode, where the dialect supports it.
func SetConstraintQuery(dialectName, name string, deferred bool) string {
	if dialectName != dialect.Postgres {
		return ""
	}
	mode := "IMMEDIATE"
	if deferred {
		mode = "DEFERRED"
	}
	return fmt.Sprintf("SET CONSTRAINTS %s %s;", name, mode)
}
