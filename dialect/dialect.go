package dialect

import "context"

// Dialect name constants, used throughout the project to distinguish
// generated/executed SQL between database backends.
const (
	MySQL    = "mysql"
	Postgres = "postgres"
	SQLite   = "sqlite3"
	MSSQL    = "mssql"
)

// ExecQuerier wraps the methods for executing and querying SQL statements.
// Both Driver and Tx implement it, so code that only needs to issue
// statements can be agnostic to whether it is inside a transaction.
type ExecQuerier interface {
	// Exec executes a query that doesn't return rows.
	Exec(ctx context.Context, query string, args, v any) error
	// Query executes a query that returns rows.
	Query(ctx context.Context, query string, args, v any) error
}

// Driver is the interface implemented by the underlying database clients.
type Driver interface {
	ExecQuerier
	// Tx starts and returns a new transaction.
	Tx(ctx context.Context) (Tx, error)
	// Close closes the underlying connection.
	Close() error
	// Dialect returns the dialect name of the driver.
	Dialect() string
}

// Tx is the interface implemented by a transaction within a Driver.
type Tx interface {
	ExecQuerier
	// Commit commits the transaction.
	Commit() error
	// Rollback rolls back the transaction.
	Rollback() error
}

// NopTx wraps a driver and implements the Tx interface with Commit and
// Rollback methods that do nothing and return nil. Used for drivers without
// transaction support, or where the caller chooses to skip transactional
// wrapping.
type NopTx struct{ Driver }

// Commit implements the Tx.Commit interface as a no-op.
func (NopTx) Commit() error { return nil }

// Rollback implements the Tx.Rollback interface as a no-op.
func (NopTx) Rollback() error { return nil }
