package sql

import (
	"testing"

	"github.com/queryscribe/queryscribe/dialect"

	"github.com/stretchr/testify/assert"
)

func TestStartTransactionQueryDefault(t *testing.T) {
	assert.Equal(t, "START TRANSACTION;", StartTransactionQuery(dialect.Postgres, ""))
}

func TestStartTransactionQueryLevelMSSQL(t *testing.T) {
	got := StartTransactionQuery(dialect.MSSQL, Serializable)
	assert.Equal(t, "SET TRANSACTION ISOLATION LEVEL SERIALIZABLE; BEGIN TRANSACTION;", got)
}

func TestStartTransactionQueryLevelDefault(t *testing.T) {
	got := StartTransactionQuery(dialect.Postgres, RepeatableRead)
	assert.Equal(t, "START TRANSACTION ISOLATION LEVEL REPEATABLE READ;", got)
}

func TestCommitTransactionQuery(t *testing.T) {
	assert.Equal(t, "COMMIT;", CommitTransactionQuery())
}

func TestRollbackTransactionQueryPlain(t *testing.T) {
	assert.Equal(t, "ROLLBACK;", RollbackTransactionQuery(""))
}

func TestRollbackTransactionQuerySavepoint(t *testing.T) {
	assert.Equal(t, "ROLLBACK TO SAVEPOINT sp1;", RollbackTransactionQuery("sp1"))
}

func TestSavepointQuery(t *testing.T) {
	assert.Equal(t, "SAVEPOINT sp1;", SavepointQuery("sp1"))
}

func TestReleaseSavepointQuery(t *testing.T) {
	assert.Equal(t, "RELEASE SAVEPOINT sp1;", ReleaseSavepointQuery("sp1"))
}

func TestSetAutocommitQueryMySQL(t *testing.T) {
	assert.Equal(t, "SET autocommit = 1;", SetAutocommitQuery(dialect.MySQL, true))
	assert.Equal(t, "SET autocommit = 0;", SetAutocommitQuery(dialect.MySQL, false))
}

func TestSetAutocommitQueryPostgres(t *testing.T) {
	assert.Equal(t, "", SetAutocommitQuery(dialect.Postgres, true))
	assert.Equal(t, "BEGIN;", SetAutocommitQuery(dialect.Postgres, false))
}

func TestSetAutocommitQueryUnsupported(t *testing.T) {
	assert.Equal(t, "", SetAutocommitQuery(dialect.MSSQL, true))
	assert.Equal(t, "", SetAutocommitQuery(dialect.SQLite, false))
}

func TestSetIsolationLevelQueryMSSQL(t *testing.T) {
	got := SetIsolationLevelQuery(dialect.MSSQL, ReadCommitted)
	assert.Equal(t, "SET TRANSACTION ISOLATION LEVEL READ COMMITTED;", got)
}

func TestSetIsolationLevelQueryDefault(t *testing.T) {
	got := SetIsolationLevelQuery(dialect.Postgres, ReadCommitted)
	assert.Equal(t, "SET SESSION TRANSACTION ISOLATION LEVEL READ COMMITTED;", got)
}

func TestDeferConstraintsQueryPostgres(t *testing.T) {
	assert.Equal(t, "SET CONSTRAINTS ALL DEFERRED;", DeferConstraintsQuery(dialect.Postgres))
}

func TestDeferConstraintsQueryOtherDialects(t *testing.T) {
	assert.Equal(t, "", DeferConstraintsQuery(dialect.MySQL))
	assert.Equal(t, "", DeferConstraintsQuery(dialect.MSSQL))
	assert.Equal(t, "", DeferConstraintsQuery(dialect.SQLite))
}

func TestSetConstraintQueryPostgres(t *testing.T) {
	assert.Equal(t, "SET CONSTRAINTS fk_posts_author IMMEDIATE;", SetConstraintQuery(dialect.Postgres, "fk_posts_author", false))
	assert.Equal(t, "SET CONSTRAINTS fk_posts_author DEFERRED;", SetConstraintQuery(dialect.Postgres, "fk_posts_author", true))
}

func TestSetConstraintQueryOtherDialects(t *testing.T) {
	assert.Equal(t, "", SetConstraintQuery(dialect.MySQL, "fk_posts_author", true))
}
