package sql

import (
	"testing"

	"github.com/queryscribe/queryscribe/dialect"

	"github.com/stretchr/testify/assert"
)

func TestInsertBasic(t *testing.T) {
	i := Dialect(dialect.Postgres).Insert("users").Columns("name", "age").Values("Alice", 30)
	q, _ := i.Query()
	assert.Equal(t, `INSERT INTO "users" ("name", "age") VALUES ('Alice', 30);`, q)
}

func TestInsertMultiRow(t *testing.T) {
	i := Dialect(dialect.Postgres).Insert("users").Columns("name").
		Values("Alice").Values("Bob")
	q, _ := i.Query()
	assert.Equal(t, `INSERT INTO "users" ("name") VALUES ('Alice'), ('Bob');`, q)
}

func TestInsertEmptyValuesPostgres(t *testing.T) {
	i := Dialect(dialect.Postgres).Insert("users")
	q, _ := i.Query()
	assert.Equal(t, `INSERT INTO "users" DEFAULT VALUES;`, q)
}

func TestInsertEmptyValuesMySQL(t *testing.T) {
	i := Dialect(dialect.MySQL).Insert("users")
	q, _ := i.Query()
	assert.Equal(t, "INSERT INTO `users` VALUES ();", q)
}

func TestInsertEmptyValuesMSSQL(t *testing.T) {
	i := Dialect(dialect.MSSQL).Insert("users")
	q, _ := i.Query()
	assert.Equal(t, "INSERT INTO [users] DEFAULT VALUES;", q)
}

func TestInsertIgnoreMySQL(t *testing.T) {
	i := Dialect(dialect.MySQL).Insert("users").Columns("name").Values("Alice").Ignore()
	q, _ := i.Query()
	assert.Equal(t, "INSERT IGNORE INTO `users` (`name`) VALUES ('Alice');", q)
}

func TestInsertOnDuplicateKeyMySQL(t *testing.T) {
	i := Dialect(dialect.MySQL).Insert("users").Columns("id", "name").Values(1, "Alice").
		OnConflict([]string{"id"}, []string{"name"})
	q, _ := i.Query()
	assert.Equal(t, "INSERT INTO `users` (`id`, `name`) VALUES (1, 'Alice') ON DUPLICATE KEY UPDATE `name` = VALUES(`name`);", q)
}

func TestInsertOnConflictPostgres(t *testing.T) {
	i := Dialect(dialect.Postgres).Insert("users").Columns("id", "name").Values(1, "Alice").
		OnConflict([]string{"id"}, []string{"name"})
	q, _ := i.Query()
	assert.Equal(t, `INSERT INTO "users" ("id", "name") VALUES (1, 'Alice') ON CONFLICT ("id") DO UPDATE SET "name" = EXCLUDED."name";`, q)
}

func TestInsertOnConflictDoNothingPostgres(t *testing.T) {
	i := Dialect(dialect.Postgres).Insert("users").Columns("id").Values(1).
		OnConflict([]string{"id"}, nil)
	q, _ := i.Query()
	assert.Equal(t, `INSERT INTO "users" ("id") VALUES (1) ON CONFLICT ("id") DO NOTHING;`, q)
}

func TestInsertReturningPostgres(t *testing.T) {
	i := Dialect(dialect.Postgres).Insert("users").Columns("name").Values("Alice").Returning("id")
	q, _ := i.Query()
	assert.Equal(t, `INSERT INTO "users" ("name") VALUES ('Alice') RETURNING "id";`, q)
}

func TestInsertOutputMSSQL(t *testing.T) {
	i := Dialect(dialect.MSSQL).Insert("users").Columns("name").Values("Alice").Returning("id")
	q, _ := i.Query()
	assert.Equal(t, "INSERT INTO [users] ([name]) OUTPUT INSERTED.[id] VALUES ('Alice');", q)
}

func TestInsertOutputMSSQLDroppedOnTrigger(t *testing.T) {
	i := Dialect(dialect.MSSQL).Insert("users").Columns("name").Values("Alice").
		Returning("id").HasTrigger(true)
	q, _ := i.Query()
	assert.Equal(t, "INSERT INTO [users] ([name]) VALUES ('Alice');", q)
}

func TestInsertIdentityInsertMSSQL(t *testing.T) {
	i := Dialect(dialect.MSSQL).Insert("users").Columns("id", "name").Values(1, "Alice").IdentityInsert(true)
	q, _ := i.Query()
	assert.Equal(t, "SET IDENTITY_INSERT [users] ON; INSERT INTO [users] ([id], [name]) VALUES (1, 'Alice'); SET IDENTITY_INSERT [users] OFF;", q)
}

func TestInsertIdentityInsertIgnoredOnOtherDialects(t *testing.T) {
	i := Dialect(dialect.Postgres).Insert("users").Columns("id", "name").Values(1, "Alice").IdentityInsert(true)
	q, _ := i.Query()
	assert.Equal(t, `INSERT INTO "users" ("id", "name") VALUES (1, 'Alice');`, q)
}

func TestInsertRawDefaultValue(t *testing.T) {
	i := Dialect(dialect.Postgres).Insert("users").Columns("name", "created_at").
		Values("Alice", Raw{SQL: "DEFAULT"})
	q, _ := i.Query()
	assert.Equal(t, `INSERT INTO "users" ("name", "created_at") VALUES ('Alice', DEFAULT);`, q)
}

func TestBulkInsertColumnUnion(t *testing.T) {
	caps := CapsFor(dialect.MySQL)
	records := []Cond{M("name", "Alice", "age", 30), M("name", "Bob")}
	ib := BulkInsert("users", []string{"name", "age"}, records, caps)
	ib.setDialect(dialect.MySQL)
	q, _ := ib.Query()
	assert.Equal(t, "INSERT INTO `users` (`name`, `age`) VALUES ('Alice', 30), ('Bob', DEFAULT);", q)
}

func TestBulkInsertColumnUnionNullFallback(t *testing.T) {
	caps := CapsFor(dialect.Postgres)
	caps.BulkDefault = false
	records := []Cond{M("name", "Bob")}
	ib := BulkInsert("users", []string{"name", "age"}, records, caps)
	ib.setDialect(dialect.Postgres)
	q, _ := ib.Query()
	assert.Equal(t, `INSERT INTO "users" ("name", "age") VALUES ('Bob', NULL);`, q)
}

func TestUpdateBasic(t *testing.T) {
	u := Dialect(dialect.Postgres).Update("users").Set("name", "Alice").Where(EQ("id", 1))
	q, _ := u.Query()
	assert.Equal(t, `UPDATE "users" SET "name" = 'Alice' WHERE "id" = 1;`, q)
}

func TestUpdateIncrementDecrement(t *testing.T) {
	u := Dialect(dialect.Postgres).Update("accounts").Increment("balance", 10).Decrement("score", 1)
	q, _ := u.Query()
	assert.Equal(t, `UPDATE "accounts" SET "balance" = "balance" + 10, "score" = "score" - 1;`, q)
}

func TestUpdateEmptyIsNoOp(t *testing.T) {
	u := Dialect(dialect.Postgres).Update("users")
	q, args := u.Query()
	assert.Equal(t, "", q)
	assert.Nil(t, args)
}

func TestUpdateReturning(t *testing.T) {
	u := Dialect(dialect.Postgres).Update("users").Set("name", "Alice").Returning("id", "name")
	q, _ := u.Query()
	assert.Equal(t, `UPDATE "users" SET "name" = 'Alice' RETURNING "id", "name";`, q)
}

func TestUpdateLimitMySQL(t *testing.T) {
	u := Dialect(dialect.MySQL).Update("users").Set("name", "Alice").Limit(1)
	q, _ := u.Query()
	assert.Equal(t, "UPDATE `users` SET `name` = 'Alice' LIMIT 1;", q)
}

func TestUpdateLimitIgnoredWhereUnsupported(t *testing.T) {
	u := Dialect(dialect.Postgres).Update("users").Set("name", "Alice").Limit(1)
	q, _ := u.Query()
	assert.Equal(t, `UPDATE "users" SET "name" = 'Alice';`, q)
}

func TestDeleteBasic(t *testing.T) {
	d := Dialect(dialect.Postgres).Delete("users").Where(EQ("id", 1))
	q, _ := d.Query()
	assert.Equal(t, `DELETE FROM "users" WHERE "id" = 1;`, q)
}

func TestDeleteLimitMySQL(t *testing.T) {
	d := Dialect(dialect.MySQL).Delete("users").Where(EQ("id", 1)).Limit(1)
	q, _ := d.Query()
	assert.Equal(t, "DELETE FROM `users` WHERE `id` = 1 LIMIT 1;", q)
}

func TestTruncateBasic(t *testing.T) {
	tr := Dialect(dialect.Postgres).Truncate("users")
	q, _ := tr.Query()
	assert.Equal(t, `TRUNCATE TABLE "users";`, q)
}

func TestTruncateCascadeRestartIdentity(t *testing.T) {
	tr := Dialect(dialect.Postgres).Truncate("users").Cascade().RestartIdentity()
	q, _ := tr.Query()
	assert.Equal(t, `TRUNCATE TABLE "users" RESTART IDENTITY CASCADE;`, q)
}

func TestTruncateCascadeIgnoredOnMySQL(t *testing.T) {
	tr := Dialect(dialect.MySQL).Truncate("users").Cascade().RestartIdentity()
	q, _ := tr.Query()
	assert.Equal(t, "TRUNCATE TABLE `users`;", q)
}
