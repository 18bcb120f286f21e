package sql

import (
	"testing"

	"github.com/queryscribe/queryscribe/dialect"
	"github.com/queryscribe/queryscribe/dialect/sql/sqlgraph"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLiteral(t *testing.T) {
	l := Lit("NOW()")
	q, args := l.Query()
	assert.Equal(t, "NOW()", q)
	assert.Nil(t, args)
}

func TestFn(t *testing.T) {
	f := NewFn("COALESCE", NewCol("age"), 0)
	q, _ := f.Query()
	assert.Equal(t, `COALESCE("age", 0)`, q)
}

func TestFnNested(t *testing.T) {
	f := NewFn("UPPER", NewFn("TRIM", NewCol("name")))
	q, _ := f.Query()
	assert.Equal(t, `UPPER(TRIM("name"))`, q)
}

func TestCast(t *testing.T) {
	c := NewCast(NewCol("age"), "text")
	q, _ := c.Query()
	assert.Equal(t, `CAST("age" AS TEXT)`, q)
}

func TestColWildcard(t *testing.T) {
	c := NewCol("*")
	q, _ := c.Query()
	assert.Equal(t, "*", q)
}

func TestColDotted(t *testing.T) {
	c := NewCol("users.name")
	q, _ := c.Query()
	assert.Equal(t, `"users"."name"`, q)
}

func TestColPathOutsideOrderContext(t *testing.T) {
	c := NewColPath("name")
	_, err := c.lower(&lowerCtx{b: &Builder{}})
	require.Error(t, err)
	var be *BuildError
	require.ErrorAs(t, err, &be)
	assert.Equal(t, ErrColOutsideOrderGroup, be.Kind)
}

func TestExprWhereNilLogic(t *testing.T) {
	w := NewWhere(NewCol("deleted_at"), "=", nil)
	q, _ := w.Query()
	assert.Equal(t, `"deleted_at" IS NULL`, q)
}

func TestExprWhereBool(t *testing.T) {
	w := NewWhere(NewCol("active"), "=", true)
	b := &Builder{dialect: dialect.Postgres}
	got, err := w.lower(&lowerCtx{b: b})
	require.NoError(t, err)
	assert.Equal(t, `"active" = true`, got)
}

func TestExprWhereScalar(t *testing.T) {
	w := NewWhere(NewCol("age"), ">", 18)
	b := &Builder{dialect: dialect.Postgres}
	got, err := w.lower(&lowerCtx{b: b})
	require.NoError(t, err)
	assert.Equal(t, `"age" > 18`, got)
}

func TestExprWhereNestedExpr(t *testing.T) {
	w := NewWhere(NewCol("age"), "=", NewFn("MAX", NewCol("age")))
	b := &Builder{dialect: dialect.Postgres}
	got, err := w.lower(&lowerCtx{b: b})
	require.NoError(t, err)
	assert.Equal(t, `"age" = MAX("age")`, got)
}

// fakeModel is a minimal sqlgraph.Model/ModelInfo used across sql package
// tests to exercise association-walking without pulling in a real
// model-declaration layer.
type fakeModel struct {
	name  string
	table string
	pks   []string
	assoc map[string]*sqlgraph.Association
	attrs map[string]Attr
}

func (m *fakeModel) Name() string           { return m.name }
func (m *fakeModel) TableName() string      { return m.table }
func (m *fakeModel) PrimaryKeys() []string  { return m.pks }
func (m *fakeModel) Association(targetName, as string) (*sqlgraph.Association, bool) {
	a, ok := m.assoc[as]
	return a, ok
}
func (m *fakeModel) Attribute(name string) (Attr, bool) {
	a, ok := m.attrs[name]
	return a, ok
}

func TestQuoteSequenceM2O(t *testing.T) {
	author := &fakeModel{name: "author", table: "authors", pks: []string{"id"}}
	post := &fakeModel{
		name: "post", table: "posts", pks: []string{"id"},
		assoc: map[string]*sqlgraph.Association{
			"author": {
				Kind: sqlgraph.M2O, As: "author",
				Source: nil, Target: author,
				IdentifierField: "author_id", TargetIdentifier: "id",
			},
		},
	}
	b := &Builder{dialect: dialect.Postgres}
	got, err := quoteSequence(b, []any{author, "name"}, post)
	require.NoError(t, err)
	assert.Equal(t, `"author"."name"`, got)
}

func TestQuoteSequenceWithDirection(t *testing.T) {
	post := &fakeModel{name: "post", table: "posts", pks: []string{"id"}}
	b := &Builder{dialect: dialect.Postgres}
	got, err := quoteSequence(b, []any{"title", "desc"}, post)
	require.NoError(t, err)
	assert.Equal(t, `"post"."title" DESC`, got)
}

func TestQuoteSequenceUnknownAssociation(t *testing.T) {
	other := &fakeModel{name: "other", table: "others"}
	post := &fakeModel{name: "post", table: "posts", assoc: map[string]*sqlgraph.Association{}}
	b := &Builder{dialect: dialect.Postgres}
	_, err := quoteSequence(b, []any{other, "name"}, post)
	require.Error(t, err)
	var be *BuildError
	require.ErrorAs(t, err, &be)
	assert.Equal(t, ErrInvalidAssociationPath, be.Kind)
}

func TestIsDirectionToken(t *testing.T) {
	assert.True(t, isDirectionToken("asc"))
	assert.True(t, isDirectionToken("DESC"))
	assert.True(t, isDirectionToken("nulls first"))
	assert.False(t, isDirectionToken("name"))
}

func TestQuoteRaw(t *testing.T) {
	b := &Builder{dialect: dialect.MySQL}
	got, err := Quote(b, Raw{SQL: "1+1"}, nil)
	require.NoError(t, err)
	assert.Equal(t, "1+1", got)
}

func TestQuoteString(t *testing.T) {
	b := &Builder{dialect: dialect.MySQL}
	got, err := Quote(b, "users.name", nil)
	require.NoError(t, err)
	assert.Equal(t, "`users`.`name`", got)
}
