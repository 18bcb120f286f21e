package schema

import (
	"fmt"
	"strings"

	"github.com/queryscribe/queryscribe/dialect"
	"github.com/queryscribe/queryscribe/dialect/sql"
)

// Column describes one column of a CREATE TABLE/ADD COLUMN statement
// (spec.md §4.7, C8). Default, when set, is a raw SQL fragment the caller
// has already escaped (e.g. via sql.Escape), not a Go value.
type Column struct {
	Name          string
	Type          string
	Nullable      bool
	Default       string
	AutoIncrement bool
	PrimaryKey    bool
}

// IndexField describes one column participating in an index, with its
// optional per-column modifiers (spec.md §4.7's index-field quoting rule).
type IndexField struct {
	Name    string
	Length  int
	Collate string
	Order   string // "ASC" or "DESC"; empty means unspecified.
}

// Index describes a CREATE INDEX / ALTER TABLE ... ADD INDEX clause.
type Index struct {
	Name         string
	Table        string
	Fields       []IndexField
	Unique       bool
	Using        string
	Parser       string
	Where        string // raw partial-index predicate (Postgres only).
	Concurrently bool
}

// nameIndex auto-names idx from its table and field names when the caller
// left Name empty (spec.md §4.7's `nameIndexes`).
func nameIndex(idx Index) Index {
	if idx.Name != "" {
		return idx
	}
	names := make([]string, len(idx.Fields))
	for i, f := range idx.Fields {
		names[i] = f.Name
	}
	idx.Name = idx.Table + "_" + strings.Join(names, "_") + "_idx"
	return idx
}

// TableBuilder builds CREATE TABLE statements.
type TableBuilder struct {
	dialect string
	name    string
	columns []Column
	pk      []string
}

// CreateTable starts a CREATE TABLE statement for name.
func CreateTable(name string) *TableBuilder { return &TableBuilder{name: name} }

func (t *TableBuilder) setDialect(name string) *TableBuilder {
	t.dialect = name
	return t
}

// Dialect sets t's dialect and returns it for chaining.
func (t *TableBuilder) Dialect(name string) *TableBuilder { return t.setDialect(name) }

// Column appends a column to the table.
func (t *TableBuilder) Column(c Column) *TableBuilder {
	t.columns = append(t.columns, c)
	if c.PrimaryKey {
		t.pk = append(t.pk, c.Name)
	}
	return t
}

// Query renders the CREATE TABLE statement.
func (t *TableBuilder) Query() (string, []any) {
	b := &sql.Builder{}
	b.SetDialect(t.dialect)
	parts := make([]string, 0, len(t.columns)+1)
	for _, c := range t.columns {
		parts = append(parts, t.columnSQL(b, c))
	}
	if len(t.pk) > 0 {
		quoted := make([]string, len(t.pk))
		for i, c := range t.pk {
			quoted[i] = b.QuoteIdentifier(c)
		}
		parts = append(parts, "PRIMARY KEY ("+strings.Join(quoted, ", ")+")")
	}
	sql := "CREATE TABLE " + b.QuoteIdentifier(t.name) + " (" + strings.Join(parts, ", ") + ");"
	return sql, nil
}

func (t *TableBuilder) columnSQL(b *sql.Builder, c Column) string {
	var sb strings.Builder
	sb.WriteString(b.QuoteIdentifier(c.Name) + " " + c.Type)
	if c.AutoIncrement {
		switch t.dialect {
		case dialect.MySQL:
			sb.WriteString(" AUTO_INCREMENT")
		case dialect.MSSQL:
			sb.WriteString(" IDENTITY(1,1)")
		default:
			// Postgres/SQLite express auto-increment through the column's
			// own type string (SERIAL, INTEGER PRIMARY KEY); no keyword
			// needed here.
		}
	}
	if !c.Nullable {
		sb.WriteString(" NOT NULL")
	}
	if c.Default != "" {
		sb.WriteString(" DEFAULT " + c.Default)
	}
	return sb.String()
}

// DropTableBuilder builds DROP TABLE statements.
type DropTableBuilder struct {
	dialect  string
	name     string
	ifExists bool
}

// DropTable starts a DROP TABLE statement for name.
func DropTable(name string) *DropTableBuilder { return &DropTableBuilder{name: name} }

func (d *DropTableBuilder) setDialect(name string) *DropTableBuilder {
	d.dialect = name
	return d
}

// IfExists appends IF EXISTS.
func (d *DropTableBuilder) IfExists() *DropTableBuilder {
	d.ifExists = true
	return d
}

// Query renders the DROP TABLE statement.
func (d *DropTableBuilder) Query() (string, []any) {
	b := &sql.Builder{}
	b.SetDialect(d.dialect)
	var sb strings.Builder
	sb.WriteString("DROP TABLE ")
	if d.ifExists {
		sb.WriteString("IF EXISTS ")
	}
	sb.WriteString(b.QuoteIdentifier(d.name) + ";")
	return sb.String(), nil
}

// RenameTableBuilder builds table-rename statements, one of the few DDL
// operations whose syntax differs by dialect rather than just by
// capability flag (spec.md §4.7).
type RenameTableBuilder struct {
	dialect  string
	from, to string
}

// RenameTable starts a rename statement from from to to.
func RenameTable(from, to string) *RenameTableBuilder {
	return &RenameTableBuilder{from: from, to: to}
}

func (r *RenameTableBuilder) setDialect(name string) *RenameTableBuilder {
	r.dialect = name
	return r
}

// Query renders the rename statement.
func (r *RenameTableBuilder) Query() (string, []any) {
	b := &sql.Builder{}
	b.SetDialect(r.dialect)
	switch r.dialect {
	case dialect.MySQL:
		return fmt.Sprintf("RENAME TABLE %s TO %s;", b.QuoteIdentifier(r.from), b.QuoteIdentifier(r.to)), nil
	case dialect.MSSQL:
		return fmt.Sprintf("EXEC sp_rename %s, %s;", quoteLit(r.from), quoteLit(r.to)), nil
	default:
		return fmt.Sprintf("ALTER TABLE %s RENAME TO %s;", b.QuoteIdentifier(r.from), b.QuoteIdentifier(r.to)), nil
	}
}

func quoteLit(s string) string { return "'" + strings.ReplaceAll(s, "'", "''") + "'" }

// AddColumnBuilder builds ALTER TABLE ... ADD COLUMN statements.
type AddColumnBuilder struct {
	dialect string
	table   string
	column  Column
}

// AddColumn starts an ADD COLUMN statement against table.
func AddColumn(table string, c Column) *AddColumnBuilder {
	return &AddColumnBuilder{table: table, column: c}
}

func (a *AddColumnBuilder) setDialect(name string) *AddColumnBuilder {
	a.dialect = name
	return a
}

// Query renders the ADD COLUMN statement.
func (a *AddColumnBuilder) Query() (string, []any) {
	b := &sql.Builder{}
	b.SetDialect(a.dialect)
	tb := &TableBuilder{dialect: a.dialect}
	colSQL := tb.columnSQL(b, a.column)
	return fmt.Sprintf("ALTER TABLE %s ADD COLUMN %s;", b.QuoteIdentifier(a.table), colSQL), nil
}

// AddIndexBuilder builds CREATE INDEX / ALTER TABLE ... ADD INDEX
// statements, dispatching on the dialect's Capability (spec.md §4.7, C8).
type AddIndexBuilder struct {
	dialect string
	idx     Index
}

// AddIndex starts an index-creation statement for idx. It returns an error
// if any field is missing a name (spec.md's ErrMissingIndexFieldName edge
// case).
func AddIndex(idx Index) (*AddIndexBuilder, error) {
	for _, f := range idx.Fields {
		if f.Name == "" {
			return nil, &sql.BuildError{Kind: sql.ErrMissingIndexFieldName}
		}
	}
	return &AddIndexBuilder{idx: nameIndex(idx)}, nil
}

func (a *AddIndexBuilder) setDialect(name string) *AddIndexBuilder {
	a.dialect = name
	return a
}

// Query renders the index-creation statement.
func (a *AddIndexBuilder) Query() (string, []any) {
	caps := sql.CapsFor(a.dialect)
	b := &sql.Builder{}
	b.SetDialect(a.dialect)

	fields := make([]string, len(a.idx.Fields))
	for i, f := range a.idx.Fields {
		fields[i] = a.fieldSQL(b, caps, f)
	}
	cols := "(" + strings.Join(fields, ", ") + ")"

	var using string
	if a.idx.Using != "" && caps.Index.Using != 0 {
		using = " USING " + a.idx.Using
	}

	if caps.IndexViaAlter {
		var ab strings.Builder
		ab.WriteString("ALTER TABLE " + b.QuoteIdentifier(a.idx.Table) + " ADD ")
		if a.idx.Unique {
			ab.WriteString("UNIQUE ")
		}
		ab.WriteString("INDEX " + b.QuoteIdentifier(a.idx.Name) + " " + cols)
		ab.WriteString(using)
		if a.idx.Parser != "" && caps.Index.Parser {
			ab.WriteString(" WITH PARSER " + b.QuoteIdentifier(a.idx.Parser))
		}
		ab.WriteString(";")
		return ab.String(), nil
	}

	var sb strings.Builder
	sb.WriteString("CREATE ")
	if a.idx.Unique {
		sb.WriteString("UNIQUE ")
	}
	sb.WriteString("INDEX ")
	if a.idx.Concurrently && caps.Index.Concurrently {
		sb.WriteString("CONCURRENTLY ")
	}
	sb.WriteString(b.QuoteIdentifier(a.idx.Name))
	sb.WriteString(" ON " + b.QuoteIdentifier(a.idx.Table))
	if caps.Index.Using == 1 {
		sb.WriteString(using)
	}
	sb.WriteString(" " + cols)
	if caps.Index.Using == 2 {
		sb.WriteString(using)
	}
	if a.idx.Where != "" && caps.Index.Where {
		sb.WriteString(" WHERE " + a.idx.Where)
	}
	sb.WriteString(";")
	return sb.String(), nil
}

func (a *AddIndexBuilder) fieldSQL(b *sql.Builder, caps sql.Capability, f IndexField) string {
	s := b.QuoteIdentifier(f.Name)
	if f.Length > 0 && caps.Index.Length {
		s += fmt.Sprintf("(%d)", f.Length)
	}
	if f.Collate != "" && caps.Index.Collate {
		s += " COLLATE " + b.QuoteIdentifier(f.Collate)
	}
	if f.Order != "" {
		s += " " + strings.ToUpper(f.Order)
	}
	return s
}
