package sql

import (
	"fmt"
	"strings"

	"github.com/queryscribe/queryscribe/dialect"
)

// InsertBuilder builds INSERT statements, including multi-row bulk inserts
// and dialect-specific insert-or-ignore/upsert forms (spec.md §4.3, C7).
type InsertBuilder struct {
	Builder
	table        string
	columns      []string
	values       [][]any
	ignore       bool
	conflictCols []string
	updateCols   []string
	returning    []string
	hasTrigger   bool
	identityIns  bool
}

// Insert starts an INSERT statement into table.
func Insert(table string) *InsertBuilder { return &InsertBuilder{table: table} }

func (i *InsertBuilder) setDialect(name string) *InsertBuilder {
	i.Builder.SetDialect(name)
	return i
}

// Columns sets the column list shared by every row added via Values.
func (i *InsertBuilder) Columns(columns ...string) *InsertBuilder {
	i.columns = columns
	return i
}

// Values appends one row of values, positional to Columns. A Raw value
// (e.g. Raw{SQL: "DEFAULT"}) is emitted verbatim instead of escaped.
func (i *InsertBuilder) Values(values ...any) *InsertBuilder {
	i.values = append(i.values, values)
	return i
}

// Ignore marks the insert as insert-or-ignore, using whichever spelling the
// dialect supports.
func (i *InsertBuilder) Ignore() *InsertBuilder {
	i.ignore = true
	return i
}

// OnConflict configures an upsert: on a conflict over conflictCols, the
// listed updateCols are set from the incoming row instead of raising a
// constraint error.
func (i *InsertBuilder) OnConflict(conflictCols, updateCols []string) *InsertBuilder {
	i.conflictCols = conflictCols
	i.updateCols = updateCols
	return i
}

// Returning requests the given columns back via RETURNING/OUTPUT on
// dialects that support it; dialects with neither capability ignore it.
func (i *InsertBuilder) Returning(columns ...string) *InsertBuilder {
	i.returning = columns
	return i
}

// HasTrigger flags that the target table carries an AFTER INSERT trigger.
// MSSQL forbids sending OUTPUT straight to the client in that case; the
// full @tmp-table rewrite needs the target's column types, which this
// builder does not have, so it conservatively drops the OUTPUT clause
// instead of emitting an incorrect one (see DESIGN.md).
func (i *InsertBuilder) HasTrigger(v bool) *InsertBuilder {
	i.hasTrigger = v
	return i
}

// IdentityInsert flags that the row supplies an explicit value for an
// auto-increment column. On dialects whose AutoIncrement.IdentityInsert
// capability is set (MSSQL), the statement is wrapped in the
// SET IDENTITY_INSERT ... ON/OFF toggle that column requires; elsewhere it
// has no effect.
func (i *InsertBuilder) IdentityInsert(v bool) *InsertBuilder {
	i.identityIns = v
	return i
}

// Query renders the INSERT statement.
func (i *InsertBuilder) Query() (string, []any) {
	b := &i.Builder
	b.Reset()
	caps := b.Caps()
	toggleIdentity := i.identityIns && caps.AutoIncrement.IdentityInsert
	if toggleIdentity {
		b.WriteString("SET IDENTITY_INSERT " + b.QuoteIdentifier(i.table) + " ON; ")
	}

	b.WriteString("INSERT ")
	if i.ignore && caps.Ignore {
		b.WriteString("IGNORE ")
	}
	b.WriteString("INTO " + b.QuoteIdentifier(i.table))

	if len(i.columns) > 0 {
		quoted := make([]string, len(i.columns))
		for idx, c := range i.columns {
			quoted[idx] = b.QuoteIdentifier(c)
		}
		b.WriteString(" (" + strings.Join(quoted, ", ") + ")")
	}

	if output := i.outputClause(b, caps); output != "" {
		b.WriteString(" " + output)
	}

	if len(i.columns) == 0 && len(i.values) == 0 {
		b.WriteString(i.emptyValuesClause(caps))
	} else {
		rows := make([]string, len(i.values))
		for r, row := range i.values {
			parts := make([]string, len(row))
			for c, v := range row {
				parts[c] = i.escapeValue(b, v)
			}
			rows[r] = "(" + strings.Join(parts, ", ") + ")"
		}
		b.WriteString(" VALUES " + strings.Join(rows, ", "))
	}

	i.writeUpsert(b, caps)
	i.writeReturning(b, caps)
	b.WriteByte(';')
	if toggleIdentity {
		b.WriteString(" SET IDENTITY_INSERT " + b.QuoteIdentifier(i.table) + " OFF;")
	}
	return b.String(), b.Args()
}

func (i *InsertBuilder) emptyValuesClause(caps Capability) string {
	switch {
	case caps.DefaultValues:
		return " DEFAULT VALUES"
	case caps.ValuesParens:
		return " VALUES ()"
	default:
		return " VALUES (DEFAULT)"
	}
}

func (i *InsertBuilder) escapeValue(b *Builder, v any) string {
	if r, ok := v.(Raw); ok {
		return r.SQL
	}
	return Escape(v, nil, EscapeOptions{Dialect: b.Dialect()})
}

func (i *InsertBuilder) outputClause(b *Builder, caps Capability) string {
	if len(i.returning) == 0 || !caps.ReturnValues.Output {
		return ""
	}
	if i.hasTrigger && caps.TmpTableTrigger {
		return ""
	}
	quoted := make([]string, len(i.returning))
	for idx, c := range i.returning {
		quoted[idx] = "INSERTED." + b.QuoteIdentifier(c)
	}
	return "OUTPUT " + strings.Join(quoted, ", ")
}

func (i *InsertBuilder) writeReturning(b *Builder, caps Capability) {
	if len(i.returning) == 0 || !caps.ReturnValues.Returning {
		return
	}
	quoted := make([]string, len(i.returning))
	for idx, c := range i.returning {
		quoted[idx] = b.QuoteIdentifier(c)
	}
	b.WriteString(" RETURNING " + strings.Join(quoted, ", "))
}

func (i *InsertBuilder) writeUpsert(b *Builder, caps Capability) {
	switch {
	case len(i.conflictCols) > 0 && caps.OnDuplicateKey:
		if len(i.updateCols) == 0 {
			return
		}
		sets := make([]string, len(i.updateCols))
		for idx, c := range i.updateCols {
			q := b.QuoteIdentifier(c)
			sets[idx] = q + " = VALUES(" + q + ")"
		}
		b.WriteString(" ON DUPLICATE KEY UPDATE " + strings.Join(sets, ", "))
	case len(i.conflictCols) > 0 && caps.IgnoreDuplicates:
		quoted := make([]string, len(i.conflictCols))
		for idx, c := range i.conflictCols {
			quoted[idx] = b.QuoteIdentifier(c)
		}
		b.WriteString(" ON CONFLICT (" + strings.Join(quoted, ", ") + ") ")
		if len(i.updateCols) == 0 {
			b.WriteString("DO NOTHING")
			return
		}
		sets := make([]string, len(i.updateCols))
		for idx, c := range i.updateCols {
			q := b.QuoteIdentifier(c)
			sets[idx] = q + " = EXCLUDED." + q
		}
		b.WriteString("DO UPDATE SET " + strings.Join(sets, ", "))
	case i.ignore && caps.IgnoreDuplicates:
		b.WriteString(" ON CONFLICT DO NOTHING")
	case i.ignore && caps.Exception:
		// Postgres pre-ON-CONFLICT insert-or-ignore wraps the whole insert
		// in a PL/pgSQL EXCEPTION block instead; that requires statement
		// framing this builder does not own (it belongs to the caller
		// issuing the query), so Ignore() here is a documented no-op for
		// dialects that only carry the Exception capability.
	}
}

// BulkInsert builds a multi-row insert from records whose attribute sets
// may differ record to record: columns absent on a given record fall back
// to the DEFAULT keyword when the dialect allows mixing explicit values and
// DEFAULT within one VALUES list, or to NULL otherwise (spec.md §4.3's
// bulk-insert column-union rule).
func BulkInsert(table string, columns []string, records []Cond, caps Capability) *InsertBuilder {
	ib := Insert(table).Columns(columns...)
	for _, rec := range records {
		set := make(map[string]any, rec.Len())
		for _, e := range rec.entries {
			set[e.key] = e.value
		}
		row := make([]any, len(columns))
		for idx, c := range columns {
			if v, ok := set[c]; ok {
				row[idx] = v
			} else if caps.BulkDefault {
				row[idx] = Raw{SQL: "DEFAULT"}
			} else {
				row[idx] = nil
			}
		}
		ib.Values(row...)
	}
	return ib
}

type setClause struct {
	col string
	val any
}

// UpdateBuilder builds UPDATE statements, including the increment/decrement
// shorthand (spec.md §4.3, C7).
type UpdateBuilder struct {
	Builder
	table     string
	sets      []setClause
	where     *Predicate
	limit     *int
	returning []string
}

// Update starts an UPDATE statement against table.
func Update(table string) *UpdateBuilder { return &UpdateBuilder{table: table} }

func (u *UpdateBuilder) setDialect(name string) *UpdateBuilder {
	u.Builder.SetDialect(name)
	return u
}

// Set adds `col = val` to the SET list.
func (u *UpdateBuilder) Set(col string, val any) *UpdateBuilder {
	u.sets = append(u.sets, setClause{col: col, val: val})
	return u
}

// Increment adds `col = col + delta` to the SET list.
func (u *UpdateBuilder) Increment(col string, delta any) *UpdateBuilder {
	rhs := u.QuoteIdentifier(col) + " + " + Escape(delta, nil, EscapeOptions{Dialect: u.Dialect()})
	u.sets = append(u.sets, setClause{col: col, val: Raw{SQL: rhs}})
	return u
}

// Decrement adds `col = col - delta` to the SET list.
func (u *UpdateBuilder) Decrement(col string, delta any) *UpdateBuilder {
	rhs := u.QuoteIdentifier(col) + " - " + Escape(delta, nil, EscapeOptions{Dialect: u.Dialect()})
	u.sets = append(u.sets, setClause{col: col, val: Raw{SQL: rhs}})
	return u
}

// Where ANDs pred onto the statement's WHERE clause.
func (u *UpdateBuilder) Where(pred *Predicate) *UpdateBuilder {
	if u.where == nil {
		u.where = pred
		return u
	}
	u.where = And(u.where, pred)
	return u
}

// Limit sets an UPDATE ... LIMIT n clause on dialects that support it.
func (u *UpdateBuilder) Limit(n int) *UpdateBuilder {
	u.limit = &n
	return u
}

// Returning requests the given columns back via RETURNING on dialects that
// support it.
func (u *UpdateBuilder) Returning(columns ...string) *UpdateBuilder {
	u.returning = columns
	return u
}

// Query renders the UPDATE statement. An UpdateBuilder with no Set/
// Increment/Decrement calls renders no query at all ("", nil), mirroring
// the source system's rule that an update with nothing to set is a no-op
// the caller should skip rather than a statement to execute.
func (u *UpdateBuilder) Query() (string, []any) {
	if len(u.sets) == 0 {
		return "", nil
	}
	b := &u.Builder
	b.Reset()
	caps := b.Caps()
	b.WriteString("UPDATE " + b.QuoteIdentifier(u.table) + " SET ")
	parts := make([]string, len(u.sets))
	for idx, s := range u.sets {
		var val string
		if r, ok := s.val.(Raw); ok {
			val = r.SQL
		} else {
			val = Escape(s.val, nil, EscapeOptions{Dialect: b.Dialect()})
		}
		parts[idx] = b.QuoteIdentifier(s.col) + " = " + val
	}
	b.WriteString(strings.Join(parts, ", "))
	if u.where != nil {
		b.WriteString(" WHERE ")
		u.where.eval(b)
	}
	if u.limit != nil && caps.LimitOnUpdate {
		b.WriteString(fmt.Sprintf(" LIMIT %d", *u.limit))
	}
	if len(u.returning) > 0 && caps.ReturnValues.Returning {
		quoted := make([]string, len(u.returning))
		for idx, c := range u.returning {
			quoted[idx] = b.QuoteIdentifier(c)
		}
		b.WriteString(" RETURNING " + strings.Join(quoted, ", "))
	}
	b.WriteByte(';')
	return b.String(), b.Args()
}

// DeleteBuilder builds DELETE statements (spec.md §4.3, C7).
type DeleteBuilder struct {
	Builder
	table string
	where *Predicate
	limit *int
}

// Delete starts a DELETE statement against table.
func Delete(table string) *DeleteBuilder { return &DeleteBuilder{table: table} }

func (d *DeleteBuilder) setDialect(name string) *DeleteBuilder {
	d.Builder.SetDialect(name)
	return d
}

// Where ANDs pred onto the statement's WHERE clause.
func (d *DeleteBuilder) Where(pred *Predicate) *DeleteBuilder {
	if d.where == nil {
		d.where = pred
		return d
	}
	d.where = And(d.where, pred)
	return d
}

// Limit sets a DELETE ... LIMIT n clause on dialects that support it.
func (d *DeleteBuilder) Limit(n int) *DeleteBuilder {
	d.limit = &n
	return d
}

// Query renders the DELETE statement.
func (d *DeleteBuilder) Query() (string, []any) {
	b := &d.Builder
	b.Reset()
	caps := b.Caps()
	b.WriteString("DELETE FROM " + b.QuoteIdentifier(d.table))
	if d.where != nil {
		b.WriteString(" WHERE ")
		d.where.eval(b)
	}
	if d.limit != nil && caps.LimitOnUpdate {
		b.WriteString(fmt.Sprintf(" LIMIT %d", *d.limit))
	}
	b.WriteByte(';')
	return b.String(), b.Args()
}

// TruncateBuilder builds TRUNCATE TABLE statements.
type TruncateBuilder struct {
	Builder
	table           string
	cascade         bool
	restartIdentity bool
}

// Truncate starts a TRUNCATE TABLE statement against table.
func Truncate(table string) *TruncateBuilder { return &TruncateBuilder{table: table} }

func (t *TruncateBuilder) setDialect(name string) *TruncateBuilder {
	t.Builder.SetDialect(name)
	return t
}

// Cascade appends CASCADE, on dialects that support it.
func (t *TruncateBuilder) Cascade() *TruncateBuilder {
	t.cascade = true
	return t
}

// RestartIdentity appends RESTART IDENTITY, on dialects that support it.
func (t *TruncateBuilder) RestartIdentity() *TruncateBuilder {
	t.restartIdentity = true
	return t
}

// Query renders the TRUNCATE TABLE statement.
func (t *TruncateBuilder) Query() (string, []any) {
	b := &t.Builder
	b.Reset()
	b.WriteString("TRUNCATE TABLE " + b.QuoteIdentifier(t.table))
	if t.restartIdentity && b.Dialect() != dialect.MySQL {
		b.WriteString(" RESTART IDENTITY")
	}
	if t.cascade && b.Dialect() != dialect.MySQL {
		b.WriteString(" CASCADE")
	}
	b.WriteByte(';')
	return b.String(), b.Args()
}
