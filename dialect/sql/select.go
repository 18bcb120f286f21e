package sql

import (
	"fmt"
	"strings"

	"github.com/queryscribe/queryscribe/dialect"
	"github.com/queryscribe/queryscribe/dialect/sql/sqlgraph"
)

// defaultLimitSentinel is emitted as the LIMIT value when a caller sets
// OFFSET without LIMIT on a dialect that requires both clauses together
// (spec.md §4.6). Postgres does not share this requirement and is the
// documented override point: a Postgres-specific Selector could skip the
// sentinel entirely and emit OFFSET alone.
const defaultLimitSentinel = 10000000000000

type joinKind string

const (
	innerJoin joinKind = "JOIN"
	leftJoin  joinKind = "LEFT JOIN"
)

type joinClause struct {
	kind  joinKind
	table TableRef
	on    *Predicate
}

// groupedLimitSpec captures a `groupedLimit` option (spec.md §4.5): instead
// of one LIMIT applied to the whole result, the query returns up to limit
// rows per distinct value of the `on` column, evaluated as one sub-SELECT
// per value and combined with UNION/UNION ALL.
type groupedLimitSpec struct {
	on     string
	values []any
	limit  int
}

// existsInclude records a required M2M include seen while subQuery mode may
// still turn on (spec.md §4.5's `required` -> EXISTS-style correlated
// subquery rule). Whether it actually contributes a predicate is decided at
// Query time, once the final subQuery decision is known.
type existsInclude struct {
	as    string
	assoc *sqlgraph.Association
}

// Selector builds a SELECT statement (spec.md §3/§4.5-§4.6, C6).
type Selector struct {
	Builder
	columns     []string
	distinct    bool
	from        TableRef
	fromSub     *Selector
	joins       []joinClause
	where       *Predicate
	groupBy     []string
	having      *Predicate
	order       []string
	limit       *int
	offset      *int
	forUpdate   bool
	forUpdateOf []string
	forShare    bool

	model          ModelInfo
	subQueryOpt    *bool
	hasMultiAssoc  bool
	groupedLimit   *groupedLimitSpec
	requiredThrough []existsInclude
}

// Select starts a SELECT statement over the given columns; no columns means
// SELECT *.
func Select(columns ...string) *Selector { return &Selector{columns: columns} }

func (s *Selector) setDialect(name string) *Selector {
	s.Builder.SetDialect(name)
	return s
}

// Distinct marks the selector SELECT DISTINCT.
func (s *Selector) Distinct() *Selector {
	s.distinct = true
	return s
}

// From sets the source table.
func (s *Selector) From(t TableRef) *Selector {
	s.from = t
	return s
}

// FromSelect sets sub as the selector's source, aliased as alias.
func (s *Selector) FromSelect(sub *Selector, alias string) *Selector {
	s.fromSub = sub
	s.from = TableRef{Alias: alias}
	return s
}

func (s *Selector) tableAlias() string {
	if s.from.Alias != "" {
		return s.from.Alias
	}
	return s.from.Name
}

// C qualifies name with the selector's current table alias. The generic
// field predicate helpers in predicate.go call this to build a fully
// qualified column reference.
func (s *Selector) C(name string) string {
	alias := s.tableAlias()
	if alias == "" {
		return name
	}
	return alias + "." + name
}

// Model attaches the model metadata the selector's table maps to. It is
// consulted for two things that need to know the main model's primary
// keys: the subQuery attribute rewrite (spec.md §4.5, "Primary keys are
// always present in the SELECT list when subQuery is active") and the
// EXISTS-style correlated subquery synthesized for a required M2M include.
func (s *Selector) Model(m ModelInfo) *Selector {
	s.model = m
	return s
}

// SubQuery explicitly overrides the main-vs-sub split decision (spec.md
// §4.5's `subQuery` option), instead of deriving it from LIMIT and
// multi-row-association presence.
func (s *Selector) SubQuery(v bool) *Selector {
	s.subQueryOpt = &v
	return s
}

// GroupedLimit marks the selector as a per-group paginated query (spec.md
// §4.5's `groupedLimit` option): at render time, Query renders one
// sub-SELECT per value in values (each with `on = value` ANDed into its
// WHERE clause and limit rows), combined with UNION/UNION ALL into a single
// derived table aliased as the selector's own table alias.
func (s *Selector) GroupedLimit(on string, values []any, limit int) *Selector {
	s.groupedLimit = &groupedLimitSpec{on: on, values: values, limit: limit}
	return s
}

// hasMultiAssociation reports whether any included association can produce
// more than one row per parent row (spec.md §4.5's `hasMultiAssociation`).
func (s *Selector) hasMultiAssociation() bool { return s.hasMultiAssoc }

// subQueryActive reports whether the main-vs-sub split is in effect (spec.md
// §4.5: `subQuery = explicit option else (limit && hasMultiAssociation)`).
func (s *Selector) subQueryActive() bool {
	if s.subQueryOpt != nil {
		return *s.subQueryOpt
	}
	return s.limit != nil && s.hasMultiAssociation()
}

// Where ANDs pred onto the selector's WHERE clause.
func (s *Selector) Where(pred *Predicate) *Selector {
	if s.where == nil {
		s.where = pred
		return s
	}
	s.where = And(s.where, pred)
	return s
}

// WhereCond compiles cond into a Predicate qualified by the selector's own
// table alias and ANDs it onto the WHERE clause (spec.md §4.3 step 13's
// `opts.prefix`, scenario §8.1: `selectQuery('users', {where:{id:1}})` ->
// `WHERE "users"."id" = 1`).
func (s *Selector) WhereCond(cond Cond) error {
	p, err := WhereItemsQuery(cond, s.model, s.Dialect(), s.tableAlias())
	if err != nil {
		return err
	}
	s.Where(p)
	return nil
}

// Join adds an INNER JOIN against t; call On or OnP to supply its
// condition.
func (s *Selector) Join(t TableRef) *Selector {
	s.joins = append(s.joins, joinClause{kind: innerJoin, table: t})
	return s
}

// LeftJoin adds a LEFT JOIN against t.
func (s *Selector) LeftJoin(t TableRef) *Selector {
	s.joins = append(s.joins, joinClause{kind: leftJoin, table: t})
	return s
}

// On supplies `c1 = c2` as the most recently added join's condition.
func (s *Selector) On(c1, c2 string) *Selector { return s.OnP(ColEQ(c1, c2)) }

// OnP supplies an arbitrary predicate as the most recently added join's
// condition, ANDing it with any condition already set.
func (s *Selector) OnP(pred *Predicate) *Selector {
	if len(s.joins) == 0 {
		return s
	}
	last := &s.joins[len(s.joins)-1]
	if last.on == nil {
		last.on = pred
		return s
	}
	last.on = And(last.on, pred)
	return s
}

// Include adds the join(s) needed to eager-load assoc from the selector's
// current table (spec.md §4.5's include-tree join generation, C6),
// choosing INNER JOIN when required is true and LEFT JOIN otherwise. M2M
// associations expand into their through-table join plus the final target
// join.
func (s *Selector) Include(assoc *sqlgraph.Association, required bool) *Selector {
	parentAlias := s.tableAlias()
	targetAlias := assoc.As
	if targetAlias == "" {
		targetAlias = assoc.Target.Name()
	}
	targetTable := Table(assoc.Target.TableName()).As(targetAlias)

	switch assoc.Kind {
	case sqlgraph.M2O:
		s.addJoin(required, targetTable, parentAlias+"."+assoc.IdentifierField, targetAlias+"."+assoc.TargetIdentifier)
	case sqlgraph.O2O:
		s.addJoin(required, targetTable, targetAlias+"."+assoc.IdentifierField, parentAlias+"."+assoc.TargetIdentifier)
	case sqlgraph.O2M:
		s.hasMultiAssoc = true
		s.addJoin(required, targetTable, targetAlias+"."+assoc.IdentifierField, parentAlias+"."+assoc.TargetIdentifier)
	case sqlgraph.M2M:
		if assoc.Through == nil {
			return s
		}
		s.hasMultiAssoc = true
		throughAlias := assoc.Through.As
		if throughAlias == "" {
			throughAlias = assoc.Through.Model.Name()
		}
		throughTable := Table(assoc.Through.Model.TableName()).As(throughAlias)
		s.addJoin(required, throughTable, throughAlias+"."+assoc.IdentifierField, parentAlias+"."+assoc.TargetIdentifier)
		s.addJoin(required, targetTable, targetAlias+"."+assoc.TargetIdentifier, throughAlias+"."+assoc.ForeignIdentifierField)
		if required {
			s.requiredThrough = append(s.requiredThrough, existsInclude{as: targetAlias, assoc: assoc})
		}
	}
	return s
}

func (s *Selector) addJoin(required bool, t TableRef, left, right string) {
	kind := leftJoin
	if required {
		kind = innerJoin
	}
	s.joins = append(s.joins, joinClause{kind: kind, table: t, on: ColEQ(left, right)})
}

// GroupBy appends to the GROUP BY clause.
func (s *Selector) GroupBy(columns ...string) *Selector {
	s.groupBy = append(s.groupBy, columns...)
	return s
}

// Having ANDs pred onto the selector's HAVING clause.
func (s *Selector) Having(pred *Predicate) *Selector {
	if s.having == nil {
		s.having = pred
		return s
	}
	s.having = And(s.having, pred)
	return s
}

// OrderBy appends already-rendered ORDER BY expressions.
func (s *Selector) OrderBy(exprs ...string) *Selector {
	s.order = append(s.order, exprs...)
	return s
}

// OrderExpr resolves expr — a string, Raw, Expr node, or ordered
// association-walking path — against parent and appends it to the ORDER BY
// clause (spec.md §4.2/§4.6, C4).
func (s *Selector) OrderExpr(expr any, parent ModelInfo) error {
	sql, err := Quote(&s.Builder, expr, parent)
	if err != nil {
		return err
	}
	s.order = append(s.order, sql)
	return nil
}

// Limit sets LIMIT n.
func (s *Selector) Limit(n int) *Selector {
	s.limit = &n
	return s
}

// Offset sets OFFSET n.
func (s *Selector) Offset(n int) *Selector {
	s.offset = &n
	return s
}

// ForUpdate marks the query FOR UPDATE, optionally OF the given tables on
// dialects that support it.
func (s *Selector) ForUpdate(of ...string) *Selector {
	s.forUpdate = true
	s.forUpdateOf = of
	return s
}

// ForShare marks the query FOR SHARE (or the dialect's equivalent).
func (s *Selector) ForShare() *Selector {
	s.forShare = true
	return s
}

// Query renders the SELECT statement, dispatching to the grouped-limit
// UNION form or the main-vs-sub split form when either is active (spec.md
// §4.5).
func (s *Selector) Query() (string, []any) {
	if s.groupedLimit != nil {
		return s.groupedLimitQuery()
	}
	if s.subQueryActive() {
		return s.subQueryQuery()
	}
	b := &s.Builder
	b.Reset()
	return s.render(b)
}

// mainAttributes is the SELECT list used when subQuery is active: the
// selector's own columns with any primary keys missing from them prepended
// (spec.md §4.5, "Primary keys are always present in the SELECT list when
// subQuery is active").
func (s *Selector) mainAttributes() []string {
	cols := append([]string{}, s.columns...)
	if s.model == nil {
		return cols
	}
	existing := make(map[string]bool, len(cols))
	for _, c := range cols {
		existing[c] = true
	}
	pks := s.model.PrimaryKeys()
	for i := len(pks) - 1; i >= 0; i-- {
		pk := pks[i]
		if !existing[pk] {
			cols = append([]string{pk}, cols...)
			existing[pk] = true
		}
	}
	return cols
}

// subQueryQuery renders the main-vs-sub split: the inner query carries the
// joins, WHERE clause (including any required-M2M EXISTS predicates) and
// LIMIT/OFFSET, wrapped as `mainTableAs.*` FROM the inner query aliased to
// the selector's own table alias (spec.md §4.5).
func (s *Selector) subQueryQuery() (string, []any) {
	mainAlias := s.tableAlias()
	inner := &Selector{
		columns:     s.mainAttributes(),
		distinct:    s.distinct,
		from:        s.from,
		fromSub:     s.fromSub,
		joins:       s.joins,
		where:       s.whereWithExists(),
		groupBy:     s.groupBy,
		having:      s.having,
		order:       s.order,
		limit:       s.limit,
		offset:      s.offset,
		forUpdate:   s.forUpdate,
		forUpdateOf: s.forUpdateOf,
		forShare:    s.forShare,
		model:       s.model,
	}
	inner.setDialect(s.Dialect())
	innerSQL, _ := inner.Query()

	b := &s.Builder
	b.Reset()
	b.WriteString("SELECT " + b.QuoteIdentifier(mainAlias) + ".* FROM (" + innerSQL + ") AS " + b.QuoteIdentifier(mainAlias))
	return b.String(), b.Args()
}

// whereWithExists ANDs a correlated EXISTS-style predicate onto the
// selector's WHERE clause for every required M2M include seen while
// subQuery is active (spec.md §4.5: "if subQuery && include.required,
// synthesize an EXISTS-style correlated subquery ... attach it to
// options.where"). Rather than a string-prefixed synthetic where-key, the
// predicate is appended as its own AND branch in the condition tree.
func (s *Selector) whereWithExists() *Predicate {
	if len(s.requiredThrough) == 0 {
		return s.where
	}
	mainAlias := s.tableAlias()
	pk := "id"
	if s.model != nil {
		if pks := s.model.PrimaryKeys(); len(pks) > 0 {
			pk = pks[0]
		}
	}
	preds := make([]*Predicate, 0, len(s.requiredThrough)+1)
	if s.where != nil {
		preds = append(preds, s.where)
	}
	for _, ei := range s.requiredThrough {
		preds = append(preds, s.existsPredicate(mainAlias, pk, ei))
	}
	return And(preds...)
}

// existsPredicate builds the correlated subquery for one required M2M
// include: it returns at most one row from the through table joined to the
// target, matched on the parent's primary key, and is compared `IS NOT
// NULL` by the caller (spec.md §4.5).
func (s *Selector) existsPredicate(mainAlias, pk string, ei existsInclude) *Predicate {
	assoc := ei.assoc
	throughAlias := "__" + ei.as + "_through"
	targetAlias := "__" + ei.as
	through := Table(assoc.Through.Model.TableName()).As(throughAlias)
	target := Table(assoc.Target.TableName()).As(targetAlias)
	sub := Select("1").
		From(through).
		Join(target).On(targetAlias+"."+assoc.TargetIdentifier, throughAlias+"."+assoc.ForeignIdentifierField).
		Where(ColEQ(throughAlias+"."+assoc.IdentifierField, mainAlias+"."+pk)).
		Limit(1)
	sub.setDialect(s.Dialect())
	subSQL, _ := sub.Query()
	return RawPredicate("(" + subSQL + ") IS NOT NULL")
}

// groupedLimitQuery renders one sub-SELECT per groupedLimit.values entry
// (each with `on = value` ANDed into its own WHERE clause and the group's
// LIMIT applied), combined with UNION/UNION ALL and wrapped as a derived
// table aliased to the selector's table alias (spec.md §4.5's
// `groupedLimit` option). UNION ALL is used on dialects whose Capability
// sets UnionAll; UNION otherwise, to de-duplicate rows a join might repeat.
func (s *Selector) groupedLimitQuery() (string, []any) {
	b := &s.Builder
	unionKeyword := " UNION "
	if s.Caps().UnionAll {
		unionKeyword = " UNION ALL "
	}
	subs := make([]string, len(s.groupedLimit.values))
	for i, v := range s.groupedLimit.values {
		limit := s.groupedLimit.limit
		sub := &Selector{
			columns:     s.columns,
			distinct:    s.distinct,
			from:        s.from,
			fromSub:     s.fromSub,
			joins:       s.joins,
			groupBy:     s.groupBy,
			having:      s.having,
			order:       s.order,
			limit:       &limit,
			offset:      s.offset,
			forUpdate:   s.forUpdate,
			forUpdateOf: s.forUpdateOf,
			forShare:    s.forShare,
			model:       s.model,
		}
		sub.setDialect(s.Dialect())
		cond := EQ(s.groupedLimit.on, v)
		if s.where != nil {
			sub.where = And(s.where, cond)
		} else {
			sub.where = cond
		}
		subSQL, _ := sub.Query()
		subs[i] = "(" + subSQL + ")"
	}
	mainAlias := s.tableAlias()
	b.Reset()
	b.WriteString("SELECT " + b.QuoteIdentifier(mainAlias) + ".* FROM (" + strings.Join(subs, unionKeyword) + ") AS " + b.QuoteIdentifier(mainAlias))
	return b.String(), b.Args()
}

// isRawColumn reports whether c is a bare integer literal such as the "1"
// probe column of a correlated EXISTS-style subquery (spec.md §4.5), which
// must be emitted verbatim rather than quoted as an identifier.
func isRawColumn(c string) bool {
	if c == "" {
		return false
	}
	for _, r := range c {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// render writes the flat (no grouped-limit, no main-vs-sub split) form of
// the SELECT statement to b.
func (s *Selector) render(b *Builder) (string, []any) {
	b.WriteString("SELECT ")
	if s.distinct {
		b.WriteString("DISTINCT ")
	}
	if len(s.columns) == 0 {
		b.WriteString("*")
	} else {
		quoted := make([]string, len(s.columns))
		for i, c := range s.columns {
			if isRawColumn(c) {
				quoted[i] = c
				continue
			}
			quoted[i] = b.QuoteIdentifiers(c)
		}
		b.WriteString(strings.Join(quoted, ", "))
	}
	b.WriteString(" FROM ")
	if s.fromSub != nil {
		s.fromSub.setDialect(b.Dialect())
		sub, _ := s.fromSub.Query()
		b.WriteString("(" + sub + ")")
		if s.from.Alias != "" {
			b.WriteString(" AS " + b.QuoteIdentifier(s.from.Alias))
		}
	} else {
		b.WriteString(b.QuoteTable(s.from, false))
	}
	for _, j := range s.joins {
		b.WriteString(" " + string(j.kind) + " " + b.QuoteTable(j.table, false))
		if j.on != nil {
			b.WriteString(" ON ")
			j.on.eval(b)
		}
	}
	if s.where != nil {
		b.WriteString(" WHERE ")
		s.where.eval(b)
	}
	if len(s.groupBy) > 0 {
		quoted := make([]string, len(s.groupBy))
		for i, c := range s.groupBy {
			quoted[i] = b.QuoteIdentifiers(c)
		}
		b.WriteString(" GROUP BY " + strings.Join(quoted, ", "))
	}
	if s.having != nil {
		b.WriteString(" HAVING ")
		s.having.eval(b)
	}
	switch {
	case len(s.order) > 0:
		b.WriteString(" ORDER BY " + strings.Join(s.order, ", "))
	case b.Dialect() == dialect.MSSQL && (s.limit != nil || s.offset != nil):
		// MSSQL rejects OFFSET/FETCH without a preceding ORDER BY; a query
		// with no explicit ordering still needs a syntactically valid one.
		b.WriteString(" ORDER BY (SELECT NULL)")
	}
	s.writeLimitOffset(b)
	switch {
	case s.forUpdate:
		b.WriteString(s.forUpdateClause())
	case s.forShare:
		b.WriteString(s.forShareClause())
	}
	return b.String(), b.Args()
}

func (s *Selector) writeLimitOffset(b *Builder) {
	if s.limit == nil && s.offset == nil {
		return
	}
	limit := defaultLimitSentinel
	if s.limit != nil {
		limit = *s.limit
	}
	offset := 0
	if s.offset != nil {
		offset = *s.offset
	}
	if b.Dialect() == dialect.MSSQL {
		b.WriteString(fmt.Sprintf(" OFFSET %d ROWS FETCH NEXT %d ROWS ONLY", offset, limit))
		return
	}
	b.WriteString(fmt.Sprintf(" LIMIT %d", limit))
	if offset > 0 {
		b.WriteString(fmt.Sprintf(" OFFSET %d", offset))
	}
}

func (s *Selector) forUpdateClause() string {
	caps := s.Caps()
	if !caps.Lock {
		return ""
	}
	if len(s.forUpdateOf) > 0 && caps.LockOf {
		quoted := make([]string, len(s.forUpdateOf))
		for i, t := range s.forUpdateOf {
			quoted[i] = s.QuoteIdentifier(t)
		}
		return " FOR UPDATE OF " + strings.Join(quoted, ", ")
	}
	return " FOR UPDATE"
}

func (s *Selector) forShareClause() string {
	caps := s.Caps()
	if !caps.ForShare {
		return ""
	}
	if s.Dialect() == dialect.MySQL {
		return " LOCK IN SHARE MODE"
	}
	return " FOR SHARE"
}

// DialectBuilder seeds a dialect name for a Select/Insert/Update/Delete
// chain, matching the package's documented `sql.Dialect(dialect.Postgres).
// Select(...)` entry point.
type DialectBuilder struct{ dialect string }

// Dialect begins a dialect-scoped builder chain.
func Dialect(name string) *DialectBuilder { return &DialectBuilder{dialect: name} }

// Select begins a SELECT statement scoped to this dialect.
func (d *DialectBuilder) Select(columns ...string) *Selector {
	return Select(columns...).setDialect(d.dialect)
}

// Insert begins an INSERT statement scoped to this dialect.
func (d *DialectBuilder) Insert(table string) *InsertBuilder {
	return Insert(table).setDialect(d.dialect)
}

// Update begins an UPDATE statement scoped to this dialect.
func (d *DialectBuilder) Update(table string) *UpdateBuilder {
	return Update(table).setDialect(d.dialect)
}

// Delete begins a DELETE statement scoped to this dialect.
func (d *DialectBuilder) Delete(table string) *DeleteBuilder {
	return Delete(table).setDialect(d.dialect)
}

// Truncate begins a TRUNCATE TABLE statement scoped to this dialect.
func (d *DialectBuilder) Truncate(table string) *TruncateBuilder {
	return Truncate(table).setDialect(d.dialect)
}

// FieldEQ returns a predicate function usable with the generic field types
// declared in predicate.go.
func FieldEQ[T any](name string, v T) func(*Selector) {
	return func(s *Selector) { s.Where(EQ(s.C(name), v)) }
}

// FieldNEQ returns the negated form of FieldEQ.
func FieldNEQ[T any](name string, v T) func(*Selector) {
	return func(s *Selector) { s.Where(NEQ(s.C(name), v)) }
}

// FieldIn returns a predicate function testing membership in vs.
func FieldIn[T any](name string, vs ...T) func(*Selector) {
	return func(s *Selector) {
		v := make([]any, len(vs))
		for i := range vs {
			v[i] = vs[i]
		}
		s.Where(In(s.C(name), v...))
	}
}

// FieldNotIn returns the negated form of FieldIn.
func FieldNotIn[T any](name string, vs ...T) func(*Selector) {
	return func(s *Selector) {
		v := make([]any, len(vs))
		for i := range vs {
			v[i] = vs[i]
		}
		s.Where(NotIn(s.C(name), v...))
	}
}

// FieldGT returns a predicate function testing `field > v`.
func FieldGT[T any](name string, v T) func(*Selector) {
	return func(s *Selector) { s.Where(GT(s.C(name), v)) }
}

// FieldGTE returns a predicate function testing `field >= v`.
func FieldGTE[T any](name string, v T) func(*Selector) {
	return func(s *Selector) { s.Where(GTE(s.C(name), v)) }
}

// FieldLT returns a predicate function testing `field < v`.
func FieldLT[T any](name string, v T) func(*Selector) {
	return func(s *Selector) { s.Where(LT(s.C(name), v)) }
}

// FieldLTE returns a predicate function testing `field <= v`.
func FieldLTE[T any](name string, v T) func(*Selector) {
	return func(s *Selector) { s.Where(LTE(s.C(name), v)) }
}

// FieldContains returns a predicate function testing a substring match.
func FieldContains(name, v string) func(*Selector) {
	return func(s *Selector) { s.Where(Contains(s.C(name), v)) }
}

// FieldContainsFold is the case-insensitive form of FieldContains.
func FieldContainsFold(name, v string) func(*Selector) {
	return func(s *Selector) { s.Where(ContainsFold(s.C(name), v)) }
}

// FieldHasPrefix returns a predicate function testing a prefix match.
func FieldHasPrefix(name, v string) func(*Selector) {
	return func(s *Selector) { s.Where(HasPrefix(s.C(name), v)) }
}

// FieldHasSuffix returns a predicate function testing a suffix match.
func FieldHasSuffix(name, v string) func(*Selector) {
	return func(s *Selector) { s.Where(HasSuffix(s.C(name), v)) }
}

// FieldEqualFold returns a predicate function testing case-insensitive
// equality.
func FieldEqualFold(name, v string) func(*Selector) {
	return func(s *Selector) { s.Where(EqualFold(s.C(name), v)) }
}

// FieldIsNull returns a predicate function testing `field IS NULL`.
func FieldIsNull(name string) func(*Selector) {
	return func(s *Selector) { s.Where(IsNull(s.C(name))) }
}

// FieldNotNull returns a predicate function testing `field IS NOT NULL`.
func FieldNotNull(name string) func(*Selector) {
	return func(s *Selector) { s.Where(NotNull(s.C(name))) }
}
