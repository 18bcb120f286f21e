package sql

import (
	"fmt"
	"strings"
	"time"

	"github.com/queryscribe/queryscribe/dialect"
	"github.com/queryscribe/queryscribe/dialect/sql/sqlgraph"
)

// Attr describes the subset of attribute metadata the WHERE compiler needs
// about a column beyond what Field already covers: its JSON/array shape and
// the field name callers address it by (spec.md §3 ModelMeta.rawAttributes).
type Attr struct {
	Field
}

// ModelInfo is the combined attribute- and association-lookup contract a
// model-declaration layer must satisfy to be usable as the parent of a WHERE
// clause, an ORDER/GROUP BY reference, or a SELECT plan (spec.md §3
// ModelMeta). It embeds sqlgraph.Model so any ModelInfo already works
// wherever join-graph walking needs a sqlgraph.Model.
type ModelInfo interface {
	sqlgraph.Model
	// Attribute looks up attribute metadata by attribute name.
	Attribute(name string) (Attr, bool)
}

// Cond is an ordered sequence of key/value conditions. spec.md §5 requires
// that iteration over a condition mapping preserve the order the caller
// supplied it in; a plain Go map cannot guarantee that, so conditions are
// built as an explicit ordered list instead.
type Cond struct {
	entries []condEntry
}

type condEntry struct {
	key   string
	value any
}

// M builds a Cond from alternating key, value arguments, preserving
// insertion order. Non-string keys are skipped.
func M(pairs ...any) Cond {
	var c Cond
	for i := 0; i+1 < len(pairs); i += 2 {
		if k, ok := pairs[i].(string); ok {
			c.entries = append(c.entries, condEntry{key: k, value: pairs[i+1]})
		}
	}
	return c
}

// Set appends a key/value pair, preserving prior entries, and returns the
// Cond for chaining.
func (c Cond) Set(key string, value any) Cond {
	c.entries = append(c.entries, condEntry{key: key, value: value})
	return c
}

// Len reports the number of entries in c.
func (c Cond) Len() int { return len(c.entries) }

// Predicate is a single boolean SQL fragment (spec.md §3's compiled
// WhereItem form). Its render function is deferred until the owning
// builder compiles, so it always sees the owning query's dialect.
type Predicate struct {
	fns []func(*Builder)
}

// P constructs a Predicate from one or more render functions, each invoked
// in order against the owning builder.
func P(fns ...func(*Builder)) *Predicate { return &Predicate{fns: fns} }

// Append adds another render function to p and returns it for chaining.
func (p *Predicate) Append(fn func(*Builder)) *Predicate {
	p.fns = append(p.fns, fn)
	return p
}

// Query renders the predicate standalone, using no model/dialect context.
func (p *Predicate) Query() (string, []any) {
	b := &Builder{}
	p.eval(b)
	return b.String(), b.Args()
}

func (p *Predicate) eval(b *Builder) {
	for _, fn := range p.fns {
		fn(b)
	}
}

// col quotes name as an identifier, unless it is already a rendered JSON
// path fragment (produced by jsonPath), which must pass through verbatim.
func col(b *Builder, name string) string {
	if base, path, ok := decodeJSONPath(name); ok {
		return renderJSONPath(b, base, path, "")
	}
	if strings.Contains(name, "->>") {
		return name
	}
	return b.QuoteIdentifiers(name)
}

func escVal(b *Builder, v any) string { return Escape(v, nil, EscapeOptions{Dialect: b.Dialect()}) }

func binary(c string, op string, value any) *Predicate {
	return P(func(b *Builder) {
		if base, path, ok := decodeJSONPath(c); ok {
			cast, v := jsonCastFor(value)
			b.WriteString(renderJSONPath(b, base, path, cast)).WriteString(" " + op + " ").WriteString(escVal(b, v))
			return
		}
		b.WriteString(col(b, c)).WriteString(" " + op + " ").WriteString(escVal(b, value))
	})
}

// JSONCast overrides jsonPath's inferred cast with an explicit PostgreSQL
// type name, for callers whose leaf value's Go type doesn't already
// disambiguate the JSON column's stored type (spec.md §4.3.9's explicit
// `::CAST` override).
type JSONCast struct {
	Value any
	Cast  string
}

// jsonCastFor infers the `::CAST` suffix a JSON path comparison against
// value needs from value's Go type (spec.md §4.3.9), or returns the
// caller-supplied override when value is a JSONCast.
func jsonCastFor(value any) (cast string, v any) {
	if jc, ok := value.(JSONCast); ok {
		return jc.Cast, jc.Value
	}
	switch value.(type) {
	case bool:
		return "boolean", value
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64, float32, float64:
		return "double precision", value
	case time.Time:
		return "timestamptz", value
	default:
		return "", value
	}
}

// EQ builds `c = value`, or `c IS NULL` when value is nil.
func EQ(c string, value any) *Predicate {
	if value == nil {
		return IsNull(c)
	}
	return binary(c, "=", value)
}

// NEQ builds `c <> value`, or `c IS NOT NULL` when value is nil.
func NEQ(c string, value any) *Predicate {
	if value == nil {
		return NotNull(c)
	}
	return binary(c, "<>", value)
}

// GT builds `c > value`.
func GT(c string, value any) *Predicate { return binary(c, ">", value) }

// GTE builds `c >= value`.
func GTE(c string, value any) *Predicate { return binary(c, ">=", value) }

// LT builds `c < value`.
func LT(c string, value any) *Predicate { return binary(c, "<", value) }

// LTE builds `c <= value`.
func LTE(c string, value any) *Predicate { return binary(c, "<=", value) }

// Like builds `c LIKE pattern`.
func Like(c string, pattern string) *Predicate { return binary(c, "LIKE", pattern) }

// NotLike builds `c NOT LIKE pattern`.
func NotLike(c string, pattern string) *Predicate { return binary(c, "NOT LIKE", pattern) }

// ILike builds a case-insensitive LIKE. On dialects without native ILIKE
// (everything but Postgres) it degrades to wrapping both sides in LOWER().
func ILike(c string, pattern string) *Predicate {
	return P(func(b *Builder) {
		if b.Dialect() == dialect.Postgres {
			b.WriteString(col(b, c)).WriteString(" ILIKE ").WriteString(escVal(b, pattern))
			return
		}
		b.WriteString("LOWER(" + col(b, c) + ") LIKE LOWER(" + escVal(b, pattern) + ")")
	})
}

// NotILike is the negated form of ILike.
func NotILike(c string, pattern string) *Predicate {
	return P(func(b *Builder) {
		if b.Dialect() == dialect.Postgres {
			b.WriteString(col(b, c)).WriteString(" NOT ILIKE ").WriteString(escVal(b, pattern))
			return
		}
		b.WriteString("LOWER(" + col(b, c) + ") NOT LIKE LOWER(" + escVal(b, pattern) + ")")
	})
}

// escapeLikePattern backslash-escapes LIKE metacharacters (\, %, _) present
// in value so a literal substring match can't be widened by a value that
// happens to contain a wildcard.
func escapeLikePattern(value string) string {
	r := strings.NewReplacer(`\`, `\\`, "%", `\%`, "_", `\_`)
	return r.Replace(value)
}

// Contains builds a LIKE '%value%' predicate.
func Contains(c string, value string) *Predicate { return Like(c, "%"+escapeLikePattern(value)+"%") }

// ContainsFold is the case-insensitive form of Contains.
func ContainsFold(c string, value string) *Predicate {
	return ILike(c, "%"+escapeLikePattern(value)+"%")
}

// HasPrefix builds a LIKE 'value%' predicate.
func HasPrefix(c string, value string) *Predicate { return Like(c, escapeLikePattern(value)+"%") }

// HasSuffix builds a LIKE '%value' predicate.
func HasSuffix(c string, value string) *Predicate { return Like(c, "%"+escapeLikePattern(value)) }

// EqualFold builds a case-insensitive equality comparison.
func EqualFold(c string, value string) *Predicate {
	return P(func(b *Builder) {
		b.WriteString("LOWER(" + col(b, c) + ") = LOWER(" + escVal(b, value) + ")")
	})
}

// IsNull builds `c IS NULL`.
func IsNull(c string) *Predicate {
	return P(func(b *Builder) { b.WriteString(col(b, c) + " IS NULL") })
}

// NotNull builds `c IS NOT NULL`.
func NotNull(c string) *Predicate {
	return P(func(b *Builder) { b.WriteString(col(b, c) + " IS NOT NULL") })
}

// In builds `c IN (v1, v2, ...)`, or the dialect's closed-form `1 = 0` when
// vs is empty (spec.md §5's empty-$in vacuous-falsehood rule).
func In(c string, vs ...any) *Predicate {
	return P(func(b *Builder) {
		if len(vs) == 0 {
			b.WriteString("1 = 0")
			return
		}
		b.WriteString(col(b, c) + " IN (" + joinValues(b, vs) + ")")
	})
}

// NotIn builds `c NOT IN (v1, v2, ...)`, or the closed-form `1 = 1` when vs
// is empty.
func NotIn(c string, vs ...any) *Predicate {
	return P(func(b *Builder) {
		if len(vs) == 0 {
			b.WriteString("1 = 1")
			return
		}
		b.WriteString(col(b, c) + " NOT IN (" + joinValues(b, vs) + ")")
	})
}

func joinValues(b *Builder, vs []any) string {
	parts := make([]string, len(vs))
	for i, v := range vs {
		parts[i] = escVal(b, v)
	}
	return strings.Join(parts, ", ")
}

// Between builds `c BETWEEN lo AND hi`.
func Between(c string, lo, hi any) *Predicate {
	return P(func(b *Builder) {
		b.WriteString(col(b, c) + " BETWEEN " + escVal(b, lo) + " AND " + escVal(b, hi))
	})
}

// NotBetween builds `c NOT BETWEEN lo AND hi`.
func NotBetween(c string, lo, hi any) *Predicate {
	return P(func(b *Builder) {
		b.WriteString(col(b, c) + " NOT BETWEEN " + escVal(b, lo) + " AND " + escVal(b, hi))
	})
}

// ColEQ builds `c1 = c2`, comparing two columns rather than a column and a
// literal (spec.md's `$col` operator).
func ColEQ(c1, c2 string) *Predicate {
	return P(func(b *Builder) { b.WriteString(col(b, c1) + " = " + col(b, c2)) })
}

// RawPredicate injects sql verbatim as a WHERE fragment (spec.md's `$raw`
// operator).
func RawPredicate(sql string) *Predicate { return P(func(b *Builder) { b.WriteString(sql) }) }

// Overlap builds the array-overlap operator (`&&` on Postgres); unsupported
// dialects degrade to always-false, since they carry no native array type.
func Overlap(c string, vs []any) *Predicate {
	return P(func(b *Builder) {
		if b.Dialect() != dialect.Postgres {
			b.WriteString("1 = 0")
			return
		}
		b.WriteString(col(b, c) + " && ARRAY[" + joinValues(b, vs) + "]")
	})
}

// ArrayContains builds the array-containment operator (`@>` on Postgres).
func ArrayContains(c string, vs []any) *Predicate {
	return P(func(b *Builder) {
		if b.Dialect() != dialect.Postgres {
			b.WriteString("1 = 0")
			return
		}
		b.WriteString(col(b, c) + " @> ARRAY[" + joinValues(b, vs) + "]")
	})
}

// ArrayContained builds the reverse containment operator (`<@` on
// Postgres).
func ArrayContained(c string, vs []any) *Predicate {
	return P(func(b *Builder) {
		if b.Dialect() != dialect.Postgres {
			b.WriteString("1 = 0")
			return
		}
		b.WriteString(col(b, c) + " <@ ARRAY[" + joinValues(b, vs) + "]")
	})
}

// And combines preds with AND, parenthesised, skipping any nil entries. An
// empty or all-nil input renders the closed-form tautology `1 = 1`.
func And(preds ...*Predicate) *Predicate {
	return combine(preds, " AND ", "1 = 1")
}

// Or combines preds with OR, parenthesised, skipping any nil entries. An
// empty or all-nil input renders the closed-form contradiction `1 = 0`
// (spec.md §5's vacuous-`$or` rule).
func Or(preds ...*Predicate) *Predicate {
	return combine(preds, " OR ", "1 = 0")
}

func combine(preds []*Predicate, sep, empty string) *Predicate {
	return P(func(b *Builder) {
		var parts []string
		for _, p := range preds {
			if p == nil {
				continue
			}
			nb := &Builder{dialect: b.dialect}
			p.eval(nb)
			if s := nb.String(); s != "" {
				parts = append(parts, s)
			}
		}
		switch len(parts) {
		case 0:
			b.WriteString(empty)
		case 1:
			b.WriteString(parts[0])
		default:
			b.WriteString("(" + strings.Join(parts, sep) + ")")
		}
	})
}

// Not negates pred, wrapping it in NOT (...).
func Not(pred *Predicate) *Predicate {
	return P(func(b *Builder) {
		nb := &Builder{dialect: b.dialect}
		pred.eval(nb)
		b.WriteString("NOT (" + nb.String() + ")")
	})
}

// aliasMap normalises legacy/alternate operator spellings to the canonical
// `$`-prefixed key used by the whereItemQuery dispatch table (spec.md §3's
// bare-word and symbolic legacy operator spellings). It is consulted for
// every operator key at every nesting level, since whereValue re-applies it
// on each Cond it descends into.
var aliasMap = map[string]string{
	"$ne":         "$not",
	"$notIn":      "$notIn",
	"$like":       "$like",
	"$startsWith": "$like",

	// bare-word legacy spellings
	"ne":           "$ne",
	"not":          "$not",
	"eq":           "$eq",
	"is":           "$is",
	"gt":           "$gt",
	"gte":          "$gte",
	"lt":           "$lt",
	"lte":          "$lte",
	"like":         "$like",
	"notLike":      "$notLike",
	"ilike":        "$iLike",
	"notIlike":     "$notILike",
	"in":           "$in",
	"notIn":        "$notIn",
	"between":      "$between",
	"notBetween":   "$notBetween",
	"overlap":      "$overlap",
	"contains":     "$contains",
	"contained":    "$contained",
	"any":          "$any",
	"all":          "$all",
	"col":          "$col",
	"raw":          "$raw",
	"startsWith":   "$like",
	"strictLeft":   "$strictLeft",
	"strictRight":  "$strictRight",
	"noExtendLeft": "$noExtendLeft",
	"noExtendRight": "$noExtendRight",
	"adjacent":     "$adjacent",

	// symbolic legacy spellings
	"..":  "$between",
	"@>":  "$contains",
	"<@":  "$contained",
	"&&":  "$overlap",
	"<<":  "$strictLeft",
	">>":  "$strictRight",
	"&<":  "$noExtendRight",
	"&>":  "$noExtendLeft",
	"-|-": "$adjacent",
}

// opEntry renders one `{$op: value}` clause against column c.
type opEntry func(b *Builder, c string, value any)

var opTable = map[string]opEntry{
	"$eq":            func(b *Builder, c string, v any) { renderPred(b, EQ(c, v)) },
	"$ne":            func(b *Builder, c string, v any) { renderPred(b, NEQ(c, v)) },
	"$not":           func(b *Builder, c string, v any) { renderPred(b, NEQ(c, v)) },
	"$gte":           func(b *Builder, c string, v any) { renderPred(b, GTE(c, v)) },
	"$gt":            func(b *Builder, c string, v any) { renderPred(b, GT(c, v)) },
	"$lte":           func(b *Builder, c string, v any) { renderPred(b, LTE(c, v)) },
	"$lt":            func(b *Builder, c string, v any) { renderPred(b, LT(c, v)) },
	"$is":            func(b *Builder, c string, v any) { renderPred(b, EQ(c, v)) },
	"$like":          func(b *Builder, c string, v any) { renderPred(b, Like(c, fmt.Sprint(v))) },
	"$notLike":       func(b *Builder, c string, v any) { renderPred(b, NotLike(c, fmt.Sprint(v))) },
	"$iLike":         func(b *Builder, c string, v any) { renderPred(b, ILike(c, fmt.Sprint(v))) },
	"$notILike":      func(b *Builder, c string, v any) { renderPred(b, NotILike(c, fmt.Sprint(v))) },
	"$in":            func(b *Builder, c string, v any) { renderPred(b, In(c, toSlice(v)...)) },
	"$notIn":         func(b *Builder, c string, v any) { renderPred(b, NotIn(c, toSlice(v)...)) },
	"$overlap":       func(b *Builder, c string, v any) { renderPred(b, Overlap(c, toSlice(v))) },
	"$contains":      func(b *Builder, c string, v any) { renderPred(b, ArrayContains(c, toSlice(v))) },
	"$contained":     func(b *Builder, c string, v any) { renderPred(b, ArrayContained(c, toSlice(v))) },
	"$any":           func(b *Builder, c string, v any) { renderPred(b, In(c, toSlice(v)...)) },
	"$all":           func(b *Builder, c string, v any) { renderPred(b, In(c, toSlice(v)...)) },
	"$col":           func(b *Builder, c string, v any) { renderPred(b, ColEQ(c, fmt.Sprint(v))) },
	"$raw":           func(b *Builder, c string, v any) { renderPred(b, RawPredicate(fmt.Sprint(v))) },
	"$between":       func(b *Builder, c string, v any) { lo, hi := pair(v); renderPred(b, Between(c, lo, hi)) },
	"$notBetween":    func(b *Builder, c string, v any) { lo, hi := pair(v); renderPred(b, NotBetween(c, lo, hi)) },
	"$strictLeft":    func(b *Builder, c string, v any) { renderPred(b, binary(c, "<<", rangeLit(v))) },
	"$strictRight":   func(b *Builder, c string, v any) { renderPred(b, binary(c, ">>", rangeLit(v))) },
	"$noExtendLeft":  func(b *Builder, c string, v any) { renderPred(b, binary(c, "&>", rangeLit(v))) },
	"$noExtendRight": func(b *Builder, c string, v any) { renderPred(b, binary(c, "&<", rangeLit(v))) },
	"$adjacent":      func(b *Builder, c string, v any) { renderPred(b, binary(c, "-|-", rangeLit(v))) },
}

func renderPred(b *Builder, p *Predicate) { p.eval(b) }

func toSlice(v any) []any {
	if v == nil {
		return nil
	}
	if vs, ok := v.([]any); ok {
		return vs
	}
	return []any{v}
}

func pair(v any) (any, any) {
	vs := toSlice(v)
	if len(vs) < 2 {
		return nil, nil
	}
	return vs[0], vs[1]
}

func rangeLit(v any) Raw { return Raw{SQL: fmt.Sprint(v)} }

// WhereQuery compiles the top-level WHERE argument, rejecting the bare
// string form the source implementation once allowed (spec.md §5 /
// ErrRawWhereRemoved — raw conditions must go through RawPredicate/$raw
// explicitly instead of an ambient implicit-raw string). An optional
// trailing prefix qualifies bare attribute references the way a SELECT
// plan's WHERE clause does (spec.md §4.3 step 13's `opts.prefix`);
// omitting it preserves the unqualified rendering standalone callers rely
// on.
func WhereQuery(value any, model ModelInfo, dialectName string, prefix ...string) (*Predicate, error) {
	if _, ok := value.(string); ok {
		return nil, newBuildError(ErrRawWhereRemoved, fmt.Sprint(value))
	}
	b := &Builder{dialect: dialectName}
	return whereValue(&lowerCtx{b: b, model: model, prefix: firstPrefix(prefix)}, "", value)
}

func firstPrefix(prefix []string) string {
	if len(prefix) > 0 {
		return prefix[0]
	}
	return ""
}

// WhereItemsQuery compiles an ordered Cond of attribute -> condition
// mappings into a single AND-combined Predicate (spec.md §5
// `whereItemsQuery`). An optional trailing prefix qualifies every resolved
// column with a table alias, e.g. `selectQuery('users', {where:{id:1}})`'s
// `WHERE "users"."id" = 1` (spec.md §4.3 step 13, §8.1).
func WhereItemsQuery(cond Cond, model ModelInfo, dialectName string, prefix ...string) (*Predicate, error) {
	px := firstPrefix(prefix)
	ctx := &lowerCtx{b: &Builder{dialect: dialectName}, model: model, prefix: px}
	var preds []*Predicate
	for _, e := range cond.entries {
		switch e.key {
		case "$or":
			p, err := combineCond(ctx, toCondSlice(e.value), Or)
			if err != nil {
				return nil, err
			}
			preds = append(preds, p)
		case "$and":
			p, err := combineCond(ctx, toCondSlice(e.value), And)
			if err != nil {
				return nil, err
			}
			preds = append(preds, p)
		case "$not":
			inner, err := WhereItemsQuery(asCond(e.value), model, dialectName, px)
			if err != nil {
				return nil, err
			}
			preds = append(preds, Not(inner))
		default:
			s, err := whereItemQueryStr(ctx, e.key, e.value)
			if err != nil {
				return nil, err
			}
			preds = append(preds, RawPredicate(s))
		}
	}
	return And(preds...), nil
}

func toCondSlice(v any) []Cond {
	switch vs := v.(type) {
	case []Cond:
		return vs
	case []any:
		out := make([]Cond, 0, len(vs))
		for _, item := range vs {
			out = append(out, asCond(item))
		}
		return out
	default:
		return []Cond{asCond(v)}
	}
}

func asCond(v any) Cond {
	if c, ok := v.(Cond); ok {
		return c
	}
	return Cond{}
}

func combineCond(ctx *lowerCtx, conds []Cond, combinator func(...*Predicate) *Predicate) (*Predicate, error) {
	preds := make([]*Predicate, 0, len(conds))
	for _, c := range conds {
		p, err := WhereItemsQuery(c, ctx.model, ctx.b.Dialect(), ctx.prefix)
		if err != nil {
			return nil, err
		}
		preds = append(preds, p)
	}
	return combinator(preds...), nil
}

// whereItemQuery compiles a single `attribute: logic` pair, called both from
// WhereItemsQuery and from ExprWhere.lower's Cond case.
func whereItemQuery(ctx *lowerCtx, attribute string, logic Cond) (string, error) {
	return whereItemQueryStr(ctx, attribute, logic)
}

func whereItemQueryStr(ctx *lowerCtx, attribute string, logic any) (string, error) {
	c := attribute
	if ctx.model != nil {
		if attr, ok := ctx.model.Attribute(attribute); ok && attr.Column != "" {
			c = attr.Column
		}
	}
	if ctx.prefix != "" && !strings.Contains(c, ".") {
		c = ctx.prefix + "." + c
	}
	p, err := whereValue(ctx, c, logic)
	if err != nil {
		return "", err
	}
	nb := &Builder{dialect: ctx.b.Dialect()}
	p.eval(nb)
	return nb.String(), nil
}

// whereValue dispatches a single condition value against column c: a Cond
// is an operator map, a slice normalises to $in, anything else is a direct
// equality (or IS NULL) comparison.
func whereValue(ctx *lowerCtx, c string, value any) (*Predicate, error) {
	switch v := value.(type) {
	case Cond:
		var preds []*Predicate
		for _, e := range v.entries {
			key := e.key
			if alias, ok := aliasMap[key]; ok {
				key = alias
			}
			fn, ok := opTable[key]
			if !ok {
				// Not a recognised operator: treat it as a nested JSON path
				// segment, e.g. {meta: {path: 1}} -> meta->>'path' = 1.
				nested, err := whereValue(ctx, jsonPath(ctx.b, c, key), e.value)
				if err != nil {
					return nil, err
				}
				preds = append(preds, nested)
				continue
			}
			preds = append(preds, P(func(b *Builder) { fn(b, c, e.value) }))
		}
		return And(preds...), nil
	case []any:
		vs := make([]any, len(v))
		copy(vs, v)
		return In(c, vs...), nil
	case Expr:
		rhs, err := v.lower(ctx)
		if err != nil {
			return nil, err
		}
		return P(func(b *Builder) {
			b.WriteString(col(b, c) + " = " + rhs)
		}), nil
	default:
		return EQ(c, v), nil
	}
}

// jsonPathMarker prefixes the encoded form of an in-progress JSON path
// column reference: a base column plus the traversal segments accumulated
// so far. Rendering into the dialect's actual path-array syntax is deferred
// until a leaf predicate (col, binary, ...) needs the finished SQL fragment,
// since only there is the leaf value available to infer a cast from.
const jsonPathMarker = "\x00jsonpath\x00"

// jsonPath extends c's JSON path by one level (spec.md §4.3.9's
// nested-object traversal rule). c is either a plain column name or an
// already-encoded path from an outer jsonPath call, so deeper paths
// compose correctly as whereValue recurses through nested Cond values.
func jsonPath(b *Builder, c, key string) string {
	if base, path, ok := decodeJSONPath(c); ok {
		return encodeJSONPath(base, append(append([]string{}, path...), key))
	}
	return encodeJSONPath(c, []string{key})
}

func encodeJSONPath(base string, path []string) string {
	return jsonPathMarker + base + "\x00" + strings.Join(path, "\x00")
}

func decodeJSONPath(c string) (base string, path []string, ok bool) {
	if !strings.HasPrefix(c, jsonPathMarker) {
		return "", nil, false
	}
	parts := strings.Split(strings.TrimPrefix(c, jsonPathMarker), "\x00")
	return parts[0], parts[1:], true
}

// renderJSONPath renders the finished SQL fragment for a JSON path
// reference. Postgres has the `#>>` path-array operator this is grounded
// on (spec.md §4.3.9); other dialects have no equivalent in this stack, so
// they degrade to a chained `->>` per level instead.
func renderJSONPath(b *Builder, base string, path []string, cast string) string {
	quotedBase := b.QuoteIdentifiers(base)
	if b.Dialect() != dialect.Postgres {
		expr := quotedBase
		for _, seg := range path {
			expr += "->>'" + strings.ReplaceAll(seg, "'", "''") + "'"
		}
		return expr
	}
	escaped := make([]string, len(path))
	for i, seg := range path {
		escaped[i] = strings.ReplaceAll(seg, "'", "''")
	}
	expr := "(" + quotedBase + " #>> '{" + strings.Join(escaped, ",") + "}')"
	if cast != "" {
		expr += "::" + cast
	}
	return expr
}
