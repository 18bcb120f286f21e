package sql

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/queryscribe/queryscribe/dialect"
)

// Querier wraps the Query method for returning the SQL representation of a
// fragment together with any bind arguments it produced. Every node in this
// package — predicates, selectors, mutation builders, expression nodes — is
// a Querier. Builders in this package usually inline literal values instead
// of binding them (see escape below), so the argument slice is empty in the
// common case; it exists so callers that prefer parameterized statements
// have somewhere to append to.
type Querier interface {
	Query() (string, []any)
}

// Builder is the base type embedded by every query builder in this package.
// It owns the output buffer, the dialect name used for identifier quoting
// and capability lookups, and any bind arguments collected along the way.
type Builder struct {
	sb      *strings.Builder
	args    []any
	dialect string
}

// SetDialect sets the dialect name used for identifier quoting and capability
// lookups. An empty dialect behaves like ANSI SQL (double-quoted
// identifiers, no dialect-specific capability overrides).
func (b *Builder) SetDialect(name string) *Builder {
	b.dialect = name
	return b
}

// Dialect returns the dialect name of this builder.
func (b *Builder) Dialect() string { return b.dialect }

// Caps returns the capability record for this builder's dialect.
func (b *Builder) Caps() Capability { return CapsFor(b.dialect) }

func (b *Builder) buf() *strings.Builder {
	if b.sb == nil {
		b.sb = &strings.Builder{}
	}
	return b.sb
}

// WriteString appends s verbatim to the builder's buffer.
func (b *Builder) WriteString(s string) *Builder {
	b.buf().WriteString(s)
	return b
}

// WriteByte appends a single byte to the builder's buffer.
func (b *Builder) WriteByte(c byte) *Builder {
	b.buf().WriteByte(c)
	return b
}

// Arg appends a bind argument and returns the builder for chaining. Most
// builders in this package do not call this — see the package doc comment
// on Querier — but it is available for callers that opt into placeholders.
func (b *Builder) Arg(a any) *Builder {
	b.args = append(b.args, a)
	return b
}

// Args returns the bind arguments accumulated so far.
func (b *Builder) Args() []any { return b.args }

// String returns the buffer contents built so far.
func (b *Builder) String() string {
	if b.sb == nil {
		return ""
	}
	return b.sb.String()
}

// Reset clears the buffer and arguments.
func (b *Builder) Reset() {
	b.sb = nil
	b.args = nil
}

// Clone returns a copy of the builder sharing no state with the receiver.
func (b Builder) Clone() Builder {
	nb := Builder{dialect: b.dialect}
	if b.sb != nil {
		nb.sb = &strings.Builder{}
		nb.sb.WriteString(b.sb.String())
	}
	if b.args != nil {
		nb.args = append([]any(nil), b.args...)
	}
	return nb
}

// quoteChars returns the opening/closing identifier delimiters for the
// receiver's dialect (C1).
func (b *Builder) quoteChars() (open, close byte) {
	switch b.dialect {
	case dialect.MySQL:
		return '`', '`'
	case dialect.MSSQL:
		return '[', ']'
	default: // Postgres, SQLite, and ANSI-SQL fallback.
		return '"', '"'
	}
}

// QuoteIdentifier wraps id in the dialect's identifier delimiters, doubling
// any internal occurrence of the closing delimiter. An empty id or the bare
// wildcard "*" pass through unchanged.
func (b *Builder) QuoteIdentifier(id string) string {
	if id == "" || id == "*" {
		return id
	}
	open, close := b.quoteChars()
	var sb strings.Builder
	sb.WriteByte(open)
	for i := 0; i < len(id); i++ {
		c := id[i]
		sb.WriteByte(c)
		if c == close {
			sb.WriteByte(close)
		}
	}
	sb.WriteByte(close)
	return sb.String()
}

// QuoteIdentifiers splits path on the *last* '.' only: everything before it
// is quoted as a single identifier (dots inside are not re-split), the
// final segment is quoted separately. This asymmetry preserves
// schema-qualified names without over-splitting alias paths that are
// already dot-joined (e.g. "posts.comments" as an include alias).
func (b *Builder) QuoteIdentifiers(path string) string {
	if path == "" || path == "*" {
		return path
	}
	idx := strings.LastIndex(path, ".")
	if idx < 0 {
		return b.QuoteIdentifier(path)
	}
	return b.QuoteIdentifier(path[:idx]) + "." + b.QuoteIdentifier(path[idx+1:])
}

// TableRef identifies a table, optionally schema-qualified and aliased (the
// TableRef data-model entity from spec.md §3).
type TableRef struct {
	Schema    string
	Name      string
	Delimiter string // defaults to "." when empty.
	Alias     string
}

// Table returns a bare TableRef for name. Chain .Schema/.As to refine it.
func Table(name string) TableRef { return TableRef{Name: name} }

// As returns a copy of the TableRef aliased to alias.
func (t TableRef) As(alias string) TableRef {
	t.Alias = alias
	return t
}

// InSchema returns a copy of the TableRef qualified by schema.
func (t TableRef) InSchema(schema string) TableRef {
	t.Schema = schema
	return t
}

// C qualifies name with the table's alias, or its bare name when unaliased.
func (t TableRef) C(name string) string {
	alias := t.Alias
	if alias == "" {
		alias = t.Name
	}
	if alias == "" {
		return name
	}
	return alias + "." + name
}

func (t TableRef) delimiter() string {
	if t.Delimiter != "" {
		return t.Delimiter
	}
	return "."
}

// QuoteTable renders ref for the builder's dialect. If the dialect supports
// schemas and ref.Schema is set, it emits QSCHEMA.QTABLE; otherwise schema,
// delimiter and table name are concatenated into a single token before
// quoting (the TableRef invariant from spec.md §3). When forceAlias is
// true, an alias is derived from ref.Alias, falling back to ref.Name; any
// non-empty alias that results is appended as " AS <quoted>".
func (b *Builder) QuoteTable(ref TableRef, forceAlias bool) string {
	var out string
	if ref.Schema == "" {
		out = b.QuoteIdentifier(ref.Name)
	} else if b.Caps().Schemas {
		out = b.QuoteIdentifier(ref.Schema) + "." + b.QuoteIdentifier(ref.Name)
	} else {
		out = b.QuoteIdentifier(ref.Schema + ref.delimiter() + ref.Name)
	}
	alias := ref.Alias
	if alias == "" && forceAlias {
		alias = ref.Name
	}
	if alias != "" {
		out += " AS " + b.QuoteIdentifier(alias)
	}
	return out
}

// booleanValue renders a Go bool as the dialect's boolean literal.
func (b *Builder) booleanValue(v bool) string {
	switch b.dialect {
	case dialect.MSSQL:
		if v {
			return "1"
		}
		return "0"
	default:
		if v {
			return "true"
		}
		return "false"
	}
}

// nullLiteral returns the dialect's NULL literal. It is the same token
// across all four supported dialects, kept as a method for symmetry with
// booleanValue and to give dialects a single override point.
func (b *Builder) nullLiteral() string { return "NULL" }

// ScalarEscape is the scalar SQL-literal escaper consumed by Escape (C1,
// spec.md §6). It is the seam an application wires real value-escaping
// primitives through; the default implementation below covers the common
// Go kinds (string, numeric, bool, time.Time, []byte, slices, nil) well
// enough to be used standalone, and is always consulted unless a field's
// type supplies its own Stringify hook.
func ScalarEscape(value any, timezone *time.Location, dialectName string) string {
	b := &Builder{dialect: dialectName}
	switch v := value.(type) {
	case nil:
		return b.nullLiteral()
	case bool:
		return b.booleanValue(v)
	case string:
		return quoteLiteral(v)
	case []byte:
		return hexLiteral(v, dialectName)
	case time.Time:
		if timezone != nil {
			v = v.In(timezone)
		}
		return quoteLiteral(v.Format("2006-01-02 15:04:05.000 -07:00"))
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64:
		return fmt.Sprintf("%d", v)
	case float32:
		return formatFloat(float64(v))
	case float64:
		return formatFloat(v)
	default:
		return escapeSlice(value, timezone, dialectName)
	}
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}

// escapeSlice handles the "sequences are parenthesised comma lists" rule of
// spec.md §6; it is reached via reflection-free type assertions for the
// slice kinds callers are expected to pass ([]any, []string, []int, ...).
func escapeSlice(value any, timezone *time.Location, dialectName string) string {
	switch vs := value.(type) {
	case []any:
		return "(" + joinEscaped(vs, timezone, dialectName) + ")"
	case []string:
		any := make([]any, len(vs))
		for i, v := range vs {
			any[i] = v
		}
		return "(" + joinEscaped(any, timezone, dialectName) + ")"
	case []int:
		any := make([]any, len(vs))
		for i, v := range vs {
			any[i] = v
		}
		return "(" + joinEscaped(any, timezone, dialectName) + ")"
	default:
		// Fall back to the type's default string form, quoted as a string
		// literal. This keeps ScalarEscape total for custom Stringer-like
		// types that did not go through a field's own stringify hook.
		return quoteLiteral(fmt.Sprint(value))
	}
}

func joinEscaped(vs []any, timezone *time.Location, dialectName string) string {
	parts := make([]string, len(vs))
	for i, v := range vs {
		parts[i] = ScalarEscape(v, timezone, dialectName)
	}
	return strings.Join(parts, ",")
}

// quoteLiteral single-quotes s, doubling any internal single quote.
func quoteLiteral(s string) string {
	return "'" + strings.ReplaceAll(s, "'", "''") + "'"
}

// hexLiteral renders bytes as the dialect's binary literal.
func hexLiteral(p []byte, dialectName string) string {
	hex := fmt.Sprintf("%x", p)
	switch dialectName {
	case dialect.MySQL:
		return "X'" + hex + "'"
	case dialect.MSSQL:
		return "0x" + hex
	default: // Postgres, SQLite.
		return "'\\x" + hex + "'"
	}
}

// Stringifier is implemented by field/attribute type descriptors that know
// how to render their own values to SQL literals (spec.md §4.1's
// `type.stringify` capability). Escape consults it before falling back to
// ScalarEscape.
type Stringifier interface {
	// Stringify renders v to a SQL literal. escape is the scalar escaper to
	// delegate to for any sub-values (e.g. a JSON type escaping its string
	// payload). raw, when true, means the result is emitted unescaped (the
	// type's "escape=false" capability); when false, Escape passes the
	// result through ScalarEscape.
	Stringify(v any, escape func(any) string) (sql string, raw bool)
}

// Validator is implemented by field/attribute type descriptors that can
// assert a Go value is a legal instance of the type (spec.md §4.1's
// `type.validate` capability).
type Validator interface {
	Validate(v any) error
}

// Field describes the subset of attribute/field metadata Escape and the
// WHERE compiler need about a column (spec.md §3 ModelMeta.rawAttributes
// entries), decoupled from any concrete model-declaration package.
type Field struct {
	Name          string
	Column        string
	Type          any // optional Stringifier/Validator; nil means "use ScalarEscape".
	AutoIncrement bool
	AllowNull     bool
	IsArray       bool
	IsJSON        bool
}

// EscapeOptions configures Escape.
type EscapeOptions struct {
	Timezone       *time.Location
	Dialect        string
	IsList         bool // validate each element of value when true.
	TypeValidation bool
}

// Escape implements spec.md §4.1's `escape` entry point: any Querier
// (Expression node) is rendered through its Query method; fields with a
// Stringify capability delegate to it, and the stringified result is
// returned unescaped when Stringify reports raw ("escape=false") and is
// passed through ScalarEscape otherwise; everything else goes through
// ScalarEscape.
func Escape(value any, field *Field, opts EscapeOptions) string {
	if q, ok := value.(Querier); ok {
		sql, _ := q.Query()
		return sql
	}
	scalar := func(v any) string { return ScalarEscape(v, opts.Timezone, opts.Dialect) }
	if field != nil && field.Type != nil {
		if validator, ok := field.Type.(Validator); ok && opts.TypeValidation {
			if opts.IsList {
				if vs, ok := value.([]any); ok {
					for _, v := range vs {
						if err := validator.Validate(v); err != nil {
							panic(err)
						}
					}
				}
			} else if err := validator.Validate(value); err != nil {
				panic(err)
			}
		}
		if stringifier, ok := field.Type.(Stringifier); ok {
			sql, raw := stringifier.Stringify(value, scalar)
			if raw {
				return sql
			}
			value = sql
		}
	}
	return scalar(value)
}
