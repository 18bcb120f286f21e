package sql

import (
	"fmt"
	"strings"

	"github.com/queryscribe/queryscribe/dialect/sql/sqlgraph"
)

// Expr is implemented by every expression node from spec.md §3: Literal,
// Fn, Cast, Col, ExprWhere, Raw. lower receives the context needed to
// resolve column references and escape literal values, and returns the
// rendered SQL fragment (spec.md §4.4, `handleSequelizeMethod` in the
// source implementation — renamed here to the plain dispatch it is).
type Expr interface {
	Querier
	lower(ctx *lowerCtx) (string, error)
}

// lowerCtx carries the dialect, the current model (for Col/quote
// resolution) and whether lowering is happening inside an ORDER BY/GROUP BY
// context (where Col may carry a sequence path).
type lowerCtx struct {
	b        *Builder
	model    ModelInfo
	orderCtx bool
	// prefix, when set, qualifies bare attribute references resolved while
	// lowering (spec.md §4.3 step 13's `opts.prefix`) — the table alias a
	// SELECT plan's WHERE clause is compiled against.
	prefix string
}

func (c *lowerCtx) withOrder() *lowerCtx {
	nc := *c
	nc.orderCtx = true
	return &nc
}

// standaloneCtx builds a lowerCtx for the package-level Query() methods,
// which have no model/dialect context of their own; they render as ANSI
// SQL against no model. Builders that actually execute lowering (WHERE
// compiler, SELECT planner) always construct their own lowerCtx instead.
func standaloneCtx() *lowerCtx { return &lowerCtx{b: &Builder{}} }

// Literal is emitted verbatim, never escaped (spec.md §3).
type Literal struct{ Val string }

// Lit constructs a Literal expression node.
func Lit(s string) Literal { return Literal{Val: s} }

func (l Literal) Query() (string, []any)          { return l.Val, nil }
func (l Literal) lower(*lowerCtx) (string, error) { return l.Val, nil }

// Raw passes its contents through unchanged, modelling the spec's
// `{raw: string}` shape (kept distinct from Literal so callers can tell an
// explicit Expression.Literal from a raw-fragment condition value apart).
type Raw struct{ SQL string }

func (r Raw) Query() (string, []any)          { return r.SQL, nil }
func (r Raw) lower(*lowerCtx) (string, error) { return r.SQL, nil }

// Fn is a SQL function call: NAME(arg, ...).
type Fn struct {
	Name string
	Args []any
}

// NewFn constructs a Fn expression node.
func NewFn(name string, args ...any) Fn { return Fn{Name: name, Args: args} }

func (f Fn) Query() (string, []any) {
	s, _ := f.lower(standaloneCtx())
	return s, nil
}

func (f Fn) lower(ctx *lowerCtx) (string, error) {
	parts := make([]string, len(f.Args))
	for i, a := range f.Args {
		s, err := lowerArg(ctx, a)
		if err != nil {
			return "", err
		}
		parts[i] = s
	}
	return f.Name + "(" + strings.Join(parts, ", ") + ")", nil
}

// Cast wraps an expression: CAST(expr AS TYPE_UPPER).
type Cast struct {
	Expr any
	Type string
}

// NewCast constructs a Cast expression node.
func NewCast(expr any, typ string) Cast { return Cast{Expr: expr, Type: typ} }

func (c Cast) Query() (string, []any) {
	s, _ := c.lower(standaloneCtx())
	return s, nil
}

func (c Cast) lower(ctx *lowerCtx) (string, error) {
	inner, err := lowerArg(ctx, c.Expr)
	if err != nil {
		return "", err
	}
	return "CAST(" + inner + " AS " + strings.ToUpper(c.Type) + ")", nil
}

// Col is an identifier path reference: a dotted string, the bare wildcard
// "*", or — in ORDER BY/GROUP BY context only — a sequence used to walk an
// association chain via Quote (spec.md §4.2/§4.4).
type Col struct{ Path any }

// NewCol constructs a Col expression node over a dotted string path.
func NewCol(path string) Col { return Col{Path: path} }

// NewColPath constructs a Col expression node over an ordered path sequence,
// only valid in ORDER BY/GROUP BY contexts.
func NewColPath(path ...any) Col { return Col{Path: path} }

func (c Col) Query() (string, []any) {
	s, _ := c.lower(standaloneCtx())
	return s, nil
}

func (c Col) lower(ctx *lowerCtx) (string, error) {
	if s, ok := c.Path.(string); ok {
		if s == "*" {
			return "*", nil
		}
		return ctx.b.QuoteIdentifiers(s), nil
	}
	if seq, ok := c.Path.([]any); ok {
		if !ctx.orderCtx {
			return "", newBuildError(ErrColOutsideOrderGroup, fmt.Sprint(seq))
		}
		return quoteSequence(ctx.b, seq, ctx.model)
	}
	return "", newBuildError(ErrInvalidOrderStructure, fmt.Sprint(c.Path))
}

// ExprWhere is the explicit comparator expression node (spec.md §3
// `Where(attribute, comparator, logic)`).
type ExprWhere struct {
	Attribute  any // string, Col, or another Expr resolving to a column.
	Comparator string
	Logic      any
}

// NewWhere constructs an ExprWhere expression node.
func NewWhere(attribute any, comparator string, logic any) ExprWhere {
	return ExprWhere{Attribute: attribute, Comparator: comparator, Logic: logic}
}

func (w ExprWhere) Query() (string, []any) {
	s, _ := w.lower(standaloneCtx())
	return s, nil
}

func (w ExprWhere) lower(ctx *lowerCtx) (string, error) {
	key, err := lowerArg(ctx, w.Attribute)
	if err != nil {
		return "", err
	}
	switch logic := w.Logic.(type) {
	case nil:
		return key + " IS NULL", nil
	case Expr:
		rhs, err := logic.lower(ctx)
		if err != nil {
			return "", err
		}
		return key + " " + w.Comparator + " " + rhs, nil
	case bool:
		return key + " " + w.Comparator + " " + ctx.b.booleanValue(logic), nil
	case Cond:
		attr, ok := w.Attribute.(string)
		if !ok {
			return "", newBuildError(ErrInvalidOrderStructure, fmt.Sprint(w.Attribute))
		}
		return whereItemQuery(ctx, attr, logic)
	default:
		return key + " " + w.Comparator + " " + Escape(logic, nil, EscapeOptions{Dialect: ctx.b.Dialect()}), nil
	}
}

// lowerArg lowers a as an expression argument: Expr nodes are lowered
// recursively, everything else is escaped as a scalar literal (spec.md
// §4.4's "each arg is lowered if Expression, else escaped").
func lowerArg(ctx *lowerCtx, a any) (string, error) {
	if e, ok := a.(Expr); ok {
		return e.lower(ctx)
	}
	return Escape(a, nil, EscapeOptions{Dialect: ctx.b.Dialect()}), nil
}

// Quote resolves expr — a string, Raw fragment, Expr node, or ordered path
// sequence — into SQL text, used for ORDER BY, GROUP BY and Col references
// (spec.md §4.2, C4). parent is the model the resolution starts from; it
// may be nil when expr carries no association-walking sequence.
func Quote(b *Builder, expr any, parent ModelInfo) (string, error) {
	switch v := expr.(type) {
	case string:
		return b.QuoteIdentifiers(v), nil
	case Raw:
		return v.SQL, nil
	case Expr:
		return v.lower(&lowerCtx{b: b, model: parent, orderCtx: true})
	case []any:
		return quoteSequence(b, v, parent)
	default:
		return "", newBuildError(ErrInvalidOrderStructure, fmt.Sprint(expr))
	}
}

// PathStep pairs a model with an explicit alias when walking an association
// chain in an ORDER BY/GROUP BY reference (spec.md §4.2's `{model, as}`).
type PathStep struct {
	Model sqlgraph.Model
	As    string
}

// quoteSequence implements the ordered-path walk described in spec.md §4.2:
// positions 0..k-1 are model steps, the remainder is a column reference
// with an optional trailing direction.
func quoteSequence(b *Builder, seq []any, parent ModelInfo) (string, error) {
	if len(seq) == 0 {
		return "", newBuildError(ErrInvalidOrderStructure, "empty path")
	}
	tail := append([]any(nil), seq...)
	var direction string
	if len(tail) > 1 {
		if s, ok := tail[len(tail)-1].(string); ok && isDirectionToken(s) {
			direction = strings.ToUpper(s)
			tail = tail[:len(tail)-1]
		}
	}
	if len(tail) == 0 {
		return "", newBuildError(ErrInvalidOrderStructure, "empty path after direction")
	}
	col := tail[len(tail)-1]
	steps := tail[:len(tail)-1]

	var tableNames []string
	var cur sqlgraph.Model = parent
	for _, step := range steps {
		var model sqlgraph.Model
		var as string
		switch s := step.(type) {
		case sqlgraph.Model:
			model, as = s, s.Name()
		case PathStep:
			model, as = s.Model, s.As
			if as == "" {
				as = s.Model.Name()
			}
		default:
			return "", newBuildError(ErrInvalidOrderStructure, fmt.Sprint(step))
		}
		if cur == nil {
			return "", newBuildError(ErrInvalidAssociationPath, as)
		}
		assoc, ok := cur.Association(model.Name(), as)
		if !ok {
			return "", newBuildError(ErrInvalidAssociationPath, strings.Join(append(append([]string{}, tableNames...), as), "."))
		}
		if assoc.Kind == sqlgraph.M2M && assoc.Through != nil && assoc.Through.Model.Name() == model.Name() {
			as = model.Name()
		}
		tableNames = append(tableNames, as)
		cur = model
	}

	var curModel ModelInfo
	if mi, ok := cur.(ModelInfo); ok {
		curModel = mi
	}
	colSQL, err := Quote(b, col, curModel)
	if err != nil {
		return "", err
	}

	var out string
	switch {
	case len(tableNames) == 0 && parent != nil:
		out = b.QuoteIdentifier(parent.Name()) + "." + colSQL
	case len(tableNames) == 0:
		out = colSQL
	default:
		out = b.QuoteIdentifier(strings.Join(tableNames, ".")) + "." + colSQL
	}
	if direction != "" {
		out += " " + direction
	}
	return out, nil
}

var directionTokens = map[string]bool{
	"ASC": true, "DESC": true,
	"ASC NULLS FIRST": true, "DESC NULLS FIRST": true,
	"ASC NULLS LAST": true, "DESC NULLS LAST": true,
	"NULLS FIRST": true, "NULLS LAST": true,
}

func isDirectionToken(s string) bool { return directionTokens[strings.ToUpper(s)] }
