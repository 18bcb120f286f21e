package sql

import "fmt"

// ErrorKind enumerates the closed set of synchronous error kinds this
// package can raise (spec.md §7). Every BuildError carries exactly one.
type ErrorKind string

const (
	// ErrUndefinedDialectMethod is raised when an abstract per-dialect
	// method is invoked without a concrete dialect override.
	ErrUndefinedDialectMethod ErrorKind = "undefined-dialect-method"
	// ErrInvalidOrderStructure is raised when Quote reaches an ORDER/GROUP
	// BY path shape it does not recognise.
	ErrInvalidOrderStructure ErrorKind = "invalid-order-structure"
	// ErrInvalidAssociationPath is raised when an ORDER/GROUP path
	// references an association that does not exist on the parent model.
	ErrInvalidAssociationPath ErrorKind = "invalid-association-path"
	// ErrRawWhereRemoved is raised when a bare string is supplied as the
	// top-level argument to WhereQuery.
	ErrRawWhereRemoved ErrorKind = "raw-where-removed"
	// ErrColOutsideOrderGroup is raised when a Col node carrying a sequence
	// argument is lowered outside of an ORDER/GROUP BY context.
	ErrColOutsideOrderGroup ErrorKind = "col-outside-order-group"
	// ErrMissingAliasForComputedAttribute is raised when a Cast/Fn
	// attribute appears in an eager-load attribute list without an alias.
	ErrMissingAliasForComputedAttribute ErrorKind = "missing-alias-for-computed-attribute"
	// ErrMissingIndexFieldName is raised when an index field entry carries
	// neither a name nor an attribute.
	ErrMissingIndexFieldName ErrorKind = "missing-index-field-name"
	// ErrInvalidOrderDirection is raised when an ORDER BY direction string
	// falls outside the closed ASC/DESC/NULLS set.
	ErrInvalidOrderDirection ErrorKind = "invalid-order-direction"
)

// BuildError is returned by this package's builders when a structurally
// invalid request is supplied. It always carries the offending token, when
// one is available, so the message is actionable without a debugger.
type BuildError struct {
	Kind  ErrorKind
	Token string
	Err   error // optional wrapped cause.
}

func (e *BuildError) Error() string {
	if e.Token == "" {
		return fmt.Sprintf("dialect/sql: %s", e.Kind)
	}
	return fmt.Sprintf("dialect/sql: %s: %q", e.Kind, e.Token)
}

// Unwrap supports errors.Is/errors.As against a wrapped cause.
func (e *BuildError) Unwrap() error { return e.Err }

// Is reports whether target is the same ErrorKind, so callers can write
// errors.Is(err, &sql.BuildError{Kind: sql.ErrRawWhereRemoved}).
func (e *BuildError) Is(target error) bool {
	t, ok := target.(*BuildError)
	return ok && t.Kind == e.Kind
}

func newBuildError(kind ErrorKind, token string) *BuildError {
	return &BuildError{Kind: kind, Token: token}
}
