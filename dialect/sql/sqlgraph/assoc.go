// Package sqlgraph evaluates the graph of associations between models when
// the query planner in dialect/sql needs to turn an Include tree into SQL
// joins (spec.md §4.5). Association kinds reuse the vocabulary the rest of
// this ORM already uses for edges (see compiler/gen/type_edge.go): O2O/O2M
// describe the "one" side of a relation, M2O its inverse, and M2M a
// through-table relation.
package sqlgraph

// Kind identifies the shape of an Association (spec.md §3).
type Kind uint8

const (
	// M2O is the Go analogue of spec.md's BelongsTo: the foreign key lives
	// on the source model's table.
	M2O Kind = iota
	// O2O is the Go analogue of spec.md's HasOne.
	O2O
	// O2M is the Go analogue of spec.md's HasMany.
	O2M
	// M2M is the Go analogue of spec.md's BelongsToMany; it always carries
	// a Through association.
	M2M
)

func (k Kind) String() string {
	switch k {
	case M2O:
		return "M2O"
	case O2O:
		return "O2O"
	case O2M:
		return "O2M"
	case M2M:
		return "M2M"
	default:
		return "unknown"
	}
}

// Model is the minimal model-metadata contract the graph evaluator needs
// (spec.md §3 ModelMeta, reduced to what join generation touches). It is
// implemented by whatever model-declaration layer a caller plugs in;
// dialect/sql never constructs one itself.
type Model interface {
	// Name is the model's identifier, used to label joins and to match it
	// against an Association's Source/Target.
	Name() string
	// TableName is the SQL table backing the model.
	TableName() string
	// PrimaryKeys returns the model's primary-key column names, in
	// declaration order.
	PrimaryKeys() []string
	// Association looks up the association from this model to as,
	// optionally disambiguated by the target model's name.
	Association(targetName, as string) (*Association, bool)
}

// Association describes one edge between two models (spec.md §3).
type Association struct {
	Kind Kind
	As   string

	Source Model
	Target Model

	// IdentifierField is the FK column: on the source's table for M2O, on
	// the target's table for O2O/O2M, and on the through table (pointing
	// at the source) for M2M.
	IdentifierField string
	// ForeignIdentifierField is the through-table column that points at
	// the target in an M2M association.
	ForeignIdentifierField string
	// TargetIdentifier is the key column the FK references: the target's
	// column for M2O and the source's column for O2O/O2M. M2M joins use it
	// as the key column of both the source and the target.
	TargetIdentifier string

	// Through holds the join-table association for M2M kinds; nil
	// otherwise.
	Through *ThroughAssociation
}

// ThroughAssociation describes the join table of a many-to-many
// association.
type ThroughAssociation struct {
	Model Model
	As    string
}

// Whether traversing an association uses an INNER JOIN (required) or a
// LEFT OUTER JOIN is not stored on the Association: it mirrors
// Include.Required from spec.md §3 and is supplied by the caller
// per-include (the same association can be traversed with or without a
// required filter from different Include nodes).
