package sql

import "github.com/queryscribe/queryscribe/dialect"

// ReturnValues describes which row-returning clause, if any, a dialect
// supports on INSERT/UPDATE/DELETE.
type ReturnValues struct {
	Returning bool // PostgreSQL/SQLite-style RETURNING *.
	Output    bool // MSSQL-style OUTPUT INSERTED.*.
}

// AutoIncrement describes a dialect's handling of auto-increment columns.
type AutoIncrement struct {
	DefaultValue  bool // DEFAULT keyword usable in place of an explicit value.
	IdentityInsert bool // IDENTITY_INSERT toggling required to assign explicitly (MSSQL).
	Update        bool // auto-increment columns may appear in UPDATE ... SET.
}

// IndexCaps describes which optional ADD INDEX clauses a dialect accepts.
type IndexCaps struct {
	Collate      bool
	Length       bool
	Parser       bool
	Concurrently bool
	Type         bool
	Using        int // 0: unsupported, 1: USING before columns, 2: USING after columns.
	Where        bool
}

// Capability is the static per-dialect feature-flag record consulted by
// every builder in this package (spec.md §3 `DialectCaps`, C2). Instances
// are constructed once in capsTable below and never mutated afterwards, so
// they are safe to share across concurrent callers.
type Capability struct {
	Schemas          bool
	ReturnValues     ReturnValues
	TmpTableTrigger  bool // MSSQL: triggers require an @tmp table rewrite of OUTPUT.
	AutoIncrement    AutoIncrement
	Default          bool // bare DEFAULT keyword usable in a VALUES list.
	DefaultValues    bool // "DEFAULT VALUES" form for an empty INSERT.
	ValuesParens     bool // "VALUES ()" form for an empty INSERT.
	Ignore           bool // INSERT IGNORE.
	IgnoreDuplicates bool // alternate ignore-duplicates spelling (e.g. ON CONFLICT DO NOTHING).
	UpdateOnDuplicate bool
	OnDuplicateKey   bool // "ON DUPLICATE KEY UPDATE" (MySQL).
	Exception        bool // PostgreSQL EXCEPTION-block insert-or-ignore wrapper.
	LimitOnUpdate    bool // UPDATE ... LIMIT n.
	Lock             bool
	LockKey          bool // FOR NO KEY UPDATE / FOR KEY SHARE.
	LockOf           bool // FOR UPDATE OF table.
	ForShare         bool
	UnionAll         bool
	Index            IndexCaps
	IndexViaAlter    bool // ALTER TABLE ... ADD INDEX vs standalone CREATE INDEX.
	JoinTableDependent bool // through-table joins may be wrapped as a single dependent JOIN.
	BulkDefault      bool // bulk INSERT rows may mix explicit values and DEFAULT.
}

// capsTable holds one Capability record per supported dialect. It is a
// closed, static table (spec.md §5: "model metadata and dialect capability
// records are treated as read-only after initialisation").
var capsTable = map[string]Capability{
	dialect.MySQL: {
		Schemas:           true,
		ReturnValues:      ReturnValues{},
		AutoIncrement:     AutoIncrement{DefaultValue: false, Update: false},
		Default:           true,
		ValuesParens:      true,
		Ignore:            true,
		OnDuplicateKey:    true,
		UpdateOnDuplicate: true,
		LimitOnUpdate:     true,
		Lock:              true,
		ForShare:          true,
		UnionAll:          true,
		Index:             IndexCaps{Length: true, Using: 2, Type: true},
		IndexViaAlter:     true,
		JoinTableDependent: true,
		BulkDefault:       true,
	},
	dialect.Postgres: {
		Schemas:       true,
		ReturnValues:  ReturnValues{Returning: true},
		AutoIncrement: AutoIncrement{DefaultValue: true, Update: true},
		Default:       true,
		DefaultValues: true,
		IgnoreDuplicates: true,
		Exception:     true,
		Lock:          true,
		LockKey:       true,
		LockOf:        true,
		ForShare:      true,
		UnionAll:      true,
		Index:         IndexCaps{Collate: true, Concurrently: true, Using: 1, Where: true},
		BulkDefault:   true,
	},
	dialect.SQLite: {
		Schemas:          false,
		ReturnValues:     ReturnValues{Returning: true},
		AutoIncrement:    AutoIncrement{DefaultValue: true},
		Default:          true,
		DefaultValues:    true,
		IgnoreDuplicates: true,
		UnionAll:         true,
		Index:            IndexCaps{Where: true},
	},
	dialect.MSSQL: {
		Schemas:         true,
		ReturnValues:    ReturnValues{Output: true},
		TmpTableTrigger: true,
		AutoIncrement:   AutoIncrement{IdentityInsert: true},
		DefaultValues:   true,
		Lock:            true,
		LockOf:          true,
		UnionAll:        true,
		Index:           IndexCaps{Using: 0},
	},
}

// CapsFor returns the capability record for dialectName. Unknown dialect
// names return the zero-value Capability, which behaves as a maximally
// conservative (feature-less) ANSI-SQL dialect.
func CapsFor(dialectName string) Capability {
	return capsTable[dialectName]
}
