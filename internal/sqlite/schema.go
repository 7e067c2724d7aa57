// Package sqlite implements the SQLite backend for the privacy-matrix
// catalog. The backend runs fully in memory: Attach opens an in-memory
// database, applies the schema, and seeds the built-in stacks.
package sqlite

// Schema DDL for the stacks table. The position column records catalog
// declaration order so reads come back in a stable, insertion-defined
// sequence.
const createStacks = `CREATE TABLE stacks (
    key TEXT PRIMARY KEY,
    name TEXT NOT NULL,
    family TEXT NOT NULL,
    description TEXT NOT NULL,
    privacy_level INTEGER NOT NULL,
    soundness_focus INTEGER NOT NULL,
    performance_cost INTEGER NOT NULL,
    dev_complexity INTEGER NOT NULL,
    ecosystem_maturity INTEGER NOT NULL,
    position INTEGER NOT NULL
);`

// Index DDL for ordered reads.
const idxStacksPosition = `CREATE INDEX idx_stacks_position ON stacks(position);`

// schemaDDL lists all CREATE statements in execution order.
var schemaDDL = []string{
	createStacks,
	idxStacksPosition,
}
