package sqlite

import (
	"database/sql"
	"errors"
	"fmt"
	"sync"

	_ "modernc.org/sqlite"

	"github.com/casks-mutters/web3-privacy-matrix/pkg/types"
)

// Compile-time interface check: Backend must implement Catalog.
var _ types.Catalog = (*Backend)(nil)

// Backend implements the Catalog interface using an in-memory SQLite
// database as the query engine.
type Backend struct {
	mu       sync.RWMutex
	attached bool
	config   types.Config
	db       *sql.DB
}

// NewBackend creates a new SQLite backend instance.
// The backend is not attached; call Attach with a Config to initialize.
func NewBackend() *Backend {
	return &Backend{}
}

// Attach initializes the backend with the given configuration: opens an
// in-memory database, applies the schema, and seeds the built-in stacks.
// Returns ErrAlreadyAttached if already attached.
func (b *Backend) Attach(config types.Config) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.attached {
		return types.ErrAlreadyAttached
	}

	if err := config.Validate(); err != nil {
		return err
	}

	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		return fmt.Errorf("opening in-memory database: %w", err)
	}
	// Every new connection to :memory: gets its own empty database, so
	// the pool must never grow past the connection the schema lives on.
	db.SetMaxOpenConns(1)

	for _, ddl := range schemaDDL {
		if _, err := db.Exec(ddl); err != nil {
			db.Close()
			return fmt.Errorf("applying schema: %w", err)
		}
	}

	if err := seedStacks(db); err != nil {
		db.Close()
		return fmt.Errorf("seeding stacks: %w", err)
	}

	b.db = db
	b.config = config
	b.attached = true

	return nil
}

// Detach releases the database connection. After Detach, read operations
// return ErrCatalogDetached. Detach is idempotent.
func (b *Backend) Detach() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if !b.attached {
		return nil // idempotent
	}

	if b.db != nil {
		if err := b.db.Close(); err != nil {
			return err
		}
		b.db = nil
	}

	b.attached = false
	return nil
}

// Keys returns the stack keys in catalog declaration order.
func (b *Backend) Keys() ([]string, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	if !b.attached {
		return nil, types.ErrCatalogDetached
	}

	rows, err := b.db.Query("SELECT key FROM stacks ORDER BY position")
	if err != nil {
		return nil, fmt.Errorf("querying stack keys: %w", err)
	}
	defer rows.Close()

	keys := make([]string, 0, len(builtInStacks))
	for rows.Next() {
		var key string
		if err := rows.Scan(&key); err != nil {
			return nil, fmt.Errorf("scanning stack key: %w", err)
		}
		keys = append(keys, key)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating stack keys: %w", err)
	}
	return keys, nil
}

// Get retrieves the stack with the given key.
// Returns ErrStackNotFound if no stack exists with that key.
func (b *Backend) Get(key string) (types.PrivacyStack, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	if !b.attached {
		return types.PrivacyStack{}, types.ErrCatalogDetached
	}

	row := b.db.QueryRow(
		`SELECT key, name, family, description, privacy_level,
			soundness_focus, performance_cost, dev_complexity, ecosystem_maturity
		FROM stacks WHERE key = ?`,
		key,
	)
	stack, err := hydrateStack(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return types.PrivacyStack{}, types.ErrStackNotFound
		}
		return types.PrivacyStack{}, fmt.Errorf("getting stack %s: %w", key, err)
	}
	return stack, nil
}

// All returns every stack in catalog declaration order.
func (b *Backend) All() ([]types.PrivacyStack, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	if !b.attached {
		return nil, types.ErrCatalogDetached
	}

	rows, err := b.db.Query(
		`SELECT key, name, family, description, privacy_level,
			soundness_focus, performance_cost, dev_complexity, ecosystem_maturity
		FROM stacks ORDER BY position`,
	)
	if err != nil {
		return nil, fmt.Errorf("querying stacks: %w", err)
	}
	defer rows.Close()

	stacks := make([]types.PrivacyStack, 0, len(builtInStacks))
	for rows.Next() {
		stack, err := hydrateStackFromRows(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning stack: %w", err)
		}
		stacks = append(stacks, stack)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating stacks: %w", err)
	}
	return stacks, nil
}

// hydrateStack scans a single-row query result into a PrivacyStack.
func hydrateStack(row *sql.Row) (types.PrivacyStack, error) {
	var s types.PrivacyStack
	err := row.Scan(
		&s.Key, &s.Name, &s.Family, &s.Description, &s.PrivacyLevel,
		&s.SoundnessFocus, &s.PerformanceCost, &s.DevComplexity, &s.EcosystemMaturity,
	)
	return s, err
}

// hydrateStackFromRows scans the current row of a multi-row result set
// into a PrivacyStack.
func hydrateStackFromRows(rows *sql.Rows) (types.PrivacyStack, error) {
	var s types.PrivacyStack
	err := rows.Scan(
		&s.Key, &s.Name, &s.Family, &s.Description, &s.PrivacyLevel,
		&s.SoundnessFocus, &s.PerformanceCost, &s.DevComplexity, &s.EcosystemMaturity,
	)
	return s, err
}
