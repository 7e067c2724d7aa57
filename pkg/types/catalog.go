package types

import "errors"

// Catalog defines the interface for backend-agnostic access to the
// stack matrix. Callers attach to a backend, read stacks, and detach
// when done. The catalog is read-only: the built-in stacks are seeded
// on Attach and never modified afterwards.
type Catalog interface {
	// Attach connects the Catalog to the backend described by config
	// and seeds the built-in stacks. Returns ErrAlreadyAttached if
	// called while already attached.
	Attach(config Config) error

	// Detach releases backend resources. Idempotent: multiple calls
	// succeed. After Detach, read operations return ErrCatalogDetached.
	Detach() error

	// Keys returns the stack keys in catalog declaration order.
	Keys() ([]string, error)

	// Get retrieves the stack with the given key.
	// Returns ErrStackNotFound if no stack exists with that key.
	Get(key string) (PrivacyStack, error)

	// All returns every stack in catalog declaration order.
	All() ([]PrivacyStack, error)
}

// Catalog lifecycle and lookup errors.
var (
	ErrCatalogDetached = errors.New("catalog is detached")
	ErrAlreadyAttached = errors.New("catalog is already attached")
	ErrStackNotFound   = errors.New("stack not found")
)
