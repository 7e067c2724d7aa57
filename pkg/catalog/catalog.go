// Package catalog provides the public API for the privacy-matrix stack
// catalog. It exposes the factory function for creating SQLite-backed
// catalogs while keeping implementation details internal.
package catalog

import (
	"github.com/casks-mutters/web3-privacy-matrix/internal/sqlite"
	"github.com/casks-mutters/web3-privacy-matrix/pkg/types"
)

// New creates a new SQLite-backed catalog instance.
// The catalog is not attached; call Attach with a Config to initialize.
//
// Example:
//
//	cat := catalog.New()
//	err := cat.Attach(types.Config{Backend: types.BackendSQLite})
//	defer cat.Detach()
func New() types.Catalog {
	return sqlite.NewBackend()
}
