// Shared helpers for privacy-matrix CLI commands.
package main

import (
	"fmt"
	"strings"

	"github.com/casks-mutters/web3-privacy-matrix/internal/report"
	"github.com/casks-mutters/web3-privacy-matrix/pkg/catalog"
	"github.com/casks-mutters/web3-privacy-matrix/pkg/types"
)

// stackAll selects every catalog entry.
const stackAll = "all"

// validStackKeys lists the catalog keys in declaration order.
var validStackKeys = []string{
	types.StackAztec,
	types.StackZama,
	types.StackSoundness,
}

// validSortFields lists every field --sort-by accepts: the eight base
// fields plus the composite score.
var validSortFields = append(types.FieldOrder(), types.FieldCompositeScore)

// Comma-separated choice lists for error messages and help text.
var (
	stackChoicesStr  = strings.Join(append(validStackKeys, stackAll), ", ")
	formatChoicesStr = strings.Join(report.FormatNames(), ", ")
	sortFieldsStr    = strings.Join(validSortFields, ", ")
)

// isStackKey reports whether key names a catalog entry.
func isStackKey(key string) bool {
	for _, k := range validStackKeys {
		if k == key {
			return true
		}
	}
	return false
}

// isSortField reports whether field is a valid --sort-by choice.
func isSortField(field string) bool {
	for _, f := range validSortFields {
		if f == field {
			return true
		}
	}
	return false
}

// attachCatalog creates a catalog for the configured backend and
// attaches it. The caller must defer cat.Detach().
func attachCatalog(cfg *configValues) (types.Catalog, error) {
	c := types.Config{Backend: cfg.backend()}
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("invalid backend %q: %w", c.Backend, err)
	}

	cat := catalog.New()
	if err := cat.Attach(c); err != nil {
		return nil, fmt.Errorf("attach catalog: %w", err)
	}
	return cat, nil
}
