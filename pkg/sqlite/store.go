// Package sqlite provides the public constructor for the SQLite-backed
// recipe store while keeping implementation details internal.
//
// Example:
//
//	store, err := sqlite.Open(types.Config{DataDir: ".ricettario"}, nil)
//	if err != nil {
//	    return err
//	}
//	defer store.Close()
package sqlite

import (
	"go.uber.org/zap"

	"github.com/cucina-labs/ricettario/internal/sqlite"
	"github.com/cucina-labs/ricettario/pkg/types"
)

// Open opens (creating if absent) the catalog database described by config,
// ensures the schema exists and seeds default rows. A nil logger disables
// logging.
func Open(config types.Config, logger *zap.Logger) (types.Store, error) {
	return sqlite.Open(config, logger)
}
