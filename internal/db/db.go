package db

import (
	"database/sql"
	"fmt"

	sqldblogger "github.com/simukti/sqldb-logger"
	"github.com/simukti/sqldb-logger/logadapter/zapadapter"
	"go.uber.org/zap"
	"modernc.org/sqlite"
)

// Open opens a SQLite database connection and configures pragmas.
// Every SQL statement is logged through the given logger at debug level.
func Open(path string, logger *zap.Logger) (*sql.DB, error) {
	db := sqldblogger.OpenDriver(path, &sqlite.Driver{}, zapadapter.New(logger))

	// Set pragmas for performance and correctness.
	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA busy_timeout=5000",
		"PRAGMA foreign_keys=ON",
		"PRAGMA synchronous=NORMAL",
	}
	for _, p := range pragmas {
		if _, err := db.Exec(p); err != nil {
			db.Close()
			return nil, fmt.Errorf("setting pragma %q: %w", p, err)
		}
	}

	return db, nil
}
