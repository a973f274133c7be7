package repository

import (
	"fmt"

	"auctionbase-web/internal/config"

	"github.com/jmoiron/sqlx"
	log "github.com/sirupsen/logrus"

	_ "github.com/go-sql-driver/mysql" // MySQL driver
	_ "github.com/lib/pq"              // PostgreSQL driver
	_ "modernc.org/sqlite"             // Pure Go SQLite driver - no CGO required
)

func init() {
	// modernc registers itself as "sqlite", which sqlx's bind table
	// does not know; it takes ?-style placeholders.
	sqlx.BindDriver("sqlite", sqlx.QUESTION)
}

// Open connects to the auction database selected by cfg.Type and
// returns a ready SQLStore. The sqlite engine is the default and also
// bootstraps the schema; mysql and postgres assume external DDL.
func Open(cfg config.DatabaseConfig) (*SQLStore, error) {
	var db *sqlx.DB
	var err error

	switch cfg.Type {
	case "mysql":
		db, err = sqlx.Open("mysql", cfg.MySQLDSN())
		if err != nil {
			return nil, fmt.Errorf("failed to open MySQL: %w", err)
		}
		db.SetMaxOpenConns(10)
		db.SetMaxIdleConns(5)

	case "postgres", "postgresql":
		db, err = sqlx.Open("postgres", cfg.PostgresDSN())
		if err != nil {
			return nil, fmt.Errorf("failed to open PostgreSQL: %w", err)
		}
		db.SetMaxOpenConns(10)
		db.SetMaxIdleConns(5)

	default: // sqlite
		db, err = sqlx.Open("sqlite", cfg.Path)
		if err != nil {
			return nil, fmt.Errorf("failed to open SQLite: %w", err)
		}
		// SQLite only supports 1 writer; a single connection also
		// keeps :memory: databases coherent across queries.
		db.SetMaxOpenConns(1)
		db.SetMaxIdleConns(1)
		db.SetConnMaxLifetime(0)

		for _, pragma := range []string{
			"PRAGMA foreign_keys = ON",
			"PRAGMA case_sensitive_like = ON",
			"PRAGMA busy_timeout = 5000",
		} {
			if _, err := db.Exec(pragma); err != nil {
				db.Close()
				return nil, fmt.Errorf("failed to apply %q: %w", pragma, err)
			}
		}

		if err := EnsureSchema(db); err != nil {
			db.Close()
			return nil, fmt.Errorf("failed to create tables: %w", err)
		}
	}

	log.WithFields(log.Fields{"engine": engineName(cfg.Type)}).
		Info("auction repository initialized")
	return NewSQLStore(db), nil
}

func engineName(t string) string {
	switch t {
	case "mysql":
		return "mysql"
	case "postgres", "postgresql":
		return "postgres"
	default:
		return "sqlite"
	}
}
