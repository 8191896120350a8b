package postgre

import (
	"database/sql"
	"fmt"

	"eindr-intent-engine/internal/intent/repository"
	"eindr-intent-engine/pkg/log"
)

type implStore struct {
	db *sql.DB
	l  log.Logger
}

// New creates a new PostgreSQL-backed Store for the intent domain.
func New(db *sql.DB, l log.Logger) repository.Store {
	if db == nil {
		panic("intent/repository/postgre: db is required")
	}
	return &implStore{db: db, l: l}
}

// dsn returns a method-scoped context string for logging.
func (r *implStore) dsn(method string) string {
	return fmt.Sprintf("intent/repository/postgre.%s", method)
}
