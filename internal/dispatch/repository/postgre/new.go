package postgre

import (
	"database/sql"
	"fmt"

	"tenant-maintenance-assistant/internal/dispatch/repository"
	"tenant-maintenance-assistant/pkg/log"
)

type implRepository struct {
	db *sql.DB
	l  log.Logger
}

// New creates a new PostgreSQL-backed Repository for the dispatch domain.
func New(db *sql.DB, l log.Logger) repository.Repository {
	if db == nil {
		panic("dispatch/repository/postgre: db is required")
	}
	return &implRepository{db: db, l: l}
}

func (r *implRepository) dsn(method string) string {
	return fmt.Sprintf("dispatch/repository/postgre.%s", method)
}
