package postgre

import (
	"database/sql"
	"fmt"

	"tenant-maintenance-assistant/internal/maintenance/repository"
	"tenant-maintenance-assistant/pkg/log"
)

type implRepository struct {
	db *sql.DB
	l  log.Logger
}

// New creates a new PostgreSQL-backed Repository for maintenance requests.
func New(db *sql.DB, l log.Logger) repository.Repository {
	if db == nil {
		panic("maintenance/repository/postgre: db is required")
	}
	return &implRepository{db: db, l: l}
}

func (r *implRepository) dsn(method string) string {
	return fmt.Sprintf("maintenance/repository/postgre.%s", method)
}
