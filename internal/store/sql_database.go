package store

import (
	"database/sql"

	"github.com/okulikov/campushub/internal/logger"
	"github.com/okulikov/campushub/migrations"
)

type DB struct {
	*sql.DB
	logger *logger.Logger
}

func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB)
}
