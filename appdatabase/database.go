package appdatabase

import (
	"database/sql"

	"github.com/status-im/status-names/appdatabase/migrations"
	"github.com/status-im/status-names/sqlite"
)

// InitializeDB creates db file at a given path and applies migrations.
func InitializeDB(path, password string, kdfIterationsNumber int) (*sql.DB, error) {
	db, err := sqlite.OpenDB(path, password, kdfIterationsNumber)
	if err != nil {
		return nil, err
	}

	err = migrations.Migrate(db)
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	return db, nil
}
