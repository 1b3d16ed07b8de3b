package sqlite

import (
	"database/sql"

	"github.com/status-im/migrate/v4"
	"github.com/status-im/migrate/v4/database/sqlcipher"
	bindata "github.com/status-im/migrate/v4/source/go_bindata"
)

// AssetFunc returns the content of a named migration.
type AssetFunc func(name string) ([]byte, error)

// Migrate database using provided resources. Applied versions are tracked
// in migrationsTable, so that several schemas can live in one file.
func Migrate(db *sql.DB, names []string, asset AssetFunc, migrationsTable string) error {
	resources := bindata.Resource(names, func(name string) ([]byte, error) {
		return asset(name)
	})

	source, err := bindata.WithInstance(resources)
	if err != nil {
		return err
	}

	driver, err := sqlcipher.WithInstance(db, &sqlcipher.Config{
		MigrationsTable: migrationsTable,
	})
	if err != nil {
		return err
	}

	m, err := migrate.NewWithInstance(
		"go-bindata",
		source,
		"sqlcipher",
		driver)
	if err != nil {
		return err
	}

	if err = m.Up(); err != migrate.ErrNoChange {
		return err
	}
	return nil
}
