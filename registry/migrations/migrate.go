package migrations

import (
	"database/sql"
	"embed"
	"io/fs"
	"path"
	"sort"

	"github.com/status-im/status-names/sqlite"
)

const migrationsTable = "status_names_registry_migrations"

//go:embed sql/*.sql
var assets embed.FS

func AssetNames() []string {
	entries, err := fs.ReadDir(assets, "sql")
	if err != nil {
		return nil
	}
	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		names = append(names, entry.Name())
	}
	sort.Strings(names)
	return names
}

func Asset(name string) ([]byte, error) {
	return assets.ReadFile(path.Join("sql", name))
}

// Migrate applies the registry migrations.
func Migrate(db *sql.DB) error {
	return sqlite.Migrate(db, AssetNames(), Asset, migrationsTable)
}
