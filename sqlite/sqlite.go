package sqlite

import (
	"database/sql"
	"errors"
	"fmt"

	"golang.org/x/crypto/sha3"

	_ "github.com/mutecomm/go-sqlcipher/v4" // We require go sqlcipher that overrides default implementation
)

// The reduced number of kdf iterations (for performance reasons) which is
// used for derivation of the database key in tests.
const ReducedKDFIterationsNumber = 256

// KdfIterationsNumber is the default number of kdf iterations.
const KdfIterationsNumber = 3200

// StatementExecutor is satisfied by both *sql.DB and *sql.Tx, so that the
// same persistence code can run standalone or inside a transaction.
type StatementExecutor interface {
	Prepare(query string) (*sql.Stmt, error)
	Exec(query string, args ...interface{}) (sql.Result, error)
	Query(query string, args ...interface{}) (*sql.Rows, error)
	QueryRow(query string, args ...interface{}) *sql.Row
}

// OpenDBWithKey opens encrypted database passing key as PRAGMA key.
func OpenDBWithKey(path, key string, kdfIterationsNumber int) (*sql.DB, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, err
	}

	// Disable concurrent access as not supported by the driver
	db.SetMaxOpenConns(1)

	if _, err = db.Exec("PRAGMA foreign_keys=ON"); err != nil {
		return nil, err
	}
	keyString := fmt.Sprintf("PRAGMA key = '%s'", key)
	if _, err = db.Exec(keyString); err != nil {
		return nil, errors.New("failed to set key pragma")
	}

	if kdfIterationsNumber <= 0 {
		kdfIterationsNumber = KdfIterationsNumber
	}
	if _, err = db.Exec(fmt.Sprintf("PRAGMA kdf_iter = '%d'", kdfIterationsNumber)); err != nil {
		return nil, err
	}

	// readers do not block writers and faster i/o operations
	// https://www.sqlite.org/draft/wal.html
	// must be set after db is encrypted
	var mode string
	err = db.QueryRow("PRAGMA journal_mode=WAL").Scan(&mode)
	if err != nil {
		return nil, err
	}
	if mode != "wal" {
		return nil, fmt.Errorf("unable to set journal_mode to WAL. actual mode %s", mode)
	}

	return db, nil
}

// OpenDB opens encrypted database using password.
func OpenDB(path, password string, kdfIterationsNumber int) (*sql.DB, error) {
	passhash := sha3.Sum256([]byte(password))
	return OpenDBWithKey(path, fmt.Sprintf("%x", passhash), kdfIterationsNumber)
}
