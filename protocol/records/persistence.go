package records

import (
	"database/sql"

	sq "github.com/Masterminds/squirrel"
	"github.com/pkg/errors"

	"github.com/status-im/status-names/sqlite"
)

const (
	addressRecordsTable = "address_records"
	reverseRecordsTable = "reverse_records"
	primaryNamesTable   = "primary_names"
)

// Persistence is a Storage backed by the application database.
type Persistence struct {
	db sqlite.StatementExecutor
}

// NewPersistence binds the storage to db, usually a *sql.Tx.
func NewPersistence(db sqlite.StatementExecutor) *Persistence {
	return &Persistence{db: db}
}

func (p *Persistence) Get(name, prefix string) (string, bool, error) {
	query, args, err := sq.Select("address").
		From(addressRecordsTable).
		Where(sq.Eq{"name": name, "bech32_prefix": prefix}).
		ToSql()
	if err != nil {
		return "", false, err
	}

	var address string
	err = p.db.QueryRow(query, args...).Scan(&address)
	if err == sql.ErrNoRows {
		return "", false, nil
	}
	if err != nil {
		return "", false, errors.Wrap(err, "failed to read address record")
	}
	return address, true, nil
}

func (p *Persistence) Put(record Record) error {
	query, args, err := sq.Replace(addressRecordsTable).
		Columns("name", "bech32_prefix", "address").
		Values(record.Name, record.Prefix, record.Address).
		ToSql()
	if err != nil {
		return err
	}
	_, err = p.db.Exec(query, args...)
	return errors.Wrap(err, "failed to save address record")
}

func (p *Persistence) Delete(name, prefix string) error {
	query, args, err := sq.Delete(addressRecordsTable).
		Where(sq.Eq{"name": name, "bech32_prefix": prefix}).
		ToSql()
	if err != nil {
		return err
	}
	_, err = p.db.Exec(query, args...)
	return errors.Wrap(err, "failed to delete address record")
}

func (p *Persistence) RecordsOf(name string) ([]Record, error) {
	query, args, err := sq.Select("name", "bech32_prefix", "address").
		From(addressRecordsTable).
		Where(sq.Eq{"name": name}).
		OrderBy("bech32_prefix").
		ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := p.db.Query(query, args...)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list address records")
	}
	defer rows.Close()

	var result []Record
	for rows.Next() {
		var record Record
		if err := rows.Scan(&record.Name, &record.Prefix, &record.Address); err != nil {
			return nil, err
		}
		result = append(result, record)
	}
	return result, rows.Err()
}

func (p *Persistence) AddReverse(address, name string) error {
	query, args, err := sq.Replace(reverseRecordsTable).
		Columns("address", "name").
		Values(address, name).
		ToSql()
	if err != nil {
		return err
	}
	_, err = p.db.Exec(query, args...)
	return errors.Wrap(err, "failed to save reverse record")
}

func (p *Persistence) RemoveReverse(address, name string) error {
	query, args, err := sq.Delete(reverseRecordsTable).
		Where(sq.Eq{"address": address, "name": name}).
		ToSql()
	if err != nil {
		return err
	}
	_, err = p.db.Exec(query, args...)
	return errors.Wrap(err, "failed to delete reverse record")
}

func (p *Persistence) NamesOf(address string) ([]string, error) {
	query, args, err := sq.Select("name").
		From(reverseRecordsTable).
		Where(sq.Eq{"address": address}).
		OrderBy("name").
		ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := p.db.Query(query, args...)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list reverse records")
	}
	defer rows.Close()

	var result []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, err
		}
		result = append(result, name)
	}
	return result, rows.Err()
}

func (p *Persistence) Primary(address string) (string, bool, error) {
	query, args, err := sq.Select("name").
		From(primaryNamesTable).
		Where(sq.Eq{"address": address}).
		ToSql()
	if err != nil {
		return "", false, err
	}

	var name string
	err = p.db.QueryRow(query, args...).Scan(&name)
	if err == sql.ErrNoRows {
		return "", false, nil
	}
	if err != nil {
		return "", false, errors.Wrap(err, "failed to read primary name")
	}
	return name, true, nil
}

func (p *Persistence) SetPrimary(address, name string) error {
	query, args, err := sq.Replace(primaryNamesTable).
		Columns("address", "name").
		Values(address, name).
		ToSql()
	if err != nil {
		return err
	}
	_, err = p.db.Exec(query, args...)
	return errors.Wrap(err, "failed to save primary name")
}

func (p *Persistence) DeletePrimary(address string) error {
	query, args, err := sq.Delete(primaryNamesTable).
		Where(sq.Eq{"address": address}).
		ToSql()
	if err != nil {
		return err
	}
	_, err = p.db.Exec(query, args...)
	return errors.Wrap(err, "failed to delete primary name")
}
