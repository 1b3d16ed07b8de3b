package guard

import (
	"database/sql"

	sq "github.com/Masterminds/squirrel"
	"github.com/pkg/errors"

	"github.com/status-im/status-names/sqlite"
)

const (
	claimedExternalIDsTable = "claimed_external_ids"
	adr36SignaturesTable    = "adr36_signatures"
)

// ClaimPersistence is a ClaimGuard stored in the application database.
type ClaimPersistence struct {
	db sqlite.StatementExecutor
}

// NewClaimPersistence binds the guard to db, usually a *sql.Tx.
func NewClaimPersistence(db sqlite.StatementExecutor) *ClaimPersistence {
	return &ClaimPersistence{db: db}
}

func (p *ClaimPersistence) ClaimedName(externalID string) (string, bool, error) {
	query, args, err := sq.Select("name").
		From(claimedExternalIDsTable).
		Where(sq.Eq{"external_id": externalID}).
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
		return "", false, errors.Wrap(err, "failed to read claimed external id")
	}
	return name, true, nil
}

func (p *ClaimPersistence) Register(externalID, name string) error {
	claimed, ok, err := p.ClaimedName(externalID)
	if err != nil {
		return err
	}
	if ok {
		return &DuplicateExternalIDError{ExternalID: externalID, Name: claimed}
	}

	query, args, err := sq.Insert(claimedExternalIDsTable).
		Columns("external_id", "name").
		Values(externalID, name).
		ToSql()
	if err != nil {
		return err
	}
	_, err = p.db.Exec(query, args...)
	return errors.Wrap(err, "failed to register external id")
}

// SignaturePersistence is a SignatureGuard stored in the application database.
type SignaturePersistence struct {
	db sqlite.StatementExecutor
}

// NewSignaturePersistence binds the guard to db, usually a *sql.Tx.
func NewSignaturePersistence(db sqlite.StatementExecutor) *SignaturePersistence {
	return &SignaturePersistence{db: db}
}

func (p *SignaturePersistence) Consume(signature []byte) error {
	query, args, err := sq.Select("COUNT(*)").
		From(adr36SignaturesTable).
		Where(sq.Eq{"signature": signature}).
		ToSql()
	if err != nil {
		return err
	}

	var count int
	if err = p.db.QueryRow(query, args...).Scan(&count); err != nil {
		return errors.Wrap(err, "failed to read signature guard")
	}
	if count > 0 {
		return ErrSignatureAlreadyUsed
	}

	query, args, err = sq.Insert(adr36SignaturesTable).
		Columns("signature").
		Values(signature).
		ToSql()
	if err != nil {
		return err
	}
	_, err = p.db.Exec(query, args...)
	return errors.Wrap(err, "failed to consume signature")
}
