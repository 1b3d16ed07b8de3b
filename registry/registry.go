// Package registry is a local stand-in for the token contract that owns
// names: it answers ownership and admin queries and mints claimed names.
package registry

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	mapset "github.com/deckarep/golang-set"
	"github.com/jellydator/ttlcache/v3"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	statuserrors "github.com/status-im/status-names/errors"
	"github.com/status-im/status-names/protocol/claim"
	"github.com/status-im/status-names/registry/migrations"
	"github.com/status-im/status-names/sqlite"
)

const (
	namesTable = "names"

	// Minted names never change hands, so a found owner can be cached.
	ownerCacheTTL = 10 * time.Minute
)

type NameTakenError struct {
	Name  string
	Owner string
}

func (e *NameTakenError) Error() string {
	return fmt.Sprintf("name %q is already owned by %s", e.Name, e.Owner)
}

// Code implements errors.Coded.
func (e *NameTakenError) Code() statuserrors.ErrorCode {
	return statuserrors.ErrorCodeNameTaken
}

// Entry is a minted name.
type Entry struct {
	Name     string         `json:"name"`
	Owner    string         `json:"owner"`
	Metadata claim.Metadata `json:"metadata"`
	MintedAt time.Time      `json:"mintedAt"`
}

// InitializeDB opens the registry database and applies its migrations.
func InitializeDB(path, password string, kdfIterationsNumber int) (*sql.DB, error) {
	db, err := sqlite.OpenDB(path, password, kdfIterationsNumber)
	if err != nil {
		return nil, err
	}
	if err := migrations.Migrate(db); err != nil {
		_ = db.Close()
		return nil, err
	}
	return db, nil
}

type Registry struct {
	db     *sql.DB
	admins mapset.Set
	owners *ttlcache.Cache[string, string]
	logger *zap.Logger
	now    func() time.Time
}

func New(db *sql.DB, admins []string, logger *zap.Logger) *Registry {
	set := mapset.NewSet()
	for _, admin := range admins {
		set.Add(admin)
	}
	owners := ttlcache.New[string, string](ttlcache.WithTTL[string, string](ownerCacheTTL))
	go owners.Start()
	return &Registry{
		db:     db,
		admins: set,
		owners: owners,
		logger: logger.Named("registry"),
		now:    time.Now,
	}
}

// Close stops the owner cache. The database is left open.
func (r *Registry) Close() {
	r.owners.Stop()
}

// IsAdmin implements access.AdminOracle.
func (r *Registry) IsAdmin(ctx context.Context, identity string) (bool, error) {
	return r.admins.Contains(identity), nil
}

// OwnerOf implements access.OwnershipOracle.
func (r *Registry) OwnerOf(ctx context.Context, name string) (string, bool, error) {
	if item := r.owners.Get(name); item != nil {
		return item.Value(), true, nil
	}
	entry, err := r.Get(ctx, name)
	if err != nil || entry == nil {
		return "", false, err
	}
	r.owners.Set(name, entry.Owner, ttlcache.DefaultTTL)
	return entry.Owner, true, nil
}

// Get returns the minted name, or nil if it was never minted.
func (r *Registry) Get(ctx context.Context, name string) (*Entry, error) {
	query, args, err := sq.Select("name", "owner", "metadata", "minted_at").
		From(namesTable).
		Where(sq.Eq{"name": name}).
		ToSql()
	if err != nil {
		return nil, err
	}

	entry := &Entry{}
	var mintedAt int64
	err = r.db.QueryRowContext(ctx, query, args...).
		Scan(&entry.Name, &entry.Owner, &sqlite.JSONBlob{Data: &entry.Metadata}, &mintedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to read name")
	}
	entry.MintedAt = time.Unix(mintedAt, 0).UTC()
	return entry, nil
}

// NamesOwnedBy lists the names owned by owner, in lexicographic order.
func (r *Registry) NamesOwnedBy(ctx context.Context, owner string) ([]*Entry, error) {
	query, args, err := sq.Select("name", "owner", "metadata", "minted_at").
		From(namesTable).
		Where(sq.Eq{"owner": owner}).
		OrderBy("name").
		ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list names")
	}
	defer rows.Close()

	var result []*Entry
	for rows.Next() {
		entry := &Entry{}
		var mintedAt int64
		if err := rows.Scan(&entry.Name, &entry.Owner, &sqlite.JSONBlob{Data: &entry.Metadata}, &mintedAt); err != nil {
			return nil, err
		}
		entry.MintedAt = time.Unix(mintedAt, 0).UTC()
		result = append(result, entry)
	}
	return result, rows.Err()
}

// Mint implements the mint sink of the names service. A name is minted at
// most once.
func (r *Registry) Mint(ctx context.Context, instruction claim.MintInstruction) (err error) {
	var tx *sql.Tx
	tx, err = r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() {
		if err == nil {
			err = tx.Commit()
			return
		}
		_ = tx.Rollback()
	}()

	var owner string
	err = tx.QueryRowContext(ctx, "SELECT owner FROM names WHERE name = ?", instruction.Name).Scan(&owner)
	if err == nil {
		return &NameTakenError{Name: instruction.Name, Owner: owner}
	}
	if err != sql.ErrNoRows {
		return errors.Wrap(err, "failed to read name")
	}

	query, args, err := sq.Insert(namesTable).
		Columns("name", "owner", "metadata", "minted_at").
		Values(instruction.Name, instruction.Owner, &sqlite.JSONBlob{Data: &instruction.Metadata}, r.now().Unix()).
		ToSql()
	if err != nil {
		return err
	}
	if _, err = tx.ExecContext(ctx, query, args...); err != nil {
		return errors.Wrap(err, "failed to mint name")
	}

	r.logger.Info("name minted",
		zap.String("name", instruction.Name),
		zap.String("owner", instruction.Owner))
	return nil
}
