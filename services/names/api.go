// Package names serves name claims, address records and their queries.
// Every mutation runs in one database transaction.
package names

import (
	"context"
	"database/sql"
	"strings"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/google/uuid"
	"go.uber.org/zap"

	statuserrors "github.com/status-im/status-names/errors"
	"github.com/status-im/status-names/metrics"
	"github.com/status-im/status-names/params"
	"github.com/status-im/status-names/protocol/access"
	"github.com/status-im/status-names/protocol/adr36"
	"github.com/status-im/status-names/protocol/claim"
	"github.com/status-im/status-names/protocol/guard"
	"github.com/status-im/status-names/protocol/records"
	"github.com/status-im/status-names/protocol/requests"
)

type API struct {
	db        *sql.DB
	chainID   string
	contract  string
	verifiers *claim.VerifierSet
	policy    records.PrimaryPolicy
	admins    access.AdminOracle
	owners    access.OwnershipOracle
	mint      MintSink
	logger    *zap.Logger
}

func NewAPI(db *sql.DB, config *params.Config, admins access.AdminOracle, owners access.OwnershipOracle, mint MintSink, logger *zap.Logger) (*API, error) {
	verifiers, err := config.VerifierSet()
	if err != nil {
		return nil, err
	}
	return &API{
		db:        db,
		chainID:   config.ChainID,
		contract:  config.ContractAddress,
		verifiers: verifiers,
		policy:    config.Policy(),
		admins:    admins,
		owners:    owners,
		mint:      mint,
		logger:    logger.Named("names"),
	}, nil
}

func (api *API) withTx(ctx context.Context, fn func(tx *sql.Tx) error) (err error) {
	var tx *sql.Tx
	tx, err = api.db.BeginTx(ctx, nil)
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

	err = fn(tx)
	return
}

func (api *API) requestLogger(method, sender string) *zap.Logger {
	return api.logger.With(
		zap.String("request", uuid.New().String()),
		zap.String("method", method),
		zap.String("sender", sender))
}

func resultCode(err error) string {
	if err == nil {
		return metrics.CodeOK
	}
	return string(statuserrors.CodeOf(err))
}

// Claim mints request.Name to sender if it is approved, either on the
// sender's admin status or on the verifier signatures.
//
// sender is taken as given: an admin sender skips every verification, so
// the RPC endpoint must only be reachable through a front that
// authenticates the sender. The same holds for every mutation below.
func (api *API) Claim(ctx context.Context, sender string, request *requests.Claim) (instruction *claim.MintInstruction, err error) {
	logger := api.requestLogger("claim", sender)
	approval := claim.ApprovalThreshold
	defer func() {
		metrics.ClaimHandled(approval.String(), resultCode(err))
		if err != nil {
			logger.Warn("claim rejected", zap.String("name", request.Name), zap.Error(err))
		}
	}()

	if err = request.Validate(); err != nil {
		return nil, err
	}

	isAdmin, err := api.admins.IsAdmin(ctx, sender)
	if err != nil {
		return nil, err
	}
	approval = claim.Approve(isAdmin)

	env := claim.Env{Sender: sender, ContractAddress: api.contract, ChainID: api.chainID}
	err = api.withTx(ctx, func(tx *sql.Tx) error {
		engine := claim.NewEngine(api.verifiers, guard.NewClaimPersistence(tx), logger)
		instruction, err = engine.Claim(approval, request.Name, request.VerifyingMessage, request.ToVerifications(), env)
		if err != nil {
			return err
		}
		return api.mint.Mint(ctx, *instruction)
	})
	if err != nil {
		return nil, err
	}

	logger.Info("name claimed",
		zap.String("name", instruction.Name),
		zap.Stringer("approval", approval),
		zap.Int("verifications", instruction.Metadata.Verifications))
	return instruction, nil
}

func (api *API) proofEnv(sender string) adr36.Env {
	return adr36.Env{Sender: sender, ContractAddress: api.contract, ChainID: api.chainID}
}

// SetRecord binds request.Address to request.Name once the sender is
// authorized and the address is proven.
func (api *API) SetRecord(ctx context.Context, sender string, request *requests.SetRecord) (record *records.Record, err error) {
	logger := api.requestLogger("setRecord", sender)
	defer func() {
		metrics.RecordOpHandled("set", resultCode(err))
		if err != nil {
			logger.Warn("record rejected", zap.String("name", request.Name), zap.Error(err))
		}
	}()

	if err = request.Validate(); err != nil {
		return nil, err
	}
	role, err := access.Authorize(ctx, api.admins, api.owners, sender, request.Name)
	if err != nil {
		return nil, err
	}

	var mode adr36.Mode
	err = api.withTx(ctx, func(tx *sql.Tx) error {
		verifier := adr36.NewVerifier(guard.NewSignaturePersistence(tx), logger)
		mode, err = verifier.Verify(role, request.ToProof(), api.proofEnv(sender))
		if err != nil {
			return err
		}
		store := records.NewStore(records.NewPersistence(tx), api.policy)
		return store.SetRecord(request.Name, request.Prefix, request.Address)
	})
	if err != nil {
		return nil, err
	}

	metrics.ProofAccepted(mode.String())
	logger.Info("record set",
		zap.String("name", request.Name),
		zap.String("prefix", request.Prefix),
		zap.String("address", request.Address),
		zap.Stringer("mode", mode))
	// the store keeps the lowercase form, request.Address is valid bech32
	return &records.Record{Name: request.Name, Prefix: strings.ToLower(request.Prefix), Address: strings.ToLower(request.Address)}, nil
}

// RemoveRecord unbinds request.Address from request.Name.
func (api *API) RemoveRecord(ctx context.Context, sender string, request *requests.RemoveRecord) (err error) {
	logger := api.requestLogger("removeRecord", sender)
	defer func() {
		metrics.RecordOpHandled("remove", resultCode(err))
		if err != nil {
			logger.Warn("removal rejected", zap.String("name", request.Name), zap.Error(err))
		}
	}()

	if err = request.Validate(); err != nil {
		return err
	}
	if _, err = access.Authorize(ctx, api.admins, api.owners, sender, request.Name); err != nil {
		return err
	}

	err = api.withTx(ctx, func(tx *sql.Tx) error {
		store := records.NewStore(records.NewPersistence(tx), api.policy)
		return store.RemoveRecord(request.Name, request.Prefix, request.Address, request.ReplacementPrimary)
	})
	if err != nil {
		return err
	}

	logger.Info("record removed", zap.String("name", request.Name), zap.String("address", request.Address))
	return nil
}

// SetPrimary makes request.Name the primary name of request.Address.
func (api *API) SetPrimary(ctx context.Context, sender string, request *requests.SetPrimary) (err error) {
	logger := api.requestLogger("setPrimary", sender)
	defer func() {
		metrics.RecordOpHandled("primary", resultCode(err))
		if err != nil {
			logger.Warn("primary rejected", zap.String("name", request.Name), zap.Error(err))
		}
	}()

	if err = request.Validate(); err != nil {
		return err
	}
	if _, err = access.Authorize(ctx, api.admins, api.owners, sender, request.Name); err != nil {
		return err
	}

	err = api.withTx(ctx, func(tx *sql.Tx) error {
		store := records.NewStore(records.NewPersistence(tx), api.policy)
		return store.SetPrimary(request.Name, request.Address)
	})
	if err != nil {
		return err
	}

	logger.Info("primary set", zap.String("name", request.Name), zap.String("address", request.Address))
	return nil
}

func (api *API) store() *records.Store {
	return records.NewStore(records.NewPersistence(api.db), api.policy)
}

func (api *API) Records(ctx context.Context, name string) ([]records.Record, error) {
	return api.store().RecordsOf(name)
}

// Names lists the names bound to address with the primary one flagged.
func (api *API) Names(ctx context.Context, address string) ([]records.NameEntry, error) {
	return api.store().NamesOf(address)
}

func (api *API) Resolve(ctx context.Context, name, prefix string) (string, error) {
	return api.store().Resolve(name, prefix)
}

// PrimaryName returns the primary name of address, empty if it has none.
func (api *API) PrimaryName(ctx context.Context, address string) (string, error) {
	name, _, err := api.store().PrimaryOf(address)
	return name, err
}

func (api *API) ResolveFullName(ctx context.Context, fullName string) (string, error) {
	return api.store().ResolveFullName(fullName)
}

// VerifierSetInfo describes the verifier set claims are checked against.
type VerifierSetInfo struct {
	Keys      []string `json:"keys"`
	Threshold uint8    `json:"threshold"`
}

func (api *API) VerifierSet(ctx context.Context) *VerifierSetInfo {
	info := &VerifierSetInfo{Threshold: api.verifiers.Threshold()}
	for _, key := range api.verifiers.Keys() {
		info.Keys = append(info.Keys, hexutil.Encode(key))
	}
	return info
}
