package names

import (
	"context"

	statuserrors "github.com/status-im/status-names/errors"
	"github.com/status-im/status-names/protocol/claim"
	"github.com/status-im/status-names/protocol/records"
	"github.com/status-im/status-names/protocol/requests"
)

// PublicAPI is the "names" RPC namespace. Errors are returned as
// errors.ErrorResponse so that clients get a stable code.
type PublicAPI struct {
	api *API
}

func NewPublicAPI(api *API) *PublicAPI {
	return &PublicAPI{api: api}
}

func (p *PublicAPI) Claim(ctx context.Context, sender string, request requests.Claim) (*claim.MintInstruction, error) {
	instruction, err := p.api.Claim(ctx, sender, &request)
	return instruction, statuserrors.CreateErrorResponseFromError(err)
}

func (p *PublicAPI) SetRecord(ctx context.Context, sender string, request requests.SetRecord) (*records.Record, error) {
	record, err := p.api.SetRecord(ctx, sender, &request)
	return record, statuserrors.CreateErrorResponseFromError(err)
}

func (p *PublicAPI) RemoveRecord(ctx context.Context, sender string, request requests.RemoveRecord) error {
	return statuserrors.CreateErrorResponseFromError(p.api.RemoveRecord(ctx, sender, &request))
}

func (p *PublicAPI) SetPrimary(ctx context.Context, sender string, request requests.SetPrimary) error {
	return statuserrors.CreateErrorResponseFromError(p.api.SetPrimary(ctx, sender, &request))
}

func (p *PublicAPI) Records(ctx context.Context, name string) ([]records.Record, error) {
	result, err := p.api.Records(ctx, name)
	return result, statuserrors.CreateErrorResponseFromError(err)
}

func (p *PublicAPI) Names(ctx context.Context, address string) ([]records.NameEntry, error) {
	result, err := p.api.Names(ctx, address)
	return result, statuserrors.CreateErrorResponseFromError(err)
}

func (p *PublicAPI) Resolve(ctx context.Context, name, prefix string) (string, error) {
	address, err := p.api.Resolve(ctx, name, prefix)
	return address, statuserrors.CreateErrorResponseFromError(err)
}

func (p *PublicAPI) PrimaryName(ctx context.Context, address string) (string, error) {
	name, err := p.api.PrimaryName(ctx, address)
	return name, statuserrors.CreateErrorResponseFromError(err)
}

func (p *PublicAPI) ResolveFullName(ctx context.Context, fullName string) (string, error) {
	address, err := p.api.ResolveFullName(ctx, fullName)
	return address, statuserrors.CreateErrorResponseFromError(err)
}

func (p *PublicAPI) VerifierSet(ctx context.Context) *VerifierSetInfo {
	return p.api.VerifierSet(ctx)
}
