package names

import (
	"context"

	"github.com/status-im/status-names/protocol/claim"
)

//go:generate mockgen -package=mock_names -source=mint_sink.go -destination=mocks/mint_sink_mock.go

// MintSink receives the names accepted by Claim. It is called exactly once
// per successful claim, as the last step of the claim transaction.
type MintSink interface {
	Mint(ctx context.Context, instruction claim.MintInstruction) error
}
