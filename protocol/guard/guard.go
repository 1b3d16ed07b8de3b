// Package guard keeps the one-time-use registries that stop claims and
// ownership proofs from being replayed.
package guard

import (
	"fmt"

	statuserrors "github.com/status-im/status-names/errors"
)

// ErrSignatureAlreadyUsed is returned when a proof signature is presented twice.
var ErrSignatureAlreadyUsed = statuserrors.New(statuserrors.ErrorCodeSignatureAlreadyUsed, "signature already used")

// DuplicateExternalIDError is returned when an external identity already
// claimed a name.
type DuplicateExternalIDError struct {
	ExternalID string
	Name       string
}

func (e *DuplicateExternalIDError) Error() string {
	return fmt.Sprintf("duplicate external id %q: already claimed %q", e.ExternalID, e.Name)
}

// Code implements errors.Coded.
func (e *DuplicateExternalIDError) Code() statuserrors.ErrorCode {
	return statuserrors.ErrorCodeDuplicateExternalID
}

// ClaimGuard maps external unique identifiers to the name they claimed.
// Entries are never updated nor deleted.
type ClaimGuard interface {
	// ClaimedName returns the name claimed by externalID, if any.
	ClaimedName(externalID string) (string, bool, error)
	// Register binds externalID to name, failing with
	// *DuplicateExternalIDError if it is already bound.
	Register(externalID, name string) error
}

// SignatureGuard is the set of consumed proof signatures.
type SignatureGuard interface {
	// Consume records signature, failing with ErrSignatureAlreadyUsed if it
	// was recorded before.
	Consume(signature []byte) error
}
