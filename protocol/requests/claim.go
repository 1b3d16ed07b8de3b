package requests

import (
	"github.com/ethereum/go-ethereum/common/hexutil"

	"github.com/status-im/status-names/protocol/claim"
)

// Verification is a verifier signature as sent over the wire.
type Verification struct {
	PublicKey hexutil.Bytes `json:"publicKey" validate:"len=33"`
	Signature hexutil.Bytes `json:"signature" validate:"len=64"`
}

// Claim represents a request to claim a name.
type Claim struct {
	Name string `json:"name" validate:"required,name"`

	// VerifyingMessage is the JSON statement the verifiers signed. Admins
	// may omit it.
	VerifyingMessage string `json:"verifyingMessage"`

	Verifications []Verification `json:"verifications" validate:"dive"`
}

// Validate checks the validity of the Claim request.
func (c *Claim) Validate() error {
	return validate(c)
}

// ToVerifications converts the wire verifications for the claim engine.
func (c *Claim) ToVerifications() []claim.Verification {
	result := make([]claim.Verification, 0, len(c.Verifications))
	for _, v := range c.Verifications {
		result = append(result, claim.Verification{
			PublicKey: []byte(v.PublicKey),
			Signature: []byte(v.Signature),
		})
	}
	return result
}

