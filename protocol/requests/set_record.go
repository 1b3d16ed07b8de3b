package requests

import (
	"github.com/ethereum/go-ethereum/common/hexutil"

	"github.com/status-im/status-names/crypto"
	"github.com/status-im/status-names/protocol/adr36"
)

// SetRecord represents a request to bind an address to a name.
type SetRecord struct {
	Name string `json:"name" validate:"required,name"`

	// Prefix is the bech32 prefix the address is bound under.
	Prefix string `json:"bech32Prefix" validate:"required"`

	// Address is the signer address being bound.
	Address string `json:"address" validate:"required,bech32"`

	// The proof fields below may be left empty when the sender binds an
	// address of its own or acts as admin.
	HashMethod crypto.HashMethod `json:"hashMethod" validate:"omitempty,oneof=cosmos ethereum"`
	PubKey     hexutil.Bytes     `json:"pubKey"`
	Signature  hexutil.Bytes     `json:"signature"`
	Salt       string            `json:"salt" validate:"max=256"`
}

// Validate checks the validity of the SetRecord request.
func (r *SetRecord) Validate() error {
	return validate(r)
}

// ToProof returns the proof of possession carried by the request.
func (r *SetRecord) ToProof() adr36.Proof {
	return adr36.Proof{
		Name:       r.Name,
		Prefix:     r.Prefix,
		Signer:     r.Address,
		HashMethod: r.HashMethod,
		PubKey:     []byte(r.PubKey),
		Signature:  []byte(r.Signature),
		Salt:       r.Salt,
	}
}
